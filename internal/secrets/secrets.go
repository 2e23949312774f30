// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves model API keys. Keys come from explicit
// configuration, provider environment variables, or a directory of
// plain-text files where the filename is the key name and the trimmed
// file contents are the value.
//
// Supported key files: together-api-key, openai-api-key, anthropic-api-key.
package secrets

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-assistant/pkg/types"
)

// DefaultDir is the secrets directory used by the CLI.
const DefaultDir = ".secrets"

type source struct {
	env  string
	file string
}

var providerSources = map[types.Provider]source{
	types.ProviderTogether:  {env: "TOGETHER_API_KEY", file: "together-api-key"},
	types.ProviderOpenAI:    {env: "OPENAI_API_KEY", file: "openai-api-key"},
	types.ProviderAnthropic: {env: "ANTHROPIC_API_KEY", file: "anthropic-api-key"},
}

// Store holds secrets read from disk.
type Store struct {
	files map[string]string

	// Getenv reads environment variables. Nil uses os.Getenv.
	Getenv func(string) string
}

// Load reads all files in dir into a Store. A missing directory is not an
// error and yields an empty Store. Unreadable files are logged and skipped.
func Load(ctx context.Context, dir string) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &Store{files: map[string]string{}}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	files := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("secret", name).Msg("could not read secret")
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			files[name] = value
		}
	}

	return &Store{files: files}, nil
}

// Get returns the secret file named name.
func (s *Store) Get(name string) (string, bool) {
	v, ok := s.files[name]
	return v, ok
}

// Len reports how many secret files were loaded.
func (s *Store) Len() int {
	return len(s.files)
}

// APIKey returns the key for provider. An explicit value wins, then the
// provider's environment variable, then its secret file. It returns ""
// when none is set or the provider is unknown.
func (s *Store) APIKey(provider types.Provider, explicit string) string {
	if explicit != "" {
		return explicit
	}
	src, ok := providerSources[provider]
	if !ok {
		return ""
	}
	getenv := s.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv(src.env)); v != "" {
		return v
	}
	return s.files[src.file]
}

// EnvVar names the environment variable consulted for provider.
func EnvVar(provider types.Provider) string {
	return providerSources[provider].env
}
