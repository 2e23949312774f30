// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/pdiddy/paper-assistant/pkg/types"
)

// absPathPattern matches abstract-page paths: "/abs/2301.07041",
// "/abs/2301.07041v2", and old-style "/abs/hep-th/9901001".
var absPathPattern = regexp.MustCompile(`^/abs/(.+?)/?$`)

// Resolve validates raw and returns the URL to download. Abstract-page
// URLs (<host>/abs/<id>) are rewritten to <host>/pdf/<id>.pdf with the
// query and fragment dropped; anything else is returned unmodified.
// Resolving an already-resolved URL returns it unchanged.
func Resolve(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty URL", types.ErrInvalidInput)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrInvalidInput, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q is missing a scheme or host", types.ErrInvalidInput, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", types.ErrInvalidInput, u.Scheme)
	}

	m := absPathPattern.FindStringSubmatch(u.Path)
	if m == nil {
		return raw, nil
	}

	pdf := url.URL{
		Scheme: u.Scheme,
		Host:   u.Host,
		Path:   "/pdf/" + m[1] + ".pdf",
	}
	return pdf.String(), nil
}
