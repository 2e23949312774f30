// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysis_EmbedsTextVerbatim(t *testing.T) {
	text := "Paper body text with {{braces}}, <tags> & \"quotes\""
	got, err := Analysis(text)
	require.NoError(t, err)

	assert.Contains(t, got, "Text: "+text+"\n")
	assert.True(t, strings.HasPrefix(got, "<s>[INST] Please analyze this research paper"))
	assert.True(t, strings.HasSuffix(got, "[/INST]</s>"))
	for _, heading := range []string{
		"Title and Authors",
		"Main research question",
		"Key technical innovations",
		"Future research implications",
	} {
		assert.Contains(t, got, heading)
	}
}

func TestPost_EmbedsAnalysisVerbatim(t *testing.T) {
	got, err := Post("ANALYSIS")
	require.NoError(t, err)

	assert.Contains(t, got, "Research Analysis: ANALYSIS\n")
	assert.Contains(t, got, "Keep it under 1300 characters")
	assert.Contains(t, got, "2-3 specific technical hashtags")
	assert.True(t, strings.HasSuffix(got, "[/INST]</s>"))
}

func TestTemplatesAreDistinct(t *testing.T) {
	a, err := Analysis("X")
	require.NoError(t, err)
	p, err := Post("X")
	require.NoError(t, err)
	assert.NotEqual(t, a, p)
}

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		tmpl    string
		want    string
		wantErr bool
	}{
		{"analysis", NameAnalysis, "Text: <value>", false},
		{"post", NamePost, "Research Analysis: <value>", false},
		{"unknown", "summary", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.tmpl, "<value>")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown prompt")
				return
			}
			require.NoError(t, err)
			assert.Contains(t, got, tt.want)
		})
	}
}
