// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/paper-assistant/pkg/types"
)

// fakePages implements pageSource with canned page text.
type fakePages struct {
	texts   []string
	failAt  int // 1-based page that returns an error; 0 for none
	visited []int
}

func (f *fakePages) NumPage() int { return len(f.texts) }

func (f *fakePages) PageText(n int) (string, error) {
	f.visited = append(f.visited, n)
	if n == f.failAt {
		return "", errors.New("bad content stream")
	}
	return f.texts[n-1], nil
}

// withPages returns an Extractor whose reader yields src regardless of input.
func withPages(src pageSource) *Extractor {
	return &Extractor{open: func([]byte) (pageSource, error) { return src, nil }}
}

var minimalHeader = []byte("%PDF-1.4\n")

func TestJoinPages(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
		want  string
	}{
		{"single page", []string{"Abstract"}, "Abstract\n"},
		{"three pages in order", []string{"T1", "T2", "T3"}, "T1\nT2\nT3\n"},
		{"image-only page stays empty", []string{"intro", "", "outro"}, "intro\n\noutro\n"},
		{"no pages", nil, ""},
		{"multi-line page", []string{"line a\nline b", "end"}, "line a\nline b\nend\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &fakePages{texts: tt.texts}
			got, err := joinPages(context.Background(), src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJoinPages_VisitsPagesInOrder(t *testing.T) {
	src := &fakePages{texts: []string{"a", "b", "c", "d"}}
	_, err := joinPages(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, src.visited)
}

func TestJoinPages_LengthNonDecreasing(t *testing.T) {
	texts := []string{"alpha", "", "gamma", "delta"}
	prev := 0
	for n := 1; n <= len(texts); n++ {
		got, err := joinPages(context.Background(), &fakePages{texts: texts[:n]})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(got), prev)
		prev = len(got)
	}
}

func TestJoinPages_PageError(t *testing.T) {
	src := &fakePages{texts: []string{"ok", "broken", "never"}, failAt: 2}
	_, err := joinPages(context.Background(), src)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrParse)
	assert.Contains(t, err.Error(), "page 2")
	assert.Equal(t, []int{1, 2}, src.visited)
}

func TestJoinPages_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := joinPages(ctx, &fakePages{texts: []string{"a"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtract_UsesPageSource(t *testing.T) {
	e := withPages(&fakePages{texts: []string{"Paper body", "text"}})
	got, err := e.Extract(context.Background(), minimalHeader)
	require.NoError(t, err)
	assert.Equal(t, "Paper body\ntext\n", got)
}

func TestExtract_RecoversReaderPanic(t *testing.T) {
	e := &Extractor{open: func([]byte) (pageSource, error) { panic("malformed xref") }}
	_, err := e.Extract(context.Background(), minimalHeader)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrParse)
	assert.Contains(t, err.Error(), "malformed xref")
}

func TestExtract_OpenError(t *testing.T) {
	e := &Extractor{open: func([]byte) (pageSource, error) { return nil, errors.New("no trailer") }}
	_, err := e.Extract(context.Background(), minimalHeader)
	assert.ErrorIs(t, err, types.ErrParse)
}

func TestExtract_RejectsNonPDF(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		validate bool
	}{
		{"empty", nil, false},
		{"html page", []byte("<!DOCTYPE html><html><body>Not found</body></html>"), false},
		{"header only, reader", []byte("%PDF-1.4\nthis is not a pdf body"), false},
		{"header only, validator", []byte("%PDF-1.4\nthis is not a pdf body"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewExtractor(types.PDFConfig{Validate: tt.validate})
			_, err := e.Extract(context.Background(), tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrParse)
		})
	}
}

func TestExtract_RealPDF(t *testing.T) {
	data := buildPDF([]string{"Hello", "World"})
	e := NewExtractor(types.PDFConfig{Validate: false})

	got, err := e.Extract(context.Background(), data)
	require.NoError(t, err)

	pages := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	require.GreaterOrEqual(t, len(pages), 2)
	assert.Contains(t, got, "Hello")
	assert.Contains(t, got, "World")
	assert.Less(t, strings.Index(got, "Hello"), strings.Index(got, "World"))
	assert.True(t, strings.HasSuffix(got, "\n"))
}

// buildPDF writes a minimal PDF with one text line per page, with a
// correct cross-reference table.
func buildPDF(pages []string) []byte {
	n := len(pages)
	// Objects: 1 catalog, 2 page tree, 3 font, then a page and a content
	// stream per page.
	var objs []string
	kids := make([]string, n)
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objs = append(objs,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), n),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
	)
	for i, text := range pages {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, body := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}
