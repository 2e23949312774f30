// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns downloaded PDF bytes into plain text.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog"

	"github.com/pdiddy/paper-assistant/pkg/types"
)

// headerWindow is how far into the file the %PDF- marker may appear.
// Some producers emit a few bytes of junk before it.
const headerWindow = 1024

var pdfMagic = []byte("%PDF-")

func init() {
	// pdfcpu otherwise creates a config directory under the user's home.
	api.DisableConfigDir()
}

// pageSource yields the text of each page in document order.
// Pages are numbered from 1.
type pageSource interface {
	NumPage() int
	PageText(n int) (string, error)
}

// Extractor reads PDF bytes and returns the concatenated page text.
// Text comes out in content-stream order. Multi-column layout is not
// reconstructed and image-only pages yield nothing.
type Extractor struct {
	validate bool
	open     func(data []byte) (pageSource, error)
}

// NewExtractor creates an Extractor. When cfg.Validate is set the bytes are
// checked with pdfcpu before any text is read.
func NewExtractor(cfg types.PDFConfig) *Extractor {
	return &Extractor{validate: cfg.Validate, open: openReader}
}

// Extract returns the text of every page, each followed by "\n".
// Bytes that are not a readable PDF fail with types.ErrParse.
func (e *Extractor) Extract(ctx context.Context, data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty document", types.ErrParse)
	}
	if !bytes.Contains(data[:min(len(data), headerWindow)], pdfMagic) {
		return "", fmt.Errorf("%w: missing PDF header", types.ErrParse)
	}

	// The PDF reader panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: reading PDF: %v", types.ErrParse, r)
		}
	}()

	if e.validate {
		if err := validateStructure(data); err != nil {
			return "", err
		}
	}

	src, err := e.open(data)
	if err != nil {
		return "", fmt.Errorf("%w: opening PDF: %v", types.ErrParse, err)
	}

	text, err = joinPages(ctx, src)
	if err != nil {
		return "", err
	}

	log := zerolog.Ctx(ctx)
	if strings.TrimSpace(text) == "" {
		log.Warn().Int("pages", src.NumPage()).Msg("no extractable text; the PDF may be image-only")
	} else {
		log.Debug().Int("pages", src.NumPage()).Int("chars", len(text)).Msg("extracted text")
	}
	return text, nil
}

// joinPages concatenates page text in order, appending "\n" after each page.
func joinPages(ctx context.Context, src pageSource) (string, error) {
	var buf strings.Builder
	n := src.NumPage()
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		content, err := src.PageText(i)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", types.ErrParse, i, err)
		}
		buf.WriteString(content)
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}

// validateStructure runs pdfcpu's relaxed validation over data.
func validateStructure(data []byte) error {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if err := api.Validate(bytes.NewReader(data), conf); err != nil {
		return fmt.Errorf("%w: invalid PDF structure: %v", types.ErrParse, err)
	}
	return nil
}

// readerPages adapts a ledongthuc/pdf Reader to pageSource.
type readerPages struct {
	r *pdf.Reader
}

func openReader(data []byte) (pageSource, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return readerPages{r: r}, nil
}

func (p readerPages) NumPage() int { return p.r.NumPage() }

func (p readerPages) PageText(n int) (string, error) {
	page := p.r.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}
