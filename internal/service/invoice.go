package service

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pageza/recipe-ai/internal/model"
)

const maxInvoiceBytes = 32 << 20

var pdfMagic = []byte("%PDF-")

// InvoiceService returns fixed line items for any readable PDF. It stands in
// for the text extraction and LLM parsing done by the real backend.
type InvoiceService struct {
	items []model.ExtractedInvoiceItem
}

// NewInvoiceService creates a new InvoiceService instance
func NewInvoiceService(items []model.ExtractedInvoiceItem) *InvoiceService {
	return &InvoiceService{items: items}
}

// Extract validates the upload and returns a copy of the configured items.
// Nothing is stored; the caller decides which items to add.
func (s *InvoiceService) Extract(ctx context.Context, filename string, r io.Reader) ([]model.ExtractedInvoiceItem, error) {
	if !strings.HasSuffix(filename, ".pdf") {
		return nil, ErrInvalidFileFormat
	}

	br := bufio.NewReader(io.LimitReader(r, maxInvoiceBytes))
	head, err := br.Peek(len(pdfMagic))
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("read invoice: %w", err)
	}
	if !bytes.Equal(head, pdfMagic) {
		return nil, ErrUnreadableInvoice
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return append([]model.ExtractedInvoiceItem{}, s.items...), nil
}
