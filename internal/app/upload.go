package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pageza/recipe-ai/internal/model"
	"github.com/pageza/recipe-ai/internal/types"
)

// MsgInvoiceReadFailed is shown when a local invoice file cannot be read
const MsgInvoiceReadFailed = "Failed to read the selected file"

// UploadStatus tracks the extraction request
type UploadStatus int

const (
	UploadIdle UploadStatus = iota
	UploadLoading
	UploadSucceeded
	UploadFailed
)

func (s UploadStatus) String() string {
	switch s {
	case UploadLoading:
		return "loading"
	case UploadSucceeded:
		return "success"
	case UploadFailed:
		return "error"
	default:
		return "idle"
	}
}

// CommitStatus is the outcome of committing one invoice item
type CommitStatus int

const (
	CommitSkipped CommitStatus = iota
	CommitAdded
	CommitFailed
)

func (s CommitStatus) String() string {
	switch s {
	case CommitAdded:
		return "added"
	case CommitFailed:
		return "failed"
	default:
		return "skipped"
	}
}

// CommitResult reports what happened to one selected item
type CommitResult struct {
	Item   model.ExtractedInvoiceItem
	Status CommitStatus
	Err    error
}

// InvoiceFile is a picked invoice held in memory
type InvoiceFile struct {
	Name string
	Data []byte
}

// UploadPage turns a PDF invoice into inventory in two phases: extract the
// line items, then commit the selected ones as ingredients.
type UploadPage struct {
	pageBase
	concurrency int

	mu       sync.RWMutex
	file     *InvoiceFile
	status   UploadStatus
	items    []model.ExtractedInvoiceItem
	selected map[string]bool
}

// NewUploadPage creates an unmounted upload page. concurrency > 1 commits
// items as a bounded batch instead of one after another.
func NewUploadPage(api KitchenAPI, host Host, concurrency int) *UploadPage {
	return &UploadPage{
		pageBase:    pageBase{api: api, host: host},
		concurrency: concurrency,
		selected:    make(map[string]bool),
	}
}

// IsPDF reports whether the file looks like a PDF by name or content
func IsPDF(name string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return true
	}
	return len(data) > 0 && http.DetectContentType(data) == "application/pdf"
}

// SelectFile picks a new invoice. A non-PDF is refused and clears any
// previous choice.
func (p *UploadPage) SelectFile(name string, data []byte) error {
	if !IsPDF(name, data) {
		p.mu.Lock()
		p.file = nil
		p.mu.Unlock()
		return p.fail("selecting invoice", fmt.Errorf("%w: %s is not a PDF", ErrValidation, name), MsgInvoiceNotPDF)
	}

	p.mu.Lock()
	p.file = &InvoiceFile{Name: name, Data: data}
	p.status = UploadIdle
	p.items = nil
	p.selected = make(map[string]bool)
	p.mu.Unlock()
	return nil
}

// SelectPath reads the invoice at path and selects it
func (p *UploadPage) SelectPath(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return p.fail("reading invoice", err, MsgInvoiceReadFailed)
	}
	return p.SelectFile(filepath.Base(path), data)
}

// File returns the picked invoice
func (p *UploadPage) File() (InvoiceFile, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.file == nil {
		return InvoiceFile{}, false
	}
	return *p.file, true
}

// Status returns the extraction status
func (p *UploadPage) Status() UploadStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// Upload sends the picked invoice for extraction. Every extracted item
// starts out selected.
func (p *UploadPage) Upload(ctx context.Context) error {
	file, ok := p.File()
	if !ok {
		return p.warn(MsgInvoiceFileRequired)
	}

	p.setStatus(UploadLoading)
	err := p.busy(ctx, func(ctx context.Context) error {
		items, err := p.api.UploadInvoice(ctx, file.Name, bytes.NewReader(file.Data))
		if err != nil {
			p.setStatus(UploadFailed)
			return p.fail("uploading invoice", err, MsgInvoiceProcessFailed)
		}

		selected := make(map[string]bool, len(items))
		for _, item := range items {
			selected[item.Key()] = true
		}
		p.mu.Lock()
		p.items = items
		p.selected = selected
		p.status = UploadSucceeded
		p.mu.Unlock()
		return nil
	})
	if err != nil {
		return err
	}
	p.success(MsgInvoiceProcessed)
	return nil
}

func (p *UploadPage) setStatus(s UploadStatus) {
	p.mu.Lock()
	p.status = s
	p.mu.Unlock()
}

// Items returns the extracted items
func (p *UploadPage) Items() []model.ExtractedInvoiceItem {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]model.ExtractedInvoiceItem(nil), p.items...)
}

// IsSelected reports whether the item with key is selected
func (p *UploadPage) IsSelected(key string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.selected[key]
}

// Toggle flips the selection of the item with key
func (p *UploadPage) Toggle(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected[key] = !p.selected[key]
	return p.selected[key]
}

// SelectedItems returns the selected items in extraction order
func (p *UploadPage) SelectedItems() []model.ExtractedInvoiceItem {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var out []model.ExtractedInvoiceItem
	for _, item := range p.items {
		if p.selected[item.Key()] {
			out = append(out, item)
		}
	}
	return out
}

// Commit adds the selected items to the inventory. On success the page
// resets; on failure exactly one error is shown and the page is untouched.
func (p *UploadPage) Commit(ctx context.Context) ([]CommitResult, error) {
	items := p.SelectedItems()
	if len(items) == 0 {
		return nil, p.warn(MsgInvoiceNoSelection)
	}

	var results []CommitResult
	err := p.busy(ctx, func(ctx context.Context) error {
		var err error
		if p.concurrency > 1 {
			results, err = p.commitBatch(ctx, items)
		} else {
			results, err = p.commitSequential(ctx, items)
		}
		if err != nil {
			return p.fail("adding items to inventory", err, MsgInventoryFailed)
		}
		return nil
	})
	if err != nil {
		return results, err
	}

	p.mu.Lock()
	p.file = nil
	p.items = nil
	p.selected = make(map[string]bool)
	p.status = UploadIdle
	p.mu.Unlock()
	p.success(MsgInventoryUpdated)
	return results, nil
}

// commitSequential stops at the first failure. Items before it stay
// committed and items after it are skipped.
func (p *UploadPage) commitSequential(ctx context.Context, items []model.ExtractedInvoiceItem) ([]CommitResult, error) {
	results := make([]CommitResult, len(items))
	for i, item := range items {
		results[i].Item = item
	}
	for i, item := range items {
		if _, err := p.api.AddIngredient(ctx, commitRequest(item)); err != nil {
			results[i].Status = CommitFailed
			results[i].Err = err
			return results, fmt.Errorf("commit %q: %w", item.Name, err)
		}
		results[i].Status = CommitAdded
	}
	return results, nil
}

// commitBatch attempts every item with at most p.concurrency writes in
// flight and reports each outcome.
func (p *UploadPage) commitBatch(ctx context.Context, items []model.ExtractedInvoiceItem) ([]CommitResult, error) {
	results := make([]CommitResult, len(items))
	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for i, item := range items {
		i, item := i, item
		results[i].Item = item
		g.Go(func() error {
			if _, err := p.api.AddIngredient(ctx, commitRequest(item)); err != nil {
				results[i].Status = CommitFailed
				results[i].Err = err
				return err
			}
			results[i].Status = CommitAdded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var errs []error
		for _, r := range results {
			if r.Err != nil {
				errs = append(errs, fmt.Errorf("commit %q: %w", r.Item.Name, r.Err))
			}
		}
		return results, errors.Join(errs...)
	}
	return results, nil
}

func commitRequest(item model.ExtractedInvoiceItem) types.AddIngredientRequest {
	return types.AddIngredientRequest{
		Name:               item.Name,
		Quantity:           item.CommitQuantity(),
		IsVegetableOrFruit: item.IsProduce(),
	}
}
