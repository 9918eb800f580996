package repository

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/bodylab/trainlog/internal/access"
	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/template"
)

// WorkbookTemplates serves templates, codes and quotes from a local .xlsx
// export of the coach's spreadsheet. The workbook is reopened on every call
// so edits show up without a restart.
type WorkbookTemplates struct {
	path      string
	codesTab  string
	quotesTab string
}

func NewWorkbookTemplates(path, codesTab, quotesTab string) *WorkbookTemplates {
	return &WorkbookTemplates{path: path, codesTab: codesTab, quotesTab: quotesTab}
}

func (w *WorkbookTemplates) LoadTemplate(ctx context.Context, clientName string) (*domain.Template, error) {
	rows, err := w.readTab(ctx, clientName)
	if err != nil {
		return nil, err
	}
	return template.Parse(clientName, rows)
}

func (w *WorkbookTemplates) AccessCodes(ctx context.Context) (access.CodeBook, error) {
	rows, err := w.readTab(ctx, w.codesTab)
	if err != nil {
		return nil, err
	}
	return access.ParseCodes(rows)
}

func (w *WorkbookTemplates) WeeklyQuote(ctx context.Context, week int) (string, error) {
	rows, err := w.readTab(ctx, w.quotesTab)
	if err != nil {
		return "", err
	}
	return template.WeeklyQuote(rows, week), nil
}

func (w *WorkbookTemplates) readTab(ctx context.Context, tab string) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(w.path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", w.path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(tab)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("tab %q in %s: %w", tab, w.path, ErrNotFound)
	}
	rows, err := f.GetRows(tab)
	if err != nil {
		return nil, fmt.Errorf("reading tab %q: %w", tab, err)
	}
	return rows, nil
}
