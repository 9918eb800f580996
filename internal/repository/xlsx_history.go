package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/sheet"
)

const (
	historyFileName  = "history_log.xlsx"
	historySheetName = "Sheet1"
)

// XLSXHistoryStore keeps each client's history in
// <root>/<client key>/history_log.xlsx.
type XLSXHistoryStore struct {
	root string
}

func NewXLSXHistoryStore(root string) *XLSXHistoryStore {
	return &XLSXHistoryStore{root: root}
}

// Path returns the workbook location for a client key. Keys that would
// leave root are rejected with ErrValidation.
func (s *XLSXHistoryStore) Path(clientKey string) (string, error) {
	if !domain.ValidKey(clientKey) {
		return "", fmt.Errorf("%w: client key %q is not a valid folder name", domain.ErrValidation, clientKey)
	}
	return filepath.Join(s.root, clientKey, historyFileName), nil
}

func (s *XLSXHistoryStore) Load(ctx context.Context, clientKey string) (domain.ClientHistory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.Path(clientKey)
	if err != nil {
		return nil, err
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("history for %q: %w", clientKey, ErrNotFound)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return domain.ClientHistory{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return decodeRows(rows), nil
}

// decodeRows turns header-first rows into entries, skipping blank rows.
// excelize drops trailing empty cells, so rows are padded to header width
// first to keep empty cells distinguishable from absent columns.
func decodeRows(rows [][]string) domain.ClientHistory {
	if len(rows) == 0 {
		return domain.ClientHistory{}
	}
	width := len(rows[0])
	for i, r := range rows {
		if len(r) < width {
			padded := make([]string, width)
			copy(padded, r)
			rows[i] = padded
		}
	}
	tbl := sheet.NewTable(rows)
	history := make(domain.ClientHistory, 0, tbl.Len())
	for r := 0; r < tbl.Len(); r++ {
		raw := tbl.Raw(r)
		if blankRow(raw) {
			continue
		}
		history = append(history, decodeEntry(raw))
	}
	return history
}

func (s *XLSXHistoryStore) Replace(ctx context.Context, clientKey string, h domain.ClientHistory) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.Path(clientKey)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	f, err := buildWorkbook(h)
	if err != nil {
		return err
	}
	defer f.Close()

	tmp, err := os.CreateTemp(dir, ".history_log-*.xlsx")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

func buildWorkbook(h domain.ClientHistory) (*excelize.File, error) {
	f := excelize.NewFile()
	header := historyHeader(h)

	headerRow := make([]interface{}, len(header))
	for i, col := range header {
		headerRow[i] = col
	}
	if err := f.SetSheetRow(historySheetName, "A1", &headerRow); err != nil {
		f.Close()
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for i, e := range h {
		row := make([]interface{}, len(header))
		for j, col := range header {
			row[j] = encodeCell(e, col)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(historySheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(historySheetName, 1, 1, bold)
	}
	_ = f.SetPanes(historySheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	return f, nil
}
