// Package access gates entry with the coach-issued access code list.
package access

import (
	"crypto/subtle"
	"fmt"

	"github.com/bodylab/trainlog/internal/domain"
	"github.com/bodylab/trainlog/internal/sheet"
)

// Code sheet headers.
const (
	ColClientName = "Client Name"
	ColAccessCode = "Access Code"
)

// CodeBook maps normalized client names to their access codes.
type CodeBook map[string]string

// ParseCodes reads the codes tab, header first. Names are normalized; blank
// names are skipped and a later duplicate overrides an earlier one.
func ParseCodes(values [][]string) (CodeBook, error) {
	tbl := sheet.NewTable(values)
	if !tbl.Has(ColClientName) || !tbl.Has(ColAccessCode) {
		return nil, fmt.Errorf("codes sheet needs %q and %q columns", ColClientName, ColAccessCode)
	}
	book := make(CodeBook, tbl.Len())
	for r := 0; r < tbl.Len(); r++ {
		key := domain.NormalizeName(tbl.Cell(r, ColClientName))
		if key == "" {
			continue
		}
		book[key] = tbl.Cell(r, ColAccessCode)
	}
	return book, nil
}

// Verify checks code for the named client and returns the normalized
// client on success. Returns ErrAccessDenied for unknown names, blank codes
// and mismatches alike.
func (b CodeBook) Verify(name, code string) (domain.Client, error) {
	client := domain.NewClient(name)
	want, ok := b[client.Key]
	if client.IsZero() || !ok || want == "" || code == "" {
		return domain.Client{}, domain.ErrAccessDenied
	}
	if subtle.ConstantTimeCompare([]byte(want), []byte(code)) != 1 {
		return domain.Client{}, domain.ErrAccessDenied
	}
	return client, nil
}
