package template

import (
	"fmt"
	"strings"

	"github.com/bodylab/trainlog/internal/sheet"
)

// ValidateHeader checks that the sheet carries the columns needed to build
// exercise rows. Returns one error per missing column (empty if valid).
func ValidateHeader(tbl *sheet.Table) []error {
	var errs []error
	for _, names := range requiredColumns {
		if !tbl.Has(names...) {
			errs = append(errs, fmt.Errorf("missing column %s", strings.Join(names, " or ")))
		}
	}
	return errs
}
