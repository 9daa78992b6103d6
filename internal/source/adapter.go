// Package source contains the per-format adapters that translate raw
// statement exports into the common row shape the ingestion engine
// consumes. Adapters are stateless data-shape translators: one export
// format in, accounts plus rows out, no store access.
package source

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hollisb/penny/internal/model"
)

// Statement pairs an account registration with the rows that belong to
// it. An export file usually yields one statement; OFX files can carry
// several.
type Statement struct {
	Account model.Account
	Rows    []model.Row
}

// Adapter converts one institution's export format.
type Adapter interface {
	Parse(ctx context.Context, r io.Reader) ([]Statement, error)
}

// dateLayouts are tried in order when parsing source dates. Banks are
// not consistent even within a single export.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"01-02-2006",
}

// parseDate parses a source-supplied date into a calendar date.
func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
