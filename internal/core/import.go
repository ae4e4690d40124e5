package core

import (
	"fmt"
	"strings"

	"github.com/candeia/chants/internal/csv"
)

// canonical CSV column names, matched case-insensitively.
const (
	colTitle     = "title"
	colCategory  = "category"
	colMnemonic  = "mnemonic"
	colLyrics    = "lyrics"
	colMediaLink = "medialink"
)

// SongRecord is one validated row of an import file: the five canonical song
// fields plus any extra columns the file carried, keyed by their lowercased
// header name. Extra columns are preserved on the record but are not part of
// the stored schema.
type SongRecord struct {
	Title     string
	Category  Category
	Mnemonic  string
	Lyrics    string
	MediaLink string
	Extra     map[string]string
}

// Fields returns the storable portion of the record.
func (r SongRecord) Fields() SongFields {
	return SongFields{
		Title:     r.Title,
		Category:  r.Category,
		Mnemonic:  r.Mnemonic,
		Lyrics:    r.Lyrics,
		MediaLink: r.MediaLink,
	}
}

// MapRows validates parsed CSV rows and maps them to song records.
//
// Row 0 must be a header containing at least "title" and "category"
// (case-insensitive, any order); otherwise a FormatError is returned before
// any data row is looked at. Each data row must carry a title or a mnemonic
// and a valid category; the first violation aborts the whole import with a
// RowValidationError naming the offending line (header counts as line 1).
func MapRows(rows [][]string) ([]SongRecord, error) {
	if len(rows) < 2 {
		return nil, &FormatError{Reason: "file must contain a header row and at least one song row"}
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[csv.CleanHeader(h)] = i
	}
	for _, required := range []string{colTitle, colCategory} {
		if _, ok := index[required]; !ok {
			return nil, &FormatError{Reason: fmt.Sprintf("missing required column %q", required)}
		}
	}

	records := make([]SongRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2

		cell := func(name string) string {
			pos, ok := index[name]
			if !ok || pos >= len(row) {
				return ""
			}
			return csv.CleanCell(row[pos])
		}

		rec := SongRecord{
			Title:     cell(colTitle),
			Category:  Category(cell(colCategory)),
			Mnemonic:  cell(colMnemonic),
			Lyrics:    cell(colLyrics),
			MediaLink: cell(colMediaLink),
		}

		for name := range index {
			switch name {
			case colTitle, colCategory, colMnemonic, colLyrics, colMediaLink:
				continue
			}
			if rec.Extra == nil {
				rec.Extra = make(map[string]string)
			}
			rec.Extra[name] = cell(name)
		}

		if rec.Title == "" && rec.Mnemonic == "" {
			return nil, &RowValidationError{Line: line, Reason: "song must have a title or a mnemonic"}
		}
		if !rec.Category.Valid() {
			return nil, &RowValidationError{
				Line:   line,
				Reason: fmt.Sprintf("invalid category %q\nvalid categories: %s", string(rec.Category), categoryList()),
			}
		}

		records = append(records, rec)
	}

	return records, nil
}

func categoryList() string {
	names := make([]string, len(Categories()))
	for i, c := range Categories() {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
