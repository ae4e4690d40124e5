// Package csv implements the flat text format used for song import and
// export. It is a deliberately small, hand-rolled codec rather than a wrapper
// around encoding/csv: the exchange format predates this server and its exact
// behavior (including how bare quotes and mixed line endings are handled) must
// stay byte-compatible with files produced by older exports.
package csv

import "strings"

// Columns is the canonical export column order. The serialized header row is
// exactly these names joined by commas, unquoted.
var Columns = []string{"title", "category", "mnemonic", "lyrics", "mediaLink"}

// Parse splits text into rows of fields using standard CSV quoting rules.
//
// The scan is a single left-to-right pass with one character of lookahead:
// a quote toggles the quoted state unless it is the first of a doubled pair,
// in which case one literal quote is emitted; commas split fields only
// outside quotes; CR, LF, or a CRLF pair terminates a row only outside
// quotes and only when the row has accumulated content, so trailing line
// terminators do not produce empty rows. Inside quotes, commas and line
// terminators are data. Any pending field is flushed at end of input.
func Parse(text string) [][]string {
	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			row = append(row, field.String())
			field.Reset()
		case (c == '\r' || c == '\n') && !inQuotes:
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			if field.Len() > 0 || len(row) > 0 {
				row = append(row, field.String())
				rows = append(rows, row)
				row = nil
				field.Reset()
			}
		default:
			field.WriteByte(c)
		}
	}

	if field.Len() > 0 || len(row) > 0 {
		row = append(row, field.String())
		rows = append(rows, row)
	}

	return rows
}

// Serialize renders rows in the canonical column order, preceded by the fixed
// header. Every data field is wrapped in double quotes with interior quotes
// doubled, so values containing commas, quotes, or newlines survive a
// round trip through Parse. Rows are joined with a single line feed.
func Serialize(rows [][]string) string {
	var b strings.Builder
	b.WriteString(strings.Join(Columns, ","))
	for _, row := range rows {
		b.WriteByte('\n')
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(field, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.String()
}

// CleanHeader normalizes a header cell for case-insensitive,
// order-independent matching.
func CleanHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(h))
}

// CleanCell strips one leading and one trailing literal quote character and
// un-doubles interior quotes.
//
// Parse already performs full quote handling, so for well-formed input this
// is a no-op. It is kept as an idempotent second pass because historical
// exports in the wild contain cells with stray wrapping quotes that older
// importers accepted; do not remove without confirming no such files remain.
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.ReplaceAll(s, `""`, `"`)
}
