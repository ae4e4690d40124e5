package core

import (
	"context"
	"fmt"

	"github.com/candeia/chants/internal/csv"
)

// ExportFileName is the download name offered for the export artifact.
const ExportFileName = "chants-capoeira.csv"

// SongStore is the owner-scoped repository the import/export flows run
// against. The store guarantees every row it reads or writes belongs to the
// owner it was scoped to.
type SongStore interface {
	ListSongs(ctx context.Context) ([]Song, error)
	CreateSongs(ctx context.Context, fields []SongFields) (int, error)
}

// ImportCSV parses and validates an uploaded file, then writes all records
// through the store. Validation completes before the first write, so an
// invalid row means nothing is committed; the store applies the batch in a
// single transaction. Returns the number of songs imported.
func ImportCSV(ctx context.Context, store SongStore, data []byte) (int, error) {
	records, err := MapRows(csv.Parse(string(data)))
	if err != nil {
		return 0, err
	}

	fields := make([]SongFields, len(records))
	for i, rec := range records {
		fields[i] = rec.Fields()
	}

	count, err := store.CreateSongs(ctx, fields)
	if err != nil {
		return 0, fmt.Errorf("import songs: %w", err)
	}
	return count, nil
}

// ExportCSV serializes every song of the owner into the canonical five-column
// format. With zero songs the result is the header row alone.
func ExportCSV(ctx context.Context, store SongStore) (string, error) {
	songs, err := store.ListSongs(ctx)
	if err != nil {
		return "", fmt.Errorf("list songs: %w", err)
	}

	rows := make([][]string, len(songs))
	for i, s := range songs {
		rows[i] = []string{s.Title, string(s.Category), s.Mnemonic, s.Lyrics, s.MediaLink}
	}
	return csv.Serialize(rows), nil
}
