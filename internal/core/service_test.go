package core

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/candeia/chants/internal/csv"
)

// fakeSongStore records writes so tests can assert nothing is committed when
// validation fails.
type fakeSongStore struct {
	songs   []Song
	batches [][]SongFields
	listErr error
}

func (f *fakeSongStore) ListSongs(ctx context.Context) ([]Song, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.songs, nil
}

func (f *fakeSongStore) CreateSongs(ctx context.Context, fields []SongFields) (int, error) {
	f.batches = append(f.batches, fields)
	return len(fields), nil
}

func TestImportCSV(t *testing.T) {
	data := []byte("title,category,mnemonic,lyrics,mediaLink\n" +
		"\"Paranaue\",\"angola\",\"\",\"Paranaue, parana\",\"\"\n" +
		"\"Marinheiro so\",\"saoBentoGrande\",\"\",\"\",\"\"\n")

	store := &fakeSongStore{}
	imported, err := ImportCSV(context.Background(), store, data)
	if err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}
	if imported != 2 {
		t.Errorf("imported = %d, want 2", imported)
	}
	if len(store.batches) != 1 {
		t.Fatalf("store received %d batches, want 1", len(store.batches))
	}
	want := []SongFields{
		{Title: "Paranaue", Category: CategoryAngola, Lyrics: "Paranaue, parana"},
		{Title: "Marinheiro so", Category: CategorySaoBentoGrande},
	}
	if !reflect.DeepEqual(store.batches[0], want) {
		t.Errorf("batch = %+v, want %+v", store.batches[0], want)
	}
}

func TestImportCSV_InvalidRowWritesNothing(t *testing.T) {
	data := []byte("title,category\nParanaue,angola\nMarinheiro,foo\n")

	store := &fakeSongStore{}
	_, err := ImportCSV(context.Background(), store, data)

	var rowErr *RowValidationError
	if !errors.As(err, &rowErr) {
		t.Fatalf("ImportCSV() error = %v, want RowValidationError", err)
	}
	if rowErr.Line != 3 {
		t.Errorf("Line = %d, want 3", rowErr.Line)
	}
	if len(store.batches) != 0 {
		t.Errorf("store received %d batches, want 0: validation must precede all writes", len(store.batches))
	}
}

func TestImportCSV_FormatErrorWritesNothing(t *testing.T) {
	store := &fakeSongStore{}
	_, err := ImportCSV(context.Background(), store, []byte("title,category\n"))

	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("ImportCSV() error = %v, want FormatError", err)
	}
	if len(store.batches) != 0 {
		t.Errorf("store received %d batches, want 0", len(store.batches))
	}
}

func TestExportCSV_ZeroSongs(t *testing.T) {
	text, err := ExportCSV(context.Background(), &fakeSongStore{})
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}
	if text != "title,category,mnemonic,lyrics,mediaLink" {
		t.Errorf("export of zero songs = %q, want header row only", text)
	}
}

func TestExportCSV_ListError(t *testing.T) {
	wantErr := errors.New("connection refused")
	_, err := ExportCSV(context.Background(), &fakeSongStore{listErr: wantErr})
	if !errors.Is(err, wantErr) {
		t.Errorf("ExportCSV() error = %v, want wrapped %v", err, wantErr)
	}
}

// TestExportImportRoundTrip drives a full export through the codec and back
// through import validation, asserting the five canonical fields survive
// byte-for-byte even with commas, quotes, and embedded newlines.
func TestExportImportRoundTrip(t *testing.T) {
	store := &fakeSongStore{songs: []Song{
		{Title: "Sim, sim, sim", Category: CategorySaoBentoGrande, Mnemonic: "nao, nao, nao", Lyrics: "Sim, sim, sim\nNao, nao, nao"},
		{Title: `A "volta" do mundo`, Category: CategoryAngola, Lyrics: "oi sim sim sim\noi nao nao nao", MediaLink: "https://example.com/v?id=1"},
		{Title: "", Category: CategorySaoBentoPequeno, Mnemonic: "only a mnemonic"},
	}}

	text, err := ExportCSV(context.Background(), store)
	if err != nil {
		t.Fatalf("ExportCSV() error = %v", err)
	}

	records, err := MapRows(csv.Parse(text))
	if err != nil {
		t.Fatalf("MapRows() error = %v", err)
	}
	if len(records) != len(store.songs) {
		t.Fatalf("got %d records, want %d", len(records), len(store.songs))
	}
	for i, rec := range records {
		s := store.songs[i]
		got := SongFields{Title: rec.Title, Category: rec.Category, Mnemonic: rec.Mnemonic, Lyrics: rec.Lyrics, MediaLink: rec.MediaLink}
		want := SongFields{Title: s.Title, Category: s.Category, Mnemonic: s.Mnemonic, Lyrics: s.Lyrics, MediaLink: s.MediaLink}
		if got != want {
			t.Errorf("record %d mismatch:\ngot  %+v\nwant %+v", i, got, want)
		}
	}
}

func TestExportFileName(t *testing.T) {
	if ExportFileName != "chants-capoeira.csv" {
		t.Errorf("ExportFileName = %q", ExportFileName)
	}
	if !strings.HasSuffix(ExportFileName, ".csv") {
		t.Errorf("export artifact must be a .csv file, got %q", ExportFileName)
	}
}
