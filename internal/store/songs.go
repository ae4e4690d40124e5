package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/candeia/chants/internal/core"
)

// songColumns is the select list shared by every song query. Optional
// columns are coalesced so the domain type never sees NULL.
const songColumns = `id, owner_uid, title, category,
	COALESCE(mnemonic, ''), COALESCE(lyrics, ''), COALESCE(media_link, ''),
	created_at, updated_at`

func scanSong(row pgx.Row) (core.Song, error) {
	var s core.Song
	err := row.Scan(&s.ID, &s.OwnerUID, &s.Title, &s.Category,
		&s.Mnemonic, &s.Lyrics, &s.MediaLink, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// ListSongs returns all songs of the owner, oldest first.
func (o *OwnedStore) ListSongs(ctx context.Context) ([]core.Song, error) {
	return o.listSongs(ctx, `SELECT `+songColumns+` FROM songs WHERE owner_uid = $1 ORDER BY created_at, id`, o.owner)
}

// ListSongsByCategory returns the owner's songs in one category, backed by
// the composite (owner_uid, category) index.
func (o *OwnedStore) ListSongsByCategory(ctx context.Context, c core.Category) ([]core.Song, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", core.ErrInvalid, string(c))
	}
	return o.listSongs(ctx,
		`SELECT `+songColumns+` FROM songs WHERE owner_uid = $1 AND category = $2 ORDER BY created_at, id`,
		o.owner, string(c))
}

func (o *OwnedStore) listSongs(ctx context.Context, query string, args ...any) ([]core.Song, error) {
	if err := o.guard(); err != nil {
		return nil, err
	}

	rows, err := o.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	songs := []core.Song{}
	for rows.Next() {
		s, err := scanSong(rows)
		if err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}
	return songs, nil
}

// CreateSong inserts one song for the owner. Title is required here; only
// the bulk import path may substitute a mnemonic for a missing title.
func (o *OwnedStore) CreateSong(ctx context.Context, f core.SongFields) (core.Song, error) {
	if err := o.guard(); err != nil {
		return core.Song{}, err
	}
	if f.Title == "" {
		return core.Song{}, fmt.Errorf("%w: title is required", core.ErrInvalid)
	}
	if !f.Category.Valid() {
		return core.Song{}, fmt.Errorf("%w: unknown category %q", core.ErrInvalid, string(f.Category))
	}

	row := o.pool.QueryRow(ctx,
		`INSERT INTO songs (owner_uid, title, category, mnemonic, lyrics, media_link)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+songColumns,
		o.owner, f.Title, string(f.Category), toPgText(f.Mnemonic), toPgText(f.Lyrics), toPgText(f.MediaLink))

	s, err := scanSong(row)
	if err != nil {
		return core.Song{}, fmt.Errorf("create song: %w", err)
	}
	return s, nil
}

// CreateSongs inserts a pre-validated batch in a single transaction, so a
// failure partway through commits nothing. Records reach this point only
// after MapRows has validated them, which permits an empty title when a
// mnemonic is present.
func (o *OwnedStore) CreateSongs(ctx context.Context, fields []core.SongFields) (int, error) {
	if err := o.guard(); err != nil {
		return 0, err
	}
	if len(fields) == 0 {
		return 0, nil
	}

	tx, err := o.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback(ctx) // No-op if already committed

	for _, f := range fields {
		if !f.Category.Valid() {
			return 0, fmt.Errorf("%w: unknown category %q", core.ErrInvalid, string(f.Category))
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO songs (owner_uid, title, category, mnemonic, lyrics, media_link)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			o.owner, f.Title, string(f.Category), toPgText(f.Mnemonic), toPgText(f.Lyrics), toPgText(f.MediaLink)); err != nil {
			return 0, fmt.Errorf("insert song: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}
	return len(fields), nil
}

// songOwner verifies the row exists and belongs to this scope. A row owned
// by someone else is a denial, not a not-found: the two cases are surfaced
// distinctly on purpose.
func (o *OwnedStore) songOwner(ctx context.Context, id uuid.UUID) error {
	var owner uuid.UUID
	err := o.pool.QueryRow(ctx, `SELECT owner_uid FROM songs WHERE id = $1`, id).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return core.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("lookup song: %w", err)
	}
	if owner != o.owner {
		return core.ErrUnauthorized
	}
	return nil
}

// UpdateSong replaces the writable fields of one song. Last write wins; the
// updated_at column is always overwritten with the server clock, never taken
// from the client.
func (o *OwnedStore) UpdateSong(ctx context.Context, id uuid.UUID, f core.SongFields) (core.Song, error) {
	if err := o.guard(); err != nil {
		return core.Song{}, err
	}
	if f.Title == "" {
		return core.Song{}, fmt.Errorf("%w: title is required", core.ErrInvalid)
	}
	if !f.Category.Valid() {
		return core.Song{}, fmt.Errorf("%w: unknown category %q", core.ErrInvalid, string(f.Category))
	}
	if err := o.songOwner(ctx, id); err != nil {
		return core.Song{}, err
	}

	row := o.pool.QueryRow(ctx,
		`UPDATE songs
		 SET title = $3, category = $4, mnemonic = $5, lyrics = $6, media_link = $7, updated_at = NOW()
		 WHERE id = $1 AND owner_uid = $2
		 RETURNING `+songColumns,
		id, o.owner, f.Title, string(f.Category), toPgText(f.Mnemonic), toPgText(f.Lyrics), toPgText(f.MediaLink))

	s, err := scanSong(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return core.Song{}, core.ErrNotFound
	}
	if err != nil {
		return core.Song{}, fmt.Errorf("update song: %w", err)
	}
	return s, nil
}

// DeleteSong permanently removes one song. There is no soft delete.
func (o *OwnedStore) DeleteSong(ctx context.Context, id uuid.UUID) error {
	if err := o.guard(); err != nil {
		return err
	}
	if err := o.songOwner(ctx, id); err != nil {
		return err
	}

	tag, err := o.pool.Exec(ctx, `DELETE FROM songs WHERE id = $1 AND owner_uid = $2`, id, o.owner)
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}

// DeleteSongs removes the selected songs and returns how many were deleted.
// Any id owned by a different account fails the whole batch with
// ErrUnauthorized before anything is deleted; ids that no longer exist are
// skipped.
func (o *OwnedStore) DeleteSongs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if err := o.guard(); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	rows, err := o.pool.Query(ctx, `SELECT owner_uid FROM songs WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("check song owners: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var owner uuid.UUID
		if err := rows.Scan(&owner); err != nil {
			return 0, fmt.Errorf("check song owners: %w", err)
		}
		if owner != o.owner {
			return 0, core.ErrUnauthorized
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("check song owners: %w", err)
	}

	tag, err := o.pool.Exec(ctx, `DELETE FROM songs WHERE owner_uid = $1 AND id = ANY($2)`, o.owner, ids)
	if err != nil {
		return 0, fmt.Errorf("delete songs: %w", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteAllSongs empties the owner's repertoire and returns the count.
func (o *OwnedStore) DeleteAllSongs(ctx context.Context) (int64, error) {
	if err := o.guard(); err != nil {
		return 0, err
	}

	tag, err := o.pool.Exec(ctx, `DELETE FROM songs WHERE owner_uid = $1`, o.owner)
	if err != nil {
		return 0, fmt.Errorf("delete all songs: %w", err)
	}
	return tag.RowsAffected(), nil
}
