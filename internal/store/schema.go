package store

// Schema bootstrap DDL, applied on startup in order. Constraints here are the
// storage-layer half of the access and validity contract: the category and
// font_size CHECK constraints must agree with the enums in internal/core
// (a test asserts this), and both child tables cascade on account deletion.

const accountsTable = `
CREATE TABLE IF NOT EXISTS accounts (
	uid UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email TEXT UNIQUE NOT NULL,
	token TEXT UNIQUE NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const songsTable = `
CREATE TABLE IF NOT EXISTS songs (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	owner_uid UUID NOT NULL REFERENCES accounts(uid) ON DELETE CASCADE,
	title TEXT NOT NULL,
	category TEXT NOT NULL CHECK (category IN ('angola', 'saoBentoPequeno', 'saoBentoGrande')),
	mnemonic TEXT,
	lyrics TEXT,
	media_link TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const prompterSettingsTable = `
CREATE TABLE IF NOT EXISTS prompter_settings (
	owner_uid UUID PRIMARY KEY REFERENCES accounts(uid) ON DELETE CASCADE,
	interval_seconds INTEGER NOT NULL DEFAULT 120,
	font_size TEXT NOT NULL DEFAULT 'medium' CHECK (font_size IN ('small', 'medium', 'large', 'xlarge')),
	dark_mode BOOLEAN NOT NULL DEFAULT TRUE,
	high_contrast BOOLEAN NOT NULL DEFAULT FALSE,
	uppercase_display BOOLEAN NOT NULL DEFAULT FALSE,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

// Indexes supporting the dashboard's per-category listing. Performance aids
// only; correctness does not depend on them.
const songsIndexes = `
CREATE INDEX IF NOT EXISTS idx_songs_owner ON songs(owner_uid);
CREATE INDEX IF NOT EXISTS idx_songs_category ON songs(category);
CREATE INDEX IF NOT EXISTS idx_songs_owner_category ON songs(owner_uid, category);`

var schemaStatements = []string{
	accountsTable,
	songsTable,
	prompterSettingsTable,
	songsIndexes,
}
