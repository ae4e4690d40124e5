// Package core provides the business logic for the song repertoire: domain
// types, CSV import validation, and the import/export flows. This package has
// no HTTP dependencies and can be driven by any frontend.
package core

import (
	"time"

	"github.com/google/uuid"
)

// Category is one of the three fixed capoeira song style tags.
type Category string

const (
	CategoryAngola          Category = "angola"
	CategorySaoBentoPequeno Category = "saoBentoPequeno"
	CategorySaoBentoGrande  Category = "saoBentoGrande"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryAngola, CategorySaoBentoPequeno, CategorySaoBentoGrande}
}

// Valid reports whether c is one of the three known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAngola, CategorySaoBentoPequeno, CategorySaoBentoGrande:
		return true
	}
	return false
}

// FontSize is the prompter display font size.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
	FontXLarge FontSize = "xlarge"
)

// FontSizes returns all valid font sizes from smallest to largest.
func FontSizes() []FontSize {
	return []FontSize{FontSmall, FontMedium, FontLarge, FontXLarge}
}

// Valid reports whether f is one of the four known font sizes.
func (f FontSize) Valid() bool {
	switch f {
	case FontSmall, FontMedium, FontLarge, FontXLarge:
		return true
	}
	return false
}

// Song is a single repertoire entry, exclusively owned by one account.
type Song struct {
	ID        uuid.UUID `json:"id"`
	OwnerUID  uuid.UUID `json:"ownerUid"`
	Title     string    `json:"title"`
	Category  Category  `json:"category"`
	Mnemonic  string    `json:"mnemonic,omitempty"`
	Lyrics    string    `json:"lyrics,omitempty"`
	MediaLink string    `json:"mediaLink,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SongFields carries the caller-writable fields of a song. Identity, owner
// and timestamps are always assigned by the store.
type SongFields struct {
	Title     string   `json:"title"`
	Category  Category `json:"category"`
	Mnemonic  string   `json:"mnemonic"`
	Lyrics    string   `json:"lyrics"`
	MediaLink string   `json:"mediaLink"`
}

// PrompterSettings configures the auto-rotating full-screen display.
// There is at most one row per owner, created on demand with defaults.
type PrompterSettings struct {
	OwnerUID         uuid.UUID `json:"ownerUid"`
	IntervalSeconds  int       `json:"intervalSeconds"`
	FontSize         FontSize  `json:"fontSize"`
	DarkMode         bool      `json:"darkMode"`
	HighContrast     bool      `json:"highContrast"`
	UppercaseDisplay bool      `json:"uppercaseDisplay"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// Prompter defaults. The store-level column defaults must agree with these.
const (
	DefaultIntervalSeconds = 120
	DefaultFontSize        = FontMedium
	DefaultDarkMode        = true
)

// PrompterFields carries a partial settings update. Nil fields are left
// unchanged.
type PrompterFields struct {
	IntervalSeconds  *int      `json:"intervalSeconds"`
	FontSize         *FontSize `json:"fontSize"`
	DarkMode         *bool     `json:"darkMode"`
	HighContrast     *bool     `json:"highContrast"`
	UppercaseDisplay *bool     `json:"uppercaseDisplay"`
}

// Account is the authenticated identity that owns songs and settings.
type Account struct {
	UID       uuid.UUID `json:"uid"`
	Email     string    `json:"email"`
	Token     string    `json:"token,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
