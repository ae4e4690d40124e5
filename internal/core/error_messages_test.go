package core

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"format error", &FormatError{Reason: "missing required column \"category\""}, "CSV001"},
		{"row validation error", &RowValidationError{Line: 2, Reason: "song must have a title or a mnemonic"}, "ROW001"},
		{"unauthorized", ErrUnauthorized, "AUTH002"},
		{"wrapped unauthorized", fmt.Errorf("delete song: %w", ErrUnauthorized), "AUTH002"},
		{"not found", ErrNotFound, "NF001"},
		{"duplicate key", errors.New("ERROR: duplicate key value violates unique constraint"), "DB001"},
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connection refused"), "DB002"},
		{"deadline exceeded", errors.New("timeout: context deadline exceeded"), "DB003"},
		{"unknown error", errors.New("something else entirely"), "ERR000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := MapError(tt.err)
			if msg.Code != tt.wantCode {
				t.Errorf("MapError(%v).Code = %q, want %q", tt.err, msg.Code, tt.wantCode)
			}
			if msg.Message == "" {
				t.Error("user message must not be empty")
			}
		})
	}
}

// Row validation messages carry embedded newlines (the category error lists
// valid values on a second line) and must survive the mapping verbatim.
func TestMapError_PreservesEmbeddedNewlines(t *testing.T) {
	err := &RowValidationError{Line: 2, Reason: "invalid category \"foo\"\nvalid categories: angola, saoBentoPequeno, saoBentoGrande"}
	msg := MapError(err)
	if !strings.Contains(msg.Message, "\n") {
		t.Errorf("embedded newline lost: %q", msg.Message)
	}
	if !strings.HasPrefix(msg.Message, "line 2: ") {
		t.Errorf("row error must name its line: %q", msg.Message)
	}
}

func TestMapError_WrappedStructuredError(t *testing.T) {
	err := fmt.Errorf("import: %w", &FormatError{Reason: "file must contain a header row and at least one song row"})
	if got := MapError(err).Code; got != "CSV001" {
		t.Errorf("Code = %q, want CSV001 for wrapped FormatError", got)
	}
}
