package web

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/candeia/chants/internal/core"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"format error", &core.FormatError{Reason: "missing required column \"title\""}, http.StatusBadRequest},
		{"row validation error", &core.RowValidationError{Line: 2, Reason: "song must have a title or a mnemonic"}, http.StatusUnprocessableEntity},
		{"unauthorized", core.ErrUnauthorized, http.StatusForbidden},
		{"wrapped unauthorized", fmt.Errorf("delete song: %w", core.ErrUnauthorized), http.StatusForbidden},
		{"not found", core.ErrNotFound, http.StatusNotFound},
		{"invalid input", fmt.Errorf("%w: title is required", core.ErrInvalid), http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusFor(tt.err); got != tt.want {
				t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
