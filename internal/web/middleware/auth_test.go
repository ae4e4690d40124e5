package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/candeia/chants/internal/core"
)

type stubResolver struct {
	token string
	owner uuid.UUID
}

func (s *stubResolver) ResolveToken(_ context.Context, token string) (uuid.UUID, error) {
	if token == s.token {
		return s.owner, nil
	}
	return uuid.Nil, core.ErrUnauthorized
}

func TestBearerAuth_Rejections(t *testing.T) {
	resolver := &stubResolver{token: "good-token", owner: uuid.New()}

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic Zm9vOmJhcg=="},
		{"empty token", "Bearer "},
		{"unknown token", "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := BearerAuth(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler must not run for rejected requests")
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
			var body struct {
				Error string `json:"error"`
				Code  string `json:"code"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if body.Code != "AUTH001" {
				t.Errorf("code = %q, want AUTH001", body.Code)
			}
			if body.Error == "" {
				t.Error("error message must not be empty")
			}
		})
	}
}

func TestBearerAuth_ValidTokenReachesHandler(t *testing.T) {
	owner := uuid.New()
	resolver := &stubResolver{token: "good-token", owner: owner}

	var got uuid.UUID
	var ok bool
	handler := BearerAuth(resolver)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = OwnerFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/songs", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !ok || got != owner {
		t.Errorf("OwnerFromContext = (%v, %v), want (%v, true)", got, ok, owner)
	}
}

func TestOwnerFromContext_Absent(t *testing.T) {
	if _, ok := OwnerFromContext(context.Background()); ok {
		t.Error("OwnerFromContext must report absence on a bare context")
	}
}
