package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/candeia/chants/internal/core"
)

// newToken returns a 256-bit random bearer secret.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// CreateAccount registers a new account and issues its bearer token. This is
// the only operation available to unauthenticated callers.
func (s *Store) CreateAccount(ctx context.Context, email string) (core.Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return core.Account{}, fmt.Errorf("%w: email is required", core.ErrInvalid)
	}

	token, err := newToken()
	if err != nil {
		return core.Account{}, err
	}

	var a core.Account
	err = s.pool.QueryRow(ctx,
		`INSERT INTO accounts (email, token) VALUES ($1, $2)
		 RETURNING uid, email, token, created_at, updated_at`,
		email, token).Scan(&a.UID, &a.Email, &a.Token, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return core.Account{}, fmt.Errorf("create account: %w", err)
	}
	return a, nil
}

// ResolveToken maps a bearer token to the account identity it authenticates.
// Unknown tokens are a denial.
func (s *Store) ResolveToken(ctx context.Context, token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, core.ErrUnauthorized
	}

	var uid uuid.UUID
	err := s.pool.QueryRow(ctx, `SELECT uid FROM accounts WHERE token = $1`, token).Scan(&uid)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, core.ErrUnauthorized
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve token: %w", err)
	}
	return uid, nil
}

// DeleteAccount removes the owner's account. The foreign keys cascade, so
// all songs and the settings row disappear with it.
func (o *OwnedStore) DeleteAccount(ctx context.Context) error {
	if err := o.guard(); err != nil {
		return err
	}

	tag, err := o.pool.Exec(ctx, `DELETE FROM accounts WHERE uid = $1`, o.owner)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return core.ErrNotFound
	}
	return nil
}
