package session

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestTokensRoundTrip(t *testing.T) {
	tokens := NewTokens(Config{Secret: "test-secret", TTL: time.Hour})
	id := NewID()

	signed, err := tokens.Issue(id)
	require.NoError(t, err)

	got, err := tokens.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, id, got)
}

func TestTokensRejectForgedSignature(t *testing.T) {
	issuer := NewTokens(Config{Secret: "one", TTL: time.Hour})
	verifier := NewTokens(Config{Secret: "two", TTL: time.Hour})

	signed, err := issuer.Issue(NewID())
	require.NoError(t, err)

	_, err = verifier.Parse(signed)
	require.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokensRejectExpired(t *testing.T) {
	tokens := NewTokens(Config{Secret: "secret", TTL: time.Minute})
	issuedAt := time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issuedAt }

	signed, err := tokens.Issue(NewID())
	require.NoError(t, err)

	tokens.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = tokens.Parse(signed)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokensRejectGarbageAndForeignSubjects(t *testing.T) {
	tokens := NewTokens(Config{Secret: "secret"})

	_, err := tokens.Parse("")
	require.ErrorIs(t, err, ErrInvalidToken)
	_, err = tokens.Parse("not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)

	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  tokenIssuer,
		Subject: "user-42",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = tokens.Parse(foreign)
	require.ErrorIs(t, err, ErrInvalidToken)
}
