package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "casedesk"

// Record is the persisted session.
type Record struct {
	ActorID   uuid.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the record is past its expiry at now.
func (r Record) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && !now.Before(r.ExpiresAt)
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// codec signs and verifies session records as HS256 JWTs.
type codec struct {
	secret []byte
}

func newCodec(secret string) codec {
	return codec{secret: []byte(secret)}
}

func (c codec) encode(rec Record) (string, error) {
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   rec.ActorID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(rec.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(rec.ExpiresAt),
		},
		Email: rec.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return signed, nil
}

func (c codec) decode(raw string) (Record, error) {
	if raw == "" {
		return Record{}, fmt.Errorf("session token is empty")
	}

	token, err := jwt.ParseWithClaims(raw, &sessionClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil {
		return Record{}, fmt.Errorf("parse session: %w", err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Record{}, fmt.Errorf("invalid session claims")
	}

	actorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Record{}, fmt.Errorf("invalid session subject: %w", err)
	}

	rec := Record{ActorID: actorID, Email: claims.Email}
	if claims.IssuedAt != nil {
		rec.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		rec.ExpiresAt = claims.ExpiresAt.Time
	}
	return rec, nil
}
