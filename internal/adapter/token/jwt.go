// Package token issues and verifies the HS256 bearer tokens that carry
// the actor of a request.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"adops/internal/config/configs"
	"adops/internal/core/domain"
	"adops/internal/core/rbac"
)

// Claims are the JWT claims understood by the service.
type Claims struct {
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	WorkspaceID string   `json:"workspace_id,omitempty"`
	ClientIDs   []string `json:"client_ids,omitempty"`
	jwt.RegisteredClaims
}

// JWT implements port.TokenParser and port.TokenIssuer.
type JWT struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewJWT(cfg configs.Auth) *JWT {
	return &JWT{secret: []byte(cfg.Secret), issuer: cfg.Issuer, now: time.Now}
}

// Issue signs a token for actor valid for ttl. A missing token id is
// generated.
func (j *JWT) Issue(actor domain.Actor, ttl time.Duration) (string, time.Time, error) {
	now := j.now()
	expires := now.Add(ttl)
	tokenID := actor.TokenID
	if tokenID == "" {
		tokenID = uuid.NewString()
	}
	claims := Claims{
		Email: actor.Email,
		Role:  string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    j.issuer,
			Subject:   actor.UserID.String(),
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	if actor.HasWorkspace() {
		claims.WorkspaceID = actor.WorkspaceID.String()
	}
	for _, id := range actor.ClientIDs {
		claims.ClientIDs = append(claims.ClientIDs, id.String())
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expires, nil
}

// Parse verifies the signature, issuer and expiry of raw and returns the
// actor it carries. Every failure is reported as domain.ErrUnauthorized
// wrapping the cause.
func (j *JWT) Parse(raw string) (domain.Actor, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(j.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return domain.Actor{}, unauthorized(err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Actor{}, unauthorized(fmt.Errorf("invalid subject: %w", err))
	}
	if claims.ID == "" {
		return domain.Actor{}, unauthorized(errors.New("token id is required"))
	}
	actor := domain.Actor{
		UserID:      userID,
		Email:       claims.Email,
		Role:        rbac.Normalize(claims.Role),
		TokenID:     claims.ID,
		TokenExpiry: claims.ExpiresAt.Time,
	}
	if claims.WorkspaceID != "" {
		if actor.WorkspaceID, err = uuid.Parse(claims.WorkspaceID); err != nil {
			return domain.Actor{}, unauthorized(fmt.Errorf("invalid workspace_id: %w", err))
		}
	}
	for _, raw := range claims.ClientIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.Actor{}, unauthorized(fmt.Errorf("invalid client id %q: %w", raw, err))
		}
		actor.ClientIDs = append(actor.ClientIDs, id)
	}
	return actor, nil
}

func unauthorized(err error) error {
	return domain.NewError(domain.KindUnauthorized, domain.ErrUnauthorized.Message, err)
}
