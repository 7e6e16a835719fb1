package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/taskmanager/backend/internal/config"
	"github.com/taskmanager/backend/internal/models"
)

var ErrInvalidToken = errors.New("Invalid token")

// TokenClaims are the identity fields bound into an access token.
type TokenClaims struct {
	UserID uuid.UUID
	Userid string
	Role   string
}

// IssueToken signs an HS256 token carrying the user's identity, valid for
// cfg.JWTExpiry from now. The claim names (userId, userid, role) are part
// of the client contract.
func IssueToken(cfg *config.Config, user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": user.ID.String(),
		"userid": user.Userid,
		"role":   user.Role,
		"iat":    now.Unix(),
		"exp":    now.Add(cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// VerifyToken checks signature and expiry and returns the decoded identity.
// Any structural, signature, or expiry mismatch yields ErrInvalidToken;
// there is no partial-trust result.
func VerifyToken(cfg *config.Config, raw string) (*TokenClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return ParseClaims(mapClaims)
}

// ParseClaims converts raw JWT claims into TokenClaims. Shared with the
// request guard, which receives claims already verified by the middleware.
func ParseClaims(mapClaims jwt.MapClaims) (*TokenClaims, error) {
	sub, _ := mapClaims["userId"].(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return nil, ErrInvalidToken
	}

	userid, _ := mapClaims["userid"].(string)
	if userid == "" {
		return nil, ErrInvalidToken
	}
	role, _ := mapClaims["role"].(string)

	return &TokenClaims{UserID: id, Userid: userid, Role: role}, nil
}
