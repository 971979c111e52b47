package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Config struct {
	Secret     string        `yaml:"secret" envconfig:"JWT_SECRET" default:"super-secret"`
	AccessTTL  time.Duration `yaml:"accessTTL" envconfig:"JWT_ACCESS_TTL" default:"1h"`
	RefreshTTL time.Duration `yaml:"refreshTTL" envconfig:"JWT_REFRESH_TTL" default:"720h"`
}

type Claims struct {
	UserID    int    `json:"userID"`
	Username  string `json:"username"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// NewTokenPair issues an HS256 access/refresh pair for the user.
func NewTokenPair(cfg Config, userID int, username string) (TokenPair, error) {
	access, err := signed(cfg, userID, username, tokenTypeAccess, cfg.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := signed(cfg, userID, username, tokenTypeRefresh, cfg.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

func signed(cfg Config, userID int, username, typ string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:    userID,
		Username:  username,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseAccessToken validates an access token and returns its claims.
func ParseAccessToken(cfg Config, tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, errors.New("not an access token")
	}
	return claims, nil
}

type contextKey int

const (
	userIDKey contextKey = iota + 1
	userNameKey
)

func SetAuthContext(ctx context.Context, userID int, username string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, userNameKey, username)
}

func UserID(ctx context.Context) (int, error) {
	id, ok := ctx.Value(userIDKey).(int)
	if !ok {
		return 0, errors.New("no user in context")
	}
	return id, nil
}

func UserName(ctx context.Context) (string, error) {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok {
		return "", errors.New("no user in context")
	}
	return name, nil
}
