package jwt

import (
	"errors"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const tokenTypeAccess = "access"

var ErrInvalidClaims = errors.New("token claims are missing or malformed")

type Service interface {
	GenerateAccessToken(principal user.Principal) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(principal user.Principal) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = j.now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"id":   principal.ID,
		"role": string(principal.Role),
		"type": tokenTypeAccess,
		"exp":  expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// PrincipalFromClaims rebuilds the caller identity from verified access
// token claims.
func PrincipalFromClaims(claims map[string]interface{}) (user.Principal, error) {
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != tokenTypeAccess {
		return user.Principal{}, ErrInvalidClaims
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return user.Principal{}, ErrInvalidClaims
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return user.Principal{}, ErrInvalidClaims
	}
	role := user.Role(roleStr)
	if !role.IsValid() {
		return user.Principal{}, ErrInvalidClaims
	}

	return user.Principal{ID: id, Role: role}, nil
}
