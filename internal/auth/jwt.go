package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

type jwtManager struct {
	secretKey []byte
	ttl       time.Duration
}

var _ domain.TokenManager = (*jwtManager)(nil)

// NewJWTManager signs HS256 tokens carrying the user id in the "uid" claim.
func NewJWTManager(secretKey string, ttl time.Duration) *jwtManager {
	return &jwtManager{
		secretKey: []byte(secretKey),
		ttl:       ttl,
	}
}

func (j *jwtManager) NewToken(userID string) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = userID
	claims["exp"] = time.Now().Add(j.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		logrus.Errorf("failed to sign token: %v", err)
		return "", domain.ErrInternalServerError
	}
	return tokenString, nil
}

func (j *jwtManager) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", domain.ErrUnauthorized
	}
	return uid, nil
}
