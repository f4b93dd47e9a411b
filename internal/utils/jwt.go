package utils

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"
)

type JWTUtil struct {
	secret string
}

func NewJWTUtil(secret string) *JWTUtil {
	return &JWTUtil{secret: secret}
}

func (j *JWTUtil) GenerateToken(userID, role string) (string, error) {
	expirationTime := time.Now().Add(72 * time.Hour)
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     expirationTime.Unix(),
		"iat":     time.Now().Unix(),
		"jti":     GenerateCode(10),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secret))
}

func (j *JWTUtil) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unauthorized")
		}
		return []byte(j.secret), nil
	})
}

func (j *JWTUtil) IsTokenBlacklisted(ctx context.Context, tokenString string, redis *RedisClient) bool {
	var blacklisted bool
	err := redis.Get(ctx, fmt.Sprintf("blacklist:%s", tokenString), &blacklisted)
	return err == nil && blacklisted
}

var validate = validator.New()

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

const codeCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func GenerateCode(length int) string {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, length)
	for i := range b {
		b[i] = codeCharset[seededRand.Intn(len(codeCharset))]
	}
	return string(b)
}

// GenerateOTP returns a numeric code of the given length.
func GenerateOTP(length int) string {
	const digits = "0123456789"
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, length)
	for i := range b {
		b[i] = digits[seededRand.Intn(len(digits))]
	}
	return string(b)
}
