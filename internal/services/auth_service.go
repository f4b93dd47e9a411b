package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
	"github.com/vinaypatil-tal/scoot-assist-chat/internal/utils"
)

const (
	otpTTL      = 5 * time.Minute
	tokenMaxAge = 72 * time.Hour
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	FindByPhone(ctx context.Context, phoneNumber string) (*models.Profile, error)
	FindByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Profile, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
}

type AuthService struct {
	profiles ProfileRepository
	jwtUtil  *utils.JWTUtil
	redis    *utils.RedisClient
}

func NewAuthService(profiles ProfileRepository, jwtUtil *utils.JWTUtil, redis *utils.RedisClient) *AuthService {
	return &AuthService{profiles: profiles, jwtUtil: jwtUtil, redis: redis}
}

// RequestCode generates a login code for the phone number. Delivery is a
// demo stand-in: the code is written to the service log instead of an SMS
// gateway.
func (s *AuthService) RequestCode(ctx context.Context, phoneNumber string) error {
	if phoneNumber == "" {
		return errors.New("phone number is required")
	}

	code := utils.GenerateOTP(6)
	if err := s.redis.Set(ctx, otpKey(phoneNumber), code, otpTTL); err != nil {
		return fmt.Errorf("store code: %w", err)
	}

	log.Printf("[AUTH] Simulated SMS to %s: login code %s", phoneNumber, code)
	return nil
}

// VerifyCode checks the code and signs the caller in, creating a profile on
// first login with this phone number.
func (s *AuthService) VerifyCode(ctx context.Context, phoneNumber, code string) (string, *models.Profile, error) {
	var stored string
	if err := s.redis.Get(ctx, otpKey(phoneNumber), &stored); err != nil {
		return "", nil, errors.New("code expired or not requested")
	}
	if stored != code {
		return "", nil, errors.New("invalid code")
	}
	_ = s.redis.Delete(ctx, otpKey(phoneNumber))

	profile, err := s.profiles.FindByPhone(ctx, phoneNumber)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, fmt.Errorf("lookup profile: %w", err)
		}
		profile = &models.Profile{
			PhoneNumber: phoneNumber,
			Role:        models.RoleUser,
		}
		if err := s.profiles.Create(ctx, profile); err != nil {
			return "", nil, fmt.Errorf("create profile: %w", err)
		}
		log.Printf("[AUTH] New customer profile for %s", phoneNumber)
	}

	token, err := s.jwtUtil.GenerateToken(profile.ID.Hex(), profile.Role)
	if err != nil {
		return "", nil, err
	}
	return token, profile, nil
}

// AdminLogin authenticates the admin panel with email and password.
func (s *AuthService) AdminLogin(ctx context.Context, email, password string) (string, error) {
	profile, err := s.profiles.FindByEmail(ctx, email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}
	if profile.Role != models.RoleAdmin {
		return "", errors.New("invalid credentials")
	}
	if err := profile.ComparePassword(password); err != nil {
		log.Printf("[AUTH] Password comparison failed for %s: %v", email, err)
		return "", errors.New("invalid credentials")
	}
	return s.jwtUtil.GenerateToken(profile.ID.Hex(), profile.Role)
}

// Logout blacklists the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.redis.Set(ctx, fmt.Sprintf("blacklist:%s", token), true, tokenMaxAge)
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, errors.New("invalid user id")
	}
	return s.profiles.GetByID(ctx, id)
}

func otpKey(phoneNumber string) string {
	return fmt.Sprintf("otp:%s", phoneNumber)
}
