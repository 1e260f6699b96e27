package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/bimsrama/Relasi4warna-main/internal/config"
	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"github.com/bimsrama/Relasi4warna-main/internal/repository"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/bimsrama/Relasi4warna-main/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	resetTokenTTL      = time.Hour
	resetRequestLimit  = 3
	resetRequestWindow = time.Hour
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Redis    *redis.Client
	Email    *EmailService
	Cfg      *config.Config
}

func NewAuthService(userRepo *repository.UserRepository, rdb *redis.Client, email *EmailService, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Redis:    rdb,
		Email:    email,
		Cfg:      cfg,
	}
}

func (s *AuthService) Register(user *model.User) error {
	_, err := s.UserRepo.FindByEmail(user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if err != gorm.ErrRecordNotFound {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	if user.Language == "" {
		user.Language = "id"
	}
	return s.UserRepo.Create(user)
}

func (s *AuthService) Login(email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if err := s.UserRepo.TouchLastLogin(user.ID); err != nil {
		logger.Log.Warn("failed to record last login", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	return token, user, err
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}

	user, _ := s.UserRepo.FindByID(claims.UserID)
	return user
}

func (s *AuthService) UpdateProfile(userID uint, name, language string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if name != "" {
		user.Name = name
	}
	if language != "" {
		user.Language = language
	}
	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// RequestPasswordReset issues a reset token for the address, rate limited per
// email. The caller must answer identically whether or not the address exists
// so the endpoint cannot be used to probe registrations.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	limitKey := fmt.Sprintf("reset_limit:%s", email)
	count, err := s.Redis.Incr(ctx, limitKey).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		s.Redis.Expire(ctx, limitKey, resetRequestWindow)
	}
	if count > resetRequestLimit {
		return util.ErrResetLimitExceeded
	}

	user, err := s.UserRepo.FindByEmail(email)
	if err != nil {
		// Swallow unknown addresses after consuming the rate budget.
		return nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	token := hex.EncodeToString(buf)

	tokenKey := fmt.Sprintf("reset_token:%s", token)
	if err := s.Redis.Set(ctx, tokenKey, user.ID, resetTokenTTL).Err(); err != nil {
		return err
	}

	if s.Email != nil {
		go s.Email.SendPasswordReset(user.Email, user.Name, token, user.Language)
	}
	return nil
}

// ResetPassword consumes a reset token and sets the new password. Tokens are
// single use: the Redis key is deleted before the password is written.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	tokenKey := fmt.Sprintf("reset_token:%s", token)
	val, err := s.Redis.Get(ctx, tokenKey).Uint64()
	if err != nil {
		return util.ErrResetTokenInvalid
	}
	s.Redis.Del(ctx, tokenKey)

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePassword(uint(val), string(hash))
}
