package service

import (
	"errors"
	"fmt"
	"strings"

	"foodbridge/config"
	"foodbridge/internal/auth"
	"foodbridge/internal/domain"
	"foodbridge/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidCreds = errors.New("invalid email or password")
	ErrInvalidCode  = errors.New("invalid verification code")
)

// AuthService is the identity store: a flat user collection with password
// login and profile updates.
type AuthService struct {
	cfg   *config.Config
	users domain.UserRepository
}

func NewAuthService(cfg *config.Config, users domain.UserRepository) *AuthService {
	return &AuthService{cfg: cfg, users: users}
}

func (s *AuthService) Register(name, email, password, phone, role string) (*models.User, string, error) {
	if role != models.RoleDonor && role != models.RoleBuyer {
		return nil, "", fmt.Errorf("%w: role must be donor or buyer", domain.ErrValidation)
	}
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, "", ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &models.User{
		Name:         name,
		Email:        email,
		Phone:        phone,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(u); err != nil {
		return nil, "", err
	}
	token, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	u, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := auth.GenerateAccessToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) GetUser(userID uint) (*models.User, error) {
	u, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile changes the user's profile fields. Role and id are immutable;
// a non-empty newPassword replaces the stored hash.
func (s *AuthService) UpdateProfile(userID uint, name, email, phone, bio, newPassword string) (*models.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(phone) == "" {
		return nil, fmt.Errorf("%w: name, email and phone are required", domain.ErrValidation)
	}
	u, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	u.Name = name
	u.Email = email
	u.Phone = phone
	u.Bio = bio
	if newPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := s.users.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// VerifyEmail flips the email-verified flag when the submitted code checks
// out. TODO: issue real codes through a mail provider; until then any code of
// four or more characters is accepted.
func (s *AuthService) VerifyEmail(userID uint, code string) (*models.User, error) {
	return s.verify(userID, code, func(u *models.User) { u.EmailVerified = true })
}

// VerifyPhone is the SMS counterpart of VerifyEmail.
func (s *AuthService) VerifyPhone(userID uint, code string) (*models.User, error) {
	return s.verify(userID, code, func(u *models.User) { u.PhoneVerified = true })
}

func (s *AuthService) verify(userID uint, code string, mark func(*models.User)) (*models.User, error) {
	if len(strings.TrimSpace(code)) < 4 {
		return nil, ErrInvalidCode
	}
	u, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	mark(u)
	if err := s.users.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}
