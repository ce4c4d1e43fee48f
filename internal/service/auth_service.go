package service

import (
	"context"
	"fmt"
	"log"
	"time"

	apperrors "tourbook/internal/errors"
	"tourbook/internal/mail"
	"tourbook/internal/models"
	"tourbook/internal/repository"
	"tourbook/pkg/auth"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// resetTokenTTL is how long an emailed reset token stays valid.
const resetTokenTTL = 10 * time.Minute

// AuthService handles signup, login and the password lifecycle.
type AuthService struct {
	repo   repository.UserRepository
	tokens auth.TokenManager
	emails EmailQueue
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo repository.UserRepository, tokens auth.TokenManager, emails EmailQueue) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
		emails: emails,
	}
}

// Signup registers a new account and logs it in. New accounts always get
// the "user" role; privileged roles are granted by an admin afterwards.
func (s *AuthService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleUser,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.emails.Enqueue(mail.WelcomeMessage(user.Email, user.Name)); err != nil {
		// The account exists either way; the welcome mail is best effort.
		log.Printf("failed to enqueue welcome email for %s: %v", user.Email, err)
	}

	return s.issueToken(user)
}

// Login authenticates an email/password pair. Unknown email and wrong
// password collapse into the same error so the response does not leak
// which one it was.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if err == apperrors.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.CheckPassword(req.Password, user.Password); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// ForgotPassword generates a reset token, stores its hash and emails the
// raw token. If the email cannot be enqueued the stored token is cleared so
// no orphaned token stays live.
func (s *AuthService) ForgotPassword(ctx context.Context, email, resetURLBase string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	raw, hashed, err := auth.NewResetToken()
	if err != nil {
		return err
	}

	expires := time.Now().Add(resetTokenTTL)
	if err := s.repo.SetResetToken(ctx, user.ID, hashed, expires); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/%s", resetURLBase, raw)
	if err := s.emails.Enqueue(mail.ResetMessage(user.Email, user.Name, resetURL)); err != nil {
		if clearErr := s.repo.ClearResetToken(ctx, user.ID); clearErr != nil {
			log.Printf("failed to clear reset token for %s: %v", user.Email, clearErr)
		}
		return apperrors.ErrEmailNotSent
	}

	return nil
}

// ResetPassword consumes an emailed reset token and sets a new password.
// The repository clears the token fields in the same update, so a token is
// single use.
func (s *AuthService) ResetPassword(ctx context.Context, rawToken string, req *models.ResetPasswordRequest) (*models.AuthResponse, error) {
	user, err := s.repo.FindByResetToken(ctx, auth.HashResetToken(rawToken))
	if err != nil {
		return nil, err
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hashed, changedAtStamp()); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// UpdatePassword changes the password of a logged-in user after verifying
// the current one. A fresh token is returned because the change invalidates
// every token issued before it.
func (s *AuthService) UpdatePassword(ctx context.Context, userID string, req *models.UpdatePasswordRequest) (*models.AuthResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	if err := auth.CheckPassword(req.PasswordCurrent, user.Password); err != nil {
		return nil, apperrors.ErrWrongPassword
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, hashed, changedAtStamp()); err != nil {
		return nil, err
	}

	return s.issueToken(user)
}

// issueToken signs a JWT for the user and strips the password hash from the
// returned profile.
func (s *AuthService) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	user.Password = ""
	return &models.AuthResponse{Token: token, User: user}, nil
}

// changedAtStamp backdates passwordChangedAt by one second so a token
// signed in the same second as the change still validates.
func changedAtStamp() time.Time {
	return time.Now().Add(-time.Second)
}
