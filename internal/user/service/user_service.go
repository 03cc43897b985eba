package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/slangstash/slang-service/internal/errors"
	"github.com/slangstash/slang-service/internal/mail"
	"github.com/slangstash/slang-service/internal/token"
	"github.com/slangstash/slang-service/internal/user/domain"
	"github.com/slangstash/slang-service/internal/user/dto"
	"github.com/slangstash/slang-service/pkg/constant"
)

type UserService struct {
	repo         domain.UserRepository
	tokenService token.Generator
	mailer       mail.Mailer
}

func NewUserService(repo domain.UserRepository, tokenService token.Generator, mailer mail.Mailer) *UserService {
	return &UserService{
		repo:         repo,
		tokenService: tokenService,
		mailer:       mailer,
	}
}

// Register creates an unverified account. The verification mail is sent before
// the row is created, so a failed send leaves no row behind.
func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) error {
	existing, err := s.repo.GetByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	verificationToken, err := s.tokenService.GenerateEmailToken(input.Email)
	if err != nil {
		return err
	}

	if err := s.mailer.SendVerificationEmail(input.Email, verificationToken); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMailSend, err)
	}

	now := time.Now()

	return s.repo.Create(ctx, &domain.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         constant.RoleUser,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// VerifyEmail flips isVerified for the account named in the token. It returns
// the verified username.
func (s *UserService) VerifyEmail(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.tokenService.VerifyEmailToken(tokenString)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	user, err := s.repo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperrors.ErrInvalidToken
	}

	if err := s.repo.MarkVerified(ctx, claims.Email); err != nil {
		return "", err
	}

	return user.Username, nil
}

// Login authenticates by username or email and returns a signed session token.
// Unverified accounts are rejected even with the correct password.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (string, error) {
	user, err := s.repo.GetByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperrors.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return "", apperrors.ErrInvalidCredential
	}

	if !user.IsVerified {
		return "", apperrors.ErrEmailNotVerified
	}

	return s.tokenService.GenerateSessionToken(user.Username, user.ID, user.Role)
}

// ResetRequest mails a time-boxed reset token to a verified account.
func (s *UserService) ResetRequest(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}
	if !user.IsVerified {
		return apperrors.ErrEmailNotVerified
	}

	resetToken, err := s.tokenService.GenerateEmailToken(email)
	if err != nil {
		return err
	}

	if err := s.mailer.SendResetPasswordEmail(email, resetToken); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrMailSend, err)
	}

	return nil
}

// ResetPassword re-hashes and stores the new password for the account named in
// the token. Tokens are not single-use; they stay replayable until expiry.
func (s *UserService) ResetPassword(ctx context.Context, tokenString, newPassword string) error {
	claims, err := s.tokenService.VerifyEmailToken(tokenString)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	user, err := s.repo.GetByEmail(ctx, claims.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, claims.Email, string(hashed))
}

// Update patches whichever fields were supplied. Requesting the current
// username again is rejected.
func (s *UserService) Update(ctx context.Context, currentUsername string, input dto.UpdateInput) error {
	if input.Username == currentUsername && input.Username != "" {
		return apperrors.ErrSameUsername
	}

	user, err := s.repo.GetByUsername(ctx, currentUsername)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.PasswordHash = string(hashed)
	}

	return s.repo.UpdateByUsername(ctx, currentUsername, user)
}

// Delete removes the account after re-confirming email and password.
// It returns the deleted username.
func (s *UserService) Delete(ctx context.Context, input dto.DeleteInput) (string, error) {
	user, err := s.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperrors.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return "", apperrors.ErrInvalidCredential
	}

	if err := s.repo.DeleteByEmail(ctx, input.Email); err != nil {
		return "", err
	}

	return user.Username, nil
}

// List returns every account's public fields. Deprecated surface, kept for
// compatibility with existing clients.
func (s *UserService) List(ctx context.Context) ([]dto.UserOutput, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UserOutput, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserOutput{
			Username:   u.Username,
			Email:      u.Email,
			IsVerified: u.IsVerified,
		})
	}
	return out, nil
}
