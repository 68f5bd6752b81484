//go:generate mockgen -source=service.go -destination=mock_service.go -package=auth
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"taskly-api/internal/otp"
	"taskly-api/internal/user"
	"taskly-api/pkg/cerror"
	"taskly-api/pkg/jwt_generator"
	"taskly-api/pkg/logger"
	"taskly-api/pkg/mailer"
)

const otpMailSubject = "Taskly password reset code"

type Service interface {
	Register(ctx context.Context, payload *RegisterPayload) error
	Login(ctx context.Context, payload *LoginPayload) (*Session, error)
	Me(ctx context.Context, identity *jwt_generator.Identity) (*user.UserDocument, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	SendOtp(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, payload *ResetPasswordPayload) error
}

type Option func(s *service)

// WithClock replaces time.Now for otp expiry.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

type service struct {
	userRepository user.Repository
	otpRepository  otp.Repository
	jwtGenerator   jwt_generator.JwtGenerator
	mailer         mailer.Mailer
	now            func() time.Time
}

func NewService(
	userRepository user.Repository,
	otpRepository otp.Repository,
	jwtGenerator jwt_generator.JwtGenerator,
	mailer mailer.Mailer,
	options ...Option,
) Service {
	s := &service{
		userRepository: userRepository,
		otpRepository:  otpRepository,
		jwtGenerator:   jwtGenerator,
		mailer:         mailer,
		now:            time.Now,
	}
	for _, option := range options {
		option(s)
	}

	return s
}

// dummyPasswordHash is compared against when the email is unknown so both
// login failures cost one bcrypt comparison.
var dummyPasswordHash, _ = bcrypt.GenerateFromPassword([]byte("taskly"), PasswordHashCost)

func (s *service) Register(ctx context.Context, payload *RegisterPayload) error {
	log := logger.FromContext(ctx)

	userId := uuid.New().String()
	var profile *user.Profile
	if user.HasProfile(payload.Role) {
		var ok bool
		profile, ok = user.NewProfile(payload.Role, userId, payload.profilePayload())
		if !ok {
			return cerror.ErrorMissingRoleFields.With(zap.String("role", payload.Role))
		}
	}

	_, err := s.userRepository.FindUserWithEmail(ctx, payload.Email)
	if err == nil {
		return cerror.ErrorDuplicateEmail.With(zap.String("email", payload.Email))
	}
	if !cerror.IsKind(err, cerror.KindNotFound) {
		return err
	}

	hashedPassword, err := hashPassword(payload.Password)
	if err != nil {
		return err
	}

	err = s.userRepository.InsertUser(ctx, &user.UserDocument{
		Id:        userId,
		Email:     payload.Email,
		Password:  hashedPassword,
		Role:      payload.Role,
		CreatedAt: s.now().UTC().Unix(),
	})
	if err != nil {
		return err
	}

	if profile == nil {
		return nil
	}

	err = s.userRepository.InsertProfile(ctx, payload.Role, profile)
	if err != nil {
		if deleteErr := s.userRepository.DeleteUserWithId(ctx, userId); deleteErr != nil {
			log.Errorw("failed to roll back user without profile",
				zap.String("userId", userId),
				zap.Error(deleteErr),
			)
		}
		return err
	}

	return nil
}

func (s *service) Login(ctx context.Context, payload *LoginPayload) (*Session, error) {
	foundUser, err := s.userRepository.FindUserWithEmail(ctx, payload.Email)
	if err != nil {
		if !cerror.IsKind(err, cerror.KindNotFound) {
			return nil, err
		}

		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(payload.Password))
		return nil, cerror.ErrorInvalidCredentials.With(zap.String("reason", "unknown email"))
	}

	err = bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(payload.Password))
	if err != nil {
		return nil, cerror.ErrorInvalidCredentials.With(
			zap.String("reason", "password mismatch"),
			zap.String("userId", foundUser.Id),
		)
	}

	identity := jwt_generator.Identity{
		Id:    foundUser.Id,
		Email: foundUser.Email,
		Role:  foundUser.Role,
	}
	tokens, err := s.jwtGenerator.IssueTokens(identity)
	if err != nil {
		return nil, cerror.ErrorGenerateAccessToken.With(zap.Error(err))
	}

	session := &Session{
		Tokens: tokens,
		User:   &identity,
	}
	if !user.HasProfile(foundUser.Role) {
		return session, nil
	}

	profile, err := s.userRepository.FindProfile(ctx, foundUser.Role, foundUser.Id)
	if err != nil && !cerror.IsKind(err, cerror.KindNotFound) {
		return nil, err
	}
	session.Profile = profile

	return session, nil
}

func (s *service) Me(ctx context.Context, identity *jwt_generator.Identity) (*user.UserDocument, error) {
	return s.userRepository.FindUserWithId(ctx, identity.Id)
}

// Refresh mints a new access token from the refresh token's claims. The
// refresh token itself is neither rotated nor looked up.
func (s *service) Refresh(_ context.Context, refreshToken string) (string, error) {
	identity, err := s.jwtGenerator.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", cerror.ErrorForbidden.With(zap.String("reason", "invalid refresh token"), zap.Error(err))
	}

	accessToken, err := s.jwtGenerator.IssueAccessToken(*identity)
	if err != nil {
		return "", cerror.ErrorGenerateAccessToken.With(zap.Error(err))
	}

	return accessToken, nil
}

func (s *service) SendOtp(ctx context.Context, email string) error {
	if _, err := s.userRepository.FindUserWithEmail(ctx, email); err != nil {
		return err
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return cerror.Internal("error occurred while generate otp", err)
	}

	if err = s.otpRepository.DeleteOtpsWithEmail(ctx, email); err != nil {
		return err
	}

	now := s.now().UTC()
	err = s.otpRepository.InsertOtp(ctx, &otp.OtpDocument{
		Id:        uuid.New().String(),
		Email:     email,
		CodeHash:  otp.HashCode(code),
		ExpiresAt: now.Add(otp.CodeTTL),
		CreatedAt: now,
	})
	if err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Your password reset code is %s. It expires in %d minutes.",
		code,
		int(otp.CodeTTL.Minutes()),
	)
	if err = s.mailer.Send(ctx, email, otpMailSubject, body); err != nil {
		return cerror.Internal("error occurred while send otp mail", err)
	}

	return nil
}

// ResetPassword consumes the code: every code of the email is deleted before
// the new password is stored, so a code works at most once. The password is
// hashed first so a rejected password leaves the code usable.
func (s *service) ResetPassword(ctx context.Context, payload *ResetPasswordPayload) error {
	storedOtp, err := s.otpRepository.FindValidOtp(ctx, payload.Email, s.now().UTC())
	if err != nil {
		return err
	}

	if !otp.EqualHash(storedOtp.CodeHash, otp.HashCode(payload.Otp)) {
		return cerror.ErrorInvalidOrExpiredOTP.With(zap.String("reason", "code mismatch"))
	}

	hashedPassword, err := hashPassword(payload.NewPassword)
	if err != nil {
		return err
	}

	if err = s.otpRepository.DeleteOtpsWithEmail(ctx, payload.Email); err != nil {
		return err
	}

	return s.userRepository.UpdatePasswordWithEmail(ctx, payload.Email, hashedPassword)
}

func hashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", cerror.ErrorBadRequest.With(zap.Int("passwordBytes", len(password))).
			SetMessage("password is too long")
	}
	if err != nil {
		return "", cerror.Internal("error occurred while generate hash from password", err)
	}

	return string(hashedPassword), nil
}
