//go:generate mockgen -source=service.go -destination=mock_service.go -package=user
package user

import (
	"context"

	"go.uber.org/zap"

	"taskly-api/pkg/cerror"
	"taskly-api/pkg/jwt_generator"
)

type Service interface {
	GetProfile(ctx context.Context, identity *jwt_generator.Identity) (*ProfileResponse, error)
	UpdateProfile(
		ctx context.Context,
		identity *jwt_generator.Identity,
		payload *ProfilePayload,
	) (*ProfileResponse, error)
	GetUsers(ctx context.Context, role string) ([]UserDocument, error)
	GetUserDetail(ctx context.Context, userId string) (*UserDetailResponse, error)
}

type service struct {
	userRepository Repository
}

func NewService(userRepository Repository) Service {
	return &service{
		userRepository: userRepository,
	}
}

func (s *service) GetProfile(ctx context.Context, identity *jwt_generator.Identity) (*ProfileResponse, error) {
	if !HasProfile(identity.Role) {
		return nil, ErrorProfileNotFound.With(zap.String("role", identity.Role))
	}

	profile, err := s.userRepository.FindProfile(ctx, identity.Role, identity.Id)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{
		Role:    identity.Role,
		Profile: profile,
	}, nil
}

func (s *service) UpdateProfile(
	ctx context.Context,
	identity *jwt_generator.Identity,
	payload *ProfilePayload,
) (*ProfileResponse, error) {
	if !HasProfile(identity.Role) {
		return nil, ErrorProfileNotFound.With(zap.String("role", identity.Role))
	}

	profile, err := s.userRepository.UpdateProfile(ctx, identity.Role, identity.Id, payload.UpdateFields(identity.Role))
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{
		Role:    identity.Role,
		Profile: profile,
	}, nil
}

func (s *service) GetUsers(ctx context.Context, role string) ([]UserDocument, error) {
	return s.userRepository.FindUsers(ctx, role)
}

// GetUserDetail returns the user with its profile, which stays nil for roles
// without one or when the profile record is missing.
func (s *service) GetUserDetail(ctx context.Context, userId string) (*UserDetailResponse, error) {
	user, err := s.userRepository.FindUserWithId(ctx, userId)
	if err != nil {
		return nil, err
	}

	detail := &UserDetailResponse{
		User: user,
	}
	if !HasProfile(user.Role) {
		return detail, nil
	}

	profile, err := s.userRepository.FindProfile(ctx, user.Role, user.Id)
	if err != nil {
		if cerror.IsKind(err, cerror.KindNotFound) {
			return detail, nil
		}
		return nil, err
	}
	detail.Profile = profile

	return detail, nil
}
