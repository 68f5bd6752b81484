//go:build unit

package auth

import (
	"context"
	"sync"
	"time"

	"taskly-api/internal/otp"
	"taskly-api/internal/user"
	"taskly-api/pkg/cerror"
)

// in-memory stores for flow tests that need state across calls

type fakeUserRepository struct {
	mu       sync.Mutex
	users    map[string]*user.UserDocument
	profiles map[string]*user.Profile
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{
		users:    map[string]*user.UserDocument{},
		profiles: map[string]*user.Profile{},
	}
}

func (r *fakeUserRepository) EnsureIndexes(context.Context) error { return nil }

func (r *fakeUserRepository) InsertUser(_ context.Context, doc *user.UserDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == doc.Email {
			return cerror.ErrorDuplicateEmail
		}
	}
	copied := *doc
	r.users[doc.Id] = &copied
	return nil
}

func (r *fakeUserRepository) FindUserWithId(_ context.Context, userId string) (*user.UserDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.users[userId]
	if !ok {
		return nil, cerror.ErrorUserNotFound
	}
	copied := *doc
	return &copied, nil
}

func (r *fakeUserRepository) FindUserWithEmail(_ context.Context, email string) (*user.UserDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doc := range r.users {
		if doc.Email == email {
			copied := *doc
			return &copied, nil
		}
	}
	return nil, cerror.ErrorUserNotFound
}

func (r *fakeUserRepository) FindUsers(context.Context, string) ([]user.UserDocument, error) {
	return nil, nil
}

func (r *fakeUserRepository) DeleteUserWithId(_ context.Context, userId string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userId)
	return nil
}

func (r *fakeUserRepository) UpdatePasswordWithEmail(_ context.Context, email, hashedPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, doc := range r.users {
		if doc.Email == email {
			doc.Password = hashedPassword
			return nil
		}
	}
	return cerror.ErrorUserNotFound
}

func (r *fakeUserRepository) InsertProfile(_ context.Context, role string, profile *user.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *profile
	r.profiles[role+"/"+profile.UserId] = &copied
	return nil
}

func (r *fakeUserRepository) FindProfile(_ context.Context, role, userId string) (*user.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	profile, ok := r.profiles[role+"/"+userId]
	if !ok {
		return nil, user.ErrorProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeUserRepository) UpdateProfile(
	ctx context.Context,
	role, userId string,
	_ map[string]string,
) (*user.Profile, error) {
	return r.FindProfile(ctx, role, userId)
}

type fakeOtpRepository struct {
	mu   sync.Mutex
	otps []otp.OtpDocument
}

func (r *fakeOtpRepository) EnsureIndexes(context.Context) error { return nil }

func (r *fakeOtpRepository) InsertOtp(_ context.Context, doc *otp.OtpDocument) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.otps = append(r.otps, *doc)
	return nil
}

func (r *fakeOtpRepository) DeleteOtpsWithEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.otps[:0]
	for _, doc := range r.otps {
		if doc.Email != email {
			kept = append(kept, doc)
		}
	}
	r.otps = kept
	return nil
}

func (r *fakeOtpRepository) FindValidOtp(_ context.Context, email string, now time.Time) (*otp.OtpDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.otps) - 1; i >= 0; i-- {
		doc := r.otps[i]
		if doc.Email == email && doc.ExpiresAt.After(now) {
			return &doc, nil
		}
	}
	return nil, cerror.ErrorInvalidOrExpiredOTP
}

// capturingMailer keeps the last body so tests can read the code.
type capturingMailer struct {
	mu   sync.Mutex
	to   string
	body string
}

func (m *capturingMailer) Send(_ context.Context, to, _, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.to = to
	m.body = body
	return nil
}
