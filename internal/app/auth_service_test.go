package app

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/admin"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/security"
)

type fakeAdminRepo struct {
	mu    sync.Mutex
	users map[string]*admin.User
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{users: make(map[string]*admin.User)}
}

func (r *fakeAdminRepo) add(t *testing.T, email, password string) *admin.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected hash, got %v", err)
	}
	user := &admin.User{
		ID:           common.NewUUID(),
		Email:        email,
		Name:         "HR Admin",
		PasswordHash: string(hash),
		Role:         admin.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	}
	r.mu.Lock()
	r.users[strings.ToLower(email)] = user
	r.mu.Unlock()
	return user
}

func (r *fakeAdminRepo) FindByEmail(ctx context.Context, email string) (*admin.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "admin not found", nil)
	}
	copy := *user
	return &copy, nil
}

func (r *fakeAdminRepo) GetByID(ctx context.Context, id common.UUID) (*admin.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.ID == id {
			copy := *user
			return &copy, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "admin not found", nil)
}

func TestAuthServiceLogin_Success(t *testing.T) {
	admins := newFakeAdminRepo()
	account := admins.add(t, "hr@example.com", "s3cret-pass")
	jwtProvider := security.NewJWTProvider("test-secret")
	service := NewAuthService(admins, jwtProvider, time.Hour)

	session, err := service.Login(context.Background(), "HR@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected session token")
	}
	if session.User.ID != account.ID {
		t.Fatalf("expected user %s, got %s", account.ID, session.User.ID)
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Fatalf("expected future expiry, got %v", session.ExpiresAt)
	}

	claims, err := jwtProvider.Parse(session.Token)
	if err != nil {
		t.Fatalf("expected parseable token, got %v", err)
	}
	if claims.UserID != account.ID.String() {
		t.Fatalf("expected user id in claims, got %q", claims.UserID)
	}
	if claims.Role != string(admin.RoleAdmin) {
		t.Fatalf("expected admin role claim, got %q", claims.Role)
	}
}

func TestAuthServiceLogin_WrongPassword(t *testing.T) {
	admins := newFakeAdminRepo()
	admins.add(t, "hr@example.com", "s3cret-pass")
	service := NewAuthService(admins, security.NewJWTProvider("test-secret"), time.Hour)

	_, err := service.Login(context.Background(), "hr@example.com", "wrong")
	if !common.Is(err, common.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuthServiceLogin_UnknownEmailLooksTheSame(t *testing.T) {
	admins := newFakeAdminRepo()
	admins.add(t, "hr@example.com", "s3cret-pass")
	service := NewAuthService(admins, security.NewJWTProvider("test-secret"), time.Hour)

	_, wrongPassword := service.Login(context.Background(), "hr@example.com", "wrong")
	_, unknownEmail := service.Login(context.Background(), "ghost@example.com", "wrong")
	if !common.Is(wrongPassword, common.CodeUnauthorized) || !common.Is(unknownEmail, common.CodeUnauthorized) {
		t.Fatalf("expected identical unauthorized errors, got %v and %v", wrongPassword, unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("expected identical messages, got %q and %q", wrongPassword.Error(), unknownEmail.Error())
	}
}

func TestAuthServiceLogin_EmptyCredentials(t *testing.T) {
	service := NewAuthService(newFakeAdminRepo(), security.NewJWTProvider("test-secret"), time.Hour)
	if _, err := service.Login(context.Background(), "", ""); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
