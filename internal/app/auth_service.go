package app

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Sumukwo12/recruitment-portal-sub000/internal/common"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/domain/admin"
	"github.com/Sumukwo12/recruitment-portal-sub000/internal/security"
)

type AuthService struct {
	admins     admin.Repository
	jwt        *security.JWTProvider
	sessionTTL time.Duration
}

func NewAuthService(admins admin.Repository, jwt *security.JWTProvider, sessionTTL time.Duration) *AuthService {
	return &AuthService{admins: admins, jwt: jwt, sessionTTL: sessionTTL}
}

type Session struct {
	Token     string
	ExpiresAt time.Time
	User      admin.User
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password return the same error so the response does not reveal
// which admin accounts exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, common.NewValidationError("invalid credentials", map[string]string{
			"email": "email and password are required",
		})
	}
	user, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil, invalidCredentials()
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, invalidCredentials()
	}
	token, expiresAt, err := s.jwt.Generate(user.ID, string(user.Role), s.sessionTTL)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue session token", err)
	}
	return &Session{Token: token, ExpiresAt: expiresAt, User: *user}, nil
}

func invalidCredentials() error {
	return common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
}
