package identity

import (
	"context"
	"errors"
	"time"

	"github.com/bizdash/backend/internal/domain/hr"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned for any login failure. The cause
// (unknown email, wrong password, departed staff) is deliberately not
// distinguished in the response.
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")

// PasswordVerifier checks a password against a stored hash
type PasswordVerifier interface {
	Compare(hash, password string) error
}

// TokenIssuer mints a signed session token for a staff login
type TokenIssuer interface {
	Issue(staffID uuid.UUID, name, email, role string) (string, time.Time, error)
}

// LoginRequest is the login form payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// StaffSummary identifies the logged-in staff member
type StaffSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

// LoginResponse carries the issued token and the staff identity
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	Staff     StaffSummary `json:"staff"`
}

// AuthService handles dashboard logins
type AuthService struct {
	staffRepo hr.StaffRepository
	passwords PasswordVerifier
	tokens    TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(staffRepo hr.StaffRepository, passwords PasswordVerifier, tokens TokenIssuer) *AuthService {
	return &AuthService{staffRepo: staffRepo, passwords: passwords, tokens: tokens}
}

// Login verifies credentials and issues a session token. Staff who
// have left cannot log in even with a valid password.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	staff, err := s.staffRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !staff.IsActive() || staff.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := s.passwords.Compare(staff.PasswordHash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(staff.ID, staff.Name, staff.Email, string(staff.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Staff: StaffSummary{
			ID:    staff.ID,
			Name:  staff.Name,
			Email: staff.Email,
			Role:  string(staff.Role),
		},
	}, nil
}
