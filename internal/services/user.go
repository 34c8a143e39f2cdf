package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/userdock/apiserver/internal/auth"
	"github.com/userdock/apiserver/internal/store"
	"github.com/userdock/apiserver/types"
)

// ErrInvalidPassword is returned by Authenticate when the username exists
// but the password attempt does not match the stored digest.
var ErrInvalidPassword = errors.New("invalid password")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	List(ctx context.Context) ([]types.User, error)
	GetByID(ctx context.Context, id string) (types.User, error)
	GetByUsernameWithPassword(ctx context.Context, username string) (types.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	Update(ctx context.Context, user types.User) (types.User, error)
	Delete(ctx context.Context, id string) error
}

// CreateUserInput carries the fields accepted by user creation.
type CreateUserInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Role        types.Role
}

// UpdateUserInput carries the patch fields accepted by user update.
// String fields apply only when non-empty; IsActive applies whenever the
// pointer is set, including an explicit false.
type UpdateUserInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	IsActive    *bool
}

// UserService encapsulates user use-cases.
type UserService struct {
	repo     UserRepository
	secret   []byte
	tokenTTL time.Duration
}

func NewUserService(repo UserRepository, jwtSecret string) *UserService {
	return &UserService{
		repo:     repo,
		secret:   []byte(jwtSecret),
		tokenTTL: auth.TokenTTL,
	}
}

// List returns all users, password digests never loaded.
func (s *UserService) List(ctx context.Context) ([]types.User, error) {
	return s.repo.List(ctx)
}

// Get returns one user by id, password digest never loaded.
func (s *UserService) Get(ctx context.Context, id string) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Authenticate verifies a username/password pair and issues a session
// token on success. The returned user has the password digest stripped.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (types.User, string, error) {
	user, err := s.repo.GetByUsernameWithPassword(ctx, username)
	if err != nil {
		return types.User{}, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return types.User{}, "", ErrInvalidPassword
	}

	token, err := auth.IssueToken(user, s.secret, s.tokenTTL)
	if err != nil {
		return types.User{}, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}

// Create validates the input, checks uniqueness, hashes the password and
// inserts the row. The pre-insert existence check is advisory: two
// concurrent creates can both pass it, and the table's unique constraints
// reject the loser as store.ErrDuplicate.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (types.User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.TrimSpace(input.Email)
	if input.Role == "" {
		input.Role = types.RoleUser
	}

	if err := types.ValidateUsername(input.Username); err != nil {
		return types.User{}, err
	}
	if err := types.ValidateEmail(input.Email); err != nil {
		return types.User{}, err
	}
	if err := types.ValidatePassword(input.Password); err != nil {
		return types.User{}, err
	}
	if err := types.ValidateRole(input.Role); err != nil {
		return types.User{}, err
	}

	exists, err := s.repo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return types.User{}, err
	}
	if exists {
		return types.User{}, store.ErrDuplicate
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return types.User{}, err
	}

	user, err := s.repo.Create(ctx, types.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
		Role:         input.Role,
		IsActive:     true,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
	})
	if err != nil {
		return types.User{}, err
	}

	user.PasswordHash = ""
	return user, nil
}

// Update loads the user and applies the patch. Only supplied, non-empty
// string fields overwrite; IsActive is applied even when explicitly false.
func (s *UserService) Update(ctx context.Context, id string, input UpdateUserInput) (types.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return types.User{}, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	return s.repo.Update(ctx, user)
}

// Delete removes the user by id. It reports false, without error, for an
// unknown id.
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// TestPassword hashes the given password and immediately verifies the
// plaintext against the fresh digest. Diagnostic only; neither the
// plaintext nor the digest is logged.
func (s *UserService) TestPassword(password string) (bool, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}
	return auth.CheckPassword(hashed, password), nil
}
