package graph

import (
	"errors"
	"log"

	"github.com/graphql-go/graphql"
	"github.com/userdock/apiserver/internal/services"
	"github.com/userdock/apiserver/internal/store"
	"github.com/userdock/apiserver/types"
)

// API-visible error strings. Write failures travel in the response
// envelope's error field, never as protocol-level faults.
const (
	msgUserNotFound = "User not found"
	msgBadPassword  = "Invalid password"
	msgDuplicate    = "User with this username or email already exists"
	msgLoginFailed  = "Error during login"
	msgCreateFailed = "Error creating user"
	msgUpdateFailed = "Error updating user"
)

// UserResponse is the envelope returned by createUser and updateUser.
type UserResponse struct {
	Error string
	User  *types.User
}

// LoginResponse is the envelope returned by login.
type LoginResponse struct {
	Error string
	Token string
	User  *types.User
}

// Resolver maps the API operations onto the user service.
type Resolver struct {
	users *services.UserService
}

func NewResolver(users *services.UserService) *Resolver {
	return &Resolver{users: users}
}

// Users returns all users. Password digests are never loaded.
func (r *Resolver) Users(p graphql.ResolveParams) (any, error) {
	return r.users.List(p.Context)
}

// User returns a single user by id, or null when the id is unknown.
func (r *Resolver) User(p graphql.ResolveParams) (any, error) {
	id, _ := p.Args["id"].(string)

	user, err := r.users.Get(p.Context, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a session token.
func (r *Resolver) Login(p graphql.ResolveParams) (any, error) {
	username, _ := p.Args["username"].(string)
	password, _ := p.Args["password"].(string)

	user, token, err := r.users.Authenticate(p.Context, username, password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return LoginResponse{Error: msgUserNotFound}, nil
		case errors.Is(err, services.ErrInvalidPassword):
			return LoginResponse{Error: msgBadPassword}, nil
		default:
			log.Printf("login failed for %q: %v", username, err)
			return LoginResponse{Error: msgLoginFailed}, nil
		}
	}

	return LoginResponse{Token: token, User: &user}, nil
}

// CreateUser validates and inserts a new user.
func (r *Resolver) CreateUser(p graphql.ResolveParams) (any, error) {
	input := services.CreateUserInput{
		Username:    stringArg(p, "username"),
		Email:       stringArg(p, "email"),
		Password:    stringArg(p, "password"),
		FirstName:   stringArg(p, "firstName"),
		LastName:    stringArg(p, "lastName"),
		PhoneNumber: stringArg(p, "phoneNumber"),
	}
	if role, ok := p.Args["role"].(types.Role); ok {
		input.Role = role
	}

	user, err := r.users.Create(p.Context, input)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			return UserResponse{Error: msgDuplicate}, nil
		case isValidationError(err):
			return UserResponse{Error: err.Error()}, nil
		default:
			log.Printf("create user failed: %v", err)
			return UserResponse{Error: msgCreateFailed}, nil
		}
	}

	return UserResponse{User: &user}, nil
}

// UpdateUser applies a partial patch to an existing user.
func (r *Resolver) UpdateUser(p graphql.ResolveParams) (any, error) {
	id, _ := p.Args["id"].(string)

	input := services.UpdateUserInput{
		FirstName:   stringArg(p, "firstName"),
		LastName:    stringArg(p, "lastName"),
		PhoneNumber: stringArg(p, "phoneNumber"),
	}
	if isActive, ok := p.Args["isActive"].(bool); ok {
		input.IsActive = &isActive
	}

	user, err := r.users.Update(p.Context, id, input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return UserResponse{Error: msgUserNotFound}, nil
		}
		log.Printf("update user %s failed: %v", id, err)
		return UserResponse{Error: msgUpdateFailed}, nil
	}

	return UserResponse{User: &user}, nil
}

// DeleteUser removes a user by id. False for unknown ids and on any
// internal failure.
func (r *Resolver) DeleteUser(p graphql.ResolveParams) (any, error) {
	id, _ := p.Args["id"].(string)

	deleted, err := r.users.Delete(p.Context, id)
	if err != nil {
		log.Printf("delete user %s failed: %v", id, err)
		return false, nil
	}
	return deleted, nil
}

// TestPassword round-trips a password through hash and verify.
func (r *Resolver) TestPassword(p graphql.ResolveParams) (any, error) {
	password, _ := p.Args["password"].(string)

	ok, err := r.users.TestPassword(password)
	if err != nil {
		return false, nil
	}
	return ok, nil
}

func stringArg(p graphql.ResolveParams, name string) string {
	value, _ := p.Args[name].(string)
	return value
}

func isValidationError(err error) bool {
	return errors.Is(err, types.ErrUsernameTooShort) ||
		errors.Is(err, types.ErrInvalidEmail) ||
		errors.Is(err, types.ErrPasswordTooShort) ||
		errors.Is(err, types.ErrInvalidRole)
}
