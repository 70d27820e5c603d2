package usecase

import (
	"context"
	"time"

	"estateconnect/internal/domain/entity"
	"estateconnect/internal/domain/repository"
	"estateconnect/pkg/errors"
	"estateconnect/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

type AuthResult struct {
	User  *entity.User
	Token string
}

// Register creates an identity plus a profile. The role is fixed at
// signup and only customer and owner can be chosen here; admin
// accounts come from the startup bootstrap.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Role != entity.RoleCustomer && input.Role != entity.RoleOwner {
		return nil, errors.BadRequest("Role must be customer or owner", nil)
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err == nil && existingUser != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.Internal("Failed to create user in authentication provider", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:        uid,
		Email:     input.Email,
		Name:      input.Name,
		Role:      input.Role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	token, err := uc.firebaseAuth.SignInWithEmailPassword(input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to generate authentication token", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.firebaseAuth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:  user,
		Token: token,
	}, nil
}

// EnsureAdmin creates the configured administrator account on startup
// if it does not exist yet. Safe to call on every boot.
func (uc *AuthUseCase) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		logger.Warn("Admin bootstrap skipped: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, email, password, "System Administrator")
	if err != nil {
		// The identity may exist from a previous boot whose profile
		// write failed; reuse it instead of failing the bootstrap.
		uid, err = uc.firebaseAuth.GetUserByEmail(ctx, email)
		if err != nil {
			return errors.Internal("Failed to bootstrap admin account", err)
		}
	}

	now := time.Now()
	admin := &entity.User{
		ID:        uid,
		Email:     email,
		Name:      "System Administrator",
		Role:      entity.RoleAdmin,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, admin); err != nil {
		return errors.Internal("Failed to store admin profile", err)
	}

	logger.Info("Admin account bootstrapped: %s", email)
	return nil
}
