package usecase

import "context"

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	GetUserByEmail(ctx context.Context, email string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
}
