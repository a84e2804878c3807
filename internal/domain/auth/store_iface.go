package auth

import "context"

type StoreAPI interface {
	FindUserByEmail(ctx context.Context, email string) (AuthUser, error)
	FindUserByRefreshToken(ctx context.Context, userID int64, refreshToken string) (AuthUser, error)
	SaveRefreshToken(ctx context.Context, userID int64, refreshToken string) error
	ClearRefreshToken(ctx context.Context, userID int64) error
	PasswordHash(ctx context.Context, userID int64) (string, error)
	UpdatePassword(ctx context.Context, userID int64, hash string) error
	FindProfile(ctx context.Context, userID int64) (Profile, error)
}
