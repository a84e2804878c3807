package auth

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshExpired      = errors.New("refresh token expired")
	ErrWrongPassword       = errors.New("wrong password")
	ErrNotFound            = errors.New("user not found")
)

type Service struct {
	Store         StoreAPI
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func NewService(store StoreAPI, accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		Store:         store,
		AccessSecret:  accessSecret,
		RefreshSecret: refreshSecret,
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"`
}

func (s *Service) issueTokens(ctx context.Context, user AuthUser) (TokenPair, error) {
	accessToken, err := GenerateAccessToken(s.AccessSecret, AccessClaims{
		UserID:     user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Role:       user.Role,
		EmployeeID: user.EmployeeID,
	}, s.AccessTTL)
	if err != nil {
		return TokenPair{}, err
	}

	refreshToken, err := GenerateRefreshToken(s.RefreshSecret, user.ID, s.RefreshTTL)
	if err != nil {
		return TokenPair{}, err
	}

	// The stored token is the only one accepted on refresh, so issuing a new
	// one invalidates every previously issued refresh token for the user.
	if err := s.Store.SaveRefreshToken(ctx, user.ID, refreshToken); err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.AccessTTL.Seconds()),
	}, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (TokenPair, AuthUser, error) {
	user, err := s.Store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TokenPair{}, AuthUser{}, ErrInvalidCredentials
		}
		return TokenPair{}, AuthUser{}, err
	}

	if err := CheckPassword(user.Password, password); err != nil {
		return TokenPair{}, AuthUser{}, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, user)
	if err != nil {
		return TokenPair{}, AuthUser{}, err
	}
	return pair, user, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := ParseRefreshToken(s.RefreshSecret, refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}

	user, err := s.Store.FindUserByRefreshToken(ctx, claims.UserID, refreshToken)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, err
	}

	return s.issueTokens(ctx, user)
}

func (s *Service) Logout(ctx context.Context, userID int64) error {
	return s.Store.ClearRefreshToken(ctx, userID)
}

func (s *Service) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	hash, err := s.Store.PasswordHash(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	if err := CheckPassword(hash, currentPassword); err != nil {
		return ErrWrongPassword
	}

	newHash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.Store.UpdatePassword(ctx, userID, newHash)
}

func (s *Service) Me(ctx context.Context, userID int64) (Profile, error) {
	profile, err := s.Store.FindProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return profile, nil
}
