package service

import (
	"context"
	"crypto/subtle"
	"errors"

	"gorm.io/gorm"

	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/models"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/repo"
	"github.com/YSDX-JuyeonTech-Better/better-web-admin/internal/tokens"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInactiveAccount    = errors.New("account deactivated")
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

// Login checks the supplied credentials against the stored password
// (stored as supplied, no hashing) and issues an HS256 access token
// carrying the user's role.
func (s *AuthService) Login(ctx context.Context, loginID, password string) (string, *models.User, error) {
	user, err := s.Repo.GetUserByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !user.IsActive {
		return "", nil, ErrInactiveAccount
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return "", nil, ErrInvalidCredentials
	}

	role := "user"
	if user.IsAdmin {
		role = "admin"
	}

	token, err := tokens.SignAccessToken(user.Idx, user.ID, role, s.JWTSecret)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}
