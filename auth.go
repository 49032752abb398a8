package main

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticator checks admin credentials against the users table.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) error
}

type userAuth struct {
	db *gorm.DB
}

func (a userAuth) Authenticate(ctx context.Context, email, password string) error {
	var user User
	err := a.db.WithContext(ctx).Where("email = ?", strings.TrimSpace(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrInvalidCredentials
	}
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
