package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordMaxLen64 = errors.New("password too long, max 64 characters")
)

func HashPassword(password string, passCost int) (string, error) {
	if len(password) < 1 {
		return "", ErrPasswordRequired
	}
	if len(password) > 64 {
		return "", ErrPasswordMaxLen64
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), passCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Repository wraps the hash functions with a configured bcrypt cost so the
// service can depend on an interface.
type Repository struct {
	passCost int
}

func New(passCost int) *Repository {
	return &Repository{passCost: passCost}
}

func (r *Repository) HashPassword(password string) (string, error) {
	return HashPassword(password, r.passCost)
}

func (r *Repository) CheckPasswordHash(password, hash string) bool {
	return CheckPasswordHash(password, hash)
}
