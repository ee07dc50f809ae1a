package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	adminUsername   = "admin"
	adminPassword   = "admin123"
	adminDepartment = "Administration"
	adminName       = "Administrator"
)

// Service contains account management and authentication logic.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate verifies the password for the given username. Unknown users
// and wrong passwords both come back as ErrInvalidCredentials so callers
// cannot probe which usernames exist.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Create adds an account. A duplicate username is silently ignored: no row
// is written and no error is surfaced to the caller.
func (s *Service) Create(ctx context.Context, username, password, department, name string) error {
	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	return s.repo.CreateIgnoreConflict(ctx, &User{
		Username:     username,
		PasswordHash: hash,
		Department:   department,
		Name:         name,
	})
}

// Update edits an account. An empty password leaves the stored hash as-is.
func (s *Service) Update(ctx context.Context, id int64, username, password, department, name string) error {
	u := &User{
		ID:         id,
		Username:   username,
		Department: department,
		Name:       name,
	}
	if password == "" {
		return s.repo.UpdateWithoutPassword(ctx, u)
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.repo.Update(ctx, u)
}

// Delete removes the account unconditionally. Document lines and uploads
// record usernames as free text, so nothing cascades.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// EnsureAdmin seeds the admin account if it does not exist yet. The account
// has no special runtime privilege over any other user.
func (s *Service) EnsureAdmin(ctx context.Context) error {
	_, err := s.repo.GetByUsername(ctx, adminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return err
	}
	return s.Create(ctx, adminUsername, adminPassword, adminDepartment, adminName)
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
