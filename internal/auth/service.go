package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

// REGISTER (signups are techs; admins are provisioned by hand)
func (s *Service) Register(name, email, password string) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errors.New("missing required fields")
	}

	exists, _ := s.repo.ExistsByEmail(email)
	if exists {
		return nil, errors.New("email already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := &User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     RoleTech,
	}

	if err := s.repo.Save(user); err != nil {
		return nil, err
	}

	return user, nil
}

// LOGIN
func (s *Service) Login(email, password string) (*User, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(user.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// --------------------------------------------------
// Onboarding checklist
// --------------------------------------------------

var validOnboardingStatus = map[string]bool{
	OnboardingProfileSaved: true,
	OnboardingMenuSaved:    true,
	OnboardingComplete:     true,
}

// OnboardingStatus returns the last setup step the tech completed,
// or "" when onboarding has not started.
func (s *Service) OnboardingStatus(ctx context.Context, userID string) (string, error) {
	return s.repo.GetOnboardingStatus(ctx, userID)
}

func (s *Service) SetOnboardingStatus(ctx context.Context, userID, status string) error {
	if !validOnboardingStatus[status] {
		return fmt.Errorf("unknown onboarding status %q", status)
	}
	return s.repo.UpdateOnboardingStatus(ctx, userID, status)
}
