package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	users      map[string]*User
	onboarding map[string]string
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:      make(map[string]*User),
		onboarding: make(map[string]string),
	}
}

func (r *InMemoryUserRepository) Save(user *User) error {
	// Generate UUID if not already set
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.Email] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(email string) (bool, error) {
	_, exists := r.users[email]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByEmail(email string) (*User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (r *InMemoryUserRepository) GetOnboardingStatus(_ context.Context, userID string) (string, error) {
	return r.onboarding[userID], nil
}

func (r *InMemoryUserRepository) UpdateOnboardingStatus(_ context.Context, userID string, status string) error {
	for _, u := range r.users {
		if u.ID == userID {
			r.onboarding[userID] = status
			return nil
		}
	}
	return errors.New("user not found")
}
