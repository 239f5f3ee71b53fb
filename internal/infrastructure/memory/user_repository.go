package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/quizbit/quiz-service/internal/core/domain"
)

// UserRepository is an in-process user directory. Handlers run concurrently,
// so every access goes through the mutex.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}

	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	r.users[stored.Username] = &stored

	created := stored
	return &created, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (r *UserRepository) UpdateScore(_ context.Context, id string, score int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			user.Score = score
			return nil
		}
	}
	return domain.ErrUserNotFound
}
