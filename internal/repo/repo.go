package repo

import (
	"context"
	"errors"
	"strings"
	"sync"
)

var ErrUserExists = errors.New("user already exists")

type Repository interface {
	CreateUser(ctx context.Context, login, passwordHash string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
}

type account struct {
	id   int
	hash string
}

// MemoryUserRepository holds the accounts allowed to use the API. It is
// seeded from configuration at startup and lives as long as the process.
type MemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[string]account
	nextID int
}

func NewMemoryUserDB() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]account), nextID: 1}
}

func (r *MemoryUserRepository) CreateUser(ctx context.Context, login, passwordHash string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	key := strings.ToLower(strings.TrimSpace(login))
	if key == "" {
		return 0, errors.New("empty login")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[key]; exists {
		return 0, ErrUserExists
	}
	id := r.nextID
	r.nextID++
	r.users[key] = account{id: id, hash: passwordHash}
	return id, nil
}

// GetByLogin returns a zero id and empty hash when the login is unknown.
func (r *MemoryUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	if err := ctx.Err(); err != nil {
		return 0, "", err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.users[strings.ToLower(strings.TrimSpace(login))]
	if !ok {
		return 0, "", nil
	}
	return a.id, a.hash, nil
}
