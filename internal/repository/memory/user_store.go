// Package memory provides in-memory implementations of the domain
// repositories. They back tests and the no-database mode, where every
// process owns its own collections and nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"pediatric-gastro-api/internal/domain/entity"
	domainRepo "pediatric-gastro-api/internal/domain/repository"
)

type UserStore struct {
	mu    sync.Mutex
	users []entity.User
	seq   int
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

var _ domainRepo.UserRepository = (*UserStore)(nil)

func (s *UserStore) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, *user)
	return nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, nil
}

func (s *UserStore) FindAll(ctx context.Context) ([]entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *UserStore) Update(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *UserStore) NextSequence(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq, nil
}
