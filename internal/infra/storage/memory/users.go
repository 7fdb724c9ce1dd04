package memory

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
)

type userRow struct {
	id    int64
	name  string
	email string
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{ID: r.id, Name: r.name, Email: r.email}
}

// UserRepository пользователи в памяти
type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.emailTaken(user.Email, 0) {
		return nil, userRepo.ErrEmailAlreadyExists
	}

	r.s.seq.user++
	user.ID = r.s.seq.user
	r.s.users[user.ID] = userRow{id: user.ID, name: user.Name, email: user.Email}
	return user, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return row.toDomain(), nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range sortedIDs(r.s.users) {
		if row := r.s.users[id]; strings.EqualFold(row.email, email) {
			return row.toDomain(), nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.s.users))
	for _, id := range sortedIDs(r.s.users) {
		users = append(users, r.s.users[id].toDomain())
	}
	return users, nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return userRepo.ErrUserNotFound
	}
	if r.s.emailTaken(user.Email, user.ID) {
		return userRepo.ErrEmailAlreadyExists
	}

	r.s.users[user.ID] = userRow{id: user.ID, name: user.Name, email: user.Email}
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return userRepo.ErrUserNotFound
	}
	r.s.deleteUserCascade(id)
	return nil
}

// emailTaken проверяет уникальность email без учета регистра. Вызывать под s.mu.
func (s *Store) emailTaken(email string, exceptID int64) bool {
	for id, row := range s.users {
		if id != exceptID && strings.EqualFold(row.email, email) {
			return true
		}
	}
	return false
}
