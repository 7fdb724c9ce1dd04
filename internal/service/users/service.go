package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareItService/internal/service/users/models"
)

// Service сервис для работы с пользователями
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create регистрирует пользователя. Email уникален без учета регистра.
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("CreateUser: creating user email=%s", req.Email)

	if err := validateName(req.Name); err != nil {
		s.logger.Warn("CreateUser: validation failed: %v", err)
		return nil, err
	}
	if err := validateEmail(req.Email); err != nil {
		s.logger.Warn("CreateUser: validation failed: %v", err)
		return nil, err
	}

	user, err := s.userRepo.Create(ctx, &domain.User{Name: req.Name, Email: req.Email})
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailAlreadyExists) {
			s.logger.Warn("CreateUser: email=%s already in use", req.Email)
			return nil, fmt.Errorf("%w: %s", ErrEmailConflict, req.Email)
		}
		s.logger.Error("CreateUser: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateUser: successfully created user id=%d", user.ID)
	return models.FromDomainUser(user), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.get(ctx, "GetUser", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainUser(user), nil
}

// List возвращает всех пользователей
func (s *Service) List(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUserList(users), nil
}

// Update применяет к пользователю только переданные поля
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("UpdateUser: updating user id=%d", id)

	user, err := s.get(ctx, "UpdateUser", id)
	if err != nil {
		return nil, err
	}

	if name, ok := req.Name.Get(); ok {
		if err := validateName(name); err != nil {
			s.logger.Warn("UpdateUser: validation failed for user id=%d: %v", id, err)
			return nil, err
		}
	}
	if email, ok := req.Email.Get(); ok {
		if err := validateEmail(email); err != nil {
			s.logger.Warn("UpdateUser: validation failed for user id=%d: %v", id, err)
			return nil, err
		}
	}

	user.Apply(req.ToDomainPatch())

	if err := s.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, userRepo.ErrEmailAlreadyExists):
			s.logger.Warn("UpdateUser: email=%s already in use", user.Email)
			return nil, fmt.Errorf("%w: %s", ErrEmailConflict, user.Email)
		case errors.Is(err, userRepo.ErrUserNotFound):
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateUser: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateUser: successfully updated user id=%d", id)
	return models.FromDomainUser(user), nil
}

// Delete удаляет пользователя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("DeleteUser: deleting user id=%d", id)

	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("DeleteUser: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("DeleteUser: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: repository error for user id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return user, nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !domain.IsValidEmail(email) {
		return fmt.Errorf("%w: email must contain @", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is longer than %d characters", ErrInvalidInput, domain.MaxEmailLength)
	}
	return nil
}
