package comments

import (
	"context"
	"errors"
	"fmt"

	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareItService/internal/service/comments/models"
)

// Service сервис для чтения отзывов
type Service struct {
	commentRepo CommentRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(commentRepo CommentRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		commentRepo: commentRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// ListByAuthor возвращает отзывы, оставленные пользователем
func (s *Service) ListByAuthor(ctx context.Context, authorID int64) ([]*models.CommentResponse, error) {
	if _, err := s.userRepo.GetByID(ctx, authorID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("ListAuthorComments: user id=%d not found", authorID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("ListAuthorComments: failed to get user id=%d: %v", authorID, err)
		return nil, fmt.Errorf("%w: ListByAuthor - failed to get user: %v", ErrInternal, err)
	}

	comments, err := s.commentRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		s.logger.Error("ListAuthorComments: repository error for user=%d: %v", authorID, err)
		return nil, fmt.Errorf("%w: ListByAuthor - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCommentList(comments), nil
}
