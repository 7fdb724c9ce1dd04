package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	requestRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/request"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareItService/internal/service/requests/models"
)

// Service сервис для работы с запросами вещей
type Service struct {
	requestRepo  RequestRepository
	itemRepo     ItemRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса запросов
func NewService(
	requestRepo RequestRepository,
	itemRepo ItemRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		requestRepo:  requestRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Create сохраняет запрос вещи. Ответ всегда с пустым списком вещей.
func (s *Service) Create(ctx context.Context, userID int64, req *models.CreateRequest) (*models.ItemRequestResponse, error) {
	s.logger.Info("CreateRequest: user=%d", userID)

	if err := s.ensureUser(ctx, "CreateRequest", userID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Description) == "" {
		s.logger.Warn("CreateRequest: empty description from user=%d", userID)
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len([]rune(req.Description)) > domain.MaxRequestDescriptionLength {
		s.logger.Warn("CreateRequest: description too long from user=%d", userID)
		return nil, fmt.Errorf("%w: description is longer than %d characters", ErrInvalidInput, domain.MaxRequestDescriptionLength)
	}

	created, err := s.requestRepo.Create(ctx, &domain.ItemRequest{
		Description: req.Description,
		RequestorID: userID,
		Created:     s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Error("CreateRequest: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRequest: successfully created request id=%d", created.ID)
	return models.FromDomainRequest(created, nil), nil
}

// ListOwn возвращает запросы пользователя, новые первыми
func (s *Service) ListOwn(ctx context.Context, userID int64) ([]*models.ItemRequestResponse, error) {
	if err := s.ensureUser(ctx, "ListOwnRequests", userID); err != nil {
		return nil, err
	}

	own, err := s.requestRepo.ListByRequestor(ctx, userID)
	if err != nil {
		s.logger.Error("ListOwnRequests: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListOwn - repository error: %v", ErrInternal, err)
	}

	return s.withItems(ctx, "ListOwnRequests", own)
}

// ListOthers возвращает запросы остальных пользователей, новые первыми.
// Существование пользователя здесь не проверяется.
func (s *Service) ListOthers(ctx context.Context, userID int64) ([]*models.ItemRequestResponse, error) {
	others, err := s.requestRepo.ListExceptRequestor(ctx, userID)
	if err != nil {
		s.logger.Error("ListOthersRequests: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: ListOthers - repository error: %v", ErrInternal, err)
	}

	return s.withItems(ctx, "ListOthersRequests", others)
}

// GetByID возвращает запрос с вещами
func (s *Service) GetByID(ctx context.Context, requestID int64) (*models.ItemRequestResponse, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, requestRepo.ErrRequestNotFound) {
			s.logger.Warn("GetRequest: request id=%d not found", requestID)
			return nil, ErrRequestNotFound
		}
		s.logger.Error("GetRequest: repository error for request id=%d: %v", requestID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	items, err := s.itemRepo.ListByRequestID(ctx, requestID)
	if err != nil {
		s.logger.Error("GetRequest: failed to list items for request id=%d: %v", requestID, err)
		return nil, fmt.Errorf("%w: GetByID - failed to list items: %v", ErrInternal, err)
	}

	return models.FromDomainRequest(req, items), nil
}

// withItems подтягивает вещи для всех запросов одним обращением к хранилищу
func (s *Service) withItems(ctx context.Context, op string, reqs []*domain.ItemRequest) ([]*models.ItemRequestResponse, error) {
	ids := make([]int64, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ID)
	}

	items, err := s.itemRepo.ListByRequestIDs(ctx, ids)
	if err != nil {
		s.logger.Error("%s: failed to list items: %v", op, err)
		return nil, fmt.Errorf("%w: %s - failed to list items: %v", ErrInternal, op, err)
	}

	byRequest := make(map[int64][]*domain.Item, len(reqs))
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}

	result := make([]*models.ItemRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		result = append(result, models.FromDomainRequest(r, byRequest[r.ID]))
	}
	return result, nil
}

func (s *Service) ensureUser(ctx context.Context, op string, userID int64) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, userID)
			return ErrUserNotFound
		}
		s.logger.Error("%s: failed to get user id=%d: %v", op, userID, err)
		return fmt.Errorf("%w: %s - failed to get user: %v", ErrInternal, op, err)
	}
	return nil
}
