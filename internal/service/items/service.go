package items

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	itemRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
	requestRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/request"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareItService/internal/service/items/models"
)

// Service сервис для работы с вещами
type Service struct {
	itemRepo    ItemRepository
	userRepo    UserRepository
	requestRepo RequestRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса вещей
func NewService(
	itemRepo ItemRepository,
	userRepo UserRepository,
	requestRepo RequestRepository,
	logger Logger,
) *Service {
	return &Service{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		requestRepo: requestRepo,
		logger:      logger,
	}
}

// Create добавляет вещь от имени владельца.
// Если указан requestId, запрос должен существовать.
func (s *Service) Create(ctx context.Context, ownerID int64, req *models.CreateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("CreateItem: owner=%d, name=%s", ownerID, req.Name)

	if err := s.ensureUser(ctx, "CreateItem", ownerID); err != nil {
		return nil, err
	}

	if err := validateCreate(req); err != nil {
		s.logger.Warn("CreateItem: validation failed: %v", err)
		return nil, err
	}

	if req.RequestID != nil {
		if _, err := s.requestRepo.GetByID(ctx, *req.RequestID); err != nil {
			if errors.Is(err, requestRepo.ErrRequestNotFound) {
				s.logger.Warn("CreateItem: request id=%d not found", *req.RequestID)
				return nil, ErrRequestNotFound
			}
			s.logger.Error("CreateItem: failed to get request id=%d: %v", *req.RequestID, err)
			return nil, fmt.Errorf("%w: Create - failed to get request: %v", ErrInternal, err)
		}
	}

	item, err := s.itemRepo.Create(ctx, &domain.Item{
		Name:        req.Name,
		Description: *req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	})
	if err != nil {
		s.logger.Error("CreateItem: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateItem: successfully created item id=%d", item.ID)
	return models.FromDomainItem(item), nil
}

// Update применяет патч к вещи. Для не-владельца вещь считается ненайденной.
func (s *Service) Update(ctx context.Context, ownerID, itemID int64, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	s.logger.Info("UpdateItem: item id=%d by user=%d", itemID, ownerID)

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			s.logger.Warn("UpdateItem: item id=%d not found", itemID)
			return nil, ErrItemNotFound
		}
		s.logger.Error("UpdateItem: repository error for item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if !item.IsOwnedBy(ownerID) {
		s.logger.Warn("UpdateItem: user=%d is not the owner of item id=%d", ownerID, itemID)
		return nil, ErrItemNotFound
	}

	if name, ok := req.Name.Get(); ok && strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name can not be blank", ErrInvalidInput)
	}

	item.Apply(req.ToDomainPatch())

	if err := s.itemRepo.Update(ctx, item); err != nil {
		if errors.Is(err, itemRepo.ErrItemNotFound) {
			return nil, ErrItemNotFound
		}
		s.logger.Error("UpdateItem: repository error for item id=%d: %v", itemID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateItem: successfully updated item id=%d", itemID)
	return models.FromDomainItem(item), nil
}

// Delete удаляет вещь, если ей владеет пользователь. Иначе ничего не делает.
func (s *Service) Delete(ctx context.Context, ownerID, itemID int64) error {
	s.logger.Info("DeleteItem: item id=%d by user=%d", itemID, ownerID)

	if err := s.itemRepo.DeleteByOwner(ctx, itemID, ownerID); err != nil {
		s.logger.Error("DeleteItem: repository error for item id=%d: %v", itemID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
	return nil
}

// Search ищет доступные вещи. Пустой текст дает пустой результат без запроса в хранилище.
func (s *Service) Search(ctx context.Context, text string) ([]*models.ItemResponse, error) {
	if strings.TrimSpace(text) == "" {
		return []*models.ItemResponse{}, nil
	}

	found, err := s.itemRepo.Search(ctx, text)
	if err != nil {
		s.logger.Error("SearchItems: repository error for text=%q: %v", text, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SearchItems: found %d items for text=%q", len(found), text)
	return models.FromDomainItemList(found), nil
}

// ListByOwner возвращает вещи пользователя
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]*models.ItemResponse, error) {
	if err := s.ensureUser(ctx, "ListOwnerItems", ownerID); err != nil {
		return nil, err
	}

	owned, err := s.itemRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("ListOwnerItems: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ListByOwner - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainItemList(owned), nil
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

func validateCreate(req *models.CreateItemRequest) error {
	if req.Available == nil {
		return fmt.Errorf("%w: available is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Description == nil {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len([]rune(*req.Description)) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is longer than %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	return nil
}
