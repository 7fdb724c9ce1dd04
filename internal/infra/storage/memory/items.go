package memory

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	itemRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
	"github.com/m04kA/SMC-ShareItService/pkg/ptr"
)

type itemRow struct {
	id          int64
	name        string
	description string
	available   bool
	ownerID     int64
	requestID   *int64
}

func (r itemRow) toDomain() *domain.Item {
	it := &domain.Item{
		ID:          r.id,
		Name:        r.name,
		Description: r.description,
		Available:   r.available,
		OwnerID:     r.ownerID,
	}
	if r.requestID != nil {
		it.RequestID = ptr.Ptr(*r.requestID)
	}
	return it
}

// ItemRepository вещи в памяти
type ItemRepository struct {
	s *Store
}

func (r *ItemRepository) Create(_ context.Context, item *domain.Item) (*domain.Item, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[item.OwnerID]; !ok {
		return nil, itemRepo.ErrExecQuery
	}

	r.s.seq.item++
	item.ID = r.s.seq.item

	row := itemRow{
		id:          item.ID,
		name:        item.Name,
		description: item.Description,
		available:   item.Available,
		ownerID:     item.OwnerID,
	}
	if item.RequestID != nil {
		row.requestID = ptr.Ptr(*item.RequestID)
	}
	r.s.items[item.ID] = row
	return item, nil
}

func (r *ItemRepository) GetByID(_ context.Context, id int64) (*domain.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.items[id]
	if !ok {
		return nil, itemRepo.ErrItemNotFound
	}
	return row.toDomain(), nil
}

func (r *ItemRepository) Update(_ context.Context, item *domain.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.items[item.ID]
	if !ok {
		return itemRepo.ErrItemNotFound
	}
	row.name = item.Name
	row.description = item.Description
	row.available = item.Available
	r.s.items[item.ID] = row
	return nil
}

func (r *ItemRepository) DeleteByOwner(_ context.Context, itemID, ownerID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if row, ok := r.s.items[itemID]; ok && row.ownerID == ownerID {
		r.s.deleteItemCascade(itemID)
	}
	return nil
}

func (r *ItemRepository) ListByOwner(_ context.Context, ownerID int64) ([]*domain.Item, error) {
	return r.filter(func(row itemRow) bool { return row.ownerID == ownerID }), nil
}

func (r *ItemRepository) Search(_ context.Context, text string) ([]*domain.Item, error) {
	needle := strings.ToLower(text)
	return r.filter(func(row itemRow) bool {
		return row.available &&
			(strings.Contains(strings.ToLower(row.name), needle) ||
				strings.Contains(strings.ToLower(row.description), needle))
	}), nil
}

func (r *ItemRepository) ListByRequestIDs(_ context.Context, requestIDs []int64) ([]*domain.Item, error) {
	wanted := make(map[int64]struct{}, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = struct{}{}
	}
	return r.filter(func(row itemRow) bool {
		if row.requestID == nil {
			return false
		}
		_, ok := wanted[*row.requestID]
		return ok
	}), nil
}

func (r *ItemRepository) ListByRequestID(_ context.Context, requestID int64) ([]*domain.Item, error) {
	return r.filter(func(row itemRow) bool {
		return row.requestID != nil && *row.requestID == requestID
	}), nil
}

func (r *ItemRepository) filter(match func(itemRow) bool) []*domain.Item {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := make([]*domain.Item, 0)
	for _, id := range sortedIDs(r.s.items) {
		if row := r.s.items[id]; match(row) {
			items = append(items, row.toDomain())
		}
	}
	return items
}
