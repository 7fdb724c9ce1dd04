package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	requestRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/request"
)

type requestRow struct {
	id          int64
	description string
	requestorID int64
	created     time.Time
}

func (r requestRow) toDomain() *domain.ItemRequest {
	return &domain.ItemRequest{
		ID:          r.id,
		Description: r.description,
		RequestorID: r.requestorID,
		Created:     r.created,
	}
}

// RequestRepository запросы вещей в памяти
type RequestRepository struct {
	s *Store
}

func (r *RequestRepository) Create(_ context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[req.RequestorID]; !ok {
		return nil, requestRepo.ErrExecQuery
	}

	r.s.seq.request++
	req.ID = r.s.seq.request
	r.s.requests[req.ID] = requestRow{
		id:          req.ID,
		description: req.Description,
		requestorID: req.RequestorID,
		created:     req.Created,
	}
	return req, nil
}

func (r *RequestRepository) GetByID(_ context.Context, id int64) (*domain.ItemRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.requests[id]
	if !ok {
		return nil, requestRepo.ErrRequestNotFound
	}
	return row.toDomain(), nil
}

func (r *RequestRepository) ListByRequestor(_ context.Context, requestorID int64) ([]*domain.ItemRequest, error) {
	return r.filter(func(row requestRow) bool { return row.requestorID == requestorID }), nil
}

func (r *RequestRepository) ListExceptRequestor(_ context.Context, requestorID int64) ([]*domain.ItemRequest, error) {
	return r.filter(func(row requestRow) bool { return row.requestorID != requestorID }), nil
}

func (r *RequestRepository) filter(match func(requestRow) bool) []*domain.ItemRequest {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	requests := make([]*domain.ItemRequest, 0)
	for _, id := range sortedIDs(r.s.requests) {
		if row := r.s.requests[id]; match(row) {
			requests = append(requests, row.toDomain())
		}
	}

	sort.SliceStable(requests, func(i, j int) bool {
		if requests[i].Created.Equal(requests[j].Created) {
			return requests[i].ID > requests[j].ID
		}
		return requests[i].Created.After(requests[j].Created)
	})
	return requests
}
