package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShareItService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с запросами вещей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория запросов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый запрос вещи
func (r *Repository) Create(ctx context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("requests").
		Columns("description", "requestor_id", "created").
		Values(req.Description, req.RequestorID, req.Created.UTC()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&req.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает запрос по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectRequests().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var req domain.ItemRequest
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&req.ID,
		&req.Description,
		&req.RequestorID,
		&req.Created,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan request: %v", ErrScanRow, err)
	}

	return &req, nil
}

// ListByRequestor возвращает запросы пользователя, новые первыми
func (r *Repository) ListByRequestor(ctx context.Context, requestorID int64) ([]*domain.ItemRequest, error) {
	return r.list(ctx, "ListByRequestor", requestsByRequestor(requestorID))
}

// ListExceptRequestor возвращает запросы всех остальных пользователей, новые первыми
func (r *Repository) ListExceptRequestor(ctx context.Context, requestorID int64) ([]*domain.ItemRequest, error) {
	return r.list(ctx, "ListExceptRequestor", requestsExceptRequestor(requestorID))
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.ItemRequest, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	requests := make([]*domain.ItemRequest, 0)
	for rows.Next() {
		var req domain.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return requests, nil
}

func selectRequests() squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "description", "requestor_id", "created").From("requests")
}

func requestsByRequestor(requestorID int64) squirrel.SelectBuilder {
	return selectRequests().
		Where(squirrel.Eq{"requestor_id": requestorID}).
		OrderBy("created DESC", "id DESC")
}

func requestsExceptRequestor(requestorID int64) squirrel.SelectBuilder {
	return selectRequests().
		Where(squirrel.NotEq{"requestor_id": requestorID}).
		OrderBy("created DESC", "id DESC")
}
