package item

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShareItService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с вещами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория вещей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую вещь
func (r *Repository) Create(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("items").
		Columns("name", "description", "available", "owner_id", "request_id").
		Values(item.Name, item.Description, item.Available, item.OwnerID, item.RequestID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return item, nil
}

// GetByID получает вещь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectItems().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var it domain.Item
	var requestID sql.NullInt64
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&it.ID,
		&it.Name,
		&it.Description,
		&it.Available,
		&it.OwnerID,
		&requestID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan item: %v", ErrScanRow, err)
	}
	if requestID.Valid {
		it.RequestID = &requestID.Int64
	}

	return &it, nil
}

// Update перезаписывает изменяемые поля вещи
func (r *Repository) Update(ctx context.Context, item *domain.Item) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("items").
		Set("name", item.Name).
		Set("description", item.Description).
		Set("available", item.Available).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteByOwner удаляет вещь, только если совпадают и id, и владелец.
// Несовпадение не считается ошибкой.
func (r *Repository) DeleteByOwner(ctx context.Context, itemID, ownerID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("items").
		Where(squirrel.Eq{"id": itemID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByOwner - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByOwner - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// ListByOwner возвращает вещи владельца
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error) {
	return r.list(ctx, "ListByOwner", selectItems().
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC"))
}

// Search ищет доступные вещи по подстроке в названии или описании без учета регистра
func (r *Repository) Search(ctx context.Context, text string) ([]*domain.Item, error) {
	return r.list(ctx, "Search", searchItems(text))
}

// ListByRequestIDs возвращает вещи, добавленные в ответ на любой из запросов
func (r *Repository) ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*domain.Item, error) {
	if len(requestIDs) == 0 {
		return []*domain.Item{}, nil
	}
	return r.list(ctx, "ListByRequestIDs", selectItems().
		Where(squirrel.Eq{"request_id": requestIDs}).
		OrderBy("id ASC"))
}

// ListByRequestID возвращает вещи, добавленные в ответ на запрос
func (r *Repository) ListByRequestID(ctx context.Context, requestID int64) ([]*domain.Item, error) {
	return r.list(ctx, "ListByRequestID", selectItems().
		Where(squirrel.Eq{"request_id": requestID}).
		OrderBy("id ASC"))
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Item, error) {
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

	return scanItems(rows)
}

func selectItems() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"name",
		"description",
		"available",
		"owner_id",
		"request_id",
	).From("items")
}

func searchItems(text string) squirrel.SelectBuilder {
	pattern := "%" + escapeLike(text) + "%"
	return selectItems().
		Where(squirrel.Eq{"available": true}).
		Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"description": pattern},
		}).
		OrderBy("id ASC")
}

// escapeLike экранирует спецсимволы LIKE, чтобы текст искался буквально
func escapeLike(text string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(text)
}

func scanItems(rows *sql.Rows) ([]*domain.Item, error) {
	items := make([]*domain.Item, 0)

	for rows.Next() {
		var it domain.Item
		var requestID sql.NullInt64

		if err := rows.Scan(
			&it.ID,
			&it.Name,
			&it.Description,
			&it.Available,
			&it.OwnerID,
			&requestID,
		); err != nil {
			return nil, fmt.Errorf("%w: scanItems - scan row: %v", ErrScanRow, err)
		}
		if requestID.Valid {
			id := requestID.Int64
			it.RequestID = &id
		}

		items = append(items, &it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanItems - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}
