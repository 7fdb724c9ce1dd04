package comment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShareItService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с отзывами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория отзывов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет отзыв. Имя автора в таблице не хранится.
func (r *Repository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("comments").
		Columns("text", "author_id", "item_id", "booking_id", "created").
		Values(comment.Text, comment.AuthorID, comment.ItemID, comment.BookingID, comment.Created.UTC()).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&comment.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return comment, nil
}

// ListByItem возвращает отзывы о вещи в порядке создания
func (r *Repository) ListByItem(ctx context.Context, itemID int64) ([]*domain.Comment, error) {
	return r.list(ctx, "ListByItem", selectComments().
		Where(squirrel.Eq{"c.item_id": itemID}).
		OrderBy("c.created ASC", "c.id ASC"))
}

// ListByAuthor возвращает отзывы пользователя в порядке создания
func (r *Repository) ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Comment, error) {
	return r.list(ctx, "ListByAuthor", selectComments().
		Where(squirrel.Eq{"c.author_id": authorID}).
		OrderBy("c.created ASC", "c.id ASC"))
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Comment, error) {
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

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.ID,
			&c.Text,
			&c.AuthorID,
			&c.ItemID,
			&c.BookingID,
			&c.Created,
			&c.AuthorName,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		comments = append(comments, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return comments, nil
}

func selectComments() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"c.id",
		"c.text",
		"c.author_id",
		"c.item_id",
		"c.booking_id",
		"c.created",
		"u.name",
	).
		From("comments c").
		Join("users u ON u.id = c.author_id")
}
