package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShareItService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL unique_violation
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("name", "email").
		Values(user.Name, user.Email).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByEmail ищет пользователя по email без учета регистра
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Expr("LOWER(email) = LOWER(?)", email))
}

// List возвращает всех пользователей в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectUsers().OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}

// Update перезаписывает имя и email пользователя
func (r *Repository) Update(ctx context.Context, user *domain.User) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("name", user.Name).
		Set("email", user.Email).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailAlreadyExists
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return requireAffected(result, "Update")
}

// Delete удаляет пользователя
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return requireAffected(result, "Delete")
}

func (r *Repository) getOne(ctx context.Context, op string, pred interface{}) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectUsers().Where(pred).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	return &u, nil
}

func selectUsers() squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "name", "email").From("users")
}

func requireAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
