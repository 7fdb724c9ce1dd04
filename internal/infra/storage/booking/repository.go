package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ShareItService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"start_date",
			"end_date",
			"status",
			"item_id",
			"booker_id",
		).
		Values(
			booking.Start.UTC(),
			booking.End.UTC(),
			booking.Status,
			booking.ItemID,
			booking.BookerID,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе с названием и владельцем вещи
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().Where(squirrel.Eq{"b.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListByBooker возвращает бронирования пользователя, новые первыми
func (r *Repository) ListByBooker(ctx context.Context, bookerID int64) ([]*domain.Booking, error) {
	return r.list(ctx, "ListByBooker", selectBookings().
		Where(squirrel.Eq{"b.booker_id": bookerID}).
		OrderBy("b.start_date DESC", "b.id DESC"))
}

// ListByItemOwner возвращает бронирования всех вещей владельца, новые первыми
func (r *Repository) ListByItemOwner(ctx context.Context, ownerID int64) ([]*domain.Booking, error) {
	return r.list(ctx, "ListByItemOwner", selectBookings().
		Where(squirrel.Eq{"i.owner_id": ownerID}).
		OrderBy("b.start_date DESC", "b.id DESC"))
}

// ListByItemAndStatus возвращает бронирования вещи с заданным статусом по возрастанию начала
func (r *Repository) ListByItemAndStatus(ctx context.Context, itemID int64, status domain.BookingStatus) ([]*domain.Booking, error) {
	return r.list(ctx, "ListByItemAndStatus", selectBookings().
		Where(squirrel.Eq{"b.item_id": itemID, "b.status": status}).
		OrderBy("b.start_date ASC", "b.id ASC"))
}

// FindLastCompleted возвращает последнее завершившееся к моменту now бронирование
// пользователя на вещь. Статус не учитывается.
func (r *Repository) FindLastCompleted(ctx context.Context, bookerID, itemID int64, now time.Time) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := lastCompleted(bookerID, itemID, now).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindLastCompleted - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindLastCompleted - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// UpdateStatusIfWaiting меняет статус, только если бронирование все еще WAITING.
// Условие в WHERE делает решение атомарным при конкурентных запросах.
func (r *Repository) UpdateStatusIfWaiting(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id, "status": domain.StatusWaiting}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusIfWaiting - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusIfWaiting - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatusIfWaiting - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotWaiting
	}

	return nil
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Booking, error) {
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

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"b.id",
		"b.start_date",
		"b.end_date",
		"b.status",
		"b.item_id",
		"b.booker_id",
		"i.name",
		"i.owner_id",
	).
		From("bookings b").
		Join("items i ON i.id = b.item_id")
}

func lastCompleted(bookerID, itemID int64, now time.Time) squirrel.SelectBuilder {
	return selectBookings().
		Where(squirrel.Eq{"b.booker_id": bookerID, "b.item_id": itemID}).
		Where(squirrel.Lt{"b.end_date": now.UTC()}).
		OrderBy("b.end_date DESC").
		Limit(1)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var status string

	if err := row.Scan(
		&b.ID,
		&b.Start,
		&b.End,
		&status,
		&b.ItemID,
		&b.BookerID,
		&b.ItemName,
		&b.ItemOwnerID,
	); err != nil {
		return nil, err
	}

	b.Status = domain.BookingStatus(status)
	return &b, nil
}
