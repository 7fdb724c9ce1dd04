// Package storage собирает репозитории выбранного хранилища (PostgreSQL или память)
package storage

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/comment"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/request"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
	"github.com/m04kA/SMC-ShareItService/pkg/dbmetrics"
)

type Users interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

type Items interface {
	Create(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	DeleteByOwner(ctx context.Context, itemID, ownerID int64) error
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Item, error)
	Search(ctx context.Context, text string) ([]*domain.Item, error)
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]*domain.Item, error)
	ListByRequestID(ctx context.Context, requestID int64) ([]*domain.Item, error)
}

type Bookings interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByBooker(ctx context.Context, bookerID int64) ([]*domain.Booking, error)
	ListByItemOwner(ctx context.Context, ownerID int64) ([]*domain.Booking, error)
	ListByItemAndStatus(ctx context.Context, itemID int64, status domain.BookingStatus) ([]*domain.Booking, error)
	FindLastCompleted(ctx context.Context, bookerID, itemID int64, now time.Time) (*domain.Booking, error)
	UpdateStatusIfWaiting(ctx context.Context, id int64, status domain.BookingStatus) error
}

type Comments interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	ListByItem(ctx context.Context, itemID int64) ([]*domain.Comment, error)
	ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Comment, error)
}

type Requests interface {
	Create(ctx context.Context, req *domain.ItemRequest) (*domain.ItemRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequestor(ctx context.Context, requestorID int64) ([]*domain.ItemRequest, error)
	ListExceptRequestor(ctx context.Context, requestorID int64) ([]*domain.ItemRequest, error)
}

// Repositories репозитории всех сущностей одного хранилища
type Repositories struct {
	Users    Users
	Items    Items
	Bookings Bookings
	Comments Comments
	Requests Requests
}

// NewPostgres репозитории поверх PostgreSQL (*sql.DB или *dbmetrics.DB)
func NewPostgres(db dbmetrics.DBExecutor) Repositories {
	return Repositories{
		Users:    user.NewRepository(db),
		Items:    item.NewRepository(db),
		Bookings: booking.NewRepository(db),
		Comments: comment.NewRepository(db),
		Requests: request.NewRepository(db),
	}
}

// NewMemory репозитории поверх хранилища в памяти
func NewMemory(store *memory.Store) Repositories {
	return Repositories{
		Users:    store.Users(),
		Items:    store.Items(),
		Bookings: store.Bookings(),
		Comments: store.Comments(),
		Requests: store.Requests(),
	}
}
