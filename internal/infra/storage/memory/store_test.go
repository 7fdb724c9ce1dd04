package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/booking"
	itemRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/item"
	userRepo "github.com/m04kA/SMC-ShareItService/internal/infra/storage/user"
)

func seed(t *testing.T, s *Store) (owner, booker *domain.User, item *domain.Item) {
	t.Helper()
	ctx := context.Background()

	owner, err := s.Users().Create(ctx, &domain.User{Name: "owner", Email: "owner@mail.ru"})
	require.NoError(t, err)
	booker, err = s.Users().Create(ctx, &domain.User{Name: "booker", Email: "booker@mail.ru"})
	require.NoError(t, err)
	item, err = s.Items().Create(ctx, &domain.Item{Name: "Дрель", Description: "Аккумуляторная", Available: true, OwnerID: owner.ID})
	require.NoError(t, err)
	return owner, booker, item
}

func TestUsers_EmailUniqueIgnoresCase(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Users().Create(ctx, &domain.User{Name: "a", Email: "A@Mail.ru"})
	require.NoError(t, err)

	_, err = s.Users().Create(ctx, &domain.User{Name: "b", Email: "a@mail.ru"})
	assert.ErrorIs(t, err, userRepo.ErrEmailAlreadyExists)

	found, err := s.Users().GetByEmail(ctx, "a@MAIL.RU")
	require.NoError(t, err)
	assert.Equal(t, "a", found.Name)
}

func TestUsers_UpdateKeepsOwnEmail(t *testing.T) {
	s := New()
	ctx := context.Background()

	u, err := s.Users().Create(ctx, &domain.User{Name: "a", Email: "a@mail.ru"})
	require.NoError(t, err)

	u.Name = "renamed"
	require.NoError(t, s.Users().Update(ctx, u))

	assert.ErrorIs(t, s.Users().Update(ctx, &domain.User{ID: 42, Email: "x@mail.ru"}), userRepo.ErrUserNotFound)
}

func TestItems_SearchAvailableOnlyCaseInsensitive(t *testing.T) {
	s := New()
	ctx := context.Background()
	owner, _, _ := seed(t, s)

	_, err := s.Items().Create(ctx, &domain.Item{Name: "Отвертка", Description: "дрель не нужна", Available: false, OwnerID: owner.ID})
	require.NoError(t, err)

	found, err := s.Items().Search(ctx, "дРеЛь")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Дрель", found[0].Name)
}

func TestItems_DeleteByOtherUserIsNoop(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, booker, item := seed(t, s)

	require.NoError(t, s.Items().DeleteByOwner(ctx, item.ID, booker.ID))
	_, err := s.Items().GetByID(ctx, item.ID)
	require.NoError(t, err)

	require.NoError(t, s.Items().DeleteByOwner(ctx, item.ID, item.OwnerID))
	_, err = s.Items().GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, itemRepo.ErrItemNotFound)
}

func TestBookings_JoinAndOrdering(t *testing.T) {
	s := New()
	ctx := context.Background()
	owner, booker, item := seed(t, s)
	now := time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)

	early, err := s.Bookings().Create(ctx, &domain.Booking{Start: now.Add(time.Hour), End: now.Add(2 * time.Hour), Status: domain.StatusWaiting, ItemID: item.ID, BookerID: booker.ID})
	require.NoError(t, err)
	late, err := s.Bookings().Create(ctx, &domain.Booking{Start: now.Add(3 * time.Hour), End: now.Add(4 * time.Hour), Status: domain.StatusWaiting, ItemID: item.ID, BookerID: booker.ID})
	require.NoError(t, err)

	byOwner, err := s.Bookings().ListByItemOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, byOwner, 2)
	assert.Equal(t, late.ID, byOwner[0].ID)
	assert.Equal(t, early.ID, byOwner[1].ID)
	assert.Equal(t, "Дрель", byOwner[0].ItemName)
	assert.Equal(t, owner.ID, byOwner[0].ItemOwnerID)
}

func TestBookings_UpdateStatusIfWaitingOnlyOnce(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, booker, item := seed(t, s)
	now := time.Now()

	b, err := s.Bookings().Create(ctx, &domain.Booking{Start: now.Add(time.Hour), End: now.Add(2 * time.Hour), Status: domain.StatusWaiting, ItemID: item.ID, BookerID: booker.ID})
	require.NoError(t, err)

	require.NoError(t, s.Bookings().UpdateStatusIfWaiting(ctx, b.ID, domain.StatusApproved))
	assert.ErrorIs(t, s.Bookings().UpdateStatusIfWaiting(ctx, b.ID, domain.StatusRejected), bookingRepo.ErrBookingNotWaiting)

	got, err := s.Bookings().GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestBookings_FindLastCompleted(t *testing.T) {
	s := New()
	ctx := context.Background()
	_, booker, item := seed(t, s)
	now := time.Date(2030, 1, 10, 0, 0, 0, 0, time.UTC)

	_, err := s.Bookings().Create(ctx, &domain.Booking{Start: now.Add(-72 * time.Hour), End: now.Add(-48 * time.Hour), Status: domain.StatusApproved, ItemID: item.ID, BookerID: booker.ID})
	require.NoError(t, err)
	recent, err := s.Bookings().Create(ctx, &domain.Booking{Start: now.Add(-24 * time.Hour), End: now.Add(-time.Hour), Status: domain.StatusRejected, ItemID: item.ID, BookerID: booker.ID})
	require.NoError(t, err)

	last, err := s.Bookings().FindLastCompleted(ctx, booker.ID, item.ID, now)
	require.NoError(t, err)
	assert.Equal(t, recent.ID, last.ID)

	_, err = s.Bookings().FindLastCompleted(ctx, booker.ID, item.ID, now.Add(-100*time.Hour))
	assert.ErrorIs(t, err, bookingRepo.ErrBookingNotFound)
}

func TestDeleteUser_CascadesItemsAndBookings(t *testing.T) {
	s := New()
	ctx := context.Background()
	owner, booker, item := seed(t, s)
	now := time.Now()

	_, err := s.Bookings().Create(ctx, &domain.Booking{Start: now.Add(time.Hour), End: now.Add(2 * time.Hour), Status: domain.StatusWaiting, ItemID: item.ID, BookerID: booker.ID})
	require.NoError(t, err)

	require.NoError(t, s.Users().Delete(ctx, owner.ID))

	_, err = s.Items().GetByID(ctx, item.ID)
	assert.ErrorIs(t, err, itemRepo.ErrItemNotFound)

	bookings, err := s.Bookings().ListByBooker(ctx, booker.ID)
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
