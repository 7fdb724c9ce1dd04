package add_comment

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var now = time.Date(2030, 5, 20, 9, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *UseCase
	store    *memory.Store
	booker   *domain.User
	stranger *domain.User
	item     *domain.Item
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.New()

	owner, err := store.Users().Create(ctx, &domain.User{Name: "owner", Email: "owner@mail.ru"})
	require.NoError(t, err)
	booker, err := store.Users().Create(ctx, &domain.User{Name: "Борис", Email: "boris@mail.ru"})
	require.NoError(t, err)
	stranger, err := store.Users().Create(ctx, &domain.User{Name: "stranger", Email: "stranger@mail.ru"})
	require.NoError(t, err)
	item, err := store.Items().Create(ctx, &domain.Item{Name: "Дрель", Description: "d", Available: true, OwnerID: owner.ID})
	require.NoError(t, err)

	uc := NewUseCase(store.Comments(), store.Bookings(), store.Items(), store.Users(), logger.Nop()).
		WithTimeProvider(fixedTime{now: now})
	return &fixture{uc: uc, store: store, booker: booker, stranger: stranger, item: item}
}

func (f *fixture) book(t *testing.T, start, end time.Duration, status domain.BookingStatus) {
	t.Helper()
	_, err := f.store.Bookings().Create(context.Background(), &domain.Booking{
		Start: now.Add(start), End: now.Add(end), Status: status, ItemID: f.item.ID, BookerID: f.booker.ID,
	})
	require.NoError(t, err)
}

func TestExecute_AfterCompletedBooking(t *testing.T) {
	f := newFixture(t)
	f.book(t, -48*time.Hour, -24*time.Hour, domain.StatusApproved)

	resp, err := f.uc.Execute(context.Background(), &Request{UserID: f.booker.ID, ItemID: f.item.ID, Text: "Отличная дрель"})
	require.NoError(t, err)
	assert.Equal(t, "Борис", resp.AuthorName)
	assert.Equal(t, now, resp.Created)

	stored, err := f.store.Comments().ListByItem(context.Background(), f.item.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Отличная дрель", stored[0].Text)
}

func TestExecute_RejectedPastBookingStillQualifies(t *testing.T) {
	f := newFixture(t)
	f.book(t, -48*time.Hour, -24*time.Hour, domain.StatusRejected)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: f.booker.ID, ItemID: f.item.ID, Text: "text"})
	assert.NoError(t, err)
}

func TestExecute_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("booking not finished yet", func(t *testing.T) {
		f := newFixture(t)
		f.book(t, -time.Hour, time.Hour, domain.StatusApproved)

		_, err := f.uc.Execute(ctx, &Request{UserID: f.booker.ID, ItemID: f.item.ID, Text: "рано"})
		assert.ErrorIs(t, err, ErrNoCompletedBooking)
	})

	t.Run("user without booking", func(t *testing.T) {
		f := newFixture(t)
		f.book(t, -48*time.Hour, -24*time.Hour, domain.StatusApproved)

		_, err := f.uc.Execute(ctx, &Request{UserID: f.stranger.ID, ItemID: f.item.ID, Text: "чужой"})
		assert.ErrorIs(t, err, ErrNoCompletedBooking)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Execute(ctx, &Request{UserID: 404, ItemID: f.item.ID, Text: "x"})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Execute(ctx, &Request{UserID: f.booker.ID, ItemID: 404, Text: "x"})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("blank text", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.Execute(ctx, &Request{UserID: f.booker.ID, ItemID: f.item.ID, Text: "   "})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("text too long", func(t *testing.T) {
		f := newFixture(t)
		f.book(t, -48*time.Hour, -24*time.Hour, domain.StatusApproved)
		_, err := f.uc.Execute(ctx, &Request{UserID: f.booker.ID, ItemID: f.item.ID, Text: strings.Repeat("я", 513)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
