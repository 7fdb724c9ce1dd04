package get_item_details

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
)

func TestLastAndNext(t *testing.T) {
	base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	b := func(id int64, startHours int) *domain.Booking {
		return &domain.Booking{ID: id, BookerID: id * 10, Start: base.Add(time.Duration(startHours) * time.Hour)}
	}

	tests := []struct {
		name     string
		bookings []*domain.Booking
		wantLast *BookingShort
		wantNext *BookingShort
	}{
		{name: "empty"},
		{name: "single", bookings: []*domain.Booking{b(1, 5)}, wantLast: &BookingShort{ID: 1, BookerID: 10}},
		{
			name:     "unsorted input is sorted by start",
			bookings: []*domain.Booking{b(3, 30), b(1, 10), b(2, 20)},
			wantLast: &BookingShort{ID: 3, BookerID: 30},
			wantNext: &BookingShort{ID: 2, BookerID: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last, next := lastAndNext(tt.bookings)
			assert.Equal(t, tt.wantLast, last)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestExecute(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	uc := NewUseCase(store.Items(), store.Bookings(), store.Comments(), logger.Nop())

	owner, err := store.Users().Create(ctx, &domain.User{Name: "owner", Email: "owner@mail.ru"})
	require.NoError(t, err)
	booker, err := store.Users().Create(ctx, &domain.User{Name: "Вера", Email: "vera@mail.ru"})
	require.NoError(t, err)
	item, err := store.Items().Create(ctx, &domain.Item{Name: "Дрель", Description: "d", Available: true, OwnerID: owner.ID})
	require.NoError(t, err)

	now := time.Now()
	past, err := store.Bookings().Create(ctx, &domain.Booking{Start: now.Add(-48 * time.Hour), End: now.Add(-24 * time.Hour), Status: domain.StatusApproved, ItemID: item.ID, BookerID: booker.ID})
	require.NoError(t, err)
	w1, err := store.Bookings().Create(ctx, &domain.Booking{Start: now.Add(24 * time.Hour), End: now.Add(25 * time.Hour), Status: domain.StatusWaiting, ItemID: item.ID, BookerID: booker.ID})
	require.NoError(t, err)
	w2, err := store.Bookings().Create(ctx, &domain.Booking{Start: now.Add(48 * time.Hour), End: now.Add(49 * time.Hour), Status: domain.StatusWaiting, ItemID: item.ID, BookerID: booker.ID})
	require.NoError(t, err)
	_, err = store.Comments().Create(ctx, &domain.Comment{Text: "хорошая", AuthorID: booker.ID, ItemID: item.ID, BookingID: past.ID, Created: now})
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, item.ID)
	require.NoError(t, err)

	require.NotNil(t, resp.LastBooking)
	require.NotNil(t, resp.NextBooking)
	assert.Equal(t, w2.ID, resp.LastBooking.ID)
	assert.Equal(t, w1.ID, resp.NextBooking.ID)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "Вера", resp.Comments[0].AuthorName)

	_, err = uc.Execute(ctx, 404)
	assert.ErrorIs(t, err, ErrItemNotFound)
}
