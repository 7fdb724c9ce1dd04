package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/internal/domain"
	"github.com/m04kA/SMC-ShareItService/internal/events"
	"github.com/m04kA/SMC-ShareItService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-ShareItService/internal/service/bookings/models"
	"github.com/m04kA/SMC-ShareItService/pkg/logger"
	"github.com/m04kA/SMC-ShareItService/pkg/pagination"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type countingRecorder struct {
	transitions map[string]int
}

func (c *countingRecorder) IncBookingTransition(status string) {
	if c.transitions == nil {
		c.transitions = make(map[string]int)
	}
	c.transitions[status]++
}

var now = time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC)

type fixture struct {
	svc       *Service
	store     *memory.Store
	publisher *mockPublisher
	recorder  *countingRecorder
	owner     *domain.User
	booker    *domain.User
	stranger  *domain.User
	item      *domain.Item
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.New()

	owner, err := store.Users().Create(ctx, &domain.User{Name: "owner", Email: "owner@mail.ru"})
	require.NoError(t, err)
	booker, err := store.Users().Create(ctx, &domain.User{Name: "booker", Email: "booker@mail.ru"})
	require.NoError(t, err)
	stranger, err := store.Users().Create(ctx, &domain.User{Name: "stranger", Email: "stranger@mail.ru"})
	require.NoError(t, err)
	item, err := store.Items().Create(ctx, &domain.Item{Name: "Дрель", Description: "d", Available: true, OwnerID: owner.ID})
	require.NoError(t, err)

	publisher := &mockPublisher{}
	recorder := &countingRecorder{}
	svc := NewService(store.Bookings(), store.Users(), publisher, recorder, logger.Nop()).
		WithTimeProvider(fixedTime{now: now})

	return &fixture{
		svc:       svc,
		store:     store,
		publisher: publisher,
		recorder:  recorder,
		owner:     owner,
		booker:    booker,
		stranger:  stranger,
		item:      item,
	}
}

func (f *fixture) book(t *testing.T, start, end time.Duration, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	b, err := f.store.Bookings().Create(context.Background(), &domain.Booking{
		Start:    now.Add(start),
		End:      now.Add(end),
		Status:   status,
		ItemID:   f.item.ID,
		BookerID: f.booker.ID,
	})
	require.NoError(t, err)
	return b
}

func TestApprove_ThenConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, 24*time.Hour, 48*time.Hour, domain.StatusWaiting)

	f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.Event) bool {
		return e.Type == events.BookingApproved && e.BookingID == b.ID && e.OwnerID == f.owner.ID
	})).Return(nil).Once()

	got, err := f.svc.Approve(ctx, f.owner.ID, b.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", got.Status)
	assert.Equal(t, "Дрель", got.Item.Name)
	assert.Equal(t, f.booker.ID, got.Booker.ID)

	_, err = f.svc.Approve(ctx, f.owner.ID, b.ID, false)
	assert.ErrorIs(t, err, ErrAlreadyDecided)

	assert.Equal(t, 1, f.recorder.transitions["APPROVED"])
	f.publisher.AssertExpectations(t)
}

func TestApprove_Reject(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, time.Hour, 2*time.Hour, domain.StatusWaiting)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	got, err := f.svc.Approve(context.Background(), f.owner.ID, b.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "REJECTED", got.Status)
}

func TestApprove_PublishFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture(t)
	b := f.book(t, time.Hour, 2*time.Hour, domain.StatusWaiting)
	f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	got, err := f.svc.Approve(context.Background(), f.owner.ID, b.ID, true)
	require.NoError(t, err)
	assert.Equal(t, "APPROVED", got.Status)
}

func TestApprove_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, time.Hour, 2*time.Hour, domain.StatusWaiting)

	_, err := f.svc.Approve(ctx, f.booker.ID, b.ID, true)
	assert.ErrorIs(t, err, ErrNotItemOwner)

	_, err = f.svc.Approve(ctx, f.owner.ID, 999, true)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestGetByID_AccessHiddenAsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.book(t, time.Hour, 2*time.Hour, domain.StatusWaiting)

	_, err := f.svc.GetByID(ctx, f.booker.ID, b.ID)
	require.NoError(t, err)
	_, err = f.svc.GetByID(ctx, f.owner.ID, b.ID)
	require.NoError(t, err)

	_, err = f.svc.GetByID(ctx, f.stranger.ID, b.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListForBooker_States(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	past := f.book(t, -48*time.Hour, -24*time.Hour, domain.StatusApproved)
	current := f.book(t, -time.Hour, time.Hour, domain.StatusApproved)
	future := f.book(t, 24*time.Hour, 48*time.Hour, domain.StatusWaiting)
	rejected := f.book(t, 72*time.Hour, 96*time.Hour, domain.StatusRejected)

	tests := []struct {
		state string
		want  []int64
	}{
		{state: "", want: []int64{rejected.ID, future.ID, current.ID, past.ID}},
		{state: "ALL", want: []int64{rejected.ID, future.ID, current.ID, past.ID}},
		{state: "current", want: []int64{current.ID}},
		{state: "PAST", want: []int64{past.ID}},
		{state: "FUTURE", want: []int64{rejected.ID, future.ID}},
		{state: "WAITING", want: []int64{future.ID}},
		{state: "REJECTED", want: []int64{rejected.ID}},
	}

	for _, tt := range tests {
		t.Run("state="+tt.state, func(t *testing.T) {
			got, err := f.svc.ListForBooker(ctx, &models.ListBookingsRequest{UserID: f.booker.ID, State: tt.state})
			require.NoError(t, err)

			ids := make([]int64, 0, len(got))
			for _, b := range got {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestListForOwner_PaginationAndErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		f.book(t, time.Duration(i)*time.Hour, time.Duration(i+1)*time.Hour, domain.StatusWaiting)
	}

	got, err := f.svc.ListForOwner(ctx, &models.ListBookingsRequest{
		UserID: f.owner.ID,
		State:  "ALL",
		Page:   &pagination.Page{From: 1, Size: 2},
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Start.After(got[1].Start.Time))

	_, err = f.svc.ListForOwner(ctx, &models.ListBookingsRequest{UserID: f.owner.ID, State: "SOMETIMES"})
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = f.svc.ListForOwner(ctx, &models.ListBookingsRequest{UserID: 404})
	assert.ErrorIs(t, err, ErrUserNotFound)

	// отсутствие пользователя проверяется раньше фильтра
	_, err = f.svc.ListForBooker(ctx, &models.ListBookingsRequest{UserID: 404, State: "BOGUS"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NotErrorIs(t, err, ErrInvalidState)

	none, err := f.svc.ListForOwner(ctx, &models.ListBookingsRequest{UserID: f.booker.ID})
	require.NoError(t, err)
	assert.Empty(t, none)
}
