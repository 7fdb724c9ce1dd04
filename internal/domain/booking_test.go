package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ShareItService/pkg/types"
)

func TestValidateBookingPeriod(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day := 24 * time.Hour

	tests := []struct {
		name       string
		start, end time.Time
		want       error
	}{
		{name: "valid", start: now.Add(day), end: now.Add(2 * day)},
		{name: "end in past", start: now.Add(-2 * day), end: now.Add(-day), want: ErrEndInPast},
		{name: "start equals end", start: now.Add(day), end: now.Add(day), want: ErrStartEqualsEnd},
		{name: "start in past", start: now.Add(-time.Hour), end: now.Add(day), want: ErrStartInPast},
		{name: "inverted", start: now.Add(2 * day), end: now.Add(day), want: ErrStartAfterEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBookingPeriod(tt.start, tt.end, now)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestBooking_Predicates(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	b := &Booking{BookerID: 2, ItemOwnerID: 1, Status: StatusWaiting, End: now.Add(-time.Second)}

	assert.True(t, b.IsWaiting())
	assert.True(t, b.IsBooker(2))
	assert.False(t, b.IsBooker(1))
	assert.True(t, b.IsItemOwner(1))
	assert.True(t, b.IsCompletedAt(now))
	assert.Equal(t, StatusApproved, DecisionStatus(true))
	assert.Equal(t, StatusRejected, DecisionStatus(false))
}

func TestItem_ApplyPatch(t *testing.T) {
	item := &Item{Name: "Drill", Description: "Cordless", Available: true}

	item.Apply(ItemPatch{Available: types.Some(false)})
	assert.Equal(t, "Drill", item.Name)
	assert.Equal(t, "Cordless", item.Description)
	assert.False(t, item.Available)

	item.Apply(ItemPatch{Name: types.Optional[string]{Set: true, Null: true}, Description: types.Some("Corded")})
	assert.Equal(t, "Drill", item.Name)
	assert.Equal(t, "Corded", item.Description)
}

func TestUser_ApplyPatch(t *testing.T) {
	user := &User{Name: "Ann", Email: "ann@example.com"}
	user.Apply(UserPatch{Email: types.Some("ann@corp.io")})

	assert.Equal(t, "Ann", user.Name)
	assert.Equal(t, "ann@corp.io", user.Email)
	assert.True(t, IsValidEmail(user.Email))
	assert.False(t, IsValidEmail("ann.corp.io"))
}
