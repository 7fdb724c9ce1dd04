package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingState(t *testing.T) {
	tests := []struct {
		raw     string
		want    BookingState
		wantErr bool
	}{
		{raw: "", want: StateAll},
		{raw: "ALL", want: StateAll},
		{raw: "current", want: StateCurrent},
		{raw: " Past ", want: StatePast},
		{raw: "FUTURE", want: StateFuture},
		{raw: "WAITING", want: StateWaiting},
		{raw: "REJECTED", want: StateRejected},
		{raw: "APPROVED", wantErr: true},
		{raw: "UNSUPPORTED_STATUS", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseBookingState(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownState)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBookingState_Filter(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	future := &Booking{ID: 1, Start: now.Add(24 * time.Hour), End: now.Add(48 * time.Hour), Status: StatusWaiting}
	current := &Booking{ID: 2, Start: now.Add(-time.Hour), End: now.Add(time.Hour), Status: StatusApproved}
	startsNow := &Booking{ID: 3, Start: now, End: now.Add(time.Hour), Status: StatusApproved}
	past := &Booking{ID: 4, Start: now.Add(-48 * time.Hour), End: now.Add(-24 * time.Hour), Status: StatusRejected}
	endsNow := &Booking{ID: 5, Start: now.Add(-time.Hour), End: now, Status: StatusApproved}

	all := []*Booking{future, current, startsNow, past, endsNow}

	ids := func(bs []*Booking) []int64 {
		out := make([]int64, 0, len(bs))
		for _, b := range bs {
			out = append(out, b.ID)
		}
		return out
	}

	tests := []struct {
		state BookingState
		want  []int64
	}{
		{state: StateAll, want: []int64{1, 2, 3, 4, 5}},
		{state: StateCurrent, want: []int64{2, 3}},
		{state: StatePast, want: []int64{4}},
		{state: StateFuture, want: []int64{1}},
		{state: StateWaiting, want: []int64{1}},
		{state: StateRejected, want: []int64{4}},
	}

	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			got, err := tt.state.Filter(all, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}

	t.Run("unknown state is an error", func(t *testing.T) {
		_, err := BookingState("SOMETIMES").Filter(all, now)
		assert.ErrorIs(t, err, ErrUnknownState)
	})
}
