package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectBookings_JoinsItems(t *testing.T) {
	query, _, err := selectBookings().ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT b.id, b.start_date, b.end_date, b.status, b.item_id, b.booker_id, i.name, i.owner_id "+
			"FROM bookings b JOIN items i ON i.id = b.item_id",
		query)
}

func TestLastCompleted_Query(t *testing.T) {
	now := time.Date(2030, 1, 10, 12, 0, 0, 0, time.UTC)

	query, args, err := lastCompleted(3, 7, now).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE b.booker_id = $1 AND b.item_id = $2 AND b.end_date < $3")
	assert.Contains(t, query, "ORDER BY b.end_date DESC LIMIT 1")
	assert.Equal(t, []interface{}{int64(3), int64(7), now}, args)
}
