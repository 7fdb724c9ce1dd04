package comment

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectComments_JoinsAuthor(t *testing.T) {
	query, args, err := selectComments().
		Where(squirrel.Eq{"c.item_id": int64(5)}).
		OrderBy("c.created ASC", "c.id ASC").
		ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT c.id, c.text, c.author_id, c.item_id, c.booking_id, c.created, u.name "+
			"FROM comments c JOIN users u ON u.id = c.author_id "+
			"WHERE c.item_id = $1 ORDER BY c.created ASC, c.id ASC",
		query)
	assert.Equal(t, []interface{}{int64(5)}, args)
}
