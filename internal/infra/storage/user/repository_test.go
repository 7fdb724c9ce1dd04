package user

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectUsers_ByEmailIsCaseInsensitive(t *testing.T) {
	query, args, err := selectUsers().Where("LOWER(email) = LOWER(?)", "Ann@Example.com").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name, email FROM users WHERE LOWER(email) = LOWER($1)", query)
	assert.Equal(t, []interface{}{"Ann@Example.com"}, args)
}

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: pgUniqueViolation}

	assert.True(t, isUniqueViolation(dup))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", dup)))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("plain")))
}
