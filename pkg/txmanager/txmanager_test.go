package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ShareItService/pkg/dbmetrics"
)

type fakeTx struct {
	*sql.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx    *fakeTx
	opts  *sql.TxOptions
	calls int
	err   error
}

func (b *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.calls++
	b.opts = opts
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestTransactionManager_Commit(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	tm := NewTransactionManager(beginner)

	err := tm.DoSerializable(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, beginner.tx.committed)
	assert.False(t, beginner.tx.rolledBack)
	assert.Equal(t, sql.LevelSerializable, beginner.opts.Isolation)
}

func TestTransactionManager_RollbackOnError(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	tm := NewTransactionManager(beginner)
	errBoom := errors.New("boom")

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	assert.True(t, beginner.tx.rolledBack)
	assert.False(t, beginner.tx.committed)
}

func TestTransactionManager_NestedReusesOuter(t *testing.T) {
	beginner := &fakeBeginner{tx: &fakeTx{}}
	tm := NewTransactionManager(beginner)

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		return tm.DoReadOnly(ctx, func(ctx context.Context) error { return nil })
	})

	require.NoError(t, err)
	assert.Equal(t, 1, beginner.calls)
}

func TestTransactionManager_BeginFails(t *testing.T) {
	tm := NewTransactionManager(&fakeBeginner{err: errors.New("no conn")})

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginTx)
}
