package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubTx struct{}

func (stubTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (stubTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (stubTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (stubTx) Commit() error   { return nil }
func (stubTx) Rollback() error { return nil }

type stubDB struct{}

func (stubDB) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (stubDB) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (stubDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func TestGetExecutor_FallbackWithoutTransaction(t *testing.T) {
	fallback := stubDB{}

	got := GetExecutor(context.Background(), fallback)

	assert.Equal(t, fallback, got)
}

func TestGetExecutor_ReturnsTransactionFromContext(t *testing.T) {
	tx := stubTx{}
	ctx := WithTx(context.Background(), tx)

	got := GetExecutor(ctx, stubDB{})

	assert.Equal(t, tx, got)
}

func TestIsInTransaction(t *testing.T) {
	assert.False(t, IsInTransaction(context.Background()))

	ctx := WithTx(context.Background(), stubTx{})
	assert.True(t, IsInTransaction(ctx))
}

func TestQueryOperation(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"SELECT id FROM bookings", "select"},
		{"  select 1", "select"},
		{"INSERT INTO bookings VALUES ($1)", "insert"},
		{"UPDATE bookings SET status = $1", "update"},
		{"DELETE FROM bookings WHERE id = $1", "delete"},
		{"TRUNCATE bookings", "truncate"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want+" "+tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, queryOperation(tt.query))
		})
	}
}
