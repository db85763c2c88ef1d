package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func TestTxManager_Begin(t *testing.T) {
	tests := []struct {
		name      string
		fn        TransactionalFn
		mockSetup func(mock pgxmock.PgxPoolIface)
		expectErr error
	}{
		{
			name: "Commit on success",
			fn: func(ctx context.Context) error {
				_, ok := txFromContext(ctx)
				assert.True(t, ok)
				return nil
			},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name: "Rollback on error",
			fn: func(ctx context.Context) error {
				return errors.New("boom")
			},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			expectErr: errors.New("boom"),
		},
		{
			name: "Begin fails",
			fn: func(ctx context.Context) error {
				t.Fatal("fn must not run")
				return nil
			},
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectBegin().WillReturnError(errors.New("no connection"))
			},
			expectErr: errors.New("no connection"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			assert.NoError(t, err)
			defer mock.Close()
			tt.mockSetup(mock)

			m := &TxManager{db: mock}
			err = m.Begin(context.Background(), tt.fn)
			assert.Equal(t, tt.expectErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTxManager_BeginRollbackOnPanic(t *testing.T) {
	mock, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mock.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	m := &TxManager{db: mock}
	assert.Panics(t, func() {
		_ = m.Begin(context.Background(), func(ctx context.Context) error {
			panic("unexpected")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
