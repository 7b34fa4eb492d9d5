package pgerr_test

import (
	"errors"
	"fmt"
	"testing"

	"dealership/internal/adapters/out/postgres/pgerr"
	"dealership/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	t.Run("should mark contention as transient", func(t *testing.T) {
		for _, code := range []string{pgerr.SerializationFailure, pgerr.DeadlockDetected, pgerr.LockNotAvailable} {
			err := pgerr.Translate(fmt.Errorf("update offer: %w", &pgconn.PgError{Code: code}))

			assert.ErrorIs(t, err, errs.ErrTransient, code)
		}
	})

	t.Run("should report numeric overflow as out of range", func(t *testing.T) {
		cause := &pgconn.PgError{Code: pgerr.NumericValueOutOfRange, Message: "numeric field overflow"}

		err := pgerr.Translate(fmt.Errorf("insert order: %w", cause))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, pgerr.NumericValueOutOfRange, pgerr.Code(err))
	})

	t.Run("should report check violations as invalid values", func(t *testing.T) {
		err := pgerr.Translate(&pgconn.PgError{Code: pgerr.CheckViolation, ConstraintName: "orders_deposit_check"})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "orders_deposit_check")
	})

	t.Run("should pass other errors through", func(t *testing.T) {
		original := &pgconn.PgError{Code: pgerr.UniqueViolation}

		err := pgerr.Translate(original)

		assert.Same(t, original, err)
		assert.NotErrorIs(t, err, errs.ErrTransient)
	})

	t.Run("should keep nil", func(t *testing.T) {
		assert.NoError(t, pgerr.Translate(nil))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerr.UniqueViolation, ConstraintName: "orders_active_offer_uidx"})

	assert.True(t, pgerr.IsUniqueViolation(err, "orders_active_offer_uidx"))
	assert.True(t, pgerr.IsUniqueViolation(err, ""))
	assert.False(t, pgerr.IsUniqueViolation(err, "offers_pkey"))
	assert.False(t, pgerr.IsUniqueViolation(errors.New("plain"), ""))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, pgerr.IsForeignKeyViolation(&pgconn.PgError{Code: pgerr.ForeignKeyViolation}))
	assert.False(t, pgerr.IsForeignKeyViolation(&pgconn.PgError{Code: pgerr.UniqueViolation}))
	assert.Empty(t, pgerr.Code(errors.New("plain")))
}
