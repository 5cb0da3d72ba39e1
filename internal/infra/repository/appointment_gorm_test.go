package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	slotErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_vet_slot_active",
	}

	assert.True(t, isUniqueViolation(slotErr))

	// gorm embrulha o erro do driver
	assert.True(t, isUniqueViolation(fmt.Errorf("create failed: %w", slotErr)))

	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(errors.New("dial tcp: i/o timeout")))
	assert.False(t, isUniqueViolation(gorm.ErrRecordNotFound))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
}
