package postgres

import (
	"context"

	domainerrors "membership/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// storeError converts a driver failure into the domain's store error so
// callers can treat it as retryable. Context cancellation passes through.
func storeError(err error, details string) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Wrap(err, details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
