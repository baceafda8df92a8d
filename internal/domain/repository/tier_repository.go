// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"membership/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTierNotFound is returned when a tier is not found.
var ErrTierNotFound = errors.New("tier not found")

// TierRepository defines read access to the tier catalog.
type TierRepository interface {
	// ListAll returns every tier in the catalog, in no particular order.
	ListAll(ctx context.Context) ([]*entity.Tier, error)

	// FindByID retrieves a tier by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tier, error)
}
