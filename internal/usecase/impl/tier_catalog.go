// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"membership/internal/domain/entity"
	"membership/internal/domain/repository"
	"membership/internal/usecase"

	"github.com/pkg/errors"
)

type tierCatalog struct {
	tierRepo repository.TierRepository
}

// NewTierCatalog creates a tier catalog backed by the tier store
func NewTierCatalog(tierRepo repository.TierRepository) usecase.TierCatalogUsecase {
	return &tierCatalog{
		tierRepo: tierRepo,
	}
}

// ListTiersSortedAscending returns all tiers ordered by yearly spend threshold
func (c *tierCatalog) ListTiersSortedAscending(ctx context.Context) ([]*entity.Tier, error) {
	tiers, err := c.tierRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tiers")
	}

	entity.SortTiersAscending(tiers)

	return tiers, nil
}

// tierPosition locates a card's tier in the sorted catalog by id, then by the
// snapshot name. It reports false when neither matches.
func tierPosition(tiers []*entity.Tier, card *entity.MembershipCard) (int, bool) {
	for i, tier := range tiers {
		if tier.ID == card.TierID {
			return i, true
		}
	}

	if card.TierSnapshot != nil && card.TierSnapshot.Name != "" {
		for i, tier := range tiers {
			if tier.Name == card.TierSnapshot.Name {
				return i, true
			}
		}
	}

	return 0, false
}
