package impl

import (
	"context"
	"testing"

	"membership/internal/domain/entity"
	domainerrors "membership/internal/domain/errors"
	"membership/internal/domain/repository"
	mockRepo "membership/internal/mocks/repository"
	mockService "membership/internal/mocks/service"
	mockUsecase "membership/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type membershipCardServiceFixtures struct {
	service  *membershipCardService
	cardRepo *mockRepo.MockMembershipCardRepository
	catalog  *mockUsecase.MockTierCatalogUsecase
	metrics  *mockService.MockMembershipMetrics
}

func createTestMembershipCardService(t *testing.T) membershipCardServiceFixtures {
	cardRepo := mockRepo.NewMockMembershipCardRepository(t)
	catalog := mockUsecase.NewMockTierCatalogUsecase(t)
	metrics := mockService.NewMockMembershipMetrics(t)

	srv := newMembershipCardService(MembershipCardServiceParams{
		CardRepo: cardRepo,
		Catalog:  catalog,
		Config:   newTestConfig(),
		Metrics:  metrics,
		Logger:   newDiscardLogger(),
	}, newTestClock(testEpoch).Now)

	return membershipCardServiceFixtures{
		service:  srv,
		cardRepo: cardRepo,
		catalog:  catalog,
		metrics:  metrics,
	}
}

func catalogWithIDs(tiers ...*entity.Tier) []*entity.Tier {
	for _, tr := range tiers {
		tr.ID = uuid.New()
	}

	return tiers
}

func TestMembershipCardService_EnsureDefaultCard_ExistingCard(t *testing.T) {
	fx := createTestMembershipCardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	existing := &entity.MembershipCard{ID: uuid.New(), CustomerID: customerID, Active: true}

	fx.cardRepo.EXPECT().
		FindLatestActiveByCustomer(ctx, customerID).
		Return(existing, nil)

	card, err := fx.service.EnsureDefaultCard(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, existing, card)
}

func TestMembershipCardService_EnsureDefaultCard_IssuesLowestTier(t *testing.T) {
	fx := createTestMembershipCardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	tiers := catalogWithIDs(tier("Bronze", 0, 0), tier("Silver", 2_000_000, 0))

	fx.cardRepo.EXPECT().
		FindLatestActiveByCustomer(ctx, customerID).
		Return(nil, repository.ErrMembershipCardNotFound)
	fx.catalog.EXPECT().
		ListTiersSortedAscending(ctx).
		Return(tiers, nil)
	fx.cardRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(card *entity.MembershipCard) bool {
			return card.CustomerID == customerID &&
				card.TierID == tiers[0].ID &&
				card.Active &&
				card.LifetimeSpendAtIssue.IsZero() &&
				card.ExpiresAt.Equal(card.IssuedAt.AddDate(1, 0, 0)) &&
				card.TierSnapshot != nil && card.TierSnapshot.Name == "Bronze"
		})).
		Return(nil)
	fx.metrics.EXPECT().DefaultCardIssued().Return()

	card, err := fx.service.EnsureDefaultCard(ctx, customerID)
	require.NoError(t, err)
	require.NotNil(t, card)
	assert.Equal(t, tiers[0].ID, card.TierID)
}

func TestMembershipCardService_EnsureDefaultCard_EmptyCatalog(t *testing.T) {
	fx := createTestMembershipCardService(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.cardRepo.EXPECT().
		FindLatestActiveByCustomer(ctx, customerID).
		Return(nil, repository.ErrMembershipCardNotFound)
	fx.catalog.EXPECT().
		ListTiersSortedAscending(ctx).
		Return([]*entity.Tier{}, nil)

	card, err := fx.service.EnsureDefaultCard(ctx, customerID)
	require.NoError(t, err)
	assert.Nil(t, card)
}

func TestMembershipCardService_EnsureDefaultCard_LostIssueRace(t *testing.T) {
	fx := createTestMembershipCardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	winner := &entity.MembershipCard{ID: uuid.New(), CustomerID: customerID, Active: true}

	fx.cardRepo.EXPECT().
		FindLatestActiveByCustomer(ctx, customerID).
		Return(nil, repository.ErrMembershipCardNotFound).Once()
	fx.catalog.EXPECT().
		ListTiersSortedAscending(ctx).
		Return(catalogWithIDs(tier("Bronze", 0, 0)), nil)
	fx.cardRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(repository.ErrDuplicateActiveCard)
	fx.cardRepo.EXPECT().
		FindLatestActiveByCustomer(ctx, customerID).
		Return(winner, nil).Once()

	card, err := fx.service.EnsureDefaultCard(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, winner, card)
}

func TestMembershipCardService_EnsureDefaultCard_Errors(t *testing.T) {
	t.Run("nil customer", func(t *testing.T) {
		fx := createTestMembershipCardService(t)

		card, err := fx.service.EnsureDefaultCard(context.Background(), uuid.Nil)
		assert.Nil(t, card)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("create fails", func(t *testing.T) {
		fx := createTestMembershipCardService(t)

		ctx := context.Background()
		customerID := uuid.New()

		fx.cardRepo.EXPECT().
			FindLatestActiveByCustomer(ctx, customerID).
			Return(nil, repository.ErrMembershipCardNotFound)
		fx.catalog.EXPECT().
			ListTiersSortedAscending(ctx).
			Return(catalogWithIDs(tier("Bronze", 0, 0)), nil)
		fx.cardRepo.EXPECT().
			Create(ctx, mock.Anything).
			Return(errors.New("insert failed"))

		card, err := fx.service.EnsureDefaultCard(ctx, customerID)
		assert.Nil(t, card)
		assert.Contains(t, err.Error(), "failed to issue default membership card")
	})
}

func TestMembershipCardService_EvaluateUpgrade(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name         string
		record       *entity.LoyaltyRecord
		atIssue      int64
		expectedTier string
	}{
		{
			name:         "below every higher threshold",
			record:       &entity.LoyaltyRecord{SpendThisYear: dec(999_999), LifetimeSpend: dec(999_999)},
			expectedTier: "Bronze",
		},
		{
			name:         "yearly threshold reached exactly",
			record:       &entity.LoyaltyRecord{SpendThisYear: dec(1_000_000), LifetimeSpend: dec(1_000_000)},
			expectedTier: "Silver",
		},
		{
			name:         "lifetime threshold skips silver",
			record:       &entity.LoyaltyRecord{SpendThisYear: dec(100), LifetimeSpend: dec(5_000_000)},
			expectedTier: "Gold",
		},
		{
			name:         "lifetime measured from card issue",
			record:       &entity.LoyaltyRecord{SpendThisYear: dec(100), LifetimeSpend: dec(5_000_000)},
			atIssue:      1,
			expectedTier: "Bronze",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMembershipCardService(t)

			ctx := context.Background()
			tiers := catalogWithIDs(tier("Bronze", 0, 0), tier("Silver", 1_000_000, 0), tier("Gold", 0, 5_000_000))
			active := &entity.MembershipCard{
				ID:                   uuid.New(),
				CustomerID:           customerID,
				TierID:               tiers[0].ID,
				Active:               true,
				TierSnapshot:         tiers[0].Snapshot(),
				LifetimeSpendAtIssue: dec(tt.atIssue),
			}

			fx.catalog.EXPECT().
				ListTiersSortedAscending(ctx).
				Return(tiers, nil)

			if tt.expectedTier != "Bronze" {
				fx.cardRepo.EXPECT().
					DeactivateAll(ctx, customerID).
					Return(nil)
				fx.cardRepo.EXPECT().
					Create(ctx, mock.MatchedBy(func(card *entity.MembershipCard) bool {
						return card.TierSnapshot.Name == tt.expectedTier && card.LifetimeSpendAtIssue.Equal(tt.record.LifetimeSpend)
					})).
					Return(nil)
				fx.metrics.EXPECT().CardUpgraded().Return()
			}

			card, err := fx.service.EvaluateUpgrade(ctx, customerID, tt.record, active)
			require.NoError(t, err)
			require.NotNil(t, card)
			require.NotNil(t, card.TierSnapshot)
			assert.Equal(t, tt.expectedTier, card.TierSnapshot.Name)
			if tt.expectedTier == "Bronze" {
				assert.Equal(t, active.ID, card.ID)
			} else {
				assert.NotEqual(t, active.ID, card.ID)
			}
		})
	}
}

func TestMembershipCardService_EvaluateUpgrade_NothingToEvaluate(t *testing.T) {
	fx := createTestMembershipCardService(t)

	ctx := context.Background()
	active := &entity.MembershipCard{ID: uuid.New()}

	card, err := fx.service.EvaluateUpgrade(ctx, uuid.New(), nil, active)
	require.NoError(t, err)
	assert.Equal(t, active, card)

	card, err = fx.service.EvaluateUpgrade(ctx, uuid.New(), &entity.LoyaltyRecord{}, nil)
	require.NoError(t, err)
	assert.Nil(t, card)
}

func TestMembershipCardService_EvaluateUpgrade_DeactivateError(t *testing.T) {
	fx := createTestMembershipCardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	tiers := catalogWithIDs(tier("Bronze", 0, 0), tier("Silver", 1_000_000, 0))
	active := &entity.MembershipCard{ID: uuid.New(), CustomerID: customerID, TierID: tiers[0].ID, Active: true}

	fx.catalog.EXPECT().
		ListTiersSortedAscending(ctx).
		Return(tiers, nil)
	fx.cardRepo.EXPECT().
		DeactivateAll(ctx, customerID).
		Return(errors.New("lock timeout"))

	card, err := fx.service.EvaluateUpgrade(ctx, customerID, &entity.LoyaltyRecord{SpendThisYear: dec(2_000_000)}, active)
	assert.Error(t, err)
	assert.Nil(t, card)
	assert.Contains(t, err.Error(), "failed to deactivate membership cards")
}

func TestMembershipCardService_GetActiveCardWithTier(t *testing.T) {
	fx := createTestMembershipCardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	tiers := catalogWithIDs(tier("Bronze", 0, 0), tier("Silver", 1_000_000, 0))
	active := &entity.MembershipCard{ID: uuid.New(), CustomerID: customerID, TierID: tiers[1].ID, Active: true}

	fx.cardRepo.EXPECT().
		FindLatestActiveByCustomer(ctx, customerID).
		Return(active, nil)
	fx.catalog.EXPECT().
		ListTiersSortedAscending(ctx).
		Return(tiers, nil)

	result, err := fx.service.GetActiveCardWithTier(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, active, result.Card)
	assert.Equal(t, tiers[1], result.Tier)
}

func TestMembershipCardService_GetCardByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestMembershipCardService(t)

		ctx := context.Background()
		card := &entity.MembershipCard{ID: uuid.New()}

		fx.cardRepo.EXPECT().FindByID(ctx, card.ID).Return(card, nil)

		result, err := fx.service.GetCardByID(ctx, card.ID)
		require.NoError(t, err)
		assert.Equal(t, card, result)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestMembershipCardService(t)

		ctx := context.Background()
		cardID := uuid.New()

		fx.cardRepo.EXPECT().FindByID(ctx, cardID).Return(nil, repository.ErrMembershipCardNotFound)

		result, err := fx.service.GetCardByID(ctx, cardID)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domainerrors.ErrCardNotFound))
	})
}

func TestMembershipCardService_ListCustomerCards(t *testing.T) {
	fx := createTestMembershipCardService(t)

	ctx := context.Background()
	customerID := uuid.New()
	cards := []*entity.MembershipCard{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.cardRepo.EXPECT().FindByCustomer(ctx, customerID).Return(cards, nil)

	result, err := fx.service.ListCustomerCards(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, cards, result)
}
