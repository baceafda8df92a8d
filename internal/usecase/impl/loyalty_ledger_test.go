package impl

import (
	"context"
	"testing"
	"time"

	"membership/internal/domain/entity"
	domainerrors "membership/internal/domain/errors"
	"membership/internal/domain/repository"
	mockRepo "membership/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type loyaltyLedgerFixtures struct {
	ledger      *loyaltyLedger
	loyaltyRepo *mockRepo.MockLoyaltyRepository
}

func createTestLoyaltyLedger(t *testing.T) loyaltyLedgerFixtures {
	loyaltyRepo := mockRepo.NewMockLoyaltyRepository(t)
	ledger := newLoyaltyLedger(LoyaltyLedgerParams{
		LoyaltyRepo: loyaltyRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	}, newTestClock(testEpoch).Now)

	return loyaltyLedgerFixtures{
		ledger:      ledger,
		loyaltyRepo: loyaltyRepo,
	}
}

func TestLoyaltyLedger_Increment_ExistingYear(t *testing.T) {
	fx := createTestLoyaltyLedger(t)

	ctx := context.Background()
	customerID := uuid.New()
	existing := &entity.LoyaltyRecord{ID: uuid.New(), CustomerID: customerID, Year: 2024}
	updated := &entity.LoyaltyRecord{ID: existing.ID, CustomerID: customerID, Year: 2024, SpendThisYear: dec(300), LifetimeSpend: dec(900)}

	fx.loyaltyRepo.EXPECT().
		FindByCustomerAndYear(ctx, customerID, 2024).
		Return(existing, nil)
	fx.loyaltyRepo.EXPECT().
		IncrementSpend(ctx, existing.ID, dec(100), mock.AnythingOfType("time.Time")).
		Return(updated, nil)

	record, err := fx.ledger.Increment(ctx, customerID, dec(100), time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, updated, record)
}

func TestLoyaltyLedger_Increment_OpensYearFromLatestLifetime(t *testing.T) {
	fx := createTestLoyaltyLedger(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.loyaltyRepo.EXPECT().
		FindByCustomerAndYear(ctx, customerID, 2025).
		Return(nil, repository.ErrLoyaltyRecordNotFound)
	fx.loyaltyRepo.EXPECT().
		FindLatestByCustomer(ctx, customerID).
		Return(&entity.LoyaltyRecord{CustomerID: customerID, Year: 2023, LifetimeSpend: dec(4_000)}, nil)
	fx.loyaltyRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(record *entity.LoyaltyRecord) bool {
			return record.Year == 2025 &&
				record.SpendThisYear.Equal(dec(500)) &&
				record.LifetimeSpend.Equal(dec(4_500)) &&
				record.ID != uuid.Nil
		})).
		Return(nil)

	record, err := fx.ledger.Increment(ctx, customerID, dec(500), time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2025, record.Year)
	assertDecimal(t, 4_500, record.LifetimeSpend)
}

func TestLoyaltyLedger_Increment_ConcurrentOpenCreditsWinner(t *testing.T) {
	fx := createTestLoyaltyLedger(t)

	ctx := context.Background()
	customerID := uuid.New()
	winner := &entity.LoyaltyRecord{ID: uuid.New(), CustomerID: customerID, Year: 2024, SpendThisYear: dec(200), LifetimeSpend: dec(200)}

	fx.loyaltyRepo.EXPECT().
		FindByCustomerAndYear(ctx, customerID, 2024).
		Return(nil, repository.ErrLoyaltyRecordNotFound).Once()
	fx.loyaltyRepo.EXPECT().
		FindLatestByCustomer(ctx, customerID).
		Return(nil, repository.ErrLoyaltyRecordNotFound)
	fx.loyaltyRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(repository.ErrDuplicateLoyaltyRecord)
	fx.loyaltyRepo.EXPECT().
		FindByCustomerAndYear(ctx, customerID, 2024).
		Return(winner, nil).Once()
	fx.loyaltyRepo.EXPECT().
		IncrementSpend(ctx, winner.ID, dec(50), mock.Anything).
		Return(&entity.LoyaltyRecord{ID: winner.ID, Year: 2024, SpendThisYear: dec(250), LifetimeSpend: dec(250)}, nil)

	record, err := fx.ledger.Increment(ctx, customerID, dec(50), time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assertDecimal(t, 250, record.SpendThisYear)
}

func TestLoyaltyLedger_Increment_IncrementError(t *testing.T) {
	fx := createTestLoyaltyLedger(t)

	ctx := context.Background()
	customerID := uuid.New()
	existing := &entity.LoyaltyRecord{ID: uuid.New(), CustomerID: customerID, Year: 2024}

	fx.loyaltyRepo.EXPECT().
		FindByCustomerAndYear(ctx, customerID, 2024).
		Return(existing, nil)
	fx.loyaltyRepo.EXPECT().
		IncrementSpend(ctx, existing.ID, dec(10), mock.Anything).
		Return(nil, errors.New("serialization failure"))

	record, err := fx.ledger.Increment(ctx, customerID, dec(10), time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
	assert.Nil(t, record)
	assert.Contains(t, err.Error(), "failed to increment loyalty record")
}

func TestLoyaltyLedger_Create_Validation(t *testing.T) {
	fx := createTestLoyaltyLedger(t)

	tests := []struct {
		name   string
		record *entity.LoyaltyRecord
	}{
		{name: "nil record", record: nil},
		{name: "missing customer", record: &entity.LoyaltyRecord{Year: 2024}},
		{name: "missing year", record: &entity.LoyaltyRecord{CustomerID: uuid.New()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := fx.ledger.Create(context.Background(), tt.record)
			assert.Nil(t, record)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestLoyaltyLedger_FindLatestByCustomer_NotFoundIsNil(t *testing.T) {
	fx := createTestLoyaltyLedger(t)

	ctx := context.Background()
	customerID := uuid.New()

	fx.loyaltyRepo.EXPECT().
		FindLatestByCustomer(ctx, customerID).
		Return(nil, repository.ErrLoyaltyRecordNotFound)

	record, err := fx.ledger.FindLatestByCustomer(ctx, customerID)
	require.NoError(t, err)
	assert.Nil(t, record)
}
