package impl

import (
	"context"
	"log/slog"
	"time"

	"membership/config"
	deliverycontext "membership/internal/delivery/context"
	"membership/internal/domain/entity"
	domainerrors "membership/internal/domain/errors"
	"membership/internal/domain/repository"
	"membership/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type loyaltyLedger struct {
	loyaltyRepo repository.LoyaltyRepository
	location    *time.Location
	logger      *slog.Logger
	now         func() time.Time
}

// LoyaltyLedgerParams holds dependencies for the loyalty ledger, injected by Fx.
type LoyaltyLedgerParams struct {
	fx.In

	LoyaltyRepo repository.LoyaltyRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewLoyaltyLedger creates the loyalty ledger service
func NewLoyaltyLedger(params LoyaltyLedgerParams) usecase.LoyaltyLedgerUsecase {
	return newLoyaltyLedger(params, time.Now)
}

func newLoyaltyLedger(params LoyaltyLedgerParams, now func() time.Time) *loyaltyLedger {
	location := time.UTC
	if params.Config != nil {
		location = params.Config.Membership.Location()
	}

	return &loyaltyLedger{
		loyaltyRepo: params.LoyaltyRepo,
		location:    location,
		logger:      params.Logger,
		now:         now,
	}
}

func (l *loyaltyLedger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// FindByCustomerAndYear returns the record for the year, or nil when absent
func (l *loyaltyLedger) FindByCustomerAndYear(ctx context.Context, customerID uuid.UUID, year int) (*entity.LoyaltyRecord, error) {
	record, err := l.loyaltyRepo.FindByCustomerAndYear(ctx, customerID, year)
	if errors.Is(err, repository.ErrLoyaltyRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find loyalty record by customer and year")
	}

	return record, nil
}

// FindLatestByCustomer returns the record with the highest year, or nil when absent
func (l *loyaltyLedger) FindLatestByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.LoyaltyRecord, error) {
	record, err := l.loyaltyRepo.FindLatestByCustomer(ctx, customerID)
	if errors.Is(err, repository.ErrLoyaltyRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find latest loyalty record")
	}

	return record, nil
}

// Create persists a new record
func (l *loyaltyLedger) Create(ctx context.Context, record *entity.LoyaltyRecord) (*entity.LoyaltyRecord, error) {
	if record == nil || record.CustomerID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("customer id is required"))
	}
	if record.Year == 0 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("year is required"))
	}

	now := l.now()
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	if err := l.loyaltyRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to create loyalty record")
	}

	return record, nil
}

// Increment credits amount to the record of the calendar year containing effectiveDate
func (l *loyaltyLedger) Increment(ctx context.Context, customerID uuid.UUID, amount decimal.Decimal, effectiveDate time.Time) (*entity.LoyaltyRecord, error) {
	year := effectiveDate.In(l.location).Year()

	existing, err := l.FindByCustomerAndYear(ctx, customerID, year)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return l.incrementExisting(ctx, existing, amount)
	}

	priorLifetime := decimal.Zero
	latest, err := l.FindLatestByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		priorLifetime = latest.LifetimeSpend
	}

	record, err := l.Create(ctx, &entity.LoyaltyRecord{
		CustomerID:    customerID,
		Year:          year,
		SpendThisYear: amount,
		LifetimeSpend: priorLifetime.Add(amount),
	})
	if err == nil {
		l.log(ctx).Debug("Opened loyalty year",
			slog.String("customer_id", customerID.String()),
			slog.Int("year", year),
			slog.String("prior_lifetime_spend", priorLifetime.String()))

		return record, nil
	}
	if !errors.Is(err, repository.ErrDuplicateLoyaltyRecord) {
		return nil, err
	}

	// Another writer opened the year first; credit its row instead.
	existing, err = l.FindByCustomerAndYear(ctx, customerID, year)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.Errorf("loyalty record for customer %s year %d vanished after conflict", customerID, year)
	}

	return l.incrementExisting(ctx, existing, amount)
}

func (l *loyaltyLedger) incrementExisting(ctx context.Context, record *entity.LoyaltyRecord, amount decimal.Decimal) (*entity.LoyaltyRecord, error) {
	updated, err := l.loyaltyRepo.IncrementSpend(ctx, record.ID, amount, l.now())
	if err != nil {
		return nil, errors.Wrap(err, "failed to increment loyalty record")
	}

	return updated, nil
}
