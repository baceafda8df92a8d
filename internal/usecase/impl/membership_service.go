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
	"membership/internal/domain/service"
	"membership/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// membershipService implements the MembershipUsecase interface.
type membershipService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	snapshots usecase.SpendSnapshotUsecase
	ledger    *loyaltyLedger
	publisher service.EventPublisher
	metrics   service.MembershipMetrics
	config    *config.Config
	logger    *slog.Logger
	now       func() time.Time
}

// MembershipServiceParams holds dependencies for MembershipService, injected by Fx.
type MembershipServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	SnapshotRepo repository.SpendSnapshotRepository
	LoyaltyRepo  repository.LoyaltyRepository
	Publisher    service.EventPublisher    `optional:"true"`
	Metrics      service.MembershipMetrics `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// txComponents are the workflow collaborators bound to one transaction.
type txComponents struct {
	ledger    *loyaltyLedger
	snapshots *spendSnapshots
	cards     *membershipCardService
}

// creditResult carries what a committed credit changed, for post-commit side effects.
type creditResult struct {
	duplicate    bool
	record       *entity.LoyaltyRecord
	previousCard *entity.MembershipCard
	card         *entity.MembershipCard
}

func (r *creditResult) upgraded() bool {
	return r.previousCard != nil && r.card != nil && r.card.ID != r.previousCard.ID
}

// NewMembershipService is the constructor for membershipService.
func NewMembershipService(params MembershipServiceParams) usecase.MembershipUsecase {
	return newMembershipService(params, time.Now)
}

func newMembershipService(params MembershipServiceParams, now func() time.Time) *membershipService {
	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &membershipService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		snapshots: newSpendSnapshots(params.SnapshotRepo, now),
		ledger: newLoyaltyLedger(LoyaltyLedgerParams{
			LoyaltyRepo: params.LoyaltyRepo,
			Config:      params.Config,
			Logger:      params.Logger,
		}, now),
		publisher: params.Publisher,
		metrics:   metrics,
		config:    params.Config,
		logger:    params.Logger,
		now:       now,
	}
}

func (srv *membershipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *membershipService) components(factory repository.RepositoryFactory) *txComponents {
	return &txComponents{
		ledger: newLoyaltyLedger(LoyaltyLedgerParams{
			LoyaltyRepo: factory.LoyaltyRepo(),
			Config:      srv.config,
			Logger:      srv.logger,
		}, srv.now),
		snapshots: newSpendSnapshots(factory.SpendSnapshotRepo(), srv.now),
		cards: newMembershipCardService(MembershipCardServiceParams{
			CardRepo: factory.MembershipCardRepo(),
			Catalog:  NewTierCatalog(factory.TierRepo()),
			Config:   srv.config,
			Metrics:  srv.metrics,
			Logger:   srv.logger,
		}, srv.now),
	}
}

// RecordOrderSpending credits a completed order to the customer's ledger and re-evaluates the tier.
func (srv *membershipService) RecordOrderSpending(ctx context.Context, order *entity.Order) (*entity.LoyaltyRecord, error) {
	if order == nil || order.OrderID == uuid.Nil || order.CustomerID == uuid.Nil {
		srv.metrics.OrderSkipped(service.SkipReasonInvalid)
		srv.log(ctx).Debug("Skipping order without order or customer id")

		return nil, nil
	}

	logger := srv.log(ctx).With(
		slog.String("order_id", order.OrderID.String()),
		slog.String("customer_id", order.CustomerID.String()))
	if actor := deliverycontext.GetActorFromContext(ctx); actor != "" {
		logger = logger.With(slog.String("actor", actor))
	}

	existing, err := srv.snapshots.FindByOrderID(ctx, order.OrderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		srv.metrics.OrderSkipped(service.SkipReasonDuplicate)
		logger.Debug("Order already credited")

		return nil, nil
	}

	amount, err := srv.orderAmount(ctx, order)
	if err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		srv.metrics.OrderSkipped(service.SkipReasonNonPositive)
		logger.Debug("Skipping order with non-positive amount", slog.String("amount", amount.String()))

		return nil, nil
	}

	effectiveDate := srv.now()
	if order.FulfilledAt != nil && !order.FulfilledAt.IsZero() {
		effectiveDate = *order.FulfilledAt
	}

	result := &creditResult{}
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		return srv.credit(ctx, srv.components(factory), order, amount, effectiveDate, result)
	})
	if err != nil {
		logger.Error("Failed to credit order spending", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute order credit transaction")
	}

	if result.duplicate {
		srv.metrics.OrderSkipped(service.SkipReasonDuplicate)
		logger.Info("Order was credited concurrently, skipped")

		return nil, nil
	}

	srv.metrics.OrderCredited()
	logger.Info("Credited order spending",
		slog.String("amount", amount.String()),
		slog.Int("year", result.record.Year),
		slog.String("spend_this_year", result.record.SpendThisYear.String()),
		slog.String("lifetime_spend", result.record.LifetimeSpend.String()))

	srv.publishCredit(ctx, order, amount, result)

	return result.record, nil
}

// credit runs inside the transaction. The snapshot is reserved before the
// ledger moves so a duplicate delivery credits nothing.
func (srv *membershipService) credit(
	ctx context.Context,
	tx *txComponents,
	order *entity.Order,
	amount decimal.Decimal,
	effectiveDate time.Time,
	result *creditResult,
) error {
	card, err := tx.cards.EnsureDefaultCard(ctx, order.CustomerID)
	if err != nil {
		return err
	}

	var tierSnapshot *entity.TierSnapshot
	if card != nil {
		tierSnapshot = card.TierSnapshot
	}

	_, created, err := tx.snapshots.RecordIfAbsent(ctx, order.OrderID, order.CustomerID, tierSnapshot, amount)
	if err != nil {
		return err
	}
	if !created {
		result.duplicate = true

		return nil
	}

	record, err := tx.ledger.Increment(ctx, order.CustomerID, amount, effectiveDate)
	if err != nil {
		return err
	}
	result.record = record

	if card == nil {
		return nil
	}

	upgraded, err := tx.cards.EvaluateUpgrade(ctx, order.CustomerID, record, card)
	if err != nil {
		return err
	}
	result.previousCard = card
	result.card = upgraded

	return nil
}

// orderAmount prefers the precomputed total, then inline line items, then stored line items.
func (srv *membershipService) orderAmount(ctx context.Context, order *entity.Order) (decimal.Decimal, error) {
	if order.Total.IsPositive() {
		return order.Total, nil
	}

	items := order.LineItems
	if len(items) == 0 && srv.orderRepo != nil {
		stored, err := srv.orderRepo.ListLineItems(ctx, order.OrderID)
		if err != nil {
			return decimal.Zero, errors.Wrap(err, "failed to list order line items")
		}
		items = stored
	}

	return entity.SumLineItems(items), nil
}

// publishCredit emits post-commit events. Failures never undo the credit.
func (srv *membershipService) publishCredit(ctx context.Context, order *entity.Order, amount decimal.Decimal, result *creditResult) {
	if srv.publisher == nil {
		return
	}

	if err := srv.publisher.PublishSpendCredited(ctx, &service.SpendCreditedEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Actor:         deliverycontext.GetActorFromContext(ctx),
		OrderID:       order.OrderID,
		CustomerID:    order.CustomerID,
		Amount:        amount,
		Year:          result.record.Year,
		SpendThisYear: result.record.SpendThisYear,
		LifetimeSpend: result.record.LifetimeSpend,
	}); err != nil {
		srv.log(ctx).Warn("Failed to publish spend credited event", slog.String("order_id", order.OrderID.String()), slog.Any("error", err))
	}

	if !result.upgraded() {
		return
	}

	if err := srv.publisher.PublishCardUpgraded(ctx, upgradeEvent(ctx, result.previousCard, result.card)); err != nil {
		srv.log(ctx).Warn("Failed to publish card upgraded event", slog.String("customer_id", order.CustomerID.String()), slog.Any("error", err))
	}
}

func upgradeEvent(ctx context.Context, previous, card *entity.MembershipCard) *service.CardUpgradedEvent {
	event := &service.CardUpgradedEvent{
		RequestID:            deliverycontext.GetRequestIDFromContext(ctx),
		Actor:                deliverycontext.GetActorFromContext(ctx),
		CustomerID:           card.CustomerID,
		PreviousCardID:       previous.ID,
		CardID:               card.ID,
		LifetimeSpendAtIssue: card.LifetimeSpendAtIssue,
	}
	if previous.TierSnapshot != nil {
		event.FromTier = previous.TierSnapshot.Name
	}
	if card.TierSnapshot != nil {
		event.ToTier = card.TierSnapshot.Name
	}

	return event
}

// EvaluateMembership re-runs the upgrade evaluation against the latest ledger record
func (srv *membershipService) EvaluateMembership(ctx context.Context, customerID uuid.UUID) (*entity.MembershipCard, error) {
	var previous, card *entity.MembershipCard
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		tx := srv.components(factory)

		active, err := tx.cards.EnsureDefaultCard(ctx, customerID)
		if err != nil || active == nil {
			return err
		}
		previous, card = active, active

		record, err := tx.ledger.FindLatestByCustomer(ctx, customerID)
		if err != nil || record == nil {
			return err
		}

		card, err = tx.cards.EvaluateUpgrade(ctx, customerID, record, active)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute membership evaluation transaction")
	}

	if previous != nil && card != nil && previous.ID != card.ID && srv.publisher != nil {
		event := upgradeEvent(ctx, previous, card)
		if err := srv.publisher.PublishCardUpgraded(ctx, event); err != nil {
			srv.log(ctx).Warn("Failed to publish card upgraded event", slog.String("customer_id", customerID.String()), slog.Any("error", err))
		}
	}

	return card, nil
}

// GetLoyaltyRecord returns the customer's record for year, or the current year when year is nil
func (srv *membershipService) GetLoyaltyRecord(ctx context.Context, customerID uuid.UUID, year *int) (*entity.LoyaltyRecord, error) {
	resolved := srv.now().In(srv.ledger.location).Year()
	if year != nil {
		resolved = *year
	}

	record, err := srv.ledger.FindByCustomerAndYear(ctx, customerID, resolved)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, errors.Wrapf(domainerrors.ErrLoyaltyRecordNotFound, "customer %s year %d", customerID, resolved)
	}

	return record, nil
}

// GetOrderSpending returns the spend snapshot of a credited order
func (srv *membershipService) GetOrderSpending(ctx context.Context, orderID uuid.UUID) (*entity.OrderSpendSnapshot, error) {
	snapshot, err := srv.snapshots.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, errors.Wrapf(domainerrors.ErrSpendSnapshotNotFound, "order %s", orderID)
	}

	return snapshot, nil
}
