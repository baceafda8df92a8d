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

const defaultCardValidityYears = 1

type membershipCardService struct {
	cardRepo      repository.MembershipCardRepository
	catalog       usecase.TierCatalogUsecase
	validityYears int
	metrics       service.MembershipMetrics
	logger        *slog.Logger
	now           func() time.Time
}

// MembershipCardServiceParams holds dependencies for the card service, injected by Fx.
type MembershipCardServiceParams struct {
	fx.In

	CardRepo repository.MembershipCardRepository
	Catalog  usecase.TierCatalogUsecase
	Config   *config.Config
	Metrics  service.MembershipMetrics `optional:"true"`
	Logger   *slog.Logger
}

// NewMembershipCardService creates the membership card service
func NewMembershipCardService(params MembershipCardServiceParams) usecase.MembershipCardUsecase {
	return newMembershipCardService(params, time.Now)
}

func newMembershipCardService(params MembershipCardServiceParams, now func() time.Time) *membershipCardService {
	validityYears := defaultCardValidityYears
	if params.Config != nil && params.Config.Membership.CardValidityYears > 0 {
		validityYears = params.Config.Membership.CardValidityYears
	}

	metrics := params.Metrics
	if metrics == nil {
		metrics = service.NopMetrics{}
	}

	return &membershipCardService{
		cardRepo:      params.CardRepo,
		catalog:       params.Catalog,
		validityYears: validityYears,
		metrics:       metrics,
		logger:        params.Logger,
		now:           now,
	}
}

func (srv *membershipCardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// EnsureDefaultCard returns the active card, issuing one at the lowest tier if needed
func (srv *membershipCardService) EnsureDefaultCard(ctx context.Context, customerID uuid.UUID) (*entity.MembershipCard, error) {
	if customerID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("customer id is required"))
	}

	card, err := srv.findActiveCard(ctx, customerID)
	if err != nil || card != nil {
		return card, err
	}

	tiers, err := srv.catalog.ListTiersSortedAscending(ctx)
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		srv.log(ctx).Warn("Tier catalog is empty, no default card issued", slog.String("customer_id", customerID.String()))

		return nil, nil
	}

	card = srv.newCard(customerID, tiers[0], decimal.Zero)
	if err := srv.cardRepo.Create(ctx, card); err != nil {
		if errors.Is(err, repository.ErrDuplicateActiveCard) {
			// Lost the race to a concurrent issuer; its card is the active one.
			return srv.findActiveCard(ctx, customerID)
		}

		return nil, errors.Wrap(err, "failed to issue default membership card")
	}

	srv.metrics.DefaultCardIssued()
	srv.log(ctx).Info("Issued default membership card",
		slog.String("customer_id", customerID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("tier", tiers[0].Name))

	return card, nil
}

// GetActiveCardWithTier returns the active card and its live tier
func (srv *membershipCardService) GetActiveCardWithTier(ctx context.Context, customerID uuid.UUID) (*entity.CardWithTier, error) {
	card, err := srv.EnsureDefaultCard(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, nil
	}

	tiers, err := srv.catalog.ListTiersSortedAscending(ctx)
	if err != nil {
		return nil, err
	}

	result := &entity.CardWithTier{Card: card}
	for _, tier := range tiers {
		if tier.ID == card.TierID {
			result.Tier = tier

			break
		}
	}

	return result, nil
}

// EvaluateUpgrade moves the customer to the highest tier the record qualifies for
func (srv *membershipCardService) EvaluateUpgrade(
	ctx context.Context,
	customerID uuid.UUID,
	record *entity.LoyaltyRecord,
	activeCard *entity.MembershipCard,
) (*entity.MembershipCard, error) {
	if record == nil || activeCard == nil {
		return activeCard, nil
	}

	tiers, err := srv.catalog.ListTiersSortedAscending(ctx)
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		return activeCard, nil
	}

	current, found := tierPosition(tiers, activeCard)
	if !found {
		srv.log(ctx).Warn("Card tier missing from catalog, evaluating from the lowest tier",
			slog.String("customer_id", customerID.String()),
			slog.String("card_id", activeCard.ID.String()),
			slog.String("tier_id", activeCard.TierID.String()))
	}

	spentSinceCardIssued := record.LifetimeSpend.Sub(activeCard.LifetimeSpendAtIssue)

	target := current
	for i := current + 1; i < len(tiers); i++ {
		if tiers[i].QualifiesWith(record.SpendThisYear, spentSinceCardIssued) {
			target = i
		}
	}
	if target == current {
		return activeCard, nil
	}

	if err := srv.cardRepo.DeactivateAll(ctx, customerID); err != nil {
		return nil, errors.Wrap(err, "failed to deactivate membership cards")
	}

	card := srv.newCard(customerID, tiers[target], record.LifetimeSpend)
	if err := srv.cardRepo.Create(ctx, card); err != nil {
		return nil, errors.Wrap(err, "failed to issue upgraded membership card")
	}

	srv.metrics.CardUpgraded()
	srv.log(ctx).Info("Upgraded membership card",
		slog.String("customer_id", customerID.String()),
		slog.String("previous_card_id", activeCard.ID.String()),
		slog.String("card_id", card.ID.String()),
		slog.String("from_tier", tiers[current].Name),
		slog.String("to_tier", tiers[target].Name))

	return card, nil
}

// GetCardByID returns a card, failing with a not found error when it does not exist
func (srv *membershipCardService) GetCardByID(ctx context.Context, cardID uuid.UUID) (*entity.MembershipCard, error) {
	card, err := srv.cardRepo.FindByID(ctx, cardID)
	if errors.Is(err, repository.ErrMembershipCardNotFound) {
		return nil, errors.Wrap(domainerrors.ErrCardNotFound, cardID.String())
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find membership card")
	}

	return card, nil
}

// ListCustomerCards returns all cards of a customer, newest first
func (srv *membershipCardService) ListCustomerCards(ctx context.Context, customerID uuid.UUID) ([]*entity.MembershipCard, error) {
	cards, err := srv.cardRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list membership cards")
	}

	return cards, nil
}

func (srv *membershipCardService) findActiveCard(ctx context.Context, customerID uuid.UUID) (*entity.MembershipCard, error) {
	card, err := srv.cardRepo.FindLatestActiveByCustomer(ctx, customerID)
	if errors.Is(err, repository.ErrMembershipCardNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active membership card")
	}

	return card, nil
}

func (srv *membershipCardService) newCard(customerID uuid.UUID, tier *entity.Tier, lifetimeSpendAtIssue decimal.Decimal) *entity.MembershipCard {
	issuedAt := srv.now()

	return &entity.MembershipCard{
		ID:                   uuid.New(),
		CustomerID:           customerID,
		TierID:               tier.ID,
		IssuedAt:             issuedAt,
		ExpiresAt:            issuedAt.AddDate(srv.validityYears, 0, 0),
		Active:               true,
		TierSnapshot:         tier.Snapshot(),
		LifetimeSpendAtIssue: lifetimeSpendAtIssue,
		CreatedAt:            issuedAt,
		UpdatedAt:            issuedAt,
	}
}
