package memory

import (
	"context"
	"time"

	"membership/internal/domain/entity"
	"membership/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type tierRepository struct{ store *Store }

// NewTierRepository returns a tier repository over the store.
func NewTierRepository(store *Store) repository.TierRepository {
	return &tierRepository{store: store}
}

func (r *tierRepository) ListAll(_ context.Context) ([]*entity.Tier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if err := r.store.failure("TierRepository.ListAll"); err != nil {
		return nil, err
	}

	tiers := make([]*entity.Tier, 0, len(r.store.tiers))
	for _, tier := range r.store.tiers {
		out := *tier
		tiers = append(tiers, &out)
	}

	return tiers, nil
}

func (r *tierRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Tier, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, tier := range r.store.tiers {
		if tier.ID == id {
			out := *tier

			return &out, nil
		}
	}

	return nil, repository.ErrTierNotFound
}

type loyaltyRepository struct{ store *Store }

// NewLoyaltyRepository returns a loyalty repository over the store.
func NewLoyaltyRepository(store *Store) repository.LoyaltyRepository {
	return &loyaltyRepository{store: store}
}

func (r *loyaltyRepository) FindByCustomerAndYear(_ context.Context, customerID uuid.UUID, year int) (*entity.LoyaltyRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if err := r.store.failure("LoyaltyRepository.FindByCustomerAndYear"); err != nil {
		return nil, err
	}

	for _, record := range r.store.loyalty {
		if record.CustomerID == customerID && record.Year == year {
			out := *record

			return &out, nil
		}
	}

	return nil, repository.ErrLoyaltyRecordNotFound
}

func (r *loyaltyRepository) FindLatestByCustomer(_ context.Context, customerID uuid.UUID) (*entity.LoyaltyRecord, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if err := r.store.failure("LoyaltyRepository.FindLatestByCustomer"); err != nil {
		return nil, err
	}

	var latest *entity.LoyaltyRecord
	for _, record := range r.store.loyalty {
		if record.CustomerID == customerID && (latest == nil || record.Year > latest.Year) {
			latest = record
		}
	}
	if latest == nil {
		return nil, repository.ErrLoyaltyRecordNotFound
	}

	out := *latest

	return &out, nil
}

func (r *loyaltyRepository) Create(_ context.Context, record *entity.LoyaltyRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.failure("LoyaltyRepository.Create"); err != nil {
		return err
	}

	for _, existing := range r.store.loyalty {
		if existing.CustomerID == record.CustomerID && existing.Year == record.Year {
			return repository.ErrDuplicateLoyaltyRecord
		}
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	stored := *record
	r.store.loyalty[stored.ID] = &stored

	return nil
}

func (r *loyaltyRepository) Update(_ context.Context, record *entity.LoyaltyRecord) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.loyalty[record.ID]
	if !ok {
		return repository.ErrLoyaltyRecordNotFound
	}

	existing.SpendThisYear = record.SpendThisYear
	existing.LifetimeSpend = record.LifetimeSpend
	existing.UpdatedAt = record.UpdatedAt

	return nil
}

func (r *loyaltyRepository) IncrementSpend(_ context.Context, id uuid.UUID, amount decimal.Decimal, updatedAt time.Time) (*entity.LoyaltyRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.failure("LoyaltyRepository.IncrementSpend"); err != nil {
		return nil, err
	}

	existing, ok := r.store.loyalty[id]
	if !ok {
		return nil, repository.ErrLoyaltyRecordNotFound
	}

	existing.SpendThisYear = existing.SpendThisYear.Add(amount)
	existing.LifetimeSpend = existing.LifetimeSpend.Add(amount)
	existing.UpdatedAt = updatedAt

	out := *existing

	return &out, nil
}

type membershipCardRepository struct{ store *Store }

// NewMembershipCardRepository returns a membership card repository over the store.
func NewMembershipCardRepository(store *Store) repository.MembershipCardRepository {
	return &membershipCardRepository{store: store}
}

func (r *membershipCardRepository) FindLatestActiveByCustomer(_ context.Context, customerID uuid.UUID) (*entity.MembershipCard, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if err := r.store.failure("MembershipCardRepository.FindLatestActiveByCustomer"); err != nil {
		return nil, err
	}

	for _, card := range r.store.cardsOf(customerID) {
		if card.Active {
			return card, nil
		}
	}

	return nil, repository.ErrMembershipCardNotFound
}

func (r *membershipCardRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.MembershipCard, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	card, ok := r.store.cards[id]
	if !ok {
		return nil, repository.ErrMembershipCardNotFound
	}

	return cloneCard(card), nil
}

func (r *membershipCardRepository) FindByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.MembershipCard, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.cardsOf(customerID), nil
}

func (r *membershipCardRepository) Create(_ context.Context, card *entity.MembershipCard) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.failure("MembershipCardRepository.Create"); err != nil {
		return err
	}

	if card.Active {
		for _, existing := range r.store.cards {
			if existing.CustomerID == card.CustomerID && existing.Active {
				return repository.ErrDuplicateActiveCard
			}
		}
	}

	if card.ID == uuid.Nil {
		card.ID = uuid.New()
	}
	r.store.cards[card.ID] = cloneCard(card)

	return nil
}

func (r *membershipCardRepository) DeactivateAll(_ context.Context, customerID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.failure("MembershipCardRepository.DeactivateAll"); err != nil {
		return err
	}

	for _, card := range r.store.cards {
		if card.CustomerID == customerID {
			card.Active = false
		}
	}

	return nil
}

type spendSnapshotRepository struct{ store *Store }

// NewSpendSnapshotRepository returns a spend snapshot repository over the store.
func NewSpendSnapshotRepository(store *Store) repository.SpendSnapshotRepository {
	return &spendSnapshotRepository{store: store}
}

func (r *spendSnapshotRepository) FindByOrderID(_ context.Context, orderID uuid.UUID) (*entity.OrderSpendSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if err := r.store.failure("SpendSnapshotRepository.FindByOrderID"); err != nil {
		return nil, err
	}

	snap, ok := r.store.snapshots[orderID]
	if !ok {
		return nil, repository.ErrSpendSnapshotNotFound
	}

	return cloneSnapshot(snap), nil
}

func (r *spendSnapshotRepository) InsertIfAbsent(_ context.Context, snapshot *entity.OrderSpendSnapshot) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if err := r.store.failure("SpendSnapshotRepository.InsertIfAbsent"); err != nil {
		return false, err
	}

	if _, ok := r.store.snapshots[snapshot.OrderID]; ok {
		return false, nil
	}

	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	r.store.snapshots[snapshot.OrderID] = cloneSnapshot(snapshot)

	return true, nil
}

type orderRepository struct{ store *Store }

// NewOrderRepository returns an order line-item source over the store.
func NewOrderRepository(store *Store) repository.OrderRepository {
	return &orderRepository{store: store}
}

func (r *orderRepository) ListLineItems(_ context.Context, orderID uuid.UUID) ([]entity.OrderLineItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if err := r.store.failure("OrderRepository.ListLineItems"); err != nil {
		return nil, err
	}

	return append([]entity.OrderLineItem(nil), r.store.lineItems[orderID]...), nil
}
