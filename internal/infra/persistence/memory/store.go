// Package memory implements the persistence layer in process memory. It backs
// the "memory" storage driver and the workflow tests.
package memory

import (
	"sort"
	"sync"
	"time"

	"membership/config"
	"membership/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store holds all membership state in memory.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	tiers     []*entity.Tier
	loyalty   map[uuid.UUID]*entity.LoyaltyRecord
	cards     map[uuid.UUID]*entity.MembershipCard
	snapshots map[uuid.UUID]*entity.OrderSpendSnapshot // keyed by order ID
	lineItems map[uuid.UUID][]entity.OrderLineItem

	failures map[string]error
}

// state is a deep copy of the store contents used to roll back transactions.
type state struct {
	tiers     []*entity.Tier
	loyalty   map[uuid.UUID]*entity.LoyaltyRecord
	cards     map[uuid.UUID]*entity.MembershipCard
	snapshots map[uuid.UUID]*entity.OrderSpendSnapshot
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		loyalty:   make(map[uuid.UUID]*entity.LoyaltyRecord),
		cards:     make(map[uuid.UUID]*entity.MembershipCard),
		snapshots: make(map[uuid.UUID]*entity.OrderSpendSnapshot),
		lineItems: make(map[uuid.UUID][]entity.OrderLineItem),
		failures:  make(map[string]error),
	}
}

// NewFromConfig creates a Store whose catalog is seeded from storage.seedTiers.
func NewFromConfig(cfg *config.Config) *Store {
	s := New()

	now := time.Now()
	for _, seed := range cfg.Storage.SeedTiers {
		s.AddTier(&entity.Tier{
			Name:                   seed.Name,
			YearlySpendThreshold:   decimal.NewFromFloat(seed.YearlySpendThreshold),
			LifetimeSpendThreshold: decimal.NewFromFloat(seed.LifetimeSpendThreshold),
			DiscountPercent:        decimal.NewFromFloat(seed.DiscountPercent),
			BirthdayVoucherValue:   decimal.NewFromFloat(seed.BirthdayVoucherValue),
			Perks:                  seed.Perks,
			CreatedAt:              now,
			UpdatedAt:              now,
		})
	}

	return s
}

// AddTier appends a tier to the catalog, assigning an ID when missing.
func (s *Store) AddTier(tier *entity.Tier) *entity.Tier {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *tier
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	s.tiers = append(s.tiers, &stored)

	out := stored

	return &out
}

// RemoveTier deletes a tier from the catalog. Cards issued at it are kept.
func (s *Store) RemoveTier(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tiers[:0]
	for _, tier := range s.tiers {
		if tier.ID != id {
			kept = append(kept, tier)
		}
	}
	s.tiers = kept
}

// SetLineItems stores the line items of an order.
func (s *Store) SetLineItems(orderID uuid.UUID, items []entity.OrderLineItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lineItems[orderID] = append([]entity.OrderLineItem(nil), items...)
}

// FailOn makes every later call of the named operation return err until
// cleared with a nil err. Operation names are "<Repo>.<Method>".
func (s *Store) FailOn(operation string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err == nil {
		delete(s.failures, operation)

		return
	}
	s.failures[operation] = err
}

func (s *Store) failure(operation string) error {
	return s.failures[operation]
}

// Cards returns every card of the customer, newest first.
func (s *Store) Cards(customerID uuid.UUID) []*entity.MembershipCard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cardsOf(customerID)
}

func (s *Store) cardsOf(customerID uuid.UUID) []*entity.MembershipCard {
	var cards []*entity.MembershipCard
	for _, card := range s.cards {
		if card.CustomerID == customerID {
			cards = append(cards, cloneCard(card))
		}
	}

	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].IssuedAt.Equal(cards[j].IssuedAt) {
			return cards[i].CreatedAt.After(cards[j].CreatedAt)
		}

		return cards[i].IssuedAt.After(cards[j].IssuedAt)
	})

	return cards
}

// SnapshotCount returns the number of stored order spend snapshots.
func (s *Store) SnapshotCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.snapshots)
}

// LoyaltyRecords returns every ledger row of the customer ordered by year.
func (s *Store) LoyaltyRecords(customerID uuid.UUID) []*entity.LoyaltyRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []*entity.LoyaltyRecord
	for _, record := range s.loyalty {
		if record.CustomerID == customerID {
			out := *record
			records = append(records, &out)
		}
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Year < records[j].Year })

	return records
}

func (s *Store) snapshot() *state {
	st := &state{
		tiers:     make([]*entity.Tier, 0, len(s.tiers)),
		loyalty:   make(map[uuid.UUID]*entity.LoyaltyRecord, len(s.loyalty)),
		cards:     make(map[uuid.UUID]*entity.MembershipCard, len(s.cards)),
		snapshots: make(map[uuid.UUID]*entity.OrderSpendSnapshot, len(s.snapshots)),
	}
	for _, tier := range s.tiers {
		out := *tier
		st.tiers = append(st.tiers, &out)
	}
	for id, record := range s.loyalty {
		out := *record
		st.loyalty[id] = &out
	}
	for id, card := range s.cards {
		st.cards[id] = cloneCard(card)
	}
	for id, snap := range s.snapshots {
		st.snapshots[id] = cloneSnapshot(snap)
	}

	return st
}

func (s *Store) restore(st *state) {
	s.tiers = st.tiers
	s.loyalty = st.loyalty
	s.cards = st.cards
	s.snapshots = st.snapshots
}

func cloneTierSnapshot(ts *entity.TierSnapshot) *entity.TierSnapshot {
	if ts == nil {
		return nil
	}
	out := *ts

	return &out
}

func cloneCard(card *entity.MembershipCard) *entity.MembershipCard {
	out := *card
	out.TierSnapshot = cloneTierSnapshot(card.TierSnapshot)

	return &out
}

func cloneSnapshot(snap *entity.OrderSpendSnapshot) *entity.OrderSpendSnapshot {
	out := *snap
	out.TierSnapshot = cloneTierSnapshot(snap.TierSnapshot)

	return &out
}
