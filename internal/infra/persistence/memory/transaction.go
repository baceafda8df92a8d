package memory

import (
	"context"

	"membership/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

// NewTransactionManager runs transactions one at a time against the store,
// restoring the previous contents when the callback fails or panics.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute runs fn with repositories bound to the store.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	tm.store.mu.RLock()
	before := tm.store.snapshot()
	tm.store.mu.RUnlock()

	defer func() {
		if r := recover(); r != nil {
			tm.rollback(before)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		tm.rollback(before)

		return err
	}

	return nil
}

func (tm *transactionManager) rollback(before *state) {
	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	tm.store.restore(before)
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) TierRepo() repository.TierRepository {
	return NewTierRepository(f.store)
}

func (f *repositoryFactory) LoyaltyRepo() repository.LoyaltyRepository {
	return NewLoyaltyRepository(f.store)
}

func (f *repositoryFactory) MembershipCardRepo() repository.MembershipCardRepository {
	return NewMembershipCardRepository(f.store)
}

func (f *repositoryFactory) SpendSnapshotRepo() repository.SpendSnapshotRepository {
	return NewSpendSnapshotRepository(f.store)
}

func (f *repositoryFactory) OrderRepo() repository.OrderRepository {
	return NewOrderRepository(f.store)
}
