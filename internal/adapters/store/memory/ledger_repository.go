package memory

import (
	"context"
	"sync"

	"github.com/bizbooks/bizbooks_backend/internal/apperrors"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
	portsrepo "github.com/bizbooks/bizbooks_backend/internal/core/ports/repositories"
)

// LedgerRepository is the in-memory Ledger Registry. Insertion order is
// preserved for listing. The RWMutex is the consistency boundary for
// concurrent HTTP requests; the engine services themselves stay pure.
type LedgerRepository struct {
	mu      sync.RWMutex
	ledgers map[string]domain.Ledger
	order   []string
}

// NewLedgerRepository creates an empty registry.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		ledgers: make(map[string]domain.Ledger),
	}
}

var _ portsrepo.LedgerRepository = (*LedgerRepository)(nil)

func (r *LedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ledgers[ledger.LedgerID]; !exists {
		r.order = append(r.order, ledger.LedgerID)
	}
	r.ledgers[ledger.LedgerID] = ledger
	return nil
}

func (r *LedgerRepository) FindLedgerByID(ctx context.Context, ledgerID string) (*domain.Ledger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ledger, ok := r.ledgers[ledgerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &ledger, nil
}

func (r *LedgerRepository) ListLedgers(ctx context.Context) ([]domain.Ledger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Ledger, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.ledgers[id])
	}
	return out, nil
}

// DeleteLedger removes the ledger with the id. Absent ids are a no-op and
// vouchers referencing the ledger are never touched.
func (r *LedgerRepository) DeleteLedger(ctx context.Context, ledgerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ledgers[ledgerID]; !ok {
		return nil
	}
	delete(r.ledgers, ledgerID)
	for i, id := range r.order {
		if id == ledgerID {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Snapshot returns the registry contents in insertion order, for the
// session persistence collaborator.
func (r *LedgerRepository) Snapshot() []domain.Ledger {
	out, _ := r.ListLedgers(context.Background())
	return out
}

// Restore replaces the registry contents, preserving the given order.
func (r *LedgerRepository) Restore(ledgers []domain.Ledger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ledgers = make(map[string]domain.Ledger, len(ledgers))
	r.order = make([]string, 0, len(ledgers))
	for _, l := range ledgers {
		if _, exists := r.ledgers[l.LedgerID]; !exists {
			r.order = append(r.order, l.LedgerID)
		}
		r.ledgers[l.LedgerID] = l
	}
}
