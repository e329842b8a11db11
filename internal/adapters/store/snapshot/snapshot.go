package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bizbooks/bizbooks_backend/internal/adapters/store/memory"
	"github.com/bizbooks/bizbooks_backend/internal/core/domain"
)

// Manager persists the two in-memory stores as one JSON document: loaded
// once at session start, saved after each mutation and on shutdown. The
// engine itself never performs I/O; this collaborator sits with the caller.
type Manager struct {
	path     string
	ledgers  *memory.LedgerRepository
	vouchers *memory.VoucherRepository
}

type document struct {
	Ledgers  []domain.Ledger  `json:"ledgers"`
	Vouchers []domain.Voucher `json:"vouchers"`
}

// NewManager creates a snapshot manager for the given file path and stores.
func NewManager(path string, ledgers *memory.LedgerRepository, vouchers *memory.VoucherRepository) *Manager {
	return &Manager{
		path:     path,
		ledgers:  ledgers,
		vouchers: vouchers,
	}
}

// Load restores both stores from the snapshot file. A missing file is a
// fresh session, not an error.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read snapshot %s: %w", m.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", m.path, err)
	}

	m.ledgers.Restore(doc.Ledgers)
	m.vouchers.Restore(doc.Vouchers)
	return nil
}

// Save writes both stores to the snapshot file. The write goes through a
// temp file and rename so a crash mid-save never corrupts the snapshot.
func (m *Manager) Save() error {
	doc := document{
		Ledgers:  m.ledgers.Snapshot(),
		Vouchers: m.vouchers.Snapshot(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(m.path), ".snapshot-*")
	if err != nil {
		return fmt.Errorf("failed to create snapshot temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close snapshot temp file: %w", err)
	}

	if err := os.Rename(tmpName, m.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot %s: %w", m.path, err)
	}
	return nil
}
