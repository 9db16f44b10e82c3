package store

import (
	"context"                   // Context for database operations
	"errors"                    // Error matching
	"ledger_api/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Ledger is the persistence abstraction over the transactions table.
// This interface allows swapping the implementation without changing callers.
type Ledger interface {
	Append(ctx context.Context, t *domain.Transaction) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.Transaction, error)
	FindBySession(ctx context.Context, id, sessionID string) (*domain.Transaction, error)
	SumBySession(ctx context.Context, sessionID string) (float64, error)
}

// GormLedger implements Ledger on top of a GORM connection.
type GormLedger struct {
	db *gorm.DB // Database connection pool
}

// NewLedger creates a Ledger backed by the given database.
func NewLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{db: db}
}

// Append persists one transaction row as a single atomic insert.
// Store errors propagate unchanged to the caller.
func (l *GormLedger) Append(ctx context.Context, t *domain.Transaction) error {
	return l.db.WithContext(ctx).Create(t).Error
}

// ListBySession returns every transaction owned by the session, in
// store-default order (stable for a fixed data set; no explicit sort).
func (l *GormLedger) ListBySession(ctx context.Context, sessionID string) ([]domain.Transaction, error) {
	transactions := []domain.Transaction{} // Empty slice, not nil, so the JSON list is never null
	err := l.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// FindBySession returns the transaction matching both id AND session, or
// nil when no such row exists. The id alone is never sufficient: a row
// owned by a different session is reported as absent, not as that row.
// Absence is a normal outcome, not an error.
func (l *GormLedger) FindBySession(ctx context.Context, id, sessionID string) (*domain.Transaction, error) {
	var t domain.Transaction
	err := l.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", id, sessionID).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // Not found is not a store failure
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// SumBySession computes the signed sum of all stored amounts for the
// session, recomputed live on every call. Zero for an empty session.
func (l *GormLedger) SumBySession(ctx context.Context, sessionID string) (float64, error) {
	var total float64
	err := l.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
