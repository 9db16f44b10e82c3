package domain

import (
	"math" // Finite-amount checks

	"github.com/google/uuid" // UUID generation for transaction IDs
)

// Transaction types
const (
	TypeCredit = "credit" // Credit stores the amount as given
	TypeDebit  = "debit"  // Debit stores the negated amount
)

// Transaction Model
//
// The credit/debit type is not persisted: the sign of Amount is the sole
// encoding (credit positive, debit negated). SessionID is the only
// isolation key; it is nullable so rows written by the historical
// non-scoped variant of the service stay readable.
type Transaction struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`           // UUID primary key
	Title     string  `gorm:"not null" json:"title"`                  // Non-empty label
	Amount    float64 `json:"amount"`                                 // Signed stored amount
	SessionID *string `gorm:"index" json:"session_id"`                // Owning session, nullable
	CreatedAt int64   `gorm:"autoCreateTime:milli" json:"created_at"` // Timestamp of creation in milliseconds
}

// NewTransaction is the typed create contract for the ledger. It validates
// the request fields, normalizes the signed stored amount from the
// credit/debit type and assigns a fresh UUID. It returns a *ValidationError
// naming the violating fields, so callers never persist a malformed row.
func NewTransaction(title string, amount *float64, txType string, sessionID string) (*Transaction, error) {
	var fields []string // Violating field names
	if title == "" {
		fields = append(fields, "title")
	}
	if amount == nil || math.IsNaN(*amount) || math.IsInf(*amount, 0) {
		fields = append(fields, "amount")
	}
	if txType != TypeCredit && txType != TypeDebit {
		fields = append(fields, "type")
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	// Sign normalization: the stored value encodes the type
	stored := *amount
	if txType == TypeDebit {
		stored = -stored
	}

	return &Transaction{
		ID:        uuid.NewString(), // Server-generated, immutable
		Title:     title,
		Amount:    stored,
		SessionID: &sessionID,
	}, nil
}
