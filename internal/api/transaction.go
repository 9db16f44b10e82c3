package api

import (
	"errors"                      // Error matching
	"ledger_api/internal/domain"  // Importing domain models
	"ledger_api/internal/session" // Session cookie resolution
	"ledger_api/internal/store"   // Ledger persistence
	"net/http"                    // HTTP status codes
	"strings"                     // Field name normalization

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/go-playground/validator/v10" // Field extraction from binding failures
	"github.com/google/uuid"                 // UUID syntax validation
	"github.com/sirupsen/logrus"             // Logging library
)

// CreateTransactionRequest represents a create request.
// Amount is a pointer so a literal 0 is distinguishable from a missing
// field; no sign constraint is applied to it.
type CreateTransactionRequest struct {
	Title  string   `json:"title" binding:"required"`                    // Label must be provided
	Amount *float64 `json:"amount" binding:"required"`                   // Magnitude must be provided
	Type   string   `json:"type" binding:"required,oneof=credit debit"`  // Transaction type: credit, debit
}

// CreateTransactionHandler appends a transaction to the caller's ledger,
// minting a session on the first write
func CreateTransactionHandler(ledger store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateTransactionRequest // Bind JSON request to struct
		// Validate request shape before touching the session or the store
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "fields": bindingFields(err)})
			return
		}

		// Resolve the caller's session, minting one on the first write.
		// The response cookie is set as a side effect of minting.
		sessionID, minted := session.ResolveOrMint(c)

		// Typed create contract: validates and normalizes the signed amount
		t, err := domain.NewTransaction(req.Title, req.Amount, req.Type, sessionID)
		if err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "fields": verr.Fields})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		// Append the row; store errors propagate as a server fault
		if err := ledger.Append(c.Request.Context(), t); err != nil {
			logrus.WithFields(logrus.Fields{
				"session_id": sessionID,   // Owning session
				"amount":     t.Amount,    // Signed stored amount
				"error":      err.Error(), // Error message
			}).Error("Transaction write failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
			return
		}

		// Log successful write
		logrus.WithFields(logrus.Fields{
			"session_id":     sessionID, // Owning session
			"transaction_id": t.ID,      // Generated transaction ID
			"amount":         t.Amount,  // Signed stored amount
			"type":           req.Type,  // Transaction type
			"new_session":    minted,    // Whether a session was minted
		}).Info("Transaction created")

		c.Status(http.StatusCreated) // Creation acknowledgment, no body payload
	}
}

// ListTransactionsHandler returns every transaction owned by the caller's session
func ListTransactionsHandler(ledger store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString(session.ContextKey) // Set by the request gate
		transactions, err := ledger.ListBySession(c.Request.Context(), sessionID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Error("Transaction list failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"transactions": transactions})
	}
}

// GetTransactionHandler returns a single transaction by ID, scoped to the
// caller's session. An ID owned by another session is reported as not found.
func GetTransactionHandler(ledger store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id") // Transaction ID from the path
		// The identifier must be syntactically valid before any lookup
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "fields": []string{"id"}})
			return
		}
		sessionID := c.GetString(session.ContextKey) // Set by the request gate
		t, err := ledger.FindBySession(c.Request.Context(), id, sessionID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"session_id":     sessionID,
				"transaction_id": id,
				"error":          err.Error(),
			}).Error("Transaction fetch failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transaction"})
			return
		}
		// Absence (including a cross-session ID) maps to not found
		if t == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"transaction": t})
	}
}

// GetSummaryHandler returns the signed sum of the caller's stored amounts,
// recomputed live on every call
func GetSummaryHandler(ledger store.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString(session.ContextKey) // Set by the request gate
		total, err := ledger.SumBySession(c.Request.Context(), sessionID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"session_id": sessionID,
				"error":      err.Error(),
			}).Error("Summary aggregation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch summary"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"summary": gin.H{"amount": total}})
	}
}

// bindingFields extracts the violating field names from a gin binding
// failure so validation errors surface which fields to fix
func bindingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil // Malformed JSON, no field detail available
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fields
}
