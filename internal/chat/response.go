package chat

import (
	"time"

	"github.com/VrmaRahul007/FinancialAssistantChat/internal/models"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/util"
)

// response types, forwarded to the client verbatim
const (
	TypeHelp    = "help"
	TypeSuccess = "success"
	TypeInfo    = "info"
	TypeError   = "error"
)

// Response is what every processed chat line produces. Data carries the
// created transaction (income/expense) or the listed transactions
// (summary) and is omitted otherwise.
type Response struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// TransactionView is the client-facing shape of a ledger transaction.
type TransactionView struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toView(t *models.Transaction) TransactionView {
	return TransactionView{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      util.AmountString(t.AmountCent),
		Category:    t.Category,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

func toViews(txns []models.Transaction) []TransactionView {
	views := make([]TransactionView, 0, len(txns))
	for i := range txns {
		views = append(views, toView(&txns[i]))
	}
	return views
}
