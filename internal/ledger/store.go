package ledger

import (
	"context"
	"errors"

	"github.com/VrmaRahul007/FinancialAssistantChat/internal/models"
)

var (
	// ErrUserNotFound indicates the user id does not resolve to a stored user.
	ErrUserNotFound = errors.New("user not found")
	// ErrInsufficientBalance indicates an expense exceeds the current balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidAmount indicates a non-positive amount reached the store.
	ErrInvalidAmount = errors.New("amount must be positive")
)

// Store is the ledger consumed by the chat command core.
//
// RecordIncome and RecordExpense write the transaction record and apply
// its balance effect as one atomic unit. For expenses the sufficiency
// check is part of that same unit: concurrent expenses against one user
// serialize on the balance, and the balance never goes negative.
type Store interface {
	FindUserByID(ctx context.Context, id uint) (*models.User, error)
	RecordIncome(ctx context.Context, userID uint, amountCent int64, category, description string) (*models.Transaction, error)
	RecordExpense(ctx context.Context, userID uint, amountCent int64, category, description string) (*models.Transaction, error)
	RecentTransactions(ctx context.Context, userID uint, limit int) ([]models.Transaction, error)
}
