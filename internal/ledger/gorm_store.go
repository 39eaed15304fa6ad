package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/VrmaRahul007/FinancialAssistantChat/internal/models"

	"gorm.io/gorm"
)

// GormStore is the SQLite-backed ledger store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// RecordIncome inserts the income transaction and increments the balance
// in a single database transaction.
func (s *GormStore) RecordIncome(ctx context.Context, userID uint, amountCent int64, category, description string) (*models.Transaction, error) {
	if amountCent <= 0 {
		return nil, ErrInvalidAmount
	}

	txn := &models.Transaction{
		UserID:      userID,
		Type:        models.TypeIncome,
		AmountCent:  amountCent,
		Category:    category,
		Description: description,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ?", userID).
			UpdateColumn("balance_cent", gorm.Expr("balance_cent + ?", amountCent))
		if res.Error != nil {
			return fmt.Errorf("increment balance: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		if err := tx.Create(txn).Error; err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// RecordExpense inserts the expense transaction and decrements the
// balance in a single database transaction. The decrement is guarded by
// `balance_cent >= amount` in the UPDATE itself, so the sufficiency
// check and the write cannot interleave with a concurrent expense.
func (s *GormStore) RecordExpense(ctx context.Context, userID uint, amountCent int64, category, description string) (*models.Transaction, error) {
	if amountCent <= 0 {
		return nil, ErrInvalidAmount
	}

	txn := &models.Transaction{
		UserID:      userID,
		Type:        models.TypeExpense,
		AmountCent:  amountCent,
		Category:    category,
		Description: description,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND balance_cent >= ?", userID, amountCent).
			UpdateColumn("balance_cent", gorm.Expr("balance_cent - ?", amountCent))
		if res.Error != nil {
			return fmt.Errorf("decrement balance: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// no row matched: either the user is gone or the balance is short
			var user models.User
			if err := tx.First(&user, userID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrUserNotFound
				}
				return fmt.Errorf("find user: %w", err)
			}
			return ErrInsufficientBalance
		}
		if err := tx.Create(txn).Error; err != nil {
			return fmt.Errorf("create transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *GormStore) RecentTransactions(ctx context.Context, userID uint, limit int) ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txns, nil
}

var _ Store = (*GormStore)(nil)
