package models

import "time"

// Transaction kinds.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is one immutable ledger record. Amount is stored in cents
// and is always positive; Type says which way it moves the balance.
// Records are never updated or deleted once written.
type Transaction struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	Type        string    `gorm:"size:16;index;not null"` // income / expense
	AmountCent  int64     `gorm:"not null"`
	Category    string    `gorm:"size:32;not null"`
	Description string    `gorm:"size:255"`
	CreatedAt   time.Time `gorm:"index"`

	User User `gorm:"constraint:OnDelete:CASCADE"`
}
