package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/VrmaRahul007/FinancialAssistantChat/internal/models"
)

// MemoryStore is an in-memory implementation of Store. It is used in
// tests and mirrors the SQLite store's atomicity: each user's
// check+insert+apply runs under that user's lock.
type MemoryStore struct {
	mu     sync.Mutex // protects users, txns, id counters and userMu
	users  map[uint]*models.User
	txns   []models.Transaction
	nextID uint

	userMu map[uint]*sync.Mutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[uint]*models.User),
		userMu: make(map[uint]*sync.Mutex),
	}
}

// CreateUser adds a user with a zero balance and returns a copy.
func (m *MemoryStore) CreateUser(username string) models.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	u := &models.User{
		ID:        m.nextID,
		Username:  username,
		CreatedAt: time.Now(),
	}
	m.users[u.ID] = u
	return *u
}

func (m *MemoryStore) userLock(id uint) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.userMu[id]; !ok {
		m.userMu[id] = &sync.Mutex{}
	}
	return m.userMu[id]
}

func (m *MemoryStore) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *MemoryStore) RecordIncome(ctx context.Context, userID uint, amountCent int64, category, description string) (*models.Transaction, error) {
	if amountCent <= 0 {
		return nil, ErrInvalidAmount
	}

	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	return m.append(userID, models.TypeIncome, amountCent, amountCent, category, description)
}

func (m *MemoryStore) RecordExpense(ctx context.Context, userID uint, amountCent int64, category, description string) (*models.Transaction, error) {
	if amountCent <= 0 {
		return nil, ErrInvalidAmount
	}

	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	m.mu.Lock()
	u, ok := m.users[userID]
	short := ok && u.BalanceCent < amountCent
	m.mu.Unlock()

	if !ok {
		return nil, ErrUserNotFound
	}
	if short {
		return nil, ErrInsufficientBalance
	}
	return m.append(userID, models.TypeExpense, amountCent, -amountCent, category, description)
}

// append writes the transaction record and applies delta to the balance.
// Callers hold the user's lock.
func (m *MemoryStore) append(userID uint, kind string, amountCent, delta int64, category, description string) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}

	m.nextID++
	txn := models.Transaction{
		ID:          m.nextID,
		UserID:      userID,
		Type:        kind,
		AmountCent:  amountCent,
		Category:    category,
		Description: description,
		CreatedAt:   time.Now(),
	}
	m.txns = append(m.txns, txn)
	u.BalanceCent += delta
	return &txn, nil
}

func (m *MemoryStore) RecentTransactions(ctx context.Context, userID uint, limit int) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []models.Transaction
	for i := len(m.txns) - 1; i >= 0 && len(result) < limit; i-- {
		if m.txns[i].UserID == userID {
			result = append(result, m.txns[i])
		}
	}
	return result, nil
}

// TransactionCount reports how many transactions a user has (test helper).
func (m *MemoryStore) TransactionCount(userID uint) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for i := range m.txns {
		if m.txns[i].UserID == userID {
			n++
		}
	}
	return n
}

var _ Store = (*MemoryStore)(nil)
