package chat

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/VrmaRahul007/FinancialAssistantChat/internal/ledger"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/models"
)

func newTestProcessor(t *testing.T) (*Processor, *ledger.MemoryStore, models.User) {
	t.Helper()
	store := ledger.NewMemoryStore()
	user := store.CreateUser("alice")
	return NewProcessor(store, 5), store, user
}

func TestProcess_Help(t *testing.T) {
	p, _, user := newTestProcessor(t)

	resp := p.Process(context.Background(), user.ID, "/help")
	if resp.Type != TypeHelp {
		t.Fatalf("type = %s, want help", resp.Type)
	}
	for _, cmd := range []string{"/income", "/expense", "/balance", "/summary", "/help"} {
		if !strings.Contains(resp.Message, cmd) {
			t.Errorf("help text missing %s", cmd)
		}
	}
}

func TestProcess_UnknownCommand(t *testing.T) {
	p, _, user := newTestProcessor(t)

	for _, msg := range []string{"/foo", "hello", "", "   ", "/", "/helpp"} {
		resp := p.Process(context.Background(), user.ID, msg)
		if resp.Type != TypeError {
			t.Errorf("Process(%q) type = %s, want error", msg, resp.Type)
		}
		if resp.Message != "Unknown command. Type /help for available commands." {
			t.Errorf("Process(%q) message = %q", msg, resp.Message)
		}
	}
}

func TestProcess_KeywordCaseInsensitive(t *testing.T) {
	p, _, user := newTestProcessor(t)

	resp := p.Process(context.Background(), user.ID, "/INCOME 50 food")
	if resp.Type != TypeSuccess {
		t.Fatalf("type = %s, want success (message %q)", resp.Type, resp.Message)
	}
}

func TestProcess_Income(t *testing.T) {
	p, store, user := newTestProcessor(t)
	ctx := context.Background()

	resp := p.Process(ctx, user.ID, "/income 50.5 food lunch with team")
	if resp.Type != TypeSuccess {
		t.Fatalf("type = %s, want success (message %q)", resp.Type, resp.Message)
	}
	if resp.Message != "Added income: $50.5 (food)" {
		t.Errorf("message = %q", resp.Message)
	}

	view, ok := resp.Data.(TransactionView)
	if !ok {
		t.Fatalf("data is %T, want TransactionView", resp.Data)
	}
	if view.Type != "income" || view.Amount != "50.5" || view.Category != "food" {
		t.Errorf("view = %+v", view)
	}
	if view.Description != "lunch with team" {
		t.Errorf("description = %q, want %q", view.Description, "lunch with team")
	}

	got, _ := store.FindUserByID(ctx, user.ID)
	if got.BalanceCent != 5050 {
		t.Errorf("balance = %d, want 5050", got.BalanceCent)
	}
	if n := store.TransactionCount(user.ID); n != 1 {
		t.Errorf("transaction count = %d, want 1", n)
	}
}

func TestProcess_IncomeUsage(t *testing.T) {
	p, store, user := newTestProcessor(t)

	resp := p.Process(context.Background(), user.ID, "/income 50")
	if resp.Type != TypeError {
		t.Fatalf("type = %s, want error", resp.Type)
	}
	if resp.Message != "Usage: /income <amount> <category> [description]" {
		t.Errorf("message = %q", resp.Message)
	}
	if n := store.TransactionCount(user.ID); n != 0 {
		t.Errorf("transaction count = %d, want 0", n)
	}
}

func TestProcess_ExpenseUsage(t *testing.T) {
	p, _, user := newTestProcessor(t)

	resp := p.Process(context.Background(), user.ID, "/expense")
	if resp.Message != "Usage: /expense <amount> <category> [description]" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestProcess_BadAmounts(t *testing.T) {
	p, store, user := newTestProcessor(t)
	ctx := context.Background()

	for _, amount := range []string{"abc", "-5", "0", "$10", "1,000"} {
		for _, cmd := range []string{"/income", "/expense"} {
			resp := p.Process(ctx, user.ID, cmd+" "+amount+" food")
			if resp.Type != TypeError {
				t.Errorf("%s %s: type = %s, want error", cmd, amount, resp.Type)
			}
			if resp.Message != "Amount must be a positive number" {
				t.Errorf("%s %s: message = %q", cmd, amount, resp.Message)
			}
		}
	}

	got, _ := store.FindUserByID(ctx, user.ID)
	if got.BalanceCent != 0 || store.TransactionCount(user.ID) != 0 {
		t.Error("invalid amounts must have no side effects")
	}
}

func TestProcess_AmountOverCap(t *testing.T) {
	p, store, user := newTestProcessor(t)
	ctx := context.Background()

	for _, amount := range []string{"10000000", "20000000", "99999999.99"} {
		resp := p.Process(ctx, user.ID, "/income "+amount+" bonus")
		if resp.Type != TypeError {
			t.Errorf("/income %s: type = %s, want error", amount, resp.Type)
		}
		if resp.Message != "Amount is too large" {
			t.Errorf("/income %s: message = %q, want %q", amount, resp.Message, "Amount is too large")
		}
	}

	got, _ := store.FindUserByID(ctx, user.ID)
	if got.BalanceCent != 0 || store.TransactionCount(user.ID) != 0 {
		t.Error("over-cap amounts must have no side effects")
	}
}

func TestProcess_CategoryTooLong(t *testing.T) {
	p, store, user := newTestProcessor(t)

	category := strings.Repeat("x", 33)
	resp := p.Process(context.Background(), user.ID, "/income 5 "+category)
	if resp.Type != TypeError {
		t.Fatalf("type = %s, want error", resp.Type)
	}
	if resp.Message != "Category must be 32 characters or less" {
		t.Errorf("message = %q", resp.Message)
	}
	if n := store.TransactionCount(user.ID); n != 0 {
		t.Errorf("transaction count = %d, want 0", n)
	}
}

func TestKeyword(t *testing.T) {
	testCases := []struct {
		message string
		want    string
	}{
		{"/help", "/help"},
		{"/income 50 food", "/income"},
		{"/EXPENSE 5 bus", "/expense"},
		{"  /balance  ", "/balance"},
		{"/summary", "/summary"},
		{"/foo 1 2", "unknown"},
		{"hello", "unknown"},
		{"", "unknown"},
		{"   ", "unknown"},
	}

	for _, tc := range testCases {
		if got := Keyword(tc.message); got != tc.want {
			t.Errorf("Keyword(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestProcess_Expense(t *testing.T) {
	p, store, user := newTestProcessor(t)
	ctx := context.Background()

	p.Process(ctx, user.ID, "/income 100 salary")
	resp := p.Process(ctx, user.ID, "/expense 30 transport bus pass")
	if resp.Type != TypeSuccess {
		t.Fatalf("type = %s, want success (message %q)", resp.Type, resp.Message)
	}
	if resp.Message != "Added expense: $30 (transport)" {
		t.Errorf("message = %q", resp.Message)
	}

	got, _ := store.FindUserByID(ctx, user.ID)
	if got.BalanceCent != 7000 {
		t.Errorf("balance = %d, want 7000", got.BalanceCent)
	}
}

func TestProcess_ExpenseInsufficient(t *testing.T) {
	p, store, user := newTestProcessor(t)
	ctx := context.Background()

	p.Process(ctx, user.ID, "/income 20 salary")
	resp := p.Process(ctx, user.ID, "/expense 50 rent")
	if resp.Type != TypeError {
		t.Fatalf("type = %s, want error", resp.Type)
	}
	if resp.Message != "Insufficient balance" {
		t.Errorf("message = %q", resp.Message)
	}

	got, _ := store.FindUserByID(ctx, user.ID)
	if got.BalanceCent != 2000 {
		t.Errorf("balance = %d, want 2000", got.BalanceCent)
	}
	if n := store.TransactionCount(user.ID); n != 1 {
		t.Errorf("transaction count = %d, want 1 (only the income)", n)
	}
}

func TestProcess_Balance(t *testing.T) {
	p, _, user := newTestProcessor(t)
	ctx := context.Background()

	p.Process(ctx, user.ID, "/income 100 food")
	p.Process(ctx, user.ID, "/expense 30 transport")

	resp := p.Process(ctx, user.ID, "/balance")
	if resp.Type != TypeInfo {
		t.Fatalf("type = %s, want info", resp.Type)
	}
	if resp.Message != "Current balance: $70.00" {
		t.Errorf("message = %q, want %q", resp.Message, "Current balance: $70.00")
	}
}

func TestProcess_BalanceUnknownUser(t *testing.T) {
	store := ledger.NewMemoryStore()
	p := NewProcessor(store, 5)

	resp := p.Process(context.Background(), 42, "/balance")
	if resp.Type != TypeError {
		t.Fatalf("type = %s, want error", resp.Type)
	}
	if resp.Message != "User not found" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestProcess_ReadCommandsAreIdempotent(t *testing.T) {
	p, store, user := newTestProcessor(t)
	ctx := context.Background()

	p.Process(ctx, user.ID, "/income 10 misc")

	for i := 0; i < 3; i++ {
		p.Process(ctx, user.ID, "/help")
		p.Process(ctx, user.ID, "/balance")
		p.Process(ctx, user.ID, "/summary")
	}

	got, _ := store.FindUserByID(ctx, user.ID)
	if got.BalanceCent != 1000 {
		t.Errorf("balance = %d, want 1000", got.BalanceCent)
	}
	if n := store.TransactionCount(user.ID); n != 1 {
		t.Errorf("transaction count = %d, want 1", n)
	}
}

func TestProcess_Summary(t *testing.T) {
	p, _, user := newTestProcessor(t)
	ctx := context.Background()

	// 7 transactions, only the newest 5 should be listed
	p.Process(ctx, user.ID, "/income 100 a")
	p.Process(ctx, user.ID, "/income 100 b")
	p.Process(ctx, user.ID, "/income 10 food groceries")
	p.Process(ctx, user.ID, "/expense 5 transport")
	p.Process(ctx, user.ID, "/income 2.5 gift")
	p.Process(ctx, user.ID, "/expense 1 snacks chips and soda")
	p.Process(ctx, user.ID, "/expense 3 coffee")

	resp := p.Process(ctx, user.ID, "/summary")
	if resp.Type != TypeInfo {
		t.Fatalf("type = %s, want info", resp.Type)
	}

	wantLines := []string{
		"Recent transactions:",
		"-$3 (coffee) - No description",
		"-$1 (snacks) - chips and soda",
		"+$2.5 (gift) - No description",
		"-$5 (transport) - No description",
		"+$10 (food) - groceries",
	}
	gotLines := strings.Split(resp.Message, "\n")
	if len(gotLines) != len(wantLines) {
		t.Fatalf("got %d lines, want %d:\n%s", len(gotLines), len(wantLines), resp.Message)
	}
	for i := range wantLines {
		if gotLines[i] != wantLines[i] {
			t.Errorf("line %d = %q, want %q", i, gotLines[i], wantLines[i])
		}
	}

	views, ok := resp.Data.([]TransactionView)
	if !ok {
		t.Fatalf("data is %T, want []TransactionView", resp.Data)
	}
	if len(views) != 5 {
		t.Errorf("data length = %d, want 5", len(views))
	}
}

func TestProcess_SummaryEmptyHistory(t *testing.T) {
	p, _, user := newTestProcessor(t)

	resp := p.Process(context.Background(), user.ID, "/summary")
	if resp.Type != TypeInfo {
		t.Fatalf("type = %s, want info", resp.Type)
	}
	// header with an empty body, same shape as with history
	if resp.Message != "Recent transactions:\n" {
		t.Errorf("message = %q", resp.Message)
	}
}

func TestProcess_DescriptionWhitespaceCollapses(t *testing.T) {
	p, _, user := newTestProcessor(t)

	resp := p.Process(context.Background(), user.ID, "/income 5 misc a   b    c")
	view := resp.Data.(TransactionView)
	if view.Description != "a b c" {
		t.Errorf("description = %q, want %q", view.Description, "a b c")
	}
}

// Ten concurrent /expense 30 commands against a balance of 100.00 must
// produce exactly three successes and never a negative balance.
func TestProcess_ConcurrentExpenses(t *testing.T) {
	p, store, user := newTestProcessor(t)
	ctx := context.Background()

	p.Process(ctx, user.ID, "/income 100 seed")

	const workers = 10
	var wg sync.WaitGroup
	responses := make([]Response, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			responses[i] = p.Process(ctx, user.ID, "/expense 30 race")
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, resp := range responses {
		switch resp.Type {
		case TypeSuccess:
			succeeded++
		case TypeError:
			if resp.Message != "Insufficient balance" {
				t.Errorf("unexpected error message %q", resp.Message)
			}
		default:
			t.Errorf("unexpected response type %q", resp.Type)
		}
	}

	if succeeded != 3 {
		t.Errorf("successful expenses = %d, want 3", succeeded)
	}
	got, _ := store.FindUserByID(ctx, user.ID)
	if got.BalanceCent < 0 {
		t.Error("balance went negative under concurrent expenses")
	}
	if got.BalanceCent != 1000 {
		t.Errorf("balance = %d, want 1000", got.BalanceCent)
	}
}
