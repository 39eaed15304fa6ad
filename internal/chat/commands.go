// Package chat implements the slash-command core: parsing a raw chat
// line, dispatching it to a command handler and turning the outcome
// into a uniform response.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/VrmaRahul007/FinancialAssistantChat/internal/ledger"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/models"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/util"
)

// command keywords
const (
	CmdHelp    = "/help"
	CmdIncome  = "/income"
	CmdExpense = "/expense"
	CmdBalance = "/balance"
	CmdSummary = "/summary"
)

const helpText = "Available commands:\n" +
	CmdIncome + " <amount> <category> [description] - Add income\n" +
	CmdExpense + " <amount> <category> [description] - Add expense\n" +
	CmdBalance + " - Check current balance\n" +
	CmdSummary + " - Get recent transactions summary\n" +
	CmdHelp + " - Show this help message"

const unknownCommandMsg = "Unknown command. Type /help for available commands."

// Keyword returns the normalized command keyword of a raw chat line,
// or "unknown" for anything that is not a recognized command. Used as
// a bounded metric label.
func Keyword(message string) string {
	parts := strings.Fields(message)
	if len(parts) == 0 {
		return "unknown"
	}
	switch command := strings.ToLower(parts[0]); command {
	case CmdHelp, CmdIncome, CmdExpense, CmdBalance, CmdSummary:
		return command
	}
	return "unknown"
}

// ErrBadAmount is returned when the amount token does not parse as a
// positive number.
var ErrBadAmount = errors.New("Amount must be a positive number")

// UsageError signals a wrong argument count; its message states the
// correct usage for the command.
type UsageError struct {
	Command string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Usage: %s <amount> <category> [description]", e.Command)
}

// Processor routes chat lines to command handlers against a ledger
// store. It holds no per-user state; every call is one isolated unit of
// work and all shared mutable state lives behind the store.
type Processor struct {
	store        ledger.Store
	summaryLimit int
}

func NewProcessor(store ledger.Store, summaryLimit int) *Processor {
	if summaryLimit <= 0 {
		summaryLimit = 5
	}
	return &Processor{store: store, summaryLimit: summaryLimit}
}

// Process handles one raw chat line for an authenticated user. It never
// returns an error: every handler failure is converted to an error
// response here, so a fault can neither reach the transport layer nor
// affect other commands.
func (p *Processor) Process(ctx context.Context, userID uint, message string) Response {
	parts := strings.Fields(message)

	command := ""
	if len(parts) > 0 {
		command = strings.ToLower(parts[0])
	}

	var (
		resp Response
		err  error
	)

	switch command {
	case CmdHelp:
		resp = Response{Type: TypeHelp, Message: helpText}
	case CmdIncome:
		resp, err = p.addIncome(ctx, userID, parts)
	case CmdExpense:
		resp, err = p.addExpense(ctx, userID, parts)
	case CmdBalance:
		resp, err = p.getBalance(ctx, userID)
	case CmdSummary:
		resp, err = p.getSummary(ctx, userID)
	default:
		resp = Response{Type: TypeError, Message: unknownCommandMsg}
	}

	if err != nil {
		return Response{Type: TypeError, Message: userMessage(err)}
	}
	return resp
}

// userMessage maps handler errors to the text shown in the chat.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return "Insufficient balance"
	case errors.Is(err, ledger.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, ledger.ErrInvalidAmount):
		return ErrBadAmount.Error()
	default:
		return err.Error()
	}
}

// parseEntryArgs validates the shared /income and /expense argument
// shape: amount, category, optional description.
func parseEntryArgs(command string, parts []string) (cents int64, amount, category, description string, err error) {
	if len(parts) < 3 {
		return 0, "", "", "", &UsageError{Command: command}
	}

	d, perr := util.ParseAmount(parts[1])
	if perr != nil || d.Sign() <= 0 {
		return 0, "", "", "", ErrBadAmount
	}
	if verr := util.ValidateAmount(d); verr != nil {
		return 0, "", "", "", verr
	}

	category = parts[2]
	if verr := util.ValidateCategory(category); verr != nil {
		return 0, "", "", "", verr
	}

	description = strings.Join(parts[3:], " ")
	return util.CentsFromDecimal(d), d.String(), category, description, nil
}

func (p *Processor) addIncome(ctx context.Context, userID uint, parts []string) (Response, error) {
	cents, amount, category, description, err := parseEntryArgs(CmdIncome, parts)
	if err != nil {
		return Response{}, err
	}

	txn, err := p.store.RecordIncome(ctx, userID, cents, category, description)
	if err != nil {
		return Response{}, err
	}

	return Response{
		Type:    TypeSuccess,
		Message: fmt.Sprintf("Added income: $%s (%s)", amount, category),
		Data:    toView(txn),
	}, nil
}

func (p *Processor) addExpense(ctx context.Context, userID uint, parts []string) (Response, error) {
	cents, amount, category, description, err := parseEntryArgs(CmdExpense, parts)
	if err != nil {
		return Response{}, err
	}

	txn, err := p.store.RecordExpense(ctx, userID, cents, category, description)
	if err != nil {
		return Response{}, err
	}

	return Response{
		Type:    TypeSuccess,
		Message: fmt.Sprintf("Added expense: $%s (%s)", amount, category),
		Data:    toView(txn),
	}, nil
}

func (p *Processor) getBalance(ctx context.Context, userID uint) (Response, error) {
	user, err := p.store.FindUserByID(ctx, userID)
	if err != nil {
		return Response{}, err
	}

	return Response{
		Type:    TypeInfo,
		Message: fmt.Sprintf("Current balance: $%s", util.FormatCents(user.BalanceCent)),
	}, nil
}

func (p *Processor) getSummary(ctx context.Context, userID uint) (Response, error) {
	txns, err := p.store.RecentTransactions(ctx, userID, p.summaryLimit)
	if err != nil {
		return Response{}, err
	}

	lines := make([]string, 0, len(txns))
	for i := range txns {
		t := &txns[i]
		sign := "-"
		if t.Type == models.TypeIncome {
			sign = "+"
		}
		description := t.Description
		if description == "" {
			description = "No description"
		}
		lines = append(lines, fmt.Sprintf("%s$%s (%s) - %s",
			sign, util.AmountString(t.AmountCent), t.Category, description))
	}

	return Response{
		Type:    TypeInfo,
		Message: "Recent transactions:\n" + strings.Join(lines, "\n"),
		Data:    toViews(txns),
	}, nil
}
