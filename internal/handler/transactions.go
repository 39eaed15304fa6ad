package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/VrmaRahul007/FinancialAssistantChat/internal/models"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TransactionHandler serves the REST read surface of the ledger. Writes
// only happen through the chat commands.
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

type transactionResp struct {
	ID          uint      `json:"id"`
	Type        string    `json:"type"`
	AmountCent  int64     `json:"amount_cent"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTransactionResp(t *models.Transaction) transactionResp {
	return transactionResp{
		ID:          t.ID,
		Type:        t.Type,
		AmountCent:  t.AmountCent,
		Amount:      util.FormatCents(t.AmountCent),
		Category:    t.Category,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
}

// ListTransactions returns a page of the user's transactions (newest
// first) together with income/expense totals under the same filters.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if size <= 0 || size > 100 {
		size = 20
	}
	offset := (page - 1) * size

	base := h.DB.Model(&models.Transaction{}).Where("user_id = ?", user.ID)

	// optional date range, YYYY-MM-DD
	if startStr := c.Query("start"); startStr != "" {
		if err := util.ValidateDate(startStr); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "Start date must be YYYY-MM-DD")
			return
		}
		start, _ := time.Parse("2006-01-02", startStr)
		base = base.Where("created_at >= ?", start)
	}
	if endStr := c.Query("end"); endStr != "" {
		if err := util.ValidateDate(endStr); err != nil {
			util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "End date must be YYYY-MM-DD")
			return
		}
		end, _ := time.Parse("2006-01-02", endStr)
		// end is inclusive: filter below the next day
		base = base.Where("created_at < ?", end.Add(24*time.Hour))
	}

	if txType := c.Query("type"); txType == models.TypeIncome || txType == models.TypeExpense {
		base = base.Where("type = ?", txType)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to count transactions")
		return
	}

	var txns []models.Transaction
	if err := base.Session(&gorm.Session{}).
		Order("created_at DESC, id DESC").
		Limit(size).
		Offset(offset).
		Find(&txns).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to list transactions")
		return
	}

	items := make([]transactionResp, 0, len(txns))
	for i := range txns {
		items = append(items, toTransactionResp(&txns[i]))
	}

	// totals under the same filters
	type sums struct {
		IncomeCent  int64
		ExpenseCent int64
	}
	var s sums
	if err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(CASE WHEN type = 'income' THEN amount_cent ELSE 0 END), 0) AS income_cent, " +
			"COALESCE(SUM(CASE WHEN type = 'expense' THEN amount_cent ELSE 0 END), 0) AS expense_cent").
		Scan(&s).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to compute totals")
		return
	}

	util.Success(c, util.Response{
		"items": items,
		"total": total,
		"page":  page,
		"size":  size,
		"summary": gin.H{
			"total_income":  util.FormatCents(s.IncomeCent),
			"total_expense": util.FormatCents(s.ExpenseCent),
			"net":           util.FormatCents(s.IncomeCent - s.ExpenseCent),
		},
	})
}
