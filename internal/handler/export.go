package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/VrmaRahul007/FinancialAssistantChat/internal/models"
	"github.com/VrmaRahul007/FinancialAssistantChat/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler writes the user's full transaction history as CSV or XLSX.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

var exportHeaders = []string{"Type", "Category", "Amount", "Description", "Date"}

func (h *ExportHandler) userTransactions(c *gin.Context, userID uint) ([]models.Transaction, bool) {
	var txns []models.Transaction
	if err := h.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&txns).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to load transactions")
		return nil, false
	}
	return txns, true
}

// ExportCSV streams the transaction history as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		return
	}

	txns, ok := h.userTransactions(c, user.ID)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for i := range txns {
		t := &txns[i]
		writer.Write([]string{
			t.Type,
			t.Category,
			util.FormatCents(t.AmountCent),
			t.Description,
			t.CreatedAt.Format("2006-01-02"),
		})
	}
}

// ExportXLSX writes the transaction history as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		return
	}

	txns, ok := h.userTransactions(c, user.ID)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Transactions"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to create sheet")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx := range txns {
		t := &txns[idx]
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), t.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), t.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), util.FormatCents(t.AmountCent))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), t.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), t.CreatedAt.Format("2006-01-02"))
	}

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 15)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "E", 12)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "Failed to export")
	}
}
