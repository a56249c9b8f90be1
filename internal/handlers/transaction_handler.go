package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/export"
	"spendwise/internal/middleware"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
)

// TransactionHandler serves one ledger. The income and expense routes each
// get their own instance.
type TransactionHandler struct {
	service      services.TransactionServicer
	auditService services.AuditServicer
	now          func() time.Time
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(service services.TransactionServicer, auditService services.AuditServicer) *TransactionHandler {
	return &TransactionHandler{service: service, auditService: auditService, now: time.Now}
}

// RecordRequest represents the add and update payload. Income may name its
// label either "source" or "category".
type RecordRequest struct {
	Icon     string          `json:"icon" binding:"max=32"`
	Source   string          `json:"source" binding:"max=100"`
	Category string          `json:"category" binding:"max=100"`
	Amount   decimal.Decimal `json:"amount" swaggertype:"number" binding:"required,gt=0"`
	Date     string          `json:"date" binding:"required,record_date" example:"2024-06-15"`
}

// ListQuery holds the record list filters.
type ListQuery struct {
	FromDate string `form:"from_date" binding:"omitempty,record_date"`
	ToDate   string `form:"to_date" binding:"omitempty,record_date"`
	Category string `form:"category" binding:"max=100"`
	pagination.PageRequest
}

func (h *TransactionHandler) label() string {
	if h.service.Kind() == models.TransactionKindIncome {
		return "Income"
	}
	return "Expense"
}

func (h *TransactionHandler) fields(req RecordRequest) (services.RecordFields, error) {
	date, err := parseDate("date", req.Date)
	if err != nil {
		return services.RecordFields{}, err
	}
	category := req.Category
	if h.service.Kind() == models.TransactionKindIncome && strings.TrimSpace(req.Source) != "" {
		category = req.Source
	}
	return services.RecordFields{
		Icon:     req.Icon,
		Category: category,
		Amount:   req.Amount,
		Date:     date,
	}, nil
}

func recordChanges(record *models.Transaction) map[string]interface{} {
	return map[string]interface{}{
		"icon":     record.Icon,
		"category": record.Category,
		"amount":   record.Amount.StringFixed(2),
		"date":     record.Date.Format(models.DateLayout),
	}
}

// Add creates a record for the authenticated user
// @Summary     Add a record
// @Description Add an income (source) or expense (category) record
// @Tags        records
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RecordRequest true "Record fields"
// @Success     201 {object} models.Transaction "Created record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /income/add [post]
// @Router      /expense/add [post]
func (h *TransactionHandler) Add(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}
	fields, err := h.fields(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.service.Add(c.Request.Context(), userID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	kind := h.service.Kind()
	h.auditService.Log(c.Request.Context(), userID, services.RecordAction("CREATE", kind), string(kind), record.ID, c.ClientIP(), recordChanges(record))

	c.JSON(http.StatusCreated, record)
}

// List returns the authenticated user's records, newest first
// @Summary     List records
// @Description Get the user's records ordered by date descending
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Param       from_date query string false "Earliest date (YYYY-MM-DD)"
// @Param       to_date   query string false "Latest date (YYYY-MM-DD)"
// @Param       category  query string false "Exact category or source"
// @Param       page      query int    false "Page number"
// @Param       page_size query int    false "Page size"
// @Success     200 {array}  models.Transaction "Records"
// @Failure     400 {object} ErrorResponse "Invalid filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /income/get [get]
// @Router      /expense/get [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, bindingError(err))
		return
	}
	query.Defaults()

	filter := services.RecordFilter{
		Category: strings.TrimSpace(query.Category),
		Limit:    query.Limit(),
		Offset:   query.Offset(),
	}
	if filter.StartDate, err = parseOptionalDate("from_date", query.FromDate); err != nil {
		respondWithError(c, err)
		return
	}
	if filter.EndDate, err = parseOptionalDate("to_date", query.ToDate); err != nil {
		respondWithError(c, err)
		return
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "from_date must not be after to_date"))
		return
	}

	records, err := h.service.List(c.Request.Context(), userID, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// Breakdown returns the user's totals per category computed by the database
// @Summary     Totals per category
// @Description Sum and count of the user's records per category, largest total first
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array}  services.CategoryTotal "Category totals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /income/breakdown [get]
// @Router      /expense/breakdown [get]
func (h *TransactionHandler) Breakdown(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	totals, err := h.service.Breakdown(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, totals)
}

// Update replaces the fields of a record the user owns
// @Summary     Update a record
// @Description Update all fields of a record
// @Tags        records
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string        true "Record ID"
// @Param       request body RecordRequest true "Record fields"
// @Success     200 {object} models.Transaction "Updated record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Record belongs to another user"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Router      /income/{id} [put]
// @Router      /expense/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindingError(err))
		return
	}
	fields, err := h.fields(req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	record, err := h.service.Update(c.Request.Context(), userID, id, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	kind := h.service.Kind()
	h.auditService.Log(c.Request.Context(), userID, services.RecordAction("UPDATE", kind), string(kind), id, c.ClientIP(), recordChanges(record))

	c.JSON(http.StatusOK, record)
}

// Delete removes a record the user owns
// @Summary     Delete a record
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Record ID"
// @Success     200 {object} MessageResponse "Record deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     403 {object} ErrorResponse "Record belongs to another user"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Router      /income/{id} [delete]
// @Router      /expense/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	kind := h.service.Kind()
	h.auditService.Log(c.Request.Context(), userID, services.RecordAction("DELETE", kind), string(kind), id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: h.label() + " deleted successfully"})
}

// DownloadExcel exports every record of the user as an xlsx workbook
// @Summary     Download records as Excel
// @Tags        records
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security    BearerAuth
// @Success     200 {file} file "Workbook"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /income/downloadexcel [get]
// @Router      /expense/downloadexcel [get]
func (h *TransactionHandler) DownloadExcel(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	records, err := h.service.List(c.Request.Context(), userID, services.RecordFilter{})
	if err != nil {
		respondWithError(c, err)
		return
	}

	kind := h.service.Kind()
	buf, err := export.Workbook(kind, records)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	attach(c, export.FileName(kind, "xlsx"), export.ExcelContentType, buf.Bytes())
}

// DownloadPDF exports every record of the user as a PDF statement
// @Summary     Download records as PDF
// @Tags        records
// @Produce     application/pdf
// @Security    BearerAuth
// @Success     200 {file} file "Statement"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /income/downloadpdf [get]
// @Router      /expense/downloadpdf [get]
func (h *TransactionHandler) DownloadPDF(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	records, err := h.service.List(c.Request.Context(), userID, services.RecordFilter{})
	if err != nil {
		respondWithError(c, err)
		return
	}

	kind := h.service.Kind()
	buf, err := export.Statement(kind, c.GetString(middleware.EmailKey), records, h.now())
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	attach(c, export.FileName(kind, "pdf"), export.PDFContentType, buf.Bytes())
}

func attach(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}
