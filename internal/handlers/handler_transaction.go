package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/fintrackr/finance_tracker_app/internal/core/domain"
	portssvc "github.com/fintrackr/finance_tracker_app/internal/core/ports/services"
	"github.com/fintrackr/finance_tracker_app/internal/dto"
	"github.com/fintrackr/finance_tracker_app/internal/middleware"
	"github.com/fintrackr/finance_tracker_app/internal/utils/pagination"
	"github.com/fintrackr/finance_tracker_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	defaultPageSize    int
	maxPageSize        int
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade, cfg *config.Config) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		defaultPageSize:    cfg.DefaultPageSize,
		maxPageSize:        cfg.MaxPageSize,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, cfg *config.Config) {
	h := newTransactionHandler(transactionService, cfg)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/search", h.searchTransactions)
		transactions.GET("/summary", h.getTransactionSummary)
		transactions.GET("/:transactionID", h.getTransactionByID)
	}
}

// createTransaction godoc
// @Summary Record a new transaction
// @Description Validates and persists a single income or expense record
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdTxn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", createdTxn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(createdTxn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves one page of transactions ordered by date descending, with optional filters and the total match count
// @Tags transactions
// @Produce  json
// @Param   offset query int false "Number of records to skip" default(0)
// @Param   limit query int false "Page size" default(10)
// @Param   type query string false "Filter by type (income or expense)"
// @Param   category query string false "Filter by category substring"
// @Param   description query string false "Filter by description substring"
// @Param   amount query number false "Filter by exact amount"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	h.listWithDefaults(c, h.defaultPageSize)
}

// searchTransactions godoc
// @Summary Search transactions
// @Description Retrieves all transactions matching the AND-combined filter set, in list order; accepts the same optional pagination window as the list endpoint
// @Tags transactions
// @Produce  json
// @Param   type query string false "Filter by type (income or expense)"
// @Param   category query string false "Filter by category substring"
// @Param   description query string false "Filter by description substring"
// @Param   amount query number false "Filter by exact amount"
// @Param   offset query int false "Number of records to skip"
// @Param   limit query int false "Page size (all matches when absent)"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to search transactions"
// @Router /transactions/search [get]
func (h *transactionHandler) searchTransactions(c *gin.Context) {
	// Search is unpaginated unless the client asks for a window.
	h.listWithDefaults(c, 0)
}

// listWithDefaults is the single code path behind both list and search; they
// differ only in the default page size.
func (h *transactionHandler) listWithDefaults(c *gin.Context, defaultLimit int) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	pageParams, err := pagination.ParseParams(c.Query("offset"), c.Query("limit"), defaultLimit, h.maxPageSize)
	if err != nil {
		logger.Warn("Invalid pagination parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := parseFilterParams(c)
	if err != nil {
		logger.Warn("Invalid filter parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := dto.ListTransactionsParams{
		Type:        string(filter.Type),
		Category:    filter.Category,
		Description: filter.Description,
		Amount:      filter.Amount,
		Offset:      pageParams.Offset,
		Limit:       pageParams.Limit,
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	logger.Info("Transactions listed successfully", slog.Int("count", len(resp.Items)), slog.Int64("total", resp.Total))
	c.JSON(http.StatusOK, resp)
}

// getTransactionSummary godoc
// @Summary Summarize transactions
// @Description Aggregates all transactions matching the filter set into total income, total expenses and balance
// @Tags transactions
// @Produce  json
// @Param   type query string false "Filter by type (income or expense)"
// @Param   category query string false "Filter by category substring"
// @Param   description query string false "Filter by description substring"
// @Param   amount query number false "Filter by exact amount"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to summarize transactions"
// @Router /transactions/summary [get]
func (h *transactionHandler) getTransactionSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	filter, err := parseFilterParams(c)
	if err != nil {
		logger.Warn("Invalid filter parameters for summary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.transactionService.SummarizeTransactions(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to summarize transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to summarize transactions"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getTransactionByID godoc
// @Summary Get a transaction by ID
// @Description Retrieves a single transaction by its identifier
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to retrieve transaction"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransactionByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found", slog.String("transaction_id", transactionID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve transaction"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// parseFilterParams reads the AND-combined filter set off the query string.
// Filter values are strings on the wire; amount must parse as a number.
func parseFilterParams(c *gin.Context) (domain.TransactionFilter, error) {
	filter := domain.TransactionFilter{
		Type:        domain.TransactionType(c.Query("type")),
		Category:    c.Query("category"),
		Description: c.Query("description"),
	}

	if amountStr := c.Query("amount"); amountStr != "" {
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return domain.TransactionFilter{}, fmt.Errorf("%w: amount must be a number", apperrors.ErrInvalidQuery)
		}
		filter.Amount = &amount
	}

	return filter, nil
}
