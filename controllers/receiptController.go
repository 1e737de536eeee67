package controllers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ims-backend/config"
	"ims-backend/models"
	"ims-backend/services"
)

type reconcileRequest struct {
	SourceName  string              `json:"source_name" binding:"required"`
	ManualItems []models.ParsedItem `json:"manual_items"`
	ReceiptType models.ReceiptType  `json:"receipt_type"`
}

// ReconcileReceipt runs the reconciliation workflow for one receipt, either
// from an uploaded document path or from manually entered items. The response
// is always the structured report; per-item failures do not turn into HTTP
// errors.
func ReconcileReceipt(c *gin.Context) {
	var req reconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch req.ReceiptType {
	case "", models.ReceiptTypePurchase, models.ReceiptTypeSales:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receipt type"})
		return
	}

	workflow := services.NewWorkflow(config.DB, config.GetLogger())
	result := workflow.Run(req.SourceName, req.ManualItems, req.ReceiptType)

	c.JSON(http.StatusOK, result)
}

// GetReceiptHistory lists recent receipts, newest first.
func GetReceiptHistory(c *gin.Context) {
	limit := config.HistoryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	workflow := services.NewWorkflow(config.DB, config.GetLogger())
	receipts, err := workflow.History(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, receipts)
}

// GetReceiptDetails returns one receipt with its items and audit trail.
func GetReceiptDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receipt id"})
		return
	}

	workflow := services.NewWorkflow(config.DB, config.GetLogger())
	details, err := workflow.Details(id)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, details)
}
