package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booksmart-api/internal/audit"
	"github.com/BruksfildServices01/booksmart-api/internal/httperr"
	"github.com/BruksfildServices01/booksmart-api/internal/httpresp"
	"github.com/BruksfildServices01/booksmart-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

type auditLogsResponse struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

// List supports action, entity, from and to (YYYY-MM-DD, inclusive) filters
// with 1-based page and limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, ok := queryInt(c, "page", 1)
	if !ok {
		return
	}
	if page <= 0 {
		page = 1
	}

	limit, ok := queryInt(c, "limit", 50)
	if !ok {
		return
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_from", "from must be YYYY-MM-DD.")
			return
		}
		f.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_to", "to must be YYYY-MM-DD.")
			return
		}
		to = to.Add(24 * time.Hour)
		f.To = &to
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	httpresp.OK(c, auditLogsResponse{
		Page:  page,
		Limit: limit,
		Total: total,
		Logs:  logs,
	})
}
