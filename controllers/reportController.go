package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saralbooks/ledger_backend/models"
	"github.com/saralbooks/ledger_backend/utils"
)

// ReportSummary aggregates sales, purchases and expenses over ?from=YYYY-MM-DD
// &to=YYYY-MM-DD (defaulting to the current month); ?detail=true attaches the
// raw record lists.
func (ct *Controller) ReportSummary(c *gin.Context) {
	var from, to *time.Time

	if v := c.Query("from"); v != "" {
		t, err := time.Parse(utils.DateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, want YYYY-MM-DD"})
			return
		}
		from = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse(utils.DateLayout, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, want YYYY-MM-DD"})
			return
		}
		end := utils.EndOfDay(t)
		to = &end
	}
	includeDetail := c.Query("detail") == "true"

	summary, detail, err := models.Summarize(c.Request.Context(), ct.DB, from, to, includeDetail)
	if err != nil {
		ct.writeReadError(c, "ReportSummary", err)
		return
	}

	if includeDetail {
		c.JSON(http.StatusOK, gin.H{"summary": summary, "detail": detail})
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
