package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saralbooks/ledger_backend/models"
)

func (ct *Controller) ListExpenses(c *gin.Context) {
	expenses, err := models.GetExpenseRecordAll(c.Request.Context(), ct.DB)
	if err != nil {
		ct.writeReadError(c, "ListExpenses", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

func (ct *Controller) CreateExpense(c *gin.Context) {
	var input models.NewExpense
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	expense, err := models.CreateExpense(c.Request.Context(), ct.DB, &input)
	if err != nil {
		ct.writeError(c, "CreateExpense", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": expense.ID, "expense": expense})
}
