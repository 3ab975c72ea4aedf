package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saralbooks/ledger_backend/models"
)

func (ct *Controller) ListPurchases(c *gin.Context) {
	purchases, err := models.GetPurchaseRecordAll(c.Request.Context(), ct.DB)
	if err != nil {
		ct.writeReadError(c, "ListPurchases", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"purchases": purchases})
}

func (ct *Controller) RecordPurchase(c *gin.Context) {
	var input models.NewPurchase
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	purchase, err := models.RecordPurchase(c.Request.Context(), ct.Engine, &input)
	if err != nil {
		ct.writeError(c, "RecordPurchase", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": purchase.ID, "purchase": purchase})
}
