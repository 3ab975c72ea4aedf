package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saralbooks/ledger_backend/models"
)

func (ct *Controller) ListSales(c *gin.Context) {
	sales, err := models.GetSaleRecordAll(c.Request.Context(), ct.DB)
	if err != nil {
		ct.writeReadError(c, "ListSales", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sales": sales})
}

func (ct *Controller) RecordSale(c *gin.Context) {
	var input models.NewSale
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	sale, err := models.RecordSale(c.Request.Context(), ct.Engine, &input)
	if err != nil {
		ct.writeError(c, "RecordSale", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":             sale.ID,
		"invoice_number": sale.InvoiceNumber,
		"grand_total":    sale.GrandTotal,
	})
}
