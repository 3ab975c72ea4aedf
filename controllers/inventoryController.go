package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saralbooks/ledger_backend/models"
)

func (ct *Controller) ListInventoryItems(c *gin.Context) {
	items, err := models.GetInventoryItemAll(c.Request.Context(), ct.DB)
	if err != nil {
		ct.writeReadError(c, "ListInventoryItems", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (ct *Controller) CreateInventoryItem(c *gin.Context) {
	var input models.NewInventoryItem
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	item, err := models.CreateInventoryItem(c.Request.Context(), ct.DB, &input)
	if err != nil {
		ct.writeError(c, "CreateInventoryItem", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": item.ID, "item": item})
}

func (ct *Controller) GetInventoryItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	item, err := models.GetInventoryItem(c.Request.Context(), ct.DB, id)
	if err != nil {
		ct.writeError(c, "GetInventoryItem", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

func (ct *Controller) DeleteInventoryItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	item, err := models.DeleteInventoryItem(c.Request.Context(), ct.DB, id)
	if err != nil {
		ct.writeError(c, "DeleteInventoryItem", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": item.ID})
}
