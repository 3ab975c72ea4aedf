package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/saralbooks/ledger_backend/config"
	"github.com/saralbooks/ledger_backend/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Controller carries the injected persistence handle and the stock mutation
// engine shared by all route handlers.
type Controller struct {
	DB     *gorm.DB
	Engine *models.StockMutationEngine
	Logger *logrus.Logger
}

func NewController(db *gorm.DB, engine *models.StockMutationEngine, logger *logrus.Logger) *Controller {
	return &Controller{DB: db, Engine: engine, Logger: logger}
}

// bindError turns gin binding failures into a field-keyed 400 payload.
func bindError(c *gin.Context, err error) {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// writeError maps ledger errors onto the HTTP boundary: validation 400,
// missing item 404, anything else a generic 500 that leaks no storage detail.
func (ct *Controller) writeError(c *gin.Context, funcName string, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrItemNotFound.Error()})
	case errors.Is(err, models.ErrZeroDelta):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		config.LogError(ct.Logger, "controllers", funcName, "write transaction", map[string]string{
			"correlationId": c.GetString("correlation_id"),
		}, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transaction failed"})
	}
}

func (ct *Controller) writeReadError(c *gin.Context, funcName string, err error) {
	config.LogError(ct.Logger, "controllers", funcName, "read query", map[string]string{
		"correlationId": c.GetString("correlation_id"),
	}, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
}
