package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/yourorg/equity-signal-service/internal/client"
	"github.com/yourorg/equity-signal-service/internal/model"
	"github.com/yourorg/equity-signal-service/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FactorComputer produces realtime entry factors for the fixed instrument.
type FactorComputer interface {
	Compute(ctx context.Context) (*model.FactorResult, error)
	Symbol() string
}

// FactorHandler handles factor HTTP requests
type FactorHandler struct {
	factors FactorComputer
	logger  *zap.Logger
}

// NewFactorHandler creates a new factor handler
func NewFactorHandler(factors FactorComputer, logger *zap.Logger) *FactorHandler {
	return &FactorHandler{
		factors: factors,
		logger:  logger,
	}
}

// Status reports which instrument this server watches
// GET /
func (h *FactorHandler) Status(c *gin.Context) {
	utils.SendSuccess(c, gin.H{
		"service": "realtime-factor",
		"symbol":  h.factors.Symbol(),
	})
}

// GetFactor handles the realtime factor request for the fixed instrument
// GET /api/factor
func (h *FactorHandler) GetFactor(c *gin.Context) {
	result, err := h.factors.Compute(c.Request.Context())
	if err != nil {
		if errors.Is(err, client.ErrSymbolNotFound) {
			utils.SendError(c, http.StatusNotFound, err.Error())
			return
		}

		h.logger.Error("Failed to compute factors",
			zap.Error(err),
			zap.String("symbol", h.factors.Symbol()))
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SendSuccess(c, result)
}
