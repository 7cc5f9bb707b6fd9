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

// StockAnalyzer produces a full analysis for one instrument code.
type StockAnalyzer interface {
	Analyze(ctx context.Context, symbol string) (*model.AnalysisResult, error)
}

// AnalysisHandler handles analysis HTTP requests
type AnalysisHandler struct {
	analyzer      StockAnalyzer
	defaultSymbol string
	logger        *zap.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analyzer StockAnalyzer, defaultSymbol string, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer:      analyzer,
		defaultSymbol: defaultSymbol,
		logger:        logger,
	}
}

// Analyze handles the per-instrument analysis request
// GET /api/analyze?code=02556
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	code := c.DefaultQuery("code", h.defaultSymbol)

	result, err := h.analyzer.Analyze(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, client.ErrSymbolNotFound) {
			utils.SendError(c, http.StatusNotFound, err.Error())
			return
		}

		h.logger.Error("Failed to analyze instrument",
			zap.Error(err),
			zap.String("code", code))
		utils.SendError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.SendSuccess(c, result)
}
