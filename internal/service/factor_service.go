package service

import (
	"context"
	"time"

	"github.com/yourorg/equity-signal-service/internal/indicator"
	"github.com/yourorg/equity-signal-service/internal/model"
	"github.com/yourorg/equity-signal-service/internal/observability"
	"github.com/yourorg/equity-signal-service/internal/strategy"

	"go.uber.org/zap"
)

// FactorService runs the realtime entry-factor pipeline for one fixed
// instrument. It shares the indicator engine with AnalysisService but
// applies the resonance rule table and emits a flat factor payload.
type FactorService struct {
	provider MarketDataProvider
	symbol   string
	metrics  *observability.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewFactorService creates a new factor service for the given instrument.
func NewFactorService(provider MarketDataProvider, symbol string, metrics *observability.Metrics, logger *zap.Logger) *FactorService {
	return &FactorService{
		provider: provider,
		symbol:   symbol,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Symbol returns the instrument this service is pinned to.
func (s *FactorService) Symbol() string {
	return s.symbol
}

// Compute evaluates the entry factors for the configured instrument.
func (s *FactorService) Compute(ctx context.Context) (*model.FactorResult, error) {
	s.metrics.RecordProviderRequest("spot")
	snap, err := s.provider.GetSpot(ctx, s.symbol)
	if err != nil {
		s.metrics.RecordProviderError("spot")
		return nil, err
	}

	bias := snap.VWAPBias()

	s.metrics.RecordProviderRequest("kline")
	history, err := s.provider.GetDailyKlines(ctx, s.symbol)
	if err != nil {
		s.metrics.RecordProviderError("kline")
		return nil, err
	}

	series := indicator.AssembleSeries(history, snap, s.now())
	frame, err := indicator.ComputeFrame(series)
	if err != nil {
		return nil, err
	}

	latest := frame.Latest()

	score, reasons := strategy.Score(strategy.FactorRules, strategy.Inputs{
		VWAPBias: bias,
		RSI6:     latest.RSI6,
		PercentB: latest.PercentB,
	})
	signal := strategy.MapFactorSignal(score)

	s.metrics.RecordAdvice(signal)
	s.logger.Debug("Factors computed",
		zap.String("symbol", s.symbol),
		zap.Int("score", score),
		zap.String("signal", signal))

	return &model.FactorResult{
		Symbol:    snap.Symbol,
		Price:     snap.Price,
		ChangePct: roundTo(snap.ChangePct, 2),
		VWAPBias:  roundTo(bias, 2),
		RSI:       roundTo(latest.RSI6, 2),
		PercentB:  roundTo(latest.PercentB, 4),
		Score:     score,
		Signal:    signal,
		Reasons:   reasons,
	}, nil
}
