package service

import (
	"context"
	"math"
	"time"

	"github.com/yourorg/equity-signal-service/internal/indicator"
	"github.com/yourorg/equity-signal-service/internal/model"
	"github.com/yourorg/equity-signal-service/internal/observability"
	"github.com/yourorg/equity-signal-service/internal/strategy"

	"go.uber.org/zap"
)

// MarketDataProvider supplies the spot snapshot and the daily history for
// one instrument.
type MarketDataProvider interface {
	GetSpot(ctx context.Context, symbol string) (*model.Snapshot, error)
	GetDailyKlines(ctx context.Context, symbol string) ([]model.Bar, error)
}

// AnalysisService runs the full per-code analysis pipeline: snapshot fetch,
// historical merge, indicator derivation and rule-based scoring. Every call
// recomputes from scratch; nothing is cached between requests.
type AnalysisService struct {
	provider MarketDataProvider
	metrics  *observability.Metrics
	logger   *zap.Logger
	now      func() time.Time
}

// NewAnalysisService creates a new analysis service.
func NewAnalysisService(provider MarketDataProvider, metrics *observability.Metrics, logger *zap.Logger) *AnalysisService {
	return &AnalysisService{
		provider: provider,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// Analyze computes the analysis result for one instrument code.
func (s *AnalysisService) Analyze(ctx context.Context, symbol string) (*model.AnalysisResult, error) {
	s.metrics.RecordProviderRequest("spot")
	snap, err := s.provider.GetSpot(ctx, symbol)
	if err != nil {
		s.metrics.RecordProviderError("spot")
		return nil, err
	}

	bias := snap.VWAPBias()

	s.metrics.RecordProviderRequest("kline")
	history, err := s.provider.GetDailyKlines(ctx, symbol)
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
	prev := frame.Previous()

	trend := strategy.ClassifyTrend(latest.MA5, latest.MA10, latest.MA20)
	momentum := strategy.ClassifyMomentum(latest.MACD, latest.MACDSignal, latest.MACDHist, prev.MACDHist)
	pressure := strategy.ClassifySellingPressure(snap.ChangePct, snap.TurnoverRate, latest.Volume, prev.Volume)

	score, reasons := strategy.Score(strategy.AnalysisRules, strategy.Inputs{
		VWAPBias: bias,
		RSI6:     latest.RSI6,
		PercentB: latest.PercentB,
		Trend:    trend,
	})
	advice := strategy.MapAdvice(score)

	s.metrics.RecordAdvice(advice)
	s.logger.Debug("Analysis computed",
		zap.String("symbol", symbol),
		zap.Int("score", score),
		zap.String("advice", advice))

	return &model.AnalysisResult{
		Symbol:    snap.Symbol,
		Price:     snap.Price,
		ChangePct: roundTo(snap.ChangePct, 2),
		VWAPBias:  roundTo(bias, 2),
		Indicators: model.IndicatorSummary{
			RSI:     roundTo(latest.RSI6, 2),
			MA20:    roundTo(latest.MA20, 3),
			MACDBar: roundTo(latest.MACDHist, 4),
		},
		Analysis: model.MarketAssessment{
			Trend:        trend.Label(),
			Momentum:     momentum,
			Pressure:     pressure,
			DownsideRisk: trend.DownsidePressure(),
		},
		Strategy: model.StrategyAdvice{
			Advice:  advice,
			Risk:    strategy.RiskLevel(trend),
			Reasons: strategy.JoinReasons(reasons),
		},
	}, nil
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}
