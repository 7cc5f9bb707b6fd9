package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name            string
		ma5, ma10, ma20 float64
		want            Trend
		label           string
		pressure        string
	}{
		{"bullish stack", 10, 9, 8, TrendBullish, "bullish alignment", "low"},
		{"bearish stack", 8, 9, 10, TrendBearish, "bearish alignment", "high"},
		{"mixed stack", 9, 10, 8, TrendSideways, "consolidating", "medium"},
		{"flat stack", 9, 9, 9, TrendSideways, "consolidating", "medium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyTrend(tt.ma5, tt.ma10, tt.ma20)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, got.Label())
			assert.Equal(t, tt.pressure, got.DownsidePressure())
		})
	}
}

func TestClassifyMomentum(t *testing.T) {
	tests := []struct {
		name                      string
		macd, signal, hist, prevH float64
		want                      string
	}{
		{"bearish strengthening", -0.5, -0.3, -0.2, -0.1, "bearish momentum strengthening"},
		{"bullish fading", 0.5, 0.3, 0.2, 0.4, "bullish momentum fading"},
		{"bullish dominant", 0.5, 0.3, 0.2, 0.1, "bullish dominant"},
		{"unclear", 0.1, 0.0, 0.0, 0.0, "momentum unclear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMomentum(tt.macd, tt.signal, tt.hist, tt.prevH))
		})
	}
}

func TestClassifySellingPressure(t *testing.T) {
	tests := []struct {
		name                                 string
		changePct, turnover, volume, prevVol float64
		want                                 string
	}{
		{"panic selling", -3.5, 1.5, 100, 200, "panic selling"},
		{"big drop on thin turnover", -3.5, 0.5, 100, 200, "drift down, no volume"},
		{"big drop on expanding volume", -3.5, 0.5, 300, 200, "normal"},
		{"drift down on shrinking volume", -1.0, 0.5, 100, 200, "drift down, no volume"},
		{"down on rising volume", -1.0, 0.5, 300, 200, "normal"},
		{"up day", 2.0, 3.0, 100, 200, "normal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySellingPressure(tt.changePct, tt.turnover, tt.volume, tt.prevVol))
		})
	}
}

func TestScore_AnalysisRules_ReboundSetup(t *testing.T) {
	// Deep oversell + oversold RSI against a bearish stack: 3 + 2 - 2 = 3.
	score, reasons := Score(AnalysisRules, Inputs{
		VWAPBias: -3.0,
		RSI6:     15,
		Trend:    TrendBearish,
	})

	assert.Equal(t, 3, score)
	assert.Equal(t, []string{"deep intraday oversell (golden pit)", "RSI severely oversold"}, reasons)
	assert.Equal(t, AdviceAggressiveBuy, MapAdvice(score))
	assert.Equal(t, RiskCounterTrend, RiskLevel(TrendBearish))
}

func TestScore_AnalysisRules_NoTriggers(t *testing.T) {
	score, reasons := Score(AnalysisRules, Inputs{
		VWAPBias: 0.5,
		RSI6:     55,
		Trend:    TrendSideways,
	})

	assert.Equal(t, 0, score)
	assert.Empty(t, reasons)
	assert.Equal(t, AdviceAvoid, MapAdvice(score))
	assert.Equal(t, RiskMedium, RiskLevel(TrendSideways))
	assert.Equal(t, "no special signal", JoinReasons(reasons))
}

func TestScore_AnalysisRules_BearishPenaltyHasNoReason(t *testing.T) {
	score, reasons := Score(AnalysisRules, Inputs{
		VWAPBias: -3.0,
		RSI6:     50,
		Trend:    TrendBearish,
	})

	assert.Equal(t, 1, score)
	assert.Equal(t, []string{"deep intraday oversell (golden pit)"}, reasons)
	assert.Equal(t, AdviceWatch, MapAdvice(score))
}

func TestScore_FactorRules_FullResonance(t *testing.T) {
	score, reasons := Score(FactorRules, Inputs{
		VWAPBias: -2.5,
		RSI6:     15,
		PercentB: -0.1,
	})

	assert.Equal(t, 6, score)
	// Reasons must come out in declaration order.
	assert.Equal(t, []string{
		"price well below intraday VWAP",
		"RSI severely oversold",
		"close below lower Bollinger band",
	}, reasons)
	assert.Equal(t, SignalExcellentEntry, MapFactorSignal(score))
}

func TestScore_FactorRules_ThresholdsDifferFromAnalysis(t *testing.T) {
	// -2.2% bias triggers the factor table but not the analysis table.
	in := Inputs{VWAPBias: -2.2, RSI6: 50, PercentB: 0.5}

	factorScore, _ := Score(FactorRules, in)
	analysisScore, _ := Score(AnalysisRules, in)

	assert.Equal(t, 3, factorScore)
	assert.Equal(t, 0, analysisScore)
}

func TestMapAdvice_Boundaries(t *testing.T) {
	assert.Equal(t, AdviceAggressiveBuy, MapAdvice(5))
	assert.Equal(t, AdviceAggressiveBuy, MapAdvice(3))
	assert.Equal(t, AdviceWatch, MapAdvice(2))
	assert.Equal(t, AdviceWatch, MapAdvice(1))
	assert.Equal(t, AdviceAvoid, MapAdvice(0))
	assert.Equal(t, AdviceAvoid, MapAdvice(-2))
}

func TestMapFactorSignal_Boundaries(t *testing.T) {
	assert.Equal(t, SignalExcellentEntry, MapFactorSignal(6))
	assert.Equal(t, SignalExcellentEntry, MapFactorSignal(4))
	assert.Equal(t, SignalWatchRebound, MapFactorSignal(3))
	assert.Equal(t, SignalWatchRebound, MapFactorSignal(2))
	assert.Equal(t, SignalWait, MapFactorSignal(1))
	assert.Equal(t, SignalWait, MapFactorSignal(0))
}

func TestJoinReasons(t *testing.T) {
	assert.Equal(t, "no special signal", JoinReasons(nil))
	assert.Equal(t, "a + b", JoinReasons([]string{"a", "b"}))
}
