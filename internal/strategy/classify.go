package strategy

// Trend is the moving-average alignment classification.
type Trend int

const (
	TrendSideways Trend = iota
	TrendBullish
	TrendBearish
)

// ClassifyTrend classifies the moving-average stack. A full bearish stack
// (MA5 < MA10 < MA20) marks an established downtrend; a full bullish stack
// marks an uptrend; anything else is consolidation.
func ClassifyTrend(ma5, ma10, ma20 float64) Trend {
	switch {
	case ma5 < ma10 && ma10 < ma20:
		return TrendBearish
	case ma5 > ma10 && ma10 > ma20:
		return TrendBullish
	default:
		return TrendSideways
	}
}

// Label returns the user-facing trend description.
func (t Trend) Label() string {
	switch t {
	case TrendBearish:
		return "bearish alignment"
	case TrendBullish:
		return "bullish alignment"
	default:
		return "consolidating"
	}
}

// DownsidePressure returns the qualitative downside-risk label implied by
// the trend alignment.
func (t Trend) DownsidePressure() string {
	switch t {
	case TrendBearish:
		return "high"
	case TrendBullish:
		return "low"
	default:
		return "medium"
	}
}

// ClassifyMomentum labels the MACD state. The histogram sign carries the
// direction; a shrinking positive histogram versus the prior bar signals
// fading bullish momentum.
func ClassifyMomentum(macd, signal, hist, prevHist float64) string {
	switch {
	case hist < 0 && macd < signal:
		return "bearish momentum strengthening"
	case hist > 0 && hist < prevHist:
		return "bullish momentum fading"
	case hist > 0:
		return "bullish dominant"
	default:
		return "momentum unclear"
	}
}

// ClassifySellingPressure estimates selling pressure from volume/price
// divergence, a stand-in for short-sale data the provider does not expose.
func ClassifySellingPressure(changePct, turnoverRate, volume, prevVolume float64) string {
	switch {
	case changePct < -3 && turnoverRate > 1:
		return "panic selling"
	case changePct < 0 && volume < prevVolume:
		return "drift down, no volume"
	default:
		return "normal"
	}
}
