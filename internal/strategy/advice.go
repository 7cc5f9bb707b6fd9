package strategy

import "strings"

// Advice labels for the per-code analysis endpoint.
const (
	AdviceAggressiveBuy = "aggressive buy (rebound bet)"
	AdviceWatch         = "watch closely"
	AdviceAvoid         = "avoid/stay out"

	RiskMedium       = "medium"
	RiskCounterTrend = "high (counter-trend)"
)

// Signal labels for the fixed-instrument factor endpoint.
const (
	SignalExcellentEntry = "excellent entry (resonance)"
	SignalWatchRebound   = "watch for rebound"
	SignalWait           = "wait/consolidating"
)

// noSignalReasons is reported when no scoring rule fired.
const noSignalReasons = "no special signal"

// MapAdvice maps an analysis score to the discrete advice label.
func MapAdvice(score int) string {
	switch {
	case score >= 3:
		return AdviceAggressiveBuy
	case score >= 1:
		return AdviceWatch
	default:
		return AdviceAvoid
	}
}

// RiskLevel returns the position risk implied by the trend: buying into a
// bearish stack is catching a falling knife.
func RiskLevel(t Trend) string {
	if t == TrendBearish {
		return RiskCounterTrend
	}
	return RiskMedium
}

// MapFactorSignal maps a factor score to the discrete entry signal.
func MapFactorSignal(score int) string {
	switch {
	case score >= 4:
		return SignalExcellentEntry
	case score >= 2:
		return SignalWatchRebound
	default:
		return SignalWait
	}
}

// JoinReasons renders fired rule reasons as a single display string.
func JoinReasons(reasons []string) string {
	if len(reasons) == 0 {
		return noSignalReasons
	}
	return strings.Join(reasons, " + ")
}
