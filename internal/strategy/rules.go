package strategy

// Inputs carries the per-request values the rule tables inspect.
type Inputs struct {
	VWAPBias float64
	RSI6     float64
	PercentB float64
	Trend    Trend
}

// Rule is one entry in an ordered scoring table: a predicate, a score delta
// and an optional reason string appended when the rule fires.
type Rule struct {
	Name   string
	Delta  int
	Reason string
	Match  func(Inputs) bool
}

// AnalysisRules is the scoring table behind the per-code analysis endpoint,
// evaluated in declaration order. The counter-trend penalty carries no
// reason string; it surfaces through the risk level instead.
var AnalysisRules = []Rule{
	{
		Name:   "vwap_oversell",
		Delta:  3,
		Reason: "deep intraday oversell (golden pit)",
		Match:  func(in Inputs) bool { return in.VWAPBias < -2.5 },
	},
	{
		Name:   "rsi_oversold",
		Delta:  2,
		Reason: "RSI severely oversold",
		Match:  func(in Inputs) bool { return in.RSI6 < 20 },
	},
	{
		Name:  "counter_trend",
		Delta: -2,
		Match: func(in Inputs) bool { return in.Trend == TrendBearish },
	},
}

// FactorRules is the scoring table behind the fixed-instrument factor
// endpoint. Same underlying indicators, looser VWAP threshold, and an extra
// Bollinger resonance factor.
var FactorRules = []Rule{
	{
		Name:   "vwap_discount",
		Delta:  3,
		Reason: "price well below intraday VWAP",
		Match:  func(in Inputs) bool { return in.VWAPBias < -2.0 },
	},
	{
		Name:   "rsi_oversold",
		Delta:  2,
		Reason: "RSI severely oversold",
		Match:  func(in Inputs) bool { return in.RSI6 < 20 },
	},
	{
		Name:   "below_lower_band",
		Delta:  1,
		Reason: "close below lower Bollinger band",
		Match:  func(in Inputs) bool { return in.PercentB < 0 },
	},
}

// Score evaluates a rule table in order, accumulating the score and the
// reasons of every rule that fired.
func Score(rules []Rule, in Inputs) (int, []string) {
	score := 0
	var reasons []string

	for _, r := range rules {
		if !r.Match(in) {
			continue
		}
		score += r.Delta
		if r.Reason != "" {
			reasons = append(reasons, r.Reason)
		}
	}

	return score, reasons
}
