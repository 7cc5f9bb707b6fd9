package model

// AnalysisResult is the full analysis payload for one instrument. It is
// built once per request and returned as-is in the response envelope.
type AnalysisResult struct {
	Symbol     string           `json:"symbol"`
	Price      float64          `json:"price"`
	ChangePct  float64          `json:"change_pct"`
	VWAPBias   float64          `json:"vwap_bias"`
	Indicators IndicatorSummary `json:"indicators"`
	Analysis   MarketAssessment `json:"analysis"`
	Strategy   StrategyAdvice   `json:"strategy"`
}

// IndicatorSummary carries the latest-row indicator values surfaced to clients.
type IndicatorSummary struct {
	RSI     float64 `json:"rsi"`
	MA20    float64 `json:"ma20"`
	MACDBar float64 `json:"macd_bar"`
}

// MarketAssessment holds the qualitative classification labels.
type MarketAssessment struct {
	Trend        string `json:"trend"`
	Momentum     string `json:"momentum"`
	Pressure     string `json:"pressure"`
	DownsideRisk string `json:"downside_risk"`
}

// StrategyAdvice is the scored recommendation.
type StrategyAdvice struct {
	Advice  string `json:"advice"`
	Risk    string `json:"risk"`
	Reasons string `json:"reasons"`
}
