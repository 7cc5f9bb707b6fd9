package model

// FactorResult is the realtime entry-factor payload for the fixed instrument
// served by the factor server.
type FactorResult struct {
	Symbol    string   `json:"symbol"`
	Price     float64  `json:"price"`
	ChangePct float64  `json:"change_pct"`
	VWAPBias  float64  `json:"vwap_bias"`
	RSI       float64  `json:"rsi"`
	PercentB  float64  `json:"percent_b"`
	Score     int      `json:"score"`
	Signal    string   `json:"signal"`
	Reasons   []string `json:"reasons"`
}
