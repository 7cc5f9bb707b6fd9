package model

import (
	"time"
)

// Snapshot represents the same-day quote for a single instrument as reported
// by the provider's full-market spot table. It is fetched fresh per request
// and never persisted.
type Snapshot struct {
	Symbol       string  `json:"symbol"`
	Price        float64 `json:"price"`
	ChangePct    float64 `json:"change_pct"`
	Volume       float64 `json:"volume"`
	Amount       float64 `json:"amount"`
	TurnoverRate float64 `json:"turnover_rate"`
}

// VWAP returns the session volume-weighted average price. Before anything has
// traded the volume is zero, so the latest price is used instead of dividing
// by zero (the bias then reports as zero).
func (s *Snapshot) VWAP() float64 {
	if s.Volume > 0 {
		return s.Amount / s.Volume
	}
	return s.Price
}

// VWAPBias returns the percentage deviation of the current price from VWAP.
func (s *Snapshot) VWAPBias() float64 {
	vwap := s.VWAP()
	if vwap == 0 {
		return 0
	}
	return (s.Price - vwap) / vwap * 100
}

// Bar is one daily OHLCV row of an instrument's historical series.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}
