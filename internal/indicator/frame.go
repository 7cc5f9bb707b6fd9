package indicator

import (
	"errors"
	"fmt"
	"time"

	"github.com/yourorg/equity-signal-service/internal/model"

	talib "github.com/markcheno/go-talib"
)

const (
	rsiPeriod        = 6
	bollingerPeriod  = 20
	bollingerStdDevs = 2.0
	macdFastPeriod   = 12
	macdSlowPeriod   = 26
	macdSignalPeriod = 9
)

// MinBars is the shortest assembled series ComputeFrame accepts. It covers
// the MACD warm-up (slow + signal periods) plus the previous-row lookback
// the scorer needs. MA60 is only computed once sixty bars exist (go-talib's
// Sma panics when the period exceeds the series length) and is zero until
// then; it is not consumed by the scorer, so recently listed instruments
// with short histories stay servable.
const MinBars = macdSlowPeriod + macdSignalPeriod

// ErrInsufficientHistory is returned when the assembled series is too short
// for the indicator warm-up windows.
var ErrInsufficientHistory = errors.New("insufficient history for indicator computation")

// AssembleSeries merges the historical daily bars with a synthetic bar built
// from the live snapshot. A provider-reported bar dated today is dropped
// first, so the series never carries two rows for the same calendar date.
// The synthetic bar uses the latest price for all four OHLC fields, trading
// intraday OHLC accuracy for a live close to drive the indicators.
func AssembleSeries(history []model.Bar, snap *model.Snapshot, today time.Time) []model.Bar {
	bars := make([]model.Bar, 0, len(history)+1)
	bars = append(bars, history...)

	if n := len(bars); n > 0 && sameDay(bars[n-1].Date, today) {
		bars = bars[:n-1]
	}

	bars = append(bars, model.Bar{
		Date:   today,
		Open:   snap.Price,
		High:   snap.Price,
		Low:    snap.Price,
		Close:  snap.Price,
		Volume: snap.Volume,
	})

	return bars
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Frame is an assembled series augmented with derived indicator columns,
// all aligned to the bar index. Values inside an indicator's warm-up window
// are zero and must not be consumed; MinBars guarantees the last two rows
// are always past every warm-up the scorer relies on.
type Frame struct {
	Bars []model.Bar

	RSI6 []float64
	MA5  []float64
	MA10 []float64
	MA20 []float64
	MA60 []float64

	MACD       []float64
	MACDSignal []float64
	MACDHist   []float64

	PercentB []float64
}

// Row is one fully-derived frame row.
type Row struct {
	Date   time.Time
	Close  float64
	Volume float64

	RSI6 float64
	MA5  float64
	MA10 float64
	MA20 float64
	MA60 float64

	MACD       float64
	MACDSignal float64
	MACDHist   float64

	PercentB float64
}

// ComputeFrame derives RSI(6), SMA(5/10/20/60), MACD(12,26,9) and Bollinger
// %B(20,2) over the closing prices of the assembled series. All indicator
// math is delegated to go-talib.
func ComputeFrame(bars []model.Bar) (*Frame, error) {
	if len(bars) < MinBars {
		return nil, fmt.Errorf("%w: got %d bars, need at least %d", ErrInsufficientHistory, len(bars), MinBars)
	}

	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}

	f := &Frame{Bars: bars}

	f.RSI6 = talib.Rsi(closes, rsiPeriod)
	f.MA5 = talib.Sma(closes, 5)
	f.MA10 = talib.Sma(closes, 10)
	f.MA20 = talib.Sma(closes, 20)
	if len(closes) >= 60 {
		f.MA60 = talib.Sma(closes, 60)
	} else {
		f.MA60 = make([]float64, len(closes))
	}
	f.MACD, f.MACDSignal, f.MACDHist = talib.Macd(closes, macdFastPeriod, macdSlowPeriod, macdSignalPeriod)

	upper, _, lower := talib.BBands(closes, bollingerPeriod, bollingerStdDevs, bollingerStdDevs, talib.SMA)
	f.PercentB = make([]float64, len(closes))
	for i := range closes {
		if width := upper[i] - lower[i]; width > 0 {
			f.PercentB[i] = (closes[i] - lower[i]) / width
		}
	}

	return f, nil
}

// Len returns the number of rows in the frame.
func (f *Frame) Len() int {
	return len(f.Bars)
}

// Row returns the fully-derived row at index i.
func (f *Frame) Row(i int) Row {
	return Row{
		Date:       f.Bars[i].Date,
		Close:      f.Bars[i].Close,
		Volume:     f.Bars[i].Volume,
		RSI6:       f.RSI6[i],
		MA5:        f.MA5[i],
		MA10:       f.MA10[i],
		MA20:       f.MA20[i],
		MA60:       f.MA60[i],
		MACD:       f.MACD[i],
		MACDSignal: f.MACDSignal[i],
		MACDHist:   f.MACDHist[i],
		PercentB:   f.PercentB[i],
	}
}

// Latest returns the most recent row, the synthetic "today" bar.
func (f *Frame) Latest() Row {
	return f.Row(f.Len() - 1)
}

// Previous returns the second-to-last row, the last completed trading day.
func (f *Frame) Previous() Row {
	return f.Row(f.Len() - 2)
}
