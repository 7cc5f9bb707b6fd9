package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yourorg/equity-signal-service/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	spotBody = `{
		"data": {
			"total": 3,
			"diff": [
				{"f12": "00001", "f2": 42.1, "f3": 0.5, "f5": 100, "f6": 4210, "f8": 0.1},
				{"f12": "02556", "f2": 10.0, "f3": -3.5, "f5": 100000, "f6": 1030000, "f8": 1.5},
				{"f12": "09999", "f2": "-", "f3": "-", "f5": "-", "f6": "-", "f8": "-"}
			]
		}
	}`

	klineBody = `{
		"data": {
			"code": "02556",
			"klines": [
				"2025-01-06,10.0,10.5,10.6,9.9,1000,10500",
				"garbage row",
				"2025-01-07,10.5,10.2,10.7,10.1,1200,12240"
			]
		}
	}`
)

func newTestClient(t *testing.T, handler http.Handler) (*EastMoneyClient, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.ProviderConfig{
		SpotURL:   srv.URL + "/spot",
		KlineURL:  srv.URL + "/kline",
		Timeout:   5 * time.Second,
		StartDate: "20240101",
		Adjust:    "qfq",
	}
	return NewEastMoneyClient(cfg, zap.NewNop()), srv
}

func TestGetSpot_FindsSymbolRow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/spot", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("fs"), "m:128")
		w.Write([]byte(spotBody))
	})
	c, _ := newTestClient(t, mux)

	snap, err := c.GetSpot(context.Background(), "02556")
	require.NoError(t, err)

	assert.Equal(t, "02556", snap.Symbol)
	assert.Equal(t, 10.0, snap.Price)
	assert.Equal(t, -3.5, snap.ChangePct)
	assert.Equal(t, 100000.0, snap.Volume)
	assert.Equal(t, 1030000.0, snap.Amount)
	assert.Equal(t, 1.5, snap.TurnoverRate)
}

func TestGetSpot_UnknownSymbol(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/spot", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(spotBody))
	})
	c, _ := newTestClient(t, mux)

	_, err := c.GetSpot(context.Background(), "12345")

	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestGetSpot_HaltedInstrument(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/spot", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(spotBody))
	})
	c, _ := newTestClient(t, mux)

	_, err := c.GetSpot(context.Background(), "09999")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSymbolNotFound)
	assert.Contains(t, err.Error(), "no usable quote")
}

func TestGetSpot_EmptyTable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/spot", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": null}`))
	})
	c, _ := newTestClient(t, mux)

	_, err := c.GetSpot(context.Background(), "02556")

	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestGetSpot_ProviderError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/spot", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusInternalServerError)
	})
	c, _ := newTestClient(t, mux)

	_, err := c.GetSpot(context.Background(), "02556")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status code 500")
}

func TestGetDailyKlines_ParsesRowsAndSkipsMalformed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/kline", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "116.02556", q.Get("secid"))
		assert.Equal(t, "101", q.Get("klt"))
		assert.Equal(t, "1", q.Get("fqt")) // qfq
		assert.Equal(t, "20240101", q.Get("beg"))
		w.Write([]byte(klineBody))
	})
	c, _ := newTestClient(t, mux)

	bars, err := c.GetDailyKlines(context.Background(), "02556")
	require.NoError(t, err)
	require.Len(t, bars, 2)

	first := bars[0]
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, 10.0, first.Open)
	assert.Equal(t, 10.5, first.Close)
	assert.Equal(t, 10.6, first.High)
	assert.Equal(t, 9.9, first.Low)
	assert.Equal(t, 1000.0, first.Volume)

	assert.Equal(t, 10.2, bars[1].Close)
}

func TestGetDailyKlines_NoData(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/kline", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": null}`))
	})
	c, _ := newTestClient(t, mux)

	_, err := c.GetDailyKlines(context.Background(), "02556")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no historical data")
}

func TestAdjustToFqt(t *testing.T) {
	assert.Equal(t, "1", adjustToFqt("qfq"))
	assert.Equal(t, "2", adjustToFqt("hfq"))
	assert.Equal(t, "0", adjustToFqt("none"))
}
