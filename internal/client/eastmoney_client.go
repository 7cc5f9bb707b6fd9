package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yourorg/equity-signal-service/internal/config"
	"github.com/yourorg/equity-signal-service/internal/model"

	"go.uber.org/zap"
)

// ErrSymbolNotFound is returned when the requested code is absent from the
// provider's full-market spot table.
var ErrSymbolNotFound = errors.New("symbol not found or invalid code (use the 5-digit code, e.g. 02556)")

const (
	// hkMarketFilter selects the Hong Kong equity boards in the spot table.
	hkMarketFilter = "m:128+t:3,m:128+t:4,m:128+t:5,m:128+t:6"
	// hkSecIDPrefix is the market prefix the kline endpoint expects.
	hkSecIDPrefix = "116."
	// spotPageSize is large enough to return the whole board in one page.
	spotPageSize = "9000"

	dailyKlineType = "101"
	klineEndDate   = "20500101"
)

// EastMoneyClient handles communication with the East Money quote API.
type EastMoneyClient struct {
	spotURL    string
	klineURL   string
	startDate  string
	fqt        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewEastMoneyClient creates a new East Money API client.
func NewEastMoneyClient(cfg config.ProviderConfig, logger *zap.Logger) *EastMoneyClient {
	return &EastMoneyClient{
		spotURL:   cfg.SpotURL,
		klineURL:  cfg.KlineURL,
		startDate: cfg.StartDate,
		fqt:       adjustToFqt(cfg.Adjust),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// adjustToFqt maps the configured adjustment mode to the provider's fqt flag.
func adjustToFqt(adjust string) string {
	switch adjust {
	case "qfq":
		return "1"
	case "hfq":
		return "2"
	default:
		return "0"
	}
}

// GetSpot fetches the full-market spot table and returns the row for the
// given symbol. Returns ErrSymbolNotFound when the code is not listed.
func (c *EastMoneyClient) GetSpot(ctx context.Context, symbol string) (*model.Snapshot, error) {
	params := url.Values{}
	params.Add("pn", "1")
	params.Add("pz", spotPageSize)
	params.Add("po", "1")
	params.Add("np", "1")
	params.Add("fltt", "2")
	params.Add("invt", "2")
	params.Add("fs", hkMarketFilter)
	params.Add("fields", "f2,f3,f5,f6,f8,f12")

	reqURL := c.spotURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to fetch spot table", zap.Error(err), zap.String("symbol", symbol))
		return nil, fmt.Errorf("failed to fetch spot table: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.logger.Error("Provider spot error response",
			zap.Int("statusCode", resp.StatusCode),
			zap.String("response", string(bodyBytes)))
		return nil, fmt.Errorf("provider returned status code %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var payload struct {
		Data *struct {
			Total int              `json:"total"`
			Diff  []map[string]any `json:"diff"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode spot table", zap.Error(err))
		return nil, fmt.Errorf("failed to decode spot table: %w", err)
	}

	if payload.Data == nil || len(payload.Data.Diff) == 0 {
		c.logger.Warn("Provider returned empty spot table")
		return nil, ErrSymbolNotFound
	}

	for _, row := range payload.Data.Diff {
		code, ok := row["f12"].(string)
		if !ok || code != symbol {
			continue
		}

		// Halted instruments report "-" instead of numbers.
		price, ok := floatField(row, "f2")
		if !ok {
			c.logger.Warn("Spot row has no usable price", zap.String("symbol", symbol))
			return nil, fmt.Errorf("no usable quote for %s", symbol)
		}

		changePct, _ := floatField(row, "f3")
		volume, _ := floatField(row, "f5")
		amount, _ := floatField(row, "f6")
		turnover, _ := floatField(row, "f8")

		return &model.Snapshot{
			Symbol:       symbol,
			Price:        price,
			ChangePct:    changePct,
			Volume:       volume,
			Amount:       amount,
			TurnoverRate: turnover,
		}, nil
	}

	return nil, ErrSymbolNotFound
}

// GetDailyKlines fetches the daily OHLCV series for a symbol from the
// configured start date, using the configured adjustment mode.
func (c *EastMoneyClient) GetDailyKlines(ctx context.Context, symbol string) ([]model.Bar, error) {
	params := url.Values{}
	params.Add("secid", hkSecIDPrefix+symbol)
	params.Add("klt", dailyKlineType)
	params.Add("fqt", c.fqt)
	params.Add("beg", c.startDate)
	params.Add("end", klineEndDate)
	params.Add("fields1", "f1,f2,f3,f4,f5,f6")
	params.Add("fields2", "f51,f52,f53,f54,f55,f56,f57")

	reqURL := c.klineURL + "?" + params.Encode()

	c.logger.Debug("Calling provider kline API", zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to fetch daily klines", zap.Error(err), zap.String("symbol", symbol))
		return nil, fmt.Errorf("failed to fetch daily klines: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		c.logger.Error("Provider kline error response",
			zap.Int("statusCode", resp.StatusCode),
			zap.String("response", string(bodyBytes)))
		return nil, fmt.Errorf("provider returned status code %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var payload struct {
		Data *struct {
			Code   string   `json:"code"`
			Klines []string `json:"klines"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.logger.Error("Failed to decode daily klines", zap.Error(err))
		return nil, fmt.Errorf("failed to decode daily klines: %w", err)
	}

	if payload.Data == nil {
		return nil, fmt.Errorf("no historical data for %s", symbol)
	}

	if len(payload.Data.Klines) == 0 {
		c.logger.Warn("Provider returned empty kline series", zap.String("symbol", symbol))
	}

	// Each kline row is "date,open,close,high,low,volume,amount[,…]".
	bars := make([]model.Bar, 0, len(payload.Data.Klines))
	for i, raw := range payload.Data.Klines {
		parts := strings.Split(raw, ",")
		if len(parts) < 7 {
			c.logger.Warn("Skipping malformed kline row",
				zap.Int("index", i),
				zap.String("raw", raw))
			continue
		}

		date, err := time.Parse("2006-01-02", parts[0])
		if err != nil {
			c.logger.Warn("Skipping kline row with invalid date",
				zap.Int("index", i),
				zap.String("date", parts[0]))
			continue
		}

		open, err1 := strconv.ParseFloat(parts[1], 64)
		closePx, err2 := strconv.ParseFloat(parts[2], 64)
		high, err3 := strconv.ParseFloat(parts[3], 64)
		low, err4 := strconv.ParseFloat(parts[4], 64)
		volume, err5 := strconv.ParseFloat(parts[5], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			c.logger.Warn("Skipping kline row with invalid numbers",
				zap.Int("index", i),
				zap.String("raw", raw))
			continue
		}

		bars = append(bars, model.Bar{
			Date:   date,
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePx,
			Volume: volume,
		})
	}

	c.logger.Debug("Fetched daily klines",
		zap.Int("count", len(bars)),
		zap.String("symbol", symbol))

	return bars, nil
}

// floatField extracts a numeric field from a spot row, tolerating the
// provider's habit of sending numbers as strings or "-" placeholders.
func floatField(row map[string]any, key string) (float64, bool) {
	switch v := row[key].(type) {
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
