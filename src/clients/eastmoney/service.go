package eastmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"fundtracker/src/config"
	"fundtracker/src/utils"
	"fundtracker/src/utils/requests"
)

const historyCacheTTL = 10 * time.Minute

var netWorthTrendRe = regexp.MustCompile(`Data_netWorthTrend\s*=\s*(.*?);`)

// ServiceClientI is the quote-source capability consumed by the services
// layer: one current quote per fund, and the full net-worth history.
// Both calls are best effort; failures surface as UpstreamUnavailableError.
type ServiceClientI interface {
	GetQuote(ctx context.Context, code string) (*Quote, error)
	GetHistory(ctx context.Context, code string) ([]NetValuePoint, error)
}

type ServiceClient struct {
	quoteAPI       *requests.ExternalAPIService
	historyAPI     *requests.ExternalAPIService
	quoteBaseURL   string
	historyBaseURL string

	// per-code history cache; the series only changes once a day
	historyCaches sync.Map
}

// NewClient creates a new instance of ServiceClient
func NewClient(cfg *config.Config) *ServiceClient {
	em := cfg.ExternalClients.Eastmoney
	return &ServiceClient{
		quoteAPI:       requests.NewExternalAPIService(time.Duration(em.QuoteTimeoutSecs) * time.Second),
		historyAPI:     requests.NewExternalAPIService(time.Duration(em.HistoryTimeoutSecs) * time.Second),
		quoteBaseURL:   em.QuoteBaseURL,
		historyBaseURL: em.HistoryBaseURL,
	}
}

// GetQuote fetches the realtime estimate for a fund and strips the
// jsonpgz(...) JSONP wrapper. An unknown code comes back as an empty
// wrapper, which fails to parse and is reported as unavailable.
func (c *ServiceClient) GetQuote(ctx context.Context, code string) (*Quote, error) {
	endpoint := fmt.Sprintf("%s/js/%s.js", c.quoteBaseURL, code)

	resp, err := c.quoteAPI.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, utils.NewUpstreamUnavailableError(err, "quote feed unreachable for fund %s", code)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.NewUpstreamUnavailableError(nil, "quote feed returned %s for fund %s", resp.Status, code)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, utils.NewUpstreamUnavailableError(err, "failed reading quote feed response for fund %s", code)
	}

	payload := strings.TrimSpace(string(responseBody))
	payload = strings.TrimPrefix(payload, "jsonpgz(")
	payload = strings.TrimSuffix(payload, ");")

	var estimate realtimeEstimate
	if err := json.Unmarshal([]byte(payload), &estimate); err != nil {
		return nil, utils.NewUpstreamUnavailableError(err, "no realtime estimate for fund %s", code)
	}

	currentPrice, err := strconv.ParseFloat(estimate.EstimatedValue, 64)
	if err != nil {
		return nil, utils.NewUpstreamUnavailableError(err, "unparsable estimate value for fund %s", code)
	}
	dayChangePct, err := strconv.ParseFloat(estimate.EstimatedChangePct, 64)
	if err != nil {
		return nil, utils.NewUpstreamUnavailableError(err, "unparsable day change for fund %s", code)
	}

	return &Quote{
		Code:         estimate.FundCode,
		Name:         estimate.Name,
		CurrentPrice: currentPrice,
		DayChangePct: dayChangePct,
	}, nil
}

// GetHistory fetches the full net-worth series for a fund from the fund
// detail script. The series is cached per code for a short window since
// it only moves once per trading day.
func (c *ServiceClient) GetHistory(ctx context.Context, code string) ([]NetValuePoint, error) {
	if cached, ok := c.historyCaches.Load(code); ok {
		if series, ok := cached.(*utils.Cache[[]NetValuePoint]).Get(); ok {
			return series, nil
		}
	}

	endpoint := fmt.Sprintf("%s/pingzhongdata/%s.js", c.historyBaseURL, code)

	resp, err := c.historyAPI.Get(ctx, endpoint, nil)
	if err != nil {
		return nil, utils.NewUpstreamUnavailableError(err, "history feed unreachable for fund %s", code)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.NewUpstreamUnavailableError(nil, "history feed returned %s for fund %s", resp.Status, code)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, utils.NewUpstreamUnavailableError(err, "failed reading history feed response for fund %s", code)
	}

	match := netWorthTrendRe.FindSubmatch(responseBody)
	if match == nil {
		return nil, utils.NewUpstreamUnavailableError(nil, "no net-worth series for fund %s", code)
	}

	var points []netWorthTrendPoint
	if err := json.Unmarshal(match[1], &points); err != nil {
		return nil, utils.NewUpstreamUnavailableError(err, "unparsable net-worth series for fund %s", code)
	}

	series := make([]NetValuePoint, 0, len(points))
	for _, p := range points {
		series = append(series, NetValuePoint{
			Date:  time.UnixMilli(p.X).UTC().Format("2006-01-02"),
			Value: p.Y,
		})
	}

	cache := utils.NewCache[[]NetValuePoint]()
	cache.Set(series, historyCacheTTL)
	c.historyCaches.Store(code, cache)

	return series, nil
}
