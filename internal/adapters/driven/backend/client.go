package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driven"
	"github.com/custodia-labs/smartmirror-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.Backend = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "http://localhost:8080"

	// HeaderRequestID carries the per-request correlation ID.
	HeaderRequestID = "X-Request-ID"

	// maxErrorBody bounds how much of an unexpected body is quoted in errors.
	maxErrorBody = 512
)

// Endpoint paths.
const (
	pathSubwayStation = "/api/search_subway_station"
	pathDestination   = "/api/search_destination"
	pathBusStop       = "/api/search_bus_stop"
	pathVoice         = "/api/voice_destination"
	pathCommute       = "/api/commute_probability"
	pathInteraction   = "/api/interaction"
)

// Config holds configuration for the backend client.
type Config struct {
	// BaseURL is the service root (default: http://localhost:8080).
	BaseURL string

	// Timeout bounds each request. Zero leaves requests unbounded.
	Timeout time.Duration

	// RatePerSecond and Burst configure throttling.
	// Zero values use the defaults; a negative rate disables throttling.
	RatePerSecond float64
	Burst         int

	// HTTPClient overrides the transport. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client talks to the mirror backend over HTTP/JSON.
type Client struct {
	client  *http.Client
	baseURL string
	limiter *Limiter
	log     logger.Scoped
}

// New creates a backend client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.RatePerSecond == 0 {
		cfg.RatePerSecond = DefaultRatePerSecond
	}
	if cfg.Burst == 0 {
		cfg.Burst = DefaultBurst
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		client:  hc,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: NewLimiter(cfg.RatePerSecond, cfg.Burst),
		log:     logger.For("backend"),
	}
}

// BaseURL returns the service root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SearchPlaces looks up destination candidates and the best match's taxi estimate.
func (c *Client) SearchPlaces(ctx context.Context, query string) (*domain.PlaceSearch, error) {
	var reply placeReply
	if err := c.get(ctx, "search_destination", pathDestination, url.Values{"q": {query}}, &reply); err != nil {
		return nil, err
	}
	if err := reply.searchFailure(len(reply.AllPlaces) == 0); err != nil {
		return nil, err
	}
	return &domain.PlaceSearch{Places: reply.AllPlaces, Taxi: reply.Taxi}, nil
}

// SearchBusStops looks up bus stop candidates.
func (c *Client) SearchBusStops(ctx context.Context, query string) ([]domain.BusStop, error) {
	var reply stopReply
	if err := c.get(ctx, "search_bus_stop", pathBusStop, url.Values{"q": {query}}, &reply); err != nil {
		return nil, err
	}
	if err := reply.searchFailure(len(reply.AllStops) == 0); err != nil {
		return nil, err
	}
	return reply.AllStops, nil
}

// BusArrivals fetches upcoming buses at a stop.
func (c *Client) BusArrivals(ctx context.Context, nodeID, nodeName string) (*domain.BusArrivals, error) {
	var reply arrivalsReply
	params := url.Values{"nodeId": {nodeID}, "nodeNm": {nodeName}}
	if err := c.get(ctx, "bus_arrivals", pathBusStop, params, &reply); err != nil {
		return nil, err
	}
	if err := reply.failure(false); err != nil {
		return nil, err
	}
	return &reply.BusArrivals, nil
}

// SearchSubwayStations looks up subway station candidates.
func (c *Client) SearchSubwayStations(ctx context.Context, query string) ([]domain.SubwayStation, error) {
	var reply stationReply
	if err := c.get(ctx, "search_subway_station", pathSubwayStation, url.Values{"q": {query}}, &reply); err != nil {
		return nil, err
	}
	if err := reply.searchFailure(len(reply.AllStations) == 0); err != nil {
		return nil, err
	}
	return reply.AllStations, nil
}

// SubwaySchedule fetches the departures of one station.
func (c *Client) SubwaySchedule(ctx context.Context, stationID string) (*domain.SubwaySchedule, error) {
	var reply scheduleReply
	params := url.Values{"stationId": {stationID}}
	if err := c.get(ctx, "subway_schedule", pathSubwayStation, params, &reply); err != nil {
		return nil, err
	}
	if err := reply.failure(false); err != nil {
		return nil, err
	}
	return &reply.SubwaySchedule, nil
}

// DefaultSubwayStation fetches the server-configured station.
func (c *Client) DefaultSubwayStation(ctx context.Context) (*domain.DefaultStation, error) {
	var reply defaultStationReply
	if err := c.get(ctx, "default_subway_station", pathSubwayStation, nil, &reply); err != nil {
		return nil, err
	}
	if !reply.OK {
		// No default configured is not a failure for the page.
		if reply.Error == "" {
			return &domain.DefaultStation{}, nil
		}
		return nil, domain.NewBackendError(reply.Error)
	}
	return &domain.DefaultStation{Station: reply.Station, Schedule: reply.SubwaySchedule}, nil
}

// VoiceDestination captures speech on the server and searches places.
// On ok:false the recognized text, if any, is returned with the error.
func (c *Client) VoiceDestination(ctx context.Context, req domain.VoiceRequest) (*domain.VoiceResult, error) {
	var reply voiceReply
	if err := c.post(ctx, "voice_destination", pathVoice, req, &reply); err != nil {
		return nil, err
	}
	res := &domain.VoiceResult{SpeechText: reply.SpeechText, Places: reply.AllPlaces}
	if err := reply.failure(false); err != nil {
		return res, err
	}
	return res, nil
}

// CommuteProbability estimates per-mode on-time probabilities.
func (c *Client) CommuteProbability(
	ctx context.Context, req domain.CommuteRequest,
) (*domain.CommuteResponse, error) {
	var reply commuteReply
	if err := c.post(ctx, "commute_probability", pathCommute, req, &reply); err != nil {
		return nil, err
	}
	if err := reply.failure(false); err != nil {
		return nil, err
	}
	if reply.Probabilities == nil {
		reply.Probabilities = domain.Probabilities{}
	}
	return &reply.CommuteResponse, nil
}

// Interaction records user activity. The reply body is discarded.
func (c *Client) Interaction(ctx context.Context) error {
	return c.do(ctx, "interaction", http.MethodPost, pathInteraction, nil, nil, nil)
}

func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	return c.do(ctx, op, http.MethodGet, path, params, nil, out)
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, nil, body, out)
}

// do sends one request and decodes the JSON reply into out.
// A nil out discards the reply.
func (c *Client) do(ctx context.Context, op, method, path string, params url.Values, body, out any) error {
	fail := func(err error) error {
		return &domain.TransportError{Op: op, Err: err}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fail(err)
	}

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set(HeaderRequestID, requestID)

	c.log.Debug("%s %s id=%s", method, endpoint, requestID)
	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fail(err)
	}
	defer resp.Body.Close()
	c.limiter.Observe(resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fail(fmt.Errorf("read response: %w", err))
	}
	c.log.Debug("%s status=%d bytes=%d in %s id=%s", op, resp.StatusCode, len(data), time.Since(start), requestID)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		if json.Unmarshal(data, &env) == nil && env.Error != "" {
			return domain.NewBackendError(env.Error)
		}
		return fail(fmt.Errorf("status %d: %s", resp.StatusCode, truncate(data)))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fail(fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err))
	}
	return nil
}

func truncate(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}
