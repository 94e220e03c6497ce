package calendly

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-VoiceScheduler/internal/domain"
)

const (
	endpointAvailableTimes = "/event_type_available_times"
	endpointEventTypes     = "/event_types"

	maxErrorBodyBytes = 4096
)

// Client клиент для работы с API Calendly.
// Создается один раз при старте процесса и передается в use cases явно
type Client struct {
	baseURL    string
	apiToken   string
	userURI    string
	httpClient *http.Client
	recorder   UpstreamRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента Calendly
func NewClient(baseURL, apiToken, userURI string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiToken: apiToken,
		userURI:  userURI,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		recorder: noopRecorder{},
		log:      log,
	}
}

// WithRecorder подключает сбор метрик обращений к Calendly
func (c *Client) WithRecorder(recorder UpstreamRecorder) *Client {
	if recorder != nil {
		c.recorder = recorder
	}
	return c
}

// GetAvailableTimes получает слоты доступности типа события в интервале [start, end]
func (c *Client) GetAvailableTimes(ctx context.Context, eventTypeID string, start, end time.Time) ([]domain.RawSlot, error) {
	c.log.Info("Calendly: fetching availability for event_type=%s, range=%s..%s",
		eventTypeID, formatTimestamp(start), formatTimestamp(end))

	params := url.Values{}
	params.Set("event_type", eventTypeID)
	params.Set("start_time", formatTimestamp(start))
	params.Set("end_time", formatTimestamp(end))

	var body AvailableTimesResponse
	if err := c.get(ctx, endpointAvailableTimes, params, &body); err != nil {
		c.log.Error("Calendly: failed to fetch availability for event_type=%s: %v", eventTypeID, err)
		return nil, err
	}

	slots := make([]domain.RawSlot, 0, len(body.Collection))
	for _, item := range body.Collection {
		slots = append(slots, domain.RawSlot{
			StartTime:     item.StartTime,
			EndTime:       item.EndTime,
			SchedulingURL: item.SchedulingURL,
		})
	}

	c.log.Info("Calendly: received %d available time slots for event_type=%s", len(slots), eventTypeID)
	return slots, nil
}

// GetEventTypes получает список типов событий
func (c *Client) GetEventTypes(ctx context.Context) ([]EventType, error) {
	params := url.Values{}
	if c.userURI != "" {
		params.Set("user", c.userURI)
	}

	var body EventTypesResponse
	if err := c.get(ctx, endpointEventTypes, params, &body); err != nil {
		c.log.Error("Calendly: failed to fetch event types: %v", err)
		return nil, err
	}

	c.log.Info("Calendly: received %d event types", len(body.Collection))
	return body.Collection, nil
}

// get выполняет GET запрос и декодирует JSON ответ в out
func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recorder.ObserveUpstream(endpoint, "error", time.Since(started))
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.recorder.ObserveUpstream(endpoint, strconv.Itoa(resp.StatusCode), time.Since(started))

	// Обработка статус-кодов
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, readErrorBody(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w: failed to decode response: %v", ErrUnavailable, ErrInvalidResponse, err)
	}

	return nil
}

// readErrorBody достает описание ошибки из тела ответа Calendly
func readErrorBody(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return fmt.Sprintf("%s: %s", errResp.Title, errResp.Message)
	}
	return string(raw)
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(domain.ProviderTimestamp)
}
