package api

import (
	"context"
	"fmt"
	nethttp "net/http"
	"strings"

	"weather-checker/internal/domain/entity"
	"weather-checker/internal/domain/model"
	"weather-checker/internal/domain/model/external"
	"weather-checker/pkg/http"
)

const apiKeyParam = "appid"

// OpenWeatherOptions configures the OpenWeatherMap gateway.
type OpenWeatherOptions struct {
	BaseURL string
	Path    string
	APIKey  string
	Units   string
}

// weatherGatewayImpl implements the WeatherGateway interface
type weatherGatewayImpl struct {
	httpClient *http.Client
	baseURL    string
	path       string
	apiKey     string
	units      string
}

// NewWeatherGateway creates a new instance of WeatherGateway with HTTP client.
// It fails with entity.ErrMissingAPIKey when no key is configured.
func NewWeatherGateway(opts OpenWeatherOptions, clientOptions http.ClientOptions) (WeatherGateway, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, entity.ErrMissingAPIKey
	}
	if opts.Path == "" {
		opts.Path = "/data/2.5/weather"
	}
	if opts.Units == "" {
		opts.Units = "metric"
	}

	clientOptions.RedactedQueryParams = append(clientOptions.RedactedQueryParams, apiKeyParam)

	return &weatherGatewayImpl{
		httpClient: http.NewHttpClient(opts.BaseURL, clientOptions),
		baseURL:    opts.BaseURL,
		path:       opts.Path,
		apiKey:     opts.APIKey,
		units:      opts.Units,
	}, nil
}

// GetCurrentWeather gets the current conditions for a place
func (w *weatherGatewayImpl) GetCurrentWeather(ctx context.Context, query entity.WeatherQuery) (*external.CurrentWeatherResponse, error) {
	successResp, errResp, status, err := w.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(w.path).
		WithQueryParams(map[string]string{
			"q":         query.Q(),
			apiKeyParam: w.apiKey,
			"units":     w.units,
		}).
		WithSuccessResp(&external.CurrentWeatherResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if status == 0 {
		return nil, &entity.TransportError{Detail: "no response from weather api", Err: err}
	}

	// only 200 carries a usable report, every other answer is a lookup miss
	if status != nethttp.StatusOK {
		upstreamErr := &entity.UpstreamStatusError{StatusCode: status}
		if body, ok := errResp.(*external.APIErrorResponse); ok && body != nil {
			upstreamErr.Message = body.Message
		}
		return nil, upstreamErr
	}

	if err != nil {
		return nil, &entity.TransportError{Detail: fmt.Sprintf("unreadable response with status %d", status), Err: err}
	}

	report, ok := successResp.(*external.CurrentWeatherResponse)
	if !ok || report == nil {
		return nil, &entity.TransportError{Detail: "empty response from weather api"}
	}

	return report, nil
}

// Health reports UP once the gateway is configured. The upstream is not called.
func (w *weatherGatewayImpl) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"baseUrl": w.baseURL,
			"path":    w.path,
			"units":   w.units,
		},
	}
}
