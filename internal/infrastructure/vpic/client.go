// Package vpic is a client of the NHTSA vehicle product information catalog
// (vPIC) VIN decoding API.
package vpic

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"autoinsight/internal/domain"
	"autoinsight/internal/domain/entity"
	"autoinsight/internal/domain/value"
	"autoinsight/pkg/contextx"
	"autoinsight/pkg/errcodes"
	"autoinsight/pkg/httpx"
	"autoinsight/pkg/logx"
)

// vPIC field names are matched exactly.
var json = jsoniter.Config{ //nolint:gochecknoglobals,exhaustruct // skip
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	CaseSensitive:          true,
}.Froze()

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	DefaultBaseURL = "https://vpic.nhtsa.dot.gov/api/vehicles"

	upstreamName = "vpic"
	decodePath   = "decodevinvaluesextended"
	maxBodySize  = 4 << 20
)

const (
	msgUpstreamHTTP   = "External API HTTP error. Please try again later."
	msgUpstreamParse  = "Failed to parse NHTSA API response. The response format might have changed."
	msgNoResults      = "NHTSA API returned no decodable data for this VIN. It might be invalid, too old, or not a US-market vehicle."
	msgUnexpectedData = "NHTSA API 'Results' array contained unexpected data format."
	msgNoMakeModel    = "Could not extract sufficient Make/Model details from VIN. Data might be incomplete."
	msgTooLarge       = "NHTSA API response exceeded the size limit."
	msgInternal       = "An unexpected internal error occurred. Please contact support."
)

type Config struct {
	BaseURL string
	// Timeout of a whole decode call; zero keeps the transport defaults.
	Timeout        time.Duration
	LogFieldMaxLen int
}

// Client decodes VINs with one GET per call. Nothing is retried or cached.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	metrics    clientMetrics
}

func NewClient(cfg Config, registerer prometheus.Registerer) (*Client, error) {
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("base url %q: scheme and host are required", cfg.BaseURL)
	}

	transport := otelhttp.NewTransport(
		httpx.NewLoggingRoundTripper(
			http.DefaultTransport,
			httpx.WithUpstream(upstreamName),
			httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
			httpx.WithLogFieldMaxLen(cfg.LogFieldMaxLen),
		),
	)

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		metrics: newClientMetrics(registerer),
	}, nil
}

// Decode returns the decoded vehicle or an *domain.AppError classifying the
// failure.
func (c *Client) Decode(ctx context.Context, vin value.VIN) (entity.DecodedVehicle, error) {
	start := time.Now()

	vehicle, err := c.decode(ctx, vin)

	c.metrics.observe(err, time.Since(start))

	return vehicle, err
}

func (c *Client) decode(ctx context.Context, vin value.VIN) (entity.DecodedVehicle, error) {
	log := logger(ctx).With(logx.VIN(vin.String()))

	body, err := c.fetch(ctx, vin)
	if err != nil {
		return entity.DecodedVehicle{}, err
	}

	var response decodeResponse

	if err = json.Unmarshal(body, &response); err != nil {
		log.Error("vpic response is not valid JSON", logx.Error(err))

		return entity.DecodedVehicle{}, domain.WrapError(
			fmt.Errorf("json.Unmarshal: %w", err),
			domain.KindUpstreamMalformed,
			errcodes.ExternalAPIParseError,
			msgUpstreamParse,
		)
	}

	if len(response.Results) == 0 {
		log.Warn("vpic returned no results", slog.String("message", response.Message))

		return entity.DecodedVehicle{}, domain.NewError(domain.KindNotFound, errcodes.VINDataNotFound, msgNoResults)
	}

	first, ok := response.first()
	if !ok {
		log.Warn("vpic first result is not an object")

		return entity.DecodedVehicle{}, domain.NewError(
			domain.KindUpstreamMalformed,
			errcodes.ExternalAPIParseError,
			msgUnexpectedData,
		)
	}

	var res result

	if err = json.Unmarshal(first, &res); err != nil {
		log.Error("vpic result object is malformed", logx.Error(err))

		return entity.DecodedVehicle{}, domain.WrapError(
			fmt.Errorf("json.Unmarshal: %w", err),
			domain.KindUpstreamMalformed,
			errcodes.ExternalAPIParseError,
			msgUpstreamParse,
		)
	}

	vehicle := res.vehicle(vin)

	log.Info(
		"vpic extracted values",
		logx.OptionalString("make", vehicle.Make),
		logx.OptionalString("model", vehicle.Model),
		logx.OptionalString("year", vehicle.Year),
		logx.OptionalString("manufacturer", vehicle.Manufacturer),
	)

	if !vehicle.HasMakeOrModel() {
		log.Warn("vpic returned incomplete make/model data")

		return entity.DecodedVehicle{}, domain.NewError(domain.KindNotFound, errcodes.VINDataNotFound, msgNoMakeModel)
	}

	return vehicle, nil
}

func (c *Client) fetch(ctx context.Context, vin value.VIN) ([]byte, error) {
	endpoint := c.baseURL.JoinPath(decodePath, vin.String())
	endpoint.RawQuery = url.Values{"format": {"json"}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), http.NoBody)
	if err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("http.NewRequestWithContext: %w", err),
			domain.KindInternal,
			errcodes.InternalServerError,
			msgInternal,
		)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("httpClient.Do: %w", err),
			domain.KindUpstreamUnavailable,
			errcodes.ExternalAPIError,
			msgUpstreamHTTP,
		)
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize)) //nolint:errcheck

		return nil, domain.WrapError(
			fmt.Errorf("unexpected status code %d", resp.StatusCode),
			domain.KindUpstreamUnavailable,
			errcodes.ExternalAPIError,
			fmt.Sprintf("External API HTTP error. Status Code: %d. Please try again later.", resp.StatusCode),
		)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("io.ReadAll: %w", err),
			domain.KindUpstreamUnavailable,
			errcodes.ExternalAPIError,
			msgUpstreamHTTP,
		)
	}

	if len(body) > maxBodySize {
		logger(ctx).Error(
			"vpic response exceeds size limit",
			logx.VIN(vin.String()),
			slog.Int("limit-bytes", maxBodySize),
		)

		return nil, domain.NewError(domain.KindUpstreamMalformed, errcodes.ExternalAPIParseError, msgTooLarge)
	}

	return body, nil
}
