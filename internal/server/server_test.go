package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"autoinsight/api"
	"autoinsight/internal/domain/service/vehicle"
	"autoinsight/internal/infrastructure/vpic"
	"autoinsight/internal/server"
	"autoinsight/pkg/probe"
	"autoinsight/pkg/rest"
	"autoinsight/pkg/tests"
)

type upstream struct {
	calls      atomic.Int32
	statusCode int
	body       string
}

func (u *upstream) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	u.calls.Add(1)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(u.statusCode)
	w.Write([]byte(u.body))
}

func newTestAPI(t *testing.T, up *upstream) tests.APIClient {
	t.Helper()

	vpicServer := httptest.NewServer(up)
	t.Cleanup(vpicServer.Close)

	client, err := vpic.NewClient(vpic.Config{BaseURL: vpicServer.URL}, nil)
	require.NoError(t, err)

	service := vehicle.NewService(client).WithClock(func() time.Time {
		return time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	})

	handler := server.NewRouter(
		server.NewServer(
			server.NewVehicleServer(service),
			probe.New(probe.Options{Name: "AutoInsight VIN Decoder API", Version: "v1", Docs: server.PathDocs}),
			api.OpenAPI,
		),
		server.RouterOptions{CORSAllowedOrigin: "*", LogFieldMaxLen: 4096},
	)

	apiServer := httptest.NewServer(handler)
	t.Cleanup(apiServer.Close)

	return tests.NewAPIClient(apiServer.URL, apiServer.Client())
}

func TestDecodeVIN(t *testing.T) {
	rq := require.New(t)

	up := &upstream{
		statusCode: http.StatusOK,
		body:       `{"Count":1,"Results":[{"Make":"HONDA","Model":"ACCORD","ModelYear":"2003"}]}`,
	}
	apiClient := newTestAPI(t, up)

	resp, body, err := apiClient.GetRaw(context.Background(), "/api/v1/vehicles/decode-vin/1HGCM82633A123456", nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("application/json; charset=utf-8", resp.Header.Get("Content-Type"))
	rq.NotEmpty(resp.Header.Get("X-Trace-Id"))
	rq.Equal(int32(1), up.calls.Load())

	rq.JSONEq(`{
		"vin": "1HGCM82633A123456",
		"make": "HONDA",
		"model": "ACCORD",
		"year": "2003",
		"manufacturer": null,
		"series": null,
		"trim": null,
		"grossVehicleWeightRating": null,
		"driveType": null,
		"cylinders": null,
		"primaryFuelType": null,
		"secondaryFuelType": null,
		"electrificationLevel": null,
		"engineModel": null,
		"engineHorsepower": null,
		"engineManufacturer": null,
		"engineDisplacementL": null,
		"transmissionSpeeds": null,
		"transmissionStyle": null
	}`, string(body))
}

func TestDecodeVINEchoesInput(t *testing.T) {
	rq := require.New(t)

	up := &upstream{
		statusCode: http.StatusOK,
		body:       `{"Results":[{"Make":"TOYOTA"}]}`,
	}
	apiClient := newTestAPI(t, up)

	var response rest.VinDecodeResponse

	resp, err := apiClient.Get(context.Background(), "/api/v1/vehicles/decode-vin/jtdkb20u093123456", nil, &response, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("jtdkb20u093123456", response.VIN)
	rq.Equal("TOYOTA", *response.Make)
	rq.Nil(response.Model)
}

func TestDecodeVINErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		vin        string
		upstream   upstream
		calls      int32
		statusCode int
		code       rest.ErrorCode
		message    string
	}{
		{
			name:       "Too short",
			vin:        "1HGCM82633A",
			statusCode: http.StatusBadRequest,
			code:       "INVALID_VIN_FORMAT",
			message:    "VIN must be exactly 17 characters long for standard decoding.",
		},
		{
			name:       "Disallowed character",
			vin:        "1HGCM82633AI23456",
			statusCode: http.StatusBadRequest,
			code:       "INVALID_VIN_FORMAT",
			message:    "VIN contains disallowed character 'I'. VINs do not use I, O, or Q.",
		},
		{
			name:       "Whitespace only",
			vin:        "%20%20%20",
			statusCode: http.StatusBadRequest,
			code:       "INVALID_VIN_FORMAT",
			message:    "VIN cannot be empty or whitespace.",
		},
		{
			name:       "Empty results",
			vin:        "1HGCM82633A123456",
			upstream:   upstream{statusCode: http.StatusOK, body: `{"Count":0,"Results":[]}`},
			calls:      1,
			statusCode: http.StatusNotFound,
			code:       "VIN_DATA_NOT_FOUND",
			message:    "NHTSA API returned no decodable data for this VIN. It might be invalid, too old, or not a US-market vehicle.",
		},
		{
			name:       "No make and model",
			vin:        "1HGCM82633A123456",
			upstream:   upstream{statusCode: http.StatusOK, body: `{"Results":[{"Make":"","Model":""}]}`},
			calls:      1,
			statusCode: http.StatusNotFound,
			code:       "VIN_DATA_NOT_FOUND",
			message:    "Could not extract sufficient Make/Model details from VIN. Data might be incomplete.",
		},
		{
			name:       "Upstream failure",
			vin:        "1HGCM82633A123456",
			upstream:   upstream{statusCode: http.StatusBadGateway, body: `bad gateway`},
			calls:      1,
			statusCode: http.StatusInternalServerError,
			code:       "EXTERNAL_API_ERROR",
			message:    "Failed to retrieve VIN data from external source. Please try again later.",
		},
		{
			name:       "Unparseable upstream response",
			vin:        "1HGCM82633A123456",
			upstream:   upstream{statusCode: http.StatusOK, body: `<html>maintenance</html>`},
			calls:      1,
			statusCode: http.StatusInternalServerError,
			code:       "EXTERNAL_API_PARSE_ERROR",
			message:    "The external VIN decoding service returned an unparseable response.",
		},
		{
			name:       "Unexpected results element",
			vin:        "1HGCM82633A123456",
			upstream:   upstream{statusCode: http.StatusOK, body: `{"Results":[42]}`},
			calls:      1,
			statusCode: http.StatusInternalServerError,
			code:       "EXTERNAL_API_PARSE_ERROR",
			message:    "The external VIN decoding service returned an unparseable response.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			up := &upstream{statusCode: tc.upstream.statusCode, body: tc.upstream.body}
			apiClient := newTestAPI(t, up)

			var response rest.Error

			resp, err := apiClient.Get(context.Background(), "/api/v1/vehicles/decode-vin/"+tc.vin, nil, nil, &response)
			rq.NoError(err)
			rq.Equal(tc.statusCode, resp.StatusCode)
			rq.Equal(tc.code, response.Code)
			rq.Equal(tc.message, response.Message)
			rq.Equal(resp.Header.Get("X-Trace-Id"), response.SupportID)
			rq.Equal(tc.calls, up.calls.Load())
		})
	}
}

func TestPricing(t *testing.T) {
	rq := require.New(t)

	apiClient := newTestAPI(t, &upstream{})

	testCases := []struct {
		query    string
		expected rest.PriceEstimateResponse
	}{
		{
			query:    "make=Toyota&model=Camry&year=2026",
			expected: rest.PriceEstimateResponse{Make: "Toyota", Model: "Camry", Year: 2026, EstimatedPrice: 15000},
		},
		{
			query:    "make=Honda&model=Civic&year=2016",
			expected: rest.PriceEstimateResponse{Make: "Honda", Model: "Civic", Year: 2016, EstimatedPrice: 7000},
		},
		{
			query:    "make=Ford&model=Model+T&year=1966",
			expected: rest.PriceEstimateResponse{Make: "Ford", Model: "Model T", Year: 1966, EstimatedPrice: 500},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(*testing.T) {
			var response rest.PriceEstimateResponse

			resp, err := apiClient.Get(context.Background(), "/api/v1/vehicles/pricing?"+tc.query, nil, &response, nil)
			rq.NoError(err)
			rq.Equal(http.StatusOK, resp.StatusCode)
			rq.Equal(tc.expected, response)
		})
	}
}

func TestPricingInvalid(t *testing.T) {
	rq := require.New(t)

	apiClient := newTestAPI(t, &upstream{})

	testCases := []struct {
		query   string
		details map[string][]string
	}{
		{
			query:   "model=Camry&year=2020",
			details: map[string][]string{"make": {"is required"}},
		},
		{
			query:   "make=Toyota&model=+&year=2020",
			details: map[string][]string{"model": {"is required"}},
		},
		{
			query:   "make=Toyota&model=Camry",
			details: map[string][]string{"year": {"is required"}},
		},
		{
			query:   "make=Toyota&model=Camry&year=abc",
			details: map[string][]string{"year": {"must be an integer"}},
		},
		{
			query:   "make=Toyota&model=Camry&year=1899",
			details: map[string][]string{"year": {"must be between 1900 and 2028"}},
		},
		{
			query:   "make=Toyota&model=Camry&year=2029",
			details: map[string][]string{"year": {"must be between 1900 and 2028"}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(*testing.T) {
			var response rest.Error

			resp, err := apiClient.Get(context.Background(), "/api/v1/vehicles/pricing?"+tc.query, nil, nil, &response)
			rq.NoError(err)
			rq.Equal(http.StatusBadRequest, resp.StatusCode)
			rq.Equal(rest.ErrorCode("INVALID_PRICING_INPUT"), response.Code)
			rq.Equal(
				"Invalid input parameters. Make, Model, and a valid Year (e.g., 1900-current year + 2) are required.",
				response.Message,
			)
			rq.Equal(tc.details, response.Details)
		})
	}
}

func TestPricingMalformedQuery(t *testing.T) {
	rq := require.New(t)

	apiClient := newTestAPI(t, &upstream{})

	var response rest.Error

	resp, err := apiClient.Get(context.Background(), "/api/v1/vehicles/pricing?make=%zz&model=Camry&year=2020", nil, nil, &response)
	rq.NoError(err)
	rq.Equal(http.StatusBadRequest, resp.StatusCode)
	rq.Equal(rest.ErrorCode("INVALID_PRICING_INPUT"), response.Code)
	rq.Equal("Malformed query string.", response.Message)
	rq.NotEmpty(response.SupportID)
}

func TestServiceEndpoints(t *testing.T) {
	rq := require.New(t)

	apiClient := newTestAPI(t, &upstream{})
	ctx := context.Background()

	var info rest.ServiceInfo

	resp, err := apiClient.Get(ctx, "/", nil, &info, nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal(rest.ServiceInfo{
		Name:    "AutoInsight VIN Decoder API",
		Version: "v1",
		Status:  "online",
		Docs:    "/docs",
	}, info)

	resp, body, err := apiClient.GetRaw(ctx, "/health", nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("Healthy", string(body))

	resp, body, err = apiClient.GetRaw(ctx, "/docs", nil)
	rq.NoError(err)
	rq.Equal(http.StatusOK, resp.StatusCode)
	rq.Equal("application/yaml; charset=utf-8", resp.Header.Get("Content-Type"))
	rq.Equal(api.OpenAPI, body)
}

func TestRoutingErrors(t *testing.T) {
	rq := require.New(t)

	apiClient := newTestAPI(t, &upstream{})

	var response rest.Error

	resp, err := apiClient.Get(context.Background(), "/api/v1/vehicles/unknown", nil, nil, &response)
	rq.NoError(err)
	rq.Equal(http.StatusNotFound, resp.StatusCode)
	rq.Equal(rest.ErrorCode("NOT_FOUND"), response.Code)
	rq.NotEmpty(response.SupportID)

	req := httptest.NewRequest(http.MethodDelete, "/health", http.NoBody)

	recorder := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(recorder, req)

	rq.Equal(http.StatusMethodNotAllowed, recorder.Code)
	rq.Contains(recorder.Body.String(), `"code":"METHOD_NOT_ALLOWED"`)
}

func TestCORSPreflight(t *testing.T) {
	rq := require.New(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/vehicles/pricing", http.NoBody)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "X-Custom")

	recorder := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(recorder, req)

	rq.Equal(http.StatusNoContent, recorder.Code)
	rq.Equal("*", recorder.Header().Get("Access-Control-Allow-Origin"))
	rq.Equal("X-Custom", recorder.Header().Get("Access-Control-Allow-Headers"))
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	client, err := vpic.NewClient(vpic.Config{BaseURL: vpic.DefaultBaseURL}, nil)
	require.NoError(t, err)

	return server.NewRouter(
		server.NewServer(
			server.NewVehicleServer(vehicle.NewService(client)),
			probe.New(probe.Options{}),
			api.OpenAPI,
		),
		server.RouterOptions{CORSAllowedOrigin: "*"},
	)
}
