package distancematrix_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"cabwise/config"
	"cabwise/infras/distancematrix"
	"cabwise/infras/otel/mocks"
)

func newClient(baseURL string) distancematrix.Client {
	cfg := &config.Config{}
	cfg.External.DistanceMatrix.BaseURL = baseURL
	cfg.External.DistanceMatrix.APIKey = "test-key"
	cfg.External.DistanceMatrix.TimeoutSeconds = 1

	return distancematrix.New(cfg, mocks.NewOtel())
}

func TestDistanceMatrixClient_DistanceMeters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Basavanagudi", r.URL.Query().Get("origins"))
		assert.Equal(t, "Indiranagar", r.URL.Query().Get("destinations"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"rows": [{"elements": [{"status": "OK", "distance": {"value": 8250}}]}]
		}`))
	}))
	defer server.Close()

	client := newClient(server.URL)

	meters, err := client.DistanceMeters(context.Background(), "Basavanagudi", "Indiranagar")

	assert.NoError(t, err)
	assert.Equal(t, 8250, meters)
}

func TestDistanceMatrixClient_DistanceMetersErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		payload string
	}{
		{
			name:    "overall status not ok",
			status:  http.StatusOK,
			payload: `{"status": "OVER_QUERY_LIMIT", "rows": []}`,
		},
		{
			name:    "element status not ok",
			status:  http.StatusOK,
			payload: `{"status": "OK", "rows": [{"elements": [{"status": "NOT_FOUND"}]}]}`,
		},
		{
			name:    "empty rows",
			status:  http.StatusOK,
			payload: `{"status": "OK", "rows": []}`,
		},
		{
			name:    "http error",
			status:  http.StatusBadGateway,
			payload: `upstream unavailable`,
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			payload: `{not json`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.payload))
			}))
			defer server.Close()

			client := newClient(server.URL)

			_, err := client.DistanceMeters(context.Background(), "a", "b")

			assert.Error(t, err)
		})
	}
}
