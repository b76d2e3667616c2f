package distancematrix

//go:generate go run go.uber.org/mock/mockgen -source=./distancematrix.go -destination=./mocks/distancematrix_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cabwise/config"
	"cabwise/infras/otel"
	"cabwise/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	statusOK = "OK"

	defaultTimeoutSeconds = 5
)

// Client looks up driving distance between two free-text locations against
// the remote distance-matrix API.
type Client interface {
	DistanceMeters(ctx context.Context, origin, destination string) (meters int, err error)
}

type response struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

type clientImpl struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, ot otel.Otel) Client {
	timeout := cfg.External.DistanceMatrix.TimeoutSeconds
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds
	}

	return &clientImpl{
		baseURL: cfg.External.DistanceMatrix.BaseURL,
		apiKey:  cfg.External.DistanceMatrix.APIKey,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		otel: ot,
	}
}

func (c *clientImpl) DistanceMeters(ctx context.Context, origin, destination string) (meters int, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".distancematrix.DistanceMeters")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"origin":      origin,
		"destination": destination,
	})

	query := url.Values{}
	query.Set("origins", origin)
	query.Set("destinations", destination)
	query.Set("units", "metric")
	query.Set("key", c.apiKey)

	endpoint := fmt.Sprintf("%s?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build distance matrix request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).Msg("distance matrix request failed")

		return 0, fmt.Errorf("distance matrix request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("distance matrix returned status %d", resp.StatusCode)
	}

	var body response

	err = json.NewDecoder(resp.Body).Decode(&body)
	if err != nil {
		return 0, fmt.Errorf("failed to decode distance matrix response: %w", err)
	}

	if body.Status != statusOK {
		return 0, fmt.Errorf("distance matrix status %q", body.Status)
	}

	if len(body.Rows) == 0 || len(body.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("distance matrix response contains no elements")
	}

	element := body.Rows[0].Elements[0]
	if element.Status != statusOK {
		return 0, fmt.Errorf("distance matrix element status %q", element.Status)
	}

	return element.Distance.Value, nil
}
