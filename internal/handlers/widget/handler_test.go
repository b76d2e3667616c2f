package widget_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cabwise/config"
	"cabwise/infras/otel/mocks"
	bookingMocks "cabwise/internal/domains/booking/mocks"
	bookingService "cabwise/internal/domains/booking/service"
	distanceMocks "cabwise/internal/domains/distance/mocks"
	distanceModel "cabwise/internal/domains/distance/model"
	fareModel "cabwise/internal/domains/fare/model"
	fareService "cabwise/internal/domains/fare/service"
	"cabwise/internal/handlers/widget"
	"cabwise/internal/notifier"
	cacheMocks "cabwise/shared/cache/mocks"
)

type widgetFixture struct {
	router   *chi.Mux
	repo     *bookingMocks.MockBooking
	distance *distanceMocks.MockDistance
	cache    *cacheMocks.MockRedisCache
}

func newWidgetFixture(t *testing.T) widgetFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := bookingMocks.NewMockBooking(ctrl)
	distance := distanceMocks.NewMockDistance(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	mockOtel := mocks.NewOtel()
	fare := fareService.New(fareModel.DefaultPricing(), mockOtel)
	dispatcher := notifier.NewDispatcher(mockOtel)

	booking := bookingService.New(repo, fare, distance, dispatcher, &config.Config{}, redisCache, mockOtel)

	handler := widget.New(booking, distance, mockOtel)
	router := chi.NewRouter()
	handler.Router(router)

	return widgetFixture{
		router:   router,
		repo:     repo,
		distance: distance,
		cache:    redisCache,
	}
}

func TestWidgetHandler_SubmitBooking(t *testing.T) {
	t.Run("accepts a local booking and answers the legacy envelope", func(t *testing.T) {
		fixture := newWidgetFixture(t)

		fixture.distance.EXPECT().
			Resolve(gomock.Any(), "Jayanagar", "Indiranagar").
			Return(distanceModel.Result{OK: true, DistanceKm: 10, Source: distanceModel.SourceDistanceMatrix})
		fixture.cache.EXPECT().
			AcquireOnce(gomock.Any(), gomock.Any(), 120).
			Return(true, nil)
		fixture.repo.EXPECT().
			Recent(gomock.Any(), 50).
			Return(nil, nil)
		fixture.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)
		fixture.cache.EXPECT().
			Clear(gomock.Any(), "booking:gets*").
			Return(nil)

		body := `{
			"name": "Asha Rao",
			"phone": "9876543210",
			"bookingType": "Local",
			"vehicle": "Sedan",
			"pickup": "Jayanagar",
			"drop": "Indiranagar",
			"travelDate": "2025-03-20",
			"time": "09:30"
		}`

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		rec := httptest.NewRecorder()

		fixture.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])
		assert.Equal(t, true, res["fareCalculated"])
		assert.InDelta(t, 200, res["totalFare"].(float64), 0.001)
		assert.Nil(t, res["dailyCharge"])
	})

	t.Run("rejects a submission without a phone number", func(t *testing.T) {
		fixture := newWidgetFixture(t)

		body := `{"name": "Asha Rao", "vehicle": "Sedan"}`

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		rec := httptest.NewRecorder()

		fixture.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, false, res["ok"])
		assert.NotEmpty(t, res["error"])
	})
}

func TestWidgetHandler_Get(t *testing.T) {
	t.Run("action=distance returns the remote lookup result", func(t *testing.T) {
		fixture := newWidgetFixture(t)

		fixture.distance.EXPECT().
			Lookup(gomock.Any(), "Jayanagar", "Whitefield").
			Return(18.75, nil)

		req := httptest.NewRequest(http.MethodGet, "/?action=distance&origin=Jayanagar&destination=Whitefield", nil)
		rec := httptest.NewRecorder()

		fixture.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, true, res["success"])
		assert.InDelta(t, 18.75, res["distance"].(float64), 0.001)
	})

	t.Run("action=distance reports lookup failure without a 5xx", func(t *testing.T) {
		fixture := newWidgetFixture(t)

		fixture.distance.EXPECT().
			Lookup(gomock.Any(), "Nowhere", "Whitefield").
			Return(0.0, errors.New("no route found"))

		req := httptest.NewRequest(http.MethodGet, "/?action=distance&origin=Nowhere&destination=Whitefield", nil)
		rec := httptest.NewRecorder()

		fixture.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, false, res["success"])
		assert.Equal(t, "no route found", res["error"])
	})

	t.Run("action=distance without both places is rejected", func(t *testing.T) {
		fixture := newWidgetFixture(t)

		req := httptest.NewRequest(http.MethodGet, "/?action=distance&origin=Jayanagar", nil)
		rec := httptest.NewRecorder()

		fixture.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, "Missing origin or destination", res["error"])
	})

	t.Run("plain GET answers the liveness payload", func(t *testing.T) {
		fixture := newWidgetFixture(t)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		fixture.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, true, res["ok"])
		assert.NotEmpty(t, res["message"])
	})
}
