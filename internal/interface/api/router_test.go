package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"airnova-service/internal/domain/entity"
	"airnova-service/internal/infrastructure/mlmodel"
	"airnova-service/internal/usecase"
	"airnova-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal in-memory repositories for wiring a full router under test.

type stubAirportRepo struct{ airports []entity.Airport }

func (s *stubAirportRepo) FindByCode(_ context.Context, code string) (*entity.Airport, error) {
	for i := range s.airports {
		if strings.EqualFold(s.airports[i].AirportCode, code) {
			return &s.airports[i], nil
		}
	}
	return nil, nil
}

func (s *stubAirportRepo) FindByCity(_ context.Context, city string) (*entity.Airport, error) {
	for i := range s.airports {
		if strings.EqualFold(s.airports[i].City, city) {
			return &s.airports[i], nil
		}
	}
	return nil, nil
}

type stubRouteRepo struct{ routes []entity.Route }

func (s *stubRouteRepo) ListAll(_ context.Context) ([]entity.Route, error) { return s.routes, nil }

type stubFlightRepo struct{ details map[uint]entity.FlightDetail }

func (s *stubFlightRepo) FindDetail(_ context.Context, id uint) (*entity.FlightDetail, error) {
	d, ok := s.details[id]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (s *stubFlightRepo) Search(_ context.Context, _, _ string, _ time.Time) ([]entity.FlightDetail, error) {
	return nil, nil
}

func (s *stubFlightRepo) UpdateStatus(_ context.Context, _ uint, _ string) error { return nil }

func (s *stubFlightRepo) ListDetails(_ context.Context) ([]entity.FlightDetail, error) {
	return nil, nil
}

type stubBookingRepo struct{}

func (stubBookingRepo) CountConfirmed(_ context.Context, _ uint) (int, error) { return 0, nil }

func (stubBookingRepo) ListConfirmed(_ context.Context, _ uint) ([]entity.Booking, error) {
	return nil, nil
}

type stubNotificationRepo struct{}

func (stubNotificationRepo) Insert(_ context.Context, _ uint, _, _ string) error { return nil }

func (stubNotificationRepo) ListForUser(_ context.Context, _ uint, _ bool) ([]entity.Notification, error) {
	return nil, nil
}

func (stubNotificationRepo) MarkRead(_ context.Context, _ uint) (bool, error) { return false, nil }

func (stubNotificationRepo) MarkAllRead(_ context.Context, _ uint) (int64, error) { return 0, nil }

type stubWeatherProvider struct{}

func (stubWeatherProvider) FetchCurrent(_ context.Context, code string) (*entity.WeatherReport, error) {
	return &entity.WeatherReport{AirportCode: code, DelayRisk: "LOW"}, nil
}

type stubUserRepo struct{ users []entity.User }

func (s *stubUserRepo) Create(_ context.Context, u *entity.User) error {
	u.UserID = uint(len(s.users) + 1)
	s.users = append(s.users, *u)
	return nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for i := range s.users {
		if s.users[i].Email == email {
			return &s.users[i], nil
		}
	}
	return nil, nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewNopLogger()

	airports := &stubAirportRepo{airports: []entity.Airport{
		{AirportCode: "BLR", City: "Bengaluru"},
		{AirportCode: "MAA", City: "Chennai"},
		{AirportCode: "DEL", City: "Delhi"},
	}}
	routes := &stubRouteRepo{routes: []entity.Route{
		{SourceAirport: "BLR", DestinationAirport: "MAA", DistanceKM: 290},
	}}
	flights := &stubFlightRepo{details: map[uint]entity.FlightDetail{
		42: {FlightID: 42, BasePrice: 6500, DepartureTime: time.Now().AddDate(0, 0, 2), SourceAirport: "BLR", DestinationAirport: "DEL"},
	}}

	resolver := usecase.NewAirportResolver(airports, log)
	builder := usecase.NewGraphBuilder(routes)
	planner := usecase.NewRoutePlanner(resolver, builder, nil, log)
	searcher := usecase.NewFlightSearcher(flights, log)
	contextBuilder := usecase.NewFlightContextBuilder(flights, stubBookingRepo{}, stubWeatherProvider{}, nil, nil, log)

	// an absent artifact path keeps the model unavailable throughout
	handle := mlmodel.NewHandle(filepath.Join(t.TempDir(), "absent.json"))
	predictor := usecase.NewPricePredictor(handle, contextBuilder, nil, log)

	reconciler := usecase.NewDisruptionReconciler(flights, stubBookingRepo{}, stubNotificationRepo{}, searcher, nil, nil, log)
	auth := usecase.NewAuthService(&stubUserRepo{}, "test-secret", 1, log)

	return NewRouter(Handlers{
		Auth:          NewAuthHandler(auth, log),
		Flights:       NewFlightHandler(resolver, searcher, planner, predictor, log),
		Disruptions:   NewDisruptionHandler(reconciler, log),
		Notifications: NewNotificationHandler(stubNotificationRepo{}, log),
		Weather:       NewWeatherHandler(stubWeatherProvider{}, log),
	}, auth, "*", "test")
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	w := doRequest(newTestRouter(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"UP"`)
}

func TestShortestRouteEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/routes/shortest?from=bengaluru&to=Chennai", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reachable":true`)
	assert.Contains(t, w.Body.String(), `"total_distance_km":290`)

	w = doRequest(router, http.MethodGet, "/api/v1/routes/shortest?from=BLR&to=Narnia", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// disconnected airports are a negative result, not an error
	w = doRequest(router, http.MethodGet, "/api/v1/routes/shortest?from=BLR&to=DEL", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"reachable":false`)
}

func TestPricePredictionModelUnavailable(t *testing.T) {
	w := doRequest(newTestRouter(t), http.MethodGet, "/api/v1/flights/42/price", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestStatusUpdateRequiresAuth(t *testing.T) {
	w := doRequest(newTestRouter(t), http.MethodPost, "/api/v1/flights/42/status", `{"status":"DELAYED"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStatusUpdateWithToken(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Asha","email":"asha@example.com","password":"longenough"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(router, http.MethodPost, "/api/v1/auth/login",
		`{"email":"asha@example.com","password":"longenough"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var loginResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Token)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/42/status", strings.NewReader(`{"status":"FOO"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+loginResp.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWeatherEndpoint(t *testing.T) {
	w := doRequest(newTestRouter(t), http.MethodGet, "/api/v1/weather/blr", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"delay_risk":"LOW"`)
}
