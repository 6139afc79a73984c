package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"airnova-service/internal/domain/entity"
)

// In-memory fakes for the domain repository interfaces.

type fakeAirportRepo struct {
	airports []entity.Airport
}

func (f *fakeAirportRepo) FindByCode(_ context.Context, code string) (*entity.Airport, error) {
	for i := range f.airports {
		if strings.EqualFold(f.airports[i].AirportCode, code) {
			return &f.airports[i], nil
		}
	}
	return nil, nil
}

func (f *fakeAirportRepo) FindByCity(_ context.Context, city string) (*entity.Airport, error) {
	for i := range f.airports {
		if strings.EqualFold(f.airports[i].City, city) {
			return &f.airports[i], nil
		}
	}
	return nil, nil
}

type fakeRouteRepo struct {
	routes []entity.Route
	err    error
}

func (f *fakeRouteRepo) ListAll(_ context.Context) ([]entity.Route, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.routes, nil
}

type fakeFlightRepo struct {
	details       map[uint]entity.FlightDetail
	searchResults []entity.FlightDetail
	statusWrites  map[uint]string
}

func newFakeFlightRepo() *fakeFlightRepo {
	return &fakeFlightRepo{
		details:      make(map[uint]entity.FlightDetail),
		statusWrites: make(map[uint]string),
	}
}

func (f *fakeFlightRepo) FindDetail(_ context.Context, flightID uint) (*entity.FlightDetail, error) {
	d, ok := f.details[flightID]
	if !ok {
		return nil, nil
	}
	return &d, nil
}

func (f *fakeFlightRepo) Search(_ context.Context, _, _ string, _ time.Time) ([]entity.FlightDetail, error) {
	return f.searchResults, nil
}

func (f *fakeFlightRepo) UpdateStatus(_ context.Context, flightID uint, status string) error {
	f.statusWrites[flightID] = status
	return nil
}

func (f *fakeFlightRepo) ListDetails(_ context.Context) ([]entity.FlightDetail, error) {
	out := make([]entity.FlightDetail, 0, len(f.details))
	for _, d := range f.details {
		out = append(out, d)
	}
	return out, nil
}

type fakeBookingRepo struct {
	confirmed map[uint][]entity.Booking
}

func (f *fakeBookingRepo) CountConfirmed(_ context.Context, flightID uint) (int, error) {
	return len(f.confirmed[flightID]), nil
}

func (f *fakeBookingRepo) ListConfirmed(_ context.Context, flightID uint) ([]entity.Booking, error) {
	return f.confirmed[flightID], nil
}

type fakeNotificationRepo struct {
	inserts []entity.Notification
	failFor map[uint]bool
}

func (f *fakeNotificationRepo) Insert(_ context.Context, userID uint, message, category string) error {
	if f.failFor[userID] {
		return errors.New("insert failed")
	}
	f.inserts = append(f.inserts, entity.Notification{UserID: userID, Message: message, Type: category})
	return nil
}

func (f *fakeNotificationRepo) ListForUser(_ context.Context, userID uint, unreadOnly bool) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, n := range f.inserts {
		if n.UserID == userID && (!unreadOnly || !n.IsRead) {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, _ uint) (bool, error) { return true, nil }

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, _ uint) (int64, error) { return 0, nil }

type fakeWeatherProvider struct {
	report *entity.WeatherReport
	err    error
	calls  int
}

func (f *fakeWeatherProvider) FetchCurrent(_ context.Context, airportCode string) (*entity.WeatherReport, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	r := *f.report
	r.AirportCode = airportCode
	return &r, nil
}

type fakeWeatherLog struct {
	appended []entity.WeatherReport
}

func (f *fakeWeatherLog) Append(_ context.Context, report *entity.WeatherReport) error {
	f.appended = append(f.appended, *report)
	return nil
}

func (f *fakeWeatherLog) Latest(_ context.Context, airportCode string) (*entity.WeatherReport, error) {
	for i := len(f.appended) - 1; i >= 0; i-- {
		if f.appended[i].AirportCode == airportCode {
			return &f.appended[i], nil
		}
	}
	return nil, nil
}

type fakeHistoryRepo struct {
	snapshots []entity.PriceSnapshot
}

func (f *fakeHistoryRepo) InsertMany(_ context.Context, snapshots []entity.PriceSnapshot) error {
	f.snapshots = append(f.snapshots, snapshots...)
	return nil
}

func (f *fakeHistoryRepo) CountForFlight(_ context.Context, flightID uint) (int64, error) {
	var n int64
	for _, s := range f.snapshots {
		if s.FlightID == flightID {
			n++
		}
	}
	return n, nil
}

type fakeUserRepo struct {
	users  []entity.User
	nextID uint
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.nextID++
	user.UserID = f.nextID
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for i := range f.users {
		if strings.EqualFold(f.users[i].Email, email) {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

type fakePublisher struct {
	published []interface{}
	channels  []string
}

func (f *fakePublisher) Publish(_ context.Context, channel string, event interface{}) error {
	f.channels = append(f.channels, channel)
	f.published = append(f.published, event)
	return nil
}
