package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"busbook/internal/domain"
	"busbook/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func busModel(id, route string, fare int64) models.Bus {
	return models.Bus{BusID: id, Route: route, StartPoint: "A", Destination: "C", TotalFare: fare}
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second), srv
}

func TestLoginParsesTokenAndRole(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])
		_ = json.NewEncoder(w).Encode(map[string]any{
			"token":    "tok-abc",
			"role":     "USER",
			"userId":   7,
			"username": "tester",
			"email":    "user@example.com",
		})
	})

	client, _ := newTestClient(t, mux)
	res, err := client.Login(context.Background(), "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", res.Token)
	assert.Equal(t, "USER", res.Role)
	assert.Equal(t, "7", res.UserID)
}

func TestLoginBadCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	client, _ := newTestClient(t, mux)
	_, err := client.Login(context.Background(), "user@example.com", "wrong")
	assert.True(t, domain.IsUnauthenticated(err), "expected Unauthenticated, got %v", err)
}

func TestLoginMalformedBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		// token missing: must fail schema validation, not return zero values
		_ = json.NewEncoder(w).Encode(map[string]any{"role": "USER"})
	})

	client, _ := newTestClient(t, mux)
	_, err := client.Login(context.Background(), "user@example.com", "secret")
	assert.True(t, domain.IsMalformedResponse(err), "expected MalformedResponse, got %v", err)
}

func TestBusStopsDecodeAndValidate(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/adminuser/busStops/BUS1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"stopId": 1, "stopName": "A", "fareFromStart": 0},
			{"stopId": 2, "stopName": "B", "fareFromStart": 50},
		})
	})

	client, _ := newTestClient(t, mux)
	stops, err := client.BusStops(context.Background(), "tok", "BUS1")
	require.NoError(t, err)
	require.Len(t, stops, 2)
	assert.Equal(t, "B", stops[1].StopName)
	assert.EqualValues(t, 50, stops[1].FareFromStart)
}

func TestBusStopsRejectsNegativeFare(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/adminuser/busStops/BUS1", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"stopId": 1, "stopName": "A", "fareFromStart": -5},
		})
	})

	client, _ := newTestClient(t, mux)
	_, err := client.BusStops(context.Background(), "tok", "BUS1")
	assert.True(t, domain.IsMalformedResponse(err), "expected MalformedResponse, got %v", err)
}

func TestCreateCheckoutSessionPassesBodyThrough(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/payment", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.EqualValues(t, 120, body["amount"])
		assert.EqualValues(t, 2, body["qty"])
		assert.Equal(t, "A", body["startingPoint"])
		_ = json.NewEncoder(w).Encode(map[string]string{"sessionId": "sess_42"})
	})

	client, _ := newTestClient(t, mux)
	id, err := client.CreateCheckoutSession(context.Background(), "tok", CheckoutRequest{
		Amount: 120, Qty: 2, BusID: "BUS1", StartingPoint: "A", EndingPoint: "C", UserID: "7",
	})
	require.NoError(t, err)
	assert.Equal(t, "sess_42", id)
}

func TestCreateCheckoutSessionUpstreamFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/payment", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client, _ := newTestClient(t, mux)
	_, err := client.CreateCheckoutSession(context.Background(), "tok", CheckoutRequest{Amount: 120, Qty: 1})
	assert.True(t, domain.IsPayment(err), "expected PaymentError, got %v", err)
}

func TestConfirmBookingSendsTripAsQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/booking-ticket", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "7", q.Get("userId"))
		assert.Equal(t, "BUS1", q.Get("busId"))
		assert.Equal(t, "A", q.Get("startPoint"))
		assert.Equal(t, "C", q.Get("destination"))
		assert.Equal(t, "2", q.Get("ticket"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"bookingId":   100,
			"name":        "Tester",
			"source":      "A",
			"destination": "C",
			"bookingDate": "2026-08-28",
			"bookingTime": "10:00",
			"qty":         2,
			"fare":        240,
		})
	})

	client, _ := newTestClient(t, mux)
	ticket, err := client.ConfirmBooking(context.Background(), "tok", "7", "BUS1", "A", "C", 2)
	require.NoError(t, err)
	assert.Equal(t, "100", ticket.BookingID)
	assert.EqualValues(t, 240, ticket.Fare)
	assert.Equal(t, 2, ticket.Qty)
}

func TestConfirmBookingNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/user/booking-ticket", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client, _ := newTestClient(t, mux)
	_, err := client.ConfirmBooking(context.Background(), "tok", "7", "BUS1", "A", "C", 2)
	assert.True(t, domain.IsNotFound(err), "expected NotFound, got %v", err)
}

func TestAddBusSendsMultipartForm(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/admin/add-new-bus", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "BUS1", r.FormValue("busId"))
		assert.Equal(t, "A-C Express", r.FormValue("route"))
		assert.Equal(t, "120", r.FormValue("totalFare"))
		w.WriteHeader(http.StatusCreated)
	})

	client, _ := newTestClient(t, mux)
	err := client.AddBus(context.Background(), "tok", busModel("BUS1", "A-C Express", 120))
	require.NoError(t, err)
}
