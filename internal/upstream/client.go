package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"busbook/internal/domain"
	"busbook/internal/domain/models"
)

// Client talks to the remote booking API. All business logic (persistence,
// payment verification, authorization) lives behind it; this side only calls.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type LoginResult struct {
	Token    string
	Role     string
	UserID   string
	Username string
	Email    string
}

// Login exchanges credentials for a bearer token and role.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	resp, err := c.doJSON(ctx, http.MethodPost, "/auth/login", "", body)
	if err != nil {
		return LoginResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return LoginResult{}, domain.UnauthenticatedError{Msg: "invalid email or password"}
	}
	if err := checkStatus(resp, "/auth/login"); err != nil {
		return LoginResult{}, err
	}

	var p loginPayload
	if err := decodeBody(resp.Body, &p); err != nil {
		return LoginResult{}, domain.MalformedResponseError{Endpoint: "/auth/login", Err: err}
	}
	if err := p.validate(); err != nil {
		return LoginResult{}, domain.MalformedResponseError{Endpoint: "/auth/login", Err: err}
	}
	return LoginResult{
		Token:    p.Token,
		Role:     p.Role,
		UserID:   p.UserID.String(),
		Username: p.Username,
		Email:    p.Email,
	}, nil
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := c.doJSON(ctx, http.MethodPost, "/auth/add-new-user", "", req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp, "/auth/add-new-user")
}

// AllBuses lists buses from the public endpoint (no auth).
func (c *Client) AllBuses(ctx context.Context) ([]models.Bus, error) {
	resp, err := c.doJSON(ctx, http.MethodGet, "/public/get-all-bus", "", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, "/public/get-all-bus"); err != nil {
		return nil, err
	}

	var payloads []busPayload
	if err := decodeBody(resp.Body, &payloads); err != nil {
		return nil, domain.MalformedResponseError{Endpoint: "/public/get-all-bus", Err: err}
	}
	out := make([]models.Bus, 0, len(payloads))
	for _, p := range payloads {
		if err := p.validate(); err != nil {
			return nil, domain.MalformedResponseError{Endpoint: "/public/get-all-bus", Err: err}
		}
		bus, err := p.toModel()
		if err != nil {
			return nil, domain.MalformedResponseError{Endpoint: "/public/get-all-bus", Err: err}
		}
		out = append(out, bus)
	}
	return out, nil
}

func (c *Client) BusByID(ctx context.Context, token, busID string) (models.Bus, error) {
	path := "/adminuser/get-bus/" + url.PathEscape(busID)
	resp, err := c.doJSON(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return models.Bus{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Bus{}, domain.NotFoundError{Resource: "bus"}
	}
	if err := checkStatus(resp, path); err != nil {
		return models.Bus{}, err
	}

	var p busPayload
	if err := decodeBody(resp.Body, &p); err != nil {
		return models.Bus{}, domain.MalformedResponseError{Endpoint: path, Err: err}
	}
	if err := p.validate(); err != nil {
		return models.Bus{}, domain.MalformedResponseError{Endpoint: path, Err: err}
	}
	bus, err := p.toModel()
	if err != nil {
		return models.Bus{}, domain.MalformedResponseError{Endpoint: path, Err: err}
	}
	return bus, nil
}

// BusStops returns the stop list with cumulative fares for one bus.
func (c *Client) BusStops(ctx context.Context, token, busID string) ([]models.Stop, error) {
	path := "/adminuser/busStops/" + url.PathEscape(busID)
	resp, err := c.doJSON(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NotFoundError{Resource: "bus stops"}
	}
	if err := checkStatus(resp, path); err != nil {
		return nil, err
	}

	var payloads []stopPayload
	if err := decodeBody(resp.Body, &payloads); err != nil {
		return nil, domain.MalformedResponseError{Endpoint: path, Err: err}
	}
	out := make([]models.Stop, 0, len(payloads))
	for _, p := range payloads {
		stop, err := p.toModel()
		if err != nil {
			return nil, domain.MalformedResponseError{Endpoint: path, Err: err}
		}
		out = append(out, stop)
	}
	return out, nil
}

type CheckoutRequest struct {
	Amount        int64  `json:"amount"`
	Qty           int    `json:"qty"`
	BusID         string `json:"busId"`
	StartingPoint string `json:"startingPoint"`
	EndingPoint   string `json:"endingPoint"`
	UserID        string `json:"userId"`
}

// CreateCheckoutSession asks the payment endpoint for a hosted checkout
// session. Any transport or status failure is a payment initiation failure;
// the caller does not retry.
func (c *Client) CreateCheckoutSession(ctx context.Context, token string, req CheckoutRequest) (string, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/user/payment", token, req)
	if err != nil {
		return "", domain.PaymentError{Stage: domain.PaymentStageInitiation, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", domain.PaymentError{
			Stage: domain.PaymentStageInitiation,
			Err:   fmt.Errorf("upstream status %d", resp.StatusCode),
		}
	}

	var p sessionPayload
	if err := decodeBody(resp.Body, &p); err != nil {
		return "", domain.MalformedResponseError{Endpoint: "/user/payment", Err: err}
	}
	if err := p.validate(); err != nil {
		return "", domain.MalformedResponseError{Endpoint: "/user/payment", Err: err}
	}
	return p.SessionID, nil
}

// ConfirmBooking resolves the completed booking for a paid trip. The remote
// contract passes trip parameters as query values, not a body.
func (c *Client) ConfirmBooking(ctx context.Context, token, userID, busID, startPoint, destination string, qty int) (models.Ticket, error) {
	q := url.Values{}
	q.Set("userId", userID)
	q.Set("busId", busID)
	q.Set("startPoint", startPoint)
	q.Set("destination", destination)
	q.Set("ticket", strconv.Itoa(qty))
	path := "/user/booking-ticket?" + q.Encode()

	resp, err := c.doJSON(ctx, http.MethodPost, path, token, struct{}{})
	if err != nil {
		return models.Ticket{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return models.Ticket{}, domain.NotFoundError{Resource: "booking"}
	}
	if err := checkStatus(resp, "/user/booking-ticket"); err != nil {
		return models.Ticket{}, err
	}

	var p ticketPayload
	if err := decodeBody(resp.Body, &p); err != nil {
		return models.Ticket{}, domain.MalformedResponseError{Endpoint: "/user/booking-ticket", Err: err}
	}
	ticket, err := p.toModel()
	if err != nil {
		return models.Ticket{}, domain.MalformedResponseError{Endpoint: "/user/booking-ticket", Err: err}
	}
	return ticket, nil
}

// AddBus creates a bus. The remote admin endpoint accepts multipart form data.
func (c *Client) AddBus(ctx context.Context, token string, bus models.Bus) error {
	fields := map[string]string{
		"busId":       bus.BusID,
		"route":       bus.Route,
		"startPoint":  bus.StartPoint,
		"destination": bus.Destination,
		"totalFare":   strconv.FormatInt(bus.TotalFare, 10),
	}
	return c.postForm(ctx, "/admin/add-new-bus", token, fields)
}

func (c *Client) UpdateBus(ctx context.Context, token, busID string, bus models.Bus) error {
	path := "/admin/update/bus/" + url.PathEscape(busID)
	resp, err := c.doJSON(ctx, http.MethodPut, path, token, bus)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return domain.NotFoundError{Resource: "bus"}
	}
	return checkStatus(resp, path)
}

func (c *Client) DeleteBus(ctx context.Context, token, busID string) error {
	path := "/admin/delete/bus/" + url.PathEscape(busID)
	resp, err := c.doJSON(ctx, http.MethodDelete, path, token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return domain.NotFoundError{Resource: "bus"}
	}
	return checkStatus(resp, path)
}

// AddStop creates a stop for a bus. Multipart form, like bus creation.
func (c *Client) AddStop(ctx context.Context, token, busID, stopName string, fare int64) error {
	fields := map[string]string{
		"busId":    busID,
		"stopName": stopName,
		"fare":     strconv.FormatInt(fare, 10),
	}
	return c.postForm(ctx, "/admin/add-new-bus-stop", token, fields)
}

func (c *Client) UpdateStop(ctx context.Context, token string, stopID int64, busID string, stop models.Stop) error {
	path := "/admin/update/bus/stop/" + strconv.FormatInt(stopID, 10)
	body := map[string]any{
		"stopId":        stop.StopID,
		"stopName":      stop.StopName,
		"fareFromStart": stop.FareFromStart,
		"busId":         busID,
	}
	resp, err := c.doJSON(ctx, http.MethodPut, path, token, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return domain.NotFoundError{Resource: "bus stop"}
	}
	return checkStatus(resp, path)
}

func (c *Client) DeleteStop(ctx context.Context, token string, stopID int64) error {
	path := "/admin/bus/stop/delete/" + strconv.FormatInt(stopID, 10)
	resp, err := c.doJSON(ctx, http.MethodDelete, path, token, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return domain.NotFoundError{Resource: "bus stop"}
	}
	return checkStatus(resp, path)
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, domain.InternalError{Msg: "failed to encode request", Err: err}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to build request", Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, domain.InternalError{Msg: "upstream request failed", Err: err}
	}
	return resp, nil
}

func (c *Client) postForm(ctx context.Context, path, token string, fields map[string]string) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return domain.InternalError{Msg: "failed to encode form", Err: err}
		}
	}
	if err := mw.Close(); err != nil {
		return domain.InternalError{Msg: "failed to encode form", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, &buf)
	if err != nil {
		return domain.InternalError{Msg: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.InternalError{Msg: "upstream request failed", Err: err}
	}
	defer resp.Body.Close()
	return checkStatus(resp, path)
}

func checkStatus(resp *http.Response, endpoint string) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return domain.InternalError{
		Msg: fmt.Sprintf("upstream %s returned status %d", endpoint, resp.StatusCode),
		Err: fmt.Errorf("%s", strings.TrimSpace(string(snippet))),
	}
}

func decodeBody(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return dec.Decode(dst)
}
