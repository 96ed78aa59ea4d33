package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/snoopapp/snoop-client/internal/logger"
	"github.com/snoopapp/snoop-client/internal/model"
)

// Fallback messages used when an error response carries no parsable
// detail field.
const (
	fallbackLogin    = "login failed"
	fallbackRegister = "registration failed"
	fallbackVerify   = "verification failed"
)

const dateLayout = "2006-01-02"

// Client implements model.Gateway over the backend's HTTP contract.
// Timeouts are the transport's responsibility; the client sets one on
// the underlying http.Client and defines no retry policy.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logger.Logger
}

// NewClient creates a gateway client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, l *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  l,
	}
}

// Login exchanges credentials for an access token via POST /token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := c.newRequest(ctx, http.MethodPost, "/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call token endpoint: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return "", model.NewAuthError(readDetail(resp.Body, fallbackLogin))
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	return body.AccessToken, nil
}

// Register submits a new-account request via POST /users.
func (c *Client) Register(ctx context.Context, name, email, password string) (model.User, error) {
	resp, err := c.postJSON(ctx, "/users", "", registerRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return model.User{}, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return model.User{}, model.NewAuthError(readDetail(resp.Body, fallbackRegister))
	}

	var body userResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.User{}, fmt.Errorf("failed to decode user response: %w", err)
	}

	return body.toModel(), nil
}

// Verify submits the one-time email code via POST /users/verify.
func (c *Client) Verify(ctx context.Context, email, code string) (string, error) {
	resp, err := c.postJSON(ctx, "/users/verify", "", verifyRequest{Email: email, Code: code})
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return "", model.NewAuthError(readDetail(resp.Body, fallbackVerify))
	}

	var body tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	return body.AccessToken, nil
}

// Me fetches the account snapshot for the token via GET /users/me.
func (c *Client) Me(ctx context.Context, token string) (model.User, error) {
	resp, err := c.getJSON(ctx, "/users/me", token)
	if err != nil {
		return model.User{}, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return model.User{}, fmt.Errorf("identity check rejected with status %d", resp.StatusCode)
	}

	var body userResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.User{}, fmt.Errorf("failed to decode user response: %w", err)
	}

	return body.toModel(), nil
}

// ListHabits fetches all habits owned by the user in Gateway order.
func (c *Client) ListHabits(ctx context.Context, token string) ([]model.Habit, error) {
	resp, err := c.getJSON(ctx, "/habits", token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, model.NewRepositoryError(readDetail(resp.Body, "failed to fetch habits"), nil)
	}

	var body []habitResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode habit list: %w", err)
	}

	habits := make([]model.Habit, 0, len(body))
	for _, h := range body {
		habits = append(habits, h.toModel())
	}

	return habits, nil
}

// CreateHabit creates a habit via POST /habits.
func (c *Client) CreateHabit(ctx context.Context, token, name, description string) (model.Habit, error) {
	resp, err := c.postJSON(ctx, "/habits", token, habitRequest{Name: name, Description: description})
	if err != nil {
		return model.Habit{}, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return model.Habit{}, model.NewRepositoryError(readDetail(resp.Body, "failed to create habit"), nil)
	}

	return decodeHabit(resp.Body)
}

// UpdateHabit replaces the two mutable fields via PUT /habits/{id}.
func (c *Client) UpdateHabit(ctx context.Context, token string, id int64, name, description string) (model.Habit, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPut, fmt.Sprintf("/habits/%d", id), token, habitRequest{Name: name, Description: description})
	if err != nil {
		return model.Habit{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return model.Habit{}, fmt.Errorf("failed to call habit update endpoint: %w", err)
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return model.Habit{}, model.NewRepositoryError(readDetail(resp.Body, "failed to update habit"), nil)
	}

	return decodeHabit(resp.Body)
}

// DeleteHabit deletes a habit via DELETE /habits/{id}. Success is an
// explicit 204 acknowledgment; anything else, including 2xx with a
// body, is reported as a failure so the caller never assumes a delete
// it cannot prove.
func (c *Client) DeleteHabit(ctx context.Context, token string, id int64) error {
	req, err := c.newRequest(ctx, http.MethodDelete, fmt.Sprintf("/habits/%d", id), nil)
	if err != nil {
		return err
	}
	setAuth(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call habit delete endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return model.NewRepositoryError(fmt.Sprintf("delete not acknowledged, status %d", resp.StatusCode), nil)
	}

	return nil
}

// ListRecords fetches completion records for a habit over the window
// via GET /habits/{id}/records.
func (c *Client) ListRecords(ctx context.Context, token string, habitID int64, window model.Window) ([]model.HabitRecord, error) {
	path := fmt.Sprintf("/habits/%d/records?start_date=%s&end_date=%s",
		habitID, window.Start.Format(dateLayout), window.End.Format(dateLayout))

	resp, err := c.getJSON(ctx, path, token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, model.NewRepositoryError(readDetail(resp.Body, "failed to fetch habit records"), nil)
	}

	var body []recordResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode record list: %w", err)
	}

	records := make([]model.HabitRecord, 0, len(body))
	for _, r := range body {
		rec, err := r.toModel()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// CreateRecord writes one completion record via POST /habits/{id}/records.
func (c *Client) CreateRecord(ctx context.Context, token string, habitID int64, date time.Time, status bool) (model.HabitRecord, error) {
	payload := recordRequest{HabitID: habitID, Date: date.Format(dateLayout), Status: status}

	resp, err := c.postJSON(ctx, fmt.Sprintf("/habits/%d/records", habitID), token, payload)
	if err != nil {
		return model.HabitRecord{}, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return model.HabitRecord{}, model.NewRepositoryError(readDetail(resp.Body, "failed to record completion"), nil)
	}

	var body recordResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.HabitRecord{}, fmt.Errorf("failed to decode record response: %w", err)
	}

	return body.toModel()
}

// CreateNotification attaches a reminder to a habit via POST /notifications.
func (c *Client) CreateNotification(ctx context.Context, token string, habitID int64, timeOfDay string) (model.Notification, error) {
	payload := notificationRequest{HabitID: habitID, Time: timeOfDay, Enabled: true}

	resp, err := c.postJSON(ctx, "/notifications", token, payload)
	if err != nil {
		return model.Notification{}, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return model.Notification{}, model.NewRepositoryError(readDetail(resp.Body, "failed to create notification"), nil)
	}

	var body notificationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.Notification{}, fmt.Errorf("failed to decode notification response: %w", err)
	}

	return body.toModel(), nil
}

// ListGoals fetches a habit's goals via GET /habits/{id}/goals.
func (c *Client) ListGoals(ctx context.Context, token string, habitID int64) ([]model.Goal, error) {
	resp, err := c.getJSON(ctx, fmt.Sprintf("/habits/%d/goals", habitID), token)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return nil, model.NewRepositoryError(readDetail(resp.Body, "failed to fetch goals"), nil)
	}

	var body []goalResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode goal list: %w", err)
	}

	goals := make([]model.Goal, 0, len(body))
	for _, g := range body {
		goal, err := g.toModel()
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, nil
}

// CreateGoal creates a target-count goal via POST /habits/{id}/goals.
func (c *Client) CreateGoal(ctx context.Context, token string, habitID int64, targetCount int, window model.Window) (model.Goal, error) {
	payload := goalRequest{
		TargetCount: targetCount,
		StartDate:   window.Start.Format(dateLayout),
		EndDate:     window.End.Format(dateLayout),
	}

	resp, err := c.postJSON(ctx, fmt.Sprintf("/habits/%d/goals", habitID), token, payload)
	if err != nil {
		return model.Goal{}, err
	}
	defer resp.Body.Close()

	if !is2xx(resp.StatusCode) {
		return model.Goal{}, model.NewRepositoryError(readDetail(resp.Body, "failed to create goal"), nil)
	}

	var body goalResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.Goal{}, fmt.Errorf("failed to decode goal response: %w", err)
	}

	return body.toModel()
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.logger.Debug("Gateway client: sending request",
		"method", method,
		"path", path,
		"request_id", requestID)

	return req, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, path, token string, payload any) (*http.Request, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	setAuth(req, token)

	return req, nil
}

func (c *Client) postJSON(ctx context.Context, path, token string, payload any) (*http.Response, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPost, path, token, payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", path, err)
	}

	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, path, token string) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	setAuth(req, token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", path, err)
	}

	return resp, nil
}

func setAuth(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

// readDetail extracts the server's detail message from an error body,
// falling back when the body is not parsable.
func readDetail(body io.Reader, fallback string) string {
	var e errorResponse
	if err := json.NewDecoder(body).Decode(&e); err != nil || e.Detail == "" {
		return fallback
	}

	return e.Detail
}

func decodeHabit(body io.Reader) (model.Habit, error) {
	var h habitResponse
	if err := json.NewDecoder(body).Decode(&h); err != nil {
		return model.Habit{}, fmt.Errorf("failed to decode habit response: %w", err)
	}

	return h.toModel(), nil
}
