package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the last-resort backend address when neither an explicit
// address nor the environment provides one.
const DefaultBaseURL = "http://localhost:8080"

const baseURLEnv = "CURIOUSDEVS_API_URL"

// ResolveBaseURL picks the backend address: explicit value, then the
// CURIOUSDEVS_API_URL environment variable, then the hard-coded fallback.
func ResolveBaseURL(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(baseURLEnv); env != "" {
		return env
	}
	return DefaultBaseURL
}

// TokenSource yields the current bearer token, empty when no session is
// active. It is consulted on every call so a token replaced or cleared
// mid-session takes effect immediately.
type TokenSource interface {
	Token() string
}

// Client is the one gateway every backend call goes through. It attaches
// the bearer token, speaks JSON both ways and folds non-success responses
// into APIError. No retries, no caching.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        zerolog.Logger
}

func NewClient(baseURL string, tokens TokenSource, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(ResolveBaseURL(baseURL), "/"),
		httpClient: &http.Client{},
		tokens:     tokens,
		log:        log,
	}
}

func (c *Client) call(ctx context.Context, method string, endpoint string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) apiError(resp *http.Response) error {
	message := http.StatusText(resp.StatusCode)

	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Message != "" {
			message = payload.Message
		} else if payload.Detail != "" {
			message = payload.Detail
		}
	}

	return &APIError{StatusCode: resp.StatusCode, Message: message}
}

// Auth endpoints. Login and signup report failure in the body with a 200
// status; the session store interprets those envelopes.

type LoginResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

func (c *Client) Login(ctx context.Context, email string, password string) (LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	err := c.call(ctx, http.MethodPost, "/auth/login", body, &result)
	return result, err
}

type SignupResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (c *Client) Signup(ctx context.Context, profile SignupProfile) (SignupResult, error) {
	var result SignupResult
	err := c.call(ctx, http.MethodPost, "/auth/signup", profile, &result)
	return result, err
}

func (c *Client) Logout(ctx context.Context) error {
	return c.call(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *Client) Me(ctx context.Context) (User, error) {
	var user User
	err := c.call(ctx, http.MethodGet, "/auth/me", nil, &user)
	return user, err
}

// Project endpoints.

func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var projects []Project
	err := c.call(ctx, http.MethodGet, "/project/all", nil, &projects)
	return projects, err
}

type ProjectResult struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Project Project `json:"project"`
}

func (c *Client) CreateProject(ctx context.Context, input CreateProjectInput) (ProjectResult, error) {
	var result ProjectResult
	err := c.call(ctx, http.MethodPost, "/project/create", input, &result)
	return result, err
}

func (c *Client) ProjectDetails(ctx context.Context, id string) (Project, error) {
	var project Project
	err := c.call(ctx, http.MethodGet, "/project/details/"+id, nil, &project)
	return project, err
}

func (c *Client) UpdateProject(ctx context.Context, id string, input UpdateProjectInput) (ProjectResult, error) {
	var result ProjectResult
	err := c.call(ctx, http.MethodPut, "/project/update/"+id, input, &result)
	return result, err
}

func (c *Client) SendProjectMessage(ctx context.Context, projectID string, message string) error {
	body := map[string]string{"project_id": projectID, "message": message}
	return c.call(ctx, http.MethodPost, "/project/message", body, nil)
}

func (c *Client) ProjectMessages(ctx context.Context, projectID string) ([]Message, error) {
	var messages []Message
	err := c.call(ctx, http.MethodGet, "/project/messages/"+projectID, nil, &messages)
	return messages, err
}

type PaymentResult struct {
	Status     string  `json:"status"`
	Message    string  `json:"message"`
	PaidAmount float64 `json:"paid_amount"`
}

func (c *Client) ProcessProjectPayment(ctx context.Context, projectID string) (PaymentResult, error) {
	var result PaymentResult
	err := c.call(ctx, http.MethodPost, "/project/payment/"+projectID, nil, &result)
	return result, err
}

// Lead, contact and newsletter endpoints; all but the lead list work
// without a session.

type StatusResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *Client) CreateLead(ctx context.Context, input CreateLeadInput) (StatusResult, error) {
	var result StatusResult
	err := c.call(ctx, http.MethodPost, "/lead/create", input, &result)
	return result, err
}

func (c *Client) Leads(ctx context.Context) ([]Lead, error) {
	var leads []Lead
	err := c.call(ctx, http.MethodGet, "/lead/all", nil, &leads)
	return leads, err
}

func (c *Client) CreateContactRequest(ctx context.Context, input CreateContactInput) (ContactRequest, error) {
	var contact ContactRequest
	err := c.call(ctx, http.MethodPost, "/contact", input, &contact)
	return contact, err
}

func (c *Client) ContactRequests(ctx context.Context) ([]ContactRequest, error) {
	var contacts []ContactRequest
	err := c.call(ctx, http.MethodGet, "/contact", nil, &contacts)
	return contacts, err
}

func (c *Client) SubscribeNewsletter(ctx context.Context, email string) (StatusResult, error) {
	body := map[string]string{"email": email}
	var result StatusResult
	err := c.call(ctx, http.MethodPost, "/newsletter/subscribe", body, &result)
	return result, err
}

// Bill endpoints.

func (c *Client) MyBills(ctx context.Context) ([]Bill, error) {
	var bills []Bill
	err := c.call(ctx, http.MethodGet, "/bill/my", nil, &bills)
	return bills, err
}

func (c *Client) AllBills(ctx context.Context) ([]Bill, error) {
	var bills []Bill
	err := c.call(ctx, http.MethodGet, "/bill/all", nil, &bills)
	return bills, err
}

type BillResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Bill    Bill   `json:"bill"`
}

func (c *Client) CreateBill(ctx context.Context, input CreateBillInput) (BillResult, error) {
	var result BillResult
	err := c.call(ctx, http.MethodPost, "/bill/create", input, &result)
	return result, err
}

func (c *Client) PayBill(ctx context.Context, billID string) (StatusResult, error) {
	var result StatusResult
	err := c.call(ctx, http.MethodPut, "/bill/payment/"+billID, nil, &result)
	return result, err
}
