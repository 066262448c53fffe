package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Task mirrors the server's task resource.
type Task struct {
	ID          int64      `json:"id"`
	UserID      int64      `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Document mirrors the server's document resource.
type Document struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	DocumentType string    `json:"document_type"`
	FileName     string    `json:"file_name"`
	FilePath     string    `json:"file_path"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile mirrors the server's user resource.
type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// APIError is a non-2xx response from the portal.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("portal: %d %s", e.StatusCode, e.Message)
}

// Client talks to the portal REST API. The session is attached per client,
// not shared through package state.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

func NewClient(baseURL string, session *Session) *Client {
	if session == nil {
		session = NewSession()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		session:    session,
	}
}

func (c *Client) Session() *Session {
	return c.session
}

// Login authenticates and stores the tokens in the session, then resolves
// the caller's profile so the session knows its user id.
func (c *Client) Login(ctx context.Context, email, password string) error {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})

	var tokens tokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body), "application/json", &tokens); err != nil {
		return err
	}
	c.session.Set(tokens.AccessToken, tokens.RefreshToken, 0)

	profile, err := c.FetchProfile(ctx)
	if err != nil {
		c.session.Clear()
		return err
	}
	c.session.Set(tokens.AccessToken, tokens.RefreshToken, profile.ID)
	return nil
}

// Logout invalidates the session client-side after telling the server.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, "", nil)
	c.session.Clear()
	return err
}

func (c *Client) FetchProfile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/api/v1/users/profile", nil, "", &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// FetchTasks returns the caller's tasks in server order.
func (c *Client) FetchTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/api/v1/tasks", nil, "", &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// UpdateTask sends the desired completion flag for one task and returns the
// server's view of the record.
func (c *Client) UpdateTask(ctx context.Context, taskID int64, isCompleted bool) (*Task, error) {
	body, _ := json.Marshal(map[string]bool{"is_completed": isCompleted})

	var t Task
	path := fmt.Sprintf("/api/v1/tasks/%d", taskID)
	if err := c.do(ctx, http.MethodPut, path, bytes.NewReader(body), "application/json", &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ListDocuments returns the caller's documents in upload order.
func (c *Client) ListDocuments(ctx context.Context) ([]Document, error) {
	var docs []Document
	if err := c.do(ctx, http.MethodGet, "/api/v1/documents", nil, "", &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// UploadDocument streams one file as a multipart request. fileName is the
// client-side name; the server assigns its own stored name.
func (c *Client) UploadDocument(ctx context.Context, documentType, fileName string, content io.Reader) (*Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("documentType", documentType); err != nil {
		return nil, fmt.Errorf("portal: write field: %w", err)
	}
	part, err := mw.CreateFormFile("document", fileName)
	if err != nil {
		return nil, fmt.Errorf("portal: create form file: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("portal: copy file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("portal: close multipart: %w", err)
	}

	var doc Document
	if err := c.do(ctx, http.MethodPost, "/api/v1/documents", &buf, mw.FormDataContentType(), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("portal: build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("portal: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.apiError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("portal: decode response: %w", err)
	}
	return nil
}

func (c *Client) apiError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	// The server writes either {"message": ...} or {"error": {"message": ...}}.
	var body struct {
		Message string `json:"message"`
		Error   struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	_ = json.Unmarshal(raw, &body)
	switch {
	case body.Message != "":
		apiErr.Message = body.Message
	case body.Error.Message != "":
		apiErr.Message = body.Error.Message
	default:
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
