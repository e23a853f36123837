package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"membership-gateway/internal/config"
	"membership-gateway/internal/domains/member"
)

// =====================================================
// REGISTRY CLIENT
// =====================================================
// Thin wrapper quanh registry REST API. Mỗi method = đúng một HTTP call,
// mọi failure đều ra *Error chuẩn hóa - caller không bao giờ thấy partial data.

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.RegistryConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Register submits a new member record.
// Trả về success message của backend ("Registration successful!").
func (c *Client) Register(ctx context.Context, m member.Member) (string, error) {
	var out struct {
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/register", nil, m, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Search queries members theo filter. Chỉ append param non-empty;
// caller phải đảm bảo filter có ít nhất một field trước khi gọi.
func (c *Client) Search(ctx context.Context, f member.SearchFilter) ([]member.Member, error) {
	params := url.Values{}
	if f.FirstName != "" {
		params.Set("searchFName", f.FirstName)
	}
	if f.LastName != "" {
		params.Set("searchLName", f.LastName)
	}
	if f.Email != "" {
		params.Set("searchEmail", f.Email)
	}
	if f.Phone != "" {
		params.Set("searchPhone", f.Phone)
	}

	var results []member.Member
	if err := c.do(ctx, http.MethodGet, "/api/members", params, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Update sends the mutable-field patch for one member
func (c *Client) Update(ctx context.Context, id string, p member.UpdatePatch) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPut, "/api/members/"+url.PathEscape(id), nil, p, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Delete removes one member by id
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/members/"+url.PathEscape(id), nil, nil, nil)
}

// AdminLogin exchanges credentials for an opaque token.
// Token không bao giờ được parse phía gateway; backend là trust boundary.
func (c *Client) AdminLogin(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var out struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/login", nil, body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

// Health pings the backend health endpoint
func (c *Client) Health(ctx context.Context) error {
	var out struct {
		Status string `json:"status"`
	}
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil, &out)
}

// do thực hiện một round-trip: marshal body, gọi backend, phân loại kết quả.
// Error path:
//   - network/body-read failure   -> KindTransport + MsgUnreachable
//   - non-2xx, parse được băng {error|message} -> KindServer, message verbatim
//   - non-2xx, body rác           -> KindServer, "HTTP error <status>"
//   - 2xx nhưng body không decode -> KindServer, không bao giờ trả data dở
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().
			Err(err).
			Str("method", method).
			Str("path", path).
			Msg("Registry request failed")
		return &Error{Kind: KindTransport, Message: MsgUnreachable}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error().
			Err(err).
			Str("method", method).
			Str("path", path).
			Msg("Registry response read failed")
		return &Error{Kind: KindTransport, Message: MsgUnreachable}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.serverError(method, path, resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			log.Error().
				Err(err).
				Str("method", method).
				Str("path", path).
				Int("status", resp.StatusCode).
				Msg("Registry success response has malformed body")
			return genericHTTPError(resp.StatusCode)
		}
	}

	return nil
}

// serverError lifts the backend's own {error|message} text when the body
// parses, otherwise falls back to a status-coded message
func (c *Client) serverError(method, path string, status int, body []byte) *Error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return &Error{Kind: KindServer, Status: status, Message: payload.Error}
		}
		if payload.Message != "" {
			return &Error{Kind: KindServer, Status: status, Message: payload.Message}
		}
	}

	log.Error().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Msg("Registry returned unparsable error body")
	return genericHTTPError(status)
}
