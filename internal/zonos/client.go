package zonos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"zonos-storefront/internal/domain"
)

// credentialHeader carries the server-only vendor token. It must never be
// forwarded to or logged for storefront clients.
const credentialHeader = "credentialToken"

// Client issues typed requests to the vendor cart API. One round trip per
// call, no retries; callers decide whether to surface or recover.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     logrus.FieldLogger
}

func New(baseURL, token string, logger logrus.FieldLogger) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		baseURL:    baseURL,
		token:      token,
		logger:     logger,
	}
}

// WithHTTPClient overrides the transport, mainly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// APIError carries the vendor's error payload for a failed call.
type APIError struct {
	Operation string
	Status    int
	Errors    json.RawMessage
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("zonos %s: status %d: %s", e.Operation, e.Status, string(e.Errors))
	}
	return fmt.Sprintf("zonos %s: status %d", e.Operation, e.Status)
}

func (c *Client) CreateCart(ctx context.Context, req CreateCartRequest) (*CartResponse, error) {
	if req.Items == nil {
		req.Items = []CartItemInput{}
	}
	if req.Adjustments == nil {
		req.Adjustments = []domain.Adjustment{}
	}
	return c.do(ctx, opCartCreate, nil, req)
}

func (c *Client) UpdateCart(ctx context.Context, req UpdateCartRequest) (*CartResponse, error) {
	return c.do(ctx, opCartUpdate, nil, req)
}

func (c *Client) CartByID(ctx context.Context, id string) (*CartResponse, error) {
	return c.do(ctx, opCartByID(id), nil, nil)
}

// do executes one operation. GET requests send no body; any query values
// not bound into the path are appended to the URL.
func (c *Client) do(ctx context.Context, op operation, query url.Values, payload interface{}) (*CartResponse, error) {
	target := c.baseURL + op.path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var body io.Reader
	if op.method != http.MethodGet && payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrapf(err, "encode %s payload", op.name)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, op.method, target, body)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s request", op.name)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(credentialHeader, c.token)

	c.logger.WithFields(logrus.Fields{"op": op.name, "method": op.method}).Debug("zonos request")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s request failed", op.name)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s response", op.name)
	}

	var envelope struct {
		CartResponse
		Errors json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		if res.StatusCode < 200 || res.StatusCode > 299 {
			return nil, &APIError{Operation: op.name, Status: res.StatusCode, Errors: raw}
		}
		return nil, errors.Wrapf(err, "decode %s response", op.name)
	}
	if len(envelope.Errors) > 0 && string(envelope.Errors) != "null" {
		return nil, &APIError{Operation: op.name, Status: res.StatusCode, Errors: envelope.Errors}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &APIError{Operation: op.name, Status: res.StatusCode, Errors: raw}
	}

	return &envelope.CartResponse, nil
}
