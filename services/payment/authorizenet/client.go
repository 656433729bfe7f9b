package authorizenet

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"shopflow-payment-api/models"
)

const (
	SandboxEndpoint    = "https://apitest.authorize.net/xml/v1/request.api"
	ProductionEndpoint = "https://api.authorize.net/xml/v1/request.api"
	RequestTimeout     = 30 * time.Second
)

// TransportError reports a failure to complete the HTTP round trip. There is
// no gateway payload to interpret, so it is surfaced as an error rather than
// being converted into a payment outcome.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("authorize.net transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Transport posts a raw XML payload and returns the raw response body.
// Timeouts and cancellation ride on the context.
type Transport interface {
	Post(ctx context.Context, url, body string) (string, error)
}

type httpTransport struct {
	client *http.Client
}

func newHTTPTransport() *httpTransport {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		MaxConnsPerHost:     100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &httpTransport{
		client: &http.Client{
			Timeout:   RequestTimeout,
			Transport: transport,
		},
	}
}

func (t *httpTransport) Post(ctx context.Context, url, body string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(body))
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("error creating request: %v", err)}
	}
	req.Header.Set("Content-Type", "text/xml")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("error making request: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Err: fmt.Errorf("error reading response body: %v", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &TransportError{Err: fmt.Errorf("gateway returned status %d", resp.StatusCode)}
	}

	// The gateway prefixes responses with a UTF-8 BOM.
	return strings.TrimPrefix(string(respBody), "\ufeff"), nil
}

// Client talks to the Authorize.Net XML transaction API. Credentials and the
// resolved endpoint are fixed at construction, so a single Client may be used
// by concurrent callers as long as each call gets its own PaymentRequest.
type Client struct {
	apiName        string
	transactionKey string
	endpoint       string
	transport      Transport
}

func NewClient(apiName, transactionKey string, liveMode bool) *Client {
	return NewClientWithTransport(apiName, transactionKey, liveMode, newHTTPTransport())
}

// NewClientWithTransport builds a Client around a caller-supplied transport.
func NewClientWithTransport(apiName, transactionKey string, liveMode bool, transport Transport) *Client {
	endpoint := SandboxEndpoint
	if liveMode {
		endpoint = ProductionEndpoint
	}
	return &Client{
		apiName:        apiName,
		transactionKey: transactionKey,
		endpoint:       endpoint,
		transport:      transport,
	}
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) merchantAuthentication() merchantAuthenticationType {
	return merchantAuthenticationType{
		Name:           c.apiName,
		TransactionKey: c.transactionKey,
	}
}

// CreatePaymentRequest starts a payment request for the given customer and
// order. The order id becomes the refId echoed back by the gateway.
func (c *Client) CreatePaymentRequest(customerID, orderID int64, amount float64) *models.PaymentRequest {
	return &models.PaymentRequest{
		RefID:      strconv.FormatInt(orderID, 10),
		CustomerID: customerID,
		Amount:     amount,
	}
}

// Authorize performs a credential check with no monetary transaction.
func (c *Client) Authorize(ctx context.Context) (*models.PaymentResponse, error) {
	payload, err := buildAuthenticateRequest(c.merchantAuthentication())
	if err != nil {
		return nil, fmt.Errorf("error building authenticate request: %v", err)
	}

	raw, err := c.transport.Post(ctx, c.endpoint, payload)
	if err != nil {
		return nil, err
	}
	return ParseAuthorizeResponse(raw), nil
}

// ChargeCard validates the request, submits an authCaptureTransaction and
// parses the outcome. A validation failure returns a PaymentFailure without
// touching the network; a transport failure returns an error instead of an
// outcome.
func (c *Client) ChargeCard(ctx context.Context, req *models.PaymentRequest) (*models.PaymentResponse, error) {
	if err := validateRequest(req); err != nil {
		return models.NewPaymentFailure(err.Error(), ""), nil
	}

	payload, err := buildTransactionRequest(c.merchantAuthentication(), req)
	if err != nil {
		return nil, fmt.Errorf("error building transaction request: %v", err)
	}

	raw, err := c.transport.Post(ctx, c.endpoint, payload)
	if err != nil {
		return nil, err
	}
	return ParsePaymentResponse(raw), nil
}
