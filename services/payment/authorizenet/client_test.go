package authorizenet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopflow-payment-api/models"
)

type postCall struct {
	url  string
	body string
}

type fakeTransport struct {
	calls    []postCall
	response string
	err      error
}

func (f *fakeTransport) Post(ctx context.Context, url, body string) (string, error) {
	f.calls = append(f.calls, postCall{url: url, body: body})
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestNewClient_EndpointSelection(t *testing.T) {
	sandbox := NewClient("name", "key", false)
	assert.Equal(t, SandboxEndpoint, sandbox.Endpoint())

	live := NewClient("name", "key", true)
	assert.Equal(t, ProductionEndpoint, live.Endpoint())
}

func TestCreatePaymentRequest(t *testing.T) {
	client := NewClient("name", "key", false)
	req := client.CreatePaymentRequest(77, 555, 1.10)

	assert.Equal(t, "555", req.RefID)
	assert.Equal(t, int64(77), req.CustomerID)
	assert.Equal(t, 1.10, req.Amount)
	assert.Empty(t, req.LineItems)
}

func TestChargeCard_ValidationShortCircuitsBeforeTransport(t *testing.T) {
	transport := &fakeTransport{response: paymentApprovedXML}
	client := NewClientWithTransport("name", "key", false, transport)

	req := client.CreatePaymentRequest(77, 555, 0)
	resp, err := client.ChargeCard(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, models.KindPaymentFailure, resp.Kind)
	assert.Equal(t, "Invalid amount provided", resp.Message)
	assert.Empty(t, resp.RawResponse)
	assert.Empty(t, transport.calls, "transport must not be invoked for invalid requests")
}

func TestChargeCard_PostsOnceAndParsesOutcome(t *testing.T) {
	transport := &fakeTransport{response: paymentApprovedXML}
	client := NewClientWithTransport("name", "key", false, transport)

	req := validChargeRequest()
	resp, err := client.ChargeCard(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, transport.calls, 1)
	assert.Equal(t, SandboxEndpoint, transport.calls[0].url)
	assert.True(t, strings.Contains(transport.calls[0].body, "<createTransactionRequest"))
	assert.True(t, strings.Contains(transport.calls[0].body, "<transactionKey>key</transactionKey>"))

	assert.True(t, resp.Success)
	assert.Equal(t, "40000001", resp.TransactionID)
}

func TestChargeCard_TransportErrorIsNotAnOutcome(t *testing.T) {
	transportErr := &TransportError{Err: fmt.Errorf("connection refused")}
	transport := &fakeTransport{err: transportErr}
	client := NewClientWithTransport("name", "key", false, transport)

	resp, err := client.ChargeCard(context.Background(), validChargeRequest())

	require.Error(t, err)
	assert.Nil(t, resp)

	var te *TransportError
	assert.True(t, errors.As(err, &te))
}

func TestAuthorize_PostsAuthenticateRequest(t *testing.T) {
	transport := &fakeTransport{response: authorizeOkXML}
	client := NewClientWithTransport("name", "key", false, transport)

	resp, err := client.Authorize(context.Background())

	require.NoError(t, err)
	require.Len(t, transport.calls, 1)
	assert.True(t, strings.Contains(transport.calls[0].body, "<authenticateTestRequest"))

	assert.Equal(t, models.KindAuthorizationSuccess, resp.Kind)
	assert.Equal(t, "Ok", resp.ResponseCode)
}

func TestAuthorize_TransportErrorPropagates(t *testing.T) {
	transport := &fakeTransport{err: &TransportError{Err: fmt.Errorf("timeout")}}
	client := NewClientWithTransport("name", "key", false, transport)

	resp, err := client.Authorize(context.Background())

	require.Error(t, err)
	assert.Nil(t, resp)
}
