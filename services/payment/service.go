package payment

import (
	"context"
	"log"

	"shopflow-payment-api/models"
	"shopflow-payment-api/services/payment/authorizenet"
)

// Service wraps the gateway client with call logging.
type Service struct {
	client *authorizenet.Client
}

func NewPaymentService(apiName, transactionKey string, liveMode bool) *Service {
	return &Service{
		client: authorizenet.NewClient(apiName, transactionKey, liveMode),
	}
}

// NewPaymentServiceWithClient is used by tests to inject a client with a
// fake transport.
func NewPaymentServiceWithClient(client *authorizenet.Client) *Service {
	return &Service{client: client}
}

func (s *Service) CreatePaymentRequest(customerID, orderID int64, amount float64) *models.PaymentRequest {
	return s.client.CreatePaymentRequest(customerID, orderID, amount)
}

// Authorize checks the merchant credentials against the gateway.
func (s *Service) Authorize(ctx context.Context) (*models.PaymentResponse, error) {
	resp, err := s.client.Authorize(ctx)
	if err != nil {
		log.Printf("Error authorizing with gateway: %v", err)
		return nil, err
	}
	if !resp.Success {
		log.Printf("Gateway authorization unsuccessful: %s", resp.Message)
	}
	return resp, nil
}

// ChargeCard submits an authorize-and-capture transaction for the request.
func (s *Service) ChargeCard(ctx context.Context, req *models.PaymentRequest) (*models.PaymentResponse, error) {
	log.Printf("Starting charge for ref ID: %s", req.RefID)

	resp, err := s.client.ChargeCard(ctx, req)
	if err != nil {
		log.Printf("Error processing charge for ref ID %s: %v", req.RefID, err)
		return nil, err
	}

	if !resp.Success {
		log.Printf("Charge unsuccessful for ref ID %s: %s", req.RefID, resp.Message)
		return resp, nil
	}

	log.Printf("Charge successful for ref ID: %s with transaction ID: %s",
		req.RefID, resp.TransactionID)
	return resp, nil
}
