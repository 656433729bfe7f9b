package payment

import (
	"context"

	"shopflow-payment-api/models"
)

// Gateway is the surface handlers depend on.
type Gateway interface {
	CreatePaymentRequest(customerID, orderID int64, amount float64) *models.PaymentRequest
	Authorize(ctx context.Context) (*models.PaymentResponse, error)
	ChargeCard(ctx context.Context, req *models.PaymentRequest) (*models.PaymentResponse, error)
}
