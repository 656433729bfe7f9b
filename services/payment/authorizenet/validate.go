package authorizenet

import (
	"errors"

	"shopflow-payment-api/models"
)

// Pre-flight rule texts. The gateway never sees a request that fails one of
// these; the text becomes the PaymentFailure message verbatim.
var (
	errInvalidAmount     = errors.New("Invalid amount provided")
	errNoLineItems       = errors.New("No line items provided.")
	errNoCardNumber      = errors.New("No credit card number provided.")
	errNoExpiration      = errors.New("No expiration date provided.")
	errInvalidExpiration = errors.New("Invalid expiration date provided.")
	errNoCVV             = errors.New("No cvv provided.")
	errInvalidCVV        = errors.New("Invalid cvv provided.")
)

// validateRequest runs the pre-flight checks in a fixed order and stops at
// the first failure, so callers always get a deterministic message.
func validateRequest(req *models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errInvalidAmount
	}
	if len(req.LineItems) == 0 {
		return errNoLineItems
	}
	card := req.CreditCard
	if card.CardNumber == "" {
		return errNoCardNumber
	}
	if card.ExpirationDate == "" {
		return errNoExpiration
	}
	if len(card.ExpirationDate) < 4 {
		return errInvalidExpiration
	}
	if card.CVV == "" {
		return errNoCVV
	}
	if len(card.CVV) < 3 {
		return errInvalidCVV
	}
	if len(card.CVV) > 4 {
		return errInvalidCVV
	}
	return nil
}
