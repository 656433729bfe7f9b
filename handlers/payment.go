package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"

	"shopflow-payment-api/models"
	"shopflow-payment-api/services/payment"
	"shopflow-payment-api/services/payment/authorizenet"
	"shopflow-payment-api/utils"
)

// ChargeRequest is the JSON body accepted by the charge endpoint.
type ChargeRequest struct {
	CustomerID       int64          `json:"customer_id"`
	OrderID          int64          `json:"order_id"`
	Amount           float64        `json:"amount"`
	OrderDescription string         `json:"order_description"`
	Card             ChargeCard     `json:"card"`
	Billing          models.Address `json:"billing"`
	Shipping         models.Address `json:"shipping"`
	Items            []ChargeItem   `json:"items"`
}

type ChargeCard struct {
	Number string `json:"number"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

type ChargeItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type PaymentHandler struct {
	gateway payment.Gateway
}

func NewPaymentHandler(gateway payment.Gateway) (*PaymentHandler, error) {
	if gateway == nil {
		return nil, fmt.Errorf("payment gateway is required")
	}
	return &PaymentHandler{gateway: gateway}, nil
}

// Charge processes a single authorize-and-capture transaction.
func (h *PaymentHandler) Charge(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	log.Printf("[RequestID: %s] Starting charge", requestID)

	var body ChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Printf("[RequestID: %s] Invalid request body: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	req := h.gateway.CreatePaymentRequest(body.CustomerID, body.OrderID, body.Amount)
	req.OrderDescription = body.OrderDescription
	req.AddCreditCard(body.Card.Number, body.Card.Expiry, body.Card.CVV)
	req.AddBillingAddress(body.Billing.FirstName, body.Billing.LastName, body.Billing.Company,
		body.Billing.Street, body.Billing.City, body.Billing.State, body.Billing.Zip, body.Billing.Country)
	req.AddShippingAddress(body.Shipping.FirstName, body.Shipping.LastName, body.Shipping.Company,
		body.Shipping.Street, body.Shipping.City, body.Shipping.State, body.Shipping.Zip, body.Shipping.Country)
	for _, item := range body.Items {
		req.AddLineItem(item.ID, item.Name, item.Description, item.Quantity, item.UnitPrice)
	}

	resp, err := h.gateway.ChargeCard(r.Context(), req)
	if err != nil {
		// Transport faults carry no gateway verdict; they are not declines.
		var transportErr *authorizenet.TransportError
		if errors.As(err, &transportErr) {
			log.Printf("[RequestID: %s] Gateway unreachable: %v", requestID, err)
			utils.SendErrorResponse(w, http.StatusBadGateway, "Payment gateway unreachable")
			return
		}
		log.Printf("[RequestID: %s] Charge error: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	log.Printf("[RequestID: %s] Charge finished for order %d: success=%v message=%q",
		requestID, body.OrderID, resp.Success, resp.Message)

	status := "success"
	if !resp.Success {
		status = "declined"
	}
	utils.SendSuccessResponse(w, models.APIResponse{
		Status:  status,
		Message: resp.Message,
		Data:    resp,
	})
}

// Authorize checks the configured merchant credentials against the gateway.
func (h *PaymentHandler) Authorize(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	log.Printf("[RequestID: %s] Starting credential check", requestID)

	resp, err := h.gateway.Authorize(r.Context())
	if err != nil {
		var transportErr *authorizenet.TransportError
		if errors.As(err, &transportErr) {
			log.Printf("[RequestID: %s] Gateway unreachable: %v", requestID, err)
			utils.SendErrorResponse(w, http.StatusBadGateway, "Payment gateway unreachable")
			return
		}
		log.Printf("[RequestID: %s] Authorization error: %v", requestID, err)
		utils.SendErrorResponse(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	status := "success"
	if !resp.Success {
		status = "declined"
	}
	utils.SendSuccessResponse(w, models.APIResponse{
		Status:  status,
		Message: resp.Message,
		Data:    resp,
	})
}
