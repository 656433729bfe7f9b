package authorizenet

import (
	"encoding/xml"
	"fmt"
	"strconv"

	"shopflow-payment-api/models"
	"shopflow-payment-api/utils"
)

const transactionTypeAuthCapture = "authCaptureTransaction"

func buildAuthenticateRequest(auth merchantAuthenticationType) (string, error) {
	doc := authenticateTestRequest{
		Namespace:              schemaNamespace,
		MerchantAuthentication: auth,
	}
	return marshalRequest(doc)
}

func buildTransactionRequest(auth merchantAuthenticationType, req *models.PaymentRequest) (string, error) {
	items := make([]lineItemType, 0, len(req.LineItems))
	for _, line := range req.LineItems {
		items = append(items, lineItemType{
			ItemID:      line.ID,
			Name:        line.Name,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   utils.FormatAmount(line.UnitPrice),
		})
	}

	doc := createTransactionRequest{
		Namespace:              schemaNamespace,
		MerchantAuthentication: auth,
		TransactionRequest: transactionRequestType{
			TransactionType: transactionTypeAuthCapture,
			Amount:          utils.FormatAmount(req.Amount),
			Payment: paymentType{
				CreditCard: creditCardType{
					CardNumber:     req.CreditCard.CardNumber,
					ExpirationDate: req.CreditCard.ExpirationDate,
					CardCode:       req.CreditCard.CVV,
				},
			},
			Order: orderType{
				// The refId doubles as the invoice number.
				InvoiceNumber: req.RefID,
				Description:   req.OrderDescription,
			},
			LineItems: lineItemsType{LineItems: items},
			Customer:  customerType{ID: strconv.FormatInt(req.CustomerID, 10)},
			BillTo:    addressElement(req.BillingAddress),
			ShipTo:    addressElement(req.ShippingAddress),
		},
	}
	return marshalRequest(doc)
}

func addressElement(a models.Address) customerAddressType {
	return customerAddressType{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Company:   a.Company,
		Address:   a.Street,
		City:      a.City,
		State:     a.State,
		Zip:       a.Zip,
		Country:   a.Country,
	}
}

func marshalRequest(doc interface{}) (string, error) {
	out, err := xml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("error marshaling request: %v", err)
	}
	return xml.Header + string(out), nil
}
