package models

// Field length limits enforced by the gateway on line item text fields.
const (
	MaxItemIDLength      = 31
	MaxItemNameLength    = 31
	MaxDescriptionLength = 255
)

type CreditCard struct {
	CardNumber     string `json:"card_number"`
	ExpirationDate string `json:"expiration_date"`
	CVV            string `json:"cvv"`
}

type LineItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Company   string `json:"company"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`
}

// PaymentRequest is the aggregate handed to the gateway client. It is owned
// by the caller for the duration of a single charge and is not retained
// afterwards. LineItems keep insertion order; that order becomes wire order.
type PaymentRequest struct {
	RefID            string     `json:"ref_id"`
	CustomerID       int64      `json:"customer_id"`
	Amount           float64    `json:"amount"`
	OrderDescription string     `json:"order_description"`
	CreditCard       CreditCard `json:"credit_card"`
	BillingAddress   Address    `json:"billing_address"`
	ShippingAddress  Address    `json:"shipping_address"`
	LineItems        []LineItem `json:"line_items"`
}

func (p *PaymentRequest) AddCreditCard(cardNumber, expirationDate, cvv string) {
	p.CreditCard = CreditCard{
		CardNumber:     cardNumber,
		ExpirationDate: expirationDate,
		CVV:            cvv,
	}
}

func (p *PaymentRequest) AddBillingAddress(firstName, lastName, company, street, city, state, zip, country string) {
	p.BillingAddress = Address{
		FirstName: firstName,
		LastName:  lastName,
		Company:   company,
		Street:    street,
		City:      city,
		State:     state,
		Zip:       zip,
		Country:   country,
	}
}

func (p *PaymentRequest) AddShippingAddress(firstName, lastName, company, street, city, state, zip, country string) {
	p.ShippingAddress = Address{
		FirstName: firstName,
		LastName:  lastName,
		Company:   company,
		Street:    street,
		City:      city,
		State:     state,
		Zip:       zip,
		Country:   country,
	}
}

// AddLineItem appends a line item, silently truncating text fields to the
// gateway's limits. The truncated item is returned.
func (p *PaymentRequest) AddLineItem(id, name, description string, quantity int, unitPrice float64) LineItem {
	item := LineItem{
		ID:          truncate(id, MaxItemIDLength),
		Name:        truncate(name, MaxItemNameLength),
		Description: truncate(description, MaxDescriptionLength),
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}
	p.LineItems = append(p.LineItems, item)
	return item
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
