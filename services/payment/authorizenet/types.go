package authorizenet

import "encoding/xml"

// schemaNamespace is declared as the default namespace on every request root,
// so all child elements inherit it.
const schemaNamespace = "AnetApi/xml/v1/schema/AnetApiSchema.xsd"

type merchantAuthenticationType struct {
	Name           string `xml:"name"`
	TransactionKey string `xml:"transactionKey"`
}

type authenticateTestRequest struct {
	XMLName                xml.Name                   `xml:"authenticateTestRequest"`
	Namespace              string                     `xml:"xmlns,attr"`
	MerchantAuthentication merchantAuthenticationType `xml:"merchantAuthentication"`
}

type creditCardType struct {
	CardNumber     string `xml:"cardNumber"`
	ExpirationDate string `xml:"expirationDate"`
	CardCode       string `xml:"cardCode"`
}

type paymentType struct {
	CreditCard creditCardType `xml:"creditCard"`
}

type orderType struct {
	InvoiceNumber string `xml:"invoiceNumber"`
	Description   string `xml:"description"`
}

type lineItemType struct {
	ItemID      string `xml:"itemId"`
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Quantity    int    `xml:"quantity"`
	UnitPrice   string `xml:"unitPrice"`
}

type lineItemsType struct {
	LineItems []lineItemType `xml:"lineItem"`
}

type customerType struct {
	ID string `xml:"id"`
}

type customerAddressType struct {
	FirstName string `xml:"firstName"`
	LastName  string `xml:"lastName"`
	Company   string `xml:"company"`
	Address   string `xml:"address"`
	City      string `xml:"city"`
	State     string `xml:"state"`
	Zip       string `xml:"zip"`
	Country   string `xml:"country"`
}

// transactionRequestType field order pins the wire element order, which the
// gateway treats as significant.
type transactionRequestType struct {
	TransactionType string              `xml:"transactionType"`
	Amount          string              `xml:"amount"`
	Payment         paymentType         `xml:"payment"`
	Order           orderType           `xml:"order"`
	LineItems       lineItemsType       `xml:"lineItems"`
	Customer        customerType        `xml:"customer"`
	BillTo          customerAddressType `xml:"billTo"`
	ShipTo          customerAddressType `xml:"shipTo"`
}

type createTransactionRequest struct {
	XMLName                xml.Name                   `xml:"createTransactionRequest"`
	Namespace              string                     `xml:"xmlns,attr"`
	MerchantAuthentication merchantAuthenticationType `xml:"merchantAuthentication"`
	TransactionRequest     transactionRequestType     `xml:"transactionRequest"`
}
