package authorizenet

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"shopflow-payment-api/models"
)

const (
	approvedMessage         = "This transaction has been approved."
	authorizeParseFailure   = "Unable to Parse XML"
	paymentParseFailure     = "Unable to Parse Payment XML"
	transactionParseFailure = "Unable to Parse XML as TransactionResponse"
)

// xmlNode is a minimal element tree: names, text and children only. The
// gateway returns structurally different documents depending on where a
// request failed, so responses are scanned by element name instead of being
// unmarshaled into a fixed schema.
type xmlNode struct {
	name     string
	text     string
	children []*xmlNode
}

// Text returns the element's character data without surrounding whitespace.
func (n *xmlNode) Text() string {
	return strings.TrimSpace(n.text)
}

// parseDocument reads a whole XML document into an element tree. The returned
// node is a synthetic document node whose first child is the root element.
func parseDocument(raw string) (*xmlNode, error) {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	doc := &xmlNode{}
	stack := []*xmlNode{doc}
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			node := &xmlNode{name: t.Name.Local}
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, node)
			stack = append(stack, node)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			current := stack[len(stack)-1]
			current.text += string(t)
		}
	}
	if len(doc.children) == 0 {
		return nil, fmt.Errorf("no root element found")
	}
	return doc, nil
}

// findFirst returns the first element with the given local name in document
// order, or nil.
func findFirst(n *xmlNode, name string) *xmlNode {
	for _, child := range n.children {
		if child.name == name {
			return child
		}
		if found := findFirst(child, name); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *xmlNode, name string) []*xmlNode {
	var found []*xmlNode
	for _, child := range n.children {
		if child.name == name {
			found = append(found, child)
		}
		found = append(found, findAll(child, name)...)
	}
	return found
}

// ParseAuthorizeResponse interprets the reply to an authenticateTestRequest.
// It never fails past this boundary: malformed or unrecognized documents
// become a generic AuthorizationFailure carrying the raw text.
func ParseAuthorizeResponse(raw string) *models.PaymentResponse {
	doc, err := parseDocument(raw)
	if err != nil {
		return models.NewAuthorizationFailure(authorizeParseFailure, raw)
	}

	if resultCode := findFirst(doc, "resultCode"); resultCode != nil {
		code := resultCode.Text()
		if code == "Ok" {
			resp := models.NewAuthorizationSuccess(code, raw)
			resp.ResponseCode = code
			return resp
		}
		for _, message := range findAll(doc, "message") {
			for _, child := range message.children {
				if child.name == "text" {
					return models.NewAuthorizationFailure(child.Text(), raw)
				}
			}
		}
	}
	return models.NewAuthorizationFailure(authorizeParseFailure, raw)
}

// ParsePaymentResponse interprets the reply to a createTransactionRequest.
// The gateway answers with a transactionResponse element when it attempted
// the transaction, and with a bare messages document when it rejected the
// request before processing; both shapes are handled here.
func ParsePaymentResponse(raw string) *models.PaymentResponse {
	doc, err := parseDocument(raw)
	if err != nil {
		return models.NewPaymentFailure(paymentParseFailure, raw)
	}

	if transactionResponse := findFirst(doc, "transactionResponse"); transactionResponse != nil {
		return parseTransactionResponse(raw, transactionResponse)
	}

	if message := findFirst(doc, "message"); message != nil {
		for _, child := range message.children {
			if child.name == "text" {
				return models.NewPaymentFailure(child.Text(), raw)
			}
		}
	}
	return models.NewPaymentFailure(paymentParseFailure, raw)
}

func parseTransactionResponse(raw string, transactionResponse *xmlNode) *models.PaymentResponse {
	// One pass over the direct children building a name-to-text map; when an
	// element repeats, the last occurrence wins. The errors block is the one
	// nested shape: errors/error/{errorCode,errorText}.
	fields := make(map[string]string, len(transactionResponse.children))
	var errorCode, errorText string
	for _, child := range transactionResponse.children {
		if child.name == "errors" {
			for _, errNode := range child.children {
				for _, el := range errNode.children {
					switch el.name {
					case "errorCode":
						errorCode = el.Text()
					case "errorText":
						errorText = el.Text()
					}
				}
			}
			continue
		}
		fields[child.name] = child.Text()
	}

	responseCode := fields["responseCode"]
	var resp *models.PaymentResponse
	switch {
	case responseCode == "1":
		resp = models.NewPaymentSuccess(approvedMessage, raw)
	case errorText != "":
		resp = models.NewPaymentFailure(errorText, raw)
	default:
		resp = models.NewPaymentFailure(transactionParseFailure, raw)
	}

	resp.ResponseCode = responseCode
	resp.ErrorCode = errorCode
	resp.AuthCode = fields["authCode"]
	resp.AVSResultCode = fields["avsResultCode"]
	resp.CAVVResultCode = fields["cavvResultCode"]
	resp.TransactionID = fields["transId"]
	resp.TransactionHash = fields["transHash"]
	resp.AccountNumber = fields["accountNumber"]
	resp.AccountType = fields["accountType"]
	return resp
}
