package models

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ResponseKind tags the four payment outcome variants. Success is fixed per
// kind and set only by the constructors below.
type ResponseKind string

const (
	KindAuthorizationSuccess ResponseKind = "authorization_success"
	KindAuthorizationFailure ResponseKind = "authorization_failure"
	KindPaymentSuccess       ResponseKind = "payment_success"
	KindPaymentFailure       ResponseKind = "payment_failure"
)

// PaymentResponse is the typed outcome of an authorize or charge call.
// Instances are built by the response parser (or by validation short-circuit)
// and are not mutated after being returned.
type PaymentResponse struct {
	Kind         ResponseKind `json:"kind"`
	Success      bool         `json:"success"`
	Message      string       `json:"message"`
	RawResponse  string       `json:"raw_response,omitempty"`
	ResponseCode string       `json:"response_code,omitempty"`
	ErrorCode    string       `json:"error_code,omitempty"`

	// Transaction metadata, empty unless present in the gateway response.
	AuthCode        string `json:"auth_code,omitempty"`
	AVSResultCode   string `json:"avs_result_code,omitempty"`
	CAVVResultCode  string `json:"cavv_result_code,omitempty"`
	TransactionID   string `json:"transaction_id,omitempty"`
	TransactionHash string `json:"transaction_hash,omitempty"`
	AccountNumber   string `json:"account_number,omitempty"`
	AccountType     string `json:"account_type,omitempty"`
}

func NewAuthorizationSuccess(message, rawResponse string) *PaymentResponse {
	return &PaymentResponse{
		Kind:        KindAuthorizationSuccess,
		Success:     true,
		Message:     message,
		RawResponse: rawResponse,
	}
}

func NewAuthorizationFailure(message, rawResponse string) *PaymentResponse {
	return &PaymentResponse{
		Kind:        KindAuthorizationFailure,
		Success:     false,
		Message:     message,
		RawResponse: rawResponse,
	}
}

func NewPaymentSuccess(message, rawResponse string) *PaymentResponse {
	return &PaymentResponse{
		Kind:        KindPaymentSuccess,
		Success:     true,
		Message:     message,
		RawResponse: rawResponse,
	}
}

func NewPaymentFailure(message, rawResponse string) *PaymentResponse {
	return &PaymentResponse{
		Kind:        KindPaymentFailure,
		Success:     false,
		Message:     message,
		RawResponse: rawResponse,
	}
}
