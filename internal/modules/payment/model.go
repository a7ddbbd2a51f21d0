package payment

// Authorization statuses.
const (
	StatusApproved = "approved"
	StatusDeclined = "declined"
)

// ProcessRequest is the payload to authorize a payment.
type ProcessRequest struct {
	OrderID  string         `json:"order_id"`
	Amount   float64        `json:"amount"`
	Method   string         `json:"method"`
	Metadata map[string]any `json:"payment_metadata,omitempty"`
}

// ProcessResult is the gateway's decision on an authorization attempt.
type ProcessResult struct {
	Status  string `json:"status"`
	TxID    string `json:"tx_id,omitempty"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}
