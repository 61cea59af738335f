package dto

// CostRequest is the order body: product id -> quantity. Values are left
// undecoded so quantities of unknown products are never inspected.
type CostRequest map[string]any

type CostResponse struct {
	Cost float64 `json:"cost"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
