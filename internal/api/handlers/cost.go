package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"route-cost-service/internal/api/dto"
	"route-cost-service/internal/domain"
	"route-cost-service/internal/platform/obs"

	"go.uber.org/zap"
)

const maxOrderBytes = 1 << 20

// Quoter prices a single order.
type Quoter interface {
	HasProduct(id string) bool
	Quote(ctx context.Context, order domain.Order) (domain.RouteQuote, error)
}

type CostHandler struct {
	Quotes Quoter
}

// Calculate decodes a product->quantity order and responds with the minimum
// route cost. A missing or empty payload is a client error ({} is a valid
// empty order); every other failure is reported as a 500 carrying the error
// text.
func (h *CostHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxOrderBytes))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if len(bytes.TrimSpace(body)) == 0 {
		writeError(w, r, http.StatusBadRequest, "No order data provided")
		return
	}

	var payload any
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&payload); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.fail(w, r, errors.New("body must contain only one JSON value"))
		return
	}

	if emptyPayload(payload) {
		writeError(w, r, http.StatusBadRequest, "No order data provided")
		return
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		h.fail(w, r, fmt.Errorf("order must be a JSON object, got %s", jsonKind(payload)))
		return
	}
	order, err := h.orderFrom(dto.CostRequest(obj))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	quote, err := h.Quotes.Quote(r.Context(), order)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.CostResponse{Cost: quote.Cost.InexactFloat64()})
}

// orderFrom keeps the known products of req. Unknown ids are dropped before
// their quantity is looked at; a known product must carry a number.
func (h *CostHandler) orderFrom(req dto.CostRequest) (domain.Order, error) {
	order := make(domain.Order, len(req))
	for id, v := range req {
		if !h.Quotes.HasProduct(id) {
			continue
		}
		n, ok := v.(json.Number)
		if !ok {
			return nil, fmt.Errorf("quantity of product %q must be a number, got %s", id, jsonKind(v))
		}
		qty, err := n.Float64()
		if err != nil {
			return nil, fmt.Errorf("quantity of product %q: %w", id, err)
		}
		order[id] = qty
	}
	return order, nil
}

// emptyPayload reports JSON values that carry no order: null, false, 0, ""
// and []. An empty object is not included; it is an order with no lines.
func emptyPayload(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case string:
		return x == ""
	case json.Number:
		f, err := x.Float64()
		return err == nil && f == 0
	case []any:
		return len(x) == 0
	}
	return false
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

func (h *CostHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	obs.Logger(r.Context()).Error("calculate cost failed", zap.Error(err))
	writeError(w, r, http.StatusInternalServerError, err.Error())
}
