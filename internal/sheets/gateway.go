// Package sheets submits finished orders to a spreadsheet-backed recording
// endpoint (a Google Apps Script web app). The integration is best-effort:
// one POST per order, no retry, no delivery confirmation.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"zouqly-storefront/internal/domain"
)

// rowPayload mirrors the spreadsheet columns, one flat object per order.
type rowPayload struct {
	FullName       string `json:"Full Name"`
	Email          string `json:"Email"`
	Phone          string `json:"Phone"`
	Address        string `json:"Address"`
	City           string `json:"City"`
	State          string `json:"State"`
	Pincode        string `json:"Pincode"`
	Location       string `json:"Location"`
	Notes          string `json:"Notes"`
	Items          string `json:"Items"`
	Subtotal       int64  `json:"Subtotal"`
	DeliveryCharge int64  `json:"Delivery Charge"`
	Total          int64  `json:"Total"`
	OrderDate      string `json:"Order Date"`
}

type Gateway struct {
	url    string
	client *http.Client
	logger *log.Logger
	loc    *time.Location
}

// New builds a Gateway. An empty url is valid and puts the gateway in
// degraded mode: submissions are logged and reported as successful without
// any network call.
func New(url string, logger *log.Logger) *Gateway {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		loc = time.FixedZone("IST", 5*3600+1800)
	}
	return &Gateway{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
		logger: logger,
		loc:    loc,
	}
}

// Configured reports whether an endpoint URL is set.
func (g *Gateway) Configured() bool {
	return g.url != ""
}

// Submit sends one order to the recording endpoint.
//
// Contract: with no endpoint configured, the attempt is logged and Submit
// returns nil — the order counts as placed even though nothing was sent.
// With an endpoint configured, the response is deliberately not inspected;
// the endpoint gives no readable answer to browser clients, so "sent"
// is the strongest signal available and is treated as success. Only a
// failure to build or transport the request surfaces as an error.
func (g *Gateway) Submit(ctx context.Context, order domain.OrderRecord) error {
	payload := g.payloadFor(order)

	if g.url == "" {
		g.logger.Printf("sheets url not configured, order from %q (total %d) not transmitted", payload.FullName, payload.Total)
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("send order: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	g.logger.Printf("order from %q sent to sheets endpoint", payload.FullName)
	return nil
}

func (g *Gateway) payloadFor(order domain.OrderRecord) rowPayload {
	return rowPayload{
		FullName:       order.Form.FullName,
		Email:          order.Form.Email,
		Phone:          order.Form.Phone,
		Address:        order.Form.Address,
		City:           order.Form.City,
		State:          order.Form.State,
		Pincode:        order.Form.Pincode,
		Location:       string(order.Form.Tier),
		Notes:          order.Form.Notes,
		Items:          itemsSummary(order.Items),
		Subtotal:       order.Subtotal,
		DeliveryCharge: order.DeliveryCharge,
		Total:          order.Total,
		OrderDate:      order.PlacedAt.In(g.loc).Format("2 Jan 2006, 3:04 pm"),
	}
}

// itemsSummary flattens order lines into the single human-readable column:
// "<name> (<qty>x <weight>) - ₹<lineTotal>" joined by "; ".
func itemsSummary(items []domain.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (%dx %s) - ₹%d", it.Name, it.Quantity, it.Weight, it.Price*int64(it.Quantity)))
	}
	return strings.Join(parts, "; ")
}
