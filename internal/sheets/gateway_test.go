package sheets

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"zouqly-storefront/internal/domain"
)

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func sampleOrder() domain.OrderRecord {
	return domain.OrderRecord{
		Form: domain.OrderForm{
			FullName: "Asha Rao",
			Email:    "asha@example.com",
			Phone:    "9876543210",
			Address:  "12 MG Road",
			City:     "Pune",
			State:    "Maharashtra",
			Pincode:  "411001",
			Tier:     domain.TierLocal,
			Notes:    "ring the bell",
		},
		Items: []domain.OrderItem{
			{Name: "Premium Mix Dryfruits", Quantity: 2, Price: 120, Weight: "70 gm"},
			{Name: "Premium Cashews", Quantity: 1, Price: 250, Weight: "100 gm"},
		},
		Subtotal:       490,
		DeliveryCharge: 50,
		Total:          540,
		PlacedAt:       time.Date(2026, time.August, 28, 11, 34, 0, 0, time.UTC),
	}
}

func TestSubmitPostsFlattenedOrder(t *testing.T) {
	var got map[string]interface{}
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
	}))
	defer srv.Close()

	g := New(srv.URL, testLogger())
	if err := g.Submit(context.Background(), sampleOrder()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if contentType != "application/json" {
		t.Fatalf("expected json content type, got %q", contentType)
	}
	if got["Full Name"] != "Asha Rao" || got["Location"] != "local" {
		t.Fatalf("unexpected payload: %v", got)
	}
	wantItems := "Premium Mix Dryfruits (2x 70 gm) - ₹240; Premium Cashews (1x 100 gm) - ₹250"
	if got["Items"] != wantItems {
		t.Fatalf("unexpected items string: %q", got["Items"])
	}
	if got["Subtotal"].(float64) != 490 || got["Delivery Charge"].(float64) != 50 || got["Total"].(float64) != 540 {
		t.Fatalf("unexpected totals: %v", got)
	}
	// 11:34 UTC is 17:04 IST.
	if got["Order Date"] != "28 Aug 2026, 5:04 pm" {
		t.Fatalf("unexpected order date: %q", got["Order Date"])
	}
}

func TestSubmitUnconfiguredIsNoopSuccess(t *testing.T) {
	g := New("", testLogger())
	if g.Configured() {
		t.Fatalf("gateway should report unconfigured")
	}
	if err := g.Submit(context.Background(), sampleOrder()); err != nil {
		t.Fatalf("unconfigured submit must succeed, got %v", err)
	}
}

func TestSubmitIgnoresEndpointStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := New(srv.URL, testLogger())
	if err := g.Submit(context.Background(), sampleOrder()); err != nil {
		t.Fatalf("response status must be ignored, got %v", err)
	}
}

func TestSubmitTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	g := New(url, testLogger())
	if err := g.Submit(context.Background(), sampleOrder()); err == nil {
		t.Fatalf("expected transport error")
	}
}
