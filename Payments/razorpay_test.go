package Payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestVerifySignature(t *testing.T) {
	const secret = "test_secret"
	signature := Sign("order_123", "pay_456", secret)

	if !VerifySignature("order_123", "pay_456", signature, secret) {
		t.Fatal("valid signature rejected")
	}

	cases := []struct {
		name                         string
		orderID, paymentID, sig, key string
	}{
		{"tampered order", "order_999", "pay_456", signature, secret},
		{"tampered payment", "order_123", "pay_999", signature, secret},
		{"wrong secret", "order_123", "pay_456", signature, "other_secret"},
		{"empty signature", "order_123", "pay_456", "", secret},
		{"swapped ids", "pay_456", "order_123", signature, secret},
	}
	for _, c := range cases {
		if VerifySignature(c.orderID, c.paymentID, c.sig, c.key) {
			t.Errorf("%s: signature accepted", c.name)
		}
	}
}

func TestCreateOrder(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var payload struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Receipt  string `json:"receipt"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatal(err)
		}
		if payload.Amount != 49900 {
			t.Errorf("amount = %d paise, want 49900", payload.Amount)
		}
		if payload.Receipt == "" {
			t.Error("order carries no receipt")
		}
		json.NewEncoder(w).Encode(Order{
			ID:       "order_test_1",
			Amount:   payload.Amount,
			Currency: payload.Currency,
			Receipt:  payload.Receipt,
			Status:   "created",
		})
	}))
	defer gateway.Close()

	client := &Client{KeyID: "key", KeySecret: "secret", BaseURL: gateway.URL, HTTPClient: gateway.Client()}
	order, err := client.CreateOrder(499, "INR")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.ID != "order_test_1" {
		t.Fatalf("order id = %q", order.ID)
	}
}

func TestCreateOrderGatewayError(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad auth", http.StatusUnauthorized)
	}))
	defer gateway.Close()

	client := &Client{BaseURL: gateway.URL, HTTPClient: gateway.Client()}
	if _, err := client.CreateOrder(499, "INR"); err == nil {
		t.Fatal("gateway error did not surface")
	}
}
