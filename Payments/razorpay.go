package Payments

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

// Client talks to the payment gateway's order API. The key pair comes from
// the environment; the secret never leaves this package.
type Client struct {
	KeyID      string
	KeySecret  string
	BaseURL    string
	HTTPClient *http.Client
}

func NewClientFromEnv() *Client {
	baseURL := os.Getenv("RAZORPAY_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.razorpay.com"
	}
	return &Client{
		KeyID:      os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret:  os.Getenv("RAZORPAY_KEY_SECRET"),
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // paise
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder opens a gateway order for the given amount in INR. The
// gateway wants paise.
func (client *Client) CreateOrder(amountINR float64, currency string) (Order, error) {
	var order Order

	payload := map[string]interface{}{
		"amount":   int64(amountINR * 100),
		"currency": currency,
		"receipt":  "rcpt_" + uuid.NewString(),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return order, err
	}

	req, err := http.NewRequest(http.MethodPost, client.BaseURL+"/v1/orders", bytes.NewBuffer(data))
	if err != nil {
		return order, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.SetBasicAuth(client.KeyID, client.KeySecret)

	res, err := client.HTTPClient.Do(req)
	if err != nil {
		return order, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return order, err
	}
	if res.StatusCode != http.StatusOK {
		return order, fmt.Errorf("gateway refused order: %s", res.Status)
	}
	if err = json.Unmarshal(body, &order); err != nil {
		return order, err
	}
	if order.ID == "" {
		return order, errors.New("gateway returned no order id")
	}
	return order, nil
}

// VerifyCallback checks the signature the gateway attached to a completed
// payment against our key secret.
func (client *Client) VerifyCallback(orderID, paymentID, signature string) bool {
	return VerifySignature(orderID, paymentID, signature, client.KeySecret)
}

// Sign computes the gateway's callback signature: hex HMAC-SHA256 of
// "<orderID>|<paymentID>" under the key secret.
func Sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares in constant time.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	expected := Sign(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
