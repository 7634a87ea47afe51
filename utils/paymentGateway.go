package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"learnhub/config"

	"github.com/go-resty/resty/v2"
)

// CheckoutSession is the gateway's answer to a checkout request
type CheckoutSession struct {
	OrderID     string `json:"order_id"`
	CheckoutURL string `json:"checkout_url"`
	Status      string `json:"status"`
}

// CreateCheckout opens a checkout session with the payment gateway for the
// given order reference. In demo mode no call is made; the session points at a
// local success page and the order completes on client-side verification.
func CreateCheckout(orderID string, amount float64, customerEmail string) (*CheckoutSession, error) {
	if config.AppConfig.GatewayDemo {
		return &CheckoutSession{
			OrderID:     orderID,
			CheckoutURL: config.AppConfig.BaseURL + "/payment/demo-checkout/" + orderID,
			Status:      "created",
		}, nil
	}

	client := resty.New()
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.GatewayApiKey).
		SetHeader("X-Api-Version", config.AppConfig.GatewayVersion).
		SetBody(map[string]interface{}{
			"order_id":       orderID,
			"amount":         amount,
			"currency":       "INR",
			"customer_email": customerEmail,
		}).
		Post(config.AppConfig.GatewayApiURL + "checkout")
	if err != nil {
		log.Printf("Gateway checkout request failed: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 && resp.StatusCode() != 201 {
		log.Printf("Gateway checkout rejected: %s", resp.String())
		return nil, fmt.Errorf("gateway checkout failed with status %d", resp.StatusCode())
	}

	var session CheckoutSession
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		log.Printf("Failed to parse gateway response: %v", err)
		return nil, err
	}
	return &session, nil
}
