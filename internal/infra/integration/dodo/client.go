package dodo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Dodo Payments REST client.
// https://docs.dodopayments.com/api-reference

const (
	LiveBaseURL = "https://live.dodopayments.com"
	TestBaseURL = "https://test.dodopayments.com"
)

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = TestBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) CreateCheckoutSession(ctx context.Context, input CheckoutSessionInput) (*CheckoutSession, error) {
	payload := checkoutSessionRequest{
		ProductCart: []productCartItem{{ProductID: input.ProductID, Quantity: 1}},
		Customer:    customerRef{Email: input.CustomerEmail},
		PaymentLink: true,
		ReturnURL:   input.ReturnURL,
	}

	var session CheckoutSession
	if err := c.do(ctx, "POST", "/v1/checkout_sessions", payload, &session); err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return &session, nil
}

func (c *Client) GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	var sub Subscription
	if err := c.do(ctx, "GET", "/v1/subscriptions/"+subscriptionID, nil, &sub); err != nil {
		return nil, fmt.Errorf("failed to fetch subscription: %w", err)
	}
	return &sub, nil
}

func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) error {
	payload := cancelSubscriptionRequest{CancelAtPeriodEnd: true}
	if err := c.do(ctx, "PATCH", "/v1/subscriptions/"+subscriptionID, payload, nil); err != nil {
		return fmt.Errorf("failed to cancel subscription: %w", err)
	}
	return nil
}

func (c *Client) ChangePlan(ctx context.Context, subscriptionID, newProductID string) error {
	payload := changePlanRequest{
		ProductID:            newProductID,
		Quantity:             1,
		ProrationBillingMode: "difference_immediately",
	}
	if err := c.do(ctx, "POST", "/v1/subscriptions/"+subscriptionID+"/change_plan", payload, nil); err != nil {
		return fmt.Errorf("failed to change plan: %w", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("dodo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("dodo api error (status %d): %s", resp.StatusCode, string(errBody))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode dodo response: %w", err)
	}
	return nil
}
