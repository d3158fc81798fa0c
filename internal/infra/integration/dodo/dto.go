package dodo

type CheckoutSessionInput struct {
	ProductID     string
	CustomerEmail string
	ReturnURL     string
}

type CheckoutSession struct {
	ID  string `json:"session_id"`
	URL string `json:"url"`
}

type Subscription struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	ProductID string `json:"product_id"`
}

type checkoutSessionRequest struct {
	ProductCart []productCartItem `json:"product_cart"`
	Customer    customerRef       `json:"customer"`
	PaymentLink bool              `json:"payment_link"`
	ReturnURL   string            `json:"return_url"`
}

type productCartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type customerRef struct {
	Email string `json:"email"`
}

type cancelSubscriptionRequest struct {
	CancelAtPeriodEnd bool `json:"cancel_at_period_end"`
}

type changePlanRequest struct {
	ProductID            string `json:"product_id"`
	Quantity             int    `json:"quantity"`
	ProrationBillingMode string `json:"proration_billing_mode"`
}
