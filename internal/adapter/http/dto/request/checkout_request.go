package request

import "strings"

type CheckoutStartRequest struct {
	PlanID string `json:"plan_id" binding:"required"`
}

// CheckoutDetailsRequest carries the details step of the checkout flow.
// PaymentMethod is optional; the session keeps its default when omitted.
type CheckoutDetailsRequest struct {
	DomainName    string `json:"domain_name"`
	Requirements  string `json:"requirements"`
	PaymentMethod string `json:"payment_method"`
}

func (r CheckoutStartRequest) ResolvePlanID() string {
	return strings.ToLower(strings.TrimSpace(r.PlanID))
}
