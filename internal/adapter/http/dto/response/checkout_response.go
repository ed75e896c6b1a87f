package response

import (
	"time"

	"webux_bd/internal/usecase"
)

type CheckoutSessionResponse struct {
	ID            string    `json:"id"`
	PlanID        string    `json:"plan_id"`
	PlanName      string    `json:"plan_name"`
	Step          string    `json:"step"`
	DomainName    string    `json:"domain_name,omitempty"`
	Requirements  string    `json:"requirements,omitempty"`
	PaymentMethod string    `json:"payment_method"`
	OrderID       string    `json:"order_id,omitempty"`
	FollowUpURL   string    `json:"follow_up_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromCheckoutSession(s usecase.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{
		ID:            s.ID,
		PlanID:        s.Plan.ID,
		PlanName:      s.Plan.Name,
		Step:          string(s.Step),
		DomainName:    s.DomainName,
		Requirements:  s.Requirements,
		PaymentMethod: s.PaymentMethod,
		OrderID:       s.OrderID,
		FollowUpURL:   s.FollowUpURL,
		CreatedAt:     s.CreatedAt,
	}
}

type CheckoutReviewResponse struct {
	PlanName      string  `json:"plan_name"`
	TotalAmount   float64 `json:"total_amount"`
	AdvanceAmount float64 `json:"advance_amount"`
	DueLater      float64 `json:"due_later"`
	PaymentMethod string  `json:"payment_method"`
}

func FromCheckoutReview(r usecase.CheckoutReview) CheckoutReviewResponse {
	return CheckoutReviewResponse{
		PlanName:      r.PlanName,
		TotalAmount:   r.TotalAmount,
		AdvanceAmount: r.AdvanceAmount,
		DueLater:      r.DueLater,
		PaymentMethod: r.PaymentMethod,
	}
}
