package response

import (
	"fmt"
	"time"

	"webux_bd/internal/domain/entities"
)

// OrderResponse is the admin-facing order view with full financials and
// workflow fields.
type OrderResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	UserName      string    `json:"user_name"`
	PlanName      string    `json:"plan_name"`
	PlanPrice     float64   `json:"plan_price"`
	PlanFeatures  []string  `json:"plan_features,omitempty"`
	DomainName    string    `json:"domain_name,omitempty"`
	Requirements  string    `json:"requirements,omitempty"`
	TotalAmount   float64   `json:"total_amount"`
	PaidAmount    float64   `json:"paid_amount"`
	DueAmount     float64   `json:"due_amount"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Status        string    `json:"status"`
	AdminNotes    string    `json:"admin_notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		UserID:        o.UserID,
		UserEmail:     o.UserEmail,
		UserName:      o.UserName,
		PlanName:      o.PlanName,
		PlanPrice:     o.PlanPrice,
		PlanFeatures:  o.PlanFeatures,
		DomainName:    o.DomainName,
		Requirements:  o.Requirements,
		TotalAmount:   o.TotalAmount,
		PaidAmount:    o.PaidAmount,
		DueAmount:     o.DueAmount,
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		AdminNotes:    o.AdminNotes,
		CreatedAt:     o.CreatedAt,
	}
}

// CustomerOrderResponse is the customer-facing view: no admin notes, plus a
// progress message matching the dashboard copy.
type CustomerOrderResponse struct {
	ID            string    `json:"id"`
	PlanName      string    `json:"plan_name"`
	PlanFeatures  []string  `json:"plan_features,omitempty"`
	DomainName    string    `json:"domain_name,omitempty"`
	TotalAmount   float64   `json:"total_amount"`
	PaidAmount    float64   `json:"paid_amount"`
	DueAmount     float64   `json:"due_amount"`
	PaymentStatus string    `json:"payment_status"`
	Status        string    `json:"status"`
	StatusMessage string    `json:"status_message"`
	CreatedAt     time.Time `json:"created_at"`
}

func FromOrderForCustomer(o entities.Order) CustomerOrderResponse {
	return CustomerOrderResponse{
		ID:            o.ID,
		PlanName:      o.PlanName,
		PlanFeatures:  o.PlanFeatures,
		DomainName:    o.DomainName,
		TotalAmount:   o.TotalAmount,
		PaidAmount:    o.PaidAmount,
		DueAmount:     o.DueAmount,
		PaymentStatus: string(o.PaymentStatus),
		Status:        string(o.Status),
		StatusMessage: statusMessage(o),
		CreatedAt:     o.CreatedAt,
	}
}

func statusMessage(o entities.Order) string {
	switch o.Status {
	case entities.OrderStatusPending:
		return "Your order is waiting for admin approval. We will start shortly."
	case entities.OrderStatusApproved:
		return "Your order has been approved. Work starts soon."
	case entities.OrderStatusInProgress:
		return "We are currently working on your project."
	case entities.OrderStatusDelivered:
		if o.DueAmount > 0 {
			return fmt.Sprintf("Project delivered! Please clear your due payment of ৳%.0f to receive full access.", o.DueAmount)
		}
		return "Project delivered!"
	case entities.OrderStatusCompleted:
		return "Project completed successfully. Thank you!"
	case entities.OrderStatusCancelled:
		return "This order has been cancelled."
	default:
		return ""
	}
}

// ConsoleResponse is the admin order-listing projection: one page of matches
// plus the control state that produced it.
type ConsoleResponse struct {
	Orders       []OrderResponse `json:"orders"`
	Query        string          `json:"query"`
	StatusFilter string          `json:"status_filter"`
	Page         int             `json:"page"`
	PageCount    int             `json:"page_count"`
	PageSize     int             `json:"page_size"`
	TotalMatches int             `json:"total_matches"`
	SelectedIDs  []string        `json:"selected_ids,omitempty"`
}

// BulkTransitionResponse reports a batch outcome; partial failure is a
// successful response.
type BulkTransitionResponse struct {
	Requested int `json:"requested"`
	Failed    int `json:"failed"`
}
