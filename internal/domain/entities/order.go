package entities

import (
	"errors"
	"fmt"
	"time"
)

// OrderStatus represents the fulfillment lifecycle of a website order.
//
// Domain notes:
//   - Orders only ever move forward along the transition graph below.
//   - "cancelled" is reachable from pending/approved only; once work has
//     started the engagement is carried through to delivery.

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusApproved   OrderStatus = "approved"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// PaymentStatus tracks how much of the order total has been settled.
//
// Orders are created with a simulated 50% advance, so the usual starting
// state is "partial".

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// ErrInvariantViolation marks a programming error: a mutation that would
// break the financial or status invariants. It must never be persisted.
var ErrInvariantViolation = errors.New("order invariant violation")

// Order is a customer's purchase of one catalog plan, persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id, range key created_at
//
// Ownership and plan fields are denormalized snapshots taken at creation time;
// later catalog or profile edits never alter historical orders.
//
// Monetary representation:
//   - Amounts are plain BDT values. DueAmount is persisted alongside
//     PaidAmount, so every mutation must keep paid+due == total.

type Order struct {
	ID string `json:"id"`

	UserID    string `json:"user_id"`
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name"`

	PlanName     string   `json:"plan_name"`
	PlanPrice    float64  `json:"plan_price"`
	PlanFeatures []string `json:"plan_features,omitempty"`

	DomainName   string `json:"domain_name,omitempty"`
	Requirements string `json:"requirements,omitempty"`

	TotalAmount   float64       `json:"total_amount"`
	PaidAmount    float64       `json:"paid_amount"`
	DueAmount     float64       `json:"due_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentMethod string        `json:"payment_method,omitempty"`

	Status     OrderStatus `json:"status"`
	AdminNotes string      `json:"admin_notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// DeriveDueAmount returns the remaining balance, never negative. Idempotent:
// repeated derivation from its own result stabilizes.
func DeriveDueAmount(total, paid float64) float64 {
	if due := total - paid; due > 0 {
		return due
	}
	return 0
}

var validOrderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:    {},
	OrderStatusApproved:   {},
	OrderStatusInProgress: {},
	OrderStatusDelivered:  {},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

var validPaymentStatuses = map[PaymentStatus]struct{}{
	PaymentStatusPending: {},
	PaymentStatusPartial: {},
	PaymentStatusPaid:    {},
}

// orderTransitions is the forward-only status graph. Direct-start
// (pending -> in_progress) and direct-complete (in_progress -> completed)
// are admin shortcuts. Nothing leaves completed or cancelled.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusApproved, OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusApproved:   {OrderStatusInProgress, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusDelivered, OrderStatusCompleted},
	OrderStatusDelivered:  {OrderStatusCompleted},
}

// CanTransition reports whether the status graph allows from -> to.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Validate checks the financial and status-domain invariants. A failure wraps
// ErrInvariantViolation and indicates a defect, not bad user input.
func (o Order) Validate() error {
	if _, ok := validOrderStatuses[o.Status]; !ok {
		return fmt.Errorf("%w: unknown status %q", ErrInvariantViolation, o.Status)
	}
	if _, ok := validPaymentStatuses[o.PaymentStatus]; !ok {
		return fmt.Errorf("%w: unknown payment status %q", ErrInvariantViolation, o.PaymentStatus)
	}
	if o.DueAmount < 0 {
		return fmt.Errorf("%w: negative due amount %.2f", ErrInvariantViolation, o.DueAmount)
	}
	if o.PaidAmount < 0 {
		return fmt.Errorf("%w: negative paid amount %.2f", ErrInvariantViolation, o.PaidAmount)
	}
	if o.PaidAmount+o.DueAmount != o.TotalAmount {
		return fmt.Errorf("%w: paid %.2f + due %.2f != total %.2f",
			ErrInvariantViolation, o.PaidAmount, o.DueAmount, o.TotalAmount)
	}
	if o.PaymentStatus == PaymentStatusPaid && o.DueAmount != 0 {
		return fmt.Errorf("%w: paid status with outstanding due %.2f", ErrInvariantViolation, o.DueAmount)
	}
	return nil
}

// OrderUpdate is a partial mutation applied to a persisted order. Only non-nil
// fields are written. Values are built exclusively by the order use case
// commands, so invalid field combinations are unrepresentable from handlers.
type OrderUpdate struct {
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	PaidAmount    *float64
	DueAmount     *float64
	AdminNotes    *string
}

// ApplyTo returns a copy of o with the non-nil update fields merged in. Used
// to validate the post-mutation state before anything is persisted.
func (u OrderUpdate) ApplyTo(o Order) Order {
	if u.Status != nil {
		o.Status = *u.Status
	}
	if u.PaymentStatus != nil {
		o.PaymentStatus = *u.PaymentStatus
	}
	if u.PaidAmount != nil {
		o.PaidAmount = *u.PaidAmount
	}
	if u.DueAmount != nil {
		o.DueAmount = *u.DueAmount
	}
	if u.AdminNotes != nil {
		o.AdminNotes = *u.AdminNotes
	}
	return o
}

// IsEmpty reports whether the update would write nothing.
func (u OrderUpdate) IsEmpty() bool {
	return u.Status == nil && u.PaymentStatus == nil && u.PaidAmount == nil &&
		u.DueAmount == nil && u.AdminNotes == nil
}
