package response

import (
	"strings"
	"testing"
	"time"

	"webux_bd/internal/domain/entities"
)

func sampleOrder() entities.Order {
	return entities.Order{
		ID:            "ord-1",
		UserID:        "user-1",
		UserEmail:     "rahim@example.com",
		UserName:      "Rahim",
		PlanName:      "Professional",
		PlanPrice:     15000,
		DomainName:    "shop03.com",
		TotalAmount:   15000,
		PaidAmount:    7500,
		DueAmount:     7500,
		PaymentStatus: entities.PaymentStatusPartial,
		Status:        entities.OrderStatusDelivered,
		AdminNotes:    "handoff scheduled",
		CreatedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestFromOrder(t *testing.T) {
	got := FromOrder(sampleOrder())
	if got.ID != "ord-1" || got.Status != "delivered" || got.PaymentStatus != "partial" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.AdminNotes != "handoff scheduled" {
		t.Fatalf("admin view must keep admin notes, got %q", got.AdminNotes)
	}
	if got.PaidAmount != 7500 || got.DueAmount != 7500 || got.TotalAmount != 15000 {
		t.Fatalf("unexpected financials: %+v", got)
	}
}

func TestFromOrderForCustomer(t *testing.T) {
	got := FromOrderForCustomer(sampleOrder())
	if got.ID != "ord-1" || got.Status != "delivered" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if !strings.Contains(got.StatusMessage, "৳7500") {
		t.Fatalf("delivered message should name the due amount, got %q", got.StatusMessage)
	}
}

func TestStatusMessages(t *testing.T) {
	cases := []struct {
		status entities.OrderStatus
		due    float64
		want   string
	}{
		{entities.OrderStatusPending, 7500, "waiting for admin approval"},
		{entities.OrderStatusApproved, 7500, "approved"},
		{entities.OrderStatusInProgress, 7500, "currently working"},
		{entities.OrderStatusDelivered, 0, "Project delivered!"},
		{entities.OrderStatusCompleted, 0, "completed successfully"},
		{entities.OrderStatusCancelled, 0, "cancelled"},
	}
	for _, tc := range cases {
		o := sampleOrder()
		o.Status = tc.status
		o.DueAmount = tc.due
		o.PaidAmount = o.TotalAmount - tc.due
		msg := statusMessage(o)
		if !strings.Contains(msg, tc.want) {
			t.Fatalf("status %q: expected message containing %q, got %q", tc.status, tc.want, msg)
		}
	}
}
