package request

import (
	"errors"
	"strings"

	"webux_bd/internal/domain/entities"
)

var ErrUnknownOrderAction = errors.New("unknown order action")

// BulkTransitionRequest applies one workflow action to a batch of orders.
type BulkTransitionRequest struct {
	OrderIDs []string `json:"order_ids" binding:"required"`
	Action   string   `json:"action" binding:"required"`
}

var actionStatuses = map[string]entities.OrderStatus{
	"approve":  entities.OrderStatusApproved,
	"start":    entities.OrderStatusInProgress,
	"deliver":  entities.OrderStatusDelivered,
	"complete": entities.OrderStatusCompleted,
	"cancel":   entities.OrderStatusCancelled,
}

func (r BulkTransitionRequest) ResolveAction() (entities.OrderStatus, error) {
	status, ok := actionStatuses[strings.ToLower(strings.TrimSpace(r.Action))]
	if !ok {
		return "", ErrUnknownOrderAction
	}
	return status, nil
}

func (r BulkTransitionRequest) ResolveOrderIDs() []string {
	ids := make([]string, 0, len(r.OrderIDs))
	for _, id := range r.OrderIDs {
		if v := strings.TrimSpace(id); v != "" {
			ids = append(ids, v)
		}
	}
	return ids
}
