package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"webux_bd/internal/domain/entities"
	"webux_bd/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidOrderData  = errors.New("invalid order data")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrOutstandingDue    = errors.New("order has outstanding due amount")
	ErrNothingDue        = errors.New("order has no due amount")
	ErrPaymentNotDue     = errors.New("due payment not collectable yet")
	ErrNotOrderOwner     = errors.New("caller does not own this order")
)

// advanceRate is the share of the plan price collected at order creation.
// The remaining balance becomes collectable after delivery.
const advanceRate = 0.5

// OrderData is the checkout payload copied into a new order. Plan fields are
// snapshots taken from the catalog at purchase time.
type OrderData struct {
	PlanName      string
	PlanPrice     float64
	PlanFeatures  []string
	DomainName    string
	Requirements  string
	PaymentMethod string
	TotalAmount   float64
}

// IOrderUseCase exposes the order lifecycle.
//
// Every mutation is its own command carrying only the fields it legitimately
// changes: Approve/StartWork/Deliver/Complete/Cancel move the workflow status,
// CollectPayment and PayDue settle the remaining balance. There is no generic
// "update order" operation.

type IOrderUseCase interface {
	Create(ctx context.Context, user entities.User, data OrderData) (entities.Order, error)
	List(ctx context.Context, callerID string, isAdmin bool) ([]entities.Order, error)
	GetForCaller(ctx context.Context, caller entities.User, id string) (entities.Order, error)

	Approve(ctx context.Context, id string) (entities.Order, error)
	StartWork(ctx context.Context, id string) (entities.Order, error)
	Deliver(ctx context.Context, id string) (entities.Order, error)
	Complete(ctx context.Context, id string) (entities.Order, error)
	Cancel(ctx context.Context, id string) (entities.Order, error)

	CollectPayment(ctx context.Context, id string) (entities.Order, error)
	PayDue(ctx context.Context, caller entities.User, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) Create(ctx context.Context, user entities.User, data OrderData) (entities.Order, error) {
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return entities.Order{}, fmt.Errorf("%w: missing purchaser identity", ErrInvalidOrderData)
	}
	if strings.TrimSpace(data.PlanName) == "" {
		return entities.Order{}, fmt.Errorf("%w: missing plan", ErrInvalidOrderData)
	}
	if data.TotalAmount <= 0 {
		return entities.Order{}, fmt.Errorf("%w: non-positive total", ErrInvalidOrderData)
	}

	paid := data.TotalAmount * advanceRate
	o := entities.Order{
		ID:            uuid.NewString(),
		UserID:        user.ID,
		UserEmail:     user.Email,
		UserName:      user.Name,
		PlanName:      data.PlanName,
		PlanPrice:     data.PlanPrice,
		PlanFeatures:  data.PlanFeatures,
		DomainName:    strings.TrimSpace(data.DomainName),
		Requirements:  strings.TrimSpace(data.Requirements),
		TotalAmount:   data.TotalAmount,
		PaidAmount:    paid,
		DueAmount:     entities.DeriveDueAmount(data.TotalAmount, paid),
		PaymentStatus: entities.PaymentStatusPartial,
		PaymentMethod: data.PaymentMethod,
		Status:        entities.OrderStatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	if err := o.Validate(); err != nil {
		return entities.Order{}, err
	}
	return u.repo.Create(ctx, o)
}

// List returns every order for admins and only the caller's own otherwise,
// sorted by creation time descending.
func (u *OrderUseCase) List(ctx context.Context, callerID string, isAdmin bool) ([]entities.Order, error) {
	if isAdmin {
		return u.repo.ListAll(ctx)
	}
	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return nil, fmt.Errorf("%w: missing caller id", ErrInvalidOrderData)
	}
	return u.repo.ListByUserID(ctx, callerID)
}

func (u *OrderUseCase) GetForCaller(ctx context.Context, caller entities.User, id string) (entities.Order, error) {
	o, err := u.get(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !caller.IsAdmin && o.UserID != caller.ID {
		return entities.Order{}, ErrNotOrderOwner
	}
	return o, nil
}

func (u *OrderUseCase) Approve(ctx context.Context, id string) (entities.Order, error) {
	return u.transition(ctx, id, entities.OrderStatusApproved)
}

func (u *OrderUseCase) StartWork(ctx context.Context, id string) (entities.Order, error) {
	return u.transition(ctx, id, entities.OrderStatusInProgress)
}

func (u *OrderUseCase) Deliver(ctx context.Context, id string) (entities.Order, error) {
	return u.transition(ctx, id, entities.OrderStatusDelivered)
}

func (u *OrderUseCase) Complete(ctx context.Context, id string) (entities.Order, error) {
	return u.transition(ctx, id, entities.OrderStatusCompleted)
}

func (u *OrderUseCase) Cancel(ctx context.Context, id string) (entities.Order, error) {
	return u.transition(ctx, id, entities.OrderStatusCancelled)
}

func (u *OrderUseCase) transition(ctx context.Context, id string, to entities.OrderStatus) (entities.Order, error) {
	o, err := u.get(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !entities.CanTransition(o.Status, to) {
		return entities.Order{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}
	// An order is only completable once fully paid. This covers both the
	// delivered -> completed step and the direct-complete shortcut.
	if to == entities.OrderStatusCompleted && o.DueAmount != 0 {
		return entities.Order{}, ErrOutstandingDue
	}

	upd := entities.OrderUpdate{Status: &to}
	if err := upd.ApplyTo(o).Validate(); err != nil {
		return entities.Order{}, err
	}
	return u.apply(ctx, o.ID, upd)
}

// CollectPayment settles the full remaining balance in a single update. This
// is the only admin payment mutation; partial collection does not exist.
func (u *OrderUseCase) CollectPayment(ctx context.Context, id string) (entities.Order, error) {
	o, err := u.get(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	return u.settleDue(ctx, o)
}

// PayDue is the customer-initiated equivalent of CollectPayment. The second
// 50% becomes due after delivery, so it is only accepted on delivered orders.
func (u *OrderUseCase) PayDue(ctx context.Context, caller entities.User, id string) (entities.Order, error) {
	o, err := u.get(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.UserID != caller.ID {
		return entities.Order{}, ErrNotOrderOwner
	}
	if o.Status != entities.OrderStatusDelivered {
		return entities.Order{}, ErrPaymentNotDue
	}
	return u.settleDue(ctx, o)
}

func (u *OrderUseCase) settleDue(ctx context.Context, o entities.Order) (entities.Order, error) {
	if o.DueAmount == 0 {
		return entities.Order{}, ErrNothingDue
	}

	paid := o.TotalAmount
	due := 0.0
	status := entities.PaymentStatusPaid
	upd := entities.OrderUpdate{PaidAmount: &paid, DueAmount: &due, PaymentStatus: &status}
	if err := upd.ApplyTo(o).Validate(); err != nil {
		return entities.Order{}, err
	}
	return u.apply(ctx, o.ID, upd)
}

func (u *OrderUseCase) get(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) apply(ctx context.Context, id string, upd entities.OrderUpdate) (entities.Order, error) {
	updated, err := u.repo.ApplyUpdate(ctx, id, upd)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}
