package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"webux_bd/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound     = errors.New("checkout session not found")
	ErrNotSessionOwner     = errors.New("caller does not own this checkout session")
	ErrUnknownPlan         = errors.New("unknown pricing plan")
	ErrMissingDomainName   = errors.New("domain name is required")
	ErrInvalidCheckoutStep = errors.New("operation not valid in current checkout step")
	ErrSubmitInFlight      = errors.New("submission already in progress")
)

// CheckoutStep is the per-session checkout state machine position.
//
// CollectingDetails -> ReviewingPayment -> Submitting -> Succeeded | Failed.
// A failed submission retries from ReviewingPayment; a second submit while
// one is in flight is rejected, never queued.

type CheckoutStep string

const (
	StepCollectingDetails CheckoutStep = "collecting_details"
	StepReviewingPayment  CheckoutStep = "reviewing_payment"
	StepSubmitting        CheckoutStep = "submitting"
	StepSucceeded         CheckoutStep = "succeeded"
	StepFailed            CheckoutStep = "failed"
)

// defaultPaymentMethod is the agency's usual mobile payment channel.
const defaultPaymentMethod = "bkash"

// CheckoutSession is one customer's in-progress order creation.
type CheckoutSession struct {
	ID   string
	User entities.User
	Plan entities.PricingTier
	Step CheckoutStep

	DomainName    string
	Requirements  string
	PaymentMethod string

	// Set once the submission succeeds.
	OrderID     string
	FollowUpURL string

	CreatedAt time.Time
}

// CheckoutReview is the payment breakdown shown before submission.
type CheckoutReview struct {
	PlanName      string
	TotalAmount   float64
	AdvanceAmount float64
	DueLater      float64
	PaymentMethod string
}

// ICheckoutUseCase drives the order-creation flow.

type ICheckoutUseCase interface {
	Start(ctx context.Context, user entities.User, planID string) (CheckoutSession, error)
	SetDetails(ctx context.Context, caller entities.User, sessionID, domainName, requirements, paymentMethod string) (CheckoutSession, error)
	Review(ctx context.Context, caller entities.User, sessionID string) (CheckoutReview, error)
	Submit(ctx context.Context, caller entities.User, sessionID string) (CheckoutSession, error)
	Retry(ctx context.Context, caller entities.User, sessionID string) (CheckoutSession, error)
	Get(ctx context.Context, caller entities.User, sessionID string) (CheckoutSession, error)
}

// CheckoutUseCase holds sessions in memory; they are short-lived UI state,
// only the created order is durable.
type CheckoutUseCase struct {
	orders         IOrderUseCase
	whatsAppNumber string

	mu       sync.Mutex
	sessions map[string]*CheckoutSession
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(orders IOrderUseCase, whatsAppNumber string) *CheckoutUseCase {
	return &CheckoutUseCase{
		orders:         orders,
		whatsAppNumber: whatsAppNumber,
		sessions:       make(map[string]*CheckoutSession),
	}
}

func (u *CheckoutUseCase) Start(ctx context.Context, user entities.User, planID string) (CheckoutSession, error) {
	tier, ok := entities.FindTier(strings.TrimSpace(planID))
	if !ok {
		return CheckoutSession{}, fmt.Errorf("%w: %q", ErrUnknownPlan, planID)
	}

	s := &CheckoutSession{
		ID:            uuid.NewString(),
		User:          user,
		Plan:          tier,
		Step:          StepCollectingDetails,
		PaymentMethod: defaultPaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}

	u.mu.Lock()
	u.sessions[s.ID] = s
	u.mu.Unlock()
	return *s, nil
}

// SetDetails records the customer's inputs and advances to payment review.
// An empty domain name blocks the advance; this is a validation condition
// handled by the caller, never an alert-level failure.
func (u *CheckoutUseCase) SetDetails(ctx context.Context, caller entities.User, sessionID, domainName, requirements, paymentMethod string) (CheckoutSession, error) {
	s, err := u.session(caller, sessionID)
	if err != nil {
		return CheckoutSession{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if s.Step != StepCollectingDetails && s.Step != StepReviewingPayment {
		return CheckoutSession{}, fmt.Errorf("%w: %s", ErrInvalidCheckoutStep, s.Step)
	}
	if strings.TrimSpace(domainName) == "" {
		return CheckoutSession{}, ErrMissingDomainName
	}

	s.DomainName = strings.TrimSpace(domainName)
	s.Requirements = strings.TrimSpace(requirements)
	if pm := strings.TrimSpace(paymentMethod); pm != "" {
		s.PaymentMethod = pm
	}
	s.Step = StepReviewingPayment
	return *s, nil
}

func (u *CheckoutUseCase) Review(ctx context.Context, caller entities.User, sessionID string) (CheckoutReview, error) {
	s, err := u.session(caller, sessionID)
	if err != nil {
		return CheckoutReview{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if s.Step != StepReviewingPayment {
		return CheckoutReview{}, fmt.Errorf("%w: %s", ErrInvalidCheckoutStep, s.Step)
	}

	total := s.Plan.NumericPrice
	advance := total * advanceRate
	return CheckoutReview{
		PlanName:      s.Plan.Name,
		TotalAmount:   total,
		AdvanceAmount: advance,
		DueLater:      entities.DeriveDueAmount(total, advance),
		PaymentMethod: s.PaymentMethod,
	}, nil
}

// Submit creates the order. At most one submission is in flight per session;
// a concurrent submit is rejected with ErrSubmitInFlight. The created order
// is a single logical write: follow-up failures are reported but never roll
// it back.
func (u *CheckoutUseCase) Submit(ctx context.Context, caller entities.User, sessionID string) (CheckoutSession, error) {
	s, err := u.session(caller, sessionID)
	if err != nil {
		return CheckoutSession{}, err
	}

	u.mu.Lock()
	switch s.Step {
	case StepSubmitting:
		u.mu.Unlock()
		return CheckoutSession{}, ErrSubmitInFlight
	case StepReviewingPayment:
		// proceed
	default:
		step := s.Step
		u.mu.Unlock()
		return CheckoutSession{}, fmt.Errorf("%w: %s", ErrInvalidCheckoutStep, step)
	}
	s.Step = StepSubmitting
	data := OrderData{
		PlanName:      s.Plan.Name,
		PlanPrice:     s.Plan.NumericPrice,
		PlanFeatures:  s.Plan.Features,
		DomainName:    s.DomainName,
		Requirements:  s.Requirements,
		PaymentMethod: s.PaymentMethod,
		TotalAmount:   s.Plan.NumericPrice,
	}
	u.mu.Unlock()

	order, createErr := u.orders.Create(ctx, s.User, data)

	u.mu.Lock()
	defer u.mu.Unlock()
	if createErr != nil {
		log.Printf("[checkout][submit] session=%s order create failed err=%v", s.ID, createErr)
		s.Step = StepFailed
		return *s, createErr
	}
	s.Step = StepSucceeded
	s.OrderID = order.ID
	s.FollowUpURL = u.followUpURL(s, order)
	return *s, nil
}

// Retry returns a failed session to payment review for another attempt.
func (u *CheckoutUseCase) Retry(ctx context.Context, caller entities.User, sessionID string) (CheckoutSession, error) {
	s, err := u.session(caller, sessionID)
	if err != nil {
		return CheckoutSession{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if s.Step != StepFailed {
		return CheckoutSession{}, fmt.Errorf("%w: %s", ErrInvalidCheckoutStep, s.Step)
	}
	s.Step = StepReviewingPayment
	return *s, nil
}

func (u *CheckoutUseCase) Get(ctx context.Context, caller entities.User, sessionID string) (CheckoutSession, error) {
	s, err := u.session(caller, sessionID)
	if err != nil {
		return CheckoutSession{}, err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return *s, nil
}

func (u *CheckoutUseCase) session(caller entities.User, sessionID string) (*CheckoutSession, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	s, ok := u.sessions[strings.TrimSpace(sessionID)]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if s.User.ID != caller.ID {
		return nil, ErrNotSessionOwner
	}
	return s, nil
}

func (u *CheckoutUseCase) followUpURL(s *CheckoutSession, order entities.Order) string {
	msg := fmt.Sprintf(
		"Hello WebUX BD!\n\nI have placed Order #%s.\nPlan: %s\nDomain: %s\n\nI have paid the 50%% advance via %s. I am ready to discuss the design preview.",
		order.ID, s.Plan.Name, s.DomainName, s.PaymentMethod,
	)
	return fmt.Sprintf("https://wa.me/%s?text=%s", u.whatsAppNumber, url.QueryEscape(msg))
}
