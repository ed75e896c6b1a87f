package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"webux_bd/internal/domain/entities"
	mock_interfaces "webux_bd/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newCheckout(t *testing.T) (*CheckoutUseCase, *mock_interfaces.MockIOrderRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	return NewCheckoutUseCase(NewOrderUseCase(repo), "8801711000000"), repo
}

func TestCheckoutUseCase_Start(t *testing.T) {
	t.Run("unknown plan", func(t *testing.T) {
		uc, _ := newCheckout(t)
		_, err := uc.Start(context.Background(), buyer(), "platinum")
		if !errors.Is(err, ErrUnknownPlan) {
			t.Fatalf("expected ErrUnknownPlan, got %v", err)
		}
	})

	t.Run("opens in collecting details", func(t *testing.T) {
		uc, _ := newCheckout(t)
		s, err := uc.Start(context.Background(), buyer(), "pro")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Step != StepCollectingDetails {
			t.Fatalf("expected collecting_details, got %s", s.Step)
		}
		if s.Plan.NumericPrice != 15000 {
			t.Fatalf("expected plan snapshot, got %+v", s.Plan)
		}
		if s.PaymentMethod != "bkash" {
			t.Fatalf("expected default payment method, got %q", s.PaymentMethod)
		}
	})
}

func TestCheckoutUseCase_SetDetails(t *testing.T) {
	t.Run("empty domain blocks advance", func(t *testing.T) {
		uc, _ := newCheckout(t)
		s, _ := uc.Start(context.Background(), buyer(), "pro")

		_, err := uc.SetDetails(context.Background(), buyer(), s.ID, "   ", "notes", "")
		if !errors.Is(err, ErrMissingDomainName) {
			t.Fatalf("expected ErrMissingDomainName, got %v", err)
		}

		got, _ := uc.Get(context.Background(), buyer(), s.ID)
		if got.Step != StepCollectingDetails {
			t.Fatalf("failed validation must not advance, got %s", got.Step)
		}
	})

	t.Run("advances to payment review", func(t *testing.T) {
		uc, _ := newCheckout(t)
		s, _ := uc.Start(context.Background(), buyer(), "pro")

		got, err := uc.SetDetails(context.Background(), buyer(), s.ID, " mybusiness.com ", "green theme", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Step != StepReviewingPayment || got.DomainName != "mybusiness.com" {
			t.Fatalf("unexpected session: %+v", got)
		}
	})

	t.Run("foreign caller", func(t *testing.T) {
		uc, _ := newCheckout(t)
		s, _ := uc.Start(context.Background(), buyer(), "pro")

		_, err := uc.SetDetails(context.Background(), entities.User{ID: "intruder"}, s.ID, "a.com", "", "")
		if !errors.Is(err, ErrNotSessionOwner) {
			t.Fatalf("expected ErrNotSessionOwner, got %v", err)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		uc, _ := newCheckout(t)
		_, err := uc.SetDetails(context.Background(), buyer(), "nope", "a.com", "", "")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestCheckoutUseCase_Review(t *testing.T) {
	t.Run("before details", func(t *testing.T) {
		uc, _ := newCheckout(t)
		s, _ := uc.Start(context.Background(), buyer(), "pro")

		_, err := uc.Review(context.Background(), buyer(), s.ID)
		if !errors.Is(err, ErrInvalidCheckoutStep) {
			t.Fatalf("expected ErrInvalidCheckoutStep, got %v", err)
		}
	})

	t.Run("splits total into advance and due", func(t *testing.T) {
		uc, _ := newCheckout(t)
		s, _ := uc.Start(context.Background(), buyer(), "enterprise")
		if _, err := uc.SetDetails(context.Background(), buyer(), s.ID, "bigshop.com", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		review, err := uc.Review(context.Background(), buyer(), s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if review.TotalAmount != 40000 || review.AdvanceAmount != 20000 || review.DueLater != 20000 {
			t.Fatalf("unexpected breakdown: %+v", review)
		}
	})
}

func TestCheckoutUseCase_Submit(t *testing.T) {
	t.Run("creates order and succeeds", func(t *testing.T) {
		uc, repo := newCheckout(t)
		s, _ := uc.Start(context.Background(), buyer(), "pro")
		if _, err := uc.SetDetails(context.Background(), buyer(), s.ID, "mybusiness.com", "green theme", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.PlanName != "Professional" || o.TotalAmount != 15000 || o.PaidAmount != 7500 {
					t.Fatalf("unexpected order payload: %+v", o)
				}
				if o.DomainName != "mybusiness.com" {
					t.Fatalf("expected domain snapshot, got %q", o.DomainName)
				}
				return o, nil
			},
		)

		got, err := uc.Submit(context.Background(), buyer(), s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Step != StepSucceeded || got.OrderID == "" {
			t.Fatalf("unexpected session: %+v", got)
		}
		if !strings.HasPrefix(got.FollowUpURL, "https://wa.me/8801711000000?text=") {
			t.Fatalf("expected follow-up link, got %q", got.FollowUpURL)
		}
	})

	t.Run("store failure allows retry from review", func(t *testing.T) {
		uc, repo := newCheckout(t)
		s, _ := uc.Start(context.Background(), buyer(), "pro")
		if _, err := uc.SetDetails(context.Background(), buyer(), s.ID, "mybusiness.com", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, errors.New("db"))

		if _, err := uc.Submit(context.Background(), buyer(), s.ID); err == nil {
			t.Fatal("expected submit failure")
		}
		got, _ := uc.Get(context.Background(), buyer(), s.ID)
		if got.Step != StepFailed {
			t.Fatalf("expected failed step, got %s", got.Step)
		}

		retried, err := uc.Retry(context.Background(), buyer(), s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if retried.Step != StepReviewingPayment {
			t.Fatalf("expected reviewing_payment, got %s", retried.Step)
		}

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		final, err := uc.Submit(context.Background(), buyer(), s.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if final.Step != StepSucceeded {
			t.Fatalf("expected succeeded, got %s", final.Step)
		}
	})

	t.Run("concurrent submit is rejected not queued", func(t *testing.T) {
		uc, repo := newCheckout(t)
		s, _ := uc.Start(context.Background(), buyer(), "pro")
		if _, err := uc.SetDetails(context.Background(), buyer(), s.ID, "mybusiness.com", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		inFlight := make(chan struct{})
		release := make(chan struct{})
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				close(inFlight)
				<-release
				return o, nil
			},
		)

		done := make(chan error, 1)
		go func() {
			_, err := uc.Submit(context.Background(), buyer(), s.ID)
			done <- err
		}()

		<-inFlight
		if _, err := uc.Submit(context.Background(), buyer(), s.ID); !errors.Is(err, ErrSubmitInFlight) {
			t.Fatalf("expected ErrSubmitInFlight, got %v", err)
		}
		close(release)

		if err := <-done; err != nil {
			t.Fatalf("first submit should succeed, got %v", err)
		}
	})

	t.Run("submit after success rejected", func(t *testing.T) {
		uc, repo := newCheckout(t)
		s, _ := uc.Start(context.Background(), buyer(), "pro")
		if _, err := uc.SetDetails(context.Background(), buyer(), s.ID, "mybusiness.com", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		if _, err := uc.Submit(context.Background(), buyer(), s.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := uc.Submit(context.Background(), buyer(), s.ID)
		if !errors.Is(err, ErrInvalidCheckoutStep) {
			t.Fatalf("expected ErrInvalidCheckoutStep, got %v", err)
		}
	})
}
