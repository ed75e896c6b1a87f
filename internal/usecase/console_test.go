package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"webux_bd/internal/domain/entities"
	mock_interfaces "webux_bd/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func seedOrders(n int) []entities.Order {
	out := make([]entities.Order, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entities.Order{
			ID:            fmt.Sprintf("ord-%02d", i),
			UserID:        fmt.Sprintf("user-%02d", i),
			UserEmail:     fmt.Sprintf("customer%02d@example.com", i),
			UserName:      fmt.Sprintf("Customer %02d", i),
			PlanName:      "Professional",
			DomainName:    fmt.Sprintf("shop%02d.com", i),
			TotalAmount:   15000,
			PaidAmount:    7500,
			DueAmount:     7500,
			PaymentStatus: entities.PaymentStatusPartial,
			Status:        entities.OrderStatusPending,
		})
	}
	return out
}

func TestConsoleState_SearchAndFilter(t *testing.T) {
	t.Run("search resets page", func(t *testing.T) {
		s := NewConsoleState()
		s.SetOrders(seedOrders(12))
		s.SetPage(3)

		s.Search("customer")
		if s.Page != 1 {
			t.Fatalf("expected page reset to 1, got %d", s.Page)
		}
	})

	t.Run("status filter resets page", func(t *testing.T) {
		s := NewConsoleState()
		s.SetOrders(seedOrders(12))
		s.SetPage(2)

		s.SetStatusFilter(string(entities.OrderStatusPending))
		if s.Page != 1 {
			t.Fatalf("expected page reset to 1, got %d", s.Page)
		}
	})

	t.Run("domain substring matches exactly one of five", func(t *testing.T) {
		s := NewConsoleState()
		s.SetOrders(seedOrders(5))

		s.Search("shop03")
		filtered := s.Filtered()
		if len(filtered) != 1 {
			t.Fatalf("expected 1 match, got %d", len(filtered))
		}
		page := s.PageOrders()
		if len(page) != 1 || page[0].ID != "ord-03" {
			t.Fatalf("expected only ord-03 on page, got %+v", page)
		}
	})

	t.Run("search is case-insensitive and OR across fields", func(t *testing.T) {
		s := NewConsoleState()
		orders := seedOrders(3)
		orders[1].PlanName = "E-Commerce / Custom"
		s.SetOrders(orders)

		s.Search("E-COMMERCE")
		if got := s.Filtered(); len(got) != 1 || got[0].ID != "ord-01" {
			t.Fatalf("expected plan-name match on ord-01, got %+v", got)
		}

		s.Search("customer02@")
		if got := s.Filtered(); len(got) != 1 || got[0].ID != "ord-02" {
			t.Fatalf("expected email match on ord-02, got %+v", got)
		}
	})

	t.Run("status filter excludes other statuses", func(t *testing.T) {
		s := NewConsoleState()
		orders := seedOrders(4)
		orders[2].Status = entities.OrderStatusDelivered
		s.SetOrders(orders)

		s.SetStatusFilter(string(entities.OrderStatusDelivered))
		if got := s.Filtered(); len(got) != 1 || got[0].ID != "ord-02" {
			t.Fatalf("expected only delivered order, got %+v", got)
		}
	})
}

func TestConsoleState_Pagination(t *testing.T) {
	t.Run("fixed page size of five", func(t *testing.T) {
		s := NewConsoleState()
		s.SetOrders(seedOrders(12))

		if got := s.PageOrders(); len(got) != 5 {
			t.Fatalf("expected 5 orders on page 1, got %d", len(got))
		}
		s.SetPage(3)
		if got := s.PageOrders(); len(got) != 2 {
			t.Fatalf("expected 2 orders on page 3, got %d", len(got))
		}
		if s.PageCount() != 3 {
			t.Fatalf("expected 3 pages, got %d", s.PageCount())
		}
	})

	t.Run("refresh shrink clamps page", func(t *testing.T) {
		s := NewConsoleState()
		s.SetOrders(seedOrders(12))
		s.SetPage(3)

		s.SetOrders(seedOrders(4))
		if s.Page != 1 {
			t.Fatalf("expected page clamped to 1, got %d", s.Page)
		}
		if got := s.PageOrders(); len(got) != 4 {
			t.Fatalf("expected all 4 orders visible, got %d", len(got))
		}
	})

	t.Run("out of range page requests clamp", func(t *testing.T) {
		s := NewConsoleState()
		s.SetOrders(seedOrders(7))

		s.SetPage(99)
		if s.Page != 2 {
			t.Fatalf("expected clamp to last page 2, got %d", s.Page)
		}
		s.SetPage(-3)
		if s.Page != 1 {
			t.Fatalf("expected clamp to 1, got %d", s.Page)
		}
	})
}

func TestConsoleState_Selection(t *testing.T) {
	t.Run("toggle select all twice empties selection", func(t *testing.T) {
		s := NewConsoleState()
		s.SetOrders(seedOrders(12))

		s.ToggleSelectAll()
		if len(s.Selected) != 5 {
			t.Fatalf("expected page-scoped selection of 5, got %d", len(s.Selected))
		}
		s.ToggleSelectAll()
		if len(s.Selected) != 0 {
			t.Fatalf("expected empty selection, got %d", len(s.Selected))
		}
	})

	t.Run("select all is page scoped not global", func(t *testing.T) {
		s := NewConsoleState()
		s.SetOrders(seedOrders(12))
		s.SetPage(3)

		s.ToggleSelectAll()
		if len(s.Selected) != 2 {
			t.Fatalf("expected 2 selected on last page, got %d", len(s.Selected))
		}
		for _, id := range []string{"ord-10", "ord-11"} {
			if _, ok := s.Selected[id]; !ok {
				t.Fatalf("expected %s selected", id)
			}
		}
	})

	t.Run("partial selection promotes to full page", func(t *testing.T) {
		s := NewConsoleState()
		s.SetOrders(seedOrders(6))

		s.ToggleSelect("ord-01")
		s.ToggleSelectAll()
		if len(s.Selected) != 5 {
			t.Fatalf("expected full page selection of 5, got %d", len(s.Selected))
		}
	})

	t.Run("toggle single id", func(t *testing.T) {
		s := NewConsoleState()
		s.SetOrders(seedOrders(2))

		s.ToggleSelect("ord-00")
		if _, ok := s.Selected["ord-00"]; !ok {
			t.Fatal("expected ord-00 selected")
		}
		s.ToggleSelect("ord-00")
		if len(s.Selected) != 0 {
			t.Fatal("expected ord-00 deselected")
		}
	})
}

func TestAdminConsole_Refresh(t *testing.T) {
	t.Run("replaces snapshot and keeps filters", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		console := NewAdminConsole(NewOrderUseCase(repo), entities.User{ID: "admin", IsAdmin: true})

		repo.EXPECT().ListAll(gomock.Any()).Return(seedOrders(6), nil)
		console.Search("shop")
		console.SetStatusFilter(string(entities.OrderStatusPending))
		if err := console.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		state := console.State()
		if len(state.Orders) != 6 {
			t.Fatalf("expected 6 orders, got %d", len(state.Orders))
		}
		if state.Query != "shop" || state.StatusFilter != string(entities.OrderStatusPending) {
			t.Fatalf("filters must survive refresh: %+v", state)
		}
	})

	t.Run("list failure leaves state untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		console := NewAdminConsole(NewOrderUseCase(repo), entities.User{ID: "admin", IsAdmin: true})

		repo.EXPECT().ListAll(gomock.Any()).Return(seedOrders(3), nil)
		if err := console.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		repo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db"))
		if err := console.Refresh(context.Background()); err == nil {
			t.Fatal("expected refresh error")
		}
		if got := console.State().Orders; len(got) != 3 {
			t.Fatalf("stale snapshot must survive failed refresh, got %d", len(got))
		}
	})
}

func TestAdminConsole_BulkTransition(t *testing.T) {
	t.Run("partial failure keeps successes and clears selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		console := NewAdminConsole(NewOrderUseCase(repo), entities.User{ID: "admin", IsAdmin: true})

		pending := seedOrders(3)
		repo.EXPECT().ListAll(gomock.Any()).Return(pending, nil)
		if err := console.Refresh(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		console.SetSelection([]string{"ord-00", "ord-01", "ord-02"})

		for _, o := range pending {
			repo.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)
		}
		approved := entities.OrderStatusApproved
		repo.EXPECT().ApplyUpdate(gomock.Any(), "ord-00", gomock.Any()).Return(entities.Order{ID: "ord-00", Status: approved}, nil)
		repo.EXPECT().ApplyUpdate(gomock.Any(), "ord-01", gomock.Any()).Return(entities.Order{}, errors.New("db"))
		repo.EXPECT().ApplyUpdate(gomock.Any(), "ord-02", gomock.Any()).Return(entities.Order{ID: "ord-02", Status: approved}, nil)

		// Post-batch refresh happens exactly once.
		repo.EXPECT().ListAll(gomock.Any()).Return(pending, nil)

		failed, err := console.BulkTransition(context.Background(), entities.OrderStatusApproved)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if failed != 1 {
			t.Fatalf("expected 1 failure, got %d", failed)
		}
		if got := console.State().Selected; len(got) != 0 {
			t.Fatalf("expected selection cleared, got %v", got)
		}
	})

	t.Run("unknown target status", func(t *testing.T) {
		console := NewAdminConsole(NewOrderUseCase(nil), entities.User{ID: "admin", IsAdmin: true})
		_, err := console.BulkTransition(context.Background(), entities.OrderStatus("archived"))
		if !errors.Is(err, ErrUnknownConsoleAction) {
			t.Fatalf("expected ErrUnknownConsoleAction, got %v", err)
		}
	})
}

func TestAdminConsole_Transition(t *testing.T) {
	t.Run("store rejection does not refresh", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		console := NewAdminConsole(NewOrderUseCase(repo), entities.User{ID: "admin", IsAdmin: true})

		repo.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{}, errors.New("db"))

		if err := console.Transition(context.Background(), "ord-1", entities.OrderStatusApproved); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("success refreshes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		console := NewAdminConsole(NewOrderUseCase(repo), entities.User{ID: "admin", IsAdmin: true})

		o := seedOrders(1)[0]
		repo.EXPECT().GetByID(gomock.Any(), o.ID).Return(o, nil)
		repo.EXPECT().ApplyUpdate(gomock.Any(), o.ID, gomock.Any()).Return(o, nil)
		repo.EXPECT().ListAll(gomock.Any()).Return(seedOrders(1), nil)

		if err := console.Transition(context.Background(), o.ID, entities.OrderStatusApproved); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
