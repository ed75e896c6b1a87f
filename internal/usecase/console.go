package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"webux_bd/internal/domain/entities"
)

// ConsolePageSize is the fixed page size of the admin order list.
const ConsolePageSize = 5

// StatusFilterAll disables status filtering.
const StatusFilterAll = "all"

var ErrUnknownConsoleAction = errors.New("unknown console action")

// ConsoleState is the admin console view-model: the last fetched order list
// plus search, filter, pagination and selection state. All mutation goes
// through its methods; the authoritative order data always lives in the
// store, this is a UI-layer snapshot rebuilt wholesale on every refresh.
type ConsoleState struct {
	Orders       []entities.Order
	Query        string
	StatusFilter string
	Page         int
	PageSize     int
	Selected     map[string]struct{}
}

func NewConsoleState() ConsoleState {
	return ConsoleState{
		StatusFilter: StatusFilterAll,
		Page:         1,
		PageSize:     ConsolePageSize,
		Selected:     make(map[string]struct{}),
	}
}

// SetOrders replaces the snapshot after a refresh. Filters, page and
// selection persist, but the page is clamped back into range when the new
// list is smaller than the old one.
func (s *ConsoleState) SetOrders(orders []entities.Order) {
	s.Orders = orders
	s.clampPage()
}

// Search updates the query and resets pagination: a changed result set
// invalidates the previous page position.
func (s *ConsoleState) Search(query string) {
	s.Query = query
	s.Page = 1
}

// SetStatusFilter accepts a concrete status or StatusFilterAll and resets
// pagination.
func (s *ConsoleState) SetStatusFilter(filter string) {
	if filter == "" {
		filter = StatusFilterAll
	}
	s.StatusFilter = filter
	s.Page = 1
}

func (s *ConsoleState) SetPage(page int) {
	s.Page = page
	s.clampPage()
}

func (s *ConsoleState) clampPage() {
	if max := s.PageCount(); s.Page > max {
		s.Page = max
	}
	if s.Page < 1 {
		s.Page = 1
	}
}

// Filtered applies the status filter and the search query. Search matches
// case-insensitively against order id, customer email, customer name, plan
// name and domain name; any single field matching is sufficient.
func (s *ConsoleState) Filtered() []entities.Order {
	q := strings.ToLower(strings.TrimSpace(s.Query))
	out := make([]entities.Order, 0, len(s.Orders))
	for _, o := range s.Orders {
		if s.StatusFilter != StatusFilterAll && string(o.Status) != s.StatusFilter {
			continue
		}
		if q != "" && !matchesQuery(o, q) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func matchesQuery(o entities.Order, q string) bool {
	for _, field := range []string{o.ID, o.UserEmail, o.UserName, o.PlanName, o.DomainName} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// PageCount is the number of pages of the filtered list, at least 1.
func (s *ConsoleState) PageCount() int {
	n := (len(s.Filtered()) + s.PageSize - 1) / s.PageSize
	if n < 1 {
		return 1
	}
	return n
}

// PageOrders returns the current page slice of the filtered list.
func (s *ConsoleState) PageOrders() []entities.Order {
	filtered := s.Filtered()
	start := (s.Page - 1) * s.PageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + s.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

func (s *ConsoleState) ToggleSelect(id string) {
	if _, ok := s.Selected[id]; ok {
		delete(s.Selected, id)
		return
	}
	s.Selected[id] = struct{}{}
}

// ToggleSelectAll is page-scoped: when the current page is already fully
// selected it clears the whole selection, otherwise the selection becomes
// exactly the current page's ids.
func (s *ConsoleState) ToggleSelectAll() {
	page := s.PageOrders()
	allSelected := len(page) > 0
	for _, o := range page {
		if _, ok := s.Selected[o.ID]; !ok {
			allSelected = false
			break
		}
	}

	s.Selected = make(map[string]struct{})
	if allSelected {
		return
	}
	for _, o := range page {
		s.Selected[o.ID] = struct{}{}
	}
}

// SetSelection replaces the selection with the given ids.
func (s *ConsoleState) SetSelection(ids []string) {
	s.Selected = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			s.Selected[id] = struct{}{}
		}
	}
}

func (s *ConsoleState) ClearSelection() {
	s.Selected = make(map[string]struct{})
}

// SelectedIDs returns the selected ids in snapshot order, with ids that no
// longer appear in the snapshot appended after (they stay actionable until
// the next refresh drops them).
func (s *ConsoleState) SelectedIDs() []string {
	ids := make([]string, 0, len(s.Selected))
	seen := make(map[string]struct{}, len(s.Selected))
	for _, o := range s.Orders {
		if _, ok := s.Selected[o.ID]; ok {
			ids = append(ids, o.ID)
			seen[o.ID] = struct{}{}
		}
	}
	for id := range s.Selected {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// AdminConsole drives the admin order workflow over the view-model. Every
// mutation re-fetches from the store afterwards; there is no optimistic
// local update.
type AdminConsole struct {
	orders IOrderUseCase
	admin  entities.User

	mu    sync.Mutex
	state ConsoleState
}

func NewAdminConsole(orders IOrderUseCase, admin entities.User) *AdminConsole {
	return &AdminConsole{orders: orders, admin: admin, state: NewConsoleState()}
}

// Refresh replaces the order snapshot. Selection, filters and page persist
// across refreshes (the page is clamped into range).
func (c *AdminConsole) Refresh(ctx context.Context) error {
	list, err := c.orders.List(ctx, c.admin.ID, c.admin.IsAdmin)
	if err != nil {
		log.Printf("[console][refresh] list failed admin=%s err=%v", c.admin.ID, err)
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SetOrders(list)
	return nil
}

func (c *AdminConsole) Search(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Search(query)
}

func (c *AdminConsole) SetStatusFilter(filter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SetStatusFilter(filter)
}

func (c *AdminConsole) SetPage(page int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SetPage(page)
}

func (c *AdminConsole) SetSelection(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.SetSelection(ids)
}

// State returns a snapshot copy of the view-model.
func (c *AdminConsole) State() ConsoleState {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := c.state
	snap.Orders = append([]entities.Order(nil), c.state.Orders...)
	snap.Selected = make(map[string]struct{}, len(c.state.Selected))
	for id := range c.state.Selected {
		snap.Selected[id] = struct{}{}
	}
	return snap
}

// command resolves a target status to its lifecycle command.
func (c *AdminConsole) command(to entities.OrderStatus) (func(context.Context, string) (entities.Order, error), error) {
	switch to {
	case entities.OrderStatusApproved:
		return c.orders.Approve, nil
	case entities.OrderStatusInProgress:
		return c.orders.StartWork, nil
	case entities.OrderStatusDelivered:
		return c.orders.Deliver, nil
	case entities.OrderStatusCompleted:
		return c.orders.Complete, nil
	case entities.OrderStatusCancelled:
		return c.orders.Cancel, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownConsoleAction, to)
	}
}

// Transition applies one status change and refreshes. A rejected store call
// is logged and leaves the list untouched; it never blocks further actions.
func (c *AdminConsole) Transition(ctx context.Context, orderID string, to entities.OrderStatus) error {
	cmd, err := c.command(to)
	if err != nil {
		return err
	}
	if _, err := cmd(ctx, orderID); err != nil {
		log.Printf("[console][transition] order=%s to=%s err=%v", orderID, to, err)
		return err
	}
	return c.Refresh(ctx)
}

// BulkTransition applies one status change to every selected order
// concurrently and awaits the batch. Partial failure is accepted: whatever
// succeeded stays applied. The selection is cleared and the list refreshed
// exactly once afterwards. Returns how many updates failed.
func (c *AdminConsole) BulkTransition(ctx context.Context, to entities.OrderStatus) (int, error) {
	cmd, err := c.command(to)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	ids := c.state.SelectedIDs()
	c.mu.Unlock()

	var wg sync.WaitGroup
	var failedMu sync.Mutex
	failed := 0
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := cmd(ctx, id); err != nil {
				log.Printf("[console][bulk] order=%s to=%s err=%v", id, to, err)
				failedMu.Lock()
				failed++
				failedMu.Unlock()
			}
		}(id)
	}
	wg.Wait()

	c.mu.Lock()
	c.state.ClearSelection()
	c.mu.Unlock()

	return failed, c.Refresh(ctx)
}
