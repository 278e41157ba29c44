package ordering

import (
	"context"

	"github.com/google/uuid"

	"github.com/pizzeria/backend/internal/domain/ordering"
	"github.com/pizzeria/backend/internal/domain/shared"
)

// OrderService serves order history for customers and order management
// for the back office
type OrderService struct {
	orderRepo   ordering.OrderRepository
	paymentRepo ordering.PaymentRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo ordering.OrderRepository, paymentRepo ordering.PaymentRepository) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
	}
}

// ListMine lists the customer's orders, newest first
func (s *OrderService) ListMine(ctx context.Context, customerID uuid.UUID, filter shared.Filter) (*shared.Paginated[OrderResponse], error) {
	page, err := s.orderRepo.FindByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, err
	}
	return mapOrderPage(page), nil
}

// Get retrieves one of the customer's orders. Orders of other customers
// come back as not found.
func (s *OrderService) Get(ctx context.Context, customerID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, shared.ErrNotFound
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// Cancel cancels one of the customer's orders at any point before
// delivery
func (s *OrderService) Cancel(ctx context.Context, customerID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CustomerID != customerID {
		return nil, shared.ErrNotFound
	}
	if err := order.Cancel(); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// AdminGet retrieves any order with its payment attempts
func (s *OrderService) AdminGet(ctx context.Context, orderID uuid.UUID) (*OrderResponse, []PaymentResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	payments, err := s.paymentRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	resp := ToOrderResponse(order)
	paymentResponses := make([]PaymentResponse, len(payments))
	for i := range payments {
		paymentResponses[i] = ToPaymentResponse(&payments[i])
	}
	return &resp, paymentResponses, nil
}

// List lists orders for the back office, optionally filtered by status
func (s *OrderService) List(ctx context.Context, status *ordering.OrderStatus, filter shared.Filter) (*shared.Paginated[OrderResponse], error) {
	if status != nil {
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status")
		}
		page, err := s.orderRepo.FindByStatus(ctx, *status, filter)
		if err != nil {
			return nil, err
		}
		return mapOrderPage(page), nil
	}

	orders, err := s.orderRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.orderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(orders, total, filter.Page, filter.Limit())
	return mapOrderPage(&page), nil
}

// Transition moves an order to the target status if the state machine
// allows it
func (s *OrderService) Transition(ctx context.Context, orderID uuid.UUID, target ordering.OrderStatus) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := order.TransitionTo(target); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}
	resp := ToOrderResponse(order)
	return &resp, nil
}

// CountByStatus returns the dashboard counters, one row per status
func (s *OrderService) CountByStatus(ctx context.Context) ([]StatusCountResponse, error) {
	counts, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	statuses := []ordering.OrderStatus{
		ordering.StatusPending,
		ordering.StatusConfirmed,
		ordering.StatusShipped,
		ordering.StatusDelivered,
		ordering.StatusCancelled,
	}
	responses := make([]StatusCountResponse, 0, len(statuses))
	for _, status := range statuses {
		responses = append(responses, StatusCountResponse{Status: status, Count: counts[status]})
	}
	return responses, nil
}

func mapOrderPage(page *shared.Paginated[ordering.Order]) *shared.Paginated[OrderResponse] {
	items := make([]OrderResponse, len(page.Items))
	for i := range page.Items {
		items[i] = ToOrderResponse(&page.Items[i])
	}
	return &shared.Paginated[OrderResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
