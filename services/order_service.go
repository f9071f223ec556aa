package services

import (
	"context"
	"errors"
	"time"

	"orchid-shop/models"

	"github.com/rs/zerolog/log"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrEmptyOrder         = errors.New("order has no details")
)

// OrderStore is the persistence port. Satisfied by
// *repositories.OrderRepository.
type OrderStore interface {
	FindAll(ctx context.Context) ([]models.Order, error)
	FindByID(ctx context.Context, id string) (*models.Order, error)
	FindByAccount(ctx context.Context, accountID string) ([]models.Order, error)
	FindByStatus(ctx context.Context, status string) ([]models.Order, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]models.Order, error)
	Insert(ctx context.Context, order *models.Order) error
	UpdateStatus(ctx context.Context, id string, status string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// AccountLookup resolves the buyer. Satisfied by
// *repositories.AccountRepository.
type AccountLookup interface {
	FindByID(ctx context.Context, id string) (*models.Account, error)
}

type OrderService struct {
	orders   OrderStore
	catalog  CatalogLookup
	accounts AccountLookup
	mailer   *models.EmailService
}

// NewOrderService wires the order workflow. mailer may be nil; order
// confirmations are then skipped.
func NewOrderService(orders OrderStore, catalog CatalogLookup, accounts AccountLookup, mailer *models.EmailService) *OrderService {
	return &OrderService{orders: orders, catalog: catalog, accounts: accounts, mailer: mailer}
}

// CreateOrder snapshots each orchid's name and price into embedded details
// and computes the total server-side. Client-provided prices are never
// trusted.
func (s *OrderService) CreateOrder(ctx context.Context, accountID string, req models.CreateOrderRequest) (*models.Order, error) {
	if len(req.OrderDetails) == 0 {
		return nil, ErrEmptyOrder
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, ErrAccountNotFound
	}

	details := make([]models.OrderDetail, 0, len(req.OrderDetails))
	total := 0.0
	for _, d := range req.OrderDetails {
		if d.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		orchid, err := s.catalog.FindByID(ctx, d.OrchidID)
		if err != nil {
			return nil, ErrOrchidNotFound
		}

		subtotal := orchid.Price * float64(d.Quantity)
		details = append(details, models.OrderDetail{
			OrchidID:   orchid.ID,
			OrchidName: orchid.OrchidName,
			UnitPrice:  orchid.Price,
			Quantity:   d.Quantity,
			Subtotal:   subtotal,
		})
		total += subtotal
	}

	order := &models.Order{
		AccountID:       account.ID,
		AccountName:     account.AccountName,
		OrderDate:       time.Now(),
		OrderStatus:     models.OrderStatusPending,
		TotalAmount:     total,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		OrderDetails:    details,
	}
	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}

	if s.mailer != nil {
		go func(email, orderID string, amount float64) {
			if err := s.mailer.SendOrderConfirmationEmail(email, orderID, amount); err != nil {
				log.Error().Err(err).Str("order_id", orderID).Msg("failed to send order confirmation")
			}
		}(account.Email, order.ID.Hex(), total)
	}

	return order, nil
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) CountOrders(ctx context.Context) (int64, error) {
	return s.orders.Count(ctx)
}

func (s *OrderService) GetOrderByID(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) GetOrdersByAccount(ctx context.Context, accountID string) ([]models.Order, error) {
	return s.orders.FindByAccount(ctx, accountID)
}

func (s *OrderService) GetOrdersByStatus(ctx context.Context, status string) ([]models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	return s.orders.FindByStatus(ctx, status)
}

func (s *OrderService) GetOrdersByDateRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	return s.orders.FindByDateRange(ctx, start, end)
}

func (s *OrderService) UpdateOrderStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, ErrOrderNotFound
	}
	return s.GetOrderByID(ctx, id)
}

// CalculateOrderTotal recomputes the total from the embedded details rather
// than returning the stored amount.
func (s *OrderService) CalculateOrderTotal(ctx context.Context, id string) (float64, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return 0, ErrOrderNotFound
	}

	total := 0.0
	for _, d := range order.OrderDetails {
		total += d.UnitPrice * float64(d.Quantity)
	}
	return total, nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		return ErrOrderNotFound
	}
	return nil
}
