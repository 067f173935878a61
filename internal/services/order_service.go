package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"orderdesk/internal/domain"
)

// Store interfaces are satisfied by the concrete repos and injected plainly;
// the service never reaches for a global.

type UserStore interface {
	ByID(id string) (*domain.User, error)
}

type ProductStore interface {
	GetTx(tx *sqlx.Tx, id string) (domain.Product, error)
	DecrementStock(tx *sqlx.Tx, id string, by int) (bool, error)
}

type OrderStore interface {
	CreateTx(tx *sqlx.Tx, o *domain.Order) error
	InsertItemTx(tx *sqlx.Tx, it *domain.OrderItem) error
	SetTotalTx(tx *sqlx.Tx, orderID string, total float64) error
	Get(id string) (domain.Order, error)
	ListAll() ([]domain.Order, error)
	ListByUser(userID string) ([]domain.Order, error)
	UpdateStatus(id, status, paymentStatus string) error
}

type ItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type OrderService struct {
	DB       *sqlx.DB
	Users    UserStore
	Products ProductStore
	Orders   OrderStore
}

func NewOrderService(db *sqlx.DB, users UserStore, products ProductStore, orders OrderStore) *OrderService {
	return &OrderService{DB: db, Users: users, Products: products, Orders: orders}
}

// Place converts a request into a persisted order with line items, stock
// deducted and total computed. The whole sequence runs in one transaction:
// a failure on any line leaves no order, no items and no stock change.
func (s *OrderService) Place(userID string, items []ItemRequest) (string, error) {
	if len(items) == 0 {
		return "", errors.New("order has no items")
	}

	if _, err := s.Users.ByID(userID); err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return "", err
	}

	tx, err := s.DB.Beginx()
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback() }()

	order := &domain.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Status:        "PLACED",
		PaymentStatus: "PENDING",
		OrderDate:     time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.Orders.CreateTx(tx, order); err != nil {
		return "", err
	}

	total := 0.0
	for _, it := range items {
		p, err := s.Products.GetTx(tx, it.ProductID)
		if err != nil {
			if err == sql.ErrNoRows {
				return "", fmt.Errorf("%w: %s", ErrProductNotFound, it.ProductID)
			}
			return "", err
		}
		if p.StockQuantity < it.Quantity {
			return "", fmt.Errorf("%w for %s (need %d, have %d)", ErrInsufficientStock, p.Name, it.Quantity, p.StockQuantity)
		}
		ok, err := s.Products.DecrementStock(tx, it.ProductID, it.Quantity)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("%w for %s", ErrInsufficientStock, p.Name)
		}
		if err := s.Orders.InsertItemTx(tx, &domain.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   order.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		}); err != nil {
			return "", err
		}
		total += p.Price * float64(it.Quantity)
	}

	if err := s.Orders.SetTotalTx(tx, order.ID, total); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", err
	}
	return order.ID, nil
}

func (s *OrderService) ListAll() ([]domain.Order, error) {
	return s.Orders.ListAll()
}

func (s *OrderService) ListByUser(userID string) ([]domain.Order, error) {
	return s.Orders.ListByUser(userID)
}

// UpdateStatus overwrites only the fields provided; empty values leave the
// stored field unchanged.
func (s *OrderService) UpdateStatus(orderID, status, paymentStatus string) (domain.Order, error) {
	o, err := s.Orders.Get(orderID)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Order{}, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
		}
		return domain.Order{}, err
	}
	if status != "" {
		o.Status = status
	}
	if paymentStatus != "" {
		o.PaymentStatus = paymentStatus
	}
	if err := s.Orders.UpdateStatus(o.ID, o.Status, o.PaymentStatus); err != nil {
		return domain.Order{}, err
	}
	return o, nil
}
