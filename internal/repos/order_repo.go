package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"orderdesk/internal/domain"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// CreateTx inserts a new order header inside the placement transaction.
func (r *OrderRepo) CreateTx(tx *sqlx.Tx, o *domain.Order) error {
	_, err := tx.Exec(`
	  INSERT INTO orders(id, user_id, status, payment_status, order_date, total_amount)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, o.ID, o.UserID, o.Status, o.PaymentStatus, o.OrderDate, o.TotalAmount)
	return err
}

// InsertItemTx inserts a single line item inside the placement transaction.
func (r *OrderRepo) InsertItemTx(tx *sqlx.Tx, it *domain.OrderItem) error {
	_, err := tx.Exec(`
	  INSERT INTO order_items(id, order_id, product_id, quantity)
	  VALUES(?, ?, ?, ?)
	`, it.ID, it.OrderID, it.ProductID, it.Quantity)
	return err
}

// SetTotalTx stamps the computed total on the order header.
func (r *OrderRepo) SetTotalTx(tx *sqlx.Tx, orderID string, total float64) error {
	_, err := tx.Exec(`UPDATE orders SET total_amount = ? WHERE id = ?`, total, orderID)
	return err
}

func (r *OrderRepo) Get(id string) (domain.Order, error) {
	var o domain.Order
	err := r.db.Get(&o, `
	  SELECT id, user_id, status, payment_status, order_date, total_amount
	  FROM orders
	  WHERE id = ?
	`, id)
	return o, err
}

func (r *OrderRepo) ListAll() ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT id, user_id, status, payment_status, order_date, total_amount
	  FROM orders
	  ORDER BY datetime(order_date) DESC
	`)
	return out, err
}

func (r *OrderRepo) ListByUser(userID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Select(&out, `
	  SELECT id, user_id, status, payment_status, order_date, total_amount
	  FROM orders
	  WHERE user_id = ?
	  ORDER BY datetime(order_date) DESC
	`, userID)
	return out, err
}

func (r *OrderRepo) Items(orderID string) ([]domain.OrderItem, error) {
	var out []domain.OrderItem
	err := r.db.Select(&out, `
	  SELECT id, order_id, product_id, quantity
	  FROM order_items
	  WHERE order_id = ?
	`, orderID)
	return out, err
}

// UpdateStatus overwrites both status fields. Callers keep a field unchanged
// by passing back the stored value. Returns sql.ErrNoRows if the id is unknown.
func (r *OrderRepo) UpdateStatus(id, status, paymentStatus string) error {
	res, err := r.db.Exec(`UPDATE orders SET status = ?, payment_status = ? WHERE id = ?`,
		status, paymentStatus, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
