package repos

import (
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"orderdesk/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT
	    id, name, price, stock_quantity, COALESCE(description,'') AS description,
	    COALESCE(image_url,'') AS image_url, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  ORDER BY created_at DESC
	`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT
	    id, name, price, stock_quantity, COALESCE(description,'') AS description,
	    COALESCE(image_url,'') AS image_url, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

func (r *ProductRepo) Create(p *domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id, name, price, stock_quantity, description, image_url, created_at)
	  VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, p.ID, p.Name, p.Price, p.StockQuantity, p.Description, p.ImageURL)
	return err
}

// Update overwrites all mutable fields. Returns sql.ErrNoRows if the id is unknown.
func (r *ProductRepo) Update(p *domain.Product) error {
	res, err := r.db.Exec(`
	  UPDATE products
	  SET name = ?, price = ?, stock_quantity = ?, description = ?, image_url = ?, updated_at = ?
	  WHERE id = ?
	`, p.Name, p.Price, p.StockQuantity, p.Description, p.ImageURL, time.Now().UTC().Format(time.RFC3339), p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Patch applies a sparse field set. Only recognized keys are applied;
// anything else in updates is ignored.
func (r *ProductRepo) Patch(id string, updates map[string]any) error {
	if _, err := r.Get(id); err != nil {
		return err
	}

	set := ""
	args := []any{}
	add := func(col string, v any) {
		if set != "" {
			set += ", "
		}
		set += col + " = ?"
		args = append(args, v)
	}
	for key, value := range updates {
		switch key {
		case "name":
			if s, ok := value.(string); ok {
				add("name", s)
			}
		case "price":
			if f, ok := value.(float64); ok {
				add("price", f)
			}
		case "stock_quantity":
			if f, ok := value.(float64); ok { // JSON numbers decode as float64
				add("stock_quantity", int(f))
			}
		case "description":
			if s, ok := value.(string); ok {
				add("description", s)
			}
		case "image_url":
			if s, ok := value.(string); ok {
				add("image_url", s)
			}
		}
	}
	if set == "" {
		return nil
	}
	add("updated_at", time.Now().UTC().Format(time.RFC3339))
	args = append(args, id)

	_, err := r.db.Exec(`UPDATE products SET `+set+` WHERE id = ?`, args...)
	return err
}

// Delete removes a product. Returns sql.ErrNoRows if the id is unknown.
func (r *ProductRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetTx reads a product inside the placement transaction.
func (r *ProductRepo) GetTx(tx *sqlx.Tx, id string) (domain.Product, error) {
	var p domain.Product
	err := tx.Get(&p, `
	  SELECT
	    id, name, price, stock_quantity, COALESCE(description,'') AS description,
	    COALESCE(image_url,'') AS image_url, created_at, COALESCE(updated_at,'') AS updated_at
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

// DecrementStock subtracts "by" units if enough stock exists.
// Returns false when the guard fails, so stock can never go negative.
func (r *ProductRepo) DecrementStock(tx *sqlx.Tx, id string, by int) (bool, error) {
	res, err := tx.Exec(`
	  UPDATE products
	  SET stock_quantity = stock_quantity - ?
	  WHERE id = ? AND stock_quantity >= ?
	`, by, id, by)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
