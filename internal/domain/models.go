package domain

type Product struct {
	ID            string  `db:"id" json:"id"`
	Name          string  `db:"name" json:"name"`
	Price         float64 `db:"price" json:"price"`
	StockQuantity int     `db:"stock_quantity" json:"stock_quantity"`
	Description   string  `db:"description" json:"description"`
	ImageURL      string  `db:"image_url" json:"image_url"`
	CreatedAt     string  `db:"created_at" json:"created_at"`
	UpdatedAt     string  `db:"updated_at" json:"updated_at,omitempty"`
}

type Order struct {
	ID            string  `db:"id" json:"id"`
	UserID        string  `db:"user_id" json:"user_id"`
	Status        string  `db:"status" json:"status"`                 // PLACED on creation
	PaymentStatus string  `db:"payment_status" json:"payment_status"` // PENDING on creation
	OrderDate     string  `db:"order_date" json:"order_date"`
	TotalAmount   float64 `db:"total_amount" json:"total_amount"`
}

type OrderItem struct {
	ID        string `db:"id" json:"id"`
	OrderID   string `db:"order_id" json:"order_id"`
	ProductID string `db:"product_id" json:"product_id"`
	Quantity  int    `db:"quantity" json:"quantity"`
}
