package handlers

import (
	"github.com/gofiber/fiber/v2"

	"orderdesk/internal/domain"
	applog "orderdesk/internal/log"
	"orderdesk/internal/services"
	"orderdesk/internal/validate"
)

type OrderHandler struct {
	Order *services.OrderService
}

type placeOrderRequest struct {
	UserID string                 `json:"userId"`
	Items  []services.ItemRequest `json:"items"`
}

// Place handles POST /api/orders/place.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var req placeOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}

	userID, ok := validate.ID(req.UserID)
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "userId"})
		return jsonError(c, fiber.StatusBadRequest, "userId is required")
	}
	if len(req.Items) == 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "items"})
		return jsonError(c, fiber.StatusBadRequest, "order items cannot be empty")
	}
	for _, it := range req.Items {
		if _, ok := validate.ID(it.ProductID); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "productId"})
			return jsonError(c, fiber.StatusBadRequest, "productId is required for every item")
		}
		if it.Quantity < 1 {
			applog.Security(c, "validation.fail", map[string]any{"field": "quantity"})
			return jsonError(c, fiber.StatusBadRequest, "quantity must be at least 1")
		}
	}

	orderID, err := h.Order.Place(userID, req.Items)
	if err != nil {
		return serviceError(c, "order.place.fail", err)
	}

	applog.Audit(c, "order.place", map[string]any{"order_id": orderID, "user_id": userID})
	return c.JSON(fiber.Map{
		"message": "Order placed successfully! Order ID: " + orderID,
		"orderId": orderID,
	})
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.Order.ListAll()
	if err != nil {
		return serviceError(c, "orders.list.fail", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(orders)
}

// ListByUser handles GET /api/orders/user/:userId.
func (h *OrderHandler) ListByUser(c *fiber.Ctx) error {
	userID, ok := validate.ID(c.Params("userId"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid user id")
	}
	orders, err := h.Order.ListByUser(userID)
	if err != nil {
		return serviceError(c, "orders.list.user.fail", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(orders)
}

// UpdateStatus handles PUT /api/orders/update/:id?status=&paymentStatus=.
// Absent or empty query values leave the stored field unchanged.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid order id")
	}

	status := c.Query("status")
	if status != "" {
		if status, ok = validate.Status(status); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "status"})
			return jsonError(c, fiber.StatusBadRequest, "invalid status value")
		}
	}
	paymentStatus := c.Query("paymentStatus")
	if paymentStatus != "" {
		if paymentStatus, ok = validate.Status(paymentStatus); !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "paymentStatus"})
			return jsonError(c, fiber.StatusBadRequest, "invalid paymentStatus value")
		}
	}

	o, err := h.Order.UpdateStatus(id, status, paymentStatus)
	if err != nil {
		return serviceError(c, "order.status.fail", err)
	}
	applog.Audit(c, "order.status", map[string]any{"order_id": id, "status": o.Status, "payment_status": o.PaymentStatus})
	return c.JSON(o)
}
