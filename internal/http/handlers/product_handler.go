package handlers

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"orderdesk/internal/domain"
	applog "orderdesk/internal/log"
	"orderdesk/internal/repos"
	"orderdesk/internal/validate"
)

type ProductHandler struct {
	Products *repos.ProductRepo
}

type productRequest struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
}

// checkProduct validates a create/update body; on failure it names the bad field.
func checkProduct(req *productRequest) (field, msg string, ok bool) {
	name, ok := validate.ProductName(req.Name)
	if !ok {
		return "name", "product name is required", false
	}
	req.Name = name
	if req.Price <= 0 {
		return "price", "price must be positive", false
	}
	if req.StockQuantity < 0 {
		return "stock_quantity", "stock quantity cannot be negative", false
	}
	return "", "", true
}

// Create handles POST /api/products.
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}
	if field, msg, ok := checkProduct(&req); !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": field})
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	p := &domain.Product{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
	}
	if err := h.Products.Create(p); err != nil {
		applog.Error(c, "product.create.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not create product")
	}

	created, err := h.Products.Get(p.ID)
	if err != nil {
		applog.Error(c, "product.create.readback.fail", err, map[string]any{"product_id": p.ID})
		return jsonError(c, fiber.StatusInternalServerError, "could not create product")
	}
	applog.Audit(c, "product.create", map[string]any{"product_id": p.ID})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.Products.List()
	if err != nil {
		applog.Error(c, "products.list.fail", err, nil)
		return jsonError(c, fiber.StatusInternalServerError, "could not load products")
	}
	if products == nil {
		products = []domain.Product{}
	}
	return c.JSON(products)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	p, err := h.Products.Get(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "product not found")
		}
		applog.Error(c, "product.get.fail", err, map[string]any{"product_id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not load product")
	}
	return c.JSON(p)
}

// Update handles PUT /api/products/update/:id (full overwrite).
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	var req productRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}
	if field, msg, ok := checkProduct(&req); !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": field})
		return jsonError(c, fiber.StatusBadRequest, msg)
	}

	p := &domain.Product{
		ID:            id,
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
	}
	if err := h.Products.Update(p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "product not found")
		}
		applog.Error(c, "product.update.fail", err, map[string]any{"product_id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not update product")
	}

	updated, err := h.Products.Get(id)
	if err != nil {
		applog.Error(c, "product.update.readback.fail", err, map[string]any{"product_id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not update product")
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": id})
	return c.JSON(updated)
}

// Patch handles PATCH /api/products/update/:id. Recognized keys are applied;
// unrecognized keys are ignored without error.
func (h *ProductHandler) Patch(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	updates := map[string]any{}
	if err := c.BodyParser(&updates); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "malformed request body")
	}
	if price, ok := updates["price"].(float64); ok && price <= 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "price"})
		return jsonError(c, fiber.StatusBadRequest, "price must be positive")
	}
	if qty, ok := updates["stock_quantity"].(float64); ok && qty < 0 {
		applog.Security(c, "validation.fail", map[string]any{"field": "stock_quantity"})
		return jsonError(c, fiber.StatusBadRequest, "stock quantity cannot be negative")
	}

	if err := h.Products.Patch(id, updates); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "product not found")
		}
		applog.Error(c, "product.patch.fail", err, map[string]any{"product_id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not update product")
	}

	updated, err := h.Products.Get(id)
	if err != nil {
		applog.Error(c, "product.patch.readback.fail", err, map[string]any{"product_id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not update product")
	}
	applog.Audit(c, "product.patch", map[string]any{"product_id": id})
	return c.JSON(updated)
}

// Delete handles DELETE /api/products/delete/:id.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "invalid product id")
	}
	if err := h.Products.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return jsonError(c, fiber.StatusNotFound, "product not found")
		}
		applog.Error(c, "product.delete.fail", err, map[string]any{"product_id": id})
		return jsonError(c, fiber.StatusInternalServerError, "could not delete product")
	}
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"message": "product deleted"})
}
