package handler

import (
	"github.com/vpriyankaa/sales-admin-sub000/internal/model"
	"github.com/vpriyankaa/sales-admin-sub000/internal/repository"
	"github.com/vpriyankaa/sales-admin-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

type StatusRequest struct {
	Status   model.OrderStatus `json:"status"`
	Comments string            `json:"comments"`
}

type PaymentStatusRequest struct {
	PaymentStatus model.PaymentStatus `json:"payment_status"`
}

// CreateOrder handles POST /api/v1/orders
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.OrderInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.AddOrder(&req, getActor(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order created", "data": order})
}

// UpdateOrder handles PUT /api/v1/orders/:id
func (h *OrderHandler) UpdateOrder(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "order")
	}

	var req service.OrderUpdateInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.UpdateOrder(orderID, &req, getActor(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Order updated", "data": order})
}

// ChangeStatus handles POST /api/v1/orders/:id/status
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "order")
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.ChangeOrderStatus(orderID, req.Status, req.Comments, getActor(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Order status updated", "data": order})
}

// ChangePaymentStatus handles POST /api/v1/orders/:id/payment-status
func (h *OrderHandler) ChangePaymentStatus(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "order")
	}

	var req PaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.ChangeOrderPaymentStatus(orderID, req.PaymentStatus, getActor(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{"message": "Payment status updated", "data": order})
}

// AddPayment handles POST /api/v1/orders/:id/payments
func (h *OrderHandler) AddPayment(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "order")
	}

	var req service.PaymentInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.service.ChangeOrderPayment(orderID, &req, getActor(c))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Payment recorded", "data": order})
}

// GetOrders handles GET /api/v1/orders?type=&status=&payment_status=&customer_id=&vendor_id=
func (h *OrderHandler) GetOrders(c *fiber.Ctx) error {
	filter := repository.OrderFilter{
		Type:          model.OrderType(c.Query("type")),
		Status:        model.OrderStatus(c.Query("status")),
		PaymentStatus: model.PaymentStatus(c.Query("payment_status")),
	}
	if v := c.Query("customer_id"); v != "" {
		id, err := parseUUID(v)
		if err != nil {
			return invalidID(c, "customer")
		}
		filter.CustomerID = &id
	}
	if v := c.Query("vendor_id"); v != "" {
		id, err := parseUUID(v)
		if err != nil {
			return invalidID(c, "vendor")
		}
		filter.VendorID = &id
	}

	orders, err := h.service.ListOrders(filter)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(orders)
}

func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "order")
	}
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(order)
}

func (h *OrderHandler) GetOrderLogs(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "order")
	}
	logs, err := h.service.GetOrderLogs(orderID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(logs)
}

func (h *OrderHandler) GetPaymentLogs(c *fiber.Ctx) error {
	orderID, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "order")
	}
	logs, err := h.service.GetPaymentLogs(orderID)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(logs)
}
