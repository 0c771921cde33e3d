package handler

import (
	"github.com/vpriyankaa/sales-admin-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type MasterHandler struct {
	service service.MasterService
}

func NewMasterHandler(s service.MasterService) *MasterHandler {
	return &MasterHandler{service: s}
}

type NameRequest struct {
	Name string `json:"name"`
}

func (h *MasterHandler) GetUnits(c *fiber.Ctx) error {
	units, err := h.service.GetUnits()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(units)
}

func (h *MasterHandler) CreateUnit(c *fiber.Ctx) error {
	var req NameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	unit, err := h.service.CreateUnit(req.Name, getActor(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Unit created", "data": unit})
}

func (h *MasterHandler) GetPaymentMethods(c *fiber.Ctx) error {
	methods, err := h.service.GetPaymentMethods()
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(methods)
}

func (h *MasterHandler) CreatePaymentMethod(c *fiber.Ctx) error {
	var req NameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	method, err := h.service.CreatePaymentMethod(req.Name, getActor(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Payment method created", "data": method})
}
