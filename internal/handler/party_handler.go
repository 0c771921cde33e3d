package handler

import (
	"github.com/vpriyankaa/sales-admin-sub000/internal/model"
	"github.com/vpriyankaa/sales-admin-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CustomerHandler struct {
	service service.CustomerService
}

func NewCustomerHandler(s service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: s}
}

func (h *CustomerHandler) CreateCustomer(c *fiber.Ctx) error {
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.CreateCustomer(&customer, getActor(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Customer created", "data": customer})
}

func (h *CustomerHandler) UpdateCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "customer")
	}
	var customer model.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	updated, err := h.service.UpdateCustomer(id, &customer, getActor(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer updated", "data": updated})
}

func (h *CustomerHandler) DeleteCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "customer")
	}
	if err := h.service.DeleteCustomer(id, getActor(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Customer deleted"})
}

func (h *CustomerHandler) GetCustomers(c *fiber.Ctx) error {
	customers, err := h.service.GetCustomers(c.Query("search"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(customers)
}

func (h *CustomerHandler) GetCustomer(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "customer")
	}
	customer, err := h.service.GetCustomerByID(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(customer)
}

func (h *CustomerHandler) GetCustomerLogs(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "customer")
	}
	logs, err := h.service.GetCustomerLogs(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(logs)
}

type VendorHandler struct {
	service service.VendorService
}

func NewVendorHandler(s service.VendorService) *VendorHandler {
	return &VendorHandler{service: s}
}

func (h *VendorHandler) CreateVendor(c *fiber.Ctx) error {
	var vendor model.Vendor
	if err := c.BodyParser(&vendor); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if err := h.service.CreateVendor(&vendor, getActor(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Vendor created", "data": vendor})
}

func (h *VendorHandler) UpdateVendor(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "vendor")
	}
	var vendor model.Vendor
	if err := c.BodyParser(&vendor); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	updated, err := h.service.UpdateVendor(id, &vendor, getActor(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Vendor updated", "data": updated})
}

func (h *VendorHandler) DeleteVendor(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "vendor")
	}
	if err := h.service.DeleteVendor(id, getActor(c)); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "Vendor deleted"})
}

func (h *VendorHandler) GetVendors(c *fiber.Ctx) error {
	vendors, err := h.service.GetVendors(c.Query("search"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(vendors)
}

func (h *VendorHandler) GetVendor(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "vendor")
	}
	vendor, err := h.service.GetVendorByID(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(vendor)
}

func (h *VendorHandler) GetVendorLogs(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return invalidID(c, "vendor")
	}
	logs, err := h.service.GetVendorLogs(id)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(logs)
}
