package handlers

import (
	"github.com/alok-48/GuruMitra/internal/dto"
	"github.com/alok-48/GuruMitra/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HelpHandler struct {
	helpService *service.HelpService
	logger      *zap.Logger
}

func NewHelpHandler(helpService *service.HelpService, logger *zap.Logger) *HelpHandler {
	return &HelpHandler{
		helpService: helpService,
		logger:      logger,
	}
}

// Create godoc
// @Summary File a help request
// @Description Classify the request and route urgent ones to a volunteer
// @Tags help
// @Accept json
// @Produce json
// @Param request body dto.CreateHelpRequest true "Help request"
// @Security Bearer
// @Success 201 {object} dto.CreateHelpResponse
// @Failure 400 {object} map[string]string
// @Router /api/help [post]
func (h *HelpHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateHelpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.helpService.Create(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrEmptyHelpRequest {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "कृपया बताएं कि क्या मदद चाहिए",
			})
		}
		h.logger.Error("Help request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Help request failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListMine godoc
// @Summary List the caller's help requests
// @Tags help
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.HelpRequestResponse
// @Router /api/help [get]
func (h *HelpHandler) ListMine(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	requests, err := h.helpService.ListMine(c.Context(), userID)
	if err != nil {
		h.logger.Error("Help list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Help list failed",
		})
	}

	return c.JSON(fiber.Map{"requests": requests})
}

// Get godoc
// @Summary Get one help request
// @Tags help
// @Produce json
// @Param id path string true "Request ID"
// @Security Bearer
// @Success 200 {object} dto.HelpRequestResponse
// @Failure 404 {object} map[string]string
// @Router /api/help/{id} [get]
func (h *HelpHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request ID",
		})
	}

	resp, err := h.helpService.Get(c.Context(), userID, id)
	if err != nil {
		if err == service.ErrHelpNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "अनुरोध नहीं मिला (Request not found)",
			})
		}
		h.logger.Error("Help fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Help fetch failed",
		})
	}

	return c.JSON(resp)
}

// UpdateStatus godoc
// @Summary Update a help request's status
// @Tags help
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.UpdateHelpStatusRequest true "New status"
// @Security Bearer
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /api/help/{id}/status [put]
func (h *HelpHandler) UpdateStatus(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request ID",
		})
	}

	var req dto.UpdateHelpStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.helpService.UpdateStatus(c.Context(), userID, id, req.Status); err != nil {
		switch err {
		case service.ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid status",
			})
		case service.ErrHelpNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "अनुरोध नहीं मिला (Request not found)",
			})
		}
		h.logger.Error("Status update failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Status update failed",
		})
	}

	return c.JSON(fiber.Map{"success": true, "message": "स्थिति अपडेट हो गई"})
}

// SOS godoc
// @Summary Raise an SOS emergency
// @Tags help
// @Accept json
// @Produce json
// @Param request body dto.SOSRequest true "Optional description and location"
// @Security Bearer
// @Success 201 {object} dto.CreateHelpResponse
// @Router /api/help/sos [post]
func (h *HelpHandler) SOS(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.SOSRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.helpService.SOS(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("SOS failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "SOS failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}
