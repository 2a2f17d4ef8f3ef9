package handlers

import (
	"github.com/alok-48/GuruMitra/internal/dto"
	"github.com/alok-48/GuruMitra/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UpdateHandler struct {
	updateService *service.UpdateService
	logger        *zap.Logger
}

func NewUpdateHandler(updateService *service.UpdateService, logger *zap.Logger) *UpdateHandler {
	return &UpdateHandler{
		updateService: updateService,
		logger:        logger,
	}
}

// List godoc
// @Summary List government updates
// @Tags gov-updates
// @Produce json
// @Param category query string false "Category filter"
// @Param page query int false "Page number"
// @Security Bearer
// @Success 200 {object} dto.GovUpdateListResponse
// @Router /api/gov-updates [get]
func (h *UpdateHandler) List(c *fiber.Ctx) error {
	resp, err := h.updateService.List(c.Context(), c.Query("category"), c.QueryInt("page", 1))
	if err != nil {
		h.logger.Error("Update list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Update list failed",
		})
	}

	return c.JSON(resp)
}

// Get godoc
// @Summary Get one update with its simplification
// @Tags gov-updates
// @Produce json
// @Param id path string true "Update ID"
// @Security Bearer
// @Success 200 {object} dto.GovUpdateDetailResponse
// @Failure 404 {object} map[string]string
// @Router /api/gov-updates/{id} [get]
func (h *UpdateHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid update ID",
		})
	}

	resp, err := h.updateService.Get(c.Context(), id)
	if err != nil {
		if err == service.ErrUpdateNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "अपडेट नहीं मिला (Update not found)",
			})
		}
		h.logger.Error("Update fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Update fetch failed",
		})
	}

	return c.JSON(resp)
}

// Simplify godoc
// @Summary Simplify arbitrary official text
// @Tags gov-updates
// @Accept json
// @Produce json
// @Param request body dto.SimplifyRequest true "Text and category"
// @Security Bearer
// @Success 200 {object} dto.SimplifyResponse
// @Failure 400 {object} map[string]string
// @Router /api/gov-updates/simplify [post]
func (h *UpdateHandler) Simplify(c *fiber.Ctx) error {
	var req dto.SimplifyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.updateService.SimplifyText(&req)
	if err != nil {
		if err == service.ErrEmptyText {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "टेक्स्ट दें (Text required)",
			})
		}
		h.logger.Error("Simplification failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Simplification failed",
		})
	}

	return c.JSON(resp)
}
