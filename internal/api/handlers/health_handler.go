package handlers

import (
	"github.com/alok-48/GuruMitra/internal/dto"
	"github.com/alok-48/GuruMitra/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HealthHandler struct {
	healthService *service.HealthService
	logger        *zap.Logger
}

func NewHealthHandler(healthService *service.HealthService, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
		logger:        logger,
	}
}

// Medicines godoc
// @Summary List active medicines
// @Tags health
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.MedicineResponse
// @Router /api/health/medicines [get]
func (h *HealthHandler) Medicines(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	medicines, err := h.healthService.Medicines(c.Context(), userID)
	if err != nil {
		h.logger.Error("Medicine list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Medicine list failed",
		})
	}

	return c.JSON(fiber.Map{"medicines": medicines})
}

// AddMedicine godoc
// @Summary Add a medicine schedule
// @Tags health
// @Accept json
// @Produce json
// @Param request body dto.AddMedicineRequest true "Medicine"
// @Security Bearer
// @Success 201 {object} dto.MedicineResponse
// @Failure 400 {object} map[string]string
// @Router /api/health/medicines [post]
func (h *HealthHandler) AddMedicine(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.AddMedicineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.healthService.AddMedicine(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrMedicineIncomplete {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "दवाई का नाम और समय बताएं",
			})
		}
		h.logger.Error("Medicine add failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Medicine add failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"medicine": resp,
		"message":  resp.Name + " दवाई जोड़ दी गई",
	})
}

// LogIntake godoc
// @Summary Record a dose as taken or missed
// @Tags health
// @Accept json
// @Produce json
// @Param request body dto.LogIntakeRequest true "Intake log"
// @Security Bearer
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /api/health/medicines/log [post]
func (h *HealthHandler) LogIntake(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.LogIntakeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	message, err := h.healthService.LogIntake(c.Context(), userID, &req)
	if err != nil {
		if err == service.ErrMedicineNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "दवाई नहीं मिली (Medicine not found)",
			})
		}
		h.logger.Error("Intake log failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Intake log failed",
		})
	}

	return c.JSON(fiber.Map{"success": true, "message": message})
}

// Alerts godoc
// @Summary Adherence alerts and adaptive reminders
// @Tags health
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.HealthAlertsResponse
// @Router /api/health/alerts [get]
func (h *HealthHandler) Alerts(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.healthService.Alerts(c.Context(), userID)
	if err != nil {
		h.logger.Error("Health alerts failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Health alerts failed",
		})
	}

	return c.JSON(resp)
}
