package handlers

import (
	"github.com/alok-48/GuruMitra/internal/dto"
	"github.com/alok-48/GuruMitra/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PensionHandler struct {
	pensionService *service.PensionService
	logger         *zap.Logger
}

func NewPensionHandler(pensionService *service.PensionService, logger *zap.Logger) *PensionHandler {
	return &PensionHandler{
		pensionService: pensionService,
		logger:         logger,
	}
}

// Overview godoc
// @Summary Pension overview
// @Description Pension record, recent payments and anomaly analysis
// @Tags pension
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.PensionOverviewResponse
// @Router /api/pension [get]
func (h *PensionHandler) Overview(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.pensionService.Overview(c.Context(), userID)
	if err != nil {
		h.logger.Error("Pension overview failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Pension overview failed",
		})
	}

	return c.JSON(resp)
}

// PaymentHistory godoc
// @Summary Paged pension payment history
// @Tags pension
// @Produce json
// @Param page query int false "Page number"
// @Security Bearer
// @Success 200 {object} dto.PaymentHistoryResponse
// @Router /api/pension/payments [get]
func (h *PensionHandler) PaymentHistory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.pensionService.PaymentHistory(c.Context(), userID, c.QueryInt("page", 1))
	if err != nil {
		h.logger.Error("Payment history failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Payment history failed",
		})
	}

	return c.JSON(resp)
}

// CheckFraud godoc
// @Summary Check a message for scam signatures
// @Tags pension
// @Accept json
// @Produce json
// @Param request body dto.FraudCheckRequest true "Suspicious message"
// @Security Bearer
// @Success 200 {object} analyzer.MessageAnalysis
// @Router /api/pension/fraud-check [post]
func (h *PensionHandler) CheckFraud(c *fiber.Ctx) error {
	var req dto.FraudCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	return c.JSON(h.pensionService.CheckFraud(&req))
}

// BankHelp godoc
// @Summary Request help with a bank issue
// @Tags pension
// @Accept json
// @Produce json
// @Param request body dto.BankHelpRequest true "Issue description"
// @Security Bearer
// @Success 200 {object} dto.CreateHelpResponse
// @Router /api/pension/bank-help [post]
func (h *PensionHandler) BankHelp(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.BankHelpRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.pensionService.BankHelp(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Bank help request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Bank help request failed",
		})
	}

	return c.JSON(resp)
}
