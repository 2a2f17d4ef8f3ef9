package handlers

import (
	"github.com/alok-48/GuruMitra/internal/dto"
	"github.com/alok-48/GuruMitra/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// SendOTP godoc
// @Summary Send a login code
// @Description Generate a one-time code for the phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SendOTPRequest true "Phone number"
// @Success 200 {object} dto.SendOTPResponse
// @Failure 400 {object} map[string]string
// @Router /api/auth/otp/send [post]
func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req dto.SendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.authService.SendOTP(c.Context(), &req)
	if err != nil {
		if err == service.ErrInvalidPhone {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "सही फ़ोन नंबर दें (Valid phone number required)",
			})
		}
		h.logger.Error("OTP send failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "OTP send failed",
		})
	}

	return c.JSON(resp)
}

// VerifyOTP godoc
// @Summary Verify a login code
// @Description Verify the one-time code and sign in, creating the account on first login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.VerifyOTPRequest true "Phone number and code"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /api/auth/otp/verify [post]
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.authService.VerifyOTP(c.Context(), &req)
	if err != nil {
		switch err {
		case service.ErrInvalidPhone:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "सही फ़ोन नंबर दें (Valid phone number required)",
			})
		case service.ErrInvalidOTP:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "गलत या पुराना OTP (Invalid or expired OTP)",
			})
		}
		h.logger.Error("OTP verification failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "OTP verification failed",
		})
	}

	return c.JSON(resp)
}

// GetProfile godoc
// @Summary Get the signed-in user's profile
// @Tags auth
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} map[string]string
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.authService.GetProfile(c.Context(), userID)
	if err != nil {
		if err == service.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "User not found",
			})
		}
		h.logger.Error("Profile fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Profile fetch failed",
		})
	}

	return c.JSON(resp)
}

// UpdateProfile godoc
// @Summary Update the signed-in user's profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Security Bearer
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} map[string]string
// @Router /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.authService.UpdateProfile(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Profile update failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Profile update failed",
		})
	}

	return c.JSON(resp)
}
