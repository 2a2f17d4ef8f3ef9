package handlers

import (
	"github.com/alok-48/GuruMitra/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	docService *service.DocumentService
	logger     *zap.Logger
}

func NewDocumentHandler(docService *service.DocumentService, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		docService: docService,
		logger:     logger,
	}
}

// Upload godoc
// @Summary Upload a document
// @Description Upload a document; the category and title are suggested when missing
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document file"
// @Param title formData string false "Title"
// @Param category formData string false "Category"
// @Param ocr_text formData string false "Recognized text from the client"
// @Security Bearer
// @Success 201 {object} dto.UploadDocumentResponse
// @Failure 400 {object} map[string]string
// @Router /api/documents [post]
func (h *DocumentHandler) Upload(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	resp, err := h.docService.Upload(c.Context(), userID, src, file.Filename,
		c.FormValue("title"), c.FormValue("category"), c.FormValue("ocr_text"))
	if err != nil {
		h.logger.Error("Document upload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Document upload failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// List godoc
// @Summary List documents
// @Tags documents
// @Produce json
// @Param category query string false "Category filter"
// @Security Bearer
// @Success 200 {object} dto.DocumentListResponse
// @Router /api/documents [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.docService.List(c.Context(), userID, c.Query("category"))
	if err != nil {
		h.logger.Error("Document list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Document list failed",
		})
	}

	return c.JSON(resp)
}

// Deadlines godoc
// @Summary List upcoming document expiry deadlines
// @Tags documents
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.DeadlineResponse
// @Router /api/documents/deadlines [get]
func (h *DocumentHandler) Deadlines(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	deadlines, err := h.docService.Deadlines(c.Context(), userID)
	if err != nil {
		h.logger.Error("Deadline list failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Deadline list failed",
		})
	}

	return c.JSON(fiber.Map{"deadlines": deadlines})
}

// Get godoc
// @Summary Get one document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Security Bearer
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string
// @Router /api/documents/{id} [get]
func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID",
		})
	}

	resp, err := h.docService.Get(c.Context(), userID, id)
	if err != nil {
		if err == service.ErrDocumentNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "दस्तावेज़ नहीं मिला (Document not found)",
			})
		}
		h.logger.Error("Document fetch failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Document fetch failed",
		})
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Security Bearer
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /api/documents/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid document ID",
		})
	}

	if err := h.docService.Delete(c.Context(), userID, id); err != nil {
		if err == service.ErrDocumentNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "दस्तावेज़ नहीं मिला (Document not found)",
			})
		}
		h.logger.Error("Document delete failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Document delete failed",
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
