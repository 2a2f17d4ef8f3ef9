package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alok-48/GuruMitra/internal/analyzer"
	"github.com/alok-48/GuruMitra/internal/dto"
	"github.com/alok-48/GuruMitra/internal/models"
	"github.com/alok-48/GuruMitra/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrDocumentNotFound = errors.New("document not found")

type DocumentService struct {
	docRepo    *repository.DocumentRepository
	classifier analyzer.DocumentClassifier
	uploadDir  string
	logger     *zap.Logger
}

func NewDocumentService(docRepo *repository.DocumentRepository, classifier analyzer.DocumentClassifier, uploadDir string, logger *zap.Logger) *DocumentService {
	// Create upload directory if it doesn't exist
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &DocumentService{
		docRepo:    docRepo,
		classifier: classifier,
		uploadDir:  uploadDir,
		logger:     logger,
	}
}

// Upload saves the file, classifies it and stores the record. The
// caller's title and category win over the suggestion when provided;
// ocrText is whatever text recognition the client ran on-device.
func (s *DocumentService) Upload(ctx context.Context, userID uuid.UUID, file io.Reader, fileName, title, category, ocrText string) (*dto.UploadDocumentResponse, error) {
	fileID := uuid.New()
	ext := filepath.Ext(fileName)
	filePath := filepath.Join(s.uploadDir, fileID.String()+ext)

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	fileSize, err := io.Copy(dst, file)
	if err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	suggestion := s.classifier.Categorize(fileName, ocrText)
	if category == "" {
		category = suggestion.Category
	}
	if title == "" {
		title = suggestion.SuggestedName
	}

	var expiryDate *time.Time
	if raw, ok := s.classifier.ExtractExpiryDate(ocrText); ok {
		if parsed, ok := parseExpiryDate(raw); ok {
			expiryDate = &parsed
		}
	}

	doc := &models.Document{
		ID:         fileID,
		UserID:     userID,
		Title:      title,
		Category:   category,
		FilePath:   "/uploads/" + fileID.String() + ext,
		FileType:   ext,
		FileSize:   fileSize,
		OCRText:    ocrText,
		ExpiryDate: expiryDate,
		Tags:       s.classifier.SuggestTags(category),
		CreatedAt:  time.Now(),
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to create document record: %w", err)
	}

	s.logger.Info("document uploaded",
		zap.String("document_id", doc.ID.String()),
		zap.String("category", doc.Category))

	return &dto.UploadDocumentResponse{
		Success:      true,
		Document:     toDocumentResponse(doc),
		AISuggestion: suggestion,
		Message:      "दस्तावेज़ सुरक्षित हो गया (Document saved)",
	}, nil
}

func (s *DocumentService) List(ctx context.Context, userID uuid.UUID, category string) (*dto.DocumentListResponse, error) {
	docs, err := s.docRepo.ListByUserID(ctx, userID, category)
	if err != nil {
		return nil, err
	}

	counts, err := s.docRepo.CountByCategory(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DocumentListResponse{
		Documents:      make([]dto.DocumentResponse, 0, len(docs)),
		CategoryCounts: make([]dto.CategoryCount, 0, len(counts)),
	}
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, toDocumentResponse(doc))
	}
	for category, count := range counts {
		resp.CategoryCounts = append(resp.CategoryCounts, dto.CategoryCount{
			Category: category,
			Count:    count,
		})
	}
	return resp, nil
}

func (s *DocumentService) Get(ctx context.Context, userID, id uuid.UUID) (*dto.DocumentResponse, error) {
	doc, err := s.docRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, ErrDocumentNotFound
	}
	resp := toDocumentResponse(doc)
	return &resp, nil
}

func (s *DocumentService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	doc, err := s.docRepo.GetByID(ctx, id, userID)
	if err != nil {
		return ErrDocumentNotFound
	}

	if err := s.docRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	if err := os.Remove(filepath.Join(s.uploadDir, filepath.Base(doc.FilePath))); err != nil {
		s.logger.Warn("failed to remove file", zap.Error(err))
	}
	return nil
}

// Deadlines lists the next few documents about to expire.
func (s *DocumentService) Deadlines(ctx context.Context, userID uuid.UUID) ([]dto.DeadlineResponse, error) {
	docs, err := s.docRepo.UpcomingDeadlines(ctx, userID, time.Now(), 5)
	if err != nil {
		return nil, err
	}

	deadlines := make([]dto.DeadlineResponse, 0, len(docs))
	for _, doc := range docs {
		deadlines = append(deadlines, dto.DeadlineResponse{
			ID:         doc.ID.String(),
			Title:      doc.Title,
			Category:   doc.Category,
			ExpiryDate: doc.ExpiryDate.Format("2006-01-02"),
		})
	}
	return deadlines, nil
}

func toDocumentResponse(doc *models.Document) dto.DocumentResponse {
	resp := dto.DocumentResponse{
		ID:        doc.ID.String(),
		Title:     doc.Title,
		Category:  doc.Category,
		FileType:  doc.FileType,
		FileSize:  doc.FileSize,
		Tags:      doc.Tags,
		CreatedAt: doc.CreatedAt.Format(time.RFC3339),
	}
	if doc.ExpiryDate != nil {
		resp.ExpiryDate = doc.ExpiryDate.Format("2006-01-02")
	}
	return resp
}

// parseExpiryDate handles the dd/mm/yyyy and dd-mm-yyyy forms the expiry
// patterns capture.
func parseExpiryDate(raw string) (time.Time, bool) {
	layouts := []string{"02/01/2006", "2/1/2006", "02-01-2006", "2-1-2006"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
