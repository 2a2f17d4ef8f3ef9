package dto

import "github.com/alok-48/GuruMitra/internal/analyzer"

type DocumentResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Category   string   `json:"category"`
	FileType   string   `json:"file_type,omitempty"`
	FileSize   int64    `json:"file_size"`
	Tags       []string `json:"tags,omitempty"`
	ExpiryDate string   `json:"expiry_date,omitempty"`
	CreatedAt  string   `json:"created_at"`
}

type UploadDocumentResponse struct {
	Success      bool                          `json:"success"`
	Document     DocumentResponse              `json:"document"`
	AISuggestion analyzer.ClassificationResult `json:"ai_suggestion"`
	Message      string                        `json:"message"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type DocumentListResponse struct {
	Documents      []DocumentResponse `json:"documents"`
	CategoryCounts []CategoryCount    `json:"category_counts"`
}

type DeadlineResponse struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	ExpiryDate string `json:"expiry_date"`
}
