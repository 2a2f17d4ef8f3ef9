package dto

import "github.com/alok-48/GuruMitra/internal/analyzer"

type GovUpdateResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	OriginalText   string `json:"original_text,omitempty"`
	SimplifiedText string `json:"simplified_text,omitempty"`
	Category       string `json:"category"`
	ActionRequired bool   `json:"action_required"`
	ActionDeadline string `json:"action_deadline,omitempty"`
	SourceURL      string `json:"source_url,omitempty"`
	PublishedAt    string `json:"published_at"`
}

type GovUpdateListResponse struct {
	Updates        []GovUpdateResponse `json:"updates"`
	ActionRequired []GovUpdateResponse `json:"action_required"`
}

type GovUpdateDetailResponse struct {
	Update     GovUpdateResponse             `json:"update"`
	AIAnalysis analyzer.SimplificationResult `json:"ai_analysis"`
}

type SimplifyRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

type SimplifyResponse struct {
	Result analyzer.SimplificationResult `json:"result"`
}
