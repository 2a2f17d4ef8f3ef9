package dto

import "github.com/alok-48/GuruMitra/internal/analyzer"

type PensionResponse struct {
	ID            string  `json:"id"`
	PensionType   string  `json:"pension_type"`
	PPONumber     string  `json:"ppo_number,omitempty"`
	BankName      string  `json:"bank_name,omitempty"`
	MonthlyAmount float64 `json:"monthly_amount"`
	Status        string  `json:"status"`
	StatusText    string  `json:"status_text"`
}

type PaymentResponse struct {
	ID           string  `json:"id"`
	Amount       float64 `json:"amount"`
	CreditedDate string  `json:"credited_date"`
	MonthYear    string  `json:"month_year"`
	Status       string  `json:"status"`
}

type PensionOverviewResponse struct {
	Pension  *PensionResponse         `json:"pension"`
	Payments []PaymentResponse        `json:"payments,omitempty"`
	Analysis analyzer.PensionAnalysis `json:"analysis"`
	Message  string                   `json:"message,omitempty"`
}

type PaymentHistoryResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Pages    int               `json:"pages"`
}

type FraudCheckRequest struct {
	Message string `json:"message"`
}

type BankHelpRequest struct {
	Description string `json:"description"`
}
