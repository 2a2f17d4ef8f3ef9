package dto

type CreateHelpRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
}

type HelpClassificationResponse struct {
	Category      string `json:"category"`
	Urgency       string `json:"urgency"`
	PriorityScore int    `json:"priority_score"`
}

type CreateHelpResponse struct {
	Success        bool                       `json:"success"`
	ID             string                     `json:"id"`
	Classification HelpClassificationResponse `json:"classification"`
	Message        string                     `json:"message"`
}

type HelpRequestResponse struct {
	ID            string `json:"id"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	Urgency       string `json:"urgency"`
	Status        string `json:"status"`
	VolunteerName string `json:"volunteer_name,omitempty"`
	Location      string `json:"location,omitempty"`
	ResolvedAt    string `json:"resolved_at,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type UpdateHelpStatusRequest struct {
	Status string `json:"status"`
}

type SOSRequest struct {
	Description string `json:"description"`
	Location    string `json:"location"`
}
