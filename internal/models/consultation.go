package models

import "time"

// ConsultationRequest is a free-text concern plus metadata submitted for
// simulated clinician review.
type ConsultationRequest struct {
	PrimaryConcern  string    `json:"primary_concern"`
	SymptomDuration string    `json:"symptom_duration"`
	Severity        string    `json:"severity"`
	Urgency         string    `json:"urgency"`
	SubmittedAt     time.Time `json:"submitted_at"`
}
