package intake

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"drjackson/internal/models"
	"drjackson/internal/persona"
	"drjackson/internal/session"
)

// ErrIntakeIncomplete gates consultation requests until the intake form has
// recorded a patient name.
var ErrIntakeIncomplete = errors.New("please complete the patient intake form before requesting a consultation")

// Service applies form submissions to the session. Records are replaced
// wholesale; a failed validation leaves prior state untouched.
type Service struct {
	persona *persona.Persona
}

// NewService builds an intake service around the persona catalog.
func NewService(p *persona.Persona) *Service {
	return &Service{persona: p}
}

// ContactForm carries one intake submission.
type ContactForm struct {
	FirstName             string `json:"first_name"`
	LastName              string `json:"last_name"`
	DateOfBirth           string `json:"date_of_birth"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	Address               string `json:"address"`
	City                  string `json:"city"`
	State                 string `json:"state"`
	ZipCode               string `json:"zip_code"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
	Consent               bool   `json:"consent"`
}

// SubmitContactInfo validates the intake form and replaces the contact record.
// Validation failures come back as one combined error message.
func (s *Service) SubmitContactInfo(sess *session.Session, form ContactForm) (models.PatientContactInfo, error) {
	required := []struct {
		label string
		value string
	}{
		{"first name", form.FirstName},
		{"last name", form.LastName},
		{"email address", form.Email},
		{"phone number", form.Phone},
		{"date of birth", form.DateOfBirth},
	}
	var missing []string
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.label)
		}
	}
	var problems []string
	if len(missing) > 0 {
		problems = append(problems, fmt.Sprintf("please fill out all required fields: %s", strings.Join(missing, ", ")))
	}
	if !form.Consent {
		problems = append(problems, "patient consent is required")
	}
	if len(problems) > 0 {
		return models.PatientContactInfo{}, errors.New(strings.Join(problems, "; "))
	}

	// The street address is carried over from the prior record; the form's
	// address input has never fed the stored value.
	info := models.PatientContactInfo{
		FirstName:             strings.TrimSpace(form.FirstName),
		LastName:              strings.TrimSpace(form.LastName),
		DateOfBirth:           strings.TrimSpace(form.DateOfBirth),
		Email:                 strings.TrimSpace(form.Email),
		Phone:                 strings.TrimSpace(form.Phone),
		Address:               sess.ContactInfo().Address,
		City:                  strings.TrimSpace(form.City),
		State:                 strings.TrimSpace(form.State),
		ZipCode:               strings.TrimSpace(form.ZipCode),
		EmergencyContactName:  strings.TrimSpace(form.EmergencyContactName),
		EmergencyContactPhone: strings.TrimSpace(form.EmergencyContactPhone),
	}
	sess.ReplaceContactInfo(info)
	return info, nil
}

// MedicalForm carries one medical-history submission. The list sections are
// free-text blocks, one entry per line.
type MedicalForm struct {
	PrimaryCarePhysician string            `json:"primary_care_physician"`
	Medications          string            `json:"medications"`
	Allergies            string            `json:"allergies"`
	ChronicConditions    string            `json:"chronic_conditions"`
	PastSurgeries        string            `json:"past_surgeries"`
	FamilyHistory        map[string]string `json:"family_history"`
}

// SubmitMedicalHistory parses the form and replaces the medical record. No
// field is required.
func (s *Service) SubmitMedicalHistory(sess *session.Session, form MedicalForm) models.PatientMedicalInfo {
	info := models.NewPatientMedicalInfo()
	info.PrimaryCarePhysician = strings.TrimSpace(form.PrimaryCarePhysician)
	info.CurrentMedications = splitLines(form.Medications)
	info.Allergies = splitLines(form.Allergies)
	info.ChronicConditions = splitLines(form.ChronicConditions)
	info.PastSurgeries = splitLines(form.PastSurgeries)
	for condition, member := range form.FamilyHistory {
		if member = strings.TrimSpace(member); member != "" {
			info.FamilyHistory[condition] = member
		}
	}
	sess.ReplaceMedicalInfo(info)
	return info
}

// ConsultationForm carries a consultation request.
type ConsultationForm struct {
	PrimaryConcern  string `json:"primary_concern"`
	SymptomDuration string `json:"symptom_duration"`
	Severity        string `json:"severity"`
	Urgency         string `json:"urgency"`
}

// ConsultationResult pairs the stored request with its clinical
// acknowledgement and computed priority.
type ConsultationResult struct {
	Request         models.ConsultationRequest
	Priority        persona.PriorityLevel
	Acknowledgement string
}

// SubmitConsultation records a consultation request. Intake must have
// captured a patient name first.
func (s *Service) SubmitConsultation(sess *session.Session, form ConsultationForm) (*ConsultationResult, error) {
	contact := sess.ContactInfo()
	if contact.FirstName == "" || contact.LastName == "" {
		return nil, ErrIntakeIncomplete
	}
	concern := strings.TrimSpace(form.PrimaryConcern)
	if concern == "" {
		return nil, errors.New("please describe your current health concerns")
	}

	req := models.ConsultationRequest{
		PrimaryConcern:  concern,
		SymptomDuration: strings.TrimSpace(form.SymptomDuration),
		Severity:        strings.TrimSpace(form.Severity),
		Urgency:         strings.TrimSpace(form.Urgency),
		SubmittedAt:     time.Now().UTC(),
	}
	sess.SetConsultation(req)

	priority := persona.Prioritize(concern + " " + req.Urgency)
	ack := s.persona.FormatClinicalResponse(
		concern,
		"Your request has been received and queued for clinician review.",
		[]string{
			"Keep your medical history up to date before the appointment",
			"Note any change in symptom severity or duration",
			"Contact emergency services for any acute deterioration",
		},
	)
	return &ConsultationResult{Request: req, Priority: priority, Acknowledgement: ack}, nil
}

func splitLines(block string) []string {
	entries := []string{}
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			entries = append(entries, line)
		}
	}
	return entries
}
