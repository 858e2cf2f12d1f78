package session

import (
	"sync"
	"time"

	"drjackson/internal/models"
)

// Session is the per-browser state record: patient forms, chat history, LLM
// settings, and the current route. All access goes through the mutex; the
// interaction model is sequential, but gin serves requests concurrently.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	contact  models.PatientContactInfo
	medical  models.PatientMedicalInfo
	settings models.LLMSettings
	consult  *models.ConsultationRequest
	history  []models.ChatMessage
	route    models.Route
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:        id,
		CreatedAt: now,
		lastSeen:  now,
		medical:   models.NewPatientMedicalInfo(),
		history:   []models.ChatMessage{},
		route:     models.RouteHome,
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) expiredAt(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen) > ttl
}

// ContactInfo returns a copy of the stored contact record.
func (s *Session) ContactInfo() models.PatientContactInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contact
}

// ReplaceContactInfo swaps the whole contact record. There is no partial
// update path.
func (s *Session) ReplaceContactInfo(info models.PatientContactInfo) {
	s.mu.Lock()
	s.contact = info
	s.mu.Unlock()
}

// MedicalInfo returns a deep copy so callers can never alias the stored lists.
func (s *Session) MedicalInfo() models.PatientMedicalInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := models.NewPatientMedicalInfo()
	out.PrimaryCarePhysician = s.medical.PrimaryCarePhysician
	out.CurrentMedications = append(out.CurrentMedications, s.medical.CurrentMedications...)
	out.Allergies = append(out.Allergies, s.medical.Allergies...)
	out.ChronicConditions = append(out.ChronicConditions, s.medical.ChronicConditions...)
	out.PastSurgeries = append(out.PastSurgeries, s.medical.PastSurgeries...)
	for k, v := range s.medical.FamilyHistory {
		out.FamilyHistory[k] = v
	}
	return out
}

// ReplaceMedicalInfo swaps the whole medical record.
func (s *Session) ReplaceMedicalInfo(info models.PatientMedicalInfo) {
	s.mu.Lock()
	s.medical = info
	s.mu.Unlock()
}

// Settings returns the stored LLM settings.
func (s *Session) Settings() models.LLMSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// ReplaceSettings swaps the stored LLM settings.
func (s *Session) ReplaceSettings(settings models.LLMSettings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
}

// Consultation returns the most recent consultation request, if any.
func (s *Session) Consultation() *models.ConsultationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consult == nil {
		return nil
	}
	cp := *s.consult
	return &cp
}

// SetConsultation records the latest consultation request.
func (s *Session) SetConsultation(req models.ConsultationRequest) {
	s.mu.Lock()
	s.consult = &req
	s.mu.Unlock()
}

// History returns a copy of the ordered chat transcript.
func (s *Session) History() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ChatMessage, len(s.history))
	copy(out, s.history)
	return out
}

// AppendMessage adds one message to the transcript and returns it stamped.
func (s *Session) AppendMessage(role models.Role, content string) models.ChatMessage {
	msg := models.ChatMessage{Role: role, Content: content, CreatedAt: time.Now().UTC()}
	s.mu.Lock()
	s.history = append(s.history, msg)
	s.mu.Unlock()
	return msg
}

// ClearHistory replaces the transcript with a fresh empty list.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	s.history = []models.ChatMessage{}
	s.mu.Unlock()
}

// Route returns the current page.
func (s *Session) Route() models.Route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.route
}

// SetRoute persists the navigation target so it survives re-renders.
func (s *Session) SetRoute(route models.Route) {
	s.mu.Lock()
	s.route = route
	s.mu.Unlock()
}
