package intake

import (
	"errors"
	"strings"
	"testing"
	"time"

	"drjackson/internal/models"
	"drjackson/internal/persona"
	"drjackson/internal/session"
)

func newTestSession() *session.Session {
	return session.NewStore(time.Hour).Create()
}

func validContactForm() ContactForm {
	return ContactForm{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1985-04-12",
		Email:       "jane@example.org",
		Phone:       "555-0100",
		City:        "Springfield",
		Consent:     true,
	}
}

func TestSubmitContactInfoMissingFields(t *testing.T) {
	svc := NewService(persona.DrJackson())
	sess := newTestSession()
	prior := models.PatientContactInfo{FirstName: "Old", LastName: "Record"}
	sess.ReplaceContactInfo(prior)

	form := validContactForm()
	form.Email = ""
	form.Phone = "  "
	_, err := svc.SubmitContactInfo(sess, form)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "email address") || !strings.Contains(msg, "phone number") {
		t.Fatalf("combined message should name the missing fields: %s", msg)
	}
	if got := sess.ContactInfo(); got != prior {
		t.Fatalf("failed submission must leave prior state untouched, got %+v", got)
	}
}

func TestSubmitContactInfoRequiresConsent(t *testing.T) {
	svc := NewService(persona.DrJackson())
	sess := newTestSession()

	form := validContactForm()
	form.Consent = false
	_, err := svc.SubmitContactInfo(sess, form)
	if err == nil || !strings.Contains(err.Error(), "consent") {
		t.Fatalf("expected consent error, got %v", err)
	}
	if got := sess.ContactInfo(); got.FirstName != "" {
		t.Fatalf("blocked submission must not mutate state, got %+v", got)
	}
}

func TestSubmitContactInfoReplacesWholesale(t *testing.T) {
	svc := NewService(persona.DrJackson())
	sess := newTestSession()
	sess.ReplaceContactInfo(models.PatientContactInfo{
		FirstName: "Old",
		Address:   "12 Elm Street",
		State:     "IL",
	})

	form := validContactForm()
	form.Address = "99 New Avenue"
	info, err := svc.SubmitContactInfo(sess, form)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if info.FirstName != "Jane" || info.City != "Springfield" {
		t.Fatalf("unexpected record: %+v", info)
	}
	// Address carries over from the prior record; the submitted value is
	// ignored. Untouched fields like State are dropped with the old record.
	if info.Address != "12 Elm Street" {
		t.Fatalf("expected prior address to be preserved, got %q", info.Address)
	}
	if info.State != "" {
		t.Fatalf("expected wholesale replacement to drop old state field, got %q", info.State)
	}
	if got := sess.ContactInfo(); got != info {
		t.Fatalf("session record mismatch: %+v", got)
	}
}

func TestSubmitMedicalHistoryParsesLines(t *testing.T) {
	svc := NewService(persona.DrJackson())
	sess := newTestSession()

	info := svc.SubmitMedicalHistory(sess, MedicalForm{
		PrimaryCarePhysician: "  Dr. Smith ",
		Medications:          "metformin 500mg\n\n  vitamin d  \n",
		Allergies:            "penicillin",
		FamilyHistory: map[string]string{
			"Diabetes": " mother ",
			"Cancer":   "   ",
		},
	})
	if info.PrimaryCarePhysician != "Dr. Smith" {
		t.Fatalf("physician not trimmed: %q", info.PrimaryCarePhysician)
	}
	if len(info.CurrentMedications) != 2 || info.CurrentMedications[1] != "vitamin d" {
		t.Fatalf("unexpected medications: %v", info.CurrentMedications)
	}
	if len(info.Allergies) != 1 || len(info.ChronicConditions) != 0 || len(info.PastSurgeries) != 0 {
		t.Fatalf("unexpected lists: %+v", info)
	}
	if info.FamilyHistory["Diabetes"] != "mother" {
		t.Fatalf("family history not trimmed: %v", info.FamilyHistory)
	}
	if _, ok := info.FamilyHistory["Cancer"]; ok {
		t.Fatalf("empty family entries must be dropped")
	}
	if got := sess.MedicalInfo(); len(got.CurrentMedications) != 2 {
		t.Fatalf("session record not replaced: %+v", got)
	}
}

func TestSubmitConsultationRequiresIntake(t *testing.T) {
	svc := NewService(persona.DrJackson())
	sess := newTestSession()

	_, err := svc.SubmitConsultation(sess, ConsultationForm{PrimaryConcern: "fatigue"})
	if !errors.Is(err, ErrIntakeIncomplete) {
		t.Fatalf("expected intake gate, got %v", err)
	}
	if sess.Consultation() != nil {
		t.Fatalf("blocked consultation must not be stored")
	}
}

func TestSubmitConsultation(t *testing.T) {
	svc := NewService(persona.DrJackson())
	sess := newTestSession()
	if _, err := svc.SubmitContactInfo(sess, validContactForm()); err != nil {
		t.Fatalf("intake: %v", err)
	}

	res, err := svc.SubmitConsultation(sess, ConsultationForm{
		PrimaryConcern:  "ongoing fatigue and treatment planning questions",
		SymptomDuration: "3 weeks",
		Severity:        "moderate",
		Urgency:         "routine",
	})
	if err != nil {
		t.Fatalf("consultation: %v", err)
	}
	if res.Priority != persona.PriorityHigh {
		t.Fatalf("treatment planning phrase should classify high, got %s", res.Priority)
	}
	if !strings.Contains(res.Acknowledgement, "Clinical Assessment:") {
		t.Fatalf("expected clinical template, got %q", res.Acknowledgement)
	}
	stored := sess.Consultation()
	if stored == nil || stored.SymptomDuration != "3 weeks" || stored.SubmittedAt.IsZero() {
		t.Fatalf("stored request mismatch: %+v", stored)
	}

	_, err = svc.SubmitConsultation(sess, ConsultationForm{PrimaryConcern: "  "})
	if err == nil {
		t.Fatalf("expected error for empty concern")
	}
}
