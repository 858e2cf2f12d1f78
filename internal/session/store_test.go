package session

import (
	"testing"
	"time"

	"drjackson/internal/models"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create()
	if sess.ID == "" {
		t.Fatalf("expected session id")
	}
	if sess.Route() != models.RouteHome {
		t.Fatalf("expected new session to start on home, got %s", sess.Route())
	}
	got, ok := store.Get(sess.ID)
	if !ok || got != sess {
		t.Fatalf("expected to retrieve the same session")
	}
	if _, ok := store.Get("missing"); ok {
		t.Fatalf("expected miss for unknown id")
	}
	if _, ok := store.Get(""); ok {
		t.Fatalf("expected miss for empty id")
	}
}

func TestEvictExpired(t *testing.T) {
	store := NewStore(time.Minute)
	fresh := store.Create()
	stale := store.Create()
	stale.touch(time.Now().UTC().Add(-2 * time.Minute))

	if n := store.evictExpired(time.Now().UTC()); n != 1 {
		t.Fatalf("expected 1 eviction, got %d", n)
	}
	if _, ok := store.Get(stale.ID); ok {
		t.Fatalf("stale session should be gone")
	}
	if _, ok := store.Get(fresh.ID); !ok {
		t.Fatalf("fresh session should survive")
	}
}

func TestHistoryAppendAndClear(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create()
	sess.AppendMessage(models.RoleUser, "hello")
	sess.AppendMessage(models.RoleAssistant, "greetings")

	history := sess.History()
	if len(history) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(history))
	}
	if history[0].Role != models.RoleUser || history[1].Role != models.RoleAssistant {
		t.Fatalf("unexpected roles: %v %v", history[0].Role, history[1].Role)
	}
	if history[0].CreatedAt.IsZero() {
		t.Fatalf("expected message timestamp")
	}

	// Mutating the returned slice must not touch stored state.
	history[0].Content = "tampered"
	if sess.History()[0].Content != "hello" {
		t.Fatalf("stored history was aliased by the copy")
	}

	sess.ClearHistory()
	if got := sess.History(); len(got) != 0 {
		t.Fatalf("expected empty history after clear, got %d", len(got))
	}
}

func TestMedicalInfoNeverAliased(t *testing.T) {
	a := models.NewPatientMedicalInfo()
	b := models.NewPatientMedicalInfo()
	a.Allergies = append(a.Allergies, "penicillin")
	if len(b.Allergies) != 0 {
		t.Fatalf("fresh records share allergy storage")
	}
	a.FamilyHistory["Diabetes"] = "father"
	if len(b.FamilyHistory) != 0 {
		t.Fatalf("fresh records share family history storage")
	}

	store := NewStore(time.Hour)
	sess := store.Create()
	sess.ReplaceMedicalInfo(a)
	snapshot := sess.MedicalInfo()
	snapshot.Allergies[0] = "latex"
	snapshot.FamilyHistory["Cancer"] = "aunt"
	stored := sess.MedicalInfo()
	if stored.Allergies[0] != "penicillin" {
		t.Fatalf("stored allergies aliased by snapshot")
	}
	if _, ok := stored.FamilyHistory["Cancer"]; ok {
		t.Fatalf("stored family history aliased by snapshot")
	}
}

func TestReplaceContactInfoWholesale(t *testing.T) {
	store := NewStore(time.Hour)
	sess := store.Create()
	sess.ReplaceContactInfo(models.PatientContactInfo{FirstName: "Ada", Email: "ada@example.org"})
	sess.ReplaceContactInfo(models.PatientContactInfo{FirstName: "Grace"})
	got := sess.ContactInfo()
	if got.FirstName != "Grace" || got.Email != "" {
		t.Fatalf("expected wholesale replacement, got %+v", got)
	}
}
