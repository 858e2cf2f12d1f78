package models

// PatientContactInfo holds the intake form fields. A session starts with an
// empty value; a successful intake submission replaces the whole record.
type PatientContactInfo struct {
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
}

// PatientMedicalInfo holds the medical-history form fields. Replaced wholesale
// on submission, like the contact record.
type PatientMedicalInfo struct {
	PrimaryCarePhysician string            `json:"primary_care_physician"`
	CurrentMedications   []string          `json:"current_medications"`
	Allergies            []string          `json:"allergies"`
	ChronicConditions    []string          `json:"chronic_conditions"`
	PastSurgeries        []string          `json:"past_surgeries"`
	FamilyHistory        map[string]string `json:"family_history"`
}

// NewPatientMedicalInfo returns a record whose list and map fields are freshly
// allocated. Two instances must never share backing storage.
func NewPatientMedicalInfo() PatientMedicalInfo {
	return PatientMedicalInfo{
		CurrentMedications: []string{},
		Allergies:          []string{},
		ChronicConditions:  []string{},
		PastSurgeries:      []string{},
		FamilyHistory:      map[string]string{},
	}
}

// FamilyHistoryConditions is the fixed set of conditions offered on the
// medical-history form.
var FamilyHistoryConditions = []string{
	"Heart Disease", "Diabetes", "Cancer", "Stroke",
	"High Blood Pressure", "Mental Health Conditions",
	"Autoimmune Disorders", "Other Significant Conditions",
}
