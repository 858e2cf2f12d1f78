package api

import (
	"github.com/gin-gonic/gin"

	"drjackson/internal/models"
)

// hipaaNotice is the standardized compliance notice shown on several pages.
var hipaaNotice = gin.H{
	"title": "HIPAA Compliance Notice",
	"body":  "This application complies with the Health Insurance Portability and Accountability Act (HIPAA) of 1996.",
	"points": []string{
		"All patient data is encrypted in transit and at rest",
		"Access controls restrict unauthorized viewing of protected health information (PHI)",
		"Audit logs track all data access and modifications",
		"Data retention policies comply with medical record requirements",
		"Regular security assessments are conducted to ensure compliance",
	},
	"privacy_officer_contact": "privacy@optimumwellness.org",
}

// pageContent serves the static body of each page from the persona catalog.
// The source material repeated several of these blocks; only the first
// coherent occurrence of each page is represented here.
func (h *Handler) pageContent(route models.Route) gin.H {
	switch route {
	case models.RouteHome:
		return gin.H{
			"header":          h.persona.FormalIntroduction(),
			"hipaa_notice":    hipaaNotice,
			"primary_domains": h.persona.PrimaryDomains,
			"core_values":     h.persona.CoreValues[:4],
			"call_to_action":  "To begin the consultation process, please complete the Patient Intake forms first.",
		}
	case models.RouteIntake:
		return gin.H{
			"privacy_notice": "All information submitted is encrypted and protected in accordance with HIPAA regulations. Information is only accessible to authorized medical personnel.",
			"required_fields": []string{
				"first_name", "last_name", "email", "phone", "date_of_birth",
			},
			"consent_required": true,
		}
	case models.RouteMedicalHistory:
		return gin.H{
			"privacy_notice":            "Your medical history is protected under HIPAA. This information helps us provide appropriate care and will not be shared without your explicit consent.",
			"family_history_conditions": models.FamilyHistoryConditions,
		}
	case models.RouteConsultation:
		return gin.H{
			"privacy_notice": "This consultation is protected under HIPAA guidelines. Information shared during this session is confidential and will be securely stored in your electronic medical record.",
		}
	case models.RouteChat:
		return gin.H{
			"greeting": h.persona.FormalIntroduction(),
			"guidance": "Describe the symptoms or wellness goals you would like addressed.",
		}
	case models.RouteSpecialties:
		return gin.H{
			"primary_domains":   h.persona.PrimaryDomains,
			"secondary_domains": h.persona.SecondaryDomains,
			"description":       "Comprehensive services with an evidence-based, integrative approach: assessment, treatment planning, and ongoing management.",
		}
	case models.RouteApproach:
		return gin.H{
			"knowledge_priorities": h.persona.KnowledgePriorities,
			"dei_focus":            h.persona.DEIFocus,
			"communication":        h.persona.CommunicationFramework,
		}
	case models.RouteResources:
		return gin.H{
			"hipaa_notice": hipaaNotice,
			"patient_education_categories": []string{
				"Functional Medicine Basics",
				"Nutritional Approaches",
				"Stress Management",
				"Hormone Balance",
				"Gut Health",
				"Sleep Optimization",
			},
			"treatment_approaches": []string{
				"Integrative Medicine Protocols",
				"Functional Nutrition Plans",
				"Targeted Supplementation",
				"Lifestyle Modification Programs",
				"Mind-Body Interventions",
			},
			"research_areas": []string{
				"Functional Medicine Approaches to Chronic Conditions",
				"Integrative Protocols for Stress-Related Disorders",
				"Nutritional Interventions for Inflammatory Conditions",
				"Mind-Body Medicine in Clinical Practice",
			},
		}
	case models.RouteSettings:
		return gin.H{
			"providers": []string{"anthropic", "openai", "meta", "xai"},
			"note":      "API keys are stored in your session only and are never dispatched to any provider by this service.",
			"ai_integration_features": []string{
				"Automated clinical note generation",
				"Medical literature search assistance",
				"Treatment plan optimization",
				"Follow-up reminder system",
				"Patient education material generation",
			},
		}
	default:
		return gin.H{}
	}
}
