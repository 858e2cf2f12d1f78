package persona

import (
	"math/rand"
	"strings"
	"time"
)

// topicEntry pairs a topic's trigger keywords with its canned responses.
// Topics are scanned in order and the first keyword hit wins, so the table is
// a slice, not a map.
type topicEntry struct {
	Topic     string
	Keywords  []string
	Responses []string
}

var topicTable = []topicEntry{
	{
		Topic:    "wellness",
		Keywords: []string{"wellness", "well-being", "wellbeing", "healthy lifestyle", "overall health"},
		Responses: []string{
			"Clinical Assessment: Comprehensive wellness requires a systematic evaluation of sleep, nutrition, movement, and stress physiology. We recommend scheduling a full wellness optimization assessment to establish your baseline markers.",
			"From an evidence-based perspective, sustainable wellness is built on measurable fundamentals. We would begin with laboratory evaluation and a structured lifestyle inventory before recommending any protocol.",
			"We approach wellness through an integrative lens: conventional screening combined with functional medicine assessment. A documented plan with defined follow-up intervals produces the most durable outcomes.",
		},
	},
	{
		Topic:    "nutrition",
		Keywords: []string{"nutrition", "diet", "food", "eating", "meal"},
		Responses: []string{
			"Nutritional status is foundational to every clinical outcome we manage. We recommend a structured dietary assessment, including micronutrient evaluation, before individualized recommendations are made.",
			"Evidence supports an anti-inflammatory dietary pattern emphasizing whole foods, adequate protein, and minimal refined carbohydrate. We would tailor specifics to your laboratory findings and history.",
			"We integrate functional nutrition planning into treatment: targeted dietary modification, documented food response tracking, and scheduled reassessment of relevant biomarkers.",
		},
	},
	{
		Topic:    "sleep",
		Keywords: []string{"sleep", "insomnia", "fatigue", "tired", "rest"},
		Responses: []string{
			"Sleep architecture disruption has systemic consequences for hormonal balance, cognition, and immune function. We recommend a formal sleep assessment, including a review of sleep hygiene, timing, and contributing medications.",
			"Clinically, persistent fatigue warrants structured evaluation: thyroid function, iron status, sleep quality, and stress physiology should each be assessed before intervention.",
			"We approach sleep optimization systematically: consistent circadian scheduling, evening light management, and evaluation of underlying contributors. A sleep log over fourteen days provides the necessary baseline data.",
		},
	},
	{
		Topic:    "stress",
		Keywords: []string{"stress", "anxiety", "overwhelmed", "burnout", "pressure"},
		Responses: []string{
			"Chronic stress activation measurably alters cortisol rhythm, sleep quality, and inflammatory markers. We recommend an evaluation of your stress physiology alongside evidence-based regulation strategies.",
			"From a clinical standpoint, stress management is a structured intervention, not an afterthought: breath-based regulation, scheduled recovery, and where indicated, adaptogenic support under supervision.",
			"We take stress presentations seriously given their downstream effects. A mind-body intervention plan with documented follow-up is the standard of care in this practice.",
		},
	},
	{
		Topic:    "aging",
		Keywords: []string{"aging", "anti-aging", "longevity", "age-related"},
		Responses: []string{
			"Healthy aging is an evidence-based discipline. We evaluate metabolic, hormonal, and inflammatory markers to construct an individualized longevity protocol rather than generic supplementation.",
			"Our anti-aging approach prioritizes interventions with demonstrated benefit: resistance training, metabolic optimization, sleep consolidation, and periodic laboratory surveillance.",
			"We recommend a comprehensive age-management assessment as the starting point. Documented baselines allow us to measure genuine progress rather than estimate it.",
		},
	},
	{
		Topic:    "hormones",
		Keywords: []string{"hormone", "thyroid", "testosterone", "estrogen", "cortisol"},
		Responses: []string{
			"Hormonal balance requires precise laboratory characterization before any intervention. We order comprehensive panels and interpret them in clinical context, not in isolation.",
			"Endocrine symptoms frequently overlap; fatigue, mood change, and weight shift each have several hormonal contributors. A structured workup distinguishes among them before treatment planning.",
			"We manage hormonal optimization conservatively and with scheduled reassessment. Evidence-based dosing with documented follow-up protects both efficacy and safety.",
		},
	},
	{
		Topic:    "inflammation",
		Keywords: []string{"inflammation", "inflammatory", "swelling", "joint pain"},
		Responses: []string{
			"Chronic low-grade inflammation underlies many of the conditions we manage. We assess hs-CRP and related markers, then address dietary, sleep, and gut-related contributors systematically.",
			"An anti-inflammatory protocol in this practice combines nutritional modification, targeted supplementation where evidence supports it, and reassessment of markers at defined intervals.",
			"Persistent inflammatory symptoms warrant a documented evaluation rather than symptomatic suppression alone. We recommend scheduling a comprehensive inflammatory workup.",
		},
	},
	{
		Topic:    "detox",
		Keywords: []string{"detox", "toxin", "cleanse", "heavy metal"},
		Responses: []string{
			"We approach detoxification clinically: supporting hepatic and renal pathways with evidence-based nutrition rather than unsupervised cleanse products, which we do not endorse.",
			"Meaningful detoxification support begins with reducing exposure and optimizing the body's existing clearance systems. We can structure an assessment if you have a specific exposure concern.",
			"Where a toxic exposure is suspected, documented testing precedes any protocol. We recommend discussing your specific concern during a scheduled consultation.",
		},
	},
	{
		Topic:    "gut health",
		Keywords: []string{"gut", "digestion", "digestive", "microbiome", "bloating"},
		Responses: []string{
			"Gastrointestinal function influences immunity, mood, and nutrient status. We evaluate digestive symptoms with structured testing before recommending targeted interventions.",
			"Evidence increasingly links microbiome composition to systemic health. Our gut-health protocols combine dietary fiber diversity, targeted probiotics where indicated, and scheduled reassessment.",
			"Persistent digestive symptoms merit a comprehensive workup rather than empirical supplementation. We recommend completing your medical history so an appropriate evaluation can be planned.",
		},
	},
}

// defaultResponses serve any input that matches no topic, including empty
// input. Falling through here is expected behavior, not an error.
var defaultResponses = []string{
	"Thank you for your inquiry. To provide an evidence-based response, we ask that you describe your health concern in more specific clinical terms.",
	"We maintain a strict clinical focus in this consultation. Please share the symptoms or wellness goals you would like addressed so we can respond appropriately.",
	"Your question falls outside the structured topics we routinely address. We recommend completing the intake forms so a formal consultation can be scheduled.",
}

// Responder selects canned chat responses. The random source is injected so
// tests can pin selection while asserting over the candidate set.
type Responder struct {
	rng *rand.Rand
}

// NewResponder builds a Responder; a nil rng gets a time-seeded source.
func NewResponder(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rng: rng}
}

// CandidateResponses returns the fixed response set for the first topic whose
// keyword appears in the input, or the default set when nothing matches.
func CandidateResponses(input string) []string {
	lowered := strings.ToLower(input)
	for _, entry := range topicTable {
		for _, kw := range entry.Keywords {
			if strings.Contains(lowered, kw) {
				return entry.Responses
			}
		}
	}
	return defaultResponses
}

// ChatResponse picks one response uniformly at random from the candidate set.
func (r *Responder) ChatResponse(input string) string {
	candidates := CandidateResponses(input)
	return candidates[r.rng.Intn(len(candidates))]
}
