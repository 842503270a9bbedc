package structured

// AnswerPlaceholder fills interview-answer fields the model left out, so a
// user can spot and complete them instead of the record being rejected.
const AnswerPlaceholder = "Not enough information to draft an answer. Please fill this in manually."

// AnswerKeys are the twelve interview-answer fields, in questionnaire order.
var AnswerKeys = []string{
	"core_skills",
	"main_stack",
	"tech_depth",
	"documentation",
	"role_contribution",
	"collaboration",
	"cycle",
	"artifacts",
	"best_project",
	"troubleshooting",
	"decision_making",
	"quantitative_performance",
}

// BackfillAnswers inserts the placeholder for every answer key absent from
// obj, leaving present keys untouched. The object is patched in place and
// returned; it is never rejected for missing keys.
func BackfillAnswers(obj map[string]any) map[string]any {
	for _, key := range AnswerKeys {
		if _, ok := obj[key]; !ok {
			obj[key] = AnswerPlaceholder
		}
	}
	return obj
}
