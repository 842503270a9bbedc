package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"folio/internal/prompt"
)

func TestResumeAnalysis_TextOnly(t *testing.T) {
	p := prompt.ResumeAnalysis("Kim Minsu, backend engineer", nil)

	assert.Contains(t, p.System, "recruiting expert")
	assert.Contains(t, p.User, "Kim Minsu, backend engineer")
	assert.NotContains(t, p.User, "images included")
	assert.Empty(t, p.Images)
}

func TestResumeAnalysis_WithImages(t *testing.T) {
	images := []string{"data:image/png;base64,AAAA", "data:image/png;base64,BBBB"}

	p := prompt.ResumeAnalysis("", images)

	assert.Contains(t, p.User, "images included")
	assert.Equal(t, images, p.Images)
	// Empty resume text: no extracted-text section.
	assert.NotContains(t, p.User, "[Extracted text]")
}

func TestChatAnswers_ContainsAllTwelveKeys(t *testing.T) {
	p := prompt.ChatAnswers("portfolio json here")

	for _, key := range []string{
		"core_skills", "main_stack", "tech_depth", "documentation",
		"role_contribution", "collaboration", "cycle", "artifacts",
		"best_project", "troubleshooting", "decision_making", "quantitative_performance",
	} {
		assert.Contains(t, p.System, `"`+key+`"`)
	}
	assert.Contains(t, p.User, "portfolio json here")
}

func TestCoach_EmptyContextFallback(t *testing.T) {
	p := prompt.Coach("How do I improve?", "   ")

	assert.Contains(t, p.System, "Popo")
	assert.Contains(t, p.System, "No portfolio information has been entered yet.")
	assert.Equal(t, "How do I improve?", p.User)
}

func TestCoach_ContextAppendedToSystem(t *testing.T) {
	p := prompt.Coach("hi", `{"name":"Kim"}`)

	assert.Contains(t, p.System, `{"name":"Kim"}`)
}

func TestDocent_Persona(t *testing.T) {
	p := prompt.Docent("What is the candidate's main stack?", `{"skills":["Go"]}`)

	assert.Contains(t, p.System, "Mumu")
	assert.Contains(t, p.System, `{"skills":["Go"]}`)
	assert.Equal(t, "What is the candidate's main stack?", p.User)
}

func TestPortfolioGeneration_ProjectTitles(t *testing.T) {
	answers := map[string]any{
		"name":                  "Kim",
		"job":                   "Backend",
		"project1_title":        "Payment gateway",
		"design_project2_title": "Brand site",
	}

	p := prompt.PortfolioGeneration(answers)

	assert.Contains(t, p.User, "Name:Kim")
	assert.Contains(t, p.User, "Project 1: Payment gateway")
	assert.Contains(t, p.User, "Project 2: Brand site")
	assert.NotContains(t, p.User, "Project 3")
}

func TestPortfolioGeneration_NonStringAnswersIgnored(t *testing.T) {
	p := prompt.PortfolioGeneration(map[string]any{"name": 42})

	assert.Contains(t, p.User, "Name: ")
	assert.False(t, strings.Contains(p.User, "42"))
}

func TestBuilders_ArePure(t *testing.T) {
	a := prompt.ChatAnswers("ctx")
	b := prompt.ChatAnswers("ctx")

	assert.Equal(t, a, b)
}
