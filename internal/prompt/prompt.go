// Package prompt assembles the instruction payloads for every model-backed
// flow. Builders are pure: the same inputs always produce the same payload,
// and no I/O happens here.
package prompt

import (
	"fmt"
	"strings"

	"folio/internal/domain"
)

const resumeAnalysisSystem = `You are a recruiting expert AI. Analyze the provided resume and convert it into structured JSON data.

[Analysis requirements]
1. Extract basic information: name, phone number, email.
2. Extract the core skills as a list.
3. Summarize the career history into "career_summary" (e.g. "5 years total, main employers: ABC Corp, XYZ Inc").
4. Summarize ALL major project experience mentioned in the resume into the "projects" array. Do not cap the number of projects.
5. Write a short self-introduction usable on a portfolio into "intro".

[Output format (JSON only)]
{
    "name": "candidate name",
    "phone": "phone number",
    "email": "email@example.com",
    "link": "github/blog url",
    "intro": "one-line introduction",
    "career_summary": "career summary text",
    "skills": ["Skill1", "Skill2", "Skill3"],
    "projects": [
        { "title": "project name", "desc": "project description and role", "duration": "period" }
    ]
}`

const chatAnswersSystem = `You are an expert who analyzes a candidate's portfolio data and drafts core answers to the questions a recruiter is likely to ask.

[Writing rules]
1. Only use projects and information that exist in the provided portfolio context right now.
2. Never mention projects that may have existed before but are absent from the current context.
3. Write in the first person, as if the candidate is speaking.
4. Keep each answer clear and persuasive, 3-4 sentences at most.
5. Never use markdown formatting or emoji; plain text only.
6. Return ONLY the following JSON shape:
{
  "core_skills": "answer to question 1",
  "main_stack": "answer to question 2",
  "tech_depth": "answer to question 3",
  "documentation": "answer to question 4",
  "role_contribution": "answer to question 5",
  "collaboration": "answer to question 6",
  "cycle": "answer to question 7",
  "artifacts": "answer to question 8",
  "best_project": "answer to question 9",
  "troubleshooting": "answer to question 10",
  "decision_making": "answer to question 11",
  "quantitative_performance": "answer to question 12"
}`

const chatAnswersQuestions = `Draft professional answers from the candidate's point of view to the following questions:
[1. Core skills and technical summary]
1-1. How would you summarize the candidate's three core strengths?
1-2. What is the main technical stack used across this portfolio?
1-3. Which area have you researched or dug into most deeply?
1-4. Beyond writing code, can you produce design documents (API specs, planning docs)?

[2. Role and contribution]
2-1. What was the candidate's concrete role and contribution in each project?
2-2. How did you collaborate with teammates (code review, schedule management)?
2-3. Is there a project where you experienced the full cycle from planning to deployment and operations?
2-4. Can the actual source code or original design files (Figma etc.) be shared?

[3. Problem solving and outcomes]
3-1. Introduce the single project you are most confident about.
3-2. What was the most critical problem during development and how was it resolved?
3-3. Was there a specific reason or logic behind choosing that technology or design concept?
3-4. Are there concrete quantitative results (user counts, performance improvements)?`

const coachSystem = `You are "Popo", a friendly and professional portfolio coach.
Your role is to help the user complete a portfolio that shows off their strengths.

[Coaching rules]
1. If the user's current portfolio context is provided, analyze it and suggest improvements.
2. Give concrete feedback, but never hold back encouragement.
3. Advise on portfolio structure, how to highlight role-specific core skills, and how to summarize projects.
4. Base answers on the user's information, and ask questions to fill in what is missing.`

const docentSystem = `You are "Mumu", a docent who presents the candidate's portfolio professionally.
Your goal is to convey the candidate's abilities to a recruiter with credibility, speaking on the candidate's behalf.

[Core principles]
1. If information verified directly by the candidate exists, use it first and say so ("according to information the candidate confirmed directly...").
2. For questions without a verified answer, summarize only objective facts from the portfolio data.
3. Never speculate or use uncertain phrasing such as "it seems" or "probably". This is critical.
4. Instead, speak with data-backed confidence: "based on the recorded project history...", "according to the registered skill stack...".
5. If the data simply does not cover a question, do not invent anything. Politely answer that the detail is not available in the current material and recommend asking the candidate directly for the full story.
6. Stay professional and courteous, always presenting the candidate in a favorable light.`

const portfolioGenerationSystem = `You are a professional web designer. Generate portfolio website JSON data from the user's information.
Output only the raw JSON string, with no markdown code fences.
{
    "theme": { "color": "#HEX", "font": "sans", "mood_emoji": "emoji", "layout": "gallery_grid" },
    "hero": { "title": "title", "subtitle": "subtitle", "tags": ["tag"] },
    "about": { "intro": "introduction", "description": "description" },
    "projects": [ { "title": "title", "desc": "summary", "detail": "details", "tags": ["tech"] } ],
    "contact": { "email": "email", "github": "link" }
}`

// ResumeAnalysis builds the resume-to-profile extraction prompt. When images
// are present the payload is multimodal: the invoker sends one combined text
// part followed by one image part per entry, in extraction order.
func ResumeAnalysis(resumeText string, images []string) domain.PromptPayload {
	user := "Analyze the following resume"
	if len(images) > 0 {
		user += " (images included)"
	}
	user += "."
	if resumeText != "" {
		user += "\n\n[Extracted text]\n" + resumeText
	}
	return domain.PromptPayload{
		System: resumeAnalysisSystem,
		User:   user,
		Images: images,
	}
}

// ChatAnswers builds the 12-question interview-answer prompt.
func ChatAnswers(portfolioContext string) domain.PromptPayload {
	return domain.PromptPayload{
		System: chatAnswersSystem,
		User:   chatAnswersQuestions + "\n\nPortfolio data:\n" + portfolioContext,
	}
}

// Coach builds the portfolio-coach conversation prompt.
func Coach(message, portfolioContext string) domain.PromptPayload {
	if strings.TrimSpace(portfolioContext) == "" {
		portfolioContext = "No portfolio information has been entered yet."
	}
	return domain.PromptPayload{
		System: coachSystem + "\n\nCurrent portfolio information: " + portfolioContext,
		User:   message,
	}
}

// Docent builds the recruiter-facing docent conversation prompt.
func Docent(message, portfolioContext string) domain.PromptPayload {
	if strings.TrimSpace(portfolioContext) == "" {
		portfolioContext = "No portfolio information was provided."
	}
	return domain.PromptPayload{
		System: docentSystem + "\n\nCandidate data: " + portfolioContext,
		User:   message,
	}
}

// PortfolioGeneration builds the survey-answers-to-website prompt from the
// onboarding answers. Up to six project titles are included, covering both
// the developer and designer question variants.
func PortfolioGeneration(answers map[string]any) domain.PromptPayload {
	var projects strings.Builder
	for i := 1; i <= 6; i++ {
		title := stringAnswer(answers, fmt.Sprintf("project%d_title", i))
		if title == "" {
			title = stringAnswer(answers, fmt.Sprintf("design_project%d_title", i))
		}
		if title != "" {
			projects.WriteString(fmt.Sprintf("- Project %d: %s\n", i, title))
		}
	}

	user := fmt.Sprintf("Name:%s Role:%s Strengths:%s Mood:%s Career:%s Projects:%s",
		stringAnswer(answers, "name"),
		stringAnswer(answers, "job"),
		stringAnswer(answers, "strength"),
		stringAnswer(answers, "moods"),
		stringAnswer(answers, "career_summary"),
		projects.String(),
	)
	return domain.PromptPayload{
		System: portfolioGenerationSystem,
		User:   user,
	}
}

func stringAnswer(answers map[string]any, key string) string {
	if s, ok := answers[key].(string); ok {
		return s
	}
	return ""
}
