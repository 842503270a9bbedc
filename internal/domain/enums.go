package domain

// UserRole distinguishes regular users from admins.
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// Auth providers recorded on User.AuthProvider.
const (
	AuthProviderEmail  = "email"
	AuthProviderGoogle = "google"
	AuthProviderKakao  = "kakao"
	AuthProviderNaver  = "naver"
)

// Prompt types recorded on usage events, one per model-backed flow.
const (
	PromptTypeAutoGenerate   = "auto_generate"
	PromptTypeResumeAnalysis = "resume_analysis"
	PromptTypeChatAnswers    = "chat_answers"
	PromptTypeCoach          = "popo"
	PromptTypeDocent         = "mumu"
)
