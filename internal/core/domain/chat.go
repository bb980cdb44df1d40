package domain

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatTurn is one entry of the history forwarded to the completion provider.
type ChatTurn struct {
	Role    ChatRole `json:"role"    validate:"required,oneof=user assistant"`
	Content string   `json:"content" validate:"required"`
}

// UserProfile is the subset of an assessment the advisor is told about.
type UserProfile struct {
	CurrentField    string   `json:"currentField"`
	CareerGoal      string   `json:"careerGoal"`
	SelectedSkills  []string `json:"selectedSkills"`
	LearningStyle   string   `json:"learningStyle"`
	ExperienceLevel string   `json:"experienceLevel"`
}

func ProfileFromAssessment(a *Assessment) *UserProfile {
	if a == nil {
		return nil
	}
	return &UserProfile{
		CurrentField:    a.CurrentField,
		CareerGoal:      a.CareerGoal,
		SelectedSkills:  append([]string(nil), a.SelectedSkills...),
		LearningStyle:   string(a.LearningStyle),
		ExperienceLevel: string(a.ExperienceLevel),
	}
}

const (
	ChatGreeting = "Hello! I'm your FutureProof career advisor. I can help you with learning strategies, skill development, and career guidance. What would you like to know?"
	ChatApology  = "I'm having trouble connecting. Please try again or ask another question."
)

// SuggestedQuestions are offered while the conversation holds only the greeting.
var SuggestedQuestions = []string{
	"What skills should I focus on first?",
	"How long will it take to become a Data Analyst?",
	"Can you help me create a learning plan?",
	"What resources do you recommend for Python?",
	"How do I transition to my goal role?",
}
