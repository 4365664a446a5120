package narrative

import (
	"context"
	"fmt"
	"log"

	"fit-buddy-be/internal/entity"
	"fit-buddy-be/pkg/llm"
)

// Narrative is the personalized framing of a generated program.
type Narrative struct {
	ProgramName string `json:"program_name"`
	Description string `json:"description"`
	CoachNotes  string `json:"coach_notes"`
}

// Personalizer rewrites a program's name and description in the user's own
// terms. It never fails: when the model is unavailable the base name and
// description pass through with a generic coach note.
type Personalizer struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func NewPersonalizer(provider llm.LLMProvider, logger *log.Logger) *Personalizer {
	return &Personalizer{
		provider: provider,
		logger:   logger,
	}
}

func (p *Personalizer) Personalize(ctx context.Context, profile *entity.UserProfile, baseName, baseDescription string) Narrative {
	fallback := Narrative{
		ProgramName: baseName,
		Description: baseDescription,
		CoachNotes:  "Focus on form and consistency.",
	}

	prompt := fmt.Sprintf(`You are a supportive personal trainer writing for one client.

Client goal: %s
Client experience: %s
Program name: %s
Program description: %s

Rewrite the program name and description to speak directly to this client,
and add one short motivating coach note.

Respond with ONLY this JSON structure:
{"program_name": "...", "description": "...", "coach_notes": "..."}`,
		profile.Goal(), profile.ExperienceLevel(), baseName, baseDescription)

	var result Narrative
	if err := llm.GenerateJSON(ctx, p.provider, prompt, &result, llm.WithTemperature(0.7)); err != nil {
		p.logger.Printf("[WARN] narrative personalization failed: %v", err)
		return fallback
	}

	if result.ProgramName == "" {
		result.ProgramName = baseName
	}
	if result.Description == "" {
		result.Description = baseDescription
	}
	if result.CoachNotes == "" {
		result.CoachNotes = fallback.CoachNotes
	}

	return result
}
