package architect

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fit-buddy-be/internal/entity"
	"fit-buddy-be/pkg/llm"
)

// guidelineBudget caps how much expert documentation is inlined into the
// prompt so the skeleton request stays well inside the context window.
const guidelineBudget = 3000

// SkeletonEntry is one exercise slot designed by the model. SearchQuery is a
// semantic description ("heavy horizontal press"), not an exercise name; the
// librarian resolves it against the catalog afterwards.
type SkeletonEntry struct {
	SearchQuery string `json:"search_query"`
	TargetSets  int    `json:"target_sets"`
	TargetReps  string `json:"target_reps"`
	RestSeconds int    `json:"rest_seconds"`
	Notes       string `json:"notes,omitempty"`
}

type SkeletonSession struct {
	Title   string          `json:"title"`
	Entries []SkeletonEntry `json:"entries"`
}

// Skeleton is the structural plan for a program before any catalog lookup.
type Skeleton struct {
	ProgramName string            `json:"program_name"`
	Description string            `json:"description"`
	Sessions    []SkeletonSession `json:"sessions"`
}

// Architect asks the LLM to design a program structure from the user profile
// and expert guidelines.
type Architect struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

func NewArchitect(provider llm.LLMProvider, logger *log.Logger) *Architect {
	return &Architect{
		provider: provider,
		logger:   logger,
	}
}

// Design produces a program skeleton. It returns an error when the model is
// unreachable or returns no sessions; the caller decides the fallback.
func (a *Architect) Design(ctx context.Context, profile *entity.UserProfile, guidelines string) (*Skeleton, error) {
	prompt := a.buildPrompt(profile, guidelines)

	var skeleton Skeleton
	if err := llm.GenerateJSON(ctx, a.provider, prompt, &skeleton, llm.WithTemperature(0.4)); err != nil {
		return nil, fmt.Errorf("architect generation failed: %w", err)
	}

	if len(skeleton.Sessions) == 0 {
		return nil, fmt.Errorf("architect returned empty skeleton")
	}

	a.logger.Printf("[DEBUG] architect designed %d sessions for goal=%s", len(skeleton.Sessions), profile.Goal())
	return &skeleton, nil
}

func (a *Architect) buildPrompt(profile *entity.UserProfile, guidelines string) string {
	if len(guidelines) > guidelineBudget {
		guidelines = guidelines[:guidelineBudget]
	}

	var b strings.Builder
	b.WriteString("You are an elite strength and conditioning coach. Design a weekly workout program structure.\n\n")

	b.WriteString("USER PROFILE:\n")
	b.WriteString(fmt.Sprintf("- Goal: %s\n", profile.Goal()))
	b.WriteString(fmt.Sprintf("- Experience level: %s\n", profile.ExperienceLevel()))
	for k, v := range profile.OnboardingData {
		if k == "goal" || k == "experience_level" {
			continue
		}
		b.WriteString(fmt.Sprintf("- %s: %v\n", k, v))
	}

	if guidelines != "" {
		b.WriteString("\nEXPERT GUIDELINES:\n")
		b.WriteString(guidelines)
		b.WriteString("\n")
	}

	b.WriteString(`
IMPORTANT: For each exercise slot, do NOT name a specific exercise. Instead
write a "search_query" describing the movement pattern and intent, e.g.
"compound barbell movement for quadriceps" or "horizontal pushing exercise
for chest hypertrophy".

Respond with ONLY this JSON structure:
{
  "program_name": "...",
  "description": "...",
  "sessions": [
    {
      "title": "...",
      "entries": [
        {"search_query": "...", "target_sets": 3, "target_reps": "8-12", "rest_seconds": 90, "notes": "..."}
      ]
    }
  ]
}`)

	return b.String()
}
