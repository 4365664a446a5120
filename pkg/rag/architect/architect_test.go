package architect

import (
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"fit-buddy-be/internal/entity"
	"fit-buddy-be/pkg/llm"
)

type staticProvider struct {
	response string
	err      error
}

func (s *staticProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func (s *staticProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.response, s.err
}

func testProfile() *entity.UserProfile {
	return &entity.UserProfile{
		OnboardingData: map[string]interface{}{
			"goal":             "muscle_gain",
			"experience_level": "intermediate",
			"days_per_week":    4,
		},
	}
}

func testLogger() *log.Logger {
	return log.New(&strings.Builder{}, "", 0)
}

func TestDesignParsesSkeleton(t *testing.T) {
	provider := &staticProvider{response: `{
		"program_name": "Push Pull Legs",
		"description": "Classic split",
		"sessions": [
			{
				"title": "Push Day",
				"entries": [
					{"search_query": "horizontal pushing exercise for chest", "target_sets": 4, "target_reps": "6-10", "rest_seconds": 120}
				]
			}
		]
	}`}
	a := NewArchitect(provider, testLogger())

	skeleton, err := a.Design(context.Background(), testProfile(), "")
	if err != nil {
		t.Fatalf("Design() error = %v", err)
	}

	if skeleton.ProgramName != "Push Pull Legs" {
		t.Errorf("ProgramName = %q", skeleton.ProgramName)
	}
	if len(skeleton.Sessions) != 1 || len(skeleton.Sessions[0].Entries) != 1 {
		t.Fatalf("unexpected shape: %+v", skeleton.Sessions)
	}
	entry := skeleton.Sessions[0].Entries[0]
	if entry.SearchQuery != "horizontal pushing exercise for chest" {
		t.Errorf("SearchQuery = %q", entry.SearchQuery)
	}
	if entry.TargetSets != 4 || entry.RestSeconds != 120 {
		t.Errorf("prescription = sets:%d rest:%d", entry.TargetSets, entry.RestSeconds)
	}
}

func TestDesignErrorsOnEmptySkeleton(t *testing.T) {
	provider := &staticProvider{response: `{"program_name": "Empty", "description": "", "sessions": []}`}
	a := NewArchitect(provider, testLogger())

	_, err := a.Design(context.Background(), testProfile(), "")
	if err == nil {
		t.Fatal("Design() error = nil, want empty-skeleton error")
	}
}

func TestDesignErrorsOnProviderFailure(t *testing.T) {
	provider := &staticProvider{err: errors.New("model offline")}
	a := NewArchitect(provider, testLogger())

	_, err := a.Design(context.Background(), testProfile(), "guidelines")
	if err == nil {
		t.Fatal("Design() error = nil, want provider error")
	}
}

func TestBuildPromptTruncatesGuidelines(t *testing.T) {
	a := NewArchitect(&staticProvider{}, testLogger())
	long := strings.Repeat("g", guidelineBudget*2)

	prompt := a.buildPrompt(testProfile(), long)

	if strings.Contains(prompt, long) {
		t.Error("prompt contains the full guideline text, want truncated")
	}
	if !strings.Contains(prompt, strings.Repeat("g", guidelineBudget)) {
		t.Error("prompt is missing the truncated guideline prefix")
	}
}

func TestBuildPromptIncludesProfileFields(t *testing.T) {
	a := NewArchitect(&staticProvider{}, testLogger())

	prompt := a.buildPrompt(testProfile(), "")

	for _, want := range []string{"muscle_gain", "intermediate", "days_per_week"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}
