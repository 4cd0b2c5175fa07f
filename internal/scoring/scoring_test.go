package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/jobboard-client/internal/types"
)

func fullProfile() *types.JobSeekerProfile {
	return &types.JobSeekerProfile{
		FirstName:    "Dana",
		LastName:     "Kim",
		Email:        "dana@example.com",
		Bio:          "Backend engineer",
		Experience:   []types.ExperienceEntry{{Role: "Engineer"}},
		Projects:     []types.ProjectEntry{{Name: "jobboard"}},
		Education:    []types.EducationEntry{{School: "TU"}},
		Skills:       []string{"go"},
		ResumeFileID: "F1",
	}
}

func TestProfileCompletion_AllItems(t *testing.T) {
	assert.Equal(t, 100, ProfileCompletion(fullProfile()))
}

func TestProfileCompletion_NoItems(t *testing.T) {
	assert.Equal(t, 0, ProfileCompletion(&types.JobSeekerProfile{}))
	assert.Equal(t, 0, ProfileCompletion(nil))
}

func TestProfileCompletion_PartialRoundsToNearest(t *testing.T) {
	p := &types.JobSeekerProfile{
		FirstName: "Dana",
		LastName:  "Kim",
		Email:     "dana@example.com",
		Skills:    []string{"go"},
	}
	// 2 of 7 items: 28.57 rounds to 29.
	assert.Equal(t, 29, ProfileCompletion(p))
}

func TestProfileCompletion_BackendValueWins(t *testing.T) {
	p := fullProfile()
	backend := 42
	p.CompletionPercentage = &backend
	assert.Equal(t, 42, ProfileCompletion(p))
}

func TestSeededScore_PureAndInRange(t *testing.T) {
	seeds := []string{"J1", "A1", "", "application-7f3b", "Ω-unicode-seed", "aaaaaaaaaaaaaaaaaaaaaaaa"}
	for _, seed := range seeds {
		first := SeededScore(seed)
		second := SeededScore(seed)
		assert.Equal(t, first, second, "seed %q must be stable", seed)
		assert.GreaterOrEqual(t, first, 70)
		assert.LessOrEqual(t, first, 95)
	}
}

func TestSeededScore_DistinguishesSeeds(t *testing.T) {
	scores := map[int]bool{}
	for _, seed := range []string{"A1", "A2", "A3", "B9", "C42", "D1000", "E77", "F13"} {
		scores[SeededScore(seed)] = true
	}
	// Not every pair can differ in a 26-value range, but a spread this small
	// collapsing to one value would mean the hash is broken.
	assert.Greater(t, len(scores), 1)
}

func TestMatchScore_BackendValueWins(t *testing.T) {
	backend := 88
	app := &types.Application{ID: "A1", MatchScore: &backend}
	assert.Equal(t, 88, MatchScore(app))
}

func TestMatchScore_FallsBackToApplicationIDSeed(t *testing.T) {
	app := &types.Application{ID: "A1", JobSeekerID: "S1"}
	assert.Equal(t, SeededScore("A1"), MatchScore(app))
	assert.Equal(t, MatchScore(app), MatchScore(app), "same id queried twice yields the identical percentage")

	noID := &types.Application{JobSeekerID: "S1"}
	assert.Equal(t, SeededScore("S1"), MatchScore(noID))
}
