// Package scoring provides the small deterministic computations the UI layer
// derives locally: profile-completion percentage and the match-score fallback
// used when the backend did not supply one.
package scoring

import (
	"math"

	"github.com/jonathan/jobboard-client/internal/types"
)

// Match-score fallback constants. The reduced hash is mapped into
// [matchScoreMin, matchScoreMax] inclusive.
const (
	matchScoreModulus = 2600
	matchScoreMin     = 70
	matchScoreMax     = 95
)

// completionChecklistSize is the number of checklist items in the
// profile-completion computation.
const completionChecklistSize = 7

// ProfileCompletion returns the profile's completion percentage in [0, 100].
// A backend-supplied percentage takes precedence over the local recomputation.
// The local checklist has seven items: personal info, summary, at least one
// experience entry, at least one project, at least one education entry, at
// least one skill, and an uploaded resume.
func ProfileCompletion(profile *types.JobSeekerProfile) int {
	if profile == nil {
		return 0
	}
	if profile.CompletionPercentage != nil {
		return *profile.CompletionPercentage
	}

	satisfied := 0
	if profile.FirstName != "" && profile.LastName != "" && profile.Email != "" {
		satisfied++
	}
	if profile.Bio != "" {
		satisfied++
	}
	if len(profile.Experience) > 0 {
		satisfied++
	}
	if len(profile.Projects) > 0 {
		satisfied++
	}
	if len(profile.Education) > 0 {
		satisfied++
	}
	if len(profile.Skills) > 0 {
		satisfied++
	}
	if profile.ResumeFileID != "" {
		satisfied++
	}

	return int(math.Round(float64(satisfied) / completionChecklistSize * 100))
}

// MatchScore returns an application's match percentage. A backend-supplied
// score wins; otherwise the score is derived deterministically from the
// application id, falling back to the job-seeker id as seed.
func MatchScore(app *types.Application) int {
	if app == nil {
		return matchScoreMin
	}
	if app.MatchScore != nil {
		return *app.MatchScore
	}
	seed := app.ID
	if seed == "" {
		seed = app.JobSeekerID
	}
	return SeededScore(seed)
}

// SeededScore derives a stable pseudo-score in [70, 95] from a seed string.
// The rolling hash multiplies the accumulator by 31, adds the character code
// and truncates to 32-bit signed at each step, so the same seed always yields
// the same score.
func SeededScore(seed string) int {
	var h int32
	for _, c := range seed {
		h = (h << 5) - h + int32(c)
	}

	reduced := int(h) % matchScoreModulus
	if reduced < 0 {
		reduced = -reduced
	}
	// reduced/100 is in [0, 25], so the result is in [70, 95] inclusive.
	return matchScoreMin + reduced/100
}
