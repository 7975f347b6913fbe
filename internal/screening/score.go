package screening

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// Scorer computes an advisory match score between a resume text and the
// skills a posting asks for. The score never gates an application.
type Scorer interface {
	Score(ctx context.Context, resumeText string, requiredSkills string) (score float64, matchedKeywords string, err error)
}

// KeywordScorer is the default Scorer. It tokenizes the posting's required
// skills and reports what fraction of them appear in the resume text.
type KeywordScorer struct{}

var skillSplitter = regexp.MustCompile(`[,;/\n]+`)

func (KeywordScorer) Score(ctx context.Context, resumeText string, requiredSkills string) (float64, string, error) {
	if err := ctx.Err(); err != nil {
		return 0, "", err
	}

	skills := splitSkills(requiredSkills)
	if len(skills) == 0 {
		return 0, "", nil
	}

	haystack := strings.ToLower(resumeText)
	var matched []string
	for _, skill := range skills {
		if strings.Contains(haystack, strings.ToLower(skill)) {
			matched = append(matched, skill)
		}
	}
	sort.Strings(matched)

	score := float64(len(matched)) / float64(len(skills)) * 100
	return score, strings.Join(matched, ", "), nil
}

func splitSkills(raw string) []string {
	seen := make(map[string]struct{})
	var skills []string
	for _, part := range skillSplitter.Split(raw, -1) {
		skill := strings.TrimSpace(part)
		if skill == "" {
			continue
		}
		key := strings.ToLower(skill)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, skill)
	}
	return skills
}
