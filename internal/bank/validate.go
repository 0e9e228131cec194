package bank

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/mod/semver"
)

// FormatVersion is the bank file format this build reads. Files declaring
// the same major version are accepted.
const FormatVersion = "v1.0.0"

// Issue is a single problem found in a bank file.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports every issue found in a bank file.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "bank validation failed: " + strings.Join(parts, "; ")
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// NormalizeDocument trims whitespace and checks the rules the schema cannot
// express. Returns the cleaned document or a *ValidationError.
func NormalizeDocument(doc Document) (Document, error) {
	c := &issueCollector{}

	doc.Version = canonicalVersion(doc.Version)
	switch {
	case doc.Version == "":
		c.add("version", "is required")
	case !semver.IsValid(doc.Version):
		c.add("version", fmt.Sprintf("invalid version %q", doc.Version))
	case semver.Major(doc.Version) != semver.Major(FormatVersion):
		c.add("version", fmt.Sprintf("unsupported version %s (want %s.x)", doc.Version, semver.Major(FormatVersion)))
	}

	if len(doc.Assessments) == 0 {
		c.add("assessments", "must include at least one entry")
	}

	seen := map[string]bool{}
	for i := range doc.Assessments {
		a := &doc.Assessments[i]
		prefix := fmt.Sprintf("assessments[%d]", i)

		a.ID = strings.TrimSpace(a.ID)
		a.Title = strings.TrimSpace(a.Title)
		switch {
		case a.ID == "":
			c.add(prefix+".id", "is required")
		case seen[a.ID]:
			c.add(prefix+".id", fmt.Sprintf("duplicate id %q", a.ID))
		default:
			seen[a.ID] = true
		}
		if a.Title == "" {
			c.add(prefix+".title", "is required")
		}
		if a.Strategy != StrategyCorrectness && a.Strategy != StrategyPreference {
			c.add(prefix+".strategy", fmt.Sprintf("unknown strategy %q", a.Strategy))
		}
		if len(a.Questions) == 0 {
			c.add(prefix+".questions", "must include at least one entry")
		}
		normalizeQuestions(c, prefix, a.Questions)
	}

	if err := c.result(); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func normalizeQuestions(c *issueCollector, prefix string, questions []Question) {
	seen := map[string]bool{}
	for i := range questions {
		q := &questions[i]
		field := fmt.Sprintf("%s.questions[%d]", prefix, i)

		q.ID = strings.TrimSpace(q.ID)
		q.Prompt = strings.TrimSpace(q.Prompt)
		q.Category = strings.TrimSpace(q.Category)
		q.CorrectAnswer = strings.TrimSpace(q.CorrectAnswer)
		for j := range q.Options {
			q.Options[j] = strings.TrimSpace(q.Options[j])
		}

		switch {
		case q.ID == "":
			c.add(field+".id", "is required")
		case seen[q.ID]:
			c.add(field+".id", fmt.Sprintf("duplicate id %q", q.ID))
		default:
			seen[q.ID] = true
		}
		if q.Prompt == "" {
			c.add(field+".prompt", "is required")
		}
		if q.Category == "" {
			c.add(field+".category", "is required")
		}

		switch q.Kind {
		case KindMultipleChoice:
			if len(q.Options) < 2 {
				c.add(field+".options", "multiple-choice needs at least two options")
			}
		case KindTrueFalse:
			if len(q.Options) != 0 && len(q.Options) != 2 {
				c.add(field+".options", "true-false takes exactly two options or none")
			}
		case KindRating:
			if len(q.Options) != 0 {
				c.add(field+".options", "rating questions use the fixed scale")
			}
			if q.CorrectAnswer != "" {
				c.add(field+".correct_answer", "rating questions have no correct answer")
			}
		default:
			c.add(field+".kind", fmt.Sprintf("unknown kind %q", q.Kind))
		}

		if q.CorrectAnswer != "" && q.Kind != KindRating && !slices.Contains(q.Choices(), q.CorrectAnswer) {
			c.add(field+".correct_answer", fmt.Sprintf("%q is not one of the options", q.CorrectAnswer))
		}
	}
}

// canonicalVersion accepts "1", "1.2" or "v1.2.0" and returns the v-prefixed form.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.HasPrefix(v, "v") {
		return v
	}
	return "v" + v
}
