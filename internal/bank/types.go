package bank

// Kind is how a question is answered.
type Kind string

const (
	KindMultipleChoice Kind = "multiple-choice"
	KindTrueFalse      Kind = "true-false"
	KindRating         Kind = "rating"
)

// Difficulty is the author-assigned difficulty of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Strategy selects how an assessment is scored.
type Strategy string

const (
	// StrategyCorrectness grades answers against each question's correct answer.
	StrategyCorrectness Strategy = "correctness"

	// StrategyPreference maps rating answers onto a five-point scale.
	StrategyPreference Strategy = "preference"
)

// RatingLabels is the five-point agreement scale, lowest first.
var RatingLabels = []string{
	"Strongly Disagree",
	"Disagree",
	"Neutral",
	"Agree",
	"Strongly Agree",
}

// TrueFalseLabels are the choices shown for true-false questions without options.
var TrueFalseLabels = []string{"True", "False"}

// Question is a single immutable question record.
type Question struct {
	ID            string     `json:"id" yaml:"id"`
	Kind          Kind       `json:"kind" yaml:"kind"`
	Prompt        string     `json:"prompt" yaml:"prompt"`
	Options       []string   `json:"options,omitempty" yaml:"options,omitempty"`
	CorrectAnswer string     `json:"correct_answer,omitempty" yaml:"correct_answer,omitempty"`
	Category      string     `json:"category" yaml:"category"`
	Difficulty    Difficulty `json:"difficulty" yaml:"difficulty"`
}

// HasCorrectAnswer reports whether the question can be graded for correctness.
func (q Question) HasCorrectAnswer() bool {
	return q.CorrectAnswer != ""
}

// Choices returns the answer values a learner picks from.
func (q Question) Choices() []string {
	switch q.Kind {
	case KindRating:
		return RatingLabels
	case KindTrueFalse:
		if len(q.Options) == 0 {
			return TrueFalseLabels
		}
	}
	return q.Options
}

// Assessment is a named, ordered question sequence with its scoring strategy
// and the catalogue details shown on the home screen.
type Assessment struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Duration    string   `json:"duration,omitempty" yaml:"duration,omitempty"`
	Style       string   `json:"style,omitempty" yaml:"style,omitempty"`
	Strategy    Strategy `json:"strategy" yaml:"strategy"`

	// Advertised is the question count shown in the catalogue. Zero means
	// the length of Questions.
	Advertised int `json:"advertised,omitempty" yaml:"advertised,omitempty"`

	Questions []Question `json:"questions" yaml:"questions"`
}

// AdvertisedCount returns the catalogue question count.
func (a Assessment) AdvertisedCount() int {
	if a.Advertised > 0 {
		return a.Advertised
	}
	return len(a.Questions)
}

// Document is the on-disk bank file format.
type Document struct {
	Version     string       `json:"version" yaml:"version"`
	Assessments []Assessment `json:"assessments" yaml:"assessments"`
}
