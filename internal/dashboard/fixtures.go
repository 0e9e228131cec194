package dashboard

import "time"

// SampleHistory is shown while no attempts have been recorded.
func SampleHistory() []Entry {
	return []Entry{
		{AssessmentID: "cognitive", Title: "Cognitive Assessment", Date: day(2024, 1, 20), Score: 85, Minutes: 18},
		{AssessmentID: "personality", Title: "Personality Profile", Date: day(2024, 1, 18), Score: 92, Minutes: 12},
		{AssessmentID: "skills", Title: "Skills Evaluation", Date: day(2024, 1, 15), Score: 78, Minutes: 22},
		{AssessmentID: "aptitude", Title: "Aptitude Test", Date: day(2024, 1, 12), Score: 88, Minutes: 25},
	}
}

// SkillTargets are the static skill goals shown on the progress tab.
func SkillTargets() []SkillProgress {
	return []SkillProgress{
		{Skill: "Logical Reasoning", Current: 85, Target: 90, Improvement: "+5%"},
		{Skill: "Numerical Ability", Current: 78, Target: 85, Improvement: "+3%"},
		{Skill: "Verbal Comprehension", Current: 92, Target: 95, Improvement: "+2%"},
		{Skill: "Pattern Recognition", Current: 88, Target: 90, Improvement: "+4%"},
		{Skill: "Problem Solving", Current: 82, Target: 88, Improvement: "+6%"},
	}
}

// Recommendations are the static study suggestions.
func Recommendations() []Recommendation {
	return []Recommendation{
		{
			Title:         "Improve Numerical Reasoning",
			Description:   "Focus on mathematical problem-solving exercises to boost your numerical ability score.",
			Priority:      PriorityHigh,
			EstimatedTime: "2-3 weeks",
		},
		{
			Title:         "Practice Pattern Recognition",
			Description:   "Regular practice with sequence and pattern problems will enhance your cognitive flexibility.",
			Priority:      PriorityMedium,
			EstimatedTime: "1-2 weeks",
		},
		{
			Title:         "Develop Leadership Skills",
			Description:   "Consider taking leadership assessments to complement your technical skills profile.",
			Priority:      PriorityLow,
			EstimatedTime: "3-4 weeks",
		},
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
