package bank

// builtinAssessments returns the assessments shipped with the binary.
func builtinAssessments() []Assessment {
	return []Assessment{
		{
			ID:          "cognitive",
			Title:       "Cognitive Assessment",
			Description: "Evaluate memory, attention, processing speed, and problem-solving abilities",
			Duration:    "15-20 min",
			Style:       "Adaptive",
			Strategy:    StrategyCorrectness,
			Advertised:  25,
			Questions: []Question{
				{
					ID:            "1",
					Kind:          KindMultipleChoice,
					Prompt:        "Which number comes next in the sequence: 2, 4, 8, 16, ?",
					Options:       []string{"24", "32", "30", "20"},
					CorrectAnswer: "32",
					Category:      "Pattern Recognition",
					Difficulty:    DifficultyMedium,
				},
				{
					ID:            "2",
					Kind:          KindMultipleChoice,
					Prompt:        "If all roses are flowers and some flowers are red, which statement is definitely true?",
					Options:       []string{"All roses are red", "Some roses are red", "No roses are red", "Some roses might be red"},
					CorrectAnswer: "Some roses might be red",
					Category:      "Logical Reasoning",
					Difficulty:    DifficultyHard,
				},
				{
					ID:            "3",
					Kind:          KindMultipleChoice,
					Prompt:        "What is the missing number: 3, 7, 15, 31, ?",
					Options:       []string{"47", "63", "55", "71"},
					CorrectAnswer: "63",
					Category:      "Numerical Reasoning",
					Difficulty:    DifficultyMedium,
				},
			},
		},
		{
			ID:          "personality",
			Title:       "Personality Profile",
			Description: "Discover your personality traits, work style, and behavioral preferences",
			Duration:    "10-15 min",
			Style:       "Standard",
			Strategy:    StrategyPreference,
			Advertised:  30,
			Questions: []Question{
				{
					ID:         "1",
					Kind:       KindRating,
					Prompt:     "I enjoy meeting new people and making connections",
					Category:   "Extraversion",
					Difficulty: DifficultyEasy,
				},
				{
					ID:         "2",
					Kind:       KindRating,
					Prompt:     "I prefer to plan things in advance rather than be spontaneous",
					Category:   "Conscientiousness",
					Difficulty: DifficultyEasy,
				},
				{
					ID:         "3",
					Kind:       KindRating,
					Prompt:     "I often worry about things that might go wrong",
					Category:   "Neuroticism",
					Difficulty: DifficultyEasy,
				},
			},
		},
		{
			ID:          "skills",
			Title:       "Skills Evaluation",
			Description: "Assess technical and soft skills relevant to your field or interests",
			Duration:    "20-25 min",
			Style:       "Adaptive",
			Strategy:    StrategyCorrectness,
			Advertised:  35,
			Questions: []Question{
				{
					ID:            "1",
					Kind:          KindMultipleChoice,
					Prompt:        "Which of the following is the best practice for project management?",
					Options:       []string{"Skip planning phase", "Set unrealistic deadlines", "Regular stakeholder communication", "Avoid documentation"},
					CorrectAnswer: "Regular stakeholder communication",
					Category:      "Project Management",
					Difficulty:    DifficultyMedium,
				},
				{
					ID:            "2",
					Kind:          KindMultipleChoice,
					Prompt:        "What is the most important factor in effective team leadership?",
					Options:       []string{"Micromanaging tasks", "Clear communication", "Working alone", "Avoiding feedback"},
					CorrectAnswer: "Clear communication",
					Category:      "Leadership",
					Difficulty:    DifficultyMedium,
				},
			},
		},
		{
			ID:          "aptitude",
			Title:       "Aptitude Test",
			Description: "Measure logical reasoning, numerical ability, and verbal comprehension",
			Duration:    "25-30 min",
			Style:       "Progressive",
			Strategy:    StrategyCorrectness,
			Advertised:  40,
			Questions: []Question{
				{
					ID:            "1",
					Kind:          KindMultipleChoice,
					Prompt:        "If a train travels 120 miles in 2 hours, what is its average speed?",
					Options:       []string{"50 mph", "60 mph", "70 mph", "80 mph"},
					CorrectAnswer: "60 mph",
					Category:      "Mathematical Reasoning",
					Difficulty:    DifficultyEasy,
				},
				{
					ID:            "2",
					Kind:          KindMultipleChoice,
					Prompt:        "Choose the word that best completes the analogy: Book is to Library as Car is to ?",
					Options:       []string{"Road", "Garage", "Driver", "Engine"},
					CorrectAnswer: "Garage",
					Category:      "Verbal Reasoning",
					Difficulty:    DifficultyMedium,
				},
			},
		},
	}
}
