package exercise

func init() {
	seed := []Exercise{
		{
			ID:      LevelBasic,
			Title:   "Basic Prompting",
			Problem: "Write a prompt to get ChatGPT to tell you about the water cycle in simple words.",
			Skill:   "Clarity & Simplicity",
			Example: "Explain the water cycle like you're talking to a 10-year-old using simple words and examples.",
		},
		{
			ID:      LevelIntermediate,
			Title:   "Intermediate Prompting",
			Problem: "Write a prompt that asks ChatGPT to compare two historical events and present them in tabular format.",
			Skill:   "Structured Output",
			Example: "Compare World War I and World War II in a table format with columns for causes, duration, major participants, and outcomes.",
		},
		{
			ID:      LevelAdvanced,
			Title:   "Advanced Prompting",
			Problem: "Create a prompt that gets ChatGPT to generate code for a to-do list app and explain it line by line.",
			Skill:   "Multi-step Reasoning",
			Example: "Create a React to-do list component with add, delete, and mark complete functionality. " +
				"Provide the complete code and then explain each section line by line, " +
				"including the purpose of each function and how the state management works.",
		},
	}

	if err := validateExercises(seed); err != nil {
		panic(err)
	}
	c = buildCatalog(seed)
}
