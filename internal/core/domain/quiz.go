package domain

// Question is a single multiple-choice question. The catalog is fixed at
// startup; questions are never created or mutated at runtime.
type Question struct {
	ID            int      `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correct_option"`
}

// Catalog is an immutable ordered list of questions.
type Catalog []Question

// DefaultCatalog returns the built-in question set served when no external
// catalog is configured.
func DefaultCatalog() Catalog {
	return Catalog{
		{
			ID:            1,
			Prompt:        "Which planet is known as the Red Planet?",
			Options:       []string{"Venus", "Mars", "Jupiter", "Mercury"},
			CorrectOption: 1,
		},
		{
			ID:            2,
			Prompt:        "What is the chemical symbol for gold?",
			Options:       []string{"Au", "Ag", "Gd", "Go"},
			CorrectOption: 0,
		},
		{
			ID:            3,
			Prompt:        "Which ocean is the largest by surface area?",
			Options:       []string{"Atlantic", "Pacific", "Indian", "Arctic"},
			CorrectOption: 1,
		},
	}
}
