package types

type Question struct {
	ID         int    `db:"id"`
	Question   string `db:"question"`
	Answer     string `db:"answer"`
	Category   int    `db:"category"`
	Difficulty int    `db:"difficulty"`
}

// NewQuestion is the payload for creating a question. Fields are pointers so
// an absent field can be told apart from a zero value.
type NewQuestion struct {
	Question   *string `json:"question"`
	Answer     *string `json:"answer"`
	Category   *int    `json:"category"`
	Difficulty *int    `json:"difficulty"`
}

// QuizCategory carries the category a quiz draws from. An ID of 0 selects
// every category.
type QuizCategory struct {
	ID *int `json:"id"`
}

type QuizRequest struct {
	PreviousQuestions []int         `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}
