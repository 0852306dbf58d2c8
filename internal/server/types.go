package server

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type healthResponse struct {
	Success bool `json:"success"`
}

type categoriesResponse struct {
	Success    bool               `json:"success"`
	Categories []categoryResponse `json:"categories"`
}

type questionsPageResponse struct {
	Success   bool               `json:"success"`
	Questions []questionResponse `json:"questions"`
	Length    int                `json:"length"`
}

type questionDetailResponse struct {
	Success  bool             `json:"success"`
	Question questionResponse `json:"question"`
}

type deleteQuestionResponse struct {
	Success   bool `json:"success"`
	Length    int  `json:"length"`
	RemovedID int  `json:"removed_id"`
}

type addQuestionResponse struct {
	Success       bool             `json:"success"`
	Length        int              `json:"length"`
	QuestionAdded questionResponse `json:"question_added"`
}

type searchRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

type searchResponse struct {
	Success    bool               `json:"success"`
	Questions  []questionResponse `json:"questions"`
	SearchTerm string             `json:"searchTerm"`
	Length     int                `json:"length"`
}

type categoryQuestionsResponse struct {
	Success   bool               `json:"success"`
	Questions []questionResponse `json:"questions"`
	Category  int                `json:"category"`
	Length    int                `json:"length"`
}

type quizResponse struct {
	Success  bool              `json:"success"`
	Question *questionResponse `json:"question"`
}
