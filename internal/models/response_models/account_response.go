package response_models

type LoginResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	UID    string `json:"uid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
	Role   string `json:"role"`
	Score  int    `json:"score"`
}

type QuizHistoryResponse struct {
	QuizID         string `json:"quiz_id"`
	QuizTitle      string `json:"quiz_title,omitempty"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Date           string `json:"date"`
}
