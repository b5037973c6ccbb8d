package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"culturehub/internal/models/db_models"
	"culturehub/internal/models/request_models"
	"culturehub/internal/models/response_models"
	"culturehub/internal/repositories"
	"culturehub/pkg/utils"
)

type QuizServiceInterface interface {
	CreateQuiz(ctx context.Context, request request_models.SaveQuizRequest) (string, error)
	UpdateQuiz(ctx context.Context, quizID string, request request_models.SaveQuizRequest) error
	DeleteQuiz(ctx context.Context, quizID string) error
	ListQuizzes(ctx context.Context) ([]response_models.QuizSummary, error)
	GetQuiz(ctx context.Context, quizID string) (*response_models.QuizDetail, error)
	GetQuizAdmin(ctx context.Context, quizID string) (*response_models.AdminQuizDetail, error)
}

type QuizService struct {
	quizRepo repositories.QuizRepository
}

func NewQuizService(quizRepo repositories.QuizRepository) QuizServiceInterface {
	return &QuizService{
		quizRepo: quizRepo,
	}
}

func (q *QuizService) CreateQuiz(ctx context.Context, request request_models.SaveQuizRequest) (string, error) {
	quiz, err := buildQuiz(request)
	if err != nil {
		return "", err
	}

	if err := q.quizRepo.Insert(ctx, quiz); err != nil {
		return "", utils.ErrDatabaseError
	}
	return quiz.ID.String(), nil
}

func (q *QuizService) UpdateQuiz(ctx context.Context, quizID string, request request_models.SaveQuizRequest) error {
	id, err := uuid.Parse(quizID)
	if err != nil {
		return utils.ErrQuizNotFound
	}

	existing, err := q.quizRepo.FindById(ctx, quizID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrQuizNotFound
	}

	quiz, err := buildQuiz(request)
	if err != nil {
		return err
	}
	quiz.ID = id

	if err := q.quizRepo.Replace(ctx, quiz); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (q *QuizService) DeleteQuiz(ctx context.Context, quizID string) error {
	existing, err := q.quizRepo.FindById(ctx, quizID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrQuizNotFound
	}
	if err := q.quizRepo.Delete(ctx, quizID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (q *QuizService) ListQuizzes(ctx context.Context) ([]response_models.QuizSummary, error) {
	quizzes, err := q.quizRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.QuizSummary, 0, len(quizzes))
	for _, quiz := range quizzes {
		summaries = append(summaries, response_models.QuizSummary{
			ID:            quiz.ID.String(),
			Title:         quiz.Title,
			Description:   quiz.Description,
			QuestionCount: len(quiz.Questions),
			CreatedAt:     utils.FormatRFC3339(utils.FromUnixSeconds(quiz.CreatedAt)),
		})
	}
	return summaries, nil
}

func (q *QuizService) GetQuiz(ctx context.Context, quizID string) (*response_models.QuizDetail, error) {
	quiz, err := q.quizRepo.FindById(ctx, quizID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if quiz == nil {
		return nil, utils.ErrQuizNotFound
	}

	detail := &response_models.QuizDetail{
		ID:          quiz.ID.String(),
		Title:       quiz.Title,
		Description: quiz.Description,
		CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(quiz.CreatedAt)),
	}
	if quiz.ArticleID != nil {
		detail.ArticleID = quiz.ArticleID.String()
	}
	for _, question := range quiz.Questions {
		detail.Questions = append(detail.Questions, questionView(question))
	}
	return detail, nil
}

func (q *QuizService) GetQuizAdmin(ctx context.Context, quizID string) (*response_models.AdminQuizDetail, error) {
	quiz, err := q.quizRepo.FindById(ctx, quizID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if quiz == nil {
		return nil, utils.ErrQuizNotFound
	}

	detail := &response_models.AdminQuizDetail{
		ID:          quiz.ID.String(),
		Title:       quiz.Title,
		Description: quiz.Description,
		CreatedAt:   utils.FormatRFC3339(utils.FromUnixSeconds(quiz.CreatedAt)),
	}
	if quiz.ArticleID != nil {
		detail.ArticleID = quiz.ArticleID.String()
	}
	for _, question := range quiz.Questions {
		detail.Questions = append(detail.Questions, response_models.AdminQuestionView{
			QuestionView:    questionView(question),
			CorrectAnswer:   question.CorrectAnswer,
			AcceptedAnswers: question.AcceptedAnswers,
		})
	}
	return detail, nil
}

func questionView(question db_models.Question) response_models.QuestionView {
	return response_models.QuestionView{
		ID:       question.ID.String(),
		Text:     question.Text,
		Type:     question.Type,
		Options:  question.Options,
		VideoURL: question.VideoURL,
	}
}

// buildQuiz validates a save request and maps it to the persistence model.
// Nothing is written when validation fails; errors are per-field.
func buildQuiz(request request_models.SaveQuizRequest) (*db_models.Quiz, error) {
	if strings.TrimSpace(request.Title) == "" {
		return nil, utils.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(request.Description) == "" {
		return nil, utils.NewValidationError("description", "description is required")
	}
	if len(request.Questions) == 0 {
		return nil, utils.NewValidationError("questions", "a quiz needs at least one question")
	}

	quiz := &db_models.Quiz{
		Title:       strings.TrimSpace(request.Title),
		Description: strings.TrimSpace(request.Description),
	}
	if request.ArticleID != "" {
		articleID, err := uuid.Parse(request.ArticleID)
		if err != nil {
			return nil, utils.NewValidationError("article_id", "not a valid article id")
		}
		quiz.ArticleID = &articleID
	}

	for i, input := range request.Questions {
		question, err := buildQuestion(i, input)
		if err != nil {
			return nil, err
		}
		question.Position = i
		quiz.Questions = append(quiz.Questions, *question)
	}
	return quiz, nil
}

func buildQuestion(index int, input request_models.QuestionInput) (*db_models.Question, error) {
	field := func(name string) string { return fmt.Sprintf("questions[%d].%s", index, name) }

	if strings.TrimSpace(input.Text) == "" {
		return nil, utils.NewValidationError(field("text"), "question text is required")
	}

	question := &db_models.Question{
		Text: strings.TrimSpace(input.Text),
		Type: input.Type,
	}

	switch input.Type {
	case db_models.QuestionTypeMultipleChoice, db_models.QuestionTypeAIVideo:
		if len(input.Options) < 2 {
			return nil, utils.NewValidationError(field("options"), "at least two options are required")
		}
		for _, option := range input.Options {
			if strings.TrimSpace(option) == "" {
				return nil, utils.NewValidationError(field("options"), "options must not be empty")
			}
		}
		if !contains(input.Options, input.CorrectAnswer) {
			return nil, utils.NewValidationError(field("correct_answer"), "correct answer must be one of the options")
		}
		if input.Type == db_models.QuestionTypeAIVideo && strings.TrimSpace(input.VideoURL) == "" {
			return nil, utils.NewValidationError(field("video_url"), "an ai-video question needs a generated video before it can be published")
		}
		question.Options = input.Options
		question.CorrectAnswer = input.CorrectAnswer
		question.VideoURL = input.VideoURL

	case db_models.QuestionTypeTrueFalse:
		if len(input.Options) != 2 || input.Options[0] != "True" || input.Options[1] != "False" {
			return nil, utils.NewValidationError(field("options"), `options must be exactly ["True","False"]`)
		}
		if input.CorrectAnswer != "True" && input.CorrectAnswer != "False" {
			return nil, utils.NewValidationError(field("correct_answer"), `correct answer must be "True" or "False"`)
		}
		question.Options = input.Options
		question.CorrectAnswer = input.CorrectAnswer

	case db_models.QuestionTypeShortAnswer:
		if len(input.AcceptedAnswers) == 0 {
			return nil, utils.NewValidationError(field("accepted_answers"), "at least one accepted answer is required")
		}
		for _, answer := range input.AcceptedAnswers {
			if strings.TrimSpace(answer) == "" {
				return nil, utils.NewValidationError(field("accepted_answers"), "accepted answers must not be empty")
			}
		}
		if len(input.Options) > 0 {
			return nil, utils.NewValidationError(field("options"), "short-answer questions do not take options")
		}
		question.AcceptedAnswers = input.AcceptedAnswers

	default:
		return nil, utils.NewValidationError(field("type"), fmt.Sprintf("unknown question type %q", input.Type))
	}

	return question, nil
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}
