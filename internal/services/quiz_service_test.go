package services_test

import (
	"context"
	"errors"
	"testing"

	"culturehub/internal/models/request_models"
	"culturehub/internal/services"
	"culturehub/pkg/utils"
)

func validSaveRequest() request_models.SaveQuizRequest {
	return request_models.SaveQuizRequest{
		Title:       "Nigerian Culture",
		Description: "Food, music and history",
		Questions: []request_models.QuestionInput{
			{
				Text:          "Which city is known as Eko?",
				Type:          "multiple-choice",
				Options:       []string{"Lagos", "Abuja", "Kano"},
				CorrectAnswer: "Lagos",
			},
			{
				Text:          "Jollof rice originated in West Africa.",
				Type:          "true-false",
				Options:       []string{"True", "False"},
				CorrectAnswer: "True",
			},
			{
				Text:            "Name the most widely spoken language in northern Nigeria.",
				Type:            "short-answer",
				AcceptedAnswers: []string{"Hausa"},
			},
		},
	}
}

func TestCreateQuizValid(t *testing.T) {
	repo := newFakeQuizRepo()
	service := services.NewQuizService(repo)

	id, err := service.CreateQuiz(context.Background(), validSaveRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatal("create should return the new quiz id")
	}
	quiz := repo.quizzes[id]
	if quiz == nil {
		t.Fatal("quiz not stored")
	}
	if len(quiz.Questions) != 3 {
		t.Fatalf("stored %d questions, want 3", len(quiz.Questions))
	}
	for i, question := range quiz.Questions {
		if question.Position != i {
			t.Fatalf("question %d stored at position %d", i, question.Position)
		}
	}
}

func TestCreateQuizValidationRejections(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*request_models.SaveQuizRequest)
		wantField string
	}{
		{
			name:      "empty title",
			mutate:    func(r *request_models.SaveQuizRequest) { r.Title = "   " },
			wantField: "title",
		},
		{
			name:      "empty description",
			mutate:    func(r *request_models.SaveQuizRequest) { r.Description = "" },
			wantField: "description",
		},
		{
			name:      "no questions",
			mutate:    func(r *request_models.SaveQuizRequest) { r.Questions = nil },
			wantField: "questions",
		},
		{
			name: "blank question text",
			mutate: func(r *request_models.SaveQuizRequest) {
				r.Questions[1].Text = " "
			},
			wantField: "questions[1].text",
		},
		{
			name: "single option",
			mutate: func(r *request_models.SaveQuizRequest) {
				r.Questions[0].Options = []string{"Lagos"}
			},
			wantField: "questions[0].options",
		},
		{
			name: "empty option",
			mutate: func(r *request_models.SaveQuizRequest) {
				r.Questions[0].Options = []string{"Lagos", "  "}
			},
			wantField: "questions[0].options",
		},
		{
			name: "correct answer not among options",
			mutate: func(r *request_models.SaveQuizRequest) {
				r.Questions[0].CorrectAnswer = "Ibadan"
			},
			wantField: "questions[0].correct_answer",
		},
		{
			name: "true-false with wrong options",
			mutate: func(r *request_models.SaveQuizRequest) {
				r.Questions[1].Options = []string{"Yes", "No"}
			},
			wantField: "questions[1].options",
		},
		{
			name: "short answer without accepted answers",
			mutate: func(r *request_models.SaveQuizRequest) {
				r.Questions[2].AcceptedAnswers = nil
			},
			wantField: "questions[2].accepted_answers",
		},
		{
			name: "short answer with blank accepted answer",
			mutate: func(r *request_models.SaveQuizRequest) {
				r.Questions[2].AcceptedAnswers = []string{"Hausa", " "}
			},
			wantField: "questions[2].accepted_answers",
		},
		{
			name: "short answer with options",
			mutate: func(r *request_models.SaveQuizRequest) {
				r.Questions[2].Options = []string{"Hausa", "Yoruba"}
			},
			wantField: "questions[2].options",
		},
		{
			name: "unknown question type",
			mutate: func(r *request_models.SaveQuizRequest) {
				r.Questions[0].Type = "essay"
			},
			wantField: "questions[0].type",
		},
		{
			name: "ai-video without a video",
			mutate: func(r *request_models.SaveQuizRequest) {
				r.Questions[0].Type = "ai-video"
				r.Questions[0].VideoURL = ""
			},
			wantField: "questions[0].video_url",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeQuizRepo()
			service := services.NewQuizService(repo)

			request := validSaveRequest()
			tc.mutate(&request)

			_, err := service.CreateQuiz(context.Background(), request)
			var validation *utils.ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("err = %v, want a validation error", err)
			}
			if validation.Field != tc.wantField {
				t.Fatalf("field = %q, want %q", validation.Field, tc.wantField)
			}
			if repo.insertCalls != 0 {
				t.Fatal("nothing should be written when validation fails")
			}
		})
	}
}

func TestGetQuizHidesAnswerKey(t *testing.T) {
	repo := newFakeQuizRepo()
	service := services.NewQuizService(repo)
	quiz := threeQuestionQuiz(repo)

	detail, err := service.GetQuiz(context.Background(), quiz.ID.String())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(detail.Questions) != 3 {
		t.Fatalf("got %d questions, want 3", len(detail.Questions))
	}
	for _, view := range detail.Questions {
		if len(view.Options) == 0 {
			t.Fatal("student view should keep the options")
		}
	}

	admin, err := service.GetQuizAdmin(context.Background(), quiz.ID.String())
	if err != nil {
		t.Fatalf("admin get: %v", err)
	}
	if admin.Questions[0].CorrectAnswer != "A" {
		t.Fatalf("admin view correct answer = %q, want A", admin.Questions[0].CorrectAnswer)
	}
}

func TestUpdateQuizUnknownId(t *testing.T) {
	repo := newFakeQuizRepo()
	service := services.NewQuizService(repo)

	err := service.UpdateQuiz(context.Background(), "0d4cbe3a-0000-0000-0000-000000000000", validSaveRequest())
	if !errors.Is(err, utils.ErrQuizNotFound) {
		t.Fatalf("err = %v, want ErrQuizNotFound", err)
	}
}

func TestDeleteQuiz(t *testing.T) {
	repo := newFakeQuizRepo()
	service := services.NewQuizService(repo)
	quiz := threeQuestionQuiz(repo)

	if err := service.DeleteQuiz(context.Background(), quiz.ID.String()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := repo.quizzes[quiz.ID.String()]; ok {
		t.Fatal("quiz should be gone")
	}
	if err := service.DeleteQuiz(context.Background(), quiz.ID.String()); !errors.Is(err, utils.ErrQuizNotFound) {
		t.Fatalf("second delete err = %v, want ErrQuizNotFound", err)
	}
}
