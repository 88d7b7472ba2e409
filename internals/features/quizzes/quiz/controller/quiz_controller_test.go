package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	attemptModel "quizku_backend/internals/features/quizzes/attempt/model"
	chapterModel "quizku_backend/internals/features/quizzes/chapter/model"
	questionModel "quizku_backend/internals/features/quizzes/question/model"
	"quizku_backend/internals/features/quizzes/quiz/model"
	userModel "quizku_backend/internals/features/users/user/model"
	helper "quizku_backend/internals/helpers"
)

func newQuizTestApp(t *testing.T, name string) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&model.QuizModel{},
		&chapterModel.ChapterModel{},
		&questionModel.QuestionModel{},
		&attemptModel.QuizAttemptModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctrl := NewQuizController(db)
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})
	app.Post("/api/a/quizzes", ctrl.CreateQuiz)
	app.Get("/api/a/quizzes", ctrl.GetQuizzes)
	app.Get("/api/a/quizzes/:id", ctrl.GetQuizByID)
	app.Put("/api/a/quizzes/:id", ctrl.UpdateQuiz)
	app.Delete("/api/a/quizzes/:id", ctrl.DeleteQuiz)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	var parsed map[string]any
	_ = json.Unmarshal(raw, &parsed)
	return resp, parsed
}

func TestCreateAndGetQuiz(t *testing.T) {
	app, _ := newQuizTestApp(t, "quiz_create")

	resp, body := doJSON(t, app, "POST", "/api/a/quizzes", map[string]any{"quiz_title": "Matematika Dasar"})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (body=%v)", resp.StatusCode, body)
	}
	id := body["data"].(map[string]any)["quiz_id"].(string)

	resp, body = doJSON(t, app, "GET", "/api/a/quizzes/"+id, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := body["data"].(map[string]any)["quiz_title"]; got != "Matematika Dasar" {
		t.Errorf("quiz_title = %v, want Matematika Dasar", got)
	}
}

func TestCreateQuizValidation(t *testing.T) {
	app, _ := newQuizTestApp(t, "quiz_validation")

	cases := []struct {
		name  string
		title string
	}{
		{"kosong", ""},
		{"terlalu pendek", "ab"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := doJSON(t, app, "POST", "/api/a/quizzes", map[string]any{"quiz_title": tc.title})
			if resp.StatusCode != fiber.StatusUnprocessableEntity {
				t.Fatalf("status = %d, want 422", resp.StatusCode)
			}
		})
	}
}

func TestQuizSearchAndPaging(t *testing.T) {
	app, db := newQuizTestApp(t, "quiz_search")

	titles := []string{"Aljabar Linear", "Kalkulus I", "Kalkulus II", "Statistika"}
	for _, title := range titles {
		q := model.QuizModel{QuizTitle: title}
		if err := db.Create(&q).Error; err != nil {
			t.Fatal(err)
		}
	}

	resp, body := doJSON(t, app, "GET", "/api/a/quizzes?search=kalkulus", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := len(body["data"].([]any)); got != 2 {
		t.Errorf("hasil search = %d quiz, want 2", got)
	}

	resp, body = doJSON(t, app, "GET", "/api/a/quizzes?per_page=3&page=2", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := len(body["data"].([]any)); got != 1 {
		t.Errorf("halaman 2 berisi %d quiz, want 1", got)
	}
	pagination := body["pagination"].(map[string]any)
	if pagination["total"].(float64) != 4 {
		t.Errorf("total = %v, want 4", pagination["total"])
	}
}

func TestDeleteQuizCascades(t *testing.T) {
	app, db := newQuizTestApp(t, "quiz_cascade")

	user := userModel.UserModel{
		UserUsername: "peserta",
		UserPassword: "hash",
		UserFullname: "Peserta",
		UserDob:      time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		UserIsPaid:   true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatal(err)
	}

	quiz := model.QuizModel{QuizTitle: "Quiz Hapus"}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatal(err)
	}

	chapters := make([]chapterModel.ChapterModel, 2)
	for i := range chapters {
		chapters[i] = chapterModel.ChapterModel{
			ChapterTitle:  fmt.Sprintf("Bab %d", i+1),
			ChapterQuizID: quiz.QuizID,
		}
		if err := db.Create(&chapters[i]).Error; err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 5; i++ {
		stmt := fmt.Sprintf("Soal %d", i+1)
		q := questionModel.QuestionModel{
			QuestionQuizID:        quiz.QuizID,
			QuestionChapterID:     chapters[i%2].ChapterID,
			QuestionStatement:     &stmt,
			QuestionOptions:       []string{"A", "B", "C", "D"},
			QuestionCorrectOption: 1,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < 3; i++ {
		score := i
		a := attemptModel.QuizAttemptModel{
			QuizAttemptUserID:    user.UserID,
			QuizAttemptQuizID:    quiz.QuizID,
			QuizAttemptChapterID: &chapters[0].ChapterID,
			QuizAttemptScore:     &score,
			QuizAttemptAnswers:   []byte(`{}`),
		}
		if err := db.Create(&a).Error; err != nil {
			t.Fatal(err)
		}
	}

	resp, _ := doJSON(t, app, "DELETE", "/api/a/quizzes/"+quiz.QuizID.String(), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	counts := map[string]int64{}
	var n int64
	db.Model(&model.QuizModel{}).Where("quiz_id = ?", quiz.QuizID).Count(&n)
	counts["quiz"] = n
	db.Model(&chapterModel.ChapterModel{}).Where("chapter_quiz_id = ?", quiz.QuizID).Count(&n)
	counts["chapters"] = n
	db.Model(&questionModel.QuestionModel{}).Where("question_quiz_id = ?", quiz.QuizID).Count(&n)
	counts["questions"] = n
	db.Model(&attemptModel.QuizAttemptModel{}).Where("quiz_attempt_quiz_id = ?", quiz.QuizID).Count(&n)
	counts["attempts"] = n

	for entity, got := range counts {
		if got != 0 {
			t.Errorf("%s tersisa %d baris setelah cascade delete, want 0", entity, got)
		}
	}
}

func TestDeleteQuizNotFound(t *testing.T) {
	app, _ := newQuizTestApp(t, "quiz_delete_404")

	resp, _ := doJSON(t, app, "DELETE", "/api/a/quizzes/6e5a4c9e-0d51-4c3f-9a0e-000000000000", nil)
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}
