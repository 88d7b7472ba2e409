package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	attemptModel "quizku_backend/internals/features/quizzes/attempt/model"
	"quizku_backend/internals/features/quizzes/chapter/model"
	questionModel "quizku_backend/internals/features/quizzes/question/model"
	quizModel "quizku_backend/internals/features/quizzes/quiz/model"
	helper "quizku_backend/internals/helpers"
)

func newChapterTestApp(t *testing.T, name string) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&quizModel.QuizModel{},
		&model.ChapterModel{},
		&questionModel.QuestionModel{},
		&attemptModel.QuizAttemptModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctrl := NewChapterController(db)
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})
	app.Post("/api/a/chapters", ctrl.CreateChapter)
	app.Get("/api/a/quizzes/:quiz_id/chapters", ctrl.GetChaptersByQuiz)
	app.Put("/api/a/chapters/:id", ctrl.UpdateChapter)
	app.Delete("/api/a/chapters/:id", ctrl.DeleteChapter)
	return app, db
}

func chapterJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
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

func TestCreateChapterRequiresExistingQuiz(t *testing.T) {
	app, db := newChapterTestApp(t, "chapter_create")

	quiz := quizModel.QuizModel{QuizTitle: "Fisika"}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatal(err)
	}

	resp, body := chapterJSON(t, app, "POST", "/api/a/chapters", map[string]any{
		"chapter_title":   "Kinematika",
		"chapter_quiz_id": quiz.QuizID.String(),
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201 (body=%v)", resp.StatusCode, body)
	}

	// quiz fiktif -> 404
	resp, _ = chapterJSON(t, app, "POST", "/api/a/chapters", map[string]any{
		"chapter_title":   "Bab Yatim",
		"chapter_quiz_id": "1c9e7e2a-9b1f-44a2-8f1b-000000000000",
	})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404 untuk quiz tidak ada", resp.StatusCode)
	}
}

func TestGetChaptersWithQuestionCount(t *testing.T) {
	app, db := newChapterTestApp(t, "chapter_list")

	quiz := quizModel.QuizModel{QuizTitle: "Kimia"}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatal(err)
	}
	chapter := model.ChapterModel{ChapterTitle: "Stoikiometri", ChapterQuizID: quiz.QuizID}
	if err := db.Create(&chapter).Error; err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		stmt := fmt.Sprintf("Soal %d", i+1)
		q := questionModel.QuestionModel{
			QuestionQuizID:        quiz.QuizID,
			QuestionChapterID:     chapter.ChapterID,
			QuestionStatement:     &stmt,
			QuestionOptions:       []string{"A", "B", "C", "D"},
			QuestionCorrectOption: 1,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatal(err)
		}
	}

	resp, body := chapterJSON(t, app, "GET", "/api/a/quizzes/"+quiz.QuizID.String()+"/chapters", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	chapters := body["data"].([]any)
	if len(chapters) != 1 {
		t.Fatalf("jumlah chapter = %d, want 1", len(chapters))
	}
	if got := chapters[0].(map[string]any)["question_count"].(float64); got != 3 {
		t.Errorf("question_count = %v, want 3", got)
	}
}

func TestDeleteChapterCascades(t *testing.T) {
	app, db := newChapterTestApp(t, "chapter_cascade")

	quiz := quizModel.QuizModel{QuizTitle: "Biologi"}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatal(err)
	}
	keep := model.ChapterModel{ChapterTitle: "Sel", ChapterQuizID: quiz.QuizID}
	doomed := model.ChapterModel{ChapterTitle: "Genetika", ChapterQuizID: quiz.QuizID}
	for _, ch := range []*model.ChapterModel{&keep, &doomed} {
		if err := db.Create(ch).Error; err != nil {
			t.Fatal(err)
		}
	}
	for _, ch := range []model.ChapterModel{keep, doomed} {
		stmt := "Soal " + ch.ChapterTitle
		q := questionModel.QuestionModel{
			QuestionQuizID:        quiz.QuizID,
			QuestionChapterID:     ch.ChapterID,
			QuestionStatement:     &stmt,
			QuestionOptions:       []string{"A", "B", "C", "D"},
			QuestionCorrectOption: 2,
		}
		if err := db.Create(&q).Error; err != nil {
			t.Fatal(err)
		}
	}

	resp, _ := chapterJSON(t, app, "DELETE", "/api/a/chapters/"+doomed.ChapterID.String(), nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var n int64
	db.Model(&questionModel.QuestionModel{}).Where("question_chapter_id = ?", doomed.ChapterID).Count(&n)
	if n != 0 {
		t.Errorf("soal chapter terhapus masih tersisa %d", n)
	}
	db.Model(&questionModel.QuestionModel{}).Where("question_chapter_id = ?", keep.ChapterID).Count(&n)
	if n != 1 {
		t.Errorf("soal chapter lain ikut terhapus, tersisa %d want 1", n)
	}
	db.Model(&model.ChapterModel{}).Where("chapter_id = ?", doomed.ChapterID).Count(&n)
	if n != 0 {
		t.Error("chapter masih ada setelah delete")
	}
}
