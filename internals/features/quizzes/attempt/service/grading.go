package service

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AnswerKeyItem: kunci jawaban satu soal.
type AnswerKeyItem struct {
	QuestionID    uuid.UUID
	CorrectOption int
}

// GradeSummary: hasil agregat penilaian satu attempt.
type GradeSummary struct {
	Total       int     `json:"total"`
	Correct     int     `json:"correct"`
	Wrong       int     `json:"wrong"`
	Unattempted int     `json:"unattempted"`
	Accuracy    float64 `json:"accuracy"`
	Band        string  `json:"band"`
}

// DecodeAnswers membaca snapshot jawaban tersimpan.
// Payload korup/tidak bisa di-parse -> map kosong (semua soal dihitung
// unattempted), request tidak boleh gagal karena data lama rusak.
func DecodeAnswers(raw datatypes.JSON) map[string]*int {
	answers := map[string]*int{}
	if len(raw) == 0 {
		return answers
	}
	if err := json.Unmarshal(raw, &answers); err != nil {
		return map[string]*int{}
	}
	if answers == nil {
		return map[string]*int{}
	}
	return answers
}

// Grade merekonsiliasi jawaban terhadap kunci.
// Murni baca/derive, tanpa side effect.
func Grade(keys []AnswerKeyItem, answers map[string]*int) GradeSummary {
	s := GradeSummary{Total: len(keys)}

	for _, k := range keys {
		selected, ok := answers[k.QuestionID.String()]
		switch {
		case !ok || selected == nil:
			s.Unattempted++
		case *selected == k.CorrectOption:
			s.Correct++
		default:
			s.Wrong++
		}
	}

	if s.Total > 0 {
		s.Accuracy = roundTwoDecimals(float64(s.Correct) / float64(s.Total) * 100)
	}
	s.Band = PerformanceBand(s.Accuracy)
	return s
}

// PerformanceBand memetakan akurasi ke label kualitatif.
// Ambang batas fixed, non-overlapping (batas bawah inklusif).
func PerformanceBand(accuracy float64) string {
	switch {
	case accuracy < 30:
		return "Very Poor"
	case accuracy < 50:
		return "Poor"
	case accuracy < 70:
		return "Average"
	case accuracy < 80:
		return "Good"
	case accuracy < 90:
		return "Excellent"
	default:
		return "Outstanding"
	}
}

func roundTwoDecimals(v float64) float64 {
	return math.Round(v*100) / 100
}
