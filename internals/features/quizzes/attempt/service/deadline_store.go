package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DeadlineStore menyimpan deadline pengerjaan quiz per user+quiz+chapter.
// Deadline bersifat advisory: dipakai frontend untuk countdown, submit
// terlambat tetap diterima.
type DeadlineStore struct {
	rdb *redis.Client
}

func NewDeadlineStore(rdb *redis.Client) *DeadlineStore {
	return &DeadlineStore{rdb: rdb}
}

func deadlineKey(userID, quizID, chapterID uuid.UUID) string {
	return fmt.Sprintf("quiz_deadline:%s:%s_%s", userID, quizID, chapterID)
}

// GetOrSet mengembalikan deadline yang sudah ada, atau memasang deadline
// baru (now + duration) jika belum ada. Refresh halaman tidak boleh
// mereset countdown, jadi pemasangan memakai SETNX.
func (s *DeadlineStore) GetOrSet(ctx context.Context, userID, quizID, chapterID uuid.UUID, duration time.Duration) (time.Time, error) {
	key := deadlineKey(userID, quizID, chapterID)
	candidate := time.Now().Add(duration).Unix()

	// TTL sedikit melebihi window supaya key tidak menumpuk kalau user
	// meninggalkan quiz tanpa submit.
	if err := s.rdb.SetNX(ctx, key, candidate, duration+time.Hour).Err(); err != nil {
		return time.Time{}, err
	}

	val, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		return time.Time{}, err
	}
	unix, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("deadline store: nilai tidak valid: %w", err)
	}
	return time.Unix(unix, 0), nil
}

// Clear menghapus deadline setelah submit, supaya attempt berikutnya
// mendapat window baru.
func (s *DeadlineStore) Clear(ctx context.Context, userID, quizID, chapterID uuid.UUID) error {
	return s.rdb.Del(ctx, deadlineKey(userID, quizID, chapterID)).Err()
}
