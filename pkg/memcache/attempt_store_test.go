package mem_test

import (
	"testing"
	"time"

	"culturehub/internal/services"
	mem "culturehub/pkg/memcache"
)

func TestPutGetDelete(t *testing.T) {
	store := mem.NewAttemptStore()
	m := services.NewAttemptMachine("quiz-1", "user-1", 3)

	store.Put("user-1", "quiz-1", m, time.Minute)

	got, ok := store.Get("user-1", "quiz-1")
	if !ok || got != m {
		t.Fatal("expected to read back the stored machine")
	}

	if _, ok := store.Get("user-2", "quiz-1"); ok {
		t.Fatal("attempts must be isolated per user")
	}
	if _, ok := store.Get("user-1", "quiz-2"); ok {
		t.Fatal("attempts must be isolated per quiz")
	}

	store.Delete("user-1", "quiz-1")
	if _, ok := store.Get("user-1", "quiz-1"); ok {
		t.Fatal("expected machine to be gone after delete")
	}
}

func TestExpiredAttemptIsDropped(t *testing.T) {
	store := mem.NewAttemptStore()
	m := services.NewAttemptMachine("quiz-1", "user-1", 3)

	store.Put("user-1", "quiz-1", m, -time.Second)

	if _, ok := store.Get("user-1", "quiz-1"); ok {
		t.Fatal("expected expired machine to be dropped")
	}
}
