package repository

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"yuancity-finance-portal/internal/model"
)

func seedChatMessage(t *testing.T, db *gorm.DB, id, orderID string, read bool, at time.Time) {
	t.Helper()
	mustCreate(t, db, &model.OrderChatMessage{
		ID:        id,
		OrderID:   orderID,
		SenderID:  "u1",
		Message:   "hola",
		Read:      read,
		CreatedAt: at,
	})
}

func TestChatCountsAndThreads(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewChatRepository(db)

	mustCreate(t, db, &model.User{ID: "u1", Email: "ana@yuancity.com"})
	base := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	seedOrder(t, db, "o1", "u1", model.OrderShipping, "TX-500", 10000, base)
	seedOrder(t, db, "o2", "u1", model.OrderDelivered, "TX-600", 10000, base)

	seedChatMessage(t, db, "m1", "o1", false, base.Add(1*time.Hour))
	seedChatMessage(t, db, "m2", "o1", true, base.Add(2*time.Hour))
	seedChatMessage(t, db, "m3", "o1", false, base.Add(3*time.Hour))
	seedChatMessage(t, db, "m4", "o2", true, base.Add(4*time.Hour))

	counts, err := repo.Counts(ctx)
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts.Unread != 2 {
		t.Errorf("unread = %d, want 2", counts.Unread)
	}
	if counts.Threads != 2 {
		t.Errorf("threads = %d, want 2", counts.Threads)
	}

	threads, err := repo.Threads(ctx, 10)
	if err != nil {
		t.Fatalf("threads: %v", err)
	}
	if len(threads) != 2 {
		t.Fatalf("len = %d, want 2: %+v", len(threads), threads)
	}
	// Newest conversation first.
	if threads[0].OrderID != "o2" || threads[0].TransactionID != "TX-600" {
		t.Errorf("threads[0] = %+v, want the o2 conversation", threads[0])
	}
	if threads[0].Messages != 1 || threads[0].Unread != 0 {
		t.Errorf("threads[0] = %+v, want 1 message all read", threads[0])
	}
	if threads[1].OrderID != "o1" || threads[1].Messages != 3 || threads[1].Unread != 2 {
		t.Errorf("threads[1] = %+v, want 3 messages with 2 unread", threads[1])
	}
	if threads[1].LastMessageAt == "" {
		t.Error("last message timestamp missing")
	}
}

func TestChatCountsEmpty(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRepository(db)

	counts, err := repo.Counts(context.Background())
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts.Unread != 0 || counts.Threads != 0 {
		t.Errorf("counts = %+v, want zeroes", counts)
	}
}
