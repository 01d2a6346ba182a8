package cache

import (
	"context"
	"testing"
)

// The in-memory fallback is what runs when REDIS_HOST is unset; these
// tests cover that path.

func TestSessionPingAndGet(t *testing.T) {
	c := NewSessionCache(nil)
	ctx := context.Background()

	if err := c.Ping(ctx, Session{SessionID: "s1", MusicUUID: "m1", PlayTime: 12.5}); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	s, ok, err := c.Get(ctx, "s1")
	if err != nil || !ok {
		t.Fatalf("Get = (ok=%v, err=%v)", ok, err)
	}
	if s.MusicUUID != "m1" || s.PlayTime != 12.5 {
		t.Errorf("session = %+v", s)
	}
	if s.LastConnectTime == 0 {
		t.Error("LastConnectTime not stamped")
	}

	if _, ok, _ := c.Get(ctx, "unknown"); ok {
		t.Error("unknown session reported found")
	}
}

func TestSessionPingRefreshes(t *testing.T) {
	c := NewSessionCache(nil)
	ctx := context.Background()

	c.Ping(ctx, Session{SessionID: "s1", PlayTime: 1})
	c.Ping(ctx, Session{SessionID: "s1", PlayTime: 2})

	s, ok, _ := c.Get(ctx, "s1")
	if !ok || s.PlayTime != 2 {
		t.Errorf("session = (%+v, %v), want refreshed playtime 2", s, ok)
	}
}

func TestHistoryLimit(t *testing.T) {
	c := NewSessionCache(nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := c.RecordPlay(ctx, PlayHistory{MusicUUID: "m", PlayLength: float64(i)}); err != nil {
			t.Fatalf("RecordPlay: %v", err)
		}
	}

	history, err := c.History(ctx, 3)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("history length = %d, want 3", len(history))
	}
	// Most recent entries, oldest first.
	if history[0].PlayLength != 2 || history[2].PlayLength != 4 {
		t.Errorf("history = %+v", history)
	}

	all, err := c.History(ctx, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("history length = %d, want all 5", len(all))
	}
}
