package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL is how long a session survives without a ping.
const sessionTTL = 30 * time.Minute

// historyKey is the redis list holding play history entries.
const historyKey = "playhistory"

// Session is one client playback session, refreshed by pings.
type Session struct {
	SessionID       string  `json:"sessionid"`
	MusicUUID       string  `json:"musicuuid,omitempty"`
	PlaylistUUID    string  `json:"playlistuuid,omitempty"`
	AlbumUUID       string  `json:"albumuuid,omitempty"`
	ArtistUUID      string  `json:"artistuuid,omitempty"`
	PlayTime        float64 `json:"playtime"`
	LastConnectTime int64   `json:"lastconnecttime"`
}

// PlayHistory is one completed or abandoned playback.
type PlayHistory struct {
	SessionID    string  `json:"sessionid,omitempty"`
	MusicUUID    string  `json:"musicuuid,omitempty"`
	PlaylistUUID string  `json:"playlistuuid,omitempty"`
	AlbumUUID    string  `json:"albumuuid,omitempty"`
	ArtistUUID   string  `json:"artistuuid,omitempty"`
	Year         int     `json:"year,omitempty"`
	Month        int     `json:"month,omitempty"`
	Day          int     `json:"day,omitempty"`
	Hour         int     `json:"hour,omitempty"`
	Minute       int     `json:"miniute,omitempty"`
	Seconds      int     `json:"seconds,omitempty"`
	PlayTime     float64 `json:"playtime,omitempty"`
	PlayLength   float64 `json:"playlength,omitempty"`
}

// SessionCache tracks playback sessions and play history. With a redis
// client it persists there with TTL-based expiry; without one it keeps
// everything in process memory so the server still runs standalone.
// The library document never depends on anything in here.
type SessionCache struct {
	client *redis.Client

	mu       sync.Mutex
	sessions map[string]Session
	expiry   map[string]time.Time
	history  []PlayHistory
}

// NewSessionCache builds a cache. client may be nil for the in-memory
// fallback.
func NewSessionCache(client *redis.Client) *SessionCache {
	return &SessionCache{
		client:   client,
		sessions: make(map[string]Session),
		expiry:   make(map[string]time.Time),
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Ping stores or refreshes a session, stamping LastConnectTime.
func (c *SessionCache) Ping(ctx context.Context, s Session) error {
	s.LastConnectTime = time.Now().UnixMilli()
	if c.client == nil {
		c.mu.Lock()
		c.sessions[s.SessionID] = s
		c.expiry[s.SessionID] = time.Now().Add(sessionTTL)
		c.mu.Unlock()
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := c.client.Set(ctx, sessionKey(s.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Get looks up a live session.
func (c *SessionCache) Get(ctx context.Context, id string) (Session, bool, error) {
	if c.client == nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		s, ok := c.sessions[id]
		if ok && time.Now().After(c.expiry[id]) {
			delete(c.sessions, id)
			delete(c.expiry, id)
			return Session{}, false, nil
		}
		return s, ok, nil
	}
	data, err := c.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, false, nil
	}
	if err != nil {
		return Session{}, false, fmt.Errorf("load session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return Session{}, false, fmt.Errorf("parse session: %w", err)
	}
	return s, true, nil
}

// RecordPlay appends one play history entry.
func (c *SessionCache) RecordPlay(ctx context.Context, h PlayHistory) error {
	if c.client == nil {
		c.mu.Lock()
		c.history = append(c.history, h)
		c.mu.Unlock()
		return nil
	}
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("marshal play history: %w", err)
	}
	if err := c.client.RPush(ctx, historyKey, data).Err(); err != nil {
		return fmt.Errorf("append play history: %w", err)
	}
	return nil
}

// History returns up to limit most recent play history entries.
func (c *SessionCache) History(ctx context.Context, limit int64) ([]PlayHistory, error) {
	if c.client == nil {
		c.mu.Lock()
		defer c.mu.Unlock()
		start := int64(len(c.history)) - limit
		if start < 0 {
			start = 0
		}
		out := make([]PlayHistory, len(c.history[start:]))
		copy(out, c.history[start:])
		return out, nil
	}
	rows, err := c.client.LRange(ctx, historyKey, -limit, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read play history: %w", err)
	}
	out := make([]PlayHistory, 0, len(rows))
	for _, row := range rows {
		var h PlayHistory
		if err := json.Unmarshal([]byte(row), &h); err != nil {
			return nil, fmt.Errorf("parse play history: %w", err)
		}
		out = append(out, h)
	}
	return out, nil
}
