package client

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"stockadmin/internal/domain"
)

// State is the client-side notification store. Entries are kept newest
// first and the unread counter is maintained alongside every mutation.
//
// Mutations apply locally first and push the change to the server in the
// background; a failed server call is logged but the local view is not
// rolled back. A reconnecting client resynchronizes with Load(true).
type State struct {
	mu          sync.Mutex
	api         *Client
	logger      *slog.Logger
	entries     []domain.Notification
	unreadCount int
	loaded      bool
}

func NewState(api *Client, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	return &State{api: api, logger: logger}
}

// Load fetches the server's view. After the first successful load the call
// is a no-op unless force is set.
func (s *State) Load(ctx context.Context, force bool) error {
	s.mu.Lock()
	if s.loaded && !force {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	entries, err := s.api.ListNotifications(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.unreadCount = 0
	for _, n := range entries {
		if !n.Read {
			s.unreadCount++
		}
	}
	s.loaded = true
	return nil
}

// AddFromPush prepends a notification received over the realtime channel.
// Pushed frames carry no id, so the entry gets a synthetic local one; the
// server's durable record is picked up on the next full load.
func (s *State) AddFromPush(title, message string, severity domain.Severity, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := domain.Notification{
		ID:        -at.UnixNano(),
		Title:     title,
		Message:   message,
		Severity:  severity,
		CreatedAt: at,
	}
	s.entries = append([]domain.Notification{entry}, s.entries...)
	s.unreadCount++
}

// Notifications returns a snapshot of the entries, newest first.
func (s *State) Notifications() []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Notification, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *State) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unreadCount
}

// MarkRead flips one entry to read locally and notifies the server in the
// background. Marking an already-read entry leaves the counter untouched.
func (s *State) MarkRead(id int64) {
	s.mu.Lock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			if !s.entries[i].Read {
				s.entries[i].Read = true
				s.unreadCount--
			}
			break
		}
	}
	s.mu.Unlock()

	if id > 0 {
		s.fireAndForget("mark read", func(ctx context.Context) error {
			return s.api.MarkRead(ctx, id)
		})
	}
}

func (s *State) MarkAllRead() {
	s.mu.Lock()
	for i := range s.entries {
		s.entries[i].Read = true
	}
	s.unreadCount = 0
	s.mu.Unlock()

	s.fireAndForget("mark all read", func(ctx context.Context) error {
		return s.api.MarkAllRead(ctx)
	})
}

func (s *State) Delete(id int64) {
	s.mu.Lock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			if !s.entries[i].Read {
				s.unreadCount--
			}
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	if id > 0 {
		s.fireAndForget("delete", func(ctx context.Context) error {
			return s.api.Delete(ctx, id)
		})
	}
}

func (s *State) ClearAll() {
	s.mu.Lock()
	s.entries = nil
	s.unreadCount = 0
	s.mu.Unlock()

	s.fireAndForget("clear all", func(ctx context.Context) error {
		return s.api.ClearAll(ctx)
	})
}

func (s *State) fireAndForget(op string, call func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := call(ctx); err != nil {
			s.logger.Warn("notification sync failed",
				slog.String("op", op),
				slog.String("error", err.Error()),
			)
		}
	}()
}
