package service

import (
	"sync"
	"time"

	"token-recovery-dapp/internal/core/domain"
	"token-recovery-dapp/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultNoticeCapacity bounds the notice board.
const DefaultNoticeCapacity = 50

// NoticeBoard is a bounded in-memory list of notices, newest last.
// When full, the oldest notice is dropped.
type NoticeBoard struct {
	mu       sync.RWMutex
	notices  []domain.Notice
	capacity int
	now      func() time.Time
	log      zerolog.Logger
}

// NewNoticeBoard creates an empty NoticeBoard. capacity <= 0 uses the default.
func NewNoticeBoard(capacity int, log zerolog.Logger) *NoticeBoard {
	if capacity <= 0 {
		capacity = DefaultNoticeCapacity
	}
	return &NoticeBoard{
		capacity: capacity,
		now:      time.Now,
		log:      logger.Component(log, "notice_board"),
	}
}

func (b *NoticeBoard) Post(level domain.NoticeLevel, title, message string) domain.Notice {
	n := domain.Notice{
		ID:        uuid.New(),
		Level:     level,
		Title:     title,
		Message:   message,
		CreatedAt: b.now().UTC(),
	}

	b.mu.Lock()
	if len(b.notices) >= b.capacity {
		b.notices = append(b.notices[:0], b.notices[len(b.notices)-b.capacity+1:]...)
	}
	b.notices = append(b.notices, n)
	b.mu.Unlock()

	ev := b.log.Info()
	if level == domain.NoticeLevelError {
		ev = b.log.Warn()
	}
	ev.Str("title", title).Str("message", message).Msg("notice posted")
	return n
}

// List returns a copy of the current notices.
func (b *NoticeBoard) List() []domain.Notice {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.Notice, len(b.notices))
	copy(out, b.notices)
	return out
}

// Dismiss removes the notice with the given id and reports whether it existed.
func (b *NoticeBoard) Dismiss(id uuid.UUID) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, n := range b.notices {
		if n.ID == id {
			b.notices = append(b.notices[:i], b.notices[i+1:]...)
			return true
		}
	}
	return false
}
