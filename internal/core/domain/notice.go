package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoticeLevel grades a user-facing notice.
type NoticeLevel string

const (
	NoticeLevelInfo  NoticeLevel = "info"
	NoticeLevelError NoticeLevel = "error"
)

// Notice is a dismissable notification for the user.
type Notice struct {
	ID        uuid.UUID   `json:"id"`
	Level     NoticeLevel `json:"level"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	CreatedAt time.Time   `json:"created_at"`
}
