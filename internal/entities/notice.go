package entities

import "time"

type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice - всплывающее уведомление для пользователя (snackbar на клиенте).
type Notice struct {
	Level    NoticeLevel
	Message  string
	Duration time.Duration
}

const (
	NoticeShort = 3 * time.Second
	NoticeLong  = 5 * time.Second
)

func InfoNotice(msg string, d time.Duration) *Notice {
	return &Notice{Level: NoticeInfo, Message: msg, Duration: d}
}

func ErrorNotice(msg string, d time.Duration) *Notice {
	return &Notice{Level: NoticeError, Message: msg, Duration: d}
}
