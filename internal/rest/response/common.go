package response

import "time"

const DateTimeFormat = "2006-01-02 15:04:05"

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateTimeFormat)
}
