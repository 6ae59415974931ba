package repository

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	timeFormat = "2006-01-02T15:04:05.999999999Z07:00"
	cursorSep  = "|"

	defaultPageSize = 10
	maxPageSize     = 100
)

// DecodeCursor will decode cursor from user for mysql.
// 游标由 created_at 和 id 组成，同一毫秒写入的行也不会在翻页时丢失
func DecodeCursor(encoded string) (time.Time, int64, error) {
	byt, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return time.Time{}, 0, err
	}

	timeString, idString, ok := strings.Cut(string(byt), cursorSep)
	if !ok {
		return time.Time{}, 0, errors.New("cursor without id")
	}
	t, err := time.Parse(timeFormat, timeString)
	if err != nil {
		return time.Time{}, 0, err
	}
	id, err := strconv.ParseInt(idString, 10, 64)
	if err != nil {
		return time.Time{}, 0, err
	}
	return t, id, nil
}

// EncodeCursor will encode cursor from mysql to user
func EncodeCursor(t time.Time, id int64) string {
	raw := t.Format(timeFormat) + cursorSep + strconv.FormatInt(id, 10)

	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// PageVerify 把非法的分页大小修正到 [1, maxPageSize]
func PageVerify(num *int64) {
	if *num <= 0 {
		*num = defaultPageSize
	}
	if *num > maxPageSize {
		*num = maxPageSize
	}
}
