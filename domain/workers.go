package domain

import (
	"context"
	"fmt"
)

type StatsKind int8

const (
	StatsPost StatsKind = iota + 1
	StatsUser
)

func (k StatsKind) String() string {
	switch k {
	case StatsPost:
		return "post"
	case StatsUser:
		return "user"
	default:
		return "unknown"
	}
}

// StatsKey names one cached stats entry.
type StatsKey struct {
	Kind StatsKind
	ID   int64
}

func (k StatsKey) String() string {
	return fmt.Sprintf("stats:%s:%d", k.Kind, k.ID)
}

// StatsInvalidator drops cached stats after their counters moved.
type StatsInvalidator interface {
	Start(ctx context.Context)

	// Send never blocks; keys are deleted in batches.
	Send(keys ...StatsKey)
}
