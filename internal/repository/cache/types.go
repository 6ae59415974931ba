package cache

import "time"

// Entry 支持逻辑过期的数据结构
// 物理 TTL 比逻辑过期时间长，过期后仍可返回旧值，同时异步重建
type Entry[T any] struct {
	Data      T         `json:"data"`
	ExpireAt  time.Time `json:"expire_at"`  // 逻辑过期时间
	CreatedAt time.Time `json:"created_at"` // 创建时间，用于调试
}

// IsLogicalExpired 检查是否逻辑过期
func (d *Entry[T]) IsLogicalExpired(now time.Time) bool {
	return now.After(d.ExpireAt)
}

// NewEntry 创建带逻辑过期的数据
func NewEntry[T any](data T, now time.Time, ttl time.Duration) *Entry[T] {
	return &Entry[T]{
		Data:      data,
		ExpireAt:  now.Add(ttl),
		CreatedAt: now,
	}
}
