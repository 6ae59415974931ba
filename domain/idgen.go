package domain

// IDGenerator hands out unique ids before insert, so a top-level comment can
// carry root_id = id in the same write.
type IDGenerator interface {
	NextID() int64
}
