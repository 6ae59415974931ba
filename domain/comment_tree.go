package domain

// CommentDepth classifies a comment by its position in the thread.
type CommentDepth int8

const (
	DepthTopLevel CommentDepth = iota + 1
	DepthSecondLevel
	DepthDeeper
)

func (d CommentDepth) String() string {
	switch d {
	case DepthTopLevel:
		return "TOP_LEVEL"
	case DepthSecondLevel:
		return "SECOND_LEVEL"
	case DepthDeeper:
		return "DEEPER"
	default:
		return "UNKNOWN"
	}
}

// Depth needs no traversal: a reply whose parent is the root is second level.
func (c *Comment) Depth() CommentDepth {
	switch {
	case c.ParentID == 0:
		return DepthTopLevel
	case c.ParentID == c.RootID:
		return DepthSecondLevel
	default:
		return DepthDeeper
	}
}

// CounterSteps is the set of counter adjustments one comment implies.
// Parent applies to ParentID and Root to RootID.
type CounterSteps struct {
	Post   int64
	Parent int64
	Root   int64
}

// cascadeRule is one row of the counter policy.
//
// Soft delete does not cascade to child rows. Only counters move: a top-level
// comment takes its whole reply count off the post, while a deeper reply moves
// every counter by one. The asymmetry is deliberate and pending product review.
type cascadeRule struct {
	postBySubtree bool
	parent        bool
	root          bool
}

var cascadeRules = map[CommentDepth]cascadeRule{
	DepthTopLevel:    {postBySubtree: true},
	DepthSecondLevel: {parent: true},
	DepthDeeper:      {parent: true, root: true},
}

// CreateSteps returns the increments for inserting c.
func CreateSteps(c Comment) CounterSteps {
	rule := cascadeRules[c.Depth()]
	steps := CounterSteps{Post: 1}
	if rule.parent {
		steps.Parent = 1
	}
	if rule.root {
		steps.Root = 1
	}
	return steps
}

// RemovalSteps returns the decrements for soft-deleting c. c must be the state
// loaded right before deletion, since a top-level comment uses its own count.
func RemovalSteps(c Comment) CounterSteps {
	return visibilitySteps(c, -1)
}

// RestoreSteps mirrors RemovalSteps.
func RestoreSteps(c Comment) CounterSteps {
	return visibilitySteps(c, 1)
}

func visibilitySteps(c Comment, sign int64) CounterSteps {
	rule := cascadeRules[c.Depth()]
	var steps CounterSteps
	if rule.postBySubtree {
		steps.Post = sign * c.CommentCount
	} else {
		steps.Post = sign
	}
	if rule.parent {
		steps.Parent = sign
	}
	if rule.root {
		steps.Root = sign
	}
	return steps
}

// CollectSubtree returns id and all of its descendants found in thread that
// are visible in scope, keeping the order of thread. The walk stops at a node
// hidden from scope, so replies under it are hidden too. Returns nil when id
// is absent or hidden.
func CollectSubtree(thread []Comment, id int64, scope Scope) []Comment {
	children := make(map[int64][]int64, len(thread))
	visible := make(map[int64]bool, len(thread))
	for i := range thread {
		if thread[i].VisibleIn(scope) {
			visible[thread[i].ID] = true
		}
		if thread[i].ParentID != 0 {
			children[thread[i].ParentID] = append(children[thread[i].ParentID], thread[i].ID)
		}
	}
	if !visible[id] {
		return nil
	}

	inTree := map[int64]bool{}
	stack := []int64{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if inTree[cur] || !visible[cur] {
			continue
		}
		inTree[cur] = true
		stack = append(stack, children[cur]...)
	}

	res := make([]Comment, 0, len(inTree))
	for i := range thread {
		if inTree[thread[i].ID] {
			res = append(res, thread[i])
		}
	}
	return res
}
