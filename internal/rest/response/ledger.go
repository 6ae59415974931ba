package response

import "github.com/Guyuepp/go-clean-forum/domain"

type Like struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"user_id"`
	TargetType string `json:"target_type"`
	TargetID   int64  `json:"target_id"`
	CreatedAt  string `json:"created_at"`
	DeletedAt  string `json:"deleted_at,omitempty"`
}

func NewLikeFromDomain(l *domain.Like) Like {
	return Like{
		ID:         l.ID,
		UserID:     l.UserID,
		TargetType: l.TargetType.String(),
		TargetID:   l.TargetID,
		CreatedAt:  l.CreatedAt.Format(DateTimeFormat),
		DeletedAt:  formatTime(l.DeletedAt),
	}
}

func NewLikesFromDomain(list []domain.Like) []Like {
	res := make([]Like, len(list))
	for i := range list {
		res[i] = NewLikeFromDomain(&list[i])
	}
	return res
}

type Follow struct {
	ID         int64  `json:"id"`
	FollowerID int64  `json:"follower_id"`
	FolloweeID int64  `json:"followee_id"`
	CreatedAt  string `json:"created_at"`
	DeletedAt  string `json:"deleted_at,omitempty"`
}

func NewFollowFromDomain(f *domain.Follow) Follow {
	return Follow{
		ID:         f.ID,
		FollowerID: f.FollowerID,
		FolloweeID: f.FolloweeID,
		CreatedAt:  f.CreatedAt.Format(DateTimeFormat),
		DeletedAt:  formatTime(f.DeletedAt),
	}
}

type FollowEntry struct {
	UserID     int64  `json:"user_id"`
	FollowedAt string `json:"followed_at"`
	Mutual     bool   `json:"mutual"`
}

func NewFollowEntriesFromDomain(list []domain.FollowEntry) []FollowEntry {
	res := make([]FollowEntry, len(list))
	for i := range list {
		res[i] = FollowEntry{
			UserID:     list[i].UserID,
			FollowedAt: list[i].FollowedAt.Format(DateTimeFormat),
			Mutual:     list[i].Mutual,
		}
	}
	return res
}
