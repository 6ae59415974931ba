package response

import "github.com/Guyuepp/go-clean-forum/domain"

type Comment struct {
	ID           int64  `json:"id"`
	PostID       int64  `json:"post_id"`
	AuthorID     int64  `json:"author_id"`
	ParentID     int64  `json:"parent_id"`
	RootID       int64  `json:"root_id"`
	Content      string `json:"content"`
	CommentCount int64  `json:"comment_count"`
	LikeCount    int64  `json:"like_count"`
	Status       string `json:"status"`
	ReviewStatus string `json:"review_status"`
	ReviewedAt   string `json:"reviewed_at,omitempty"`
	CreatedAt    string `json:"created_at"`
	DeletedAt    string `json:"deleted_at,omitempty"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.Comment) Comment {
	return Comment{
		ID:           c.ID,
		PostID:       c.PostID,
		AuthorID:     c.AuthorID,
		ParentID:     c.ParentID,
		RootID:       c.RootID,
		Content:      c.Content,
		CommentCount: c.CommentCount,
		LikeCount:    c.LikeCount,
		Status:       c.Status.String(),
		ReviewStatus: c.ReviewStatus.String(),
		ReviewedAt:   formatTime(c.ReviewedAt),
		CreatedAt:    c.CreatedAt.Format(DateTimeFormat),
		DeletedAt:    formatTime(c.DeletedAt),
	}
}

func NewCommentsFromDomain(list []domain.Comment) []Comment {
	res := make([]Comment, len(list))
	for i := range list {
		res[i] = NewCommentFromDomain(&list[i])
	}
	return res
}
