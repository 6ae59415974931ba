package response

import "github.com/Guyuepp/go-clean-forum/domain"

type Post struct {
	ID           int64  `json:"id"`
	AuthorID     int64  `json:"author_id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Draft        bool   `json:"draft"`
	Visibility   string `json:"visibility"`
	ReviewStatus string `json:"review_status"`
	ReviewedAt   string `json:"reviewed_at,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func NewPostFromDomain(p *domain.Post) Post {
	visibility := "PUBLIC"
	if p.Visibility == domain.VisibilityPrivate {
		visibility = "PRIVATE"
	}
	return Post{
		ID:           p.ID,
		AuthorID:     p.AuthorID,
		Title:        p.Title,
		Content:      p.Content,
		Draft:        p.Status == domain.PostDraft,
		Visibility:   visibility,
		ReviewStatus: p.ReviewStatus.String(),
		ReviewedAt:   formatTime(p.ReviewedAt),
		CreatedAt:    p.CreatedAt.Format(DateTimeFormat),
		UpdatedAt:    p.UpdatedAt.Format(DateTimeFormat),
	}
}
