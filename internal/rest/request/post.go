package request

import "github.com/Guyuepp/go-clean-forum/domain"

type Post struct {
	Title      string `json:"title" binding:"required,max=255"`
	Content    string `json:"content" binding:"required"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=PUBLIC PRIVATE"`
	Draft      bool   `json:"draft"`
}

func (r *Post) ToDomain(authorID int64) domain.Post {
	p := domain.Post{
		AuthorID:   authorID,
		Title:      r.Title,
		Content:    r.Content,
		Status:     domain.PostPublished,
		Visibility: domain.VisibilityPublic,
	}
	if r.Draft {
		p.Status = domain.PostDraft
	}
	if r.Visibility == "PRIVATE" {
		p.Visibility = domain.VisibilityPrivate
	}
	return p
}
