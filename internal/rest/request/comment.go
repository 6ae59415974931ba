package request

import "github.com/Guyuepp/go-clean-forum/domain"

type Comment struct {
	PostID   int64  `json:"post_id" binding:"required,gt=0"`
	Content  string `json:"content" binding:"required,max=2000"`
	ParentID int64  `json:"parent_id" binding:"gte=0"`
	RootID   int64  `json:"root_id" binding:"gte=0"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain(authorID int64) domain.Comment {
	return domain.Comment{
		PostID:   r.PostID,
		AuthorID: authorID,
		Content:  r.Content,
		ParentID: r.ParentID,
		RootID:   r.RootID,
	}
}

type Review struct {
	Status string `json:"status" binding:"required,review_status"`
}

func (r *Review) ToDomain() domain.ReviewStatus {
	s, _ := domain.ParseReviewStatus(r.Status)
	return s
}

type DisplayStatus struct {
	Status string `json:"status" binding:"required,display_status"`
}

func (r *DisplayStatus) ToDomain() domain.CommentStatus {
	s, _ := domain.ParseCommentStatus(r.Status)
	return s
}
