package mysql

import (
	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// commentScope must agree with domain.Comment.VisibleIn.
func commentScope(scope domain.Scope) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch scope {
		case domain.ScopeAdmin:
			return db
		case domain.ScopeReviewer:
			return db.Where("deleted_at IS NULL")
		default:
			return db.Where("deleted_at IS NULL AND status = ? AND review_status <> ?",
				domain.CommentNormal, domain.ReviewRejected)
		}
	}
}

// postScope must agree with domain.Post.VisibleIn.
func postScope(scope domain.Scope) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch scope {
		case domain.ScopeAdmin:
			return db
		case domain.ScopeReviewer:
			return db.Where("deleted_at IS NULL")
		default:
			return db.Where("deleted_at IS NULL AND status = ? AND review_status = ? AND visibility = ?",
				domain.PostPublished, domain.ReviewApproved, domain.VisibilityPublic)
		}
	}
}

// activeScope 点赞和关注列表：ADMIN 看全部，其余只看未删除的
func activeScope(scope domain.Scope) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope == domain.ScopeAdmin {
			return db
		}
		return db.Where("deleted_at IS NULL")
	}
}
