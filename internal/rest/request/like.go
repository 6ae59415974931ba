package request

import "github.com/Guyuepp/go-clean-forum/domain"

// Like is bound from the JSON body on POST and from the query string otherwise.
type Like struct {
	TargetType string `json:"target_type" form:"target_type" binding:"required,target_type"`
	TargetID   int64  `json:"target_id" form:"target_id" binding:"required,gt=0"`
}

func (r *Like) Target() (domain.TargetType, int64) {
	tt, _ := domain.ParseTargetType(r.TargetType)
	return tt, r.TargetID
}
