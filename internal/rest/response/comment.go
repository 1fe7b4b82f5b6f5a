package response

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

type AddedComment struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedComment(c *domain.CreatedComment) AddedComment {
	return AddedComment{
		ID:      c.ID,
		Content: c.Content,
		Owner:   c.Owner,
	}
}

type Comment struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Date      string  `json:"date"`
	Content   string  `json:"content"`
	IsDeleted bool    `json:"isDeleted,omitempty"`
	Replies   []Reply `json:"replies"`
	LikeCount int64   `json:"likeCount"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c *domain.CommentDetail) Comment {
	replies := make([]Reply, len(c.Replies))
	for i := range c.Replies {
		replies[i] = NewReplyFromDomain(&c.Replies[i])
	}
	return Comment{
		ID:        c.ID,
		Username:  c.Username,
		Date:      formatDate(c.Date),
		Content:   c.Content,
		IsDeleted: c.IsDeleted,
		Replies:   replies,
		LikeCount: c.LikeCount,
	}
}
