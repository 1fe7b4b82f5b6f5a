package response

import "github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"

type AddedReply struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedReply(r *domain.CreatedReply) AddedReply {
	return AddedReply{
		ID:      r.ID,
		Content: r.Content,
		Owner:   r.Owner,
	}
}

type Reply struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Date      string `json:"date"`
	Username  string `json:"username"`
	IsDeleted bool   `json:"isDeleted,omitempty"`
}

func NewReplyFromDomain(r *domain.ReplyDetail) Reply {
	return Reply{
		ID:        r.ID,
		Content:   r.Content,
		Date:      formatDate(r.Date),
		Username:  r.Username,
		IsDeleted: r.IsDeleted,
	}
}
