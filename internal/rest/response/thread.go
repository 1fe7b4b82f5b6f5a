package response

import (
	"time"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
)

// DateTimeFormat ISO 8601 with milliseconds, always UTC
const DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"

func formatDate(t time.Time) string {
	return t.UTC().Format(DateTimeFormat)
}

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThread(t *domain.CreatedThread) AddedThread {
	return AddedThread{
		ID:    t.ID,
		Title: t.Title,
		Owner: t.Owner,
	}
}

type ThreadDetail struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     string    `json:"date"`
	Username string    `json:"username"`
	Comments []Comment `json:"comments"`
}

// NewThreadDetailFromDomain: Domain -> Response
func NewThreadDetailFromDomain(d *domain.ThreadDetail) ThreadDetail {
	comments := make([]Comment, len(d.Comments))
	for i := range d.Comments {
		comments[i] = NewCommentFromDomain(&d.Comments[i])
	}
	return ThreadDetail{
		ID:       d.ID,
		Title:    d.Title,
		Body:     d.Body,
		Date:     formatDate(d.CreatedAt),
		Username: d.Username,
		Comments: comments,
	}
}
