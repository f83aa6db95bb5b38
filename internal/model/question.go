package model

import "time"

type QuestionList []Question

type Question struct {
	ID        int64     `db:"id" json:"id"`
	Text      string    `db:"text" json:"text"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type LiveStatus struct {
	Active   bool      `json:"active"`
	Question *Question `json:"question,omitempty"`
}
