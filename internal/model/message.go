package model

import (
	"time"
)

type MessageScope string

const (
	ScopeRecentApproved MessageScope = "recent_approved"
	ScopeAllApproved    MessageScope = "all_approved"
	ScopePending        MessageScope = "pending"
)

type MessageList []Message

type Message struct {
	ID        int64     `db:"id" json:"id"`
	Text      string    `db:"text" json:"text"`
	Approved  bool      `db:"approved" json:"approved"`
	Likes     int64     `db:"likes" json:"likes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// MessageFilter narrows a message scan. CreatedSince is inclusive.
type MessageFilter struct {
	Approved     bool
	CreatedSince *time.Time
}
