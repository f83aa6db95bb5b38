package model

import (
	"strconv"
	"time"
)

type RewardType string

const (
	RewardShot  RewardType = "shot"
	RewardDrink RewardType = "drink"
)

// ParseRewardType falls back to RewardShot for anything it does not know.
func ParseRewardType(s string) RewardType {
	switch RewardType(s) {
	case RewardShot, RewardDrink:
		return RewardType(s)
	default:
		return RewardShot
	}
}

type AnswerList []Answer

type Answer struct {
	ID         int64       `db:"id" json:"id"`
	QuestionID int64       `db:"question_id" json:"question_id"`
	Text       string      `db:"text" json:"text"`
	Approved   bool        `db:"approved" json:"approved"`
	Likes      int64       `db:"likes" json:"likes"`
	ClientID   *string     `db:"client_id" json:"client_id,omitempty"`
	DevilReply *string     `db:"devil_reply" json:"devil_reply,omitempty"`
	RewardType *RewardType `db:"reward_type" json:"reward_type,omitempty"`
	RewardCode *string     `db:"reward_code" json:"reward_code,omitempty"`
	RewardAt   *time.Time  `db:"reward_at" json:"reward_at,omitempty"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
}

// HasClient reports whether the answer came from an identified viewer session.
func (a *Answer) HasClient() bool {
	return a.ClientID != nil && *a.ClientID != ""
}

type Reward struct {
	ID   int64      `json:"id"`
	Type RewardType `json:"type"`
	Code string     `json:"code"`
	At   time.Time  `json:"-"`
}

// DevilMessage is the admin's reply rendered as a standalone approved item
// on the live wall.
type DevilMessage struct {
	ID        string    `json:"id"`
	ReplyTo   int64     `json:"reply_to"`
	Text      string    `json:"text"`
	Approved  bool      `json:"approved"`
	Likes     int64     `json:"likes"`
	Devil     bool      `json:"devil"`
	CreatedAt time.Time `json:"created_at"`
}

func NewDevilMessage(answerID int64, reply string, at time.Time) DevilMessage {
	return DevilMessage{
		ID:        "devil-" + strconv.FormatInt(answerID, 10) + "-" + strconv.FormatInt(at.UnixMilli(), 10),
		ReplyTo:   answerID,
		Text:      reply,
		Approved:  true,
		Devil:     true,
		CreatedAt: at,
	}
}
