package model

const (
	EventNewQuestion   = "newQuestion"
	EventStatus        = "status"
	EventPending       = "pending"
	EventNew           = "new"
	EventPendingRemove = "pendingRemove"
	EventReply         = "reply"
	EventReward        = "reward"
	EventRewarded      = "rewarded"

	EventRegistered = "registered"
	EventError      = "error"
	EventPong       = "pong"
)

const (
	AdminSessionKey  = "admin"
	clientKeyPrefix  = "client."
	BroadcastChannel = "live"
)

// ClientSessionKey is the registration key of a viewer session. The prefix
// keeps viewer ids from colliding with AdminSessionKey.
func ClientSessionKey(clientID string) string {
	return clientKeyPrefix + clientID
}

// Event is the frame every realtime transport carries.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type StatusPayload struct {
	Active     bool      `json:"active"`
	Question   *Question `json:"question,omitempty"`
	QuestionID int64     `json:"question_id,omitempty"`
}

type IDPayload struct {
	ID int64 `json:"id"`
}

type ReplyPayload struct {
	ID    int64  `json:"id"`
	Reply string `json:"reply"`
}

type RewardPayload struct {
	ID   int64      `json:"id"`
	Type RewardType `json:"type"`
	Code string     `json:"code"`
}

type RewardedPayload struct {
	ID   int64      `json:"id"`
	Type RewardType `json:"type"`
}
