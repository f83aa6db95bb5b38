//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"
	"time"

	"github.com/s21platform/board-service/internal/model"
)

type DBRepo interface {
	CreateMessage(ctx context.Context, text string) (*model.Message, error)
	ListMessages(ctx context.Context, filter model.MessageFilter) (model.MessageList, error)
	ApproveMessage(ctx context.Context, id int64) error
	DeleteMessage(ctx context.Context, id int64) error
	LikeMessage(ctx context.Context, id int64) (int64, error)
	UnlikeMessage(ctx context.Context, id int64) (int64, error)

	LockQuestions(ctx context.Context) error
	DeactivateQuestions(ctx context.Context, exceptID int64) error
	InsertQuestion(ctx context.Context, text string, active bool) (*model.Question, error)
	SetQuestionActive(ctx context.Context, id int64, active bool) error
	ActiveQuestion(ctx context.Context) (*model.Question, error)
	LatestQuestion(ctx context.Context) (*model.Question, error)
	ListQuestions(ctx context.Context) (model.QuestionList, error)

	InsertAnswer(ctx context.Context, questionID int64, text string, clientID *string) (*model.Answer, error)
	ListLiveAnswers(ctx context.Context, approved bool) (model.AnswerList, error)
	GetAnswer(ctx context.Context, id int64) (*model.Answer, error)
	ApproveAnswer(ctx context.Context, id int64) error
	DeleteAnswer(ctx context.Context, id int64) error
	LikeAnswer(ctx context.Context, id int64) (int64, error)
	SetDevilReply(ctx context.Context, id int64, reply string) error
	SetReward(ctx context.Context, id int64, rewardType model.RewardType, code string, at time.Time) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}

// Publisher delivers realtime events. Implementations must not block the
// caller and swallow their own delivery failures.
type Publisher interface {
	Publish(ctx context.Context, event model.Event)
	PublishTo(ctx context.Context, sessionKey string, event model.Event)
}

type Validator interface {
	ValidateText(field, value string) error
}
