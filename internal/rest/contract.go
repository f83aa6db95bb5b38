//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/board-service/internal/model"
)

type Moderator interface {
	SubmitMessage(ctx context.Context, text string) (*model.Message, error)
	ListMessages(ctx context.Context, scope model.MessageScope) (model.MessageList, error)
	ApproveMessage(ctx context.Context, id int64) error
	RejectMessage(ctx context.Context, id int64) error
	LikeMessage(ctx context.Context, id int64) (int64, error)
	UnlikeMessage(ctx context.Context, id int64) (int64, error)

	LiveStatus(ctx context.Context) (*model.LiveStatus, error)
	CreateQuestion(ctx context.Context, text string) (*model.Question, error)
	SetActive(ctx context.Context, active bool) (int64, error)
	ListQuestions(ctx context.Context) (model.QuestionList, error)

	SubmitAnswer(ctx context.Context, text string, clientID *string) (*model.Answer, error)
	ListPendingAnswers(ctx context.Context) (model.AnswerList, error)
	ListApprovedAnswers(ctx context.Context) (model.AnswerList, error)
	ApproveAnswer(ctx context.Context, id int64) error
	DeleteAnswer(ctx context.Context, id int64) error
	LikeAnswer(ctx context.Context, id int64) (int64, error)
	SetDevilReply(ctx context.Context, id int64, reply string) error
	RewardAnswer(ctx context.Context, id int64, rewardType, code *string) (*model.Reward, error)
}

type JWTGenerator interface {
	GenerateConnectToken(clientID string) (string, int64, error)
	GenerateSubscribeToken(clientID, channel string) (string, int64, error)
}
