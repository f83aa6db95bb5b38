package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/s21platform/board-service/internal/model"
)

const (
	DefaultRecentWindow = 48 * time.Hour

	rewardCodeLength   = 6
	rewardCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Service is the moderation engine: it owns the lifecycle of messages and
// live answers and decides which events go out to viewers.
type Service struct {
	repository   DBRepo
	publisher    Publisher
	validator    Validator
	recentWindow time.Duration

	now      func() time.Time
	rewardFn func() (string, error)
}

func New(repo DBRepo, publisher Publisher, validator Validator, recentWindow time.Duration) *Service {
	if recentWindow <= 0 {
		recentWindow = DefaultRecentWindow
	}

	return &Service{
		repository:   repo,
		publisher:    publisher,
		validator:    validator,
		recentWindow: recentWindow,
		now:          time.Now,
		rewardFn:     generateRewardCode,
	}
}

func (s *Service) SubmitMessage(ctx context.Context, text string) (*model.Message, error) {
	if err := s.validator.ValidateText("text", text); err != nil {
		return nil, validationError(err)
	}

	return s.repository.CreateMessage(ctx, text)
}

func (s *Service) ListMessages(ctx context.Context, scope model.MessageScope) (model.MessageList, error) {
	var filter model.MessageFilter

	switch scope {
	case model.ScopeRecentApproved:
		since := s.now().Add(-s.recentWindow)
		filter = model.MessageFilter{Approved: true, CreatedSince: &since}
	case model.ScopeAllApproved:
		filter = model.MessageFilter{Approved: true}
	case model.ScopePending:
		filter = model.MessageFilter{Approved: false}
	default:
		return nil, validationError(fmt.Errorf("unknown scope %q", scope))
	}

	return s.repository.ListMessages(ctx, filter)
}

func (s *Service) ApproveMessage(ctx context.Context, id int64) error {
	return s.repository.ApproveMessage(ctx, id)
}

func (s *Service) RejectMessage(ctx context.Context, id int64) error {
	return s.repository.DeleteMessage(ctx, id)
}

func (s *Service) LikeMessage(ctx context.Context, id int64) (int64, error) {
	return s.repository.LikeMessage(ctx, id)
}

func (s *Service) UnlikeMessage(ctx context.Context, id int64) (int64, error) {
	return s.repository.UnlikeMessage(ctx, id)
}

func (s *Service) LiveStatus(ctx context.Context) (*model.LiveStatus, error) {
	question, err := s.repository.ActiveQuestion(ctx)
	if err != nil {
		return nil, err
	}

	return &model.LiveStatus{
		Active:   question != nil,
		Question: question,
	}, nil
}

// CreateQuestion opens a new question and closes whatever was open before,
// under the questions lock so two questions are never active at once.
func (s *Service) CreateQuestion(ctx context.Context, text string) (*model.Question, error) {
	if err := s.validator.ValidateText("text", text); err != nil {
		return nil, validationError(err)
	}

	var question *model.Question
	err := s.repository.WithTx(ctx, func(ctx context.Context) error {
		if err := s.repository.LockQuestions(ctx); err != nil {
			return err
		}

		if err := s.repository.DeactivateQuestions(ctx, 0); err != nil {
			return err
		}

		var err error
		question, err = s.repository.InsertQuestion(ctx, text, true)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, model.Event{Type: model.EventNewQuestion, Payload: question})
	s.publisher.Publish(ctx, model.Event{Type: model.EventStatus, Payload: model.StatusPayload{
		Active:   true,
		Question: question,
	}})

	return question, nil
}

// SetActive toggles the most recently created question, which is not
// necessarily the one currently open.
func (s *Service) SetActive(ctx context.Context, active bool) (int64, error) {
	var questionID int64
	err := s.repository.WithTx(ctx, func(ctx context.Context) error {
		if err := s.repository.LockQuestions(ctx); err != nil {
			return err
		}

		latest, err := s.repository.LatestQuestion(ctx)
		if err != nil {
			return err
		}
		if latest == nil {
			return conflictError("no questions exist")
		}
		questionID = latest.ID

		if active {
			if err := s.repository.DeactivateQuestions(ctx, latest.ID); err != nil {
				return err
			}
		}

		return s.repository.SetQuestionActive(ctx, latest.ID, active)
	})
	if err != nil {
		return 0, err
	}

	s.publisher.Publish(ctx, model.Event{Type: model.EventStatus, Payload: model.StatusPayload{
		Active:     active,
		QuestionID: questionID,
	}})

	return questionID, nil
}

func (s *Service) ListQuestions(ctx context.Context) (model.QuestionList, error) {
	return s.repository.ListQuestions(ctx)
}

// SubmitAnswer binds the answer to the question open at lookup time. The
// lookup and the insert are separate statements, so a question closed in
// between still receives the answer.
func (s *Service) SubmitAnswer(ctx context.Context, text string, clientID *string) (*model.Answer, error) {
	if err := s.validator.ValidateText("text", text); err != nil {
		return nil, validationError(err)
	}

	question, err := s.repository.ActiveQuestion(ctx)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, conflictError("no active question")
	}

	if clientID != nil && strings.TrimSpace(*clientID) == "" {
		clientID = nil
	}

	answer, err := s.repository.InsertAnswer(ctx, question.ID, text, clientID)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, model.Event{Type: model.EventPending, Payload: answer})

	return answer, nil
}

func (s *Service) ListPendingAnswers(ctx context.Context) (model.AnswerList, error) {
	return s.repository.ListLiveAnswers(ctx, false)
}

func (s *Service) ListApprovedAnswers(ctx context.Context) (model.AnswerList, error) {
	return s.repository.ListLiveAnswers(ctx, true)
}

func (s *Service) ApproveAnswer(ctx context.Context, id int64) error {
	if err := s.repository.ApproveAnswer(ctx, id); err != nil {
		return err
	}

	answer, err := s.repository.GetAnswer(ctx, id)
	if err != nil {
		return err
	}
	if answer == nil {
		return nil
	}

	s.publisher.Publish(ctx, model.Event{Type: model.EventNew, Payload: answer})

	return nil
}

func (s *Service) DeleteAnswer(ctx context.Context, id int64) error {
	if err := s.repository.DeleteAnswer(ctx, id); err != nil {
		return err
	}

	s.publisher.Publish(ctx, model.Event{Type: model.EventPendingRemove, Payload: model.IDPayload{ID: id}})

	return nil
}

func (s *Service) LikeAnswer(ctx context.Context, id int64) (int64, error) {
	return s.repository.LikeAnswer(ctx, id)
}

func (s *Service) SetDevilReply(ctx context.Context, id int64, reply string) error {
	if err := s.validator.ValidateText("reply", reply); err != nil {
		return validationError(err)
	}

	if err := s.repository.SetDevilReply(ctx, id, reply); err != nil {
		return err
	}

	answer, err := s.repository.GetAnswer(ctx, id)
	if err != nil {
		return err
	}
	if answer == nil {
		return nil
	}

	if answer.HasClient() {
		s.publisher.PublishTo(ctx, model.ClientSessionKey(*answer.ClientID), model.Event{
			Type:    model.EventReply,
			Payload: model.ReplyPayload{ID: id, Reply: reply},
		})
	}

	s.publisher.Publish(ctx, model.Event{Type: model.EventNew, Payload: model.NewDevilMessage(id, reply, s.now())})

	return nil
}

// RewardAnswer attaches a reward to the answer. An unknown or missing type
// becomes a shot and a missing code is generated.
func (s *Service) RewardAnswer(ctx context.Context, id int64, rewardType, code *string) (*model.Reward, error) {
	reward := model.Reward{ID: id, Type: model.RewardShot, At: s.now()}
	if rewardType != nil {
		reward.Type = model.ParseRewardType(*rewardType)
	}

	if code != nil && strings.TrimSpace(*code) != "" {
		reward.Code = strings.TrimSpace(*code)
	} else {
		generated, err := s.rewardFn()
		if err != nil {
			return nil, fmt.Errorf("failed to generate reward code: %w", err)
		}
		reward.Code = generated
	}

	if err := s.repository.SetReward(ctx, id, reward.Type, reward.Code, reward.At); err != nil {
		return nil, err
	}

	answer, err := s.repository.GetAnswer(ctx, id)
	if err != nil {
		return nil, err
	}
	if answer == nil {
		return &reward, nil
	}

	if answer.HasClient() {
		s.publisher.PublishTo(ctx, model.ClientSessionKey(*answer.ClientID), model.Event{
			Type:    model.EventReward,
			Payload: model.RewardPayload{ID: id, Type: reward.Type, Code: reward.Code},
		})
	}

	s.publisher.Publish(ctx, model.Event{Type: model.EventRewarded, Payload: model.RewardedPayload{
		ID:   id,
		Type: reward.Type,
	}})

	return &reward, nil
}

func generateRewardCode() (string, error) {
	limit := big.NewInt(int64(len(rewardCodeAlphabet)))

	code := make([]byte, rewardCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		code[i] = rewardCodeAlphabet[n.Int64()]
	}

	return string(code), nil
}
