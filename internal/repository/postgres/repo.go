package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/board-service/internal/config"
	"github.com/s21platform/board-service/internal/model"
	"github.com/s21platform/board-service/internal/pkg/tx"
)

// questionsLockKey serialises every change of the active question flag.
const questionsLockKey int64 = 0x626f617264

var (
	messageColumns  = []string{"id", "text", "approved", "likes", "created_at"}
	questionColumns = []string{"id", "text", "active", "created_at"}
	answerColumns   = []string{
		"id", "question_id", "text", "approved", "likes", "client_id",
		"devil_reply", "reward_type", "reward_code", "reward_at", "created_at",
	}
)

type querier interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	conn.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	return NewWithDB(conn)
}

func NewWithDB(conn *sqlx.DB) *Repository {
	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// DB exposes the pool for health and stats collectors.
func (r *Repository) DB() *sql.DB {
	return r.connection.DB
}

// Chk returns the transaction bound to ctx or the pool itself.
func (r *Repository) Chk(ctx context.Context) querier {
	if t, ok := tx.FromContext(ctx); ok {
		return t
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) (err error) {
	if _, ok := tx.FromContext(ctx); ok {
		return cb(ctx)
	}

	t, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = t.Rollback()
			panic(p)
		}
	}()

	if err = cb(tx.WithTx(ctx, t)); err != nil {
		if rbErr := t.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	if err = t.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *Repository) CreateMessage(ctx context.Context, text string) (*model.Message, error) {
	query, args, err := sq.Insert("messages").
		Columns("text", "approved").
		Values(text, false).
		Suffix("RETURNING id, text, approved, likes, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	if err = r.Chk(ctx).GetContext(ctx, &message, query, args...); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return &message, nil
}

func (r *Repository) ListMessages(ctx context.Context, filter model.MessageFilter) (model.MessageList, error) {
	queryBuilder := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"approved": filter.Approved}).
		OrderBy("created_at DESC")

	if filter.CreatedSince != nil {
		queryBuilder = queryBuilder.Where(sq.GtOrEq{"created_at": *filter.CreatedSince})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.MessageList{}
	if err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

func (r *Repository) ApproveMessage(ctx context.Context, id int64) error {
	query, args, err := sq.Update("messages").
		Set("approved", true).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) DeleteMessage(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("messages").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) LikeMessage(ctx context.Context, id int64) (int64, error) {
	return r.adjustLikes(ctx, "messages", id, sq.Expr("likes + 1"))
}

// UnlikeMessage never takes the counter below zero.
func (r *Repository) UnlikeMessage(ctx context.Context, id int64) (int64, error) {
	return r.adjustLikes(ctx, "messages", id, sq.Expr("GREATEST(likes - 1, 0)"))
}

// adjustLikes updates the counter in a single statement. A missing row
// reports zero likes.
func (r *Repository) adjustLikes(ctx context.Context, table string, id int64, expr sq.Sqlizer) (int64, error) {
	query, args, err := sq.Update(table).
		Set("likes", expr).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING likes").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %v", err)
	}

	var likes int64
	err = r.Chk(ctx).GetContext(ctx, &likes, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update likes: %w", err)
	}

	return likes, nil
}

// LockQuestions takes a transaction-scoped advisory lock. It must run inside WithTx.
func (r *Repository) LockQuestions(ctx context.Context) error {
	if _, ok := tx.FromContext(ctx); !ok {
		return errors.New("questions lock requires a transaction")
	}

	_, err := r.Chk(ctx).ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", questionsLockKey)
	if err != nil {
		return fmt.Errorf("failed to lock questions: %w", err)
	}

	return nil
}

// DeactivateQuestions clears the active flag everywhere except exceptID (0 means none).
func (r *Repository) DeactivateQuestions(ctx context.Context, exceptID int64) error {
	queryBuilder := sq.Update("questions").
		Set("active", false).
		Where(sq.Eq{"active": true})

	if exceptID != 0 {
		queryBuilder = queryBuilder.Where(sq.NotEq{"id": exceptID})
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to deactivate questions: %w", err)
	}

	return nil
}

func (r *Repository) InsertQuestion(ctx context.Context, text string, active bool) (*model.Question, error) {
	query, args, err := sq.Insert("questions").
		Columns("text", "active").
		Values(text, active).
		Suffix("RETURNING id, text, active, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var question model.Question
	if err = r.Chk(ctx).GetContext(ctx, &question, query, args...); err != nil {
		return nil, fmt.Errorf("failed to insert question: %w", err)
	}

	return &question, nil
}

func (r *Repository) SetQuestionActive(ctx context.Context, id int64, active bool) error {
	query, args, err := sq.Update("questions").
		Set("active", active).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}

	return nil
}

// ActiveQuestion returns nil when no question is open.
func (r *Repository) ActiveQuestion(ctx context.Context) (*model.Question, error) {
	return r.getQuestion(ctx, sq.Select(questionColumns...).
		From("questions").
		Where(sq.Eq{"active": true}).
		OrderBy("created_at DESC").
		Limit(1))
}

// LatestQuestion returns the most recently created question or nil.
func (r *Repository) LatestQuestion(ctx context.Context) (*model.Question, error) {
	return r.getQuestion(ctx, sq.Select(questionColumns...).
		From("questions").
		OrderBy("created_at DESC", "id DESC").
		Limit(1))
}

func (r *Repository) getQuestion(ctx context.Context, queryBuilder sq.SelectBuilder) (*model.Question, error) {
	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var question model.Question
	err = r.Chk(ctx).GetContext(ctx, &question, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return &question, nil
}

func (r *Repository) ListQuestions(ctx context.Context) (model.QuestionList, error) {
	query, args, err := sq.Select(questionColumns...).
		From("questions").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	questions := model.QuestionList{}
	if err = r.Chk(ctx).SelectContext(ctx, &questions, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	return questions, nil
}

func (r *Repository) InsertAnswer(ctx context.Context, questionID int64, text string, clientID *string) (*model.Answer, error) {
	query, args, err := sq.Insert("answers").
		Columns("question_id", "text", "client_id", "approved").
		Values(questionID, text, clientID, false).
		Suffix("RETURNING " + strings.Join(answerColumns, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var answer model.Answer
	if err = r.Chk(ctx).GetContext(ctx, &answer, query, args...); err != nil {
		return nil, fmt.Errorf("failed to insert answer: %w", err)
	}

	return &answer, nil
}

// ListLiveAnswers returns answers bound to the currently active question.
func (r *Repository) ListLiveAnswers(ctx context.Context, approved bool) (model.AnswerList, error) {
	order := "a.created_at DESC"
	if approved {
		order = "a.created_at ASC"
	}

	columns := make([]string, len(answerColumns))
	for i, c := range answerColumns {
		columns[i] = "a." + c
	}

	query, args, err := sq.Select(columns...).
		From("answers a").
		Join("questions q ON q.id = a.question_id").
		Where(sq.And{
			sq.Eq{"q.active": true},
			sq.Eq{"a.approved": approved},
		}).
		OrderBy(order).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	answers := model.AnswerList{}
	if err = r.Chk(ctx).SelectContext(ctx, &answers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list answers: %w", err)
	}

	return answers, nil
}

// GetAnswer returns nil when the row does not exist.
func (r *Repository) GetAnswer(ctx context.Context, id int64) (*model.Answer, error) {
	query, args, err := sq.Select(answerColumns...).
		From("answers").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var answer model.Answer
	err = r.Chk(ctx).GetContext(ctx, &answer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get answer: %w", err)
	}

	return &answer, nil
}

func (r *Repository) ApproveAnswer(ctx context.Context, id int64) error {
	return r.updateAnswer(ctx, id, map[string]interface{}{"approved": true})
}

func (r *Repository) DeleteAnswer(ctx context.Context, id int64) error {
	query, args, err := sq.Delete("answers").
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return err
}

func (r *Repository) LikeAnswer(ctx context.Context, id int64) (int64, error) {
	return r.adjustLikes(ctx, "answers", id, sq.Expr("likes + 1"))
}

func (r *Repository) SetDevilReply(ctx context.Context, id int64, reply string) error {
	return r.updateAnswer(ctx, id, map[string]interface{}{"devil_reply": reply})
}

func (r *Repository) SetReward(ctx context.Context, id int64, rewardType model.RewardType, code string, at time.Time) error {
	return r.updateAnswer(ctx, id, map[string]interface{}{
		"reward_type": string(rewardType),
		"reward_code": code,
		"reward_at":   at,
	})
}

func (r *Repository) updateAnswer(ctx context.Context, id int64, values map[string]interface{}) error {
	query, args, err := sq.Update("answers").
		SetMap(values).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err = r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update answer: %w", err)
	}

	return nil
}
