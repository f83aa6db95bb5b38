package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/board-service/internal/config"
	api "github.com/s21platform/board-service/internal/generated"
	"github.com/s21platform/board-service/internal/model"
	"github.com/s21platform/board-service/internal/service"
)

type Handler struct {
	moderator    Moderator
	jwtGenerator JWTGenerator
}

// New builds the handler. jwtGenerator may be nil when Centrifugo is off.
func New(moderator Moderator, jwtGenerator JWTGenerator) *Handler {
	return &Handler{
		moderator:    moderator,
		jwtGenerator: jwtGenerator,
	}
}

func (h *Handler) ListRecentMessages(w http.ResponseWriter, r *http.Request) {
	h.listMessages(w, r, "ListRecentMessages", model.ScopeRecentApproved)
}

func (h *Handler) ListAllMessages(w http.ResponseWriter, r *http.Request) {
	h.listMessages(w, r, "ListAllMessages", model.ScopeAllApproved)
}

func (h *Handler) ListPendingMessages(w http.ResponseWriter, r *http.Request) {
	h.listMessages(w, r, "ListPendingMessages", model.ScopePending)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request, funcName string, scope model.MessageScope) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName(funcName)

	messages, err := h.moderator.ListMessages(r.Context(), scope)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list %s messages: %v", scope, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, messages, http.StatusOK)
}

func (h *Handler) SubmitMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SubmitMessage")

	var req api.SubmitMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	message, err := h.moderator.SubmitMessage(r.Context(), req.Text)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to submit message: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, message, http.StatusOK)
}

func (h *Handler) ApproveMessage(w http.ResponseWriter, r *http.Request, id api.Id) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ApproveMessage")

	if err := h.moderator.ApproveMessage(r.Context(), id); err != nil {
		logger.Error(fmt.Sprintf("failed to approve message %d: %v", id, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) RejectMessage(w http.ResponseWriter, r *http.Request, id api.Id) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RejectMessage")

	if err := h.moderator.RejectMessage(r.Context(), id); err != nil {
		logger.Error(fmt.Sprintf("failed to reject message %d: %v", id, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) LikeMessage(w http.ResponseWriter, r *http.Request, id api.Id) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LikeMessage")

	likes, err := h.moderator.LikeMessage(r.Context(), id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to like message %d: %v", id, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.LikesResponse{Id: id, Likes: likes}, http.StatusOK)
}

func (h *Handler) UnlikeMessage(w http.ResponseWriter, r *http.Request, id api.Id) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("UnlikeMessage")

	likes, err := h.moderator.UnlikeMessage(r.Context(), id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to unlike message %d: %v", id, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.LikesResponse{Id: id, Likes: likes}, http.StatusOK)
}

func (h *Handler) GetLiveStatus(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetLiveStatus")

	status, err := h.moderator.LiveStatus(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get live status: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, status, http.StatusOK)
}

func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateQuestion")

	var req api.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	question, err := h.moderator.CreateQuestion(r.Context(), req.Text)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create question: %v", err))
		h.writeServiceError(w, err)
		return
	}

	logger.Info(fmt.Sprintf("question %d is now live", question.ID))

	h.writeJSON(w, question, http.StatusOK)
}

func (h *Handler) SetActive(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetActive")

	var req api.SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Active == nil {
		logger.Error("active flag is missing")
		h.writeError(w, "active is required", http.StatusBadRequest)
		return
	}

	questionID, err := h.moderator.SetActive(r.Context(), *req.Active)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to set active to %t: %v", *req.Active, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.SetActiveResponse{QuestionId: questionID}, http.StatusOK)
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListQuestions")

	questions, err := h.moderator.ListQuestions(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list questions: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, questions, http.StatusOK)
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SubmitAnswer")

	var req api.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	answer, err := h.moderator.SubmitAnswer(r.Context(), req.Text, req.ClientId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to submit answer: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, answer, http.StatusOK)
}

func (h *Handler) ListPendingAnswers(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListPendingAnswers")

	answers, err := h.moderator.ListPendingAnswers(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list pending answers: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, answers, http.StatusOK)
}

func (h *Handler) ListApprovedAnswers(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ListApprovedAnswers")

	answers, err := h.moderator.ListApprovedAnswers(r.Context())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to list approved answers: %v", err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, answers, http.StatusOK)
}

func (h *Handler) ApproveAnswer(w http.ResponseWriter, r *http.Request, id api.Id) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ApproveAnswer")

	if err := h.moderator.ApproveAnswer(r.Context(), id); err != nil {
		logger.Error(fmt.Sprintf("failed to approve answer %d: %v", id, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) DeleteAnswer(w http.ResponseWriter, r *http.Request, id api.Id) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeleteAnswer")

	if err := h.moderator.DeleteAnswer(r.Context(), id); err != nil {
		logger.Error(fmt.Sprintf("failed to delete answer %d: %v", id, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) LikeAnswer(w http.ResponseWriter, r *http.Request, id api.Id) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("LikeAnswer")

	likes, err := h.moderator.LikeAnswer(r.Context(), id)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to like answer %d: %v", id, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.LikesResponse{Id: id, Likes: likes}, http.StatusOK)
}

func (h *Handler) SetDevilReply(w http.ResponseWriter, r *http.Request, id api.Id) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SetDevilReply")

	var req api.DevilReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.moderator.SetDevilReply(r.Context(), id, req.Reply); err != nil {
		logger.Error(fmt.Sprintf("failed to reply to answer %d: %v", id, err))
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, api.SuccessResponse{Success: true}, http.StatusOK)
}

func (h *Handler) RewardAnswer(w http.ResponseWriter, r *http.Request, id api.Id) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RewardAnswer")

	// the body is optional
	var req api.RewardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	reward, err := h.moderator.RewardAnswer(r.Context(), id, req.Type, req.Code)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to reward answer %d: %v", id, err))
		h.writeServiceError(w, err)
		return
	}

	logger.Info(fmt.Sprintf("answer %d rewarded with %s", id, reward.Type))

	h.writeJSON(w, api.RewardResponse{
		Id:   reward.ID,
		Type: string(reward.Type),
		Code: reward.Code,
	}, http.StatusOK)
}

func (h *Handler) GetLiveToken(w http.ResponseWriter, r *http.Request, params api.GetLiveTokenParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetLiveToken")

	if h.jwtGenerator == nil {
		logger.Warn("live token requested while centrifugo is disabled")
		h.writeError(w, "centrifugo is disabled", http.StatusServiceUnavailable)
		return
	}

	clientID := strings.TrimSpace(params.ClientId)
	if clientID == "" {
		logger.Error("empty client id")
		h.writeError(w, "clientId is required", http.StatusBadRequest)
		return
	}

	connectToken, connectExpiresAt, err := h.jwtGenerator.GenerateConnectToken(clientID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate connect token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate connect token: %v", err), http.StatusInternalServerError)
		return
	}

	channel := model.ClientSessionKey(clientID)
	subscribeToken, subscribeExpiresAt, err := h.jwtGenerator.GenerateSubscribeToken(clientID, channel)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.LiveTokenResponse{
		ConnectToken:       connectToken,
		ConnectExpiresAt:   connectExpiresAt,
		SubscribeToken:     subscribeToken,
		SubscribeExpiresAt: subscribeExpiresAt,
		Channel:            channel,
	}, http.StatusOK)
}

// ParamError answers requests the generated wrapper could not bind.
func (h *Handler) ParamError(w http.ResponseWriter, _ *http.Request, err error) {
	h.writeError(w, err.Error(), http.StatusBadRequest)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		h.writeError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrConflict):
		h.writeError(w, err.Error(), http.StatusConflict)
	default:
		h.writeError(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
