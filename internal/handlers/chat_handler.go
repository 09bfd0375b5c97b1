package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ProtocolNetwork/shop-portal/internal/audit"
	"github.com/ProtocolNetwork/shop-portal/internal/chat"
	domain "github.com/ProtocolNetwork/shop-portal/internal/domain/appointment"
	"github.com/ProtocolNetwork/shop-portal/internal/httperr"
	"github.com/ProtocolNetwork/shop-portal/internal/middleware"
)

type ChatHandler struct {
	repo    domain.Repository
	client  *chat.Client
	history *chat.HistoryStore
	audit   *audit.Dispatcher
}

func NewChatHandler(
	repo domain.Repository,
	client *chat.Client,
	history *chat.HistoryStore,
	auditDispatcher *audit.Dispatcher,
) *ChatHandler {
	return &ChatHandler{
		repo:    repo,
		client:  client,
		history: history,
		audit:   auditDispatcher,
	}
}

// --------- Requests / Responses ---------

type PostMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

type ScheduleAction struct {
	Open   bool   `json:"open"`
	Reason string `json:"reason,omitempty"`
}

type PostMessageResponse struct {
	Message       chat.Message   `json:"message"`
	Schedule      ScheduleAction `json:"schedule"`
	IssuesUpdated bool           `json:"issues_updated"`
}

// --------- Handlers ---------

// PostMessage runs one chat turn: append the user message, complete,
// append the reply, then analyze the reply for scheduling and summary
// triggers. Triggers only ever fire on assistant-authored text.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	ctx := c.Request.Context()

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "A message is required.")
		return
	}

	user, err := h.repo.GetUserByID(ctx, userID)
	if err != nil {
		httperr.Internal(c, "user_not_found", "Could not load your profile.")
		return
	}

	if _, err := h.history.Append(ctx, userID, chat.Message{
		Role:    chat.RoleUser,
		Content: req.Message,
	}); err != nil {
		log.Println("chat history append error:", err)
		httperr.Internal(c, "failed_to_save_message", "Could not save your message.")
		return
	}

	transcript, err := h.history.List(ctx, userID)
	if err != nil {
		log.Println("chat history list error:", err)
		httperr.Internal(c, "failed_to_load_history", "Could not load the conversation.")
		return
	}

	// The system prompt is rebuilt each turn from the current vehicle
	// record and never stored in the transcript.
	messages := make([]chat.Message, 0, len(transcript)+1)
	messages = append(messages, chat.Message{
		Role:    chat.RoleSystem,
		Content: chat.SystemPrompt(user.Vehicle),
	})
	messages = append(messages, transcript...)

	reply, err := h.client.Complete(ctx, messages)
	if err != nil {
		// Conversation continues from the last successful exchange.
		log.Println("chat completion error:", err)
		httperr.BadGateway(c, "assistant_unavailable", "The assistant is unavailable right now.")
		return
	}

	outcome := chat.AnalyzeReply(reply)

	assistantMsg, err := h.history.Append(ctx, userID, chat.Message{
		Role:    chat.RoleAssistant,
		Content: outcome.Reply,
	})
	if err != nil {
		log.Println("chat history append error:", err)
		httperr.Internal(c, "failed_to_save_message", "Could not save the reply.")
		return
	}

	issuesUpdated := false
	if outcome.SendToMechanic {
		if err := h.repo.SaveVehicleIssues(ctx, userID, outcome.Reply); err != nil {
			// Non-fatal: the chat turn already succeeded.
			log.Println("issue summary save error:", err)
		} else {
			issuesUpdated = true
			h.audit.Dispatch(audit.Event{
				UserID: &userID,
				Action: "issue_summary_saved",
				Entity: "user",
				EntityID: func() *uint {
					id := userID
					return &id
				}(),
			})
		}
	}

	c.JSON(200, PostMessageResponse{
		Message: assistantMsg,
		Schedule: ScheduleAction{
			Open:   outcome.OpenSchedule,
			Reason: outcome.Reason,
		},
		IssuesUpdated: issuesUpdated,
	})
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	msgs, err := h.history.List(c.Request.Context(), userID)
	if err != nil {
		log.Println("chat history list error:", err)
		httperr.Internal(c, "failed_to_load_history", "Could not load the conversation.")
		return
	}

	c.JSON(200, gin.H{"messages": msgs})
}
