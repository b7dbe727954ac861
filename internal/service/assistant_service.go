package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/naijatax/internal/assistant"
	"github.com/mmynk/naijatax/internal/middleware"
	"github.com/mmynk/naijatax/pkg/api"
	"github.com/mmynk/naijatax/pkg/api/apiconnect"
)

var _ apiconnect.AssistantServiceHandler = (*AssistantService)(nil)

// maxHistoryTurns bounds how much conversation is forwarded to the model.
const maxHistoryTurns = 40

// AssistantService implements the Connect AssistantService.
type AssistantService struct {
	assistant assistant.Assistant
}

// NewAssistantService creates an AssistantService backed by a.
func NewAssistantService(a assistant.Assistant) *AssistantService {
	return &AssistantService{assistant: a}
}

// SendMessage forwards the conversation to the assistant and returns its reply.
func (s *AssistantService) SendMessage(ctx context.Context, req *connect.Request[api.SendMessageRequest]) (*connect.Response[api.SendMessageResponse], error) {
	if strings.TrimSpace(req.Msg.Message) == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, assistant.ErrEmptyMessage)
	}

	history, err := toChatHistory(req.Msg.History)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}

	reply, err := s.assistant.SendMessage(ctx, history, req.Msg.Message)
	if err != nil {
		slog.Error("Assistant request failed", "user_id", middleware.GetUserID(ctx), "error", err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, connect.NewError(connect.CodeDeadlineExceeded, err)
		}
		return nil, connect.NewError(connect.CodeUnavailable, fmt.Errorf("could not reach the tax assistant"))
	}

	return connect.NewResponse(&api.SendMessageResponse{Reply: reply}), nil
}
