package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	"github.com/mmynk/naijatax/internal/middleware"
	"github.com/mmynk/naijatax/internal/models"
	"github.com/mmynk/naijatax/internal/report"
	"github.com/mmynk/naijatax/internal/storage"
	"github.com/mmynk/naijatax/pkg/api"
	"github.com/mmynk/naijatax/pkg/api/apiconnect"
)

var _ apiconnect.HistoryServiceHandler = (*HistoryService)(nil)

// HistoryService implements the Connect HistoryService. Every call is scoped
// to the authenticated user.
type HistoryService struct {
	engine *Engine
	store  storage.HistoryStore
	now    func() time.Time
}

// NewHistoryService creates a HistoryService.
func NewHistoryService(engine *Engine, store storage.HistoryStore) *HistoryService {
	return &HistoryService{
		engine: engine,
		store:  store,
		now:    time.Now,
	}
}

func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("authentication required"))
	}
	return userID, nil
}

// storageError maps storage errors to Connect codes.
func storageError(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// ListHistory returns the caller's saved calculations, newest first, at most
// models.HistoryPageSize at a time.
func (s *HistoryService) ListHistory(ctx context.Context, req *connect.Request[api.ListHistoryRequest]) (*connect.Response[api.ListHistoryResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.Limit < 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("limit must not be negative"))
	}

	limit := req.Msg.Limit
	if limit == 0 || limit > models.HistoryPageSize {
		limit = models.HistoryPageSize
	}

	records, err := s.store.ListHistory(ctx, userID, limit)
	if err != nil {
		slog.Error("ListHistory failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.ListHistoryResponse{
		Records: lo.Map(records, toAPIRecord),
	}), nil
}

// GetHistoryRecord returns one saved calculation with its breakdown
// recomputed against the current band table.
func (s *HistoryService) GetHistoryRecord(ctx context.Context, req *connect.Request[api.GetHistoryRecordRequest]) (*connect.Response[api.GetHistoryRecordResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("id is required"))
	}

	record, err := s.store.GetHistoryRecord(ctx, userID, req.Msg.ID)
	if err != nil {
		slog.Debug("GetHistoryRecord failed", "user_id", userID, "record_id", req.Msg.ID, "error", err)
		return nil, storageError(err)
	}

	return connect.NewResponse(&api.GetHistoryRecordResponse{
		Record: toAPIRecord(record, 0),
		Result: toAPIResult(s.engine.Calculate(ctx, record.Inputs)),
	}), nil
}

// DeleteHistoryRecord removes one saved calculation.
func (s *HistoryService) DeleteHistoryRecord(ctx context.Context, req *connect.Request[api.DeleteHistoryRecordRequest]) (*connect.Response[api.DeleteHistoryRecordResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("id is required"))
	}

	if err := s.store.DeleteHistoryRecord(ctx, userID, req.Msg.ID); err != nil {
		slog.Debug("DeleteHistoryRecord failed", "user_id", userID, "record_id", req.Msg.ID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("History record deleted", "user_id", userID, "record_id", req.Msg.ID)
	return connect.NewResponse(&api.DeleteHistoryRecordResponse{}), nil
}

// ClearHistory removes every saved calculation of the caller.
func (s *HistoryService) ClearHistory(ctx context.Context, req *connect.Request[api.ClearHistoryRequest]) (*connect.Response[api.ClearHistoryResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	n, err := s.store.ClearHistory(ctx, userID)
	if err != nil {
		slog.Error("ClearHistory failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}

	slog.Info("History cleared", "user_id", userID, "deleted", n)
	return connect.NewResponse(&api.ClearHistoryResponse{Deleted: n}), nil
}

// ExportHistory returns every saved calculation of the caller as CSV.
func (s *HistoryService) ExportHistory(ctx context.Context, req *connect.Request[api.ExportHistoryRequest]) (*connect.Response[api.ExportHistoryResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.store.ListHistory(ctx, userID, 0)
	if err != nil {
		slog.Error("ExportHistory failed", "user_id", userID, "error", err)
		return nil, storageError(err)
	}

	var buf strings.Builder
	if err := report.WriteHistoryCSV(&buf, records); err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.ExportHistoryResponse{
		Filename: report.HistoryFilename(s.now()),
		CSV:      buf.String(),
	}), nil
}
