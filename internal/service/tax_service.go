package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	"github.com/mmynk/naijatax/internal/assistant"
	"github.com/mmynk/naijatax/internal/middleware"
	"github.com/mmynk/naijatax/internal/models"
	"github.com/mmynk/naijatax/internal/report"
	"github.com/mmynk/naijatax/internal/storage"
	"github.com/mmynk/naijatax/pkg/api"
	"github.com/mmynk/naijatax/pkg/api/apiconnect"
)

var _ apiconnect.TaxServiceHandler = (*TaxService)(nil)

// TaxService implements the Connect TaxService.
type TaxService struct {
	engine *Engine
	store  storage.HistoryStore
	now    func() time.Time
}

// NewTaxService creates a TaxService. Signed-in callers can save
// calculations to store.
func NewTaxService(engine *Engine, store storage.HistoryStore) *TaxService {
	return &TaxService{
		engine: engine,
		store:  store,
		now:    time.Now,
	}
}

// Calculate computes PAYE for the request inputs and optionally saves it to
// the caller's history.
func (s *TaxService) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	inputs, err := toCalculatorInputs(req.Msg.Inputs, s.now())
	if err != nil {
		slog.Debug("Calculate rejected input", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	result := s.engine.Calculate(ctx, inputs)
	resp := &api.CalculateResponse{Result: toAPIResult(result)}

	userID := middleware.GetUserID(ctx)
	if req.Msg.SaveToHistory && userID != "" {
		record := &models.HistoryRecord{
			UserID:  userID,
			Inputs:  inputs,
			Summary: models.NewHistorySummary(inputs, result),
		}
		// a failed save still returns the calculation
		if err := s.store.CreateHistoryRecord(ctx, record); err != nil {
			slog.Error("Failed to save history record", "user_id", userID, "error", err)
		} else {
			resp.HistoryRecordID = record.ID
		}
	}

	slog.Debug("Calculated PAYE",
		"monthly_gross", inputs.MonthlyGrossIncome,
		"monthly_tax", result.MonthlyTaxLiability,
		"saved", resp.HistoryRecordID != "",
	)
	return connect.NewResponse(resp), nil
}

// GetBands returns the band table in use.
func (s *TaxService) GetBands(ctx context.Context, req *connect.Request[api.GetBandsRequest]) (*connect.Response[api.GetBandsResponse], error) {
	return connect.NewResponse(&api.GetBandsResponse{
		Bands: lo.Map(s.engine.Bands(), toAPIBand),
	}), nil
}

// GetTips returns the built-in educational tips.
func (s *TaxService) GetTips(ctx context.Context, req *connect.Request[api.GetTipsRequest]) (*connect.Response[api.GetTipsResponse], error) {
	return connect.NewResponse(&api.GetTipsResponse{
		Tips: lo.Map(assistant.Tips, toAPITip),
	}), nil
}

// ExportCalculation computes the breakdown and returns it as CSV.
func (s *TaxService) ExportCalculation(ctx context.Context, req *connect.Request[api.ExportCalculationRequest]) (*connect.Response[api.ExportCalculationResponse], error) {
	inputs, err := toCalculatorInputs(req.Msg.Inputs, s.now())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	var buf strings.Builder
	if err := report.WriteResultCSV(&buf, s.engine.Calculate(ctx, inputs)); err != nil {
		slog.Error("ExportCalculation failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&api.ExportCalculationResponse{
		Filename: report.ResultFilename(inputs.Year),
		CSV:      buf.String(),
	}), nil
}
