package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/naijatax/pkg/api"
)

const HistoryServiceName = "naijatax.v1.HistoryService"

const (
	HistoryServiceListHistoryProcedure         = "/naijatax.v1.HistoryService/ListHistory"
	HistoryServiceGetHistoryRecordProcedure    = "/naijatax.v1.HistoryService/GetHistoryRecord"
	HistoryServiceDeleteHistoryRecordProcedure = "/naijatax.v1.HistoryService/DeleteHistoryRecord"
	HistoryServiceClearHistoryProcedure        = "/naijatax.v1.HistoryService/ClearHistory"
	HistoryServiceExportHistoryProcedure       = "/naijatax.v1.HistoryService/ExportHistory"
)

type HistoryServiceHandler interface {
	ListHistory(context.Context, *connect.Request[api.ListHistoryRequest]) (*connect.Response[api.ListHistoryResponse], error)
	GetHistoryRecord(context.Context, *connect.Request[api.GetHistoryRecordRequest]) (*connect.Response[api.GetHistoryRecordResponse], error)
	DeleteHistoryRecord(context.Context, *connect.Request[api.DeleteHistoryRecordRequest]) (*connect.Response[api.DeleteHistoryRecordResponse], error)
	ClearHistory(context.Context, *connect.Request[api.ClearHistoryRequest]) (*connect.Response[api.ClearHistoryResponse], error)
	ExportHistory(context.Context, *connect.Request[api.ExportHistoryRequest]) (*connect.Response[api.ExportHistoryResponse], error)
}

func NewHistoryServiceHandler(svc HistoryServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(HistoryServiceListHistoryProcedure, connect.NewUnaryHandler(HistoryServiceListHistoryProcedure, svc.ListHistory, opts...))
	mux.Handle(HistoryServiceGetHistoryRecordProcedure, connect.NewUnaryHandler(HistoryServiceGetHistoryRecordProcedure, svc.GetHistoryRecord, opts...))
	mux.Handle(HistoryServiceDeleteHistoryRecordProcedure, connect.NewUnaryHandler(HistoryServiceDeleteHistoryRecordProcedure, svc.DeleteHistoryRecord, opts...))
	mux.Handle(HistoryServiceClearHistoryProcedure, connect.NewUnaryHandler(HistoryServiceClearHistoryProcedure, svc.ClearHistory, opts...))
	mux.Handle(HistoryServiceExportHistoryProcedure, connect.NewUnaryHandler(HistoryServiceExportHistoryProcedure, svc.ExportHistory, opts...))
	return "/" + HistoryServiceName + "/", mux
}

type HistoryServiceClient interface {
	ListHistory(context.Context, *connect.Request[api.ListHistoryRequest]) (*connect.Response[api.ListHistoryResponse], error)
	GetHistoryRecord(context.Context, *connect.Request[api.GetHistoryRecordRequest]) (*connect.Response[api.GetHistoryRecordResponse], error)
	DeleteHistoryRecord(context.Context, *connect.Request[api.DeleteHistoryRecordRequest]) (*connect.Response[api.DeleteHistoryRecordResponse], error)
	ClearHistory(context.Context, *connect.Request[api.ClearHistoryRequest]) (*connect.Response[api.ClearHistoryResponse], error)
	ExportHistory(context.Context, *connect.Request[api.ExportHistoryRequest]) (*connect.Response[api.ExportHistoryResponse], error)
}

func NewHistoryServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) HistoryServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &historyServiceClient{
		listHistory:         connect.NewClient[api.ListHistoryRequest, api.ListHistoryResponse](httpClient, baseURL+HistoryServiceListHistoryProcedure, opts...),
		getHistoryRecord:    connect.NewClient[api.GetHistoryRecordRequest, api.GetHistoryRecordResponse](httpClient, baseURL+HistoryServiceGetHistoryRecordProcedure, opts...),
		deleteHistoryRecord: connect.NewClient[api.DeleteHistoryRecordRequest, api.DeleteHistoryRecordResponse](httpClient, baseURL+HistoryServiceDeleteHistoryRecordProcedure, opts...),
		clearHistory:        connect.NewClient[api.ClearHistoryRequest, api.ClearHistoryResponse](httpClient, baseURL+HistoryServiceClearHistoryProcedure, opts...),
		exportHistory:       connect.NewClient[api.ExportHistoryRequest, api.ExportHistoryResponse](httpClient, baseURL+HistoryServiceExportHistoryProcedure, opts...),
	}
}

type historyServiceClient struct {
	listHistory         *connect.Client[api.ListHistoryRequest, api.ListHistoryResponse]
	getHistoryRecord    *connect.Client[api.GetHistoryRecordRequest, api.GetHistoryRecordResponse]
	deleteHistoryRecord *connect.Client[api.DeleteHistoryRecordRequest, api.DeleteHistoryRecordResponse]
	clearHistory        *connect.Client[api.ClearHistoryRequest, api.ClearHistoryResponse]
	exportHistory       *connect.Client[api.ExportHistoryRequest, api.ExportHistoryResponse]
}

func (c *historyServiceClient) ListHistory(ctx context.Context, req *connect.Request[api.ListHistoryRequest]) (*connect.Response[api.ListHistoryResponse], error) {
	return c.listHistory.CallUnary(ctx, req)
}

func (c *historyServiceClient) GetHistoryRecord(ctx context.Context, req *connect.Request[api.GetHistoryRecordRequest]) (*connect.Response[api.GetHistoryRecordResponse], error) {
	return c.getHistoryRecord.CallUnary(ctx, req)
}

func (c *historyServiceClient) DeleteHistoryRecord(ctx context.Context, req *connect.Request[api.DeleteHistoryRecordRequest]) (*connect.Response[api.DeleteHistoryRecordResponse], error) {
	return c.deleteHistoryRecord.CallUnary(ctx, req)
}

func (c *historyServiceClient) ClearHistory(ctx context.Context, req *connect.Request[api.ClearHistoryRequest]) (*connect.Response[api.ClearHistoryResponse], error) {
	return c.clearHistory.CallUnary(ctx, req)
}

func (c *historyServiceClient) ExportHistory(ctx context.Context, req *connect.Request[api.ExportHistoryRequest]) (*connect.Response[api.ExportHistoryResponse], error) {
	return c.exportHistory.CallUnary(ctx, req)
}
