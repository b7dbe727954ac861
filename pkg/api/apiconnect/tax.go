package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/naijatax/pkg/api"
)

const TaxServiceName = "naijatax.v1.TaxService"

const (
	TaxServiceCalculateProcedure         = "/naijatax.v1.TaxService/Calculate"
	TaxServiceGetBandsProcedure          = "/naijatax.v1.TaxService/GetBands"
	TaxServiceGetTipsProcedure           = "/naijatax.v1.TaxService/GetTips"
	TaxServiceExportCalculationProcedure = "/naijatax.v1.TaxService/ExportCalculation"
)

type TaxServiceHandler interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	GetBands(context.Context, *connect.Request[api.GetBandsRequest]) (*connect.Response[api.GetBandsResponse], error)
	GetTips(context.Context, *connect.Request[api.GetTipsRequest]) (*connect.Response[api.GetTipsResponse], error)
	ExportCalculation(context.Context, *connect.Request[api.ExportCalculationRequest]) (*connect.Response[api.ExportCalculationResponse], error)
}

// NewTaxServiceHandler returns the mount path and handler for svc.
func NewTaxServiceHandler(svc TaxServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(TaxServiceCalculateProcedure, connect.NewUnaryHandler(TaxServiceCalculateProcedure, svc.Calculate, opts...))
	mux.Handle(TaxServiceGetBandsProcedure, connect.NewUnaryHandler(TaxServiceGetBandsProcedure, svc.GetBands, opts...))
	mux.Handle(TaxServiceGetTipsProcedure, connect.NewUnaryHandler(TaxServiceGetTipsProcedure, svc.GetTips, opts...))
	mux.Handle(TaxServiceExportCalculationProcedure, connect.NewUnaryHandler(TaxServiceExportCalculationProcedure, svc.ExportCalculation, opts...))
	return "/" + TaxServiceName + "/", mux
}

type TaxServiceClient interface {
	Calculate(context.Context, *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error)
	GetBands(context.Context, *connect.Request[api.GetBandsRequest]) (*connect.Response[api.GetBandsResponse], error)
	GetTips(context.Context, *connect.Request[api.GetTipsRequest]) (*connect.Response[api.GetTipsResponse], error)
	ExportCalculation(context.Context, *connect.Request[api.ExportCalculationRequest]) (*connect.Response[api.ExportCalculationResponse], error)
}

func NewTaxServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TaxServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &taxServiceClient{
		calculate:         connect.NewClient[api.CalculateRequest, api.CalculateResponse](httpClient, baseURL+TaxServiceCalculateProcedure, opts...),
		getBands:          connect.NewClient[api.GetBandsRequest, api.GetBandsResponse](httpClient, baseURL+TaxServiceGetBandsProcedure, opts...),
		getTips:           connect.NewClient[api.GetTipsRequest, api.GetTipsResponse](httpClient, baseURL+TaxServiceGetTipsProcedure, opts...),
		exportCalculation: connect.NewClient[api.ExportCalculationRequest, api.ExportCalculationResponse](httpClient, baseURL+TaxServiceExportCalculationProcedure, opts...),
	}
}

type taxServiceClient struct {
	calculate         *connect.Client[api.CalculateRequest, api.CalculateResponse]
	getBands          *connect.Client[api.GetBandsRequest, api.GetBandsResponse]
	getTips           *connect.Client[api.GetTipsRequest, api.GetTipsResponse]
	exportCalculation *connect.Client[api.ExportCalculationRequest, api.ExportCalculationResponse]
}

func (c *taxServiceClient) Calculate(ctx context.Context, req *connect.Request[api.CalculateRequest]) (*connect.Response[api.CalculateResponse], error) {
	return c.calculate.CallUnary(ctx, req)
}

func (c *taxServiceClient) GetBands(ctx context.Context, req *connect.Request[api.GetBandsRequest]) (*connect.Response[api.GetBandsResponse], error) {
	return c.getBands.CallUnary(ctx, req)
}

func (c *taxServiceClient) GetTips(ctx context.Context, req *connect.Request[api.GetTipsRequest]) (*connect.Response[api.GetTipsResponse], error) {
	return c.getTips.CallUnary(ctx, req)
}

func (c *taxServiceClient) ExportCalculation(ctx context.Context, req *connect.Request[api.ExportCalculationRequest]) (*connect.Response[api.ExportCalculationResponse], error) {
	return c.exportCalculation.CallUnary(ctx, req)
}
