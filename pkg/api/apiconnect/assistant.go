package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/naijatax/pkg/api"
)

const AssistantServiceName = "naijatax.v1.AssistantService"

const AssistantServiceSendMessageProcedure = "/naijatax.v1.AssistantService/SendMessage"

type AssistantServiceHandler interface {
	SendMessage(context.Context, *connect.Request[api.SendMessageRequest]) (*connect.Response[api.SendMessageResponse], error)
}

func NewAssistantServiceHandler(svc AssistantServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(AssistantServiceSendMessageProcedure, connect.NewUnaryHandler(AssistantServiceSendMessageProcedure, svc.SendMessage, opts...))
	return "/" + AssistantServiceName + "/", mux
}

type AssistantServiceClient interface {
	SendMessage(context.Context, *connect.Request[api.SendMessageRequest]) (*connect.Response[api.SendMessageResponse], error)
}

func NewAssistantServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AssistantServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	return &assistantServiceClient{
		sendMessage: connect.NewClient[api.SendMessageRequest, api.SendMessageResponse](httpClient, baseURL+AssistantServiceSendMessageProcedure, clientOptions(opts)...),
	}
}

type assistantServiceClient struct {
	sendMessage *connect.Client[api.SendMessageRequest, api.SendMessageResponse]
}

func (c *assistantServiceClient) SendMessage(ctx context.Context, req *connect.Request[api.SendMessageRequest]) (*connect.Response[api.SendMessageResponse], error) {
	return c.sendMessage.CallUnary(ctx, req)
}
