// Package bridge is the client side of the agent's local message bridge.
package bridge

import (
	"context"
	"log/slog"
	"time"

	"automarket/config"
	"automarket/internal/domain/constants"
	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	"automarket/internal/domain/service"
	"automarket/internal/errors"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
)

const messagesPath = "/messages"

// Params holds dependencies for the bridge client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type errorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

type envelope struct {
	Success bool               `json:"success"`
	Code    int                `json:"code"`
	Message string             `json:"message"`
	Data    *entity.AgentReply `json:"data,omitempty"`
	Error   *errorInfo         `json:"error,omitempty"`
}

type relayClient struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewRelay creates an AgentRelay talking to the bridge on the configured port
func NewRelay(params Params) service.AgentRelay {
	return newRelay(params.Config.BridgeURL(), params.Config.Backend.Timeout, params.Logger)
}

func newRelay(baseURL string, timeout time.Duration, logger *slog.Logger) *relayClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &relayClient{http: client, logger: logger}
}

// FetchOrders relays FETCH_ORDERS and returns the raw order list
func (r *relayClient) FetchOrders(ctx context.Context) ([]*entity.Order, error) {
	reply, err := r.send(ctx, &entity.AgentMessage{Type: constants.MessageFetchOrders})
	if err != nil {
		return nil, err
	}

	return reply.Orders, nil
}

// DeliverOrder relays DELIVER_ORDER for a backend order id
func (r *relayClient) DeliverOrder(ctx context.Context, orderID int64) (bool, error) {
	reply, err := r.send(ctx, &entity.AgentMessage{Type: constants.MessageDeliverOrder, OrderID: &orderID})
	if err != nil {
		return false, err
	}

	return reply.Delivered, nil
}

// ProcessMarketplaceOrder relays PROCESS_SHOPEE_ORDER with the extracted page order
func (r *relayClient) ProcessMarketplaceOrder(ctx context.Context, order *entity.MarketplaceOrder) (bool, error) {
	reply, err := r.send(ctx, &entity.AgentMessage{Type: constants.MessageProcessShopeeOrder, OrderInfo: order})
	if err != nil {
		return false, err
	}

	return reply.Delivered, nil
}

func (r *relayClient) send(ctx context.Context, message *entity.AgentMessage) (*entity.AgentReply, error) {
	var env envelope
	resp, err := r.http.R().
		SetContext(ctx).
		SetBody(message).
		SetResult(&env).
		SetError(&env).
		Post(messagesPath)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAgentUnreachable.WithDetails(err.Error()), string(message.Type))
	}

	if !env.Success {
		r.logger.Debug("[Bridge] message rejected",
			slog.String("type", string(message.Type)),
			slog.Int("status", resp.StatusCode()),
		)

		return nil, replyError(&env, resp.StatusCode())
	}

	if env.Data == nil {
		return &entity.AgentReply{}, nil
	}

	return env.Data, nil
}

func replyError(env *envelope, status int) error {
	if env.Error == nil {
		return domainerrors.NewBaseError(status, "BRIDGE_ERROR", "Agent rejected the message", env.Message)
	}

	return domainerrors.NewBaseError(status, env.Error.Code, env.Message, env.Error.Details)
}
