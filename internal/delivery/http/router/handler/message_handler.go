// Package handler holds the bridge endpoints.
package handler

import (
	"log/slog"

	deliverycontext "automarket/internal/delivery/context"
	"automarket/internal/delivery/http/response"
	"automarket/internal/domain/constants"
	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	"automarket/internal/domain/service"
	"automarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MessageHandlerParams holds dependencies for MessageHandler, injected by Fx.
type MessageHandlerParams struct {
	fx.In

	OrderUC  usecase.OrderUsecase
	Recorder service.ActivityRecorder
	Logger   *slog.Logger
}

// MessageHandler dispatches typed agent messages
type MessageHandler struct {
	orderUC  usecase.OrderUsecase
	recorder service.ActivityRecorder
	logger   *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler
func NewMessageHandler(params MessageHandlerParams) *MessageHandler {
	return &MessageHandler{
		orderUC:  params.OrderUC,
		recorder: params.Recorder,
		logger:   params.Logger,
	}
}

// HandleMessage handles POST /messages
func (h *MessageHandler) HandleMessage(c echo.Context) error {
	var msg entity.AgentMessage
	if err := c.Bind(&msg); err != nil {
		return response.InvalidBody(c, err)
	}

	if err := c.Validate(&msg); err != nil {
		return response.HandleAppError(c, err)
	}

	logger := deliverycontext.Logger(c.Request().Context(), h.logger)
	logger.Debug("[Bridge] Message received", slog.String("type", string(msg.Type)))

	reply, err := h.dispatch(c, &msg)
	h.recorder.BridgeMessage(string(msg.Type), err == nil)
	if err != nil {
		logger.Warn("[Bridge] Message failed",
			slog.String("type", string(msg.Type)),
			slog.Any("error", err),
		)

		return response.HandleAppError(c, err)
	}

	return response.Reply(c, msg.Type, reply)
}

func (h *MessageHandler) dispatch(c echo.Context, msg *entity.AgentMessage) (*entity.AgentReply, error) {
	ctx := c.Request().Context()

	switch msg.Type {
	case constants.MessageFetchOrders:
		return &entity.AgentReply{Orders: h.orderUC.FetchOrders(ctx)}, nil

	case constants.MessageDeliverOrder:
		if msg.OrderID == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("order_id is required")
		}

		return &entity.AgentReply{Delivered: h.orderUC.DeliverOrder(ctx, *msg.OrderID)}, nil

	case constants.MessageProcessShopeeOrder:
		if msg.OrderInfo == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("order_info is required")
		}

		delivered, err := h.orderUC.ProcessMarketplaceOrder(ctx, msg.OrderInfo)
		if err != nil {
			return nil, err
		}

		return &entity.AgentReply{Delivered: delivered}, nil

	default:
		return nil, domainerrors.ErrUnknownMessage.WithDetails(string(msg.Type))
	}
}
