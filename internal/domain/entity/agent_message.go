package entity

import "automarket/internal/domain/constants"

// AgentMessage is a request sent to the running agent over the local bridge.
type AgentMessage struct {
	Type      constants.MessageType `json:"type" validate:"required"`
	OrderID   *int64                `json:"order_id,omitempty" validate:"omitempty,gt=0"`
	OrderInfo *MarketplaceOrder     `json:"order_info,omitempty"`
}

// AgentReply is the payload of a successful bridge response.
type AgentReply struct {
	Orders    []*Order `json:"orders,omitempty"`
	Delivered bool     `json:"delivered,omitempty"`
}
