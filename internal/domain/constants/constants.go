// Package constants holds identifiers shared across layers.
package constants

// Notifier providers
const (
	NotifierProviderDesktop  = "desktop"
	NotifierProviderFirebase = "firebase"
	NotifierProviderLog      = "log"
)

// MessageType identifies a request sent to the agent bridge.
type MessageType string

// Bridge message types
const (
	MessageFetchOrders        MessageType = "FETCH_ORDERS"
	MessageDeliverOrder       MessageType = "DELIVER_ORDER"
	MessageProcessShopeeOrder MessageType = "PROCESS_SHOPEE_ORDER"
)

// Credential store keys
const (
	SettingAPIURL     = "apiUrl"
	SettingAPIKey     = "apiKey"
	SettingIsLoggedIn = "isLoggedIn"
	SettingToken      = "token"
)
