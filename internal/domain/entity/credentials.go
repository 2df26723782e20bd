// Package entity contains the core business objects of the project.
package entity

import "strings"

// LoggedInValue is the stored representation of an active login.
const LoggedInValue = "true"

// Credentials is the seller session shared by the agent, the page integration and the dashboard.
type Credentials struct {
	APIURL     string `json:"api_url"`      // Base URL of the platform backend.
	APIKey     string `json:"api_key"`      // Key issued to the seller for agent calls.
	IsLoggedIn bool   `json:"is_logged_in"` // Whether the seller is connected.
	Token      string `json:"token"`        // Bearer token of the dashboard login, if any.
}

// Ready reports whether order and delivery operations may reach the network.
func (c Credentials) Ready() bool {
	return c.IsLoggedIn && strings.TrimSpace(c.APIURL) != "" && strings.TrimSpace(c.APIKey) != ""
}

// AgentSession returns the session used by agent-side calls, authenticated with the API key.
func (c Credentials) AgentSession() Session {
	return Session{BaseURL: strings.TrimRight(c.APIURL, "/"), Token: c.APIKey}
}

// DashboardSession returns the session used by dashboard calls, authenticated with the login token.
func (c Credentials) DashboardSession() Session {
	return Session{BaseURL: strings.TrimRight(c.APIURL, "/"), Token: c.Token}
}

// Session is the explicit authentication context passed into every backend call.
type Session struct {
	BaseURL string
	Token   string
}
