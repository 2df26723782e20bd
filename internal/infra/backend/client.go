// Package backend is the REST client for the marketplace platform backend.
package backend

import (
	"context"
	"log/slog"
	"net/http"

	"automarket/config"
	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	"automarket/internal/domain/service"
	"automarket/internal/errors"

	"github.com/go-resty/resty/v2"
	"go.uber.org/fx"
)

var (
	_ service.OrderAPI   = (*Client)(nil)
	_ service.ProductAPI = (*Client)(nil)
	_ service.AuthAPI    = (*Client)(nil)
	_ service.AgentAPI   = (*Client)(nil)
)

// Params holds dependencies for the backend client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client calls the platform backend. It keeps no session state;
// every call receives the session it authenticates with.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

// New creates a backend client with the configured timeout and user agent
func New(params Params) *Client {
	userAgent := params.Config.Backend.UserAgent
	if userAgent == "" {
		userAgent = "automarket-agent/1.0"
	}

	httpClient := resty.New().
		SetTimeout(params.Config.Backend.Timeout).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json").
		SetDebug(params.Config.Env.Debug)

	return &Client{
		http:   httpClient,
		logger: params.Logger,
	}
}

func (c *Client) request(ctx context.Context, session entity.Session) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if session.Token != "" {
		req.SetAuthToken(session.Token)
	}

	return req
}

// execute sends req and accepts any 2xx status
func (c *Client) execute(req *resty.Request, method, baseURL, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, baseURL+path)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrBackendUnavailable.WithDetails(err.Error()), "%s %s", method, path)
	}

	c.logger.Debug("[Backend] request completed",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode()),
		slog.Duration("elapsed", resp.Time()),
	)

	if !resp.IsSuccess() {
		return resp, domainerrors.NewStatusError(method, path, resp.StatusCode(), resp.String())
	}

	return resp, nil
}

// executeExact sends req and accepts only the given status
func (c *Client) executeExact(req *resty.Request, method, baseURL, path string, status int) (*resty.Response, error) {
	resp, err := c.execute(req, method, baseURL, path)
	if err != nil {
		return resp, err
	}

	if resp.StatusCode() != status {
		return resp, domainerrors.NewStatusError(method, path, resp.StatusCode(), resp.String())
	}

	return resp, nil
}

func (c *Client) get(ctx context.Context, session entity.Session, path string, result any) error {
	_, err := c.execute(c.request(ctx, session).SetResult(result), http.MethodGet, session.BaseURL, path)

	return err
}

func (c *Client) send(ctx context.Context, session entity.Session, method, path string, body, result any) error {
	req := c.request(ctx, session)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	_, err := c.execute(req, method, session.BaseURL, path)

	return err
}
