package infinity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
	intotel "github.com/imtaco/infinity-session/internal/otel"
)

const (
	defaultAPITimeout = 10 * time.Second
	headerToken       = "token"
	headerPin         = "pin"
	statusSuccess     = "success"
)

var tracer = intotel.Tracer("infinity")

type Option func(*client)

// WithTimeout bounds every REST request. Zero keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithHTTPClient replaces the underlying transport, e.g. for custom TLS.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.http = resty.NewWithClient(hc).
			SetHeader("Content-Type", "application/json").
			SetTimeout(defaultAPITimeout)
	}
}

type client struct {
	http    *resty.Client
	baseURL string
	logger  *log.Logger
}

// ConferenceURL is the REST root of one conference alias on one node.
func ConferenceURL(nodeURL, alias string) string {
	return strings.TrimRight(nodeURL, "/") + "/api/client/v2/conferences/" + url.PathEscape(alias)
}

// New creates a client for the conference alias hosted on nodeURL.
func New(nodeURL, alias string, logger *log.Logger, opts ...Option) ConferenceAPI {
	if logger == nil {
		panic("logger is required")
	}
	c := &client{
		http: resty.New().
			SetHeader("Content-Type", "application/json").
			SetTimeout(defaultAPITimeout),
		baseURL: ConferenceURL(nodeURL, alias),
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func post[T any](ctx context.Context, c *client, op, path, token string, body any) (T, error) {
	return do[T](ctx, c, op, path, token, nil, body)
}

func do[T any](
	ctx context.Context,
	c *client,
	op, path, token string,
	headers map[string]string,
	body any,
) (T, error) {
	var zero T
	attrs := metric.WithAttributes(attribute.String("operation", op))

	ctx, span := intotel.StartClientSpan(ctx, tracer, "infinity."+op, attribute.String("http.path", path))
	defer span.End()

	started := time.Now()
	defer func() {
		requestDuration.Record(ctx, time.Since(started).Seconds(), attrs)
	}()
	requestsTotal.Add(ctx, 1, attrs)

	fail := func(err error) (T, error) {
		requestsFailed.Add(ctx, 1, attrs)
		intotel.RecordError(span, err)
		return zero, err
	}

	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetHeader(headerToken, token)
	}
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Post(c.baseURL + path)
	if err != nil {
		return fail(errors.Wrapf(ErrFailedRequest, err, "%s request", op))
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	if err := statusError(op, resp); err != nil {
		return fail(err)
	}

	var env envelope[T]
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return fail(errors.Wrapf(ErrInvalidResponse, err, "%s response", op))
	}
	if env.Status != statusSuccess {
		return fail(errors.Newf(ErrInvalidResponse, "%s status %q", op, env.Status))
	}
	c.logger.Debug("Infinity request done",
		log.String("op", op),
		log.Int("status", resp.StatusCode()),
		log.Duration("took", time.Since(started)))
	return env.Result, nil
}

func statusError(op string, resp *resty.Response) error {
	return StatusError(op, resp.StatusCode(), resp.Header(), resp.Body())
}

// StatusError maps a non-2xx response to an error code. A 404 with a JSON
// body comes from a node that does not know the alias; anything else is a
// node that is not an Infinity endpoint at all.
func StatusError(op string, code int, header http.Header, body []byte) error {
	status := http.StatusText(code)
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusForbidden:
		return errors.Newf(ErrInvalidToken, "%s: %d %s", op, code, status)
	case code == http.StatusNotFound:
		if isJSON(header, body) {
			return errors.Newf(ErrNoSuchConference, "%s: %d %s", op, code, status)
		}
		return errors.Newf(ErrNoSuchNode, "%s: %d %s", op, code, status)
	default:
		return errors.Newf(ErrIllegalState, "%s: %d %s", op, code, status)
	}
}

func isJSON(header http.Header, body []byte) bool {
	if strings.Contains(header.Get("Content-Type"), "json") {
		return true
	}
	return len(body) > 0 && json.Valid(body)
}

func (c *client) RequestToken(ctx context.Context, req *RequestTokenRequest, pin string) (*RequestTokenResponse, error) {
	var headers map[string]string
	if pin != "" {
		headers = map[string]string{headerPin: pin}
	}
	res, err := do[RequestTokenResponse](ctx, c, "request_token", "/request_token", "", headers, req)
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, errors.New(ErrInvalidResponse, "request_token: empty token")
	}
	return &res, nil
}

func (c *client) RefreshToken(ctx context.Context, token string) (*RefreshTokenResponse, error) {
	res, err := post[RefreshTokenResponse](ctx, c, "refresh_token", "/refresh_token", token, nil)
	if err != nil {
		return nil, err
	}
	if res.Token == "" {
		return nil, errors.New(ErrInvalidResponse, "refresh_token: empty token")
	}
	return &res, nil
}

func (c *client) ReleaseToken(ctx context.Context, token string) error {
	return c.command(ctx, "release_token", token)
}

func (c *client) Lock(ctx context.Context, token string) error {
	return c.command(ctx, "lock", token)
}

func (c *client) Unlock(ctx context.Context, token string) error {
	return c.command(ctx, "unlock", token)
}

func (c *client) MuteGuests(ctx context.Context, token string) error {
	return c.command(ctx, "muteguests", token)
}

func (c *client) UnmuteGuests(ctx context.Context, token string) error {
	return c.command(ctx, "unmuteguests", token)
}

func (c *client) SetGuestsCanUnmute(ctx context.Context, token string, req *GuestsCanUnmuteRequest) error {
	_, err := post[json.RawMessage](ctx, c, "set_guests_can_unmute", "/set_guests_can_unmute", token, req)
	return err
}

func (c *client) ClearAllBuzz(ctx context.Context, token string) error {
	return c.command(ctx, "clearallbuzz", token)
}

func (c *client) DisconnectAll(ctx context.Context, token string) error {
	return c.command(ctx, "disconnect", token)
}

func (c *client) Message(ctx context.Context, token string, req *MessageRequest) (bool, error) {
	return post[bool](ctx, c, "message", "/message", token, req)
}

func (c *client) Participant(id uuid.UUID) ParticipantAPI {
	return &participant{client: c, id: id, path: "/participants/" + id.String()}
}

// command posts a body-less conference endpoint whose result is not used.
func (c *client) command(ctx context.Context, name, token string) error {
	_, err := post[json.RawMessage](ctx, c, name, "/"+name, token, nil)
	return err
}
