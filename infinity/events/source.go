package events

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/imtaco/infinity-session/infinity"
	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
)

const (
	maxEventSize   = 1 << 20
	maxErrBodySize = 4 << 10
)

// Source opens the conference event stream (text/event-stream) and decodes
// it incrementally.
type Source struct {
	http   *resty.Client
	url    string
	logger *log.Logger
}

// NewSource creates a stream source for the conference alias on nodeURL. The
// stream is long-lived, so hc must not carry a request timeout; nil uses a
// default client.
func NewSource(nodeURL, alias string, hc *http.Client, logger *log.Logger) *Source {
	if logger == nil {
		panic("logger is required")
	}
	rc := resty.New()
	if hc != nil {
		rc = resty.NewWithClient(hc)
	}
	return &Source{
		http:   rc.SetHeader("Accept", "text/event-stream"),
		url:    infinity.ConferenceURL(nodeURL, alias) + "/events",
		logger: logger,
	}
}

// Subscribe streams decoded events into out until the server closes the
// stream (nil), the transport fails (error) or ctx is done (ctx.Err()).
func (s *Source) Subscribe(ctx context.Context, token string, out chan<- infinity.Event) error {
	resp, err := s.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetQueryParam("token", token).
		Get(s.url)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrap(infinity.ErrFailedRequest, err, "open event stream")
	}
	body := resp.RawBody()
	defer body.Close()

	if code := resp.StatusCode(); code < 200 || code >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(body, maxErrBodySize))
		return infinity.StatusError("events", code, resp.Header(), snippet)
	}

	s.logger.Debug("Event stream opened")
	err = s.read(ctx, body, out)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (s *Source) read(ctx context.Context, r io.Reader, out chan<- infinity.Event) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), maxEventSize)

	var (
		name string
		data bytes.Buffer
	)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" {
			field, value := parseLine(line)
			switch field {
			case "event":
				name = value
			case "data":
				if data.Len() > 0 {
					data.WriteByte('\n')
				}
				data.WriteString(value)
			}
			continue
		}

		// blank line dispatches
		if name == "" && data.Len() == 0 {
			continue
		}
		if name == "" {
			name = "message"
		}
		ev, err := Decode(name, data.Bytes())
		name = ""
		data.Reset()
		if err != nil {
			s.logger.Warn("Skip malformed event", log.Error(err))
			continue
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(infinity.ErrFailedRequest, err, "read event stream")
	}
	s.logger.Debug("Event stream closed by server")
	return nil
}

// parseLine splits "field: value"; lines starting with ':' are comments and
// yield an empty field.
func parseLine(line string) (string, string) {
	if strings.HasPrefix(line, ":") {
		return "", ""
	}
	field, value, found := strings.Cut(line, ":")
	if !found {
		return line, ""
	}
	return field, strings.TrimPrefix(value, " ")
}
