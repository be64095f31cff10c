package infinity

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/imtaco/infinity-session/internal/errors"
	"github.com/imtaco/infinity-session/internal/log"
)

const testConfPath = "/api/client/v2/conferences/meet.alice"

type recordedRequest struct {
	path   string
	header http.Header
	body   map[string]any
}

type ClientTestSuite struct {
	suite.Suite
	server   *httptest.Server
	api      ConferenceAPI
	mu       sync.Mutex
	requests []recordedRequest
	respond  func(w http.ResponseWriter, r *http.Request)
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) SetupTest() {
	s.requests = nil
	s.respond = func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"status":"success","result":true}`)
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{path: r.URL.Path, header: r.Header.Clone()}
		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.body)
		}
		s.mu.Lock()
		s.requests = append(s.requests, rec)
		s.mu.Unlock()
		s.respond(w, r)
	}))
	s.api = New(s.server.URL+"/", "meet.alice", log.NewNop(), WithTimeout(2*time.Second))
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (s *ClientTestSuite) lastRequest() recordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Require().NotEmpty(s.requests)
	return s.requests[len(s.requests)-1]
}

func (s *ClientTestSuite) TestRequestToken() {
	me := uuid.New()
	s.respond = func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"status":"success","result":{
			"token":"tok-1","expires":"120","participant_uuid":"`+me.String()+`",
			"display_name":"Alice","conference_name":"Meet","service_type":"conference",
			"role":"HOST","version":{"version_id":"36","pseudo_version":"36.0.0"},
			"chat_enabled":true}}`)
	}

	res, err := s.api.RequestToken(context.Background(), &RequestTokenRequest{DisplayName: "Alice"}, "1234")
	s.Require().NoError(err)
	s.Equal("tok-1", res.Token)
	s.Equal(120*time.Second, res.Expires.Duration())
	s.Equal(me, res.ParticipantID)
	s.Equal(RoleHost, res.Role)
	s.Equal(ServiceTypeConference, res.ServiceType)
	s.Equal(VersionID(36), res.Version.VersionID)
	s.True(res.ChatEnabled)

	req := s.lastRequest()
	s.Equal(testConfPath+"/request_token", req.path)
	s.Equal("1234", req.header.Get("pin"))
	s.Empty(req.header.Get("token"))
	s.Equal("Alice", req.body["display_name"])
	s.NotContains(req.body, "call_tag")
}

func (s *ClientTestSuite) TestRefreshTokenSendsToken() {
	s.respond = func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"status":"success","result":{"token":"tok-2","expires":60}}`)
	}

	res, err := s.api.RefreshToken(context.Background(), "tok-1")
	s.Require().NoError(err)
	s.Equal("tok-2", res.Token)
	s.Equal(time.Minute, res.Expires.Duration())

	req := s.lastRequest()
	s.Equal(testConfPath+"/refresh_token", req.path)
	s.Equal("tok-1", req.header.Get("token"))
}

func (s *ClientTestSuite) TestStatusMapping() {
	cases := []struct {
		name    string
		respond func(w http.ResponseWriter, r *http.Request)
		code    errors.Code
	}{
		{
			name: "forbidden",
			respond: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusForbidden, `{"status":"success","result":"Invalid token"}`)
			},
			code: ErrInvalidToken,
		},
		{
			name: "unknown alias",
			respond: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusNotFound, `{"status":"failed","result":"Neither conference nor gateway found"}`)
			},
			code: ErrNoSuchConference,
		},
		{
			name: "not a node",
			respond: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/html")
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte("<html>not found</html>"))
			},
			code: ErrNoSuchNode,
		},
		{
			name: "server error",
			respond: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			code: ErrIllegalState,
		},
		{
			name: "not json",
			respond: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("garbage"))
			},
			code: ErrInvalidResponse,
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.respond = tc.respond
			err := s.api.Lock(context.Background(), "tok")
			s.Require().Error(err)
			s.True(errors.Is(err, tc.code), "got %v", err)
		})
	}
}

func (s *ClientTestSuite) TestTransportFailure() {
	s.server.Close()

	err := s.api.Unlock(context.Background(), "tok")
	s.Require().Error(err)
	s.True(errors.Is(err, ErrFailedRequest))
}

func (s *ClientTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.api.Lock(ctx, "tok")
	s.Require().Error(err)
	s.True(errors.Is(err, context.Canceled))
}

func (s *ClientTestSuite) TestParticipantEndpoints() {
	id := uuid.New()
	p := s.api.Participant(id)
	s.Equal(id, p.ID())

	ctx := context.Background()
	s.Require().NoError(p.ClientMute(ctx, "tok"))
	s.Equal(testConfPath+"/participants/"+id.String()+"/client_mute", s.lastRequest().path)

	s.Require().NoError(p.Role(ctx, "tok", &RoleRequest{Role: RoleHost}))
	req := s.lastRequest()
	s.Equal(testConfPath+"/participants/"+id.String()+"/role", req.path)
	s.Equal("chair", req.body["role"])

	s.Require().NoError(p.SpotlightOn(ctx, "tok"))
	s.Equal(testConfPath+"/participants/"+id.String()+"/spotlighton", s.lastRequest().path)
}

func (s *ClientTestSuite) TestCallsAndCallEndpoints() {
	me := uuid.New()
	callID := uuid.New()
	s.respond = func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case testConfPath + "/participants/" + me.String() + "/calls":
			writeJSON(w, http.StatusOK, `{"status":"success","result":{"call_uuid":"`+callID.String()+`","sdp":"v=0 answer"}}`)
		case testConfPath + "/participants/" + me.String() + "/calls/" + callID.String() + "/dtmf":
			writeJSON(w, http.StatusOK, `{"status":"success","result":false}`)
		default:
			writeJSON(w, http.StatusOK, `{"status":"success","result":null}`)
		}
	}

	ctx := context.Background()
	p := s.api.Participant(me)
	res, err := p.Calls(ctx, "tok", &CallsRequest{CallType: CallTypeWebRTC, SDP: "v=0 offer", Present: "main"})
	s.Require().NoError(err)
	s.Equal(callID, res.CallID)
	s.Equal("v=0 answer", res.SDP)
	s.False(res.OfferIgnored)

	body := s.lastRequest().body
	s.Equal("WEBRTC", body["call_type"])
	s.Equal("main", body["present"])
	s.Equal(false, body["fecc"])

	c := p.Call(res.CallID)
	s.Require().NoError(c.Ack(ctx, "tok", &AckRequest{OfferIgnored: true}))
	body = s.lastRequest().body
	s.Equal(true, body["offer_ignored"])
	s.NotContains(body, "sdp")

	s.Require().NoError(c.Ack(ctx, "tok", nil))
	s.Nil(s.lastRequest().body)

	ok, err := c.Dtmf(ctx, "tok", &DtmfRequest{Digits: "1#"})
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ClientTestSuite) TestParticipantResponseDecoding() {
	id := uuid.New()
	var p ParticipantResponse
	err := json.Unmarshal([]byte(`{
		"uuid":"`+id.String()+`","parent_uuid":"","display_name":"Bob",
		"role":"guest","service_type":"something-new","is_muted":"YES",
		"is_client_muted":true,"is_video_muted":"NO","start_time":1700000000.5,
		"buzz_time":0,"spotlight":null}`), &p)
	s.Require().NoError(err)

	s.Equal(id, p.ID)
	s.Equal(uuid.Nil, p.ParentID.UUID)
	s.Equal(RoleGuest, p.Role)
	s.Equal(ServiceTypeUnknown, p.ServiceType)
	s.True(bool(p.AudioMuted))
	s.True(bool(p.ClientAudioMuted))
	s.False(bool(p.VideoMuted))
	s.Require().NotNil(p.StartTime.Ptr())
	s.Equal(int64(1700000000), p.StartTime.Ptr().Unix())
	s.Nil(p.BuzzTime.Ptr())
	s.Nil(p.SpotlightTime.Ptr())
}
