package infinity

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

type participant struct {
	client *client
	id     uuid.UUID
	path   string
}

func (p *participant) ID() uuid.UUID {
	return p.id
}

func (p *participant) Calls(ctx context.Context, token string, req *CallsRequest) (*CallsResponse, error) {
	res, err := post[CallsResponse](ctx, p.client, "calls", p.path+"/calls", token, req)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (p *participant) Call(id uuid.UUID) CallAPI {
	return &call{client: p.client, id: id, path: p.path + "/calls/" + id.String()}
}

func (p *participant) Mute(ctx context.Context, token string) error {
	return p.command(ctx, "mute", token)
}

func (p *participant) Unmute(ctx context.Context, token string) error {
	return p.command(ctx, "unmute", token)
}

func (p *participant) ClientMute(ctx context.Context, token string) error {
	return p.command(ctx, "client_mute", token)
}

func (p *participant) ClientUnmute(ctx context.Context, token string) error {
	return p.command(ctx, "client_unmute", token)
}

func (p *participant) VideoMuted(ctx context.Context, token string) error {
	return p.command(ctx, "video_muted", token)
}

func (p *participant) VideoUnmuted(ctx context.Context, token string) error {
	return p.command(ctx, "video_unmuted", token)
}

func (p *participant) TakeFloor(ctx context.Context, token string) error {
	return p.command(ctx, "take_floor", token)
}

func (p *participant) ReleaseFloor(ctx context.Context, token string) error {
	return p.command(ctx, "release_floor", token)
}

func (p *participant) Buzz(ctx context.Context, token string) error {
	return p.command(ctx, "buzz", token)
}

func (p *participant) ClearBuzz(ctx context.Context, token string) error {
	return p.command(ctx, "clearbuzz", token)
}

func (p *participant) Unlock(ctx context.Context, token string) error {
	return p.command(ctx, "unlock", token)
}

func (p *participant) Disconnect(ctx context.Context, token string) error {
	return p.command(ctx, "disconnect", token)
}

func (p *participant) Role(ctx context.Context, token string, req *RoleRequest) error {
	_, err := post[json.RawMessage](ctx, p.client, "role", p.path+"/role", token, req)
	return err
}

func (p *participant) SpotlightOn(ctx context.Context, token string) error {
	return p.command(ctx, "spotlighton", token)
}

func (p *participant) SpotlightOff(ctx context.Context, token string) error {
	return p.command(ctx, "spotlightoff", token)
}

func (p *participant) Message(ctx context.Context, token string, req *MessageRequest) (bool, error) {
	return post[bool](ctx, p.client, "participant_message", p.path+"/message", token, req)
}

func (p *participant) command(ctx context.Context, name, token string) error {
	_, err := post[json.RawMessage](ctx, p.client, name, p.path+"/"+name, token, nil)
	return err
}
