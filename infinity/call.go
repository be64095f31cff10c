package infinity

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
)

type call struct {
	client *client
	id     uuid.UUID
	path   string
}

func (c *call) ID() uuid.UUID {
	return c.id
}

func (c *call) Ack(ctx context.Context, token string, req *AckRequest) error {
	// a nil request posts no body at all
	var body any
	if req != nil {
		body = req
	}
	_, err := post[json.RawMessage](ctx, c.client, "ack", c.path+"/ack", token, body)
	return err
}

func (c *call) Update(ctx context.Context, token string, req *UpdateRequest) (*UpdateResponse, error) {
	res, err := post[UpdateResponse](ctx, c.client, "update", c.path+"/update", token, req)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *call) NewCandidate(ctx context.Context, token string, req *NewCandidateRequest) error {
	_, err := post[json.RawMessage](ctx, c.client, "new_candidate", c.path+"/new_candidate", token, req)
	return err
}

func (c *call) Dtmf(ctx context.Context, token string, req *DtmfRequest) (bool, error) {
	return post[bool](ctx, c.client, "dtmf", c.path+"/dtmf", token, req)
}

func (c *call) Disconnect(ctx context.Context, token string) error {
	_, err := post[json.RawMessage](ctx, c.client, "call_disconnect", c.path+"/disconnect", token, nil)
	return err
}
