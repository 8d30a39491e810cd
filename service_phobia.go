package fobini

import "context"

// PhobiaService reads the phobia catalog and manages the user's tracked
// phobias. Callers paginate explicitly via the options; nothing is cached
// or accumulated here.
type PhobiaService struct {
	client *Client
}

// NewPhobiaService creates a PhobiaService over the given client.
func NewPhobiaService(client *Client) *PhobiaService {
	return &PhobiaService{client: client}
}

// GetPhobias returns one page of the catalog plus the category set.
func (p *PhobiaService) GetPhobias(ctx context.Context, opts PhobiaListOptions) (*PhobiaList, error) {
	var resp phobiaListResponse
	if err := p.client.Do(ctx, endpointPhobiaList(opts), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetPhobiaDetail returns the full record for one phobia.
func (p *PhobiaService) GetPhobiaDetail(ctx context.Context, phobiaID string) (*PhobiaDetail, error) {
	var resp phobiaDetailResponse
	if err := p.client.Do(ctx, endpointPhobiaDetail(phobiaID), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateUserPhobia starts tracking a phobia for the current user.
func (p *PhobiaService) CreateUserPhobia(ctx context.Context, phobiaID string) (*UserPhobia, error) {
	var resp createUserPhobiaResponse
	req := CreateUserPhobiaRequest{PhobiaID: phobiaID}
	if err := p.client.Do(ctx, endpointCreateUserPhobia(req), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetUserPhobias returns one page of the user's tracked phobias.
func (p *PhobiaService) GetUserPhobias(ctx context.Context, opts PageOptions) ([]UserPhobiaListItem, error) {
	var resp userPhobiaListResponse
	if err := p.client.Do(ctx, endpointUserPhobiaList(opts), &resp); err != nil {
		return nil, err
	}
	return resp.Data.UserPhobias, nil
}
