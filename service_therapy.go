package fobini

import "context"

// TherapyService reads therapy programs and coping strategies and records
// strategy completion.
type TherapyService struct {
	client *Client
}

// NewTherapyService creates a TherapyService over the given client.
func NewTherapyService(client *Client) *TherapyService {
	return &TherapyService{client: client}
}

// GetTherapies lists therapies, optionally filtered by phobia. An empty
// phobiaID lists everything.
func (t *TherapyService) GetTherapies(ctx context.Context, phobiaID string) ([]Therapy, error) {
	var resp therapyListResponse
	if err := t.client.Do(ctx, endpointTherapyList(phobiaID), &resp); err != nil {
		return nil, err
	}
	return resp.Data.Therapies, nil
}

// GetTherapy returns the full record of one therapy.
func (t *TherapyService) GetTherapy(ctx context.Context, therapyID string) (*TherapyDetail, error) {
	var resp therapyDetailResponse
	if err := t.client.Do(ctx, endpointTherapyDetail(therapyID), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetCopingStrategies lists the strategies of a therapy.
func (t *TherapyService) GetCopingStrategies(ctx context.Context, therapyID string) ([]CopingStrategy, error) {
	var resp copingStrategyListResponse
	if err := t.client.Do(ctx, endpointCopingStrategyList(therapyID), &resp); err != nil {
		return nil, err
	}
	return resp.Data.Strategies, nil
}

// GetCopingStrategy returns one strategy with its full content.
func (t *TherapyService) GetCopingStrategy(ctx context.Context, strategyID string) (*CopingStrategy, error) {
	var resp copingStrategyDetailResponse
	if err := t.client.Do(ctx, endpointCopingStrategyDetail(strategyID), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CompleteStrategy marks a strategy as done and reports the next one.
func (t *TherapyService) CompleteStrategy(ctx context.Context, strategyID string) (*CompleteStrategyResult, error) {
	var resp completeStrategyResponse
	req := CompleteStrategyRequest{StrategyID: strategyID}
	if err := t.client.Do(ctx, endpointCompleteStrategy(req), &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// GetCompletedStrategies returns the ids of strategies already completed
// for a tracked phobia.
func (t *TherapyService) GetCompletedStrategies(ctx context.Context, userPhobiaID string) ([]string, error) {
	var resp completedStrategiesResponse
	if err := t.client.Do(ctx, endpointCompletedStrategies(userPhobiaID), &resp); err != nil {
		return nil, err
	}
	return resp.Data.CompletedStrategyIDs, nil
}
