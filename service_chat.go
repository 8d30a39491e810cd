package fobini

import "context"

// ChatService talks to the backend AI service about a tracked phobia.
type ChatService struct {
	client *Client
}

// NewChatService creates a ChatService over the given client.
func NewChatService(client *Client) *ChatService {
	return &ChatService{client: client}
}

// SendMessage sends one message and returns the AI reply.
func (c *ChatService) SendMessage(ctx context.Context, userPhobiaID, message string) (string, error) {
	var resp sendMessageResponse
	req := SendMessageRequest{UserPhobiaID: userPhobiaID, Message: message}
	if err := c.client.Do(ctx, endpointSendMessage(req), &resp); err != nil {
		return "", err
	}
	return resp.Data.Reply, nil
}

// GetChatHistory returns one page of the conversation for a tracked phobia.
func (c *ChatService) GetChatHistory(ctx context.Context, userPhobiaID string, opts PageOptions) (*ChatHistoryPage, error) {
	var resp chatHistoryResponse
	if err := c.client.Do(ctx, endpointChatHistory(userPhobiaID, opts), &resp); err != nil {
		return nil, err
	}
	return &ChatHistoryPage{Messages: resp.Data, Meta: resp.Meta}, nil
}
