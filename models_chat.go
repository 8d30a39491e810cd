package fobini

// SendMessageRequest is the payload for sending a chat message about a
// tracked phobia to the backend AI service.
type SendMessageRequest struct {
	UserPhobiaID string `json:"userPhobiaId" validate:"required"`
	Message      string `json:"message" validate:"required"`
}

type sendMessageResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Reply string `json:"reply"`
	} `json:"data"`
}

// ChatMessage is one turn of a chat conversation. Role is "user" for the
// person and "model" for the AI reply.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// ChatMeta is the pagination envelope used by the chat history endpoint.
// Field names differ from PaginationMeta on the wire.
type ChatMeta struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
}

// ChatHistoryPage is one page of chat history.
type ChatHistoryPage struct {
	Messages []ChatMessage
	Meta     ChatMeta
}

type chatHistoryResponse struct {
	Success bool          `json:"success"`
	Data    []ChatMessage `json:"data"`
	Meta    ChatMeta      `json:"meta"`
}
