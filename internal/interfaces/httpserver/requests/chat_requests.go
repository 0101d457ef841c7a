package requests

// PostMessageRequest is the body of POST /v1/chat/message. Pointers distinguish a missing
// field from an empty one.
type PostMessageRequest struct {
	Message   *string `json:"message"`
	SessionID *string `json:"sessionId,omitempty"`
}

// HistoryQuery binds GET /v1/chat/history query parameters.
type HistoryQuery struct {
	SessionID string `form:"sessionId"`
}
