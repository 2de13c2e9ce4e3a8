package model

// RequestInfo hints the next natural call a client can make.
// It is plain payload data, not a hypermedia link.
type RequestInfo struct {
	Type        string         `json:"tipo"`
	Description string         `json:"descricao"`
	URL         string         `json:"url"`
	Body        map[string]any `json:"body,omitempty"`
}

// MessageResponse is a bare message payload.
type MessageResponse struct {
	Message string `json:"mensagem"`
}

// DeletedResponse is the payload of the DELETE endpoints.
type DeletedResponse struct {
	Message string      `json:"mensagem"`
	Request RequestInfo `json:"request"`
}

// RouteErrorResponse is the catch-all payload for unmatched routes and panics.
type RouteErrorResponse struct {
	Error RouteError `json:"erro"`
}

// RouteError holds the message of a RouteErrorResponse.
type RouteError struct {
	Message string `json:"mensagem"`
}
