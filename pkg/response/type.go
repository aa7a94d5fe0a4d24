package response

// MessageResp is the body of confirmations and most errors.
type MessageResp struct {
	Message string `json:"message"`
}

// ErrorResp is the body of errors rendered under the "error" key.
type ErrorResp struct {
	Error string `json:"error"`
}
