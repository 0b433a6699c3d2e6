package dto

import "bizfeed/model"

// Result is the reply for operations that can be refused by a business rule.
// OK is false exactly when Reason is set.
type Result struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}

// PostResult carries the post written by a create or update.
type PostResult struct {
	OK   bool       `json:"ok"`
	Post model.Post `json:"post"`
}

// ErrorResponse reports malformed requests and infrastructure failures.
type ErrorResponse struct {
	Error string `json:"error"`
}
