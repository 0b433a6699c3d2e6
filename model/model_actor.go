package model

// Actor is the session user supplied by the calling layer. The feed never resolves identity itself.
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}
