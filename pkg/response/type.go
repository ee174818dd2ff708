package response

// Detail is the error body the wardrobe backend sends: a plain message or a
// list of field failures.
type Detail struct {
	Detail any `json:"detail"`
}

// FieldError is one entry of a 422 validation body.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

const (
	MessageNotAuthenticated = "Not authenticated"
	MessageInvalidToken     = "Could not validate credentials"
	MessageInternal         = "Internal server error"
)
