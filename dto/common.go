package dto

// IDResponse is returned by create endpoints.
type IDResponse struct {
	ID uint `json:"id"`
}
