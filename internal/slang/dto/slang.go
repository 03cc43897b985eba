package dto

type ContributeInput struct {
	Term       string `json:"term" validate:"required,min=2"`
	Definition string `json:"definition" validate:"required"`
	Context    string `json:"context" validate:"required"`
	Origin     string `json:"origin"`
}

// SlangOutput is the projection served to clients and stored in the cache.
type SlangOutput struct {
	Term        string `json:"term"`
	Definition  string `json:"definition"`
	Context     string `json:"context"`
	Origin      string `json:"origin"`
	Likes       int    `json:"likes"`
	ID          string `json:"id"`
	SubmittedBy string `json:"submittedBy"`
	IsEnforcer  string `json:"isEnforcer"`
}
