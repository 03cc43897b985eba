package domain

import "time"

type Slang struct {
	ID         string
	Term       string
	Definition string
	Context    string
	Origin     string
	Likes      int
	UserID     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SlangWithSubmitter is a slang row joined with its submitter's public fields.
type SlangWithSubmitter struct {
	Slang
	SubmitterUsername string
	SubmitterRole     string
}
