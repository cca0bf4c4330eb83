package domain

import "time"

// Joke is the single persisted entity of the service.
// ID and CreatedAt are assigned by the storage engine at insert time;
// Text is never empty for a persisted record (enforced at the validation
// boundary). Records are never updated or deleted through this API.
type Joke struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Author    *string   `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// SortField enumerates the fields a joke listing may be ordered by.
type SortField string

const (
	SortByID        SortField = "id"
	SortByCreatedAt SortField = "createdAt"
	SortByText      SortField = "text"
)

// Column returns the database column backing the sort field.
func (f SortField) Column() string {
	switch f {
	case SortByCreatedAt:
		return "created_at"
	case SortByText:
		return "text"
	default:
		return "id"
	}
}

// SortOrder is the listing direction.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// JokeFilter narrows a listing. Zero values mean no constraint.
// Author and Search are substring-containment matches on the author
// and text fields; when both are set both apply.
type JokeFilter struct {
	Author string
	Search string
}

// JokeQuery describes one page of a filtered, ordered listing.
type JokeQuery struct {
	Filter JokeFilter
	SortBy SortField
	Order  SortOrder
	Offset int
	Limit  int
}

// JokePage bundles one page of jokes with its pagination metadata.
type JokePage struct {
	Jokes      []Joke
	Page       int
	Limit      int
	Total      int64
	TotalPages int64
}
