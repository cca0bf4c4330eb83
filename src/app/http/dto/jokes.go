package dto

import "jokesapi/src/core/domain"

// Pagination carries list paging metadata.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// JokeList is the payload for GET /jokes.
type JokeList struct {
	Data       []domain.Joke `json:"data"`
	Pagination Pagination    `json:"pagination"`
}

// JokeListFromPage shapes a domain page into the response payload.
func JokeListFromPage(p *domain.JokePage) JokeList {
	return JokeList{
		Data: p.Jokes,
		Pagination: Pagination{
			Page:       p.Page,
			Limit:      p.Limit,
			Total:      p.Total,
			TotalPages: p.TotalPages,
		},
	}
}
