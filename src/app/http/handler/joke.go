// Package handler contains HTTP handlers for the API.
// Handlers are responsible for:
// - Reading normalized request values attached by the validate middleware
// - Calling use case methods
// - Converting results to HTTP responses
package handler

import (
	"log/slog"
	"regexp"

	"github.com/gin-gonic/gin"

	"jokesapi/src/app/http/dto"
	"jokesapi/src/app/http/response"
	"jokesapi/src/app/http/validate"
	"jokesapi/src/core/domain"
	"jokesapi/src/core/usecase"
)

var (
	signedDigits = regexp.MustCompile(`^-?\d+$`)
	digits       = regexp.MustCompile(`^\d+$`)
)

// Schemas for the joke endpoints, interpreted by validate.Middleware.
var (
	// GetJokeSchema checks the :id path parameter.
	GetJokeSchema = validate.Schema{
		Params: []validate.Field{
			{Name: "id", Kind: validate.Int, Required: true, Pattern: signedDigits},
		},
	}

	// ListJokesSchema checks and defaults the listing query parameters.
	ListJokesSchema = validate.Schema{
		Query: []validate.Field{
			{Name: "page", Kind: validate.Int, Default: int64(domain.DefaultPage), Pattern: digits, Rules: "min=1"},
			{Name: "limit", Kind: validate.Int, Default: int64(domain.DefaultLimit), Pattern: digits, Rules: "min=1,max=100"},
			{Name: "author", Kind: validate.String},
			{Name: "search", Kind: validate.String},
			{Name: "sortBy", Kind: validate.String, Default: string(domain.DefaultSortBy), Rules: "oneof=id createdAt text"},
			{Name: "sortOrder", Kind: validate.String, Default: string(domain.DefaultSortOrder), Rules: "oneof=asc desc"},
		},
	}

	// CreateJokeSchema checks the create payload.
	CreateJokeSchema = validate.Schema{
		Body: []validate.Field{
			{Name: "text", Kind: validate.String, Required: true, Rules: "min=1"},
			{Name: "author", Kind: validate.String},
		},
	}
)

// JokeHandler handles the /jokes endpoints.
type JokeHandler struct {
	jokeService *usecase.JokeService
	log         *slog.Logger
}

func NewJokeHandler(jokeService *usecase.JokeService, log *slog.Logger) *JokeHandler {
	return &JokeHandler{jokeService: jokeService, log: log}
}

// List returns one page of jokes with pagination metadata.
// GET /jokes
func (h *JokeHandler) List(c *gin.Context) {
	filter := domain.JokeFilter{
		Author: validate.QueryString(c, "author"),
		Search: validate.QueryString(c, "search"),
	}
	sortBy := domain.SortField(validate.QueryString(c, "sortBy"))
	order := domain.SortOrder(validate.QueryString(c, "sortOrder"))
	page := validate.QueryInt(c, "page")
	limit := validate.QueryInt(c, "limit")

	result, err := h.jokeService.List(c.Request.Context(), filter, sortBy, order, page, limit)
	if err != nil {
		response.FromStoreError(c, h.log, err)
		return
	}

	response.OK(c, dto.JokeListFromPage(result))
}

// Get returns a single joke by id.
// GET /jokes/:id
func (h *JokeHandler) Get(c *gin.Context) {
	id := validate.ParamInt(c, "id")

	joke, err := h.jokeService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromStoreError(c, h.log, err)
		return
	}
	if joke == nil {
		response.NotFound(c, "Joke not found")
		return
	}

	response.OK(c, joke)
}

// Create inserts a new joke and returns the persisted record.
// POST /jokes
func (h *JokeHandler) Create(c *gin.Context) {
	text := validate.BodyString(c, "text")
	author := validate.BodyStringOptional(c, "author")

	joke, err := h.jokeService.Create(c.Request.Context(), text, author)
	if err != nil {
		response.FromStoreError(c, h.log, err)
		return
	}

	response.Created(c, joke)
}
