package domain

// DefaultPage is the page applied when the list query omits one.
const DefaultPage = 1

// DefaultLimit is the page size applied when the list query omits one.
const DefaultLimit = 10

// MaxLimit caps the page size a caller may request.
const MaxLimit = 100

// DefaultSortBy is the order field applied when the list query omits one.
const DefaultSortBy = SortByID

// DefaultSortOrder is the direction applied when the list query omits one.
const DefaultSortOrder = SortDesc
