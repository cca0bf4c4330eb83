// Package validate implements schema-driven request validation.
//
// A Schema declares per-field constraints for the three parts of a request
// (path params, query params, JSON body). One generic interpreter walks
// every declared field: it coerces raw text values, applies defaults, runs
// rule tags through go-playground/validator, and aggregates every violation
// across all parts before answering 400. Parts that pass are attached to
// the gin context for the handler to consume, even when another part fails.
package validate

import (
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Context keys under which normalized values are attached, one per request part.
const (
	paramsKey = "validated_params"
	queryKey  = "validated_query"
	bodyKey   = "validated_body"
)

// Kind selects the normalized type a field coerces to.
type Kind int

const (
	String Kind = iota
	Int
)

// Field declares the constraints for one request field. Constraints are
// data, not code: the same interpreter applies every field.
type Field struct {
	// Name is the path parameter, query parameter or body key.
	Name string

	// Kind selects the coercion applied to the raw value. Int fields
	// arriving as text must parse as base-10 integers.
	Kind Kind

	// Required rejects the request when the field is absent.
	Required bool

	// Default is attached in place of an absent optional field. It must
	// already have the field's normalized type (int64 or string).
	Default any

	// Rules is a go-playground/validator tag expression evaluated against
	// the normalized value, e.g. "min=1,max=100" or "oneof=asc desc".
	Rules string

	// Pattern, when set, must match the raw text value before coercion.
	Pattern *regexp.Regexp
}

// Schema groups field constraints by request part. Empty parts are skipped.
type Schema struct {
	Params []Field
	Query  []Field
	Body   []Field
}

// Violation is a single validation failure reported to the client.
// Field is a dotted path into the failing part ("query.page"), or
// "unknown" when the failure cannot be pinned to a field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorBody is the 400 payload produced on validation failure.
type ErrorBody struct {
	Error   string      `json:"error"`
	Details []Violation `json:"details"`
}

// rules is the shared tag interpreter. It is safe for concurrent use.
var rules = validator.New()

// Middleware returns a gin middleware enforcing the schema. On success the
// normalized values of each part are attached to the context; on any
// violation the request is rejected with 400 and an itemized details list.
func Middleware(schema Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		var details []Violation

		if len(schema.Params) > 0 {
			values, part := checkPart("params", schema.Params, func(name string) (any, bool) {
				v := c.Param(name)
				return v, v != ""
			})
			if len(part) == 0 {
				c.Set(paramsKey, values)
			}
			details = append(details, part...)
		}

		if len(schema.Query) > 0 {
			values, part := checkPart("query", schema.Query, func(name string) (any, bool) {
				v, ok := c.GetQuery(name)
				return v, ok
			})
			if len(part) == 0 {
				c.Set(queryKey, values)
			}
			details = append(details, part...)
		}

		if len(schema.Body) > 0 {
			var raw map[string]any
			if err := c.ShouldBindJSON(&raw); err != nil {
				details = append(details, Violation{Field: "unknown", Message: "must be a JSON object"})
			} else {
				values, part := checkPart("body", schema.Body, func(name string) (any, bool) {
					v, ok := raw[name]
					if v == nil {
						// JSON null counts as absent.
						return nil, false
					}
					return v, ok
				})
				if len(part) == 0 {
					c.Set(bodyKey, values)
				}
				details = append(details, part...)
			}
		}

		if len(details) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{
				Error:   "Validation failed",
				Details: details,
			})
			return
		}

		c.Next()
	}
}

// checkPart interprets the field constraints of one request part against a
// lookup into its raw values. It returns the normalized values and every
// violation found; it never stops at the first failure.
func checkPart(part string, fields []Field, get func(name string) (any, bool)) (map[string]any, []Violation) {
	values := make(map[string]any, len(fields))
	var details []Violation

	for _, f := range fields {
		raw, ok := get(f.Name)
		if !ok {
			if f.Required {
				details = append(details, Violation{Field: part + "." + f.Name, Message: "is required"})
			} else if f.Default != nil {
				values[f.Name] = f.Default
			}
			continue
		}

		v, msg := f.normalize(raw)
		if msg == "" && f.Rules != "" {
			if err := rules.Var(v, f.Rules); err != nil {
				msg = f.ruleMessage(err)
			}
		}
		if msg != "" {
			details = append(details, Violation{Field: part + "." + f.Name, Message: msg})
			continue
		}
		values[f.Name] = v
	}

	return values, details
}

// normalize coerces a raw value to the field's kind. Text sources deliver
// strings; JSON bodies may deliver any JSON type, so numbers arrive as
// float64.
func (f Field) normalize(raw any) (any, string) {
	switch f.Kind {
	case Int:
		s, ok := raw.(string)
		if !ok {
			n, isNum := raw.(float64)
			if !isNum || n != math.Trunc(n) {
				return nil, "must be an integer"
			}
			return int64(n), ""
		}
		if f.Pattern != nil && !f.Pattern.MatchString(s) {
			return nil, "must be an integer"
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, "must be an integer"
		}
		return n, ""

	default:
		s, ok := raw.(string)
		if !ok {
			return nil, "must be a string"
		}
		if f.Pattern != nil && !f.Pattern.MatchString(s) {
			return nil, "has an invalid format"
		}
		return s, ""
	}
}

// ruleMessage converts the first validator failure into a client message.
func (f Field) ruleMessage(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "is invalid"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "min":
		if f.Kind == String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if f.Kind == String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	default:
		return "is invalid"
	}
}
