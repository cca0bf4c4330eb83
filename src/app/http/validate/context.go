package validate

import "github.com/gin-gonic/gin"

// part returns the normalized values attached for one request part, or nil
// when that part failed validation or was never declared.
func part(c *gin.Context, key string) map[string]any {
	if v, ok := c.Get(key); ok {
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return nil
}

// ParamInt returns the normalized integer path parameter.
func ParamInt(c *gin.Context, name string) int64 {
	v, _ := part(c, paramsKey)[name].(int64)
	return v
}

// QueryInt returns the normalized integer query parameter.
func QueryInt(c *gin.Context, name string) int {
	v, _ := part(c, queryKey)[name].(int64)
	return int(v)
}

// QueryString returns the normalized string query parameter.
func QueryString(c *gin.Context, name string) string {
	v, _ := part(c, queryKey)[name].(string)
	return v
}

// BodyString returns the normalized string body field.
func BodyString(c *gin.Context, name string) string {
	v, _ := part(c, bodyKey)[name].(string)
	return v
}

// BodyStringOptional returns the normalized string body field, or nil when
// the field was absent.
func BodyStringOptional(c *gin.Context, name string) *string {
	if v, ok := part(c, bodyKey)[name].(string); ok {
		return &v
	}
	return nil
}
