// Package dto contains Data Transfer Objects for HTTP responses.
//
// Request inputs arrive through the validate package rather than bound
// structs, so only response envelopes live here. Records themselves
// serialize straight from domain entities.
package dto
