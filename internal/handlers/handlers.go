package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// validate checks request bodies against their struct tags.
var validate = validator.New()

// ErrorResponse is the uniform error body for non-200 responses
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: user 1 not found
	Error string `json:"error"`
}

// IncorrectTokenResponse is returned when the supplied bearer token does not
// match the owner's stored token. Kept as a 200 body for compatibility with
// existing clients.
// swagger:model IncorrectTokenResponse
type IncorrectTokenResponse struct {
	// default: token
	Incorrect string `json:"incorrect"`
}

// tokenHeader is the request header carrying the owner's bearer token.
const tokenHeader = "token"

// urlParamID parses the named chi URL parameter as an id.
func urlParamID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}
