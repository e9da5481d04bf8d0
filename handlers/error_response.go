package handlers

import (
	"net/http"

	"code.cloudfoundry.org/lager/v3"
)

//counterfeiter:generate -o fakes/error_response.go --fake-name ErrorResponse . errorResponse
type errorResponse interface {
	InternalServerError(lager.Logger, http.ResponseWriter, error, string)
	BadRequest(lager.Logger, http.ResponseWriter, error, string)
	Forbidden(lager.Logger, http.ResponseWriter, error, string)
	Unauthorized(lager.Logger, http.ResponseWriter, error, string)
	NotFound(lager.Logger, http.ResponseWriter, error, string)
	Conflict(lager.Logger, http.ResponseWriter, error, string)
}
