package handlers

import (
	"net/http"
)

//counterfeiter:generate -o fakes/database_checker.go --fake-name DatabaseChecker . databaseChecker
type databaseChecker interface {
	CheckDatabase() error
}

type Health struct {
	Store         databaseChecker
	ErrorResponse errorResponse
}

func NewHealth(store databaseChecker, errorResponse errorResponse) *Health {
	return &Health{
		Store:         store,
		ErrorResponse: errorResponse,
	}
}

func (h *Health) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("health")
	err := h.Store.CheckDatabase()
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "check database failed")
		return
	}
}
