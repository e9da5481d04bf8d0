package handlers

import (
	"net/http"

	"code.cloudfoundry.org/service-instance-manager/store"
	"github.com/tedsuo/rata"
)

//counterfeiter:generate -o fakes/instance_destroyer.go --fake-name InstanceDestroyer . instanceDestroyer
type instanceDestroyer interface {
	Destroy(guid string) error
}

type InstancesDelete struct {
	Destroyer     instanceDestroyer
	ErrorResponse errorResponse
}

func (h *InstancesDelete) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("delete-instance")

	guid := rata.Param(req, "guid")

	err := h.Destroyer.Destroy(guid)
	if err != nil {
		if notFound, ok := err.(store.InstanceNotFoundError); ok {
			h.ErrorResponse.NotFound(logger, w, notFound, notFound.Error())
			return
		}
		h.ErrorResponse.InternalServerError(logger, w, err, "failed deleting service instance")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
