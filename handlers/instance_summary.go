package handlers

import (
	"net/http"

	"code.cloudfoundry.org/service-instance-manager/api"
	"code.cloudfoundry.org/service-instance-manager/store"
	"github.com/tedsuo/rata"
)

//counterfeiter:generate -o fakes/instance_getter.go --fake-name InstanceGetter . instanceGetter
type instanceGetter interface {
	ByGUID(guid string) (store.ServiceInstance, error)
}

//counterfeiter:generate -o fakes/summary_mapper.go --fake-name SummaryMapper . summaryMapper
type summaryMapper interface {
	Summary(instance store.ServiceInstance, plan store.ServicePlan) (api.InstanceSummary, error)
	AsBytes(summary api.InstanceSummary) ([]byte, error)
}

type InstanceSummary struct {
	Store         instanceGetter
	Plans         planCatalog
	Mapper        summaryMapper
	ErrorResponse errorResponse
}

func (h *InstanceSummary) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("instance-summary")

	guid := rata.Param(req, "guid")

	instance, err := h.Store.ByGUID(guid)
	if err != nil {
		if notFound, ok := err.(store.InstanceNotFoundError); ok {
			h.ErrorResponse.NotFound(logger, w, notFound, notFound.Error())
			return
		}
		h.ErrorResponse.InternalServerError(logger, w, err, "failed reading service instance")
		return
	}

	plan, err := h.Plans.PlanByGUID(instance.PlanGUID)
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "failed resolving service plan")
		return
	}

	summary, err := h.Mapper.Summary(instance, plan)
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "failed building summary")
		return
	}

	responseBytes, err := h.Mapper.AsBytes(summary)
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "failed marshaling summary")
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(responseBytes)
}
