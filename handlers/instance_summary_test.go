package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/service-instance-manager/api"
	"code.cloudfoundry.org/service-instance-manager/handlers"
	"code.cloudfoundry.org/service-instance-manager/handlers/fakes"
	"code.cloudfoundry.org/service-instance-manager/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("InstanceSummary", func() {
	var (
		handler       *handlers.InstanceSummary
		instanceStore *fakes.InstanceGetter
		plans         *fakes.PlanCatalog
		mapper        *fakes.SummaryMapper
		errorResponse *fakes.ErrorResponse
		logger        *lagertest.TestLogger
		resp          *httptest.ResponseRecorder
		request       *http.Request
		instance      store.ServiceInstance
		plan          store.ServicePlan
		summary       api.InstanceSummary
	)

	BeforeEach(func() {
		instanceStore = &fakes.InstanceGetter{}
		plans = &fakes.PlanCatalog{}
		mapper = &fakes.SummaryMapper{}
		errorResponse = &fakes.ErrorResponse{}
		logger = lagertest.NewTestLogger("test")
		resp = httptest.NewRecorder()

		handler = &handlers.InstanceSummary{
			Store:         instanceStore,
			Plans:         plans,
			Mapper:        mapper,
			ErrorResponse: errorResponse,
		}

		instance = store.ServiceInstance{GUID: "instance-guid", Name: "my-instance", PlanGUID: "plan-guid"}
		plan = store.ServicePlan{GUID: "plan-guid", Name: "gold"}
		summary = api.InstanceSummary{GUID: "instance-guid", Name: "my-instance", BoundAppCount: 3}

		instanceStore.ByGUIDReturns(instance, nil)
		plans.PlanByGUIDReturns(plan, nil)
		mapper.SummaryReturns(summary, nil)
		mapper.AsBytesReturns([]byte(`{"guid":"instance-guid"}`), nil)

		var err error
		request, err = http.NewRequest("GET", "/v2/service_instances/instance-guid/summary?:guid=instance-guid", nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("serves the summary for the instance", func() {
		MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

		Expect(instanceStore.ByGUIDCallCount()).To(Equal(1))
		Expect(instanceStore.ByGUIDArgsForCall(0)).To(Equal("instance-guid"))

		Expect(plans.PlanByGUIDCallCount()).To(Equal(1))
		Expect(plans.PlanByGUIDArgsForCall(0)).To(Equal("plan-guid"))

		Expect(mapper.SummaryCallCount()).To(Equal(1))
		passedInstance, passedPlan := mapper.SummaryArgsForCall(0)
		Expect(passedInstance).To(Equal(instance))
		Expect(passedPlan).To(Equal(plan))

		Expect(resp.Code).To(Equal(http.StatusOK))
		Expect(resp.Body.String()).To(MatchJSON(`{"guid":"instance-guid"}`))
	})

	Context("when the instance does not exist", func() {
		BeforeEach(func() {
			instanceStore.ByGUIDReturns(store.ServiceInstance{}, store.InstanceNotFoundError{GUID: "instance-guid"})
		})

		It("responds not found", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(errorResponse.NotFoundCallCount()).To(Equal(1))
			Expect(mapper.SummaryCallCount()).To(Equal(0))
		})
	})

	Context("when reading the instance fails", func() {
		BeforeEach(func() {
			instanceStore.ByGUIDReturns(store.ServiceInstance{}, errors.New("db down"))
		})

		It("responds internal server error", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(errorResponse.InternalServerErrorCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.InternalServerErrorArgsForCall(0)
			Expect(description).To(Equal("failed reading service instance"))
		})
	})

	Context("when the plan cannot be resolved", func() {
		BeforeEach(func() {
			plans.PlanByGUIDReturns(store.ServicePlan{}, errors.New("unknown plan"))
		})

		It("responds internal server error", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(errorResponse.InternalServerErrorCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.InternalServerErrorArgsForCall(0)
			Expect(description).To(Equal("failed resolving service plan"))
		})
	})

	Context("when building the summary fails", func() {
		BeforeEach(func() {
			mapper.SummaryReturns(api.InstanceSummary{}, errors.New("banana"))
		})

		It("responds internal server error", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(errorResponse.InternalServerErrorCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.InternalServerErrorArgsForCall(0)
			Expect(description).To(Equal("failed building summary"))
		})
	})

	Context("when marshaling the summary fails", func() {
		BeforeEach(func() {
			mapper.AsBytesReturns(nil, errors.New("banana"))
		})

		It("responds internal server error", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(errorResponse.InternalServerErrorCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.InternalServerErrorArgsForCall(0)
			Expect(description).To(Equal("failed marshaling summary"))
		})
	})
})
