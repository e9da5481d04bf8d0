package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/service-instance-manager/handlers"
	"code.cloudfoundry.org/service-instance-manager/handlers/fakes"
	"code.cloudfoundry.org/service-instance-manager/lifecycle"
	"code.cloudfoundry.org/service-instance-manager/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BindingsCreate", func() {
	var (
		handler       *handlers.BindingsCreate
		instanceStore *fakes.InstanceGetter
		attacher      *fakes.BindingAttacher
		errorResponse *fakes.ErrorResponse
		logger        *lagertest.TestLogger
		resp          *httptest.ResponseRecorder
		request       *http.Request
		instance      store.ServiceInstance
	)

	BeforeEach(func() {
		instanceStore = &fakes.InstanceGetter{}
		attacher = &fakes.BindingAttacher{}
		errorResponse = &fakes.ErrorResponse{}
		logger = lagertest.NewTestLogger("test")
		resp = httptest.NewRecorder()

		handler = &handlers.BindingsCreate{
			Store:         instanceStore,
			Attacher:      attacher,
			Marshaler:     marshal.MarshalFunc(json.Marshal),
			Unmarshaler:   marshal.UnmarshalFunc(json.Unmarshal),
			ErrorResponse: errorResponse,
		}

		instance = store.ServiceInstance{GUID: "instance-guid", SpaceGUID: "space-guid"}
		instanceStore.ByGUIDReturns(instance, nil)
		attacher.AttachReturns(store.ServiceBinding{
			GUID:         "binding-guid",
			InstanceGUID: "instance-guid",
			AppGUID:      "app-guid",
			AppSpaceGUID: "space-guid",
		}, nil)

		body := bytes.NewBufferString(`{
			"service_instance_guid": "instance-guid",
			"app_guid": "app-guid",
			"app_space_guid": "space-guid"
		}`)
		var err error
		request, err = http.NewRequest("POST", "/v2/service_bindings", body)
		Expect(err).NotTo(HaveOccurred())
	})

	It("attaches the binding and responds 201", func() {
		MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

		Expect(instanceStore.ByGUIDCallCount()).To(Equal(1))
		Expect(instanceStore.ByGUIDArgsForCall(0)).To(Equal("instance-guid"))

		Expect(attacher.AttachCallCount()).To(Equal(1))
		passedInstance, passedBinding := attacher.AttachArgsForCall(0)
		Expect(passedInstance).To(Equal(instance))
		Expect(passedBinding).To(Equal(store.ServiceBinding{
			AppGUID:      "app-guid",
			AppSpaceGUID: "space-guid",
		}))

		Expect(resp.Code).To(Equal(http.StatusCreated))
		Expect(resp.Body.String()).To(MatchJSON(`{
			"guid": "binding-guid",
			"service_instance_guid": "instance-guid",
			"app_guid": "app-guid"
		}`))
	})

	Context("when the body is not valid JSON", func() {
		BeforeEach(func() {
			var err error
			request, err = http.NewRequest("POST", "/v2/service_bindings", bytes.NewBufferString("%%%"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("responds bad request", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(errorResponse.BadRequestCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.BadRequestArgsForCall(0)
			Expect(description).To(Equal("invalid values passed to API"))
			Expect(attacher.AttachCallCount()).To(Equal(0))
		})
	})

	Context("when the instance does not exist", func() {
		BeforeEach(func() {
			instanceStore.ByGUIDReturns(store.ServiceInstance{}, store.InstanceNotFoundError{GUID: "instance-guid"})
		})

		It("responds not found", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(errorResponse.NotFoundCallCount()).To(Equal(1))
			Expect(attacher.AttachCallCount()).To(Equal(0))
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

	Context("when the binding crosses spaces", func() {
		BeforeEach(func() {
			attacher.AttachReturns(store.ServiceBinding{}, lifecycle.ValidationErrors{
				{Code: lifecycle.BindingSpaceMismatch, Message: "app and service instance are in different spaces"},
			})
		})

		It("responds bad request", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(errorResponse.BadRequestCallCount()).To(Equal(1))
			_, _, err, _ := errorResponse.BadRequestArgsForCall(0)
			Expect(err).To(BeAssignableToTypeOf(lifecycle.ValidationErrors{}))
		})
	})

	Context("when attaching fails for another reason", func() {
		BeforeEach(func() {
			attacher.AttachReturns(store.ServiceBinding{}, errors.New("disk on fire"))
		})

		It("responds internal server error", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(errorResponse.InternalServerErrorCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.InternalServerErrorArgsForCall(0)
			Expect(description).To(Equal("failed creating service binding"))
		})
	})
})
