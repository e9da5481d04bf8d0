package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/service-instance-manager/handlers"
	"code.cloudfoundry.org/service-instance-manager/handlers/fakes"
	"code.cloudfoundry.org/service-instance-manager/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("InstancesDelete", func() {
	var (
		handler       *handlers.InstancesDelete
		destroyer     *fakes.InstanceDestroyer
		errorResponse *fakes.ErrorResponse
		logger        *lagertest.TestLogger
		resp          *httptest.ResponseRecorder
		request       *http.Request
	)

	BeforeEach(func() {
		destroyer = &fakes.InstanceDestroyer{}
		errorResponse = &fakes.ErrorResponse{}
		logger = lagertest.NewTestLogger("test")
		resp = httptest.NewRecorder()

		handler = &handlers.InstancesDelete{
			Destroyer:     destroyer,
			ErrorResponse: errorResponse,
		}

		var err error
		request, err = http.NewRequest("DELETE", "/v2/service_instances/instance-guid?:guid=instance-guid", nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("destroys the instance and responds 204", func() {
		MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

		Expect(destroyer.DestroyCallCount()).To(Equal(1))
		Expect(destroyer.DestroyArgsForCall(0)).To(Equal("instance-guid"))
		Expect(resp.Code).To(Equal(http.StatusNoContent))
	})

	Context("when the instance does not exist", func() {
		BeforeEach(func() {
			destroyer.DestroyReturns(store.InstanceNotFoundError{GUID: "instance-guid"})
		})

		It("responds not found", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(errorResponse.NotFoundCallCount()).To(Equal(1))
			_, _, err, description := errorResponse.NotFoundArgsForCall(0)
			Expect(err).To(BeAssignableToTypeOf(store.InstanceNotFoundError{}))
			Expect(description).To(Equal("service instance instance-guid not found"))
		})
	})

	Context("when the destroy fails", func() {
		BeforeEach(func() {
			destroyer.DestroyReturns(errors.New("disk on fire"))
		})

		It("responds internal server error", func() {
			MakeRequestWithLogger(handler.ServeHTTP, resp, request, logger)

			Expect(errorResponse.InternalServerErrorCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.InternalServerErrorArgsForCall(0)
			Expect(description).To(Equal("failed deleting service instance"))
		})
	})
})
