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
	"code.cloudfoundry.org/service-instance-manager/uaa_client"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("InstancesCreate", func() {
	var (
		handler       *handlers.InstancesCreate
		creator       *fakes.InstanceCreator
		spaces        *fakes.SpaceGetter
		tokens        *fakes.TokenSource
		plans         *fakes.PlanCatalog
		errorResponse *fakes.ErrorResponse
		logger        *lagertest.TestLogger
		resp          *httptest.ResponseRecorder
		request       *http.Request
		tokenData     uaa_client.CheckTokenResponse
		space         store.Space
		plan          store.ServicePlan
	)

	BeforeEach(func() {
		creator = &fakes.InstanceCreator{}
		spaces = &fakes.SpaceGetter{}
		tokens = &fakes.TokenSource{}
		plans = &fakes.PlanCatalog{}
		errorResponse = &fakes.ErrorResponse{}
		logger = lagertest.NewTestLogger("test")
		resp = httptest.NewRecorder()

		handler = &handlers.InstancesCreate{
			Creator:       creator,
			Spaces:        spaces,
			Tokens:        tokens,
			Plans:         plans,
			Marshaler:     marshal.MarshalFunc(json.Marshal),
			Unmarshaler:   marshal.UnmarshalFunc(json.Unmarshal),
			ErrorResponse: errorResponse,
		}

		space = store.Space{
			GUID: "space-guid",
			Name: "my-space",
			Organization: store.Organization{
				GUID:                          "org-guid",
				ServiceInstanceQuotaRemaining: true,
				PaidServicesAllowed:           true,
			},
		}
		plan = store.ServicePlan{GUID: "plan-guid", Name: "gold"}

		tokens.GetTokenReturns("cc-token", nil)
		spaces.GetSpaceReturns(&space, nil)
		plans.PlanByGUIDReturns(plan, nil)
		creator.CreateReturns(store.ServiceInstance{
			GUID:        "instance-guid",
			Name:        "my-instance",
			SpaceGUID:   "space-guid",
			PlanGUID:    "plan-guid",
			GatewayName: "svc-123",
		}, nil)

		tokenData = uaa_client.CheckTokenResponse{
			UserID:   "user-guid",
			UserName: "dev",
			Email:    "dev@example.com",
			Scope:    []string{"cloud_controller.admin"},
		}

		body := bytes.NewBufferString(`{
			"name": "my-instance",
			"space_guid": "space-guid",
			"service_plan_guid": "plan-guid"
		}`)
		var err error
		request, err = http.NewRequest("POST", "/v2/service_instances", body)
		Expect(err).NotTo(HaveOccurred())
	})

	It("creates the instance and responds 201", func() {
		MakeRequestWithLoggerAndAuth(handler.ServeHTTP, resp, request, logger, tokenData)

		Expect(plans.PlanByGUIDCallCount()).To(Equal(1))
		Expect(plans.PlanByGUIDArgsForCall(0)).To(Equal("plan-guid"))

		Expect(tokens.GetTokenCallCount()).To(Equal(1))
		Expect(spaces.GetSpaceCallCount()).To(Equal(1))
		ccToken, spaceGUID := spaces.GetSpaceArgsForCall(0)
		Expect(ccToken).To(Equal("cc-token"))
		Expect(spaceGUID).To(Equal("space-guid"))

		Expect(creator.CreateCallCount()).To(Equal(1))
		createRequest := creator.CreateArgsForCall(0)
		Expect(createRequest.Name).To(Equal("my-instance"))
		Expect(createRequest.Space).To(Equal(&space))
		Expect(createRequest.Plan).To(Equal(&plan))
		Expect(createRequest.ActingUser).To(Equal(lifecycle.ActingUser{
			Email: "dev@example.com",
			GUID:  "user-guid",
		}))

		Expect(resp.Code).To(Equal(http.StatusCreated))
		Expect(resp.Body.String()).To(MatchJSON(`{
			"guid": "instance-guid",
			"name": "my-instance",
			"space_guid": "space-guid",
			"service_plan_guid": "plan-guid",
			"gateway_name": "svc-123"
		}`))
	})

	Context("when the token has no email claim", func() {
		BeforeEach(func() {
			tokenData.Email = ""
			tokenData.UserName = "dev@example.com"
		})

		It("falls back to the user name", func() {
			MakeRequestWithLoggerAndAuth(handler.ServeHTTP, resp, request, logger, tokenData)

			createRequest := creator.CreateArgsForCall(0)
			Expect(createRequest.ActingUser.Email).To(Equal("dev@example.com"))
		})
	})

	Context("when the body is not valid JSON", func() {
		BeforeEach(func() {
			var err error
			request, err = http.NewRequest("POST", "/v2/service_instances", bytes.NewBufferString("%%%"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("responds bad request", func() {
			MakeRequestWithLoggerAndAuth(handler.ServeHTTP, resp, request, logger, tokenData)

			Expect(errorResponse.BadRequestCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.BadRequestArgsForCall(0)
			Expect(description).To(Equal("invalid values passed to API"))
			Expect(creator.CreateCallCount()).To(Equal(0))
		})
	})

	Context("when the plan guid is unknown", func() {
		BeforeEach(func() {
			plans.PlanByGUIDReturns(store.ServicePlan{}, errors.New("no such plan"))
		})

		It("responds bad request", func() {
			MakeRequestWithLoggerAndAuth(handler.ServeHTTP, resp, request, logger, tokenData)

			Expect(errorResponse.BadRequestCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.BadRequestArgsForCall(0)
			Expect(description).To(Equal("service plan plan-guid not found"))
			Expect(creator.CreateCallCount()).To(Equal(0))
		})
	})

	Context("when no plan guid is supplied", func() {
		BeforeEach(func() {
			var err error
			request, err = http.NewRequest("POST", "/v2/service_instances",
				bytes.NewBufferString(`{"name": "my-instance", "space_guid": "space-guid"}`))
			Expect(err).NotTo(HaveOccurred())
		})

		It("passes a nil plan through for validation", func() {
			MakeRequestWithLoggerAndAuth(handler.ServeHTTP, resp, request, logger, tokenData)

			Expect(plans.PlanByGUIDCallCount()).To(Equal(0))
			createRequest := creator.CreateArgsForCall(0)
			Expect(createRequest.Plan).To(BeNil())
		})
	})

	Context("when getting the uaa token fails", func() {
		BeforeEach(func() {
			tokens.GetTokenReturns("", errors.New("uaa down"))
		})

		It("responds internal server error", func() {
			MakeRequestWithLoggerAndAuth(handler.ServeHTTP, resp, request, logger, tokenData)

			Expect(errorResponse.InternalServerErrorCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.InternalServerErrorArgsForCall(0)
			Expect(description).To(Equal("failed to get uaa token"))
		})
	})

	Context("when getting the space fails", func() {
		BeforeEach(func() {
			spaces.GetSpaceReturns(nil, errors.New("cc down"))
		})

		It("responds internal server error", func() {
			MakeRequestWithLoggerAndAuth(handler.ServeHTTP, resp, request, logger, tokenData)

			Expect(errorResponse.InternalServerErrorCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.InternalServerErrorArgsForCall(0)
			Expect(description).To(Equal("failed to get space from cloud controller"))
		})
	})

	Context("when the create fails validation", func() {
		BeforeEach(func() {
			creator.CreateReturns(store.ServiceInstance{}, lifecycle.ValidationErrors{
				{Code: lifecycle.PaidServicesNotAllowed, Message: "paid services are not allowed"},
			})
		})

		It("responds bad request with the validation message", func() {
			MakeRequestWithLoggerAndAuth(handler.ServeHTTP, resp, request, logger, tokenData)

			Expect(errorResponse.BadRequestCallCount()).To(Equal(1))
			_, _, err, _ := errorResponse.BadRequestArgsForCall(0)
			Expect(err).To(BeAssignableToTypeOf(lifecycle.ValidationErrors{}))
		})
	})

	Context("when the name is taken in the space", func() {
		BeforeEach(func() {
			creator.CreateReturns(store.ServiceInstance{}, store.DuplicateNameError{
				SpaceGUID: "space-guid",
				Name:      "my-instance",
			})
		})

		It("responds conflict", func() {
			MakeRequestWithLoggerAndAuth(handler.ServeHTTP, resp, request, logger, tokenData)

			Expect(errorResponse.ConflictCallCount()).To(Equal(1))
			_, _, err, description := errorResponse.ConflictArgsForCall(0)
			Expect(err).To(BeAssignableToTypeOf(store.DuplicateNameError{}))
			Expect(description).To(Equal("service instance name 'my-instance' is taken in space space-guid"))
		})
	})

	Context("when the create fails for another reason", func() {
		BeforeEach(func() {
			creator.CreateReturns(store.ServiceInstance{}, errors.New("disk on fire"))
		})

		It("responds internal server error", func() {
			MakeRequestWithLoggerAndAuth(handler.ServeHTTP, resp, request, logger, tokenData)

			Expect(errorResponse.InternalServerErrorCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.InternalServerErrorArgsForCall(0)
			Expect(description).To(Equal("failed creating service instance"))
		})
	})

	Context("when marshaling the response fails", func() {
		BeforeEach(func() {
			handler.Marshaler = marshal.MarshalFunc(func(interface{}) ([]byte, error) {
				return nil, errors.New("banana")
			})
		})

		It("responds internal server error", func() {
			MakeRequestWithLoggerAndAuth(handler.ServeHTTP, resp, request, logger, tokenData)

			Expect(errorResponse.InternalServerErrorCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.InternalServerErrorArgsForCall(0)
			Expect(description).To(Equal("failed marshaling response"))
		})
	})
})
