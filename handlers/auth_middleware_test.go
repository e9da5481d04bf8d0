package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/service-instance-manager/handlers"
	"code.cloudfoundry.org/service-instance-manager/handlers/fakes"
	"code.cloudfoundry.org/service-instance-manager/uaa_client"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Authenticator", func() {
	var (
		authenticator *handlers.Authenticator
		uaaClient     *fakes.UAAClient
		errorResponse *fakes.ErrorResponse
		logger        *lagertest.TestLogger
		resp          *httptest.ResponseRecorder
		request       *http.Request
		protected     http.Handler
		wasCalled     bool
		tokenData     uaa_client.CheckTokenResponse
	)

	BeforeEach(func() {
		uaaClient = &fakes.UAAClient{}
		errorResponse = &fakes.ErrorResponse{}
		logger = lagertest.NewTestLogger("test")
		resp = httptest.NewRecorder()

		authenticator = &handlers.Authenticator{
			Client:        uaaClient,
			Scopes:        []string{"cloud_controller.admin", "cloud_controller.write"},
			ErrorResponse: errorResponse,
			ScopeChecking: true,
		}

		wasCalled = false
		protected = authenticator.Wrap(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			wasCalled = true
			tokenData = req.Context().Value(handlers.TokenDataKey).(uaa_client.CheckTokenResponse)
		}))

		uaaClient.CheckTokenReturns(uaa_client.CheckTokenResponse{
			Scope:    []string{"cloud_controller.admin"},
			UserID:   "user-guid",
			UserName: "dev",
		}, nil)

		var err error
		request, err = http.NewRequest("POST", "/v2/service_instances", nil)
		Expect(err).NotTo(HaveOccurred())
		request.Header.Set("Authorization", "Bearer correct-token")
	})

	It("verifies the token and stores the token data in the request context", func() {
		MakeRequestWithLogger(protected.ServeHTTP, resp, request, logger)

		Expect(uaaClient.CheckTokenCallCount()).To(Equal(1))
		Expect(uaaClient.CheckTokenArgsForCall(0)).To(Equal("correct-token"))

		Expect(wasCalled).To(BeTrue())
		Expect(tokenData.UserID).To(Equal("user-guid"))
	})

	It("strips a lowercase bearer prefix too", func() {
		request.Header.Set("Authorization", "bearer correct-token")
		MakeRequestWithLogger(protected.ServeHTTP, resp, request, logger)

		Expect(uaaClient.CheckTokenArgsForCall(0)).To(Equal("correct-token"))
	})

	Context("when the authorization header is missing", func() {
		BeforeEach(func() {
			request.Header.Del("Authorization")
		})

		It("responds unauthorized without calling the handler", func() {
			MakeRequestWithLogger(protected.ServeHTTP, resp, request, logger)

			Expect(errorResponse.UnauthorizedCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.UnauthorizedArgsForCall(0)
			Expect(description).To(Equal("missing authorization header"))
			Expect(wasCalled).To(BeFalse())
		})
	})

	Context("when the token cannot be verified", func() {
		BeforeEach(func() {
			uaaClient.CheckTokenReturns(uaa_client.CheckTokenResponse{}, errors.New("uaa says no"))
		})

		It("responds unauthorized", func() {
			MakeRequestWithLogger(protected.ServeHTTP, resp, request, logger)

			Expect(errorResponse.UnauthorizedCallCount()).To(Equal(1))
			_, _, _, description := errorResponse.UnauthorizedArgsForCall(0)
			Expect(description).To(Equal("failed to verify token with uaa"))
			Expect(wasCalled).To(BeFalse())
		})
	})

	Context("when the token is missing the allowed scopes", func() {
		BeforeEach(func() {
			uaaClient.CheckTokenReturns(uaa_client.CheckTokenResponse{
				Scope: []string{"doppler.firehose"},
			}, nil)
		})

		It("responds forbidden", func() {
			MakeRequestWithLogger(protected.ServeHTTP, resp, request, logger)

			Expect(errorResponse.ForbiddenCallCount()).To(Equal(1))
			Expect(wasCalled).To(BeFalse())
		})
	})

	Context("when scope checking is disabled", func() {
		BeforeEach(func() {
			authenticator.ScopeChecking = false
			uaaClient.CheckTokenReturns(uaa_client.CheckTokenResponse{
				Scope: []string{"doppler.firehose"},
			}, nil)
		})

		It("lets any verified token through", func() {
			MakeRequestWithLogger(protected.ServeHTTP, resp, request, logger)

			Expect(errorResponse.ForbiddenCallCount()).To(Equal(0))
			Expect(wasCalled).To(BeTrue())
		})
	})
})
