package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"time"

	"code.cloudfoundry.org/service-instance-manager/handlers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UptimeHandler", func() {
	var (
		handler *handlers.UptimeHandler
		resp    *httptest.ResponseRecorder
		request *http.Request
	)

	BeforeEach(func() {
		handler = &handlers.UptimeHandler{
			StartTime: time.Now().Add(-90 * time.Second),
		}
		resp = httptest.NewRecorder()

		var err error
		request, err = http.NewRequest("GET", "/", nil)
		Expect(err).NotTo(HaveOccurred())
	})

	It("reports how long the server has been up", func() {
		handler.ServeHTTP(resp, request)

		Expect(resp.Code).To(Equal(http.StatusOK))
		Expect(resp.Body.String()).To(ContainSubstring("Service instance manager, up for"))
	})
})
