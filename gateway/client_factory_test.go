package gateway_test

import (
	"time"

	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/service-instance-manager/gateway"
	"code.cloudfoundry.org/service-instance-manager/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Factory", func() {
	var (
		factory *gateway.Factory
		plan    store.ServicePlan
	)

	BeforeEach(func() {
		factory = &gateway.Factory{
			Logger:        lagertest.NewTestLogger("test"),
			UploadURL:     "https://upload.example.com",
			UploadToken:   "upload-token",
			UploadTimeout: 30 * time.Second,
		}
		plan = store.ServicePlan{
			GUID: "plan-guid",
			Name: "gold",
			Service: store.Service{
				Label:          "mysql",
				URL:            "https://mysql-gateway.example.com",
				AuthToken:      "secret",
				TimeoutSeconds: 10,
			},
		}
	})

	Describe("Resolve", func() {
		It("builds a client bound to the service's gateway and token", func() {
			client, ok := factory.Resolve(plan)
			Expect(ok).To(BeTrue())

			httpClient, isHTTPClient := client.(*gateway.HTTPClient)
			Expect(isHTTPClient).To(BeTrue())
			Expect(httpClient.AuthToken).To(Equal("secret"))
		})

		Context("when the service has no auth token", func() {
			BeforeEach(func() {
				plan.Service.AuthToken = ""
			})

			It("reports the gateway as unavailable", func() {
				client, ok := factory.Resolve(plan)
				Expect(ok).To(BeFalse())
				Expect(client).To(BeNil())
			})
		})
	})

	Describe("ResolveUpload", func() {
		It("builds an upload client from the configured endpoint", func() {
			client, ok := factory.ResolveUpload()
			Expect(ok).To(BeTrue())

			uploadClient, isUploadClient := client.(*gateway.HTTPUploadClient)
			Expect(isUploadClient).To(BeTrue())
			Expect(uploadClient.BaseURL).To(Equal("https://upload.example.com"))
			Expect(uploadClient.Token).To(Equal("upload-token"))
		})

		Context("when the upload url is not configured", func() {
			BeforeEach(func() {
				factory.UploadURL = ""
			})

			It("reports the upload endpoint as unavailable", func() {
				client, ok := factory.ResolveUpload()
				Expect(ok).To(BeFalse())
				Expect(client).To(BeNil())
			})
		})

		Context("when the upload token is not configured", func() {
			BeforeEach(func() {
				factory.UploadToken = ""
			})

			It("reports the upload endpoint as unavailable", func() {
				client, ok := factory.ResolveUpload()
				Expect(ok).To(BeFalse())
				Expect(client).To(BeNil())
			})
		})
	})
})
