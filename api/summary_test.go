package api_test

import (
	"encoding/json"
	"errors"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"code.cloudfoundry.org/service-instance-manager/api"
	"code.cloudfoundry.org/service-instance-manager/api/fakes"
	"code.cloudfoundry.org/service-instance-manager/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("SummaryMapper", func() {
	var (
		mapper         *api.SummaryMapper
		bindingCounter *fakes.BindingCounter
		instance       store.ServiceInstance
		plan           store.ServicePlan
	)

	BeforeEach(func() {
		bindingCounter = &fakes.BindingCounter{}
		bindingCounter.BindingCountReturns(3, nil)

		mapper = api.NewSummaryMapper(marshal.MarshalFunc(json.Marshal), bindingCounter)

		instance = store.ServiceInstance{
			GUID:        "instance-guid",
			Name:        "my-instance",
			Credentials: `{"user":"a"}`,
		}
		plan = store.ServicePlan{
			GUID: "plan-guid",
			Name: "gold",
			Service: store.Service{
				GUID:     "service-guid",
				Label:    "mysql",
				Provider: "core",
				Version:  "5.5",
			},
		}
	})

	Describe("Summary", func() {
		It("projects the instance with its live binding count", func() {
			summary, err := mapper.Summary(instance, plan)
			Expect(err).NotTo(HaveOccurred())

			Expect(bindingCounter.BindingCountCallCount()).To(Equal(1))
			Expect(bindingCounter.BindingCountArgsForCall(0)).To(Equal("instance-guid"))

			Expect(summary).To(Equal(api.InstanceSummary{
				GUID:          "instance-guid",
				Name:          "my-instance",
				BoundAppCount: 3,
				ServicePlan: api.ServicePlanSummary{
					GUID: "plan-guid",
					Name: "gold",
					Service: api.ServiceSummary{
						GUID:     "service-guid",
						Label:    "mysql",
						Provider: "core",
						Version:  "5.5",
					},
				},
			}))
		})

		Context("when counting the bindings fails", func() {
			BeforeEach(func() {
				bindingCounter.BindingCountReturns(0, errors.New("banana"))
			})

			It("returns a wrapped error", func() {
				_, err := mapper.Summary(instance, plan)
				Expect(err).To(MatchError("counting bindings: banana"))
			})
		})
	})

	Describe("AsBytes", func() {
		It("serializes the summary without leaking credentials", func() {
			summary, err := mapper.Summary(instance, plan)
			Expect(err).NotTo(HaveOccurred())

			bytes, err := mapper.AsBytes(summary)
			Expect(err).NotTo(HaveOccurred())
			Expect(bytes).To(MatchJSON(`{
				"guid": "instance-guid",
				"name": "my-instance",
				"bound_app_count": 3,
				"service_plan": {
					"guid": "plan-guid",
					"name": "gold",
					"service": {
						"guid": "service-guid",
						"label": "mysql",
						"provider": "core",
						"version": "5.5"
					}
				}
			}`))
			Expect(string(bytes)).NotTo(ContainSubstring(`"user"`))
		})

		Context("when marshaling fails", func() {
			BeforeEach(func() {
				mapper.Marshaler = marshal.MarshalFunc(func(interface{}) ([]byte, error) {
					return nil, errors.New("banana")
				})
			})

			It("returns a wrapped error", func() {
				_, err := mapper.AsBytes(api.InstanceSummary{})
				Expect(err).To(MatchError("marshal summary: banana"))
			})
		})
	})
})
