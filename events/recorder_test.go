package events_test

import (
	"code.cloudfoundry.org/lager/v3/lagertest"
	"code.cloudfoundry.org/service-instance-manager/events"
	"code.cloudfoundry.org/service-instance-manager/events/fakes"
	"code.cloudfoundry.org/service-instance-manager/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("Recorder", func() {
	var (
		recorder      *events.Recorder
		logger        *lagertest.TestLogger
		metricsSender *fakes.MetricsSender
		instance      store.ServiceInstance
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("test")
		metricsSender = &fakes.MetricsSender{}
		recorder = events.NewRecorder(logger, metricsSender)

		instance = store.ServiceInstance{
			GUID:      "instance-guid",
			Name:      "my-instance",
			SpaceGUID: "space-guid",
			PlanGUID:  "plan-guid",
		}
	})

	Describe("InstanceCreated", func() {
		It("logs the audit record and bumps the counter", func() {
			recorder.InstanceCreated(instance)

			Expect(logger.Buffer()).To(gbytes.Say("audit.service_instance.create"))
			Expect(logger.Buffer()).To(gbytes.Say("instance-guid"))

			Expect(metricsSender.IncrementCounterCallCount()).To(Equal(1))
			Expect(metricsSender.IncrementCounterArgsForCall(0)).To(Equal("ServiceInstanceCreated"))
		})
	})

	Describe("InstanceDeleted", func() {
		It("logs the audit record and bumps the counter", func() {
			recorder.InstanceDeleted(instance)

			Expect(logger.Buffer()).To(gbytes.Say("audit.service_instance.delete"))

			Expect(metricsSender.IncrementCounterCallCount()).To(Equal(1))
			Expect(metricsSender.IncrementCounterArgsForCall(0)).To(Equal("ServiceInstanceDeleted"))
		})
	})
})
