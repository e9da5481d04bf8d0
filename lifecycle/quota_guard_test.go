package lifecycle_test

import (
	"code.cloudfoundry.org/service-instance-manager/lifecycle"
	"code.cloudfoundry.org/service-instance-manager/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("QuotaGuard", func() {
	var (
		guard    *lifecycle.QuotaGuard
		space    *store.Space
		freePlan store.ServicePlan
		paidPlan store.ServicePlan
	)

	BeforeEach(func() {
		guard = lifecycle.NewQuotaGuard()
		space = &store.Space{
			GUID: "space-guid",
			Name: "some-space",
			Organization: store.Organization{
				GUID:                          "org-guid",
				Name:                          "some-org",
				ServiceInstanceQuotaRemaining: true,
				PaidServicesAllowed:           true,
			},
		}
		freePlan = store.ServicePlan{GUID: "free-plan-guid", Name: "free", Free: true}
		paidPlan = store.ServicePlan{GUID: "paid-plan-guid", Name: "gold", Free: false}
	})

	Context("when the org has quota remaining and allows paid services", func() {
		It("admits free plans", func() {
			Expect(guard.CheckQuota(space, freePlan)).To(BeEmpty())
		})

		It("admits paid plans", func() {
			Expect(guard.CheckQuota(space, paidPlan)).To(BeEmpty())
		})
	})

	Context("when the space is nil", func() {
		It("returns no errors", func() {
			Expect(guard.CheckQuota(nil, paidPlan)).To(BeEmpty())
		})
	})

	Context("when the quota is exhausted", func() {
		BeforeEach(func() {
			space.Organization.ServiceInstanceQuotaRemaining = false
		})

		Context("and the org allows paid services", func() {
			It("reports the paid quota code", func() {
				validationErrors := guard.CheckQuota(space, freePlan)
				Expect(validationErrors).To(HaveLen(1))
				Expect(validationErrors[0].Code).To(Equal(lifecycle.PaidQuotaExceeded))
			})
		})

		Context("and the org does not allow paid services", func() {
			BeforeEach(func() {
				space.Organization.PaidServicesAllowed = false
			})

			It("reports the free quota code, never both quota codes", func() {
				validationErrors := guard.CheckQuota(space, freePlan)
				Expect(validationErrors).To(HaveLen(1))
				Expect(validationErrors[0].Code).To(Equal(lifecycle.FreeQuotaExceeded))
			})

			It("also reports paid services not allowed for a paid plan", func() {
				validationErrors := guard.CheckQuota(space, paidPlan)
				Expect(validationErrors).To(HaveLen(2))
				Expect(validationErrors[0].Code).To(Equal(lifecycle.FreeQuotaExceeded))
				Expect(validationErrors[1].Code).To(Equal(lifecycle.PaidServicesNotAllowed))
			})
		})
	})

	Context("when a paid plan is requested in a free-only org", func() {
		BeforeEach(func() {
			space.Organization.PaidServicesAllowed = false
		})

		It("reports paid services not allowed", func() {
			validationErrors := guard.CheckQuota(space, paidPlan)
			Expect(validationErrors).To(HaveLen(1))
			Expect(validationErrors[0].Code).To(Equal(lifecycle.PaidServicesNotAllowed))
		})

		It("still admits free plans", func() {
			Expect(guard.CheckQuota(space, freePlan)).To(BeEmpty())
		})
	})
})
