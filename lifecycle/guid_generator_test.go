package lifecycle_test

import (
	"code.cloudfoundry.org/service-instance-manager/lifecycle"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UUIDGenerator", func() {
	It("generates distinct v4 uuids", func() {
		generator := &lifecycle.UUIDGenerator{}

		first, err := generator.New()
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(MatchRegexp(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[0-9a-f]{4}-[0-9a-f]{12}$`))

		second, err := generator.New()
		Expect(err).NotTo(HaveOccurred())
		Expect(second).NotTo(Equal(first))
	})
})
