package lifecycle_test

import (
	"code.cloudfoundry.org/service-instance-manager/lifecycle"
	"code.cloudfoundry.org/service-instance-manager/store"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BindingValidator", func() {
	var (
		validator *lifecycle.BindingValidator
		instance  store.ServiceInstance
	)

	BeforeEach(func() {
		validator = lifecycle.NewBindingValidator()
		instance = store.ServiceInstance{
			GUID:      "instance-guid",
			SpaceGUID: "space-1",
		}
	})

	Context("when the app lives in the instance's space", func() {
		It("returns nil", func() {
			binding := store.ServiceBinding{AppGUID: "app-guid", AppSpaceGUID: "space-1"}
			Expect(validator.ValidateBinding(instance, binding)).To(BeNil())
		})
	})

	Context("when the app lives in a different space", func() {
		It("returns a space mismatch error", func() {
			binding := store.ServiceBinding{AppGUID: "app-guid", AppSpaceGUID: "space-2"}
			validationError := validator.ValidateBinding(instance, binding)
			Expect(validationError).NotTo(BeNil())
			Expect(validationError.Code).To(Equal(lifecycle.BindingSpaceMismatch))
		})
	})
})
