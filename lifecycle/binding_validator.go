package lifecycle

import (
	"fmt"

	"code.cloudfoundry.org/service-instance-manager/store"
)

// BindingValidator enforces the cross-aggregate invariant that a bound app
// lives in the instance's space. The schema has no foreign key for this, so
// every binding-creation path must come through here.
type BindingValidator struct {
}

func NewBindingValidator() *BindingValidator {
	return &BindingValidator{}
}

func (v *BindingValidator) ValidateBinding(instance store.ServiceInstance, binding store.ServiceBinding) *ValidationError {
	if binding.AppSpaceGUID != instance.SpaceGUID {
		return &ValidationError{
			Code:    BindingSpaceMismatch,
			Message: fmt.Sprintf("app %s is not in space %s", binding.AppGUID, instance.SpaceGUID),
		}
	}
	return nil
}
