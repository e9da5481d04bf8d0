package lifecycle

import (
	"fmt"
	"strings"
)

const (
	NameMissing            = "name_missing"
	SpaceMissing           = "space_missing"
	PlanMissing            = "plan_missing"
	PaidQuotaExceeded      = "paid_quota_exceeded"
	FreeQuotaExceeded      = "free_quota_exceeded"
	PaidServicesNotAllowed = "paid_services_not_allowed"
	BindingSpaceMismatch   = "binding_space_mismatch"
)

type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	codes := make([]string, len(e))
	for i, validationError := range e {
		codes[i] = validationError.Code
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(codes, ", "))
}
