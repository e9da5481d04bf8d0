package lifecycle

import (
	"fmt"

	"code.cloudfoundry.org/service-instance-manager/store"
)

// QuotaGuard gates instance creation against the organization's quota
// snapshot. Pure predicate: no store access, no gateway calls.
type QuotaGuard struct {
}

func NewQuotaGuard() *QuotaGuard {
	return &QuotaGuard{}
}

// CheckQuota runs both admission checks independently, so a paid plan in an
// exhausted, free-only org reports both codes. A nil space means the caller
// has not resolved one yet; presence is its problem, not quota's.
func (g *QuotaGuard) CheckQuota(space *store.Space, plan store.ServicePlan) []ValidationError {
	if space == nil {
		return nil
	}

	var validationErrors []ValidationError
	org := space.Organization

	if !org.ServiceInstanceQuotaRemaining {
		if org.PaidServicesAllowed {
			validationErrors = append(validationErrors, ValidationError{
				Code:    PaidQuotaExceeded,
				Message: fmt.Sprintf("org %s has reached its service instance quota", org.GUID),
			})
		} else {
			validationErrors = append(validationErrors, ValidationError{
				Code:    FreeQuotaExceeded,
				Message: fmt.Sprintf("org %s has reached its free service instance quota", org.GUID),
			})
		}
	}

	if !plan.Free && !org.PaidServicesAllowed {
		validationErrors = append(validationErrors, ValidationError{
			Code:    PaidServicesNotAllowed,
			Message: fmt.Sprintf("org %s does not allow paid service plans", org.GUID),
		})
	}

	return validationErrors
}
