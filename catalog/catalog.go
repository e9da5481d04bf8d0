// Package catalog holds the read-only service and plan definitions this job
// is configured with. Plans reference their service, including the gateway
// URL, timeout and auth token the client factory needs.
package catalog

import (
	"fmt"

	"code.cloudfoundry.org/service-instance-manager/config"
	"code.cloudfoundry.org/service-instance-manager/store"
)

type PlanNotFoundError struct {
	GUID string
}

func (e PlanNotFoundError) Error() string {
	return fmt.Sprintf("service plan %s not found", e.GUID)
}

type Catalog struct {
	plansByGUID map[string]store.ServicePlan
}

func New(services []config.Service) *Catalog {
	plansByGUID := map[string]store.ServicePlan{}
	for _, serviceConfig := range services {
		service := store.Service{
			GUID:           serviceConfig.GUID,
			Label:          serviceConfig.Label,
			Provider:       serviceConfig.Provider,
			Version:        serviceConfig.Version,
			URL:            serviceConfig.URL,
			TimeoutSeconds: serviceConfig.TimeoutSeconds,
			AuthToken:      serviceConfig.AuthToken,
		}
		for _, planConfig := range serviceConfig.Plans {
			plansByGUID[planConfig.GUID] = store.ServicePlan{
				GUID:    planConfig.GUID,
				Name:    planConfig.Name,
				Free:    planConfig.Free,
				Service: service,
			}
		}
	}
	return &Catalog{plansByGUID: plansByGUID}
}

func (c *Catalog) PlanByGUID(guid string) (store.ServicePlan, error) {
	plan, ok := c.plansByGUID[guid]
	if !ok {
		return store.ServicePlan{}, PlanNotFoundError{GUID: guid}
	}
	return plan, nil
}
