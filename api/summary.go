// Package api maps store records to the external representations the HTTP
// layer serves. Credentials never appear here: the summary is the read-side
// projection handed to callers who have no business seeing secrets.
package api

import (
	"fmt"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"code.cloudfoundry.org/service-instance-manager/store"
)

//go:generate counterfeiter -generate

//counterfeiter:generate -o fakes/binding_counter.go --fake-name BindingCounter . bindingCounter
type bindingCounter interface {
	BindingCount(instanceGUID string) (int, error)
}

type InstanceSummary struct {
	GUID          string             `json:"guid"`
	Name          string             `json:"name"`
	BoundAppCount int                `json:"bound_app_count"`
	ServicePlan   ServicePlanSummary `json:"service_plan"`
}

type ServicePlanSummary struct {
	GUID    string         `json:"guid"`
	Name    string         `json:"name"`
	Service ServiceSummary `json:"service"`
}

type ServiceSummary struct {
	GUID     string `json:"guid"`
	Label    string `json:"label"`
	Provider string `json:"provider"`
	Version  string `json:"version"`
}

type SummaryMapper struct {
	Marshaler marshal.Marshaler
	Bindings  bindingCounter
}

func NewSummaryMapper(marshaler marshal.Marshaler, bindings bindingCounter) *SummaryMapper {
	return &SummaryMapper{
		Marshaler: marshaler,
		Bindings:  bindings,
	}
}

func (m *SummaryMapper) Summary(instance store.ServiceInstance, plan store.ServicePlan) (InstanceSummary, error) {
	boundAppCount, err := m.Bindings.BindingCount(instance.GUID)
	if err != nil {
		return InstanceSummary{}, fmt.Errorf("counting bindings: %s", err)
	}

	return InstanceSummary{
		GUID:          instance.GUID,
		Name:          instance.Name,
		BoundAppCount: boundAppCount,
		ServicePlan: ServicePlanSummary{
			GUID: plan.GUID,
			Name: plan.Name,
			Service: ServiceSummary{
				GUID:     plan.Service.GUID,
				Label:    plan.Service.Label,
				Provider: plan.Service.Provider,
				Version:  plan.Service.Version,
			},
		},
	}, nil
}

func (m *SummaryMapper) AsBytes(summary InstanceSummary) ([]byte, error) {
	bytes, err := m.Marshaler.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("marshal summary: %s", err)
	}
	return bytes, nil
}
