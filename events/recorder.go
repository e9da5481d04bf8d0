// Package events notifies the audit side of successful creates and destroys.
// Emission is fire-and-forget; the lifecycle never blocks on it.
package events

import (
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/service-instance-manager/store"
)

//go:generate counterfeiter -generate

//counterfeiter:generate -o fakes/metrics_sender.go --fake-name MetricsSender . metricsSender
type metricsSender interface {
	IncrementCounter(name string)
}

type Recorder struct {
	Logger        lager.Logger
	MetricsSender metricsSender
}

func NewRecorder(logger lager.Logger, metricsSender metricsSender) *Recorder {
	return &Recorder{
		Logger:        logger,
		MetricsSender: metricsSender,
	}
}

func (r *Recorder) InstanceCreated(instance store.ServiceInstance) {
	r.Logger.Info("audit.service_instance.create", lager.Data{
		"guid":       instance.GUID,
		"name":       instance.Name,
		"space_guid": instance.SpaceGUID,
		"plan_guid":  instance.PlanGUID,
	})
	r.MetricsSender.IncrementCounter("ServiceInstanceCreated")
}

func (r *Recorder) InstanceDeleted(instance store.ServiceInstance) {
	r.Logger.Info("audit.service_instance.delete", lager.Data{
		"guid":       instance.GUID,
		"name":       instance.Name,
		"space_guid": instance.SpaceGUID,
	})
	r.MetricsSender.IncrementCounter("ServiceInstanceDeleted")
}
