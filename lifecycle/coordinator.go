package lifecycle

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/service-instance-manager/gateway"
	"code.cloudfoundry.org/service-instance-manager/store"
)

//go:generate counterfeiter -generate

//counterfeiter:generate -o fakes/credential_codec.go --fake-name CredentialCodec . credentialCodec
type credentialCodec interface {
	Encode(value interface{}) (string, error)
	Decode(text string) (interface{}, error)
}

type ActingUser struct {
	Email string
	GUID  string
}

type UnavailableError struct {
	Label string
}

func (e UnavailableError) Error() string {
	return fmt.Sprintf("service gateway for %s is not available", e.Label)
}

// ProvisioningCoordinator bridges the gateway, which cannot be rolled back,
// with the local transaction, which can. Provision runs before the local
// insert so the returned identifier and credentials land in the same record;
// the Compensation it returns is how a failed insert gets the remote side
// undone afterwards.
type ProvisioningCoordinator struct {
	Clients gateway.ClientFactory
	Codec   credentialCodec
	Logger  lager.Logger
}

func NewProvisioningCoordinator(clients gateway.ClientFactory, codec credentialCodec, logger lager.Logger) *ProvisioningCoordinator {
	return &ProvisioningCoordinator{
		Clients: clients,
		Codec:   codec,
		Logger:  logger,
	}
}

// Provision calls the gateway and writes the returned identifier and
// documents onto the instance. When the plan's service has no auth token
// there is no gateway to call: the instance's gateway fields are cleared and
// a non-pending Compensation comes back with no error. Callers cannot tell
// that apart from a real no-op; see the factory notes.
//
// A gateway error aborts the create. Nothing was inserted locally yet, so no
// compensation is owed.
func (c *ProvisioningCoordinator) Provision(instance *store.ServiceInstance, plan store.ServicePlan, user ActingUser) (Compensation, error) {
	logger := c.Logger.Session("provision", lager.Data{"instance_name": instance.Name, "plan": plan.Name})

	client, ok := c.Clients.Resolve(plan)
	if !ok {
		logger.Info("gateway-unavailable-skipping-provision", lager.Data{"service": plan.Service.Label})
		instance.GatewayName = ""
		instance.GatewayData = ""
		instance.Credentials = ""
		return &compensation{coordinator: c}, nil
	}

	response, err := client.Provision(gateway.ProvisionRequest{
		Label:    fmt.Sprintf("%s-%s", plan.Service.Label, plan.Service.Version),
		Name:     instance.Name,
		Email:    user.Email,
		UserGUID: user.GUID,
		Plan:     plan.Name,
		Version:  plan.Service.Version,
		Provider: plan.Service.Provider,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway provision: %s", err)
	}

	gatewayData, err := c.Codec.Encode(response.Configuration)
	if err != nil {
		return nil, fmt.Errorf("encoding gateway data: %s", err)
	}
	creds, err := c.Codec.Encode(response.Credentials)
	if err != nil {
		return nil, fmt.Errorf("encoding credentials: %s", err)
	}

	instance.GatewayName = response.ServiceID
	instance.GatewayData = gatewayData
	instance.Credentials = creds

	logger.Info("provisioned", lager.Data{"gateway_name": response.ServiceID})

	return &compensation{
		coordinator: c,
		pending:     true,
		plan:        plan,
		instance:    *instance,
	}, nil
}

// Deprovision tolerates every failure: a stale remote resource is preferable
// to a local delete that cannot complete. Errors are logged and dropped.
func (c *ProvisioningCoordinator) Deprovision(instance store.ServiceInstance, plan store.ServicePlan) {
	logger := c.Logger.Session("deprovision", lager.Data{"gateway_name": instance.GatewayName, "plan": plan.Name})

	client, ok := c.Clients.Resolve(plan)
	if !ok {
		logger.Info("gateway-unavailable-skipping-deprovision", lager.Data{"service": plan.Service.Label})
		return
	}

	err := client.Unprovision(instance.GatewayName)
	if err != nil {
		logger.Error("unprovision-failed", err)
		return
	}

	logger.Info("deprovisioned")
}

//counterfeiter:generate -o fakes/compensation.go --fake-name Compensation . Compensation
type Compensation interface {
	Commit()
	Rollback()
	Pending() bool
}

// compensation is scoped to a single create attempt. Exactly one of Commit
// or Rollback fires per attempt; the caller drives that sequencing and does
// not share a compensation across goroutines.
type compensation struct {
	coordinator *ProvisioningCoordinator
	pending     bool
	plan        store.ServicePlan
	instance    store.ServiceInstance
}

func (c *compensation) Pending() bool {
	return c.pending
}

// Commit clears the marker unconditionally; committing with nothing pending
// is a no-op.
func (c *compensation) Commit() {
	c.pending = false
}

// Rollback issues the compensating deprovision with the plan captured at
// provision time, not whatever the instance points at now. Deprovision
// failures never propagate: a rollback must not fail the surrounding
// operation.
func (c *compensation) Rollback() {
	if !c.pending {
		return
	}
	c.coordinator.Deprovision(c.instance, c.plan)
	c.pending = false
}
