package lifecycle

import (
	"fmt"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/service-instance-manager/store"
)

//counterfeiter:generate -o fakes/instance_store.go --fake-name InstanceStore . InstanceStore
type InstanceStore interface {
	Create(instance store.ServiceInstance) (store.ServiceInstance, error)
	Delete(guid string) error
	ByGUID(guid string) (store.ServiceInstance, error)
	CreateBinding(binding store.ServiceBinding) error
}

//counterfeiter:generate -o fakes/coordinator.go --fake-name Coordinator . Coordinator
type Coordinator interface {
	Provision(instance *store.ServiceInstance, plan store.ServicePlan, user ActingUser) (Compensation, error)
	Deprovision(instance store.ServiceInstance, plan store.ServicePlan)
}

//counterfeiter:generate -o fakes/event_recorder.go --fake-name EventRecorder . EventRecorder
type EventRecorder interface {
	InstanceCreated(instance store.ServiceInstance)
	InstanceDeleted(instance store.ServiceInstance)
}

//counterfeiter:generate -o fakes/plan_catalog.go --fake-name PlanCatalog . PlanCatalog
type PlanCatalog interface {
	PlanByGUID(guid string) (store.ServicePlan, error)
}

//counterfeiter:generate -o fakes/guid_generator.go --fake-name GUIDGenerator . guidGenerator
type guidGenerator interface {
	New() (string, error)
}

type CreateRequest struct {
	Name       string
	Space      *store.Space
	Plan       *store.ServicePlan
	ActingUser ActingUser
}

// Creator drives the create sequence explicitly:
// validate, provision, insert, then exactly one of commit or rollback on the
// compensation. The remote call deliberately precedes the insert so the
// gateway identifier and credentials are part of the inserted record.
type Creator struct {
	Store       InstanceStore
	Coordinator Coordinator
	QuotaGuard  *QuotaGuard
	Events      EventRecorder
	GUIDs       guidGenerator
	Logger      lager.Logger
}

func (c *Creator) Create(req CreateRequest) (store.ServiceInstance, error) {
	logger := c.Logger.Session("create-instance", lager.Data{"name": req.Name})

	validationErrors := c.validate(req)
	if len(validationErrors) > 0 {
		return store.ServiceInstance{}, ValidationErrors(validationErrors)
	}

	guid, err := c.GUIDs.New()
	if err != nil {
		return store.ServiceInstance{}, fmt.Errorf("generating instance guid: %s", err)
	}

	instance := store.ServiceInstance{
		GUID:      guid,
		Name:      req.Name,
		SpaceGUID: req.Space.GUID,
		PlanGUID:  req.Plan.GUID,
	}

	comp, err := c.Coordinator.Provision(&instance, *req.Plan, req.ActingUser)
	if err != nil {
		return store.ServiceInstance{}, fmt.Errorf("provisioning service instance: %s", err)
	}

	created, err := c.Store.Create(instance)
	if err != nil {
		comp.Rollback()
		return store.ServiceInstance{}, err
	}
	comp.Commit()

	logger.Info("created", lager.Data{"guid": created.GUID, "space_guid": created.SpaceGUID})
	c.Events.InstanceCreated(created)
	return created, nil
}

func (c *Creator) validate(req CreateRequest) []ValidationError {
	var validationErrors []ValidationError
	if req.Name == "" {
		validationErrors = append(validationErrors, ValidationError{Code: NameMissing, Message: "service instance name is required"})
	}
	if req.Space == nil {
		validationErrors = append(validationErrors, ValidationError{Code: SpaceMissing, Message: "space is required"})
	}
	if req.Plan == nil {
		validationErrors = append(validationErrors, ValidationError{Code: PlanMissing, Message: "service plan is required"})
	}
	if len(validationErrors) > 0 {
		return validationErrors
	}
	return c.QuotaGuard.CheckQuota(req.Space, *req.Plan)
}

// Destroyer deprovisions before deleting the record. Deprovision failures do
// not block the delete.
type Destroyer struct {
	Store       InstanceStore
	Coordinator Coordinator
	Plans       PlanCatalog
	Events      EventRecorder
	Logger      lager.Logger
}

func (d *Destroyer) Destroy(guid string) error {
	logger := d.Logger.Session("destroy-instance", lager.Data{"guid": guid})

	instance, err := d.Store.ByGUID(guid)
	if err != nil {
		return err
	}

	plan, err := d.Plans.PlanByGUID(instance.PlanGUID)
	if err != nil {
		return fmt.Errorf("resolving service plan: %s", err)
	}

	d.Coordinator.Deprovision(instance, plan)

	err = d.Store.Delete(guid)
	if err != nil {
		return fmt.Errorf("deleting service instance: %s", err)
	}

	logger.Info("destroyed")
	d.Events.InstanceDeleted(instance)
	return nil
}

// BindingAttacher is the single path for attaching bindings, which is what
// makes the validator's cross-space check an invariant rather than a
// convention.
type BindingAttacher struct {
	Store     InstanceStore
	Validator *BindingValidator
	GUIDs     guidGenerator
	Logger    lager.Logger
}

func (a *BindingAttacher) Attach(instance store.ServiceInstance, binding store.ServiceBinding) (store.ServiceBinding, error) {
	if validationError := a.Validator.ValidateBinding(instance, binding); validationError != nil {
		return store.ServiceBinding{}, ValidationErrors{*validationError}
	}

	if binding.GUID == "" {
		guid, err := a.GUIDs.New()
		if err != nil {
			return store.ServiceBinding{}, fmt.Errorf("generating binding guid: %s", err)
		}
		binding.GUID = guid
	}
	binding.InstanceGUID = instance.GUID

	err := a.Store.CreateBinding(binding)
	if err != nil {
		return store.ServiceBinding{}, fmt.Errorf("creating service binding: %s", err)
	}

	a.Logger.Info("binding-attached", lager.Data{"instance_guid": instance.GUID, "app_guid": binding.AppGUID})
	return binding, nil
}
