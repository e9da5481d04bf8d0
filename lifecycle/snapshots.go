package lifecycle

import (
	"code.cloudfoundry.org/service-instance-manager/gateway"
	"code.cloudfoundry.org/service-instance-manager/store"
)

// Snapshot, serialization and job operations are pure forwarding: resolve a
// gateway for the plan, key the request by the stored gateway name, pass
// errors straight back. Unlike provision, an unreachable gateway here is an
// error the caller sees.

func (c *ProvisioningCoordinator) resolve(plan store.ServicePlan) (gateway.Client, error) {
	client, ok := c.Clients.Resolve(plan)
	if !ok {
		return nil, UnavailableError{Label: plan.Service.Label}
	}
	return client, nil
}

func (c *ProvisioningCoordinator) CreateSnapshot(instance store.ServiceInstance, plan store.ServicePlan) (gateway.Job, error) {
	client, err := c.resolve(plan)
	if err != nil {
		return gateway.Job{}, err
	}
	return client.CreateSnapshot(instance.GatewayName)
}

func (c *ProvisioningCoordinator) EnumSnapshots(instance store.ServiceInstance, plan store.ServicePlan) ([]gateway.Snapshot, error) {
	client, err := c.resolve(plan)
	if err != nil {
		return nil, err
	}
	return client.EnumSnapshots(instance.GatewayName)
}

func (c *ProvisioningCoordinator) SnapshotDetails(instance store.ServiceInstance, plan store.ServicePlan, snapshotID string) (gateway.Snapshot, error) {
	client, err := c.resolve(plan)
	if err != nil {
		return gateway.Snapshot{}, err
	}
	return client.SnapshotDetails(instance.GatewayName, snapshotID)
}

func (c *ProvisioningCoordinator) RollbackSnapshot(instance store.ServiceInstance, plan store.ServicePlan, snapshotID string) (gateway.Job, error) {
	client, err := c.resolve(plan)
	if err != nil {
		return gateway.Job{}, err
	}
	return client.RollbackSnapshot(instance.GatewayName, snapshotID)
}

func (c *ProvisioningCoordinator) DeleteSnapshot(instance store.ServiceInstance, plan store.ServicePlan, snapshotID string) (gateway.Job, error) {
	client, err := c.resolve(plan)
	if err != nil {
		return gateway.Job{}, err
	}
	return client.DeleteSnapshot(instance.GatewayName, snapshotID)
}

func (c *ProvisioningCoordinator) SerializedURL(instance store.ServiceInstance, plan store.ServicePlan, snapshotID string) (gateway.SerializedURL, error) {
	client, err := c.resolve(plan)
	if err != nil {
		return gateway.SerializedURL{}, err
	}
	return client.SerializedURL(instance.GatewayName, snapshotID)
}

func (c *ProvisioningCoordinator) CreateSerializedURL(instance store.ServiceInstance, plan store.ServicePlan, snapshotID string) (gateway.Job, error) {
	client, err := c.resolve(plan)
	if err != nil {
		return gateway.Job{}, err
	}
	return client.CreateSerializedURL(instance.GatewayName, snapshotID)
}

func (c *ProvisioningCoordinator) ImportFromURL(instance store.ServiceInstance, plan store.ServicePlan, url string) (gateway.Job, error) {
	client, err := c.resolve(plan)
	if err != nil {
		return gateway.Job{}, err
	}
	return client.ImportFromURL(instance.GatewayName, gateway.ImportFromURLRequest{URL: url})
}

func (c *ProvisioningCoordinator) ImportFromData(instance store.ServiceInstance, plan store.ServicePlan, filePath string) (gateway.Job, error) {
	client, ok := c.Clients.ResolveUpload()
	if !ok {
		return gateway.Job{}, UnavailableError{Label: plan.Service.Label}
	}
	return client.ImportFromData(plan.Service.Label, instance.GatewayName, filePath)
}

func (c *ProvisioningCoordinator) JobInfo(instance store.ServiceInstance, plan store.ServicePlan, jobID string) (gateway.Job, error) {
	client, err := c.resolve(plan)
	if err != nil {
		return gateway.Job{}, err
	}
	return client.JobInfo(instance.GatewayName, jobID)
}
