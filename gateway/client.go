package gateway

import (
	"fmt"

	"code.cloudfoundry.org/cf-networking-helpers/json_client"
	"code.cloudfoundry.org/lager/v3"
)

//go:generate counterfeiter -generate

//counterfeiter:generate -o fakes/client.go --fake-name Client . Client
type Client interface {
	Provision(req ProvisionRequest) (ProvisionResponse, error)
	Unprovision(serviceID string) error
	CreateSnapshot(serviceID string) (Job, error)
	EnumSnapshots(serviceID string) ([]Snapshot, error)
	SnapshotDetails(serviceID, snapshotID string) (Snapshot, error)
	RollbackSnapshot(serviceID, snapshotID string) (Job, error)
	DeleteSnapshot(serviceID, snapshotID string) (Job, error)
	SerializedURL(serviceID, snapshotID string) (SerializedURL, error)
	CreateSerializedURL(serviceID, snapshotID string) (Job, error)
	ImportFromURL(serviceID string, req ImportFromURLRequest) (Job, error)
	JobInfo(serviceID, jobID string) (Job, error)
}

type ProvisionRequest struct {
	Label    string `json:"label"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserGUID string `json:"user_guid"`
	Plan     string `json:"plan"`
	Version  string `json:"version"`
	Provider string `json:"provider"`
}

type ProvisionResponse struct {
	ServiceID     string      `json:"service_id"`
	Configuration interface{} `json:"configuration"`
	Credentials   interface{} `json:"credentials"`
}

type Snapshot struct {
	SnapshotID string `json:"snapshot_id"`
	Size       int64  `json:"size"`
	State      string `json:"state"`
}

type snapshotList struct {
	Snapshots []Snapshot `json:"snapshots"`
}

type Job struct {
	JobID       string      `json:"job_id"`
	Status      string      `json:"status"`
	Description string      `json:"description"`
	Result      interface{} `json:"result,omitempty"`
}

type SerializedURL struct {
	URL string `json:"url"`
}

type ImportFromURLRequest struct {
	URL string `json:"url"`
}

// HTTPClient talks to one service gateway. The gateway performs the actual
// provisioning work; this client only moves requests across the wire with the
// service's auth token.
type HTTPClient struct {
	JSONClient json_client.JsonClient
	AuthToken  string
	Logger     lager.Logger
}

func (c *HTTPClient) Provision(req ProvisionRequest) (ProvisionResponse, error) {
	var response ProvisionResponse
	err := c.JSONClient.Do("POST", "/gateway/v1/configurations", req, &response, c.AuthToken)
	if err != nil {
		return ProvisionResponse{}, fmt.Errorf("json client do: %s", err)
	}
	c.Logger.Debug("provisioned", lager.Data{"service_id": response.ServiceID})
	return response, nil
}

func (c *HTTPClient) Unprovision(serviceID string) error {
	route := fmt.Sprintf("/gateway/v1/configurations/%s", serviceID)
	err := c.JSONClient.Do("DELETE", route, nil, nil, c.AuthToken)
	if err != nil {
		return fmt.Errorf("json client do: %s", err)
	}
	return nil
}

func (c *HTTPClient) CreateSnapshot(serviceID string) (Job, error) {
	route := fmt.Sprintf("/gateway/v1/configurations/%s/snapshots", serviceID)
	var job Job
	err := c.JSONClient.Do("POST", route, nil, &job, c.AuthToken)
	if err != nil {
		return Job{}, fmt.Errorf("json client do: %s", err)
	}
	return job, nil
}

func (c *HTTPClient) EnumSnapshots(serviceID string) ([]Snapshot, error) {
	route := fmt.Sprintf("/gateway/v1/configurations/%s/snapshots", serviceID)
	var list snapshotList
	err := c.JSONClient.Do("GET", route, nil, &list, c.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("json client do: %s", err)
	}
	return list.Snapshots, nil
}

func (c *HTTPClient) SnapshotDetails(serviceID, snapshotID string) (Snapshot, error) {
	route := fmt.Sprintf("/gateway/v1/configurations/%s/snapshots/%s", serviceID, snapshotID)
	var snapshot Snapshot
	err := c.JSONClient.Do("GET", route, nil, &snapshot, c.AuthToken)
	if err != nil {
		return Snapshot{}, fmt.Errorf("json client do: %s", err)
	}
	return snapshot, nil
}

func (c *HTTPClient) RollbackSnapshot(serviceID, snapshotID string) (Job, error) {
	route := fmt.Sprintf("/gateway/v1/configurations/%s/snapshots/%s", serviceID, snapshotID)
	var job Job
	err := c.JSONClient.Do("PUT", route, nil, &job, c.AuthToken)
	if err != nil {
		return Job{}, fmt.Errorf("json client do: %s", err)
	}
	return job, nil
}

func (c *HTTPClient) DeleteSnapshot(serviceID, snapshotID string) (Job, error) {
	route := fmt.Sprintf("/gateway/v1/configurations/%s/snapshots/%s", serviceID, snapshotID)
	var job Job
	err := c.JSONClient.Do("DELETE", route, nil, &job, c.AuthToken)
	if err != nil {
		return Job{}, fmt.Errorf("json client do: %s", err)
	}
	return job, nil
}

func (c *HTTPClient) SerializedURL(serviceID, snapshotID string) (SerializedURL, error) {
	route := fmt.Sprintf("/gateway/v1/configurations/%s/serialized/url/snapshots/%s", serviceID, snapshotID)
	var serialized SerializedURL
	err := c.JSONClient.Do("GET", route, nil, &serialized, c.AuthToken)
	if err != nil {
		return SerializedURL{}, fmt.Errorf("json client do: %s", err)
	}
	return serialized, nil
}

func (c *HTTPClient) CreateSerializedURL(serviceID, snapshotID string) (Job, error) {
	route := fmt.Sprintf("/gateway/v1/configurations/%s/serialized/url/snapshots/%s", serviceID, snapshotID)
	var job Job
	err := c.JSONClient.Do("POST", route, nil, &job, c.AuthToken)
	if err != nil {
		return Job{}, fmt.Errorf("json client do: %s", err)
	}
	return job, nil
}

func (c *HTTPClient) ImportFromURL(serviceID string, req ImportFromURLRequest) (Job, error) {
	route := fmt.Sprintf("/gateway/v1/configurations/%s/serialized/url", serviceID)
	var job Job
	err := c.JSONClient.Do("PUT", route, req, &job, c.AuthToken)
	if err != nil {
		return Job{}, fmt.Errorf("json client do: %s", err)
	}
	return job, nil
}

func (c *HTTPClient) JobInfo(serviceID, jobID string) (Job, error) {
	route := fmt.Sprintf("/gateway/v1/configurations/%s/jobs/%s", serviceID, jobID)
	var job Job
	err := c.JSONClient.Do("GET", route, nil, &job, c.AuthToken)
	if err != nil {
		return Job{}, fmt.Errorf("json client do: %s", err)
	}
	return job, nil
}
