// Package cc_client reads space and organization snapshots from the cloud
// controller. The organization payload carries the quota booleans that the
// admission checks evaluate; this client never writes anything.
package cc_client

import (
	"fmt"

	"code.cloudfoundry.org/cf-networking-helpers/json_client"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/service-instance-manager/store"
)

//go:generate counterfeiter -generate

//counterfeiter:generate -o fakes/cc_client.go --fake-name CCClient . CCClient
type CCClient interface {
	GetSpace(token, spaceGUID string) (*store.Space, error)
}

type Client struct {
	JSONClient json_client.JsonClient
	Logger     lager.Logger
}

type SpaceResponse struct {
	Metadata struct {
		GUID string `json:"guid"`
	} `json:"metadata"`
	Entity struct {
		Name             string `json:"name"`
		OrganizationGUID string `json:"organization_guid"`
	} `json:"entity"`
}

type OrgResponse struct {
	Metadata struct {
		GUID string `json:"guid"`
	} `json:"metadata"`
	Entity struct {
		Name                          string `json:"name"`
		ServiceInstanceQuotaRemaining bool   `json:"service_instance_quota_remaining"`
		PaidServicesAllowed           bool   `json:"paid_services_allowed"`
	} `json:"entity"`
}

func (c *Client) GetSpace(token, spaceGUID string) (*store.Space, error) {
	token = fmt.Sprintf("bearer %s", token)

	route := fmt.Sprintf("/v2/spaces/%s", spaceGUID)
	var spaceResponse SpaceResponse
	err := c.JSONClient.Do("GET", route, nil, &spaceResponse, token)
	if err != nil {
		if httpErr, ok := err.(*json_client.HttpResponseCodeError); ok && httpErr.StatusCode == 404 {
			return nil, nil
		}
		return nil, fmt.Errorf("json client do: %s", err)
	}

	route = fmt.Sprintf("/v2/organizations/%s", spaceResponse.Entity.OrganizationGUID)
	var orgResponse OrgResponse
	err = c.JSONClient.Do("GET", route, nil, &orgResponse, token)
	if err != nil {
		return nil, fmt.Errorf("json client do: %s", err)
	}

	return &store.Space{
		GUID: spaceGUID,
		Name: spaceResponse.Entity.Name,
		Organization: store.Organization{
			GUID:                          orgResponse.Metadata.GUID,
			Name:                          orgResponse.Entity.Name,
			ServiceInstanceQuotaRemaining: orgResponse.Entity.ServiceInstanceQuotaRemaining,
			PaidServicesAllowed:           orgResponse.Entity.PaidServicesAllowed,
		},
	}, nil
}
