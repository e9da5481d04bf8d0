package gateway

import (
	"net/http"
	"time"

	"code.cloudfoundry.org/cf-networking-helpers/json_client"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/service-instance-manager/store"
)

//counterfeiter:generate -o fakes/client_factory.go --fake-name ClientFactory . ClientFactory
type ClientFactory interface {
	Resolve(plan store.ServicePlan) (Client, bool)
	ResolveUpload() (UploadClient, bool)
}

// Factory builds a client per plan from the plan's service definition. A
// service without an auth token has no reachable gateway, so Resolve reports
// unavailable and the caller degrades to a no-op.
type Factory struct {
	Logger        lager.Logger
	UploadURL     string
	UploadToken   string
	UploadTimeout time.Duration
}

func (f *Factory) Resolve(plan store.ServicePlan) (Client, bool) {
	service := plan.Service
	if service.AuthToken == "" {
		return nil, false
	}

	httpClient := &http.Client{
		Timeout: time.Duration(service.TimeoutSeconds) * time.Second,
	}
	jsonClient := json_client.New(f.Logger.Session("gateway-json-client", lager.Data{"service": service.Label}), httpClient, service.URL)

	return &HTTPClient{
		JSONClient: jsonClient,
		AuthToken:  service.AuthToken,
		Logger:     f.Logger,
	}, true
}

func (f *Factory) ResolveUpload() (UploadClient, bool) {
	if f.UploadURL == "" || f.UploadToken == "" {
		return nil, false
	}

	return &HTTPUploadClient{
		BaseURL: f.UploadURL,
		Token:   f.UploadToken,
		HTTPClient: &http.Client{
			Timeout: f.UploadTimeout,
		},
		Logger: f.Logger.Session("gateway-upload-client"),
	}, true
}
