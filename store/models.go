package store

// ServiceInstance is the locally persisted record of a provisioned service.
// GatewayData and Credentials hold serialized JSON text, never structured
// values; Credentials is sensitive and must not appear in summaries or logs.
type ServiceInstance struct {
	ID          int64
	GUID        string
	Name        string
	SpaceGUID   string
	PlanGUID    string
	GatewayName string
	GatewayData string
	Credentials string
}

type ServiceBinding struct {
	GUID         string
	InstanceGUID string
	AppGUID      string
	AppSpaceGUID string
}

type ServicePlan struct {
	GUID    string
	Name    string
	Free    bool
	Service Service
}

type Service struct {
	GUID           string
	Label          string
	Provider       string
	Version        string
	URL            string
	TimeoutSeconds int
	AuthToken      string
}

// Organization carries the quota snapshot used for admission control. The
// quota authority lives outside this process; these fields are a point-in-time
// read, not something this store maintains.
type Organization struct {
	GUID                          string
	Name                          string
	ServiceInstanceQuotaRemaining bool
	PaidServicesAllowed           bool
}

type Space struct {
	GUID         string
	Name         string
	Organization Organization
}
