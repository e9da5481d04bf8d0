package handlers

import (
	"fmt"
	"io"
	"net/http"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"code.cloudfoundry.org/service-instance-manager/lifecycle"
	"code.cloudfoundry.org/service-instance-manager/store"
)

//counterfeiter:generate -o fakes/instance_creator.go --fake-name InstanceCreator . instanceCreator
type instanceCreator interface {
	Create(req lifecycle.CreateRequest) (store.ServiceInstance, error)
}

//counterfeiter:generate -o fakes/space_getter.go --fake-name SpaceGetter . spaceGetter
type spaceGetter interface {
	GetSpace(token, spaceGUID string) (*store.Space, error)
}

//counterfeiter:generate -o fakes/token_source.go --fake-name TokenSource . tokenSource
type tokenSource interface {
	GetToken() (string, error)
}

//counterfeiter:generate -o fakes/plan_catalog.go --fake-name PlanCatalog . planCatalog
type planCatalog interface {
	PlanByGUID(guid string) (store.ServicePlan, error)
}

type CreateInstancePayload struct {
	Name            string `json:"name"`
	SpaceGUID       string `json:"space_guid"`
	ServicePlanGUID string `json:"service_plan_guid"`
}

type CreateInstanceResponse struct {
	GUID            string `json:"guid"`
	Name            string `json:"name"`
	SpaceGUID       string `json:"space_guid"`
	ServicePlanGUID string `json:"service_plan_guid"`
	GatewayName     string `json:"gateway_name,omitempty"`
}

type InstancesCreate struct {
	Creator       instanceCreator
	Spaces        spaceGetter
	Tokens        tokenSource
	Plans         planCatalog
	Marshaler     marshal.Marshaler
	Unmarshaler   marshal.Unmarshaler
	ErrorResponse errorResponse
}

func (h *InstancesCreate) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("create-instance")
	tokenData := getTokenData(req)

	requestBytes, err := io.ReadAll(io.LimitReader(req.Body, MAX_REQ_BODY_SIZE))
	if err != nil {
		h.ErrorResponse.BadRequest(logger, w, err, "failed reading request body")
		return
	}

	var payload CreateInstancePayload
	err = h.Unmarshaler.Unmarshal(requestBytes, &payload)
	if err != nil {
		h.ErrorResponse.BadRequest(logger, w, err, "invalid values passed to API")
		return
	}

	var plan *store.ServicePlan
	if payload.ServicePlanGUID != "" {
		resolved, err := h.Plans.PlanByGUID(payload.ServicePlanGUID)
		if err != nil {
			h.ErrorResponse.BadRequest(logger, w, err, fmt.Sprintf("service plan %s not found", payload.ServicePlanGUID))
			return
		}
		plan = &resolved
	}

	var space *store.Space
	if payload.SpaceGUID != "" {
		ccToken, err := h.Tokens.GetToken()
		if err != nil {
			h.ErrorResponse.InternalServerError(logger, w, err, "failed to get uaa token")
			return
		}
		space, err = h.Spaces.GetSpace(ccToken, payload.SpaceGUID)
		if err != nil {
			h.ErrorResponse.InternalServerError(logger, w, err, "failed to get space from cloud controller")
			return
		}
	}

	instance, err := h.Creator.Create(lifecycle.CreateRequest{
		Name:  payload.Name,
		Space: space,
		Plan:  plan,
		ActingUser: lifecycle.ActingUser{
			Email: tokenData.ActingEmail(),
			GUID:  tokenData.UserID,
		},
	})
	if err != nil {
		switch typedErr := err.(type) {
		case lifecycle.ValidationErrors:
			h.ErrorResponse.BadRequest(logger, w, typedErr, typedErr.Error())
		case store.DuplicateNameError:
			h.ErrorResponse.Conflict(logger, w, typedErr, typedErr.Error())
		default:
			h.ErrorResponse.InternalServerError(logger, w, err, "failed creating service instance")
		}
		return
	}

	responseBytes, err := h.Marshaler.Marshal(CreateInstanceResponse{
		GUID:            instance.GUID,
		Name:            instance.Name,
		SpaceGUID:       instance.SpaceGUID,
		ServicePlanGUID: instance.PlanGUID,
		GatewayName:     instance.GatewayName,
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "failed marshaling response")
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write(responseBytes)
}
