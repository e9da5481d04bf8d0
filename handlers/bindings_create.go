package handlers

import (
	"io"
	"net/http"

	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"code.cloudfoundry.org/service-instance-manager/lifecycle"
	"code.cloudfoundry.org/service-instance-manager/store"
)

//counterfeiter:generate -o fakes/binding_attacher.go --fake-name BindingAttacher . bindingAttacher
type bindingAttacher interface {
	Attach(instance store.ServiceInstance, binding store.ServiceBinding) (store.ServiceBinding, error)
}

type CreateBindingPayload struct {
	ServiceInstanceGUID string `json:"service_instance_guid"`
	AppGUID             string `json:"app_guid"`
	AppSpaceGUID        string `json:"app_space_guid"`
}

type CreateBindingResponse struct {
	GUID                string `json:"guid"`
	ServiceInstanceGUID string `json:"service_instance_guid"`
	AppGUID             string `json:"app_guid"`
}

type BindingsCreate struct {
	Store         instanceGetter
	Attacher      bindingAttacher
	Marshaler     marshal.Marshaler
	Unmarshaler   marshal.Unmarshaler
	ErrorResponse errorResponse
}

func (h *BindingsCreate) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	logger := getLogger(req)
	logger = logger.Session("create-binding")

	requestBytes, err := io.ReadAll(io.LimitReader(req.Body, MAX_REQ_BODY_SIZE))
	if err != nil {
		h.ErrorResponse.BadRequest(logger, w, err, "failed reading request body")
		return
	}

	var payload CreateBindingPayload
	err = h.Unmarshaler.Unmarshal(requestBytes, &payload)
	if err != nil {
		h.ErrorResponse.BadRequest(logger, w, err, "invalid values passed to API")
		return
	}

	instance, err := h.Store.ByGUID(payload.ServiceInstanceGUID)
	if err != nil {
		if notFound, ok := err.(store.InstanceNotFoundError); ok {
			h.ErrorResponse.NotFound(logger, w, notFound, notFound.Error())
			return
		}
		h.ErrorResponse.InternalServerError(logger, w, err, "failed reading service instance")
		return
	}

	binding, err := h.Attacher.Attach(instance, store.ServiceBinding{
		AppGUID:      payload.AppGUID,
		AppSpaceGUID: payload.AppSpaceGUID,
	})
	if err != nil {
		if validationErrors, ok := err.(lifecycle.ValidationErrors); ok {
			h.ErrorResponse.BadRequest(logger, w, validationErrors, validationErrors.Error())
			return
		}
		h.ErrorResponse.InternalServerError(logger, w, err, "failed creating service binding")
		return
	}

	responseBytes, err := h.Marshaler.Marshal(CreateBindingResponse{
		GUID:                binding.GUID,
		ServiceInstanceGUID: binding.InstanceGUID,
		AppGUID:             binding.AppGUID,
	})
	if err != nil {
		h.ErrorResponse.InternalServerError(logger, w, err, "failed marshaling response")
		return
	}

	w.WriteHeader(http.StatusCreated)
	w.Write(responseBytes)
}
