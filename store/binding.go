package store

import (
	"fmt"

	"code.cloudfoundry.org/cf-networking-helpers/db"
)

//counterfeiter:generate -o fakes/binding_repo.go --fake-name BindingRepo . BindingRepo
type BindingRepo interface {
	Create(db.Transaction, ServiceBinding) error
}

type BindingTable struct {
}

func (b *BindingTable) Create(tx db.Transaction, binding ServiceBinding) error {
	_, err := tx.Exec(tx.Rebind(`
		INSERT INTO service_bindings (guid, instance_guid, app_guid, app_space_guid)
		VALUES (?, ?, ?, ?)`),
		binding.GUID,
		binding.InstanceGUID,
		binding.AppGUID,
		binding.AppSpaceGUID,
	)
	if err != nil {
		return fmt.Errorf("inserting service binding: %s", err)
	}
	return nil
}
