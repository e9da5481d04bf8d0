package store

import (
	"fmt"
	"strings"

	"code.cloudfoundry.org/cf-networking-helpers/db"
)

const mysqlErrorCode = "1062"
const postgresErrorCode = "23505"

//counterfeiter:generate -o fakes/instance_repo.go --fake-name InstanceRepo . InstanceRepo
type InstanceRepo interface {
	Create(db.Transaction, ServiceInstance) (int64, error)
	Update(db.Transaction, ServiceInstance) error
	Delete(db.Transaction, string) error
}

type InstanceTable struct {
}

func (i *InstanceTable) Create(tx db.Transaction, instance ServiceInstance) (int64, error) {
	_, err := tx.Exec(tx.Rebind(`
		INSERT INTO service_instances (guid, name, space_guid, plan_guid, gateway_name, gateway_data, credentials)
		VALUES (?, ?, ?, ?, ?, ?, ?)`),
		instance.GUID,
		instance.Name,
		instance.SpaceGUID,
		instance.PlanGUID,
		instance.GatewayName,
		instance.GatewayData,
		instance.Credentials,
	)
	if err != nil {
		if isDuplicateError(err) {
			return -1, DuplicateNameError{SpaceGUID: instance.SpaceGUID, Name: instance.Name}
		}
		return -1, fmt.Errorf("inserting service instance: %s", err)
	}

	var id int64
	err = tx.QueryRow(tx.Rebind(`SELECT id FROM service_instances WHERE guid = ?`), instance.GUID).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("reading back service instance id: %s", err)
	}
	return id, nil
}

// Update rewrites the mutable columns. The guid, space and plan are fixed at
// create time; a rename or a refreshed gateway document is all that changes.
func (i *InstanceTable) Update(tx db.Transaction, instance ServiceInstance) error {
	result, err := tx.Exec(tx.Rebind(`
		UPDATE service_instances
		SET name = ?, gateway_name = ?, gateway_data = ?, credentials = ?
		WHERE guid = ?`),
		instance.Name,
		instance.GatewayName,
		instance.GatewayData,
		instance.Credentials,
		instance.GUID,
	)
	if err != nil {
		if isDuplicateError(err) {
			return DuplicateNameError{SpaceGUID: instance.SpaceGUID, Name: instance.Name}
		}
		return fmt.Errorf("updating service instance: %s", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %s", err)
	}
	if rowsAffected == 0 {
		return InstanceNotFoundError{GUID: instance.GUID}
	}
	return nil
}

func (i *InstanceTable) Delete(tx db.Transaction, guid string) error {
	_, err := tx.Exec(tx.Rebind(`DELETE FROM service_bindings WHERE instance_guid = ?`), guid)
	if err != nil {
		return fmt.Errorf("deleting service bindings: %s", err)
	}
	_, err = tx.Exec(tx.Rebind(`DELETE FROM service_instances WHERE guid = ?`), guid)
	if err != nil {
		return fmt.Errorf("deleting service instance: %s", err)
	}
	return nil
}

func isDuplicateError(err error) bool {
	return strings.Contains(err.Error(), mysqlErrorCode) || strings.Contains(err.Error(), postgresErrorCode)
}
