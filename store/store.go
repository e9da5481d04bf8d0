package store

import (
	"database/sql"
	"fmt"

	"code.cloudfoundry.org/cf-networking-helpers/db"
	"code.cloudfoundry.org/service-instance-manager/store/helpers"
)

//go:generate counterfeiter -generate

//counterfeiter:generate -o fakes/db.go --fake-name Db . database
type database interface {
	Beginx() (db.Transaction, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
	DriverName() string
}

type Store struct {
	Conn      database
	Instances InstanceRepo
	Bindings  BindingRepo
}

func New(conn database, instances InstanceRepo, bindings BindingRepo) *Store {
	return &Store{
		Conn:      conn,
		Instances: instances,
		Bindings:  bindings,
	}
}

// Create inserts the instance in its own transaction. The caller decides what
// to do about already-provisioned remote state when this fails; the
// DuplicateNameError return is the signal for the name-uniqueness case
// discovered at commit time.
func (s *Store) Create(instance ServiceInstance) (ServiceInstance, error) {
	tx, err := s.Conn.Beginx()
	if err != nil {
		return ServiceInstance{}, fmt.Errorf("create transaction: %s", err)
	}
	defer tx.Rollback()

	id, err := s.Instances.Create(tx, instance)
	if err != nil {
		return ServiceInstance{}, err
	}
	instance.ID = id

	err = tx.Commit()
	if err != nil {
		return ServiceInstance{}, fmt.Errorf("commit transaction: %s", err)
	}
	return instance, nil
}

func (s *Store) Update(instance ServiceInstance) error {
	tx, err := s.Conn.Beginx()
	if err != nil {
		return fmt.Errorf("create transaction: %s", err)
	}
	defer tx.Rollback()

	err = s.Instances.Update(tx, instance)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %s", err)
	}
	return nil
}

func (s *Store) Delete(guid string) error {
	tx, err := s.Conn.Beginx()
	if err != nil {
		return fmt.Errorf("create transaction: %s", err)
	}
	defer tx.Rollback()

	err = s.Instances.Delete(tx, guid)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %s", err)
	}
	return nil
}

func (s *Store) ByGUID(guid string) (ServiceInstance, error) {
	query := helpers.RebindForSQLDialect(`
		SELECT id, guid, name, space_guid, plan_guid, gateway_name, gateway_data, credentials
		FROM service_instances
		WHERE guid = ?`, s.Conn.DriverName())

	var instance ServiceInstance
	var gatewayName, gatewayData, credentials sql.NullString
	err := s.Conn.QueryRow(query, guid).Scan(
		&instance.ID,
		&instance.GUID,
		&instance.Name,
		&instance.SpaceGUID,
		&instance.PlanGUID,
		&gatewayName,
		&gatewayData,
		&credentials,
	)
	if err == sql.ErrNoRows {
		return ServiceInstance{}, InstanceNotFoundError{GUID: guid}
	}
	if err != nil {
		return ServiceInstance{}, fmt.Errorf("selecting service instance: %s", err)
	}

	instance.GatewayName = gatewayName.String
	instance.GatewayData = gatewayData.String
	instance.Credentials = credentials.String
	return instance, nil
}

func (s *Store) CreateBinding(binding ServiceBinding) error {
	tx, err := s.Conn.Beginx()
	if err != nil {
		return fmt.Errorf("create transaction: %s", err)
	}
	defer tx.Rollback()

	err = s.Bindings.Create(tx, binding)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %s", err)
	}
	return nil
}

func (s *Store) BindingCount(instanceGUID string) (int, error) {
	query := helpers.RebindForSQLDialect(
		`SELECT COUNT(*) FROM service_bindings WHERE instance_guid = ?`,
		s.Conn.DriverName(),
	)

	var count int
	err := s.Conn.QueryRow(query, instanceGUID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting service bindings: %s", err)
	}
	return count, nil
}

func (s *Store) CheckDatabase() error {
	var result int
	return s.Conn.QueryRow("SELECT 1").Scan(&result)
}
