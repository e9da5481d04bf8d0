package migrations

import (
	"fmt"

	migrate "github.com/cf-container-networking/sql-migrate"
	"github.com/jmoiron/sqlx"
)

//go:generate counterfeiter -generate

//counterfeiter:generate -o fakes/migration_db.go --fake-name MigrationDb . MigrationDb
type MigrationDb interface {
	DriverName() string
	RawConnection() *sqlx.DB
}

//counterfeiter:generate -o fakes/migrate_adapter.go --fake-name MigrateAdapter . migrateAdapter
type migrateAdapter interface {
	ExecMax(db MigrationDb, dialect string, m migrate.MigrationSource, dir migrate.MigrationDirection, max int) (int, error)
}

type migration struct {
	id        string
	byDialect map[string][]string
}

var migrationsToPerform = []migration{
	{id: "1", byDialect: migration_v0001},
}

type Migrator struct {
	MigrateAdapter migrateAdapter
}

func NewMigrator() *Migrator {
	return &Migrator{
		MigrateAdapter: &MigrateAdapter{},
	}
}

func (m *Migrator) PerformMigrations(driverName string, migrationDb MigrationDb) (int, error) {
	memorySource := &migrate.MemoryMigrationSource{}
	for _, mig := range migrationsToPerform {
		statements, ok := mig.byDialect[driverName]
		if !ok {
			return 0, fmt.Errorf("unsupported driver: %s", driverName)
		}
		memorySource.Migrations = append(memorySource.Migrations, &migrate.Migration{
			Id: mig.id,
			Up: statements,
		})
	}

	numMigrations, err := m.MigrateAdapter.ExecMax(migrationDb, driverName, memorySource, migrate.Up, 0)
	if err != nil {
		return numMigrations, fmt.Errorf("executing migrations: %s", err)
	}
	return numMigrations, nil
}
