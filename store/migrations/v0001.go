package migrations

var migration_v0001 = map[string][]string{
	"mysql": {
		`CREATE TABLE IF NOT EXISTS service_instances (
		id int NOT NULL AUTO_INCREMENT,
		guid varchar(255) NOT NULL,
		name varchar(255) NOT NULL,
		space_guid varchar(255) NOT NULL,
		plan_guid varchar(255) NOT NULL,
		gateway_name varchar(255),
		gateway_data longtext,
		credentials longtext,
		UNIQUE (guid),
		UNIQUE (space_guid, name),
		PRIMARY KEY (id)
	);`,
		`CREATE TABLE IF NOT EXISTS service_bindings (
		id int NOT NULL AUTO_INCREMENT,
		guid varchar(255) NOT NULL,
		instance_guid varchar(255) NOT NULL,
		app_guid varchar(255) NOT NULL,
		app_space_guid varchar(255) NOT NULL,
		UNIQUE (guid),
		UNIQUE (instance_guid, app_guid),
		PRIMARY KEY (id)
	);`,
	},
	"postgres": {
		`CREATE TABLE IF NOT EXISTS service_instances (
		id SERIAL PRIMARY KEY,
		guid text NOT NULL,
		name text NOT NULL,
		space_guid text NOT NULL,
		plan_guid text NOT NULL,
		gateway_name text,
		gateway_data text,
		credentials text,
		UNIQUE (guid),
		UNIQUE (space_guid, name)
	);`,
		`CREATE TABLE IF NOT EXISTS service_bindings (
		id SERIAL PRIMARY KEY,
		guid text NOT NULL,
		instance_guid text NOT NULL,
		app_guid text NOT NULL,
		app_space_guid text NOT NULL,
		UNIQUE (guid),
		UNIQUE (instance_guid, app_guid)
	);`,
	},
}
