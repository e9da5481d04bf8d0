package store

import "fmt"

type DuplicateNameError struct {
	SpaceGUID string
	Name      string
}

func (e DuplicateNameError) Error() string {
	return fmt.Sprintf("service instance name '%s' is taken in space %s", e.Name, e.SpaceGUID)
}

type InstanceNotFoundError struct {
	GUID string
}

func (e InstanceNotFoundError) Error() string {
	return fmt.Sprintf("service instance %s not found", e.GUID)
}
