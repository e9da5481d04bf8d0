package lifecycle

import uuid "github.com/nu7hatch/gouuid"

type UUIDGenerator struct {
}

func (g *UUIDGenerator) New() (string, error) {
	guid, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return guid.String(), nil
}
