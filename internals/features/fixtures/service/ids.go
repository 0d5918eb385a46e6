package service

import (
	"io"

	"github.com/google/uuid"
)

func newUUID(r io.Reader) (string, error) {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
