package entity

import (
	"errors"
	"strconv"
)

var ErrLightNotFound = errors.New("light not found")

type LightId int

func (id LightId) String() string {
	return strconv.Itoa(int(id))
}
