package cbridge

import (
	"emperror.dev/errors"
)

const (
	//ErrInvalidArgument is returned when a mapping is constructed from a missing argument
	ErrInvalidArgument = errors.Sentinel("invalid argument")
	//ErrInvalidMapping is returned by BridgeOptions.Validate when a mapping can not be consumed by a bridge
	ErrInvalidMapping = errors.Sentinel("invalid mapping")
)

func invalidArgument(argument string, direction Direction) error {
	return errors.WithDetails(
		errors.WithMessagef(ErrInvalidArgument, "%s must not be empty", argument),
		"argument", argument,
		"mapping", string(direction))
}

func invalidMapping(reason string, m Mapping) error {
	return errors.WithDetails(
		errors.WithMessage(ErrInvalidMapping, reason),
		"direction", string(m.Direction()),
		"address", m.Address(),
		"uri", m.URI())
}
