package server

import (
	"autoinsight/pkg/contextx"
	"autoinsight/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Server combines the per-entity HTTP servers with the service endpoints.
type Server struct {
	VehicleServer

	probe probe.Probe
	docs  []byte
}

func NewServer(
	vehicleServer VehicleServer,
	probe probe.Probe,
	docs []byte,
) Server {
	return Server{
		VehicleServer: vehicleServer,
		probe:         probe,
		docs:          docs,
	}
}
