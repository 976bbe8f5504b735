package probe

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"autoinsight/pkg/contextx"
	"autoinsight/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	statusOnline = "online"
	healthy      = "Healthy"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Probe serves the service metadata and liveness endpoints. Both answers are
// rendered once at construction.
type Probe struct {
	info []byte
}

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

type info struct {
	Options

	Status string `json:"status"`
}

func New(options Options) Probe {
	infoJSON, _ := json.Marshal(info{Options: options, Status: statusOnline}) //nolint:errcheck,errchkjson

	return Probe{
		info: infoJSON,
	}
}

// Info answers GET / with name, version, status and docs link.
func (p Probe) Info(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(p.info); err != nil {
		logger(r.Context()).Error("w.Write", logx.Error(err))
	}
}

// Health answers GET /health.
func (p Probe) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(healthy)); err != nil {
		logger(r.Context()).Error("w.Write", logx.Error(err))
	}
}
