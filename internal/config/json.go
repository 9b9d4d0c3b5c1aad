package config

import (
	"encoding/json"
	"os"

	"github.com/mindful-ai-dude/multilingo/internal/flagx"
	"github.com/mindful-ai-dude/multilingo/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "3s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config.
type JsonConfig struct {
	DatabaseDSN         string         `json:"database_dsn"`
	RemoteEndpointAddr  string         `json:"remote_endpoint_addr"`
	ProbeURL            string         `json:"probe_url"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	SyncInterval        timex.Duration `json:"sync_interval"`
	SweepInterval       timex.Duration `json:"sweep_interval"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c or -config flags. Missing file path means nothing is loaded; read
// or unmarshal errors panic (caller should recover if desired). Zero fields
// in the file leave the current value alone.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RemoteEndpointAddr != "" {
		cfg.RemoteEndpointAddr = jc.RemoteEndpointAddr
	}
	if jc.ProbeURL != "" {
		cfg.ProbeURL = jc.ProbeURL
	}
	if jc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.SyncInterval.Duration > 0 {
		cfg.SyncInterval = jc.SyncInterval.Duration
	}
	if jc.SweepInterval.Duration > 0 {
		cfg.SweepInterval = jc.SweepInterval.Duration
	}
}
