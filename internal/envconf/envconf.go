// Package envconf resolves gluster volume settings from dotenv-style
// configuration files and the process environment.
package envconf

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertwitch/gfapi"
)

// Environment keys recognized by [Provider.VolumeConfig].
const (
	KeyHost     = "GFAPI_HOST"
	KeyVolume   = "GFAPI_VOLUME"
	KeyProtocol = "GFAPI_PROTOCOL"
	KeyPort     = "GFAPI_PORT"
	KeyLogFile  = "GFAPI_LOGFILE"
	KeyLogLevel = "GFAPI_LOGLEVEL"
)

type fileReader interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Provider reads configuration files and maps their keys onto volume
// settings.
type Provider struct {
	FileReader fileReader
}

// NewProvider returns a [Provider] backed by a [DotenvReader].
func NewProvider() *Provider {
	return &Provider{FileReader: &DotenvReader{}}
}

// ReadFiles reads the given configuration files into a merged map.
func (p *Provider) ReadFiles(filenames ...string) (envMap map[string]string, err error) {
	return p.FileReader.Read(filenames...)
}

// MapKeyToString returns the value for key, or an empty string when the
// key is absent.
func (p *Provider) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToInt returns the value for key as an integer, or -1 when the
// key is absent or not numeric.
func (p *Provider) MapKeyToInt(envMap map[string]string, key string) int {
	value := p.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}

	return intValue
}

// Environ returns the process environment as a map (map[key]value).
func Environ() map[string]string {
	envMap := make(map[string]string)

	for _, entry := range os.Environ() {
		if key, value, ok := strings.Cut(entry, "="); ok {
			envMap[key] = value
		}
	}

	return envMap
}

// VolumeConfig maps the GFAPI_* keys of envMap onto a [gfapi.Config].
// Absent keys are left at their zero values, deferring to the defaults
// of [gfapi.NewWithConfig].
func (p *Provider) VolumeConfig(envMap map[string]string) (gfapi.Config, error) {
	cfg := gfapi.Config{
		Host:     p.MapKeyToString(envMap, KeyHost),
		Volname:  p.MapKeyToString(envMap, KeyVolume),
		Protocol: p.MapKeyToString(envMap, KeyProtocol),
		LogFile:  p.MapKeyToString(envMap, KeyLogFile),
	}

	if port := p.MapKeyToInt(envMap, KeyPort); port > 0 {
		cfg.Port = port
	}

	if name := p.MapKeyToString(envMap, KeyLogLevel); name != "" {
		level, err := ParseLogLevel(name)
		if err != nil {
			return gfapi.Config{}, fmt.Errorf("(envconf) %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// Resolve reads the given configuration files, overlays the process
// environment on top and maps the result onto a [gfapi.Config]. Files
// are optional; with none given only the environment is consulted.
func (p *Provider) Resolve(filenames ...string) (gfapi.Config, error) {
	envMap := make(map[string]string)

	if len(filenames) > 0 {
		fileMap, err := p.ReadFiles(filenames...)
		if err != nil {
			return gfapi.Config{}, fmt.Errorf("(envconf) %w", err)
		}
		envMap = fileMap
	}

	for key, value := range Environ() {
		envMap[key] = value
	}

	return p.VolumeConfig(envMap)
}

// ParseLogLevel converts a level name such as "info" or "debug" into
// the corresponding [gfapi.LogLevel].
func ParseLogLevel(name string) (gfapi.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return gfapi.LogNone, nil
	case "emerg":
		return gfapi.LogEmerg, nil
	case "alert":
		return gfapi.LogAlert, nil
	case "critical":
		return gfapi.LogCritical, nil
	case "error":
		return gfapi.LogError, nil
	case "warning":
		return gfapi.LogWarning, nil
	case "notice":
		return gfapi.LogNotice, nil
	case "info":
		return gfapi.LogInfo, nil
	case "debug":
		return gfapi.LogDebug, nil
	case "trace":
		return gfapi.LogTrace, nil
	default:
		return gfapi.LogNone, fmt.Errorf("(envconf) unknown log level %q", name)
	}
}
