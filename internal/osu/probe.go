package osu

import (
	"os"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/osu-music-export/internal/io"
)

// Probe is one installation discovery strategy.
type Probe interface {
	// Name describes the strategy in status messages.
	Name() string

	// Probe returns the installation root, or ok=false on a miss.
	Probe() (dir string, ok bool)
}

// DefaultProbes returns the discovery chain used by the command line tools:
// registry, then the configured directory (if any), then common install
// locations.
func DefaultProbes(configured string) []Probe {
	return []Probe{
		NewRegistryProbe(),
		NewConfiguredProbe(configured),
		NewCommonDirsProbe(DefaultCommonDirs()...),
	}
}

// RegistryProbe reads the executable path from the icon registered for
// osu! beatmap archives. On platforms without a registry it always misses.
type RegistryProbe struct {
	query func() (string, error)
}

// NewRegistryProbe creates a RegistryProbe backed by the system registry.
func NewRegistryProbe() *RegistryProbe {
	return &RegistryProbe{query: queryDefaultIcon}
}

// Name implements Probe.
func (p *RegistryProbe) Name() string {
	return "registry"
}

// Probe implements Probe. Any registry error is a miss.
func (p *RegistryProbe) Probe() (string, bool) {
	value, err := p.query()
	if err != nil {
		return "", false
	}

	exe := ExecutableFromIcon(value)
	if exe == "" || !ioutils.FileExists(exe) {
		return "", false
	}
	return filepath.Dir(exe), true
}

// ExecutableFromIcon extracts the executable path from a DefaultIcon value
// such as `"C:\osu!\osu!.exe",1`.
func ExecutableFromIcon(value string) string {
	token, _, _ := strings.Cut(value, ",")
	return strings.Trim(strings.TrimSpace(token), "\"")
}

// ConfiguredProbe checks a directory given on the command line, in the
// environment or in the settings file.
type ConfiguredProbe struct {
	dir string
}

// NewConfiguredProbe creates a ConfiguredProbe. An empty dir always misses.
func NewConfiguredProbe(dir string) *ConfiguredProbe {
	return &ConfiguredProbe{dir: CleanPathInput(dir)}
}

// Name implements Probe.
func (p *ConfiguredProbe) Name() string {
	return "configured path"
}

// Probe implements Probe.
func (p *ConfiguredProbe) Probe() (string, bool) {
	if !HasExecutable(p.dir) {
		return "", false
	}
	return p.dir, true
}

// CommonDirsProbe checks well-known install locations in order.
type CommonDirsProbe struct {
	dirs []string
}

// NewCommonDirsProbe creates a CommonDirsProbe over dirs.
func NewCommonDirsProbe(dirs ...string) *CommonDirsProbe {
	return &CommonDirsProbe{dirs: dirs}
}

// Name implements Probe.
func (p *CommonDirsProbe) Name() string {
	return "common directories"
}

// Probe implements Probe. The first directory containing osu!.exe wins.
func (p *CommonDirsProbe) Probe() (string, bool) {
	for _, dir := range p.dirs {
		if HasExecutable(dir) {
			return dir, true
		}
	}
	return "", false
}

// DefaultCommonDirs returns the conventional install locations: the user's
// local application data folder, then both Program Files variants.
func DefaultCommonDirs() []string {
	localAppData := os.Getenv("LOCALAPPDATA")
	if localAppData == "" {
		if home, err := os.UserHomeDir(); err == nil {
			localAppData = filepath.Join(home, "AppData", "Local")
		}
	}

	var dirs []string
	if localAppData != "" {
		dirs = append(dirs, filepath.Join(localAppData, "osu!"))
	}
	return append(dirs,
		`C:\Program Files\osu!`,
		`C:\Program Files (x86)\osu!`,
	)
}
