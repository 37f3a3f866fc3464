// Package clitool manages the lifecycle of the minc CLI binary: detection,
// install, update-selection and uninstall across the three supported
// operating systems, with an elevated-privilege fallback path.
package clitool

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/minc-org/minc-desktop/pkg/client/ghrelease"
	"github.com/minc-org/minc-desktop/pkg/host"
	"github.com/minc-org/minc-desktop/pkg/runner"
)

// Provenance records who installed the binary currently in use.
type Provenance string

const (
	// ProvenanceExtension means this system installed the binary.
	ProvenanceExtension Provenance = "extension"

	// ProvenanceExternal means the binary preexisted on the system. External
	// binaries are never overwritten or auto-updated.
	ProvenanceExternal Provenance = "external"
)

// Phase is the manager's explicit lifecycle state.
type Phase int

// Lifecycle phases. Install walks uninstalled → version-selected → installing
// → installed; update walks installed ⇄ update-available → version-selected →
// updating; uninstall walks installed → uninstalling → uninstalled.
const (
	PhaseUninstalled Phase = iota
	PhaseVersionSelected
	PhaseInstalling
	PhaseInstalled
	PhaseUpdateAvailable
	PhaseUpdating
	PhaseUninstalling
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUninstalled:
		return "uninstalled"
	case PhaseVersionSelected:
		return "version-selected"
	case PhaseInstalling:
		return "installing"
	case PhaseInstalled:
		return "installed"
	case PhaseUpdateAvailable:
		return "update-available"
	case PhaseUpdating:
		return "updating"
	case PhaseUninstalling:
		return "uninstalling"
	default:
		return "unknown"
	}
}

// BinaryRecord is the manager's view of the installed binary.
type BinaryRecord struct {
	// Path is the resolved filesystem path.
	Path string

	// Version is the normalized version string.
	Version string

	// Provenance records who installed the binary.
	Provenance Provenance
}

// ReleaseSelection is the transient state between selecting a version and
// performing the install or update.
type ReleaseSelection struct {
	// Release is the chosen release.
	Release ghrelease.Release

	// Version is the normalized version string of the release.
	Version string
}

// Manager detects, installs, updates and uninstalls the minc CLI binary.
// It is single-writer state confined to one instance per process; callers
// must not invoke its mutating operations concurrently.
type Manager struct {
	run      runner.Runner
	releases ReleaseSource
	tools    host.ToolRegistry
	prompt   host.Prompt
	log      *logrus.Logger

	storageDir string

	phase            Phase
	binary           *BinaryRecord
	handle           host.ToolHandle
	latest           *ghrelease.Release
	availableVersion string
	pending          *ReleaseSelection
}

// NewManager creates a Manager. storageDir is the extension's private storage
// directory used for the download cache and the fallback install location.
func NewManager(
	run runner.Runner,
	releases ReleaseSource,
	tools host.ToolRegistry,
	prompt host.Prompt,
	storageDir string,
	log *logrus.Logger,
) *Manager {
	if log == nil {
		log = logrus.StandardLogger()
	}

	return &Manager{
		run:        run,
		releases:   releases,
		tools:      tools,
		prompt:     prompt,
		storageDir: storageDir,
		log:        log,
		phase:      PhaseUninstalled,
	}
}

// Register runs the one-time detection algorithm and registers the binary
// with the host's tool registry. Detection failures degrade to "absent"
// rather than failing registration.
func (m *Manager) Register(ctx context.Context) error {
	m.binary = m.detect(ctx)

	tool := host.CLITool{Name: ToolName, DisplayName: "MicroShift in Container CLI"}
	if m.binary != nil {
		tool.Version = m.binary.Version
		tool.Path = m.binary.Path
	}

	handle, err := m.tools.RegisterTool(tool)
	if err != nil {
		return fmt.Errorf("failed to register %s tool: %w", ToolName, err)
	}

	m.handle = handle

	if m.binary != nil && m.binary.Provenance == ProvenanceExternal {
		// User-managed binary: no update or install affordances.
		m.transition(PhaseInstalled)
		m.log.WithField("path", m.binary.Path).
			Info("user-managed minc binary detected, update and install are disabled")

		return nil
	}

	latest, err := m.releases.Latest(ctx)
	if err != nil {
		m.log.WithError(err).Warn("failed to determine latest minc release")
	} else {
		m.latest = latest
	}

	m.refreshAvailableVersion()
	m.transition(m.settledPhase())

	return nil
}

// detect resolves the binary from the system-wide location, then from the
// extension's storage directory. A binary in the system location whose real
// path does not normalize to the extension's install target is user-managed.
func (m *Manager) detect(ctx context.Context) *BinaryRecord {
	systemPath := SystemBinaryPath()

	info, err := GetMincBinaryInfo(ctx, m.run, systemPath)
	if err == nil {
		provenance := ProvenanceExtension

		real, realErr := filepath.EvalSymlinks(systemPath)
		if realErr == nil && filepath.Clean(real) != filepath.Clean(systemPath) {
			provenance = ProvenanceExternal
		}

		return &BinaryRecord{Path: systemPath, Version: info.Version, Provenance: provenance}
	}

	m.log.WithError(err).Debug("minc binary not found in system location")

	storagePath := m.storageBinaryPath()

	info, err = GetMincBinaryInfo(ctx, m.run, storagePath)
	if err == nil {
		return &BinaryRecord{
			Path:       storagePath,
			Version:    info.Version,
			Provenance: ProvenanceExtension,
		}
	}

	m.log.WithError(err).Debug("minc binary not found in extension storage")

	return nil
}

// Phase returns the current lifecycle phase.
func (m *Manager) Phase() Phase {
	return m.phase
}

// Installed reports whether a binary is currently recorded.
func (m *Manager) Installed() bool {
	return m.binary != nil && m.binary.Path != ""
}

// Path returns the resolved binary path, or "" when absent.
func (m *Manager) Path() string {
	if m.binary == nil {
		return ""
	}

	return m.binary.Path
}

// Binary returns a copy of the current binary record.
func (m *Manager) Binary() (BinaryRecord, bool) {
	if m.binary == nil {
		return BinaryRecord{}, false
	}

	return *m.binary, true
}

// AvailableVersion returns the latest known version when it differs from the
// installed one, or "" otherwise.
func (m *Manager) AvailableVersion() string {
	return m.availableVersion
}

// Updatable reports whether update/install affordances are offered. They are
// withheld for user-managed binaries.
func (m *Manager) Updatable() bool {
	return m.binary == nil || m.binary.Provenance != ProvenanceExternal
}

// transition moves the manager to the next phase.
func (m *Manager) transition(next Phase) {
	if next == m.phase {
		return
	}

	m.log.WithFields(logrus.Fields{"from": m.phase, "to": next}).Debug("cli tool phase change")
	m.phase = next
}

// settledPhase computes the resting phase from the recorded binary and the
// exposed available version.
func (m *Manager) settledPhase() Phase {
	switch {
	case m.binary == nil:
		return PhaseUninstalled
	case m.availableVersion != "":
		return PhaseUpdateAvailable
	default:
		return PhaseInstalled
	}
}

// refreshAvailableVersion recomputes the exposed "available version" field.
func (m *Manager) refreshAvailableVersion() {
	if m.latest == nil {
		m.availableVersion = ""

		return
	}

	latest := RemoveVersionPrefix(m.latest.Tag)
	if m.binary != nil && versionsEqual(latest, m.binary.Version) {
		m.availableVersion = ""

		return
	}

	m.availableVersion = latest
}

// storageBinaryPath is the install location inside the extension's storage.
func (m *Manager) storageBinaryPath() string {
	return filepath.Join(m.storageDir, "bin", BinaryName())
}

// cachedBinaryPath is the download cache location.
func (m *Manager) cachedBinaryPath() string {
	return filepath.Join(m.storageDir, "cache", BinaryName())
}

// isWindows is split out so tests document the per-OS branches explicitly.
func isWindows() bool {
	return runtime.GOOS == "windows"
}
