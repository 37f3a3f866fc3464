package clitool

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/minc-org/minc-desktop/pkg/client/ghrelease"
	"github.com/minc-org/minc-desktop/pkg/runner"
)

// SelectInstallVersion prompts for any available release and holds it as the
// pending selection. It returns the normalized version string.
func (m *Manager) SelectInstallVersion(ctx context.Context) (string, error) {
	return m.selectVersion(ctx, "Select the minc version to install", "")
}

// DoInstall downloads the pending release selection and installs it
// system-wide, falling back to the download cache when the privileged install
// fails.
func (m *Manager) DoInstall(ctx context.Context) error {
	if m.binary != nil && (m.binary.Version != "" || m.binary.Path != "") {
		return fmt.Errorf("%w: %s (version %s)",
			ErrAlreadyInstalled, m.binary.Path, m.binary.Version)
	}

	if m.pending == nil {
		return ErrNoReleaseSelected
	}

	target := m.pending
	m.transition(PhaseInstalling)

	installedPath, err := m.fetchAndInstall(ctx, &target.Release)
	if err != nil {
		m.transition(m.settledPhase())

		return err
	}

	m.binary = &BinaryRecord{
		Path:       installedPath,
		Version:    target.Version,
		Provenance: ProvenanceExtension,
	}

	if m.handle != nil {
		m.handle.UpdateVersion(target.Version, installedPath)
	}

	m.refreshAvailableVersion()
	m.pending = nil
	m.transition(m.settledPhase())

	m.log.WithFields(map[string]any{"version": target.Version, "path": installedPath}).
		Info("minc cli installed")

	return nil
}

// DoUninstall deletes the cached download artifact (best-effort) and the
// installed binary, escalating to a privileged delete on permission errors,
// and clears the recorded binary. User-managed binaries are never touched.
func (m *Manager) DoUninstall(ctx context.Context) error {
	if m.binary == nil || m.binary.Version == "" {
		return ErrNoVersionDetected
	}

	if m.binary.Provenance == ProvenanceExternal {
		return fmt.Errorf("%w: %s", ErrExternallyManaged, m.binary.Path)
	}

	m.transition(PhaseUninstalling)

	err := os.Remove(m.cachedBinaryPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		m.log.WithError(err).Debug("failed to remove cached minc artifact")
	}

	err = m.removeBinary(ctx, m.binary.Path)
	if err != nil {
		m.transition(m.settledPhase())

		return err
	}

	m.binary = nil
	if m.handle != nil {
		m.handle.UpdateVersion("", "")
	}

	m.refreshAvailableVersion()
	m.transition(PhaseUninstalled)
	m.log.Info("minc cli uninstalled")

	return nil
}

// InstallLatest fetches and installs the latest release on demand,
// independent of the update/install descriptors. It returns the installed
// path, which is the download-cache path when the privileged system-wide
// install fails.
func (m *Manager) InstallLatest(ctx context.Context) (string, error) {
	latest, err := m.releases.Latest(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release: %w", err)
	}

	m.latest = latest

	installedPath, err := m.fetchAndInstall(ctx, latest)
	if err != nil {
		return "", err
	}

	version := RemoveVersionPrefix(latest.Tag)
	m.binary = &BinaryRecord{
		Path:       installedPath,
		Version:    version,
		Provenance: ProvenanceExtension,
	}

	if m.handle != nil {
		m.handle.UpdateVersion(version, installedPath)
	}

	m.refreshAvailableVersion()
	m.transition(m.settledPhase())

	return installedPath, nil
}

// fetchAndInstall downloads a release to the cache and attempts the
// privileged system-wide install. A failed system-wide install is non-fatal:
// the cache path is returned instead.
func (m *Manager) fetchAndInstall(ctx context.Context, release *ghrelease.Release) (string, error) {
	cachePath := m.cachedBinaryPath()

	_, err := m.releases.Download(ctx, release, cachePath)
	if err != nil {
		return "", fmt.Errorf("failed to download release %s: %w", release.Tag, err)
	}

	systemPath, err := m.installSystemWide(ctx, cachePath)
	if err != nil {
		m.log.WithError(err).Warn("system-wide install failed, falling back to cached binary")

		return cachePath, nil
	}

	return systemPath, nil
}

// installSystemWide copies the cached binary into the system-wide location
// with elevated privileges.
func (m *Manager) installSystemWide(ctx context.Context, src string) (string, error) {
	dst := SystemBinaryPath()

	var (
		name string
		args []string
	)

	if isWindows() {
		name = "powershell"
		args = []string{
			"-Command",
			fmt.Sprintf(
				"New-Item -ItemType Directory -Force -Path %q | Out-Null; Copy-Item -Force %q %q",
				SystemBinaryDir(), src, dst,
			),
		}
	} else {
		name = "install"
		args = []string{"-m", "0755", src, dst}
	}

	_, err := m.run.Exec(ctx, name, args, runner.Options{Admin: true})
	if err != nil {
		return "", fmt.Errorf("failed to install %s to %s: %w", src, dst, err)
	}

	return dst, nil
}

// removeBinary deletes the installed binary, escalating to a privileged
// delete when the plain delete is denied. Unlike install, a failed privileged
// delete propagates.
func (m *Manager) removeBinary(ctx context.Context, path string) error {
	err := os.Remove(path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if !errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}

	var (
		name string
		args []string
	)

	if isWindows() {
		name = "powershell"
		args = []string{"-Command", fmt.Sprintf("Remove-Item -Force %q", path)}
	} else {
		name = "rm"
		args = []string{"-f", path}
	}

	_, err = m.run.Exec(ctx, name, args, runner.Options{Admin: true})
	if err != nil {
		return fmt.Errorf("failed to remove %s with elevated privileges: %w", path, err)
	}

	return nil
}
