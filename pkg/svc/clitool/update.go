package clitool

import (
	"context"
	"fmt"

	"github.com/minc-org/minc-desktop/pkg/client/ghrelease"
)

// SelectUpdateVersion prompts for an explicit target release, excluding the
// currently installed tag, and holds it as the pending selection. It returns
// the normalized version string.
func (m *Manager) SelectUpdateVersion(ctx context.Context) (string, error) {
	installed := ""
	if m.binary != nil {
		installed = m.binary.Version
	}

	return m.selectVersion(ctx, "Select the minc version to update to", installed)
}

// DoUpdate downloads the selected (or latest known) release and installs it
// system-wide, falling back to the download cache when the privileged install
// fails.
func (m *Manager) DoUpdate(ctx context.Context) error {
	if m.binary == nil || m.binary.Path == "" {
		return ErrNotInstalled
	}

	if m.binary.Provenance == ProvenanceExternal {
		return fmt.Errorf("%w: %s", ErrExternallyManaged, m.binary.Path)
	}

	target := m.pending
	if target == nil && m.latest != nil {
		target = &ReleaseSelection{
			Release: *m.latest,
			Version: RemoveVersionPrefix(m.latest.Tag),
		}
	}

	if target == nil {
		return fmt.Errorf("%w for update of %s (version %s)",
			ErrNoReleaseSelected, m.binary.Path, m.binary.Version)
	}

	m.transition(PhaseUpdating)

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
		Info("minc cli updated")

	return nil
}

// selectVersion lists releases, prompts the user, and records the pending
// selection. excludeVersion removes the currently installed tag from the
// choices; pass "" to offer every release.
func (m *Manager) selectVersion(
	ctx context.Context,
	title string,
	excludeVersion string,
) (string, error) {
	releases, err := m.releases.ListReleases(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list releases: %w", err)
	}

	labels := make([]string, 0, len(releases))
	byLabel := make(map[string]ghrelease.Release, len(releases))

	for _, release := range releases {
		if excludeVersion != "" && versionsEqual(RemoveVersionPrefix(release.Tag), excludeVersion) {
			continue
		}

		labels = append(labels, release.Tag)
		byLabel[release.Tag] = release
	}

	choice, err := m.prompt.SelectRelease(ctx, title, labels)
	if err != nil {
		return "", fmt.Errorf("release selection failed: %w", err)
	}

	release, ok := byLabel[choice]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrReleaseNotFound, choice)
	}

	version := RemoveVersionPrefix(release.Tag)
	m.pending = &ReleaseSelection{Release: release, Version: version}
	m.transition(PhaseVersionSelected)

	return version, nil
}
