// Package svc provides service layer components for minc-desktop.
//
// This package contains the business logic layer that coordinates between
// the command surface and the underlying clients/infrastructure.
//
// Subpackages:
//   - clitool: minc CLI binary detection, install, update and uninstall
//   - cluster: cluster derivation from container engine inventory
//   - create: cluster creation through the minc CLI
//   - engine: container engine abstraction over the Docker API
//   - reconciler: connection registry reconciliation against the inventory
//   - telemetry: Prometheus-backed usage event sink
package svc
