// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

// Bootc-demo is the companion CLI for the host status service. It
// queries a running bootc-demo-web instance for the status report
// (status, health, watch), evaluates the host's security posture as
// a checklist (check), and can build the same report locally without
// a service (report).
package main
