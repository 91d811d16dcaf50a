// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

// Bootc-demo-web is the host status service. It serves system
// information and security posture (FIPS mode, crypto policy, STIG
// content, bootc boot status) as JSON under /api and as a rendered
// HTML page at the root. Every probe is a bounded best-effort read:
// a missing tool or file degrades the field, never the response.
package main
