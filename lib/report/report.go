// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

// Package report assembles the status document served by the web API.
// A Builder stamps each document with its build time and delegates
// every fact to the sysinfo and posture probes; since each probe
// resolves failures to its own default, building a report can itself
// never fail.
package report

import (
	"context"
	"time"

	"github.com/kush-gupt/bootc-demo/lib/clock"
	"github.com/kush-gupt/bootc-demo/lib/posture"
	"github.com/kush-gupt/bootc-demo/lib/runcmd"
	"github.com/kush-gupt/bootc-demo/lib/schema"
	"github.com/kush-gupt/bootc-demo/lib/sysinfo"
)

// Builder produces status reports. Construct with NewBuilder for
// production defaults; tests set Runner and Clock directly.
type Builder struct {
	Runner *runcmd.Runner
	Clock  clock.Clock
}

// NewBuilder returns a Builder with the default probe timeout and the
// real clock.
func NewBuilder() *Builder {
	return &Builder{
		Runner: &runcmd.Runner{},
		Clock:  clock.Real(),
	}
}

// Build collects every reported fact and returns the aggregate. The
// probes are independent (no result affects another) and each one
// degrades to its documented default on failure, so the returned
// report is always complete.
func (b *Builder) Build(ctx context.Context) schema.StatusReport {
	return schema.StatusReport{
		Timestamp: b.timestamp(),
		System:    sysinfo.Collect(ctx, b.Runner),
		Security: schema.SecurityInfo{
			FIPSEnabled:   posture.FIPSEnabled(),
			CryptoPolicy:  posture.CryptoPolicy(ctx, b.Runner),
			STIGInstalled: posture.STIGContentInstalled(),
		},
		BootcStatus: posture.BootcStatus(ctx, b.Runner),
	}
}

// Health returns the liveness payload. It touches no probes: the
// answer is about this process, not the host.
func (b *Builder) Health() schema.HealthStatus {
	return schema.HealthStatus{
		Status:    schema.Healthy,
		Timestamp: b.timestamp(),
	}
}

// timestamp formats the current time as RFC 3339 in UTC. Sub-second
// precision keeps consecutive report timestamps distinct.
func (b *Builder) timestamp() string {
	return b.Clock.Now().UTC().Format(time.RFC3339Nano)
}
