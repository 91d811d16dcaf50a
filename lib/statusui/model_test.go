// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package statusui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/kush-gupt/bootc-demo/lib/apiclient"
	"github.com/kush-gupt/bootc-demo/lib/schema"
)

// testReport is a fixed report for driving the model without a live
// server.
func testReport() *schema.StatusReport {
	return &schema.StatusReport{
		Timestamp: "2026-01-15T10:00:00.5Z",
		System: schema.SystemInfo{
			Hostname:       "demo-host",
			OS:             "Linux",
			Release:        "6.12.0",
			Architecture:   "x86_64",
			RuntimeVersion: "go1.25.6",
			Uptime:         "up 3 hours, 12 minutes",
			LoadAverage:    [3]float64{0.52, 0.58, 0.59},
			CPUCount:       8,
		},
		Security: schema.SecurityInfo{
			FIPSEnabled:   true,
			CryptoPolicy:  "FIPS",
			STIGInstalled: false,
		},
	}
}

func testModel() Model {
	return NewModel(apiclient.New("http://127.0.0.1:8080", 0), 0)
}

func TestNewModelDefaults(t *testing.T) {
	model := testModel()
	if model.interval != DefaultInterval {
		t.Errorf("interval = %v, want %v", model.interval, DefaultInterval)
	}
	if !model.fetching {
		t.Error("a new model should start with a fetch in flight")
	}
}

func TestModelViewBeforeResize(t *testing.T) {
	model := testModel()
	if view := model.View(); view != "Loading..." {
		t.Errorf("expected 'Loading...' before WindowSizeMsg, got %q", view)
	}
}

func TestModelWaitingState(t *testing.T) {
	model := testModel()
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model = updated.(Model)

	if !strings.Contains(model.View(), "Waiting for first report") {
		t.Error("view before the first report should show the waiting notice")
	}

	// A failed first fetch replaces the waiting notice with the error.
	updated, _ = model.Update(reportMsg{err: errors.New("connection refused")})
	model = updated.(Model)
	if !strings.Contains(model.View(), "connection refused") {
		t.Error("view should surface the fetch error before the first report")
	}
}

func TestModelViewRendersReport(t *testing.T) {
	model := testModel()
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(Model)
	updated, _ = model.Update(reportMsg{report: testReport()})
	model = updated.(Model)

	view := model.View()
	for _, want := range []string{
		"bootc-demo status",
		"http://127.0.0.1:8080",
		"System",
		"demo-host",
		"Linux 6.12.0",
		"up 3 hours, 12 minutes",
		"0.52",
		"Security",
		"FIPS",
		"not installed",
		"Boot Status",
		"not detected",
		"q quit  r refresh",
		"updated",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}

	// FIPS is enabled in the fixture, so the disabled verdict must be
	// absent.
	if strings.Contains(view, "disabled") {
		t.Error("view should not show the disabled verdict for an enabled FIPS reading")
	}
}

func TestModelViewRendersBootcStatus(t *testing.T) {
	report := testReport()
	raw := "{\n  \"apiVersion\": \"org.containers.bootc/v1\"\n}"
	report.BootcStatus = &raw

	model := testModel()
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(Model)
	updated, _ = model.Update(reportMsg{report: report})
	model = updated.(Model)

	view := model.View()
	if !strings.Contains(view, "org.containers.bootc/v1") {
		t.Error("view should include the bootc status document")
	}
	if strings.Contains(view, "not detected") {
		t.Error("view should not show 'not detected' when bootc status is present")
	}
}

func TestModelQuit(t *testing.T) {
	model := testModel()
	_, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if command == nil {
		t.Fatal("q key should return a command")
	}
	if _, isQuit := command().(tea.QuitMsg); !isQuit {
		t.Error("q key should produce a QuitMsg")
	}
}

func TestModelManualRefresh(t *testing.T) {
	model := testModel()
	updated, _ := model.Update(reportMsg{report: testReport()})
	model = updated.(Model)
	if model.fetching {
		t.Fatal("fetch should be idle after a reportMsg")
	}

	updated, command := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model = updated.(Model)
	if command == nil {
		t.Error("r key should start a fetch")
	}
	if !model.fetching {
		t.Error("r key should mark a fetch in flight")
	}

	// A second r while the fetch is in flight is a no-op.
	_, command = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if command != nil {
		t.Error("r key during an in-flight fetch should not start another")
	}
}

func TestModelSingleTimerChain(t *testing.T) {
	model := testModel()

	// First report arms the refresh timer.
	updated, command := model.Update(reportMsg{report: testReport()})
	model = updated.(Model)
	if command == nil {
		t.Fatal("first reportMsg should arm the refresh timer")
	}
	if !model.tickPending {
		t.Fatal("tickPending should be set after arming the timer")
	}

	// A manual refresh completing while the timer is armed must not
	// arm a second one.
	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	model = updated.(Model)
	updated, command = model.Update(reportMsg{report: testReport()})
	model = updated.(Model)
	if command != nil {
		t.Error("reportMsg with an armed timer should not arm another")
	}

	// The tick starts the next fetch and disarms the timer.
	updated, command = model.Update(refreshTickMsg{})
	model = updated.(Model)
	if command == nil {
		t.Error("refresh tick should start a fetch")
	}
	if model.tickPending {
		t.Error("refresh tick should disarm the timer")
	}
	if !model.fetching {
		t.Error("refresh tick should mark a fetch in flight")
	}
}

func TestModelFailedFetchKeepsReport(t *testing.T) {
	model := testModel()
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model = updated.(Model)
	updated, _ = model.Update(reportMsg{report: testReport()})
	model = updated.(Model)
	updated, _ = model.Update(refreshTickMsg{})
	model = updated.(Model)
	updated, _ = model.Update(reportMsg{err: errors.New("boom")})
	model = updated.(Model)

	view := model.View()
	if !strings.Contains(view, "demo-host") {
		t.Error("a failed refresh should keep the previous report on screen")
	}
	if !strings.Contains(view, "fetch error: boom") {
		t.Error("a failed refresh should surface the error in the footer")
	}
}

func TestModelWideLinesClamped(t *testing.T) {
	report := testReport()
	report.System.Uptime = strings.Repeat("very long uptime ", 20)

	model := testModel()
	updated, _ := model.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	model = updated.(Model)
	updated, _ = model.Update(reportMsg{report: report})
	model = updated.(Model)

	model.fetchedAt = time.Time{}
	for _, line := range strings.Split(model.View(), "\n") {
		if width := ansi.StringWidth(line); width > 40 {
			t.Errorf("line width %d exceeds terminal width 40: %q", width, line)
		}
	}
}
