// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

// Package statusui implements the terminal dashboard behind the
// "watch" subcommand. The model polls the status API on a fixed
// interval and renders the latest report; a failed poll keeps the
// previous report on screen with the error shown in the footer.
package statusui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kush-gupt/bootc-demo/lib/apiclient"
	"github.com/kush-gupt/bootc-demo/lib/schema"
)

// DefaultInterval is the refresh period when the caller does not
// specify one.
const DefaultInterval = 5 * time.Second

// reportMsg delivers the result of an asynchronous status fetch
// through the bubbletea message loop.
type reportMsg struct {
	report *schema.StatusReport
	err    error
}

// refreshTickMsg is sent when the refresh interval elapses and the
// next fetch should start.
type refreshTickMsg struct{}

// Model is the top-level bubbletea model for the watch dashboard.
type Model struct {
	client   *apiclient.Client
	interval time.Duration
	theme    Theme
	keys     KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	report    *schema.StatusReport
	fetchErr  error
	fetchedAt time.Time

	fetching    bool // True while a fetch is in flight.
	tickPending bool // True while a refresh tick timer is armed.
}

// NewModel creates a Model that polls the given client. A zero or
// negative interval selects DefaultInterval.
func NewModel(client *apiclient.Client, interval time.Duration) Model {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Model{
		client:   client,
		interval: interval,
		theme:    DefaultTheme,
		keys:     DefaultKeyMap,
		fetching: true,
	}
}

// Init implements tea.Model. Starts the first fetch immediately.
func (model Model) Init() tea.Cmd {
	return fetchReport(model.client)
}

// fetchReport returns a tea.Cmd that requests a status report and
// delivers the result as a reportMsg.
func fetchReport(client *apiclient.Client) tea.Cmd {
	return func() tea.Msg {
		report, err := client.Status(context.Background())
		return reportMsg{report: report, err: err}
	}
}

// scheduleRefresh returns a tea.Cmd that sends a refreshTickMsg after
// the refresh interval.
func scheduleRefresh(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// Update implements tea.Model. At most one fetch is in flight and at
// most one refresh timer is armed at any time; manual refreshes join
// the existing timer chain instead of forking a second one.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(message, model.keys.Quit):
			return model, tea.Quit

		case key.Matches(message, model.keys.Refresh):
			if model.fetching {
				return model, nil
			}
			model.fetching = true
			return model, fetchReport(model.client)
		}

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true

	case reportMsg:
		model.fetching = false
		model.fetchErr = message.err
		if message.err == nil {
			model.report = message.report
			model.fetchedAt = time.Now()
		}
		if !model.tickPending {
			model.tickPending = true
			return model, scheduleRefresh(model.interval)
		}

	case refreshTickMsg:
		model.tickPending = false
		if model.fetching {
			// A manual refresh is in flight; its reportMsg re-arms
			// the timer.
			return model, nil
		}
		model.fetching = true
		return model, fetchReport(model.client)
	}

	return model, nil
}

// View implements tea.Model. Renders the full dashboard frame.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	if model.report == nil {
		return model.renderWaiting()
	}

	var sections []string
	sections = append(sections, model.renderTitle())
	sections = append(sections, model.renderSeparator())
	sections = append(sections, model.renderSystem()...)
	sections = append(sections, "")
	sections = append(sections, model.renderSecurity()...)
	sections = append(sections, "")
	sections = append(sections, model.renderBootc()...)

	if model.fetchErr != nil {
		sections = append(sections, "")
		errorStyle := lipgloss.NewStyle().Foreground(model.theme.ErrorText)
		sections = append(sections, model.clamp(
			errorStyle.Render(fmt.Sprintf("fetch error: %v", model.fetchErr))))
	}

	sections = append(sections, model.renderSeparator())
	sections = append(sections, model.renderHelp())

	return strings.Join(sections, "\n")
}

// renderWaiting covers the window before the first successful fetch.
func (model Model) renderWaiting() string {
	text := "Waiting for first report..."
	if model.fetchErr != nil {
		text = fmt.Sprintf("fetch error: %v", model.fetchErr)
	}
	messageStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)

	return lipgloss.Place(
		model.width, model.height,
		lipgloss.Center, lipgloss.Center,
		messageStyle.Render(text),
	)
}

func (model Model) renderTitle() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	faintStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText)

	line := titleStyle.Render("bootc-demo status") +
		faintStyle.Render("  "+model.client.BaseURL())
	if model.fetching {
		line += faintStyle.Render("  fetching...")
	}
	return model.clamp(line)
}

func (model Model) renderSystem() []string {
	system := model.report.System
	lines := []string{model.renderHeading("System")}
	lines = append(lines,
		model.renderRow("hostname", system.Hostname, model.theme.NormalText),
		model.renderRow("os", fmt.Sprintf("%s %s", system.OS, system.Release), model.theme.NormalText),
		model.renderRow("architecture", system.Architecture, model.theme.NormalText),
		model.renderRow("runtime", system.RuntimeVersion, model.theme.NormalText),
		model.renderRow("uptime", system.Uptime, model.theme.NormalText),
		model.renderRow("load average", fmt.Sprintf("%.2f  %.2f  %.2f",
			system.LoadAverage[0], system.LoadAverage[1], system.LoadAverage[2]),
			model.theme.NormalText),
		model.renderRow("cpus", fmt.Sprintf("%d", system.CPUCount), model.theme.NormalText),
	)
	return lines
}

func (model Model) renderSecurity() []string {
	security := model.report.Security
	lines := []string{model.renderHeading("Security")}

	fipsValue, fipsColor := "disabled", model.theme.BadValue
	if security.FIPSEnabled {
		fipsValue, fipsColor = "enabled", model.theme.GoodValue
	}
	lines = append(lines, model.renderRow("fips mode", fipsValue, fipsColor))

	policyColor := model.theme.NormalText
	if security.CryptoPolicy == "Unknown" {
		policyColor = model.theme.UnknownValue
	}
	lines = append(lines, model.renderRow("crypto policy", security.CryptoPolicy, policyColor))

	stigValue, stigColor := "not installed", model.theme.UnknownValue
	if security.STIGInstalled {
		stigValue, stigColor = "installed", model.theme.GoodValue
	}
	lines = append(lines, model.renderRow("stig content", stigValue, stigColor))

	return lines
}

func (model Model) renderBootc() []string {
	lines := []string{model.renderHeading("Boot Status")}
	if model.report.BootcStatus == nil {
		lines = append(lines, model.renderRow("bootc", "not detected", model.theme.UnknownValue))
		return lines
	}

	valueStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	for _, raw := range strings.Split(*model.report.BootcStatus, "\n") {
		lines = append(lines, model.clamp("  "+valueStyle.Render(raw)))
	}
	return lines
}

func (model Model) renderHeading(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground).
		Render(text)
}

func (model Model) renderRow(label, value string, valueColor lipgloss.Color) string {
	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	valueStyle := lipgloss.NewStyle().Foreground(valueColor)
	line := "  " + labelStyle.Render(fmt.Sprintf("%-16s", label)) + valueStyle.Render(value)
	return model.clamp(line)
}

func (model Model) renderSeparator() string {
	return lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
}

func (model Model) renderHelp() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	help := " q quit  r refresh"
	if !model.fetchedAt.IsZero() {
		help += fmt.Sprintf("  updated %s", model.fetchedAt.Format("15:04:05"))
	}
	return model.clamp(style.Render(help))
}

// clamp truncates a styled line to the terminal width.
func (model Model) clamp(line string) string {
	if model.width <= 0 {
		return line
	}
	return ansi.Truncate(line, model.width, "…")
}
