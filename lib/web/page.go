// Copyright 2026 The bootc-demo Authors
// SPDX-License-Identifier: Apache-2.0

package web

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/index.html
var templateFiles embed.FS

// pageTemplate is parsed once at startup. A parse failure is a build
// defect, not a runtime condition.
var pageTemplate = template.Must(template.New("index.html").
	Funcs(template.FuncMap{
		"load": func(value float64) string { return fmt.Sprintf("%.2f", value) },
	}).
	ParseFS(templateFiles, "templates/index.html"))

// renderPage renders the HTML status page against a freshly built
// report. The page shows the same facts as /api/status; a
// meta-refresh keeps it current without client-side scripting.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request) {
	statusReport := s.builder.Build(r.Context())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, statusReport); err != nil {
		// Headers are committed by the first template write, so the
		// error can only be logged.
		s.logger.Warn("rendering status page", "error", err)
	}
}
