// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"runtime"
	"strings"

	"github.com/MKhiriev/go-crm-front/internal/config"
	"github.com/MKhiriev/go-crm-front/internal/logger"
	"github.com/MKhiriev/go-crm-front/internal/utils"
)

//go:embed templates/*.html
var templatesFS embed.FS

var diagnosticTemplate = template.Must(template.ParseFS(templatesFS, "templates/diagnostic.html"))

const criticalErrorHint = "Please contact your system administrator or check your go-crm-front installation."

// CriticalErrorMessage is the plaintext body sent when the runtime
// requirement cannot be determined.
func CriticalErrorMessage(err error) string {
	return "Critical System Error: " + err.Error() + "\n\n" + criticalErrorHint
}

func writeCriticalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Error().Err(err).Msg("runtime requirement cannot be determined")

	_, _ = utils.WriteText(w, http.StatusInternalServerError, CriticalErrorMessage(err))
}

// ErrorReporter renders failures of the bootstrap stage. Both methods
// write a complete 500 response.
type ErrorReporter interface {
	ReportError(w http.ResponseWriter, r *http.Request, err error)
	ReportPanic(w http.ResponseWriter, r *http.Request, value any, stack []byte)
}

// Diagnostic is the content of a diagnostic page.
type Diagnostic struct {
	Title       string
	Message     string
	Details     string
	Environment Environment
}

// Environment describes the process that produced a diagnostic.
type Environment struct {
	GoVersion    string
	Executable   string
	RequestURI   string
	ConfigExists bool
}

// DiagnosticReporter renders diagnostics as an HTML page or as plain text.
type DiagnosticReporter struct {
	format         string
	siteConfigPath string
}

func NewDiagnosticReporter(format, siteConfigPath string) *DiagnosticReporter {
	return &DiagnosticReporter{format: format, siteConfigPath: siteConfigPath}
}

func (d *DiagnosticReporter) ReportError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Err(err).Msg("bootstrap failed")

	d.write(w, Diagnostic{
		Title:       "Error while loading go-crm-front",
		Message:     err.Error(),
		Details:     fmt.Sprintf("Type: %T", err),
		Environment: d.environment(r),
	})
}

func (d *DiagnosticReporter) ReportPanic(w http.ResponseWriter, r *http.Request, value any, stack []byte) {
	logger.FromRequest(r).Error().
		Str("panic", fmt.Sprint(value)).
		Bytes("stack", stack).
		Msg("bootstrap panicked")

	d.write(w, Diagnostic{
		Title:       "Unhandled panic while loading go-crm-front",
		Message:     fmt.Sprint(value),
		Details:     fmt.Sprintf("Type: %T\n\nStack Trace:\n%s", value, stack),
		Environment: d.environment(r),
	})
}

func (d *DiagnosticReporter) environment(r *http.Request) Environment {
	env := Environment{
		GoVersion:  runtime.Version(),
		Executable: "N/A",
		RequestURI: requestURI(r),
	}
	if exe, err := os.Executable(); err == nil {
		env.Executable = exe
	}
	if _, err := os.Stat(d.siteConfigPath); err == nil {
		env.ConfigExists = true
	}
	return env
}

func (d *DiagnosticReporter) write(w http.ResponseWriter, diag Diagnostic) {
	if d.format == config.DebugFormatText {
		_, _ = utils.WriteText(w, http.StatusInternalServerError, diag.Text())
		return
	}

	var buf bytes.Buffer
	if err := diagnosticTemplate.Execute(&buf, diag); err != nil {
		_, _ = utils.WriteText(w, http.StatusInternalServerError, diag.Text())
		return
	}

	_, _ = utils.WriteHTML(w, http.StatusInternalServerError, &buf)
}

// Text renders the diagnostic as plain text.
func (d Diagnostic) Text() string {
	var b strings.Builder
	b.WriteString(d.Title + "\n\n" + d.Message + "\n")
	if d.Details != "" {
		b.WriteString("\nDetails\n" + d.Details + "\n")
	}
	configExists := "no"
	if d.Environment.ConfigExists {
		configExists = "yes"
	}
	fmt.Fprintf(&b, "\nEnvironment\nGo Version: %s\nExecutable: %s\nRequest URI: %s\nConfig Exists: %s\n",
		d.Environment.GoVersion, d.Environment.Executable, d.Environment.RequestURI, configExists)
	return b.String()
}
