package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/depscan/pkg/manager"
	"github.com/matzehuels/depscan/pkg/pipeline"
)

// =============================================================================
// Styles
// =============================================================================

// Palette entries are 256-color ANSI codes; lipgloss degrades them on
// simpler terminals.
var (
	paletteAccent = lipgloss.Color("36")
	paletteOK     = lipgloss.Color("35")
	paletteWarn   = lipgloss.Color("220")
	paletteFail   = lipgloss.Color("167")
	paletteText   = lipgloss.Color("255")
	paletteMuted  = lipgloss.Color("245")
	paletteFaint  = lipgloss.Color("240")
)

var (
	// StyleTitle renders manifest paths.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(paletteAccent)
	// StyleDim renders secondary text: managers, registries, totals.
	StyleDim = lipgloss.NewStyle().Foreground(paletteFaint)
	// StyleValue renders versions.
	StyleValue = lipgloss.NewStyle().Foreground(paletteText)
	// StyleWarning renders warnings and skip reasons.
	StyleWarning = lipgloss.NewStyle().Foreground(paletteWarn)

	styleIconSpinner = lipgloss.NewStyle().Foreground(paletteAccent)
	styleHeader      = lipgloss.NewStyle().Bold(true).Foreground(paletteAccent).Padding(0, 1)
	styleCell        = lipgloss.NewStyle().Padding(0, 1)
)

// Result origin labels printed after each manifest path.
var (
	labelCached = lipgloss.NewStyle().Foreground(paletteOK).Render("cached")
	labelFresh  = lipgloss.NewStyle().Foreground(paletteMuted).Render("fresh")
)

// =============================================================================
// Status Output
// =============================================================================

// statusOut receives status lines. Results go to the command's stdout, so
// status stays on stderr to keep piped JSON clean.
var statusOut io.Writer = os.Stderr

// statusKind selects the icon in front of a status line.
type statusKind int

const (
	statusSuccess statusKind = iota
	statusError
	statusWarning
	statusInfo
)

var statusIcons = [...]string{
	statusSuccess: lipgloss.NewStyle().Foreground(paletteOK).Render("✓"),
	statusError:   lipgloss.NewStyle().Foreground(paletteFail).Render("✗"),
	statusWarning: lipgloss.NewStyle().Foreground(paletteWarn).Render("!"),
	statusInfo:    lipgloss.NewStyle().Foreground(paletteMuted).Render("›"),
}

func statusLine(kind statusKind, msg string) string {
	if kind == statusWarning {
		msg = StyleWarning.Render(msg)
	}
	return statusIcons[kind] + " " + msg
}

func printSuccess(format string, args ...any) {
	fmt.Fprintln(statusOut, statusLine(statusSuccess, fmt.Sprintf(format, args...)))
}

func printError(format string, args ...any) {
	fmt.Fprintln(statusOut, statusLine(statusError, fmt.Sprintf(format, args...)))
}

func printWarning(format string, args ...any) {
	fmt.Fprintln(statusOut, statusLine(statusWarning, fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Fprintln(statusOut, statusLine(statusInfo, fmt.Sprintf(format, args...)))
}

// printDetail prints an indented, dimmed detail line.
func printDetail(format string, args ...any) {
	fmt.Fprintln(statusOut, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// =============================================================================
// Tables
// =============================================================================

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		})
}

// depsTable renders the dependencies of one package file.
func depsTable(pf *manager.PackageFile) string {
	t := newTable("LINE", "DEPENDENCY", "DATASOURCE", "VERSION", "NOTE")
	for _, dep := range pf.Deps {
		line := ""
		if n, ok := dep.LineNumber(); ok {
			line = strconv.Itoa(n + 1)
		}
		name := dep.PackageName
		if dep.DepName != "" && dep.DepName != dep.PackageName {
			name += " (" + dep.DepName + ")"
		}
		t.Row(line, name, dep.Datasource(), StyleValue.Render(versionOf(dep)), noteOf(dep))
	}
	return t.Render()
}

func versionOf(dep manager.Dependency) string {
	v := dep.CurrentValue()
	if d := dep.CurrentDigest(); d != "" {
		if len(d) > 7 {
			d = d[:7]
		}
		if v == "" {
			return d
		}
		return v + "@" + d
	}
	return v
}

func noteOf(dep manager.Dependency) string {
	if dep.Skipped() {
		return StyleWarning.Render("skip: " + string(dep.SkipReason()))
	}
	if urls := dep.RegistryURLs(); len(urls) > 0 {
		return StyleDim.Render(strings.Join(urls, ", "))
	}
	return ""
}

// managersTable renders manager definitions.
func managersTable(list []*manager.Manager) string {
	t := newTable("MANAGER", "ENABLED", "FILES", "DATASOURCES")
	for _, m := range list {
		enabled := "no"
		switch {
		case !m.HasExtractor():
			enabled = "n/a"
		case m.Enabled:
			enabled = "yes"
		}
		t.Row(m.Name, enabled, strings.Join(m.FileMatch, " "), strings.Join(m.SupportedDatasources, ", "))
	}
	return t.Render()
}

// =============================================================================
// Report Output
// =============================================================================

// printReport writes one section per manifest followed by the totals.
func printReport(w io.Writer, report *pipeline.Report) {
	for _, f := range report.Files {
		origin := labelFresh
		if f.Cached {
			origin = labelCached
		}
		switch {
		case f.Failed():
			fmt.Fprintln(w, statusLine(statusError, StyleTitle.Render(f.Path)+" "+StyleDim.Render(f.Error)))
			continue
		case f.PackageFile == nil || len(f.PackageFile.Deps) == 0:
			fmt.Fprintln(w, statusLine(statusInfo, StyleTitle.Render(f.Path)+" "+StyleDim.Render(f.Manager+" · no dependencies · ")+origin))
			continue
		}
		fmt.Fprintln(w, StyleTitle.Render(f.Path)+" "+StyleDim.Render(f.Manager+" · ")+origin)
		fmt.Fprintln(w, depsTable(f.PackageFile))
		if len(f.PackageFile.LockFiles) > 0 {
			fmt.Fprintln(w, "  "+StyleDim.Render("lock files: "+strings.Join(f.PackageFile.LockFiles, ", ")))
		}
	}

	s := report.Stats
	parts := []string{
		fmt.Sprintf("%d files", s.Files),
		fmt.Sprintf("%d dependencies", s.Deps),
		fmt.Sprintf("%d skipped", s.Skipped),
	}
	if s.Failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", s.Failed))
	}
	if s.CacheHits > 0 {
		parts = append(parts, fmt.Sprintf("%d cached", s.CacheHits))
	}
	fmt.Fprintln(w, StyleDim.Render(strings.Join(parts, " · ")))
}
