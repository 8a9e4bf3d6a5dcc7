// Package display turns command results into user-facing output.
//
// Each command result type has a renderer that honors the selected
// output format: rich terminal output with status chips, plain text
// for pipes, or JSON for machine consumption.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arcaartem/manage-dotfiles/pkg/output/styles"
	"github.com/arcaartem/manage-dotfiles/pkg/types"
	"github.com/arcaartem/manage-dotfiles/pkg/ui"
	"github.com/arcaartem/manage-dotfiles/pkg/ui/markup"
)

// Renderer writes command results to an output stream in one format.
type Renderer struct {
	out    io.Writer
	format ui.Format
}

// New creates a renderer. FormatAuto must be resolved by the caller
// before construction; it is treated as plain text here.
func New(out io.Writer, format ui.Format) *Renderer {
	return &Renderer{out: out, format: format}
}

func (r *Renderer) rich() bool {
	return r.format == ui.FormatTerminal
}

// statusStyle returns the pterm style for a file or link outcome chip.
func statusStyle(status string) *pterm.Style {
	switch status {
	case "rendered", "copied", "linked":
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	case "error":
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	case "dry-run":
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// chip formats the fixed-width status column, styled in rich mode.
func (r *Renderer) chip(status string) string {
	text := fmt.Sprintf("%-9s", status)
	if r.rich() {
		return statusStyle(status).Sprint(text)
	}
	return text
}

func (r *Renderer) styled(name, text string) string {
	if r.rich() {
		return styles.Get(name).Render(text)
	}
	return text
}

func (r *Renderer) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *Renderer) header(command string, dryRun bool) {
	text := command
	if dryRun {
		text += " (dry run)"
	}
	r.printf("%s\n", r.styled("Title", text))
}

// dryRunNotice renders the dry-run reminder through the markup engine,
// styled in rich mode, with tags stripped for plain output.
func (r *Renderer) dryRunNotice() {
	const notice = `<Warning>Dry run: no links were changed.</Warning> Re-run with --apply.`
	if r.rich() {
		if out, err := markup.ExpandTags(notice, markup.StyleMap(styles.Registry)); err == nil {
			r.printf("%s\n", out)
			return
		}
	}
	r.printf("%s\n", markup.StripTags(notice))
}

func (r *Renderer) json(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderBuild writes the outcome of a build run.
func (r *Renderer) RenderBuild(res *types.BuildResult) error {
	if r.format == ui.FormatJSON {
		return r.json(res)
	}

	r.header("Build", false)
	r.renderPackages(res.Packages)
	r.renderMissing(res.Missing)
	r.printf("\n%d package(s) written to %s\n",
		len(res.Packages), r.styled("Path", res.TargetRoot))
	return nil
}

// RenderStow writes the outcome of a stow run: staged packages first,
// then the per-package linker results.
func (r *Renderer) RenderStow(res *types.StowResult) error {
	if r.format == ui.FormatJSON {
		return r.json(res)
	}

	r.header("Stow", res.DryRun)
	r.renderPackages(res.Packages)
	r.renderMissing(res.Missing)
	if len(res.Links) > 0 {
		r.printf("\n")
		r.renderLinks(res.Links)
	}
	r.linkFailureSummary(res.Links)
	r.printf("\nStaged into %s, linking into %s\n",
		r.styled("Path", res.Staging), r.styled("Path", res.Target))
	if res.DryRun {
		r.dryRunNotice()
	}
	return nil
}

// RenderUnstow writes the outcome of an unstow run.
func (r *Renderer) RenderUnstow(res *types.UnstowResult) error {
	if r.format == ui.FormatJSON {
		return r.json(res)
	}

	r.header("Unstow", res.DryRun)
	r.renderLinks(res.Links)
	r.linkFailureSummary(res.Links)
	r.printf("\nUnlinked from %s\n", r.styled("Path", res.Target))
	if res.DryRun {
		r.dryRunNotice()
	}
	return nil
}

// RenderRestow writes the outcome of a restow run.
func (r *Renderer) RenderRestow(res *types.RestowResult) error {
	if r.format == ui.FormatJSON {
		return r.json(res)
	}

	r.header("Restow", res.DryRun)
	r.renderLinks(res.Links)
	r.linkFailureSummary(res.Links)
	r.printf("\nRelinked into %s\n", r.styled("Path", res.Target))
	if res.DryRun {
		r.dryRunNotice()
	}
	return nil
}

// RenderList writes the packages that would deploy for the host.
func (r *Renderer) RenderList(res *types.ListResult) error {
	if r.format == ui.FormatJSON {
		return r.json(res)
	}

	r.printf("%s\n", r.styled("Title",
		fmt.Sprintf("Packages for %s", res.Hostname)))
	if len(res.Packages) == 0 {
		r.printf("No packages found.\n")
		return nil
	}
	for _, pkg := range res.Packages {
		note := string(pkg.Scope)
		if pkg.Shadows {
			note += ", shadows common"
		}
		r.printf("  %s  %s\n",
			r.styled("Package", fmt.Sprintf("%-20s", pkg.Name)),
			r.styled("Muted", "("+note+")"))
	}
	return nil
}

// RenderVars writes the effective variable mapping in definition order.
func (r *Renderer) RenderVars(res *types.VarsResult) error {
	if r.format == ui.FormatJSON {
		return r.json(res)
	}

	r.printf("%s\n", r.styled("Title",
		fmt.Sprintf("Variables for %s", res.Hostname)))
	if len(res.Entries) == 0 {
		r.printf("No variables defined.\n")
		return nil
	}
	for _, entry := range res.Entries {
		r.printf("  %s=%s\n", r.styled("Code", entry.Key), entry.Value)
	}
	return nil
}

// RenderInit writes the files created for a new package.
func (r *Renderer) RenderInit(res *types.InitResult) error {
	if r.format == ui.FormatJSON {
		return r.json(res)
	}

	r.printf("Created package %s at %s\n",
		r.styled("Package", res.PackageName), r.styled("Path", res.Path))
	for _, file := range res.FilesCreated {
		r.printf("  %s\n", file)
	}
	return nil
}

// RenderClean writes the directories that were removed.
func (r *Renderer) RenderClean(res *types.CleanResult) error {
	if r.format == ui.FormatJSON {
		return r.json(res)
	}

	if len(res.Removed) == 0 {
		r.printf("Nothing to clean.\n")
		return nil
	}
	for _, dir := range res.Removed {
		r.printf("Removed %s\n", r.styled("Path", dir))
	}
	return nil
}

// RenderGenConfig writes either the effective configuration or the
// path of the starter file that was created.
func (r *Renderer) RenderGenConfig(res *types.GenConfigResult) error {
	if r.format == ui.FormatJSON {
		return r.json(res)
	}

	if res.Written {
		r.printf("Wrote starter config to %s\n", r.styled("Path", res.Path))
		return nil
	}
	r.printf("%s", res.ConfigContent)
	return nil
}

// renderPackages writes one block per processed package with a status
// line per file.
func (r *Renderer) renderPackages(results []types.PackageResult) {
	for _, pr := range results {
		name := r.styled("Package", pr.Package.Name)
		if pr.Err != nil {
			r.printf("%s %s\n  %s\n", r.chip("error"), name,
				r.styled("Error", pr.Err.Error()))
			continue
		}

		scope := r.styled("Muted", "("+string(pr.Package.Scope)+")")
		r.printf("%s %s\n", name, scope)
		for _, file := range pr.Files {
			if file.Err != nil {
				r.printf("  %s %s : %s\n", r.chip("error"),
					file.RelPath, r.styled("Error", file.Err.Error()))
				continue
			}
			r.printf("  %s %s\n", r.chip(string(file.Action)), file.RelPath)
		}
	}
}

// renderLinks writes one status line per linker invocation, with the
// linker's own output indented underneath when present.
func (r *Renderer) renderLinks(links []types.LinkResult) {
	for _, link := range links {
		status := "linked"
		if link.DryRun {
			status = "dry-run"
		}
		if link.Err != nil {
			status = "error"
		}

		r.printf("%s %s\n", r.chip(status), r.styled("Package", link.Package))
		if link.Err != nil {
			r.printf("  %s\n", r.styled("Error", link.Err.Error()))
		}
		if out := strings.TrimSpace(link.Output); out != "" {
			for _, line := range strings.Split(out, "\n") {
				r.printf("  %s\n", r.styled("Muted", line))
			}
		}
	}
}

// linkFailureSummary reports how many linker runs exited non-zero, so
// a failure is visible even when its output scrolled away.
func (r *Renderer) linkFailureSummary(links []types.LinkResult) {
	if failed := types.FailedLinks(links); len(failed) > 0 {
		r.printf("%s\n", r.styled("Error",
			fmt.Sprintf("%d linker run(s) failed", len(failed))))
	}
}

// renderMissing warns about requested packages that did not resolve.
func (r *Renderer) renderMissing(missing []string) {
	for _, name := range missing {
		r.printf("%s %s\n", r.chip("error"),
			r.styled("Error", fmt.Sprintf("package %q not found", name)))
	}
}
