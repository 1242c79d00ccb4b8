package pkgin

import (
	"fmt"
	"regexp"
	"strings"
)

// packageRe splits a token on the last hyphen that leaves a non-empty version.
// Names with several hyphens are resolved greedily: lib-foo-bar-1.0 -> lib-foo-bar, 1.0
var packageRe = regexp.MustCompile(`(?P<name>.+(-[^-])*)-(?P<version>.+)`)

// ParsePackageToken separates a name-version token
func ParsePackageToken(token string) (Package, error) {
	token = strings.TrimSpace(token)
	m := packageRe.FindStringSubmatch(token)
	if m == nil {
		return Package{}, fmt.Errorf("%w: no version in %q", ErrMalformedOutput, token)
	}
	return Package{
		Name:    m[packageRe.SubexpIndex("name")],
		Version: m[packageRe.SubexpIndex("version")],
	}, nil
}

// splitLines splits output on newlines and drops the empty element left by a
// trailing newline
func splitLines(output string) []string {
	lines := strings.Split(output, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}

// innerLines returns the lines between the first and the last element
func innerLines(output string) []string {
	lines := strings.Split(output, "\n")
	if len(lines) < 2 {
		return nil
	}
	return lines[1 : len(lines)-1]
}

func parseToken(op, line, token string) (Package, error) {
	pkg, err := ParsePackageToken(token)
	if err != nil {
		return Package{}, &ParseError{Op: op, Line: line, Err: err}
	}
	return pkg, nil
}

// ParseList parses "pkgin -P list" and "pkgin -P avail": one
// "name-version description" per line
func ParseList(output string) ([]Package, error) {
	var packages []Package
	for _, line := range splitLines(output) {
		token, description, _ := strings.Cut(line, " ")
		pkg, err := parseToken(VerbList, line, token)
		if err != nil {
			return nil, err
		}
		pkg.Description = strings.TrimSpace(description)
		packages = append(packages, pkg)
	}
	return packages, nil
}

// ParseSearch parses "pkgin -P search": "name-version marker description"
// lines followed by a fixed legend block
func ParseSearch(output string) ([]Package, error) {
	lines := strings.Split(output, "\n")
	if len(lines) <= SearchTrailerLines {
		return nil, nil
	}
	lines = lines[:len(lines)-SearchTrailerLines]

	var packages []Package
	for _, line := range lines {
		fields := strings.SplitN(line, " ", 3)
		pkg, err := parseToken(VerbSearch, line, fields[0])
		if err != nil {
			return nil, err
		}
		if len(fields) > 1 {
			if state, ok := States[fields[1]]; ok {
				pkg.State = &state
			}
		}
		if len(fields) > 2 {
			pkg.Description = strings.TrimSpace(fields[2])
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

// ParseShowKeep parses "pkgin -P show-keep"
func ParseShowKeep(output string) ([]Package, error) {
	var packages []Package
	for _, line := range splitLines(output) {
		token, _, _ := strings.Cut(line, " ")
		pkg, err := parseToken(VerbShowKeep, line, token)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

// ParseDeps parses show-deps, show-full-deps and show-rev-deps: a banner line
// followed by one token per line. verb labels parse errors.
func ParseDeps(verb, output string) ([]Package, error) {
	lines := splitLines(output)
	if len(lines) > 0 {
		lines = lines[1:]
	}

	var packages []Package
	for _, line := range lines {
		pkg, err := parseToken(verb, line, line)
		if err != nil {
			return nil, err
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

// ParseFileList parses provides and requires: a header, the entries, and a
// trailing element
func ParseFileList(output string) []string {
	lines := innerLines(output)
	files := make([]string, 0, len(lines))
	for _, line := range lines {
		files = append(files, strings.TrimSpace(line))
	}
	return files
}

// ParseExport parses "pkgin export": a header followed by location/name lines.
// Only the first two slash-separated segments are read.
func ParseExport(output string) ([]ExportEntry, error) {
	var entries []ExportEntry
	for _, line := range innerLines(output) {
		segments := strings.Split(strings.TrimSpace(line), "/")
		if len(segments) < 2 {
			return nil, &ParseError{Op: VerbExport, Line: line, Err: ErrMalformedOutput}
		}
		entries = append(entries, ExportEntry{
			Location:    segments[0],
			PackageName: segments[1],
		})
	}
	return entries, nil
}

// ParseTransaction finds the first line containing marker and reads its
// summary. A missing marker yields a Noop transaction.
func ParseTransaction(output, marker string, withSizes bool) (*Transaction, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, marker) {
			continue
		}
		packages, download, install, err := parseSummaryLine(marker, line, withSizes)
		if err != nil {
			return nil, err
		}
		return &Transaction{
			Packages:     packages,
			DownloadSize: download,
			InstallSize:  install,
		}, nil
	}
	return &Transaction{Noop: true}, nil
}

// ParseUpgrade reads both the "to be upgraded:" and "to be installed:"
// summaries of an upgrade run
func ParseUpgrade(output string) (*Upgrade, error) {
	result := &Upgrade{Noop: true}
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, MarkerUpgraded) {
			packages, _, _, err := parseSummaryLine(MarkerUpgraded, line, false)
			if err != nil {
				return nil, err
			}
			result.Upgraded = packages
			result.Noop = false
		}
		if strings.Contains(line, MarkerInstalled) {
			packages, download, install, err := parseSummaryLine(MarkerInstalled, line, true)
			if err != nil {
				return nil, err
			}
			result.Installed = packages
			result.DownloadSize = download
			result.InstallSize = install
			result.Noop = false
		}
	}
	return result, nil
}

// parseSummaryLine handles
//
//	4 packages to be installed: foo-1.0 bar-2.0 (1.2M to download, 3.4M to install)
//
// The package list sits between the first colon and the opening parenthesis;
// sizes are the first and fourth words after it.
func parseSummaryLine(op, line string, withSizes bool) (packages []Package, download, install string, err error) {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return nil, "", "", &ParseError{Op: op, Line: line, Err: ErrMalformedOutput}
	}
	infos := strings.SplitN(parts[1], "(", 2)

	packages = []Package{}
	for _, token := range strings.Fields(infos[0]) {
		pkg, err := parseToken(op, line, token)
		if err != nil {
			return nil, "", "", err
		}
		packages = append(packages, pkg)
	}

	if withSizes && len(infos) > 1 {
		sizes := strings.Split(infos[1], " ")
		download = sizes[0]
		if len(sizes) > 3 {
			install = sizes[3]
		}
	}
	return packages, download, install, nil
}
