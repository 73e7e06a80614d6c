package generator

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/flosch/pongo2/v6"
	"github.com/youwol/tsscaffold/internal/metadata"
	"github.com/youwol/tsscaffold/internal/template"
)

// Link bases for the published package.
const (
	platformURL = "https://platform.youwol.com/applications/@youwol/cdn-explorer/latest"
	npmURL      = "https://www.npmjs.com/package/"
	githubURL   = "https://github.com/youwol/"
	userGuide   = "https://l.youwol.com/doc/"
)

// buildContext validates the version strings of tpl and flattens it into
// the values visible to the templates.
func buildContext(tpl *template.Template, year int, licenseHolder string) (pongo2.Context, error) {
	version, err := semver.NewVersion(tpl.Version)
	if err != nil {
		return nil, fmt.Errorf("package version %q: %w", tpl.Version, err)
	}

	externals, err := dependencyValues(tpl.Dependencies.RunTime.Externals)
	if err != nil {
		return nil, fmt.Errorf("external dependencies: %w", err)
	}
	included, err := dependencyValues(tpl.Dependencies.RunTime.IncludedInBundle)
	if err != nil {
		return nil, fmt.Errorf("bundled dependencies: %w", err)
	}

	// package.json lists both sets; a name in both appears twice.
	all := make([]map[string]any, 0, len(externals)+len(included))
	all = append(all, externals...)
	all = append(all, included...)

	if licenseHolder == "" {
		licenseHolder = tpl.Author
	}

	return pongo2.Context{
		"name":             tpl.Name,
		"bundleName":       metadata.BundleName(tpl.Name),
		"version":          tpl.Version,
		"description":      tpl.ShortDescription,
		"author":           tpl.Author,
		"type":             string(tpl.Type),
		"assetId":          base64.StdEncoding.EncodeToString([]byte(tpl.Name)),
		"apiVersion":       apiKey(version),
		"entryFile":        tpl.Bundles.MainModule.EntryFile,
		"loadDependencies": tpl.Bundles.MainModule.LoadDependencies,
		"externals":        externals,
		"included":         included,
		"dependencies":     all,
		"userGuide":        tpl.UserGuide,
		"year":             year,
		"licenseHolder":    licenseHolder,
		"links": map[string]string{
			"developerDocumentation": platformURL + "?package=" + tpl.Name + "&tab=doc",
			"npmPackage":             npmURL + tpl.Name,
			"sourceGithub":           githubURL + metadata.BundleName(tpl.Name),
			"userGuide":              userGuide + tpl.Name,
		},
	}, nil
}

// dependencyValues checks every constraint and returns the template view of
// deps, order preserved.
func dependencyValues(deps template.Dependencies) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(deps))
	for _, dep := range deps {
		if _, err := semver.NewConstraint(dep.Version); err != nil {
			return nil, fmt.Errorf("%s: invalid version constraint %q: %w", dep.Name, dep.Version, err)
		}
		key, err := constraintAPIKey(dep.Version)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", dep.Name, err)
		}
		out = append(out, map[string]any{
			"name":    dep.Name,
			"version": dep.Version,
			"apiKey":  key,
		})
	}
	return out, nil
}

// apiKey returns the API version of v: the major number from 1.0.0 on, and
// "0" followed by the minor number before that ("0.1.4" -> "01").
func apiKey(v *semver.Version) string {
	if v.Major() == 0 {
		return fmt.Sprintf("0%d", v.Minor())
	}
	return fmt.Sprintf("%d", v.Major())
}

// constraintAPIKey derives the API version from the lower bound of a
// constraint such as "^0.1.0" or "~1.2".
func constraintAPIKey(constraint string) (string, error) {
	lower := strings.TrimLeft(strings.TrimSpace(constraint), "^~=>v ")
	if i := strings.IndexAny(lower, " ,<|"); i >= 0 {
		lower = lower[:i]
	}
	v, err := semver.NewVersion(lower)
	if err != nil {
		return "", fmt.Errorf("cannot derive API version from %q: %w", constraint, err)
	}
	return apiKey(v), nil
}
