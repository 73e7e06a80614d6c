package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Tool is an executable the generated package needs.
type Tool struct {
	Name       string
	Constraint string // semver constraint the installed version must satisfy
	Required   bool
}

// DefaultTools lists the tools used by the generated package.json scripts.
var DefaultTools = []Tool{
	{Name: "node", Constraint: ">=18.0.0", Required: true},
	{Name: "npm", Constraint: ">=8.0.0", Required: true},
	{Name: "yarn", Constraint: ">=1.22.0", Required: false},
}

// Status is the outcome of checking one tool.
type Status struct {
	Tool    Tool
	Path    string
	Version string
	OK      bool
	Problem string
}

// Checker inspects installed tools. The zero value uses exec.LookPath and
// runs "<tool> --version".
type Checker struct {
	LookPath func(file string) (string, error)
	Output   func(ctx context.Context, path string, args ...string) ([]byte, error)
}

// Check inspects every tool in order.
func (c *Checker) Check(ctx context.Context, tools []Tool) []Status {
	statuses := make([]Status, 0, len(tools))
	for _, tool := range tools {
		statuses = append(statuses, c.checkOne(ctx, tool))
	}
	return statuses
}

// Healthy reports whether every required tool passed.
func Healthy(statuses []Status) bool {
	for _, s := range statuses {
		if s.Tool.Required && !s.OK {
			return false
		}
	}
	return true
}

func (c *Checker) checkOne(ctx context.Context, tool Tool) Status {
	st := Status{Tool: tool}

	path, err := c.lookPath(tool.Name)
	if err != nil {
		st.Problem = "not found in PATH"
		return st
	}
	st.Path = path

	out, err := c.output(ctx, path, "--version")
	if err != nil {
		st.Problem = fmt.Sprintf("running %s --version: %v", tool.Name, err)
		return st
	}

	v, err := parseSemver(strings.TrimSpace(string(out)))
	if err != nil {
		st.Problem = fmt.Sprintf("unrecognized version output %q", strings.TrimSpace(string(out)))
		return st
	}
	st.Version = v.String()

	ok, err := Satisfies(st.Version, tool.Constraint)
	if err != nil {
		st.Problem = err.Error()
		return st
	}
	if !ok {
		st.Problem = fmt.Sprintf("version %s does not satisfy %s", st.Version, tool.Constraint)
		return st
	}

	st.OK = true
	return st
}

func (c *Checker) lookPath(file string) (string, error) {
	if c.LookPath != nil {
		return c.LookPath(file)
	}
	return exec.LookPath(file)
}

func (c *Checker) output(ctx context.Context, path string, args ...string) ([]byte, error) {
	if c.Output != nil {
		return c.Output(ctx, path, args...)
	}
	return exec.CommandContext(ctx, path, args...).Output()
}

// Satisfies reports whether version meets constraint. An empty constraint
// accepts any version.
func Satisfies(version, constraint string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	if constraint == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
