package pipeline

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/CollideNV/hadron/pkg/models"
)

// Scope flag categories.
const (
	ScopeConfig         = "config"
	ScopeDependencies   = "dependencies"
	ScopeInfrastructure = "infrastructure"
)

var diffHeaderRe = regexp.MustCompile(`^diff --git a/.+ b/(.+)$`)

var configPathRes = []*regexp.Regexp{
	regexp.MustCompile(`(^|/)Dockerfile[^/]*$`),
	regexp.MustCompile(`(^|/)docker-compose[^/]*\.ya?ml$`),
	regexp.MustCompile(`(^|/)\.github/`),
	regexp.MustCompile(`(^|/)\.gitlab-ci\.ya?ml$`),
	regexp.MustCompile(`(^|/)Makefile$`),
	regexp.MustCompile(`(^|/)\.env([.-][^/]*)?$`),
	regexp.MustCompile(`(^|/)nginx\.conf$`),
}

var dependencyManifests = map[string]bool{
	"package.json":      true,
	"package-lock.json": true,
	"yarn.lock":         true,
	"requirements.txt":  true,
	"pyproject.toml":    true,
	"poetry.lock":       true,
	"go.mod":            true,
	"go.sum":            true,
	"Cargo.toml":        true,
	"Cargo.lock":        true,
	"Gemfile":           true,
	"pom.xml":           true,
	"build.gradle":      true,
}

var infraPathRes = []*regexp.Regexp{
	regexp.MustCompile(`\.tf$`),
	regexp.MustCompile(`(^|/)(k8s|kubernetes|deploy|deployment|helm|charts)/`),
	regexp.MustCompile(`(^|/)Jenkinsfile$`),
	regexp.MustCompile(`(^|/)Procfile$`),
}

// DiffScopeFlags parses a unified diff and flags touched files that
// fall outside ordinary source changes: build and runtime config,
// dependency manifests, and infrastructure descriptors. It is fully
// deterministic; no agent sees the diff before this pass runs.
func DiffScopeFlags(repoName, unifiedDiff string) []models.ScopeFlag {
	var flags []models.ScopeFlag
	seen := make(map[string]bool)

	for _, line := range strings.Split(unifiedDiff, "\n") {
		m := diffHeaderRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		file := m[1]
		if seen[file] {
			continue
		}
		seen[file] = true
		if cat := classifyPath(file); cat != "" {
			flags = append(flags, models.ScopeFlag{
				RepoName: repoName,
				Category: cat,
				File:     file,
				Message:  fmt.Sprintf("change touches %s file %s", cat, file),
			})
		}
	}
	return flags
}

func classifyPath(file string) string {
	base := path.Base(file)
	if dependencyManifests[base] {
		return ScopeDependencies
	}
	for _, re := range infraPathRes {
		if re.MatchString(file) {
			return ScopeInfrastructure
		}
	}
	for _, re := range configPathRes {
		if re.MatchString(file) {
			return ScopeConfig
		}
	}
	return ""
}
