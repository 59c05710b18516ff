package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDiff = `diff --git a/src/app.py b/src/app.py
index 1111111..2222222 100644
--- a/src/app.py
+++ b/src/app.py
@@ -1,3 +1,4 @@
+import os
diff --git a/Dockerfile b/Dockerfile
index 3333333..4444444 100644
--- a/Dockerfile
+++ b/Dockerfile
@@ -1 +1,2 @@
+RUN apt-get update
diff --git a/requirements.txt b/requirements.txt
index 5555555..6666666 100644
--- a/requirements.txt
+++ b/requirements.txt
@@ -1 +1,2 @@
+flask==3.0.0
diff --git a/deploy/k8s/service.yaml b/deploy/k8s/service.yaml
index 7777777..8888888 100644
--- a/deploy/k8s/service.yaml
+++ b/deploy/k8s/service.yaml
@@ -1 +1,2 @@
+kind: Service
diff --git a/infra/main.tf b/infra/main.tf
index 9999999..aaaaaaa 100644
--- a/infra/main.tf
+++ b/infra/main.tf
@@ -1 +1,2 @@
+resource "aws_s3_bucket" "b" {}
`

func TestDiffScopeFlags(t *testing.T) {
	flags := DiffScopeFlags("svc", sampleDiff)

	byFile := map[string]string{}
	for _, f := range flags {
		assert.Equal(t, "svc", f.RepoName)
		byFile[f.File] = f.Category
	}

	require.Len(t, flags, 4)
	assert.Equal(t, ScopeConfig, byFile["Dockerfile"])
	assert.Equal(t, ScopeDependencies, byFile["requirements.txt"])
	assert.Equal(t, ScopeInfrastructure, byFile["deploy/k8s/service.yaml"])
	assert.Equal(t, ScopeInfrastructure, byFile["infra/main.tf"])
	assert.NotContains(t, byFile, "src/app.py")
}

func TestDiffScopeFlagsEmptyAndPlainDiffs(t *testing.T) {
	assert.Empty(t, DiffScopeFlags("svc", ""))

	plain := "diff --git a/pkg/handler.go b/pkg/handler.go\n+++ b/pkg/handler.go\n"
	assert.Empty(t, DiffScopeFlags("svc", plain))
}

func TestDiffScopeFlagsDeduplicatesFiles(t *testing.T) {
	dup := "diff --git a/go.mod b/go.mod\ndiff --git a/go.mod b/go.mod\n"
	flags := DiffScopeFlags("svc", dup)
	assert.Len(t, flags, 1)
	assert.Equal(t, ScopeDependencies, flags[0].Category)
}

func TestClassifyPath(t *testing.T) {
	assert.Equal(t, ScopeConfig, classifyPath(".github/workflows/ci.yml"))
	assert.Equal(t, ScopeConfig, classifyPath("docker-compose.yaml"))
	assert.Equal(t, ScopeConfig, classifyPath(".env.production"))
	assert.Equal(t, ScopeDependencies, classifyPath("api/package.json"))
	assert.Equal(t, ScopeInfrastructure, classifyPath("Jenkinsfile"))
	assert.Empty(t, classifyPath("src/main.go"))
	assert.Empty(t, classifyPath("docs/Makefile.md"))
}
