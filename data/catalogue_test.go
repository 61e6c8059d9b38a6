package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogue = `{
	"version": "1.4",
	"packages": {
		"all": {
			"description": "Everything",
			"package_type": "meta",
			"dependencies": ["morphology-db-msa", "disambig-mle-msa"],
			"private": false
		},
		"morphology-db-msa": {
			"description": "MSA morphology database",
			"version": "1.0",
			"license": "GPL-2.0",
			"package_type": "http",
			"url": "https://example.com/morphology-db-msa.zip",
			"destination": "morphology_db/calima-msa-r13",
			"size": 1024,
			"sha256": "abc123",
			"private": false,
			"files": [
				{"path": "morphology.db", "sha256": "def456"}
			]
		},
		"disambig-mle-msa": {
			"description": "MSA MLE model",
			"version": "1.0",
			"license": "MIT",
			"package_type": "http",
			"url": "https://example.com/disambig-mle-msa.zip",
			"destination": "disambig_mle/calima-msa-r13",
			"private": false,
			"dependencies": ["morphology-db-msa"]
		},
		"internal-fixture": {
			"description": "Hidden",
			"package_type": "http",
			"url": "https://example.com/fixture.zip",
			"destination": "fixture",
			"private": true
		}
	},
	"components": {
		"MorphologyDB": {
			"default": "calima-msa-r13",
			"datasets": {
				"calima-msa-r13": {"path": "morphology_db/calima-msa-r13"},
				"calima-egy-r13": {"path": "morphology_db/calima-egy-r13"}
			}
		},
		"DisambigMLE": {
			"default": "calima-msa-r13",
			"datasets": {
				"calima-msa-r13": {"path": "disambig_mle/calima-msa-r13"}
			}
		}
	}
}`

func writeTestCatalogue(t *testing.T) (*Catalogue, string) {
	t.Helper()

	root := t.TempDir()
	t.Setenv("CAMELTOOLS_DATA", root)

	path := filepath.Join(root, "catalogue.json")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogue), 0o644))

	cat, err := LoadCatalogue(path)
	require.NoError(t, err)
	return cat, root
}

func TestRootDirEnvOverride(t *testing.T) {
	t.Setenv("CAMELTOOLS_DATA", "/tmp/camel-data")
	root, err := RootDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/camel-data", root)
}

func TestLoadCatalogue(t *testing.T) {
	cat, root := writeTestCatalogue(t)

	assert.Equal(t, "1.4", cat.Version)
	assert.Len(t, cat.Packages, 4)
	assert.Len(t, cat.Components, 2)

	pkg, err := cat.Package("morphology-db-msa")
	require.NoError(t, err)
	assert.Equal(t, PackageTypeHTTP, pkg.Type)
	assert.Equal(t, filepath.Join(root, "data", "morphology_db", "calima-msa-r13"),
		pkg.Destination)
	require.Len(t, pkg.Files, 1)
	assert.Equal(t, "morphology.db", pkg.Files[0].Path)

	_, err = cat.Package("no-such-package")
	assert.Error(t, err)
}

func TestDatasetPath(t *testing.T) {
	cat, root := writeTestCatalogue(t)

	path, err := cat.DatasetPath("MorphologyDB", "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "morphology_db", "calima-msa-r13"), path)

	path, err = cat.DatasetPath("MorphologyDB", "calima-egy-r13")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "morphology_db", "calima-egy-r13"), path)

	_, err = cat.DatasetPath("MorphologyDB", "no-such-dataset")
	assert.Error(t, err)

	_, err = cat.DatasetPath("NoSuchComponent", "")
	assert.Error(t, err)
}

func TestDependencies(t *testing.T) {
	cat, _ := writeTestCatalogue(t)

	deps, err := cat.dependencies("all")
	require.NoError(t, err)
	assert.Equal(t, []string{"disambig-mle-msa", "morphology-db-msa"}, deps)

	deps, err = cat.dependencies("morphology-db-msa")
	require.NoError(t, err)
	assert.Equal(t, []string{"morphology-db-msa"}, deps)
}

func TestPublicPackages(t *testing.T) {
	cat, _ := writeTestCatalogue(t)

	pkgs := cat.PublicPackages()
	require.Len(t, pkgs, 3)
	assert.Equal(t, "all", pkgs[0].Name)
	assert.Equal(t, "disambig-mle-msa", pkgs[1].Name)
	assert.Equal(t, "morphology-db-msa", pkgs[2].Name)
}

func TestInstallPackageUpToDate(t *testing.T) {
	cat, root := writeTestCatalogue(t)

	versions := []byte(`{"morphology-db-msa": "1.0"}`)
	require.NoError(t,
		os.WriteFile(filepath.Join(root, "versions.json"), versions, 0o644))

	// Up-to-date packages are skipped, so no network access happens.
	err := cat.InstallPackage("morphology-db-msa", InstallOptions{})
	assert.NoError(t, err)
}
