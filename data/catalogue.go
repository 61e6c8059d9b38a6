// Package data locates and installs the pretrained datasets the other
// packages load at runtime. Datasets live under a per-user data directory
// and are described by a catalogue file that maps components to their
// available datasets and packages to downloadable archives.
package data

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/oarkflow/json"
)

// CatalogueURL is where the default catalogue file is fetched from when it
// is not present in the data directory.
const CatalogueURL = "https://raw.githubusercontent.com/CAMeL-Lab/camel-tools-data/main/catalogue-1.4.json"

// Package types.
const (
	// PackageTypeMeta marks a package with no files of its own, only
	// dependencies.
	PackageTypeMeta = "meta"
	// PackageTypeHTTP marks a package distributed as a zip archive over
	// HTTP.
	PackageTypeHTTP = "http"
)

// CatalogueError is returned when a catalogue query or install fails.
type CatalogueError struct {
	Msg string
}

func (e *CatalogueError) Error() string {
	return "data: " + e.Msg
}

func catErrorf(format string, args ...any) *CatalogueError {
	return &CatalogueError{Msg: fmt.Sprintf(format, args...)}
}

// FileEntry describes one file of an installed package.
type FileEntry struct {
	// Path is relative to the package's destination directory.
	Path   string
	SHA256 string
}

// PackageEntry describes one installable package.
type PackageEntry struct {
	Name        string
	Description string
	// Size of the package archive in bytes. Zero for meta packages.
	Size    int64
	Version string
	License string
	// Type is PackageTypeMeta or PackageTypeHTTP.
	Type string
	// URL of the package archive. Empty for meta packages.
	URL string
	// Destination is the absolute install directory. Empty for meta
	// packages.
	Destination  string
	Dependencies []string
	Files        []FileEntry
	Private      bool
	// SHA256 of the package archive. Empty for meta packages.
	SHA256 string
}

// DatasetEntry names one dataset of a component.
type DatasetEntry struct {
	Name      string
	Component string
	// Path is the absolute directory holding the dataset's files.
	Path string
}

// ComponentEntry groups the datasets usable by one component, for example
// a morphology database or a disambiguation model.
type ComponentEntry struct {
	Name     string
	Default  string
	Datasets map[string]DatasetEntry
}

// Catalogue indexes all known packages and components.
type Catalogue struct {
	Version    string
	Packages   map[string]PackageEntry
	Components map[string]ComponentEntry
}

// RootDir returns the data directory, honoring the CAMELTOOLS_DATA
// environment variable and defaulting to ~/.camel_tools.
func RootDir() (string, error) {
	if dir := os.Getenv("CAMELTOOLS_DATA"); dir != "" {
		abs, err := filepath.Abs(expandHome(dir))
		if err != nil {
			return "", err
		}
		return abs, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".camel_tools"), nil
}

func expandHome(path string) string {
	if path == "~" || len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// CataloguePath returns the path of the catalogue file inside the data
// directory.
func CataloguePath() (string, error) {
	root, err := RootDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "catalogue.json"), nil
}

func versionsPath() (string, error) {
	root, err := RootDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "versions.json"), nil
}

// Raw catalogue file layout.
type catalogueJSON struct {
	Version    string                   `json:"version"`
	Packages   map[string]packageJSON   `json:"packages"`
	Components map[string]componentJSON `json:"components"`
}

type packageJSON struct {
	Description  string     `json:"description"`
	Size         int64      `json:"size"`
	Version      string     `json:"version"`
	License      string     `json:"license"`
	PackageType  string     `json:"package_type"`
	URL          string     `json:"url"`
	Destination  string     `json:"destination"`
	Dependencies []string   `json:"dependencies"`
	Files        []fileJSON `json:"files"`
	Private      bool       `json:"private"`
	SHA256       string     `json:"sha256"`
}

type fileJSON struct {
	Path   string `json:"path"`
	SHA256 string `json:"sha256"`
}

type componentJSON struct {
	Default  string                 `json:"default"`
	Datasets map[string]datasetJSON `json:"datasets"`
}

type datasetJSON struct {
	Path string `json:"path"`
}

// LoadCatalogue reads and resolves a catalogue file. Relative package and
// dataset paths are resolved against the data directory.
func LoadCatalogue(path string) (*Catalogue, error) {
	root, err := RootDir()
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var parsed catalogueJSON
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, catErrorf("decoding catalogue %q: %v", path, err)
	}

	dataDir := filepath.Join(root, "data")

	cat := &Catalogue{
		Version:    parsed.Version,
		Packages:   make(map[string]PackageEntry, len(parsed.Packages)),
		Components: make(map[string]ComponentEntry, len(parsed.Components)),
	}

	for name, pkg := range parsed.Packages {
		entry := PackageEntry{
			Name:         name,
			Description:  pkg.Description,
			Size:         pkg.Size,
			Version:      pkg.Version,
			License:      pkg.License,
			Type:         pkg.PackageType,
			URL:          pkg.URL,
			Dependencies: pkg.Dependencies,
			Private:      pkg.Private,
			SHA256:       pkg.SHA256,
		}
		if pkg.Destination != "" {
			entry.Destination = filepath.Join(dataDir, pkg.Destination)
		}
		for _, f := range pkg.Files {
			entry.Files = append(entry.Files, FileEntry{Path: f.Path, SHA256: f.SHA256})
		}
		cat.Packages[name] = entry
	}

	for name, cmp := range parsed.Components {
		entry := ComponentEntry{
			Name:     name,
			Default:  cmp.Default,
			Datasets: make(map[string]DatasetEntry, len(cmp.Datasets)),
		}
		for dsName, ds := range cmp.Datasets {
			entry.Datasets[dsName] = DatasetEntry{
				Name:      dsName,
				Component: name,
				Path:      filepath.Join(dataDir, ds.Path),
			}
		}
		cat.Components[name] = entry
	}

	return cat, nil
}

// Default loads the catalogue from the data directory, fetching it first
// when it is not present.
func Default() (*Catalogue, error) {
	path, err := CataloguePath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); err != nil {
		if err := UpdateCatalogue(); err != nil {
			return nil, err
		}
	}

	return LoadCatalogue(path)
}

// Package returns the entry for a package name.
func (c *Catalogue) Package(name string) (PackageEntry, error) {
	pkg, ok := c.Packages[name]
	if !ok {
		return PackageEntry{}, catErrorf("invalid package name %q", name)
	}
	return pkg, nil
}

// Component returns the entry for a component name.
func (c *Catalogue) Component(name string) (ComponentEntry, error) {
	cmp, ok := c.Components[name]
	if !ok {
		return ComponentEntry{}, catErrorf("invalid component name %q", name)
	}
	return cmp, nil
}

// Dataset returns the entry for a dataset of a component. An empty dataset
// name selects the component's default dataset.
func (c *Catalogue) Dataset(component, dataset string) (DatasetEntry, error) {
	cmp, err := c.Component(component)
	if err != nil {
		return DatasetEntry{}, err
	}

	if dataset == "" {
		dataset = cmp.Default
	}
	ds, ok := cmp.Datasets[dataset]
	if !ok {
		return DatasetEntry{}, catErrorf("invalid dataset name %q for component %q",
			dataset, component)
	}
	return ds, nil
}

// DatasetPath returns the directory of a dataset of a component. An empty
// dataset name selects the component's default dataset.
func (c *Catalogue) DatasetPath(component, dataset string) (string, error) {
	ds, err := c.Dataset(component, dataset)
	if err != nil {
		return "", err
	}
	return ds.Path, nil
}

// PublicPackages returns all non-private packages sorted by name.
func (c *Catalogue) PublicPackages() []PackageEntry {
	var pkgs []PackageEntry
	for _, pkg := range c.Packages {
		if !pkg.Private {
			pkgs = append(pkgs, pkg)
		}
	}
	sort.Slice(pkgs, func(i, j int) bool { return pkgs[i].Name < pkgs[j].Name })
	return pkgs
}

// dependencies resolves the transitive closure of concrete packages an
// install of name requires. Meta packages contribute their dependencies
// but are not installed themselves.
func (c *Catalogue) dependencies(name string) ([]string, error) {
	seen := map[string]struct{}{}
	var deps []string
	stack := []string{name}

	for len(stack) > 0 {
		pkgName := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		pkg, ok := c.Packages[pkgName]
		if !ok {
			return nil, catErrorf("invalid package name %q", pkgName)
		}

		if pkg.Type != PackageTypeMeta {
			if _, done := seen[pkgName]; done {
				continue
			}
			seen[pkgName] = struct{}{}
			deps = append(deps, pkgName)
		}

		for _, dep := range pkg.Dependencies {
			if _, done := seen[dep]; !done {
				stack = append(stack, dep)
			}
		}
	}

	sort.Strings(deps)
	return deps, nil
}
