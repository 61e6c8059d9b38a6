package data

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/oarkflow/json"
	"github.com/oarkflow/log"

	"github.com/camel-lab/camelgo/lib"
)

var httpClient = &http.Client{Timeout: 30 * time.Minute}

// UpdateCatalogue fetches the latest catalogue file into the data
// directory.
func UpdateCatalogue() error {
	path, err := CataloguePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	log.Info().Str("url", CatalogueURL).Msg("fetching catalogue")

	resp, err := httpClient.Get(CatalogueURL)
	if err != nil {
		return catErrorf("fetching catalogue: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return catErrorf("fetching catalogue: unexpected status %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return catErrorf("fetching catalogue: %v", err)
	}
	return os.WriteFile(path, raw, 0o644)
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func readVersions() (map[string]string, error) {
	path, err := versionsPath()
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	versions := map[string]string{}
	if err := json.Unmarshal(raw, &versions); err != nil {
		return nil, catErrorf("decoding versions file: %v", err)
	}
	return versions, nil
}

func writeVersions(versions map[string]string) error {
	path, err := versionsPath()
	if err != nil {
		return err
	}

	raw, err := json.Marshal(versions)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// InstallOptions controls InstallPackage.
type InstallOptions struct {
	// NoRecursive installs only the named package, skipping its
	// dependencies.
	NoRecursive bool
	// Force reinstalls packages that are already up to date.
	Force bool
}

// InstallPackage downloads and extracts a package and, by default, its
// dependencies. Packages whose installed version matches the catalogue are
// skipped unless opts.Force is set.
func (c *Catalogue) InstallPackage(name string, opts InstallOptions) error {
	if _, err := c.Package(name); err != nil {
		return err
	}

	deps := []string{name}
	if !opts.NoRecursive {
		var err error
		deps, err = c.dependencies(name)
		if err != nil {
			return err
		}
	}

	versions, err := readVersions()
	if err != nil {
		return err
	}

	if !opts.Force {
		var stale []string
		for _, dep := range deps {
			if versions[dep] != c.Packages[dep].Version {
				stale = append(stale, dep)
			}
		}
		deps = stale
	}

	if len(deps) == 0 {
		log.Info().Str("package", name).Msg("all packages up to date")
		return nil
	}

	for _, dep := range deps {
		pkg := c.Packages[dep]
		if pkg.Type == PackageTypeMeta {
			continue
		}

		if err := c.installOne(pkg); err != nil {
			return err
		}

		versions[dep] = pkg.Version
		if err := writeVersions(versions); err != nil {
			return err
		}
	}

	return nil
}

func (c *Catalogue) installOne(pkg PackageEntry) error {
	if pkg.Type != PackageTypeHTTP {
		return catErrorf("package %q has unsupported type %q", pkg.Name, pkg.Type)
	}
	if pkg.URL == "" || pkg.Destination == "" {
		return catErrorf("package %q has no download location", pkg.Name)
	}

	log.Info().Str("package", pkg.Name).Str("version", pkg.Version).
		Int64("size", pkg.Size).Msg("downloading package")

	tmp, err := os.CreateTemp("", "camelgo-pkg-*.zip")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	resp, err := httpClient.Get(pkg.URL)
	if err != nil {
		tmp.Close()
		return catErrorf("downloading package %q: %v", pkg.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		tmp.Close()
		return catErrorf("downloading package %q: unexpected status %s",
			pkg.Name, resp.Status)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return catErrorf("downloading package %q: %v", pkg.Name, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if pkg.SHA256 != "" {
		sum, err := hashFile(tmpPath)
		if err != nil {
			return err
		}
		if sum != pkg.SHA256 {
			return catErrorf("package %q checksum mismatch: got %s want %s",
				pkg.Name, sum, pkg.SHA256)
		}
	}

	if err := os.MkdirAll(pkg.Destination, 0o755); err != nil {
		return err
	}

	log.Info().Str("package", pkg.Name).Str("destination", pkg.Destination).
		Msg("extracting package")

	if err := lib.ExtractZip(tmpPath, pkg.Destination); err != nil {
		return catErrorf("extracting package %q: %v", pkg.Name, err)
	}
	return nil
}
