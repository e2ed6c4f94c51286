package skillpkg

import (
	"archive/zip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/skycast-cli/skycast/pkg/config"
)

const configFileName = "config.json"

// Result describes a produced archive.
type Result struct {
	Archive  string
	Skill    *Metadata
	Files    []string
	Warnings []string
}

// Package bundles the skill directory into a flat zip at outPath, replacing
// the placeholder credential in config.json with apiKey. Every file lands
// at the archive root regardless of its depth in the source directory.
func Package(dir, apiKey, outPath string) (*Result, error) {
	skill, err := ParseSkillFile(filepath.Join(dir, SkillFileName))
	if err != nil {
		return nil, err
	}

	result := &Result{Archive: outPath, Skill: skill}

	if apiKey == "" || apiKey == config.PlaceholderKey {
		return nil, errors.New("a real API key is required to package the skill")
	}
	if !config.IsWellFormedKey(apiKey) {
		result.Warnings = append(result.Warnings,
			"API key does not look like a 32-character hex string; packaging anyway")
	}

	files, err := collectFiles(dir)
	if err != nil {
		return nil, err
	}

	configContent, err := injectKey(filepath.Join(dir, configFileName), apiKey)
	if err != nil {
		return nil, err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create archive")
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	for _, file := range files {
		name := filepath.Base(file)
		result.Files = append(result.Files, name)

		w, err := zw.Create(name)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to add %s to archive", name)
		}

		if name == configFileName {
			if _, err := w.Write(configContent); err != nil {
				return nil, errors.Wrap(err, "failed to write config entry")
			}
			continue
		}

		src, err := os.Open(file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", file)
		}
		_, err = io.Copy(w, src)
		src.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to write %s", name)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "failed to finalize archive")
	}
	return result, nil
}

// collectFiles walks the skill directory and returns every regular file,
// erroring on basename collisions since the archive is flat.
func collectFiles(dir string) ([]string, error) {
	seen := make(map[string]string)
	var files []string

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(info.Name(), ".") {
			return nil
		}

		name := filepath.Base(path)
		if prev, dup := seen[name]; dup {
			return errors.Errorf("duplicate file name %q (%s and %s); the archive is flat", name, prev, path)
		}
		seen[name] = path
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, ok := seen[configFileName]; !ok {
		return nil, errors.Errorf("%s not found in %s", configFileName, dir)
	}

	sort.Strings(files)
	return files, nil
}

// injectKey rewrites the bundle config with the real credential in the
// api_key field.
func injectKey(configPath, apiKey string) ([]byte, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read bundle config")
	}

	var cfg map[string]any
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrap(err, "bundle config is not valid JSON")
	}

	cfg["api_key"] = apiKey

	out, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode bundle config")
	}
	return append(out, '\n'), nil
}

// Verify re-opens a produced archive and asserts the credential was
// injected: the key must appear in the config entry and the placeholder
// must not appear anywhere.
func Verify(archivePath, apiKey string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return errors.Wrap(err, "failed to open archive")
	}
	defer zr.Close()

	foundConfig := false
	for _, f := range zr.File {
		if strings.Contains(f.Name, "/") {
			return errors.Errorf("archive entry %q is not at the root", f.Name)
		}

		rc, err := f.Open()
		if err != nil {
			return errors.Wrapf(err, "failed to open archive entry %s", f.Name)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return errors.Wrapf(err, "failed to read archive entry %s", f.Name)
		}

		if strings.Contains(string(content), config.PlaceholderKey) {
			return errors.Errorf("placeholder credential still present in %s", f.Name)
		}
		if f.Name == configFileName {
			foundConfig = true
			if !strings.Contains(string(content), apiKey) {
				return errors.New("API key missing from the packaged config")
			}
		}
	}

	if !foundConfig {
		return errors.Errorf("%s missing from archive", configFileName)
	}
	return nil
}
