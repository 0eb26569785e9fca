// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

// Package modresolve answers "is this npm package installed" the way
// node would, by walking node_modules directories upward from a
// project config file.
package modresolve

import (
	"encoding/json"
	"errors"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
)

type packageManifest struct {
	Main    string          `json:"main"`
	Exports json.RawMessage `json:"exports"`
}

// Resolve locates module relative to the project config file at
// configPath and returns the path of the package's entry point.
//
// Lookup walks node_modules directories from the config's directory up
// to the filesystem root. A package whose export map hides the root
// entry yields PathNotExportedErr; a package nowhere installed yields
// ModuleNotFoundErr.
func Resolve(fsys afero.Fs, configPath, module string) (string, error) {
	dir := filepath.ToSlash(filepath.Dir(configPath))

	for {
		pkgDir := path.Join(dir, "node_modules", module)
		entry, err := resolvePackage(fsys, pkgDir, module)
		if err == nil {
			return entry, nil
		}
		var notFound *ModuleNotFoundErr
		if !errors.As(err, &notFound) {
			return "", err
		}

		parent := path.Dir(dir)
		if parent == dir {
			return "", &ModuleNotFoundErr{Module: module}
		}
		dir = parent
	}
}

// resolvePackage resolves the root entry point of the package rooted
// at pkgDir.
func resolvePackage(fsys afero.Fs, pkgDir, module string) (string, error) {
	exists, err := afero.DirExists(fsys, pkgDir)
	if err != nil || !exists {
		return "", &ModuleNotFoundErr{Module: module}
	}

	manifestPath := path.Join(pkgDir, "package.json")
	b, err := afero.ReadFile(fsys, manifestPath)
	if err != nil {
		// bare package directory, fall back to index.js
		return resolveFile(fsys, pkgDir, "index.js", module)
	}

	var manifest packageManifest
	if err := json.Unmarshal(b, &manifest); err != nil {
		return "", &ModuleNotFoundErr{Module: module}
	}

	if len(manifest.Exports) > 0 {
		target, ok := rootExportTarget(manifest.Exports)
		if !ok {
			return "", &PathNotExportedErr{Module: module, Dir: pkgDir}
		}
		return path.Join(pkgDir, target), nil
	}

	main := manifest.Main
	if main == "" {
		main = "index.js"
	}
	return resolveFile(fsys, pkgDir, main, module)
}

func resolveFile(fsys afero.Fs, pkgDir, rel, module string) (string, error) {
	entry := path.Join(pkgDir, rel)
	exists, err := afero.Exists(fsys, entry)
	if err != nil || !exists {
		return "", &ModuleNotFoundErr{Module: module}
	}
	return entry, nil
}

// rootExportTarget extracts the target for the "." subpath from a
// package export map. Exports come in three shapes: a plain string, a
// subpath map (keys starting with ".") and a condition map. Conditions
// resolve through "import", "require" and "default", in that order.
func rootExportTarget(raw json.RawMessage) (string, bool) {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str, true
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", false
	}

	if isSubpathMap(obj) {
		root, ok := obj["."]
		if !ok {
			return "", false
		}
		return rootExportTarget(root)
	}

	for _, condition := range []string{"import", "require", "default"} {
		if target, ok := obj[condition]; ok {
			return rootExportTarget(target)
		}
	}
	return "", false
}

func isSubpathMap(obj map[string]json.RawMessage) bool {
	for key := range obj {
		if len(key) > 0 && key[0] == '.' {
			return true
		}
	}
	return false
}

// HasNodeModule reports whether module is present relative to the
// project config at configPath. A package whose export map restricts
// resolution still exists, so it counts as present; every other
// resolution failure counts as absent. Never panics, never propagates
// an error.
func HasNodeModule(fsys afero.Fs, configPath, module string) bool {
	_, err := Resolve(fsys, configPath, module)
	if err == nil {
		return true
	}
	var notExported *PathNotExportedErr
	return errors.As(err, &notExported)
}
