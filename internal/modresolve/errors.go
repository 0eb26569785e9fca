// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package modresolve

import "fmt"

// ModuleNotFoundErr means no node_modules directory reachable from the
// lookup origin contains the module.
type ModuleNotFoundErr struct {
	Module string
}

func (e *ModuleNotFoundErr) Error() string {
	return fmt.Sprintf("module not found: %s", e.Module)
}

func (e *ModuleNotFoundErr) Is(err error) bool {
	_, ok := err.(*ModuleNotFoundErr)
	return ok
}

// PathNotExportedErr means the module is installed but its package
// export map does not expose the root entry point. For presence
// checks this still counts as "module exists".
type PathNotExportedErr struct {
	Module string
	Dir    string
}

func (e *PathNotExportedErr) Error() string {
	return fmt.Sprintf("package %s in %s does not export its root entry point",
		e.Module, e.Dir)
}

func (e *PathNotExportedErr) Is(err error) bool {
	_, ok := err.(*PathNotExportedErr)
	return ok
}
