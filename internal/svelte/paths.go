// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package svelte

import "strings"

const (
	// FileExt is the extension of user-authored component files.
	FileExt = ".svelte"

	// VirtualFileExt is the extension of the synthetic TypeScript
	// representation presented to the compiler in place of a component.
	VirtualFileExt = ".svelte.ts"
)

// IsSvelteFilePath reports whether path points at a user-authored
// component file.
func IsSvelteFilePath(path string) bool {
	return strings.HasSuffix(path, FileExt)
}

// IsVirtualSvelteFilePath reports whether path points at the generated
// TypeScript counterpart of a component file.
func IsVirtualSvelteFilePath(path string) bool {
	return strings.HasSuffix(path, VirtualFileExt)
}

// ToRealSvelteFilePath maps a virtual path back to the component file
// it was generated from. Paths which are not virtual are returned as-is.
func ToRealSvelteFilePath(path string) string {
	if !IsVirtualSvelteFilePath(path) {
		return path
	}
	return strings.TrimSuffix(path, VirtualFileExt) + FileExt
}

// ToVirtualSvelteFilePath maps a component file path to the path of its
// generated TypeScript counterpart.
func ToVirtualSvelteFilePath(path string) string {
	if !IsSvelteFilePath(path) {
		return path
	}
	return strings.TrimSuffix(path, FileExt) + VirtualFileExt
}
