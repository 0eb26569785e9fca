// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package svelte

import "strings"

// Sentinels embedded by the code generator. Their exact text is part of
// the generator's output contract and must match it byte for byte.
const (
	ignoreStartMarker = "/*Ωignore_startΩ*/"
	ignoreEndMarker   = "/*Ωignore_endΩ*/"

	// componentNameSuffix terminates every generated component class name.
	componentNameSuffix = "__SvelteComponent_"

	// storeGetHelper is the helper call the generator wraps around
	// store subscriptions. The opening parenthesis is significant as it
	// immediately precedes the store variable.
	storeGetHelper = "__sveltets_2_store_get("
)

// IsInGeneratedCode reports whether text[start:end] falls into a region
// the generator marked as ignored. A region counts as open when the last
// start marker before start sits on the same line and follows the last
// end marker, and an end marker occurs between end and the end of that
// line. Regions spanning multiple lines are not recognized; the
// generator only emits single-line ignore regions.
func IsInGeneratedCode(text string, start, end int) bool {
	if start < 0 || end < start || end > len(text) {
		return false
	}

	lineStart := strings.LastIndexByte(text[:start], '\n')
	lineEnd := strings.IndexByte(text[end:], '\n')
	if lineEnd < 0 {
		lineEnd = len(text)
	} else {
		lineEnd += end
	}

	lastOpen := strings.LastIndex(text[:start], ignoreStartMarker)
	lastClose := strings.LastIndex(text[:start], ignoreEndMarker)

	return lastOpen > lineStart &&
		lastOpen > lastClose &&
		strings.Contains(text[end:lineEnd], ignoreEndMarker)
}

// IsGeneratedComponentName reports whether name is a component class
// name produced by the generator.
func IsGeneratedComponentName(name string) bool {
	return strings.HasSuffix(name, componentNameSuffix)
}

// OffsetOfComponentExport locates the component class export within the
// full text of a generated file. Returns -1 when text holds no
// generated component.
func OffsetOfComponentExport(text string) int {
	return strings.LastIndex(text, componentNameSuffix)
}

// IsStoreVariableIn reports whether the identifier starting at varStart
// is the variable bound by a generated store access, i.e. whether the
// store helper call opens immediately before it.
func IsStoreVariableIn(text string, varStart int) bool {
	if varStart < len(storeGetHelper) || varStart > len(text) {
		return false
	}
	return text[varStart-len(storeGetHelper):varStart] == storeGetHelper
}
