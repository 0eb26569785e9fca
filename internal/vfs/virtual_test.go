// Copyright (c) Svelte Language Tools contributors.
// SPDX-License-Identifier: MIT

package vfs

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVirtualHost_neverWrittenPath(t *testing.T) {
	vh := NewVirtualHost()

	if vh.FileExists("/never.svelte") {
		t.Fatal("expected FileExists to be false for never-written path")
	}
	if _, ok := vh.ReadFile("/never.svelte"); ok {
		t.Fatal("expected ReadFile to report not-found for never-written path")
	}
	if _, ok := vh.ModTime("/never.svelte"); ok {
		t.Fatal("expected no mod time for never-written path")
	}
	if vh.DirectoryExists("/never") {
		t.Fatal("expected DirectoryExists to be false on empty host")
	}
}

func TestVirtualHost_writeReadRoundTrip(t *testing.T) {
	vh := NewVirtualHost()

	content := "<script>let a = 1;</script>\n<p>{a}</p>\n"
	err := vh.WriteFile("/src/App.svelte", content)
	if err != nil {
		t.Fatal(err)
	}

	given, ok := vh.ReadFile("/src/App.svelte")
	if !ok {
		t.Fatal("expected file to exist after write")
	}
	if diff := cmp.Diff(content, given); diff != "" {
		t.Fatalf("unexpected content: %s", diff)
	}

	if _, ok := vh.ModTime("/src/App.svelte"); !ok {
		t.Fatal("expected mod time to be stamped on write")
	}
}

func TestVirtualHost_pathNormalization(t *testing.T) {
	vh := NewVirtualHost()
	vh.SetWorkingDirectory("/proj")

	err := vh.WriteFile("src/App.svelte", "x")
	if err != nil {
		t.Fatal(err)
	}

	if !vh.FileExists("/proj/src/App.svelte") {
		t.Fatal("expected relative path to resolve against working directory")
	}
	if !vh.FileExists("/proj/src/../src/App.svelte") {
		t.Fatal("expected path to be cleaned")
	}
}

func TestVirtualHost_caseInsensitive(t *testing.T) {
	vh := NewVirtualHost()
	vh.SetCaseSensitive(false)

	err := vh.WriteFile("/Src/App.SVELTE", "x")
	if err != nil {
		t.Fatal(err)
	}

	if !vh.FileExists("/src/app.svelte") {
		t.Fatal("expected case-folded lookup to succeed")
	}

	vh2 := NewVirtualHost()
	if err := vh2.WriteFile("/Src/App.svelte", "x"); err != nil {
		t.Fatal(err)
	}
	if vh2.FileExists("/src/app.svelte") {
		t.Fatal("expected case-sensitive host to distinguish paths")
	}
}

func TestVirtualHost_notificationKinds(t *testing.T) {
	vh := NewVirtualHost()

	var events []Event
	vh.WatchFile("/a.svelte", func(ev Event) {
		events = append(events, ev)
	})

	if err := vh.WriteFile("/a.svelte", "one"); err != nil {
		t.Fatal(err)
	}
	if err := vh.WriteFile("/a.svelte", "two"); err != nil {
		t.Fatal(err)
	}
	if err := vh.DeleteFile("/a.svelte"); err != nil {
		t.Fatal(err)
	}
	// deleting a non-existent path schedules nothing
	if err := vh.DeleteFile("/a.svelte"); err != nil {
		t.Fatal(err)
	}

	if len(events) != 0 {
		t.Fatalf("expected no synchronous delivery, given: %#v", events)
	}

	vh.Flush()

	expected := []Event{
		{Path: "/a.svelte", Kind: EventCreated},
		{Path: "/a.svelte", Kind: EventChanged},
		{Path: "/a.svelte", Kind: EventDeleted},
	}
	if diff := cmp.Diff(expected, events); diff != "" {
		t.Fatalf("unexpected events: %s", diff)
	}
}

func TestVirtualHost_recreateAfterDelete(t *testing.T) {
	vh := NewVirtualHost()

	var kinds []EventKind
	vh.WatchFile("/a.svelte", func(ev Event) {
		kinds = append(kinds, ev.Kind)
	})

	vh.WriteFile("/a.svelte", "one")
	vh.DeleteFile("/a.svelte")
	vh.WriteFile("/a.svelte", "two")
	vh.Flush()

	expected := []EventKind{EventCreated, EventDeleted, EventCreated}
	if diff := cmp.Diff(expected, kinds); diff != "" {
		t.Fatalf("unexpected kinds: %s", diff)
	}
}

func TestVirtualHost_disposeBeforeFlushSuppressesDelivery(t *testing.T) {
	vh := NewVirtualHost()

	fired := 0
	watch := vh.WatchFile("/a.svelte", func(ev Event) {
		fired++
	})

	vh.WriteFile("/a.svelte", "one")
	watch.Dispose()
	vh.Flush()

	if fired != 0 {
		t.Fatalf("expected no delivery after disposal, callback ran %d time(s)", fired)
	}
	if vh.PendingEvents() != 0 {
		t.Fatalf("expected pending events to be cancelled, %d left", vh.PendingEvents())
	}
}

func TestVirtualHost_disposeAfterFlush(t *testing.T) {
	vh := NewVirtualHost()

	var events []Event
	watch := vh.WatchFile("/a.svelte", func(ev Event) {
		events = append(events, ev)
	})

	vh.WriteFile("/a.svelte", "one")
	vh.Flush()
	watch.Dispose()
	vh.WriteFile("/a.svelte", "two")
	vh.Flush()

	expected := []Event{{Path: "/a.svelte", Kind: EventCreated}}
	if diff := cmp.Diff(expected, events); diff != "" {
		t.Fatalf("expected only the pre-disposal event: %s", diff)
	}
}

func TestVirtualHost_disposeRemovesExactRegistration(t *testing.T) {
	vh := NewVirtualHost()

	firstFired := 0
	secondFired := 0
	first := vh.WatchFile("/a.svelte", func(ev Event) { firstFired++ })
	vh.WatchFile("/a.svelte", func(ev Event) { secondFired++ })

	first.Dispose()
	// disposal of one registration cancels that path's pending queue
	// but must not unregister the surviving watcher
	vh.WriteFile("/a.svelte", "one")
	vh.Flush()

	if firstFired != 0 {
		t.Fatalf("disposed watcher fired %d time(s)", firstFired)
	}
	if secondFired != 1 {
		t.Fatalf("expected surviving watcher to fire once, fired %d time(s)", secondFired)
	}
}

func TestVirtualHost_disposeCancelsOnlyThatPath(t *testing.T) {
	vh := NewVirtualHost()

	aFired := 0
	bFired := 0
	aWatch := vh.WatchFile("/a.svelte", func(ev Event) { aFired++ })
	vh.WatchFile("/b.svelte", func(ev Event) { bFired++ })

	vh.WriteFile("/a.svelte", "one")
	vh.WriteFile("/b.svelte", "one")
	aWatch.Dispose()
	vh.Flush()

	if aFired != 0 {
		t.Fatalf("expected no delivery for disposed path, given: %d", aFired)
	}
	if bFired != 1 {
		t.Fatalf("expected delivery for unrelated path, given: %d", bFired)
	}
}

func TestVirtualHost_watcherIsExactPath(t *testing.T) {
	vh := NewVirtualHost()

	fired := 0
	vh.WatchFile("/src/a.svelte", func(ev Event) { fired++ })

	vh.WriteFile("/src/b.svelte", "unrelated")
	vh.WriteFile("/src/a.svelte.ts", "virtual counterpart")
	vh.Flush()

	if fired != 0 {
		t.Fatalf("expected no delivery for other paths, given: %d", fired)
	}
}

func TestVirtualHost_directoryExists(t *testing.T) {
	vh := NewVirtualHost()
	vh.WriteFile("/src/routes/index.svelte", "x")

	testCases := []struct {
		Path     string
		Expected bool
	}{
		{"/src", true},
		{"/src/routes", true},
		{"/src/routes/index.svelte", true}, // prefix semantics, by contract
		{"/lib", false},
		{"/src/components", false},
	}

	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d-%s", i, tc.Path), func(t *testing.T) {
			given := vh.DirectoryExists(tc.Path)
			if given != tc.Expected {
				t.Fatalf("expected %t for %q, given: %t", tc.Expected, tc.Path, given)
			}
		})
	}
}

func TestVirtualHost_directoryExistsAfterDelete(t *testing.T) {
	vh := NewVirtualHost()
	vh.WriteFile("/src/only.svelte", "x")
	vh.DeleteFile("/src/only.svelte")

	if vh.DirectoryExists("/src") {
		t.Fatal("expected directory to vanish with its last file")
	}
}

func TestVirtualHost_modTimeSurvivesDelete(t *testing.T) {
	vh := NewVirtualHost()
	vh.WriteFile("/a.svelte", "x")

	before, ok := vh.ModTime("/a.svelte")
	if !ok {
		t.Fatal("expected mod time after write")
	}

	vh.DeleteFile("/a.svelte")

	after, ok := vh.ModTime("/a.svelte")
	if !ok {
		t.Fatal("expected mod time to survive deletion")
	}
	if !after.Equal(before) {
		t.Fatalf("expected unchanged mod time, before: %s, after: %s", before, after)
	}
	if vh.FileExists("/a.svelte") {
		t.Fatal("expected file to be gone")
	}
}

func TestVirtualHost_flushDeliversCascadedEvents(t *testing.T) {
	vh := NewVirtualHost()

	var events []Event
	vh.WatchFile("/derived.svelte.ts", func(ev Event) {
		events = append(events, ev)
	})
	vh.WatchFile("/a.svelte", func(ev Event) {
		events = append(events, ev)
		// regenerating the virtual counterpart schedules another event
		vh.WriteFile("/derived.svelte.ts", "generated")
	})

	vh.WriteFile("/a.svelte", "x")
	vh.Flush()

	expected := []Event{
		{Path: "/a.svelte", Kind: EventCreated},
		{Path: "/derived.svelte.ts", Kind: EventCreated},
	}
	if diff := cmp.Diff(expected, events); diff != "" {
		t.Fatalf("unexpected events: %s", diff)
	}
}

func TestVirtualHost_multipleIndependentHosts(t *testing.T) {
	first := NewVirtualHost()
	second := NewVirtualHost()

	first.WriteFile("/a.svelte", "first")

	if second.FileExists("/a.svelte") {
		t.Fatal("expected hosts to own independent state")
	}
}
