// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tigris-launcher/tigris/lib/schema/manifest"
)

func sampleEntries() []Entry {
	return []Entry{
		{
			Extension: manifest.Extension{
				ID:   "weather",
				Name: "Weather",
				Settings: []manifest.Setting{
					{ID: "unit", Value: "c", SettingType: manifest.SettingSelect,
						SelectValues: []manifest.SelectValue{{ID: "c", Text: "Celsius"}}},
				},
			},
			Dir: "/home/ada/.local/share/tigris/extensions/weather",
		},
		{
			Extension: manifest.Extension{ID: "calculator", Name: "Calculator"},
			Dir:       "/home/ada/.local/share/tigris/extensions/calculator",
		},
	}
}

func TestExtensionsRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extensions.bin")
	entries := sampleEntries()
	if err := WriteExtensions(path, entries); err != nil {
		t.Fatalf("WriteExtensions: %v", err)
	}
	got, err := ReadExtensions(path)
	if err != nil {
		t.Fatalf("ReadExtensions: %v", err)
	}
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", got, entries)
	}
}

func TestMissingFileIsEmpty(t *testing.T) {
	directory := t.TempDir()
	extensions, err := ReadExtensions(filepath.Join(directory, "extensions.bin"))
	if err != nil || extensions == nil || len(extensions) != 0 {
		t.Errorf("ReadExtensions = %#v, %v", extensions, err)
	}
	apps, err := ReadApps(filepath.Join(directory, "apps.bin"))
	if err != nil || apps == nil || len(apps) != 0 {
		t.Errorf("ReadApps = %#v, %v", apps, err)
	}
}

func TestCorruptFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extensions.bin")
	if err := os.WriteFile(path, []byte("not zstd"), FileMode); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadExtensions(path); err == nil {
		t.Error("ReadExtensions of a corrupt file succeeded")
	}
}

func TestOversizedFileIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extensions.bin")
	bomb := zstdEncoder.EncodeAll(make([]byte, maxFileSize+1), nil)
	if err := os.WriteFile(path, bomb, FileMode); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadExtensions(path); err == nil {
		t.Error("ReadExtensions inflated a file past the size limit")
	}
}

func TestFind(t *testing.T) {
	entries := sampleEntries()
	entry, err := Find(entries, "calculator")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if entry.Executable() != "/home/ada/.local/share/tigris/extensions/calculator/extension" {
		t.Errorf("Executable() = %q", entry.Executable())
	}

	_, err = Find(entries, "ghost")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.ExtensionID != "ghost" {
		t.Errorf("Find(ghost) error = %v, want NotFoundError for ghost", err)
	}
}

func TestManifests(t *testing.T) {
	manifests := Manifests(sampleEntries())
	if len(manifests) != 2 || manifests[0].ID != "weather" || manifests[1].ID != "calculator" {
		t.Errorf("Manifests = %+v", manifests)
	}
}

func TestWriteAppsSortsByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.bin")
	apps := []App{
		{Path: "/apps/zed.desktop", Name: "Zed"},
		{Path: "/apps/firefox.desktop", Name: "Firefox", IconPath: "/icons/firefox.png"},
		{Path: "/apps/alacritty.desktop", Name: "Alacritty"},
	}
	if err := WriteApps(path, apps); err != nil {
		t.Fatalf("WriteApps: %v", err)
	}
	if apps[0].Name != "Zed" {
		t.Error("WriteApps reordered its argument")
	}
	got, err := ReadApps(path)
	if err != nil {
		t.Fatalf("ReadApps: %v", err)
	}
	var names []string
	for _, app := range got {
		names = append(names, app.Name)
	}
	if !reflect.DeepEqual(names, []string{"Alacritty", "Firefox", "Zed"}) {
		t.Errorf("names = %v", names)
	}
	if got[1].IconPath != "/icons/firefox.png" {
		t.Errorf("IconPath = %q", got[1].IconPath)
	}
}

func TestPushRecent(t *testing.T) {
	a := App{Path: "/a", Name: "A"}
	b := App{Path: "/b", Name: "B"}
	c := App{Path: "/c", Name: "C"}

	recent := PushRecent(nil, a)
	recent = PushRecent(recent, b)
	original := recent
	recent = PushRecent(recent, a)
	if !reflect.DeepEqual(recent, []App{a, b}) {
		t.Errorf("recent = %+v, want [A B]", recent)
	}
	if !reflect.DeepEqual(original, []App{b, a}) {
		t.Errorf("PushRecent modified its input: %+v", original)
	}
	recent = PushRecent(recent, c)
	if !reflect.DeepEqual(recent, []App{c, a, b}) {
		t.Errorf("recent = %+v, want [C A B]", recent)
	}

	for i := range 2 * RecentLimit {
		recent = PushRecent(recent, App{Path: string(rune('d' + i))})
	}
	if len(recent) != RecentLimit {
		t.Errorf("len(recent) = %d, want %d", len(recent), RecentLimit)
	}
}

func TestRecentRoundtripAndPrune(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent-apps.bin")
	recent := []App{{Path: "/gone", Name: "Gone"}, {Path: "/kept", Name: "Kept"}}
	if err := WriteRecentApps(path, recent); err != nil {
		t.Fatal(err)
	}
	got, err := ReadRecentApps(path)
	if err != nil {
		t.Fatal(err)
	}
	pruned := PruneRecent(got, []App{{Path: "/kept", Name: "Kept"}, {Path: "/other", Name: "Other"}})
	if !reflect.DeepEqual(pruned, []App{{Path: "/kept", Name: "Kept"}}) {
		t.Errorf("pruned = %+v", pruned)
	}
}
