// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tigris-launcher/tigris/lib/codec"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "settings.bin"), quietLogger())
}

func TestDefaults(t *testing.T) {
	settings := Default()
	if settings.Width != 900 || settings.Height != 660 {
		t.Errorf("geometry = %dx%d, want 900x660", settings.Width, settings.Height)
	}
	if settings.BoxBorderRadius != 16 || settings.BorderWidth != 3 ||
		settings.ResultBorderRadius != 32 || settings.IconBorderRadius != 8 {
		t.Errorf("radii = %d/%d/%d/%d", settings.BoxBorderRadius, settings.BorderWidth,
			settings.ResultBorderRadius, settings.IconBorderRadius)
	}
	if !settings.ShowRecentApps || settings.HideAppIcons || settings.AccentBorder || !settings.ShowShortcutHint {
		t.Errorf("toggles = %+v", settings)
	}
	if settings.ShortcutKey != "alt" || settings.Theme.Accent != "#FFE072" {
		t.Errorf("shortcut/accent = %q/%q", settings.ShortcutKey, settings.Theme.Accent)
	}
	engine, ok := settings.DefaultEngine()
	if !ok || engine.Keyword != "ds" {
		t.Errorf("DefaultEngine() = %+v, %v", engine, ok)
	}
}

func TestDefaultIsFresh(t *testing.T) {
	first := Default()
	first.SearchEngines[0].Name = "changed"
	first.SetExtensionValue("x", "y", "z")
	second := Default()
	if second.SearchEngines[0].Name != "DuckDuckGo" || len(second.ExtensionValues) != 0 {
		t.Error("Default() returned shared state")
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	store := newTestStore(t)
	settings := Default()
	settings.Width = 1200
	settings.AccentBorder = true
	settings.Theme.Background = "#000000"
	settings.DefaultSearchEngine = 2
	settings.Blacklist = []string{"/usr/share/applications/htop.desktop"}
	settings.SetExtensionValue("weather", "unit", "f")
	settings.SetExtensionValue("weather", "keyword", "w")

	if err := store.Save(settings); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded := store.Load()
	if !reflect.DeepEqual(loaded, settings) {
		t.Errorf("roundtrip mismatch:\n got %+v\nwant %+v", loaded, settings)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	store := newTestStore(t)
	if !reflect.DeepEqual(store.Load(), Default()) {
		t.Error("Load() of a missing file did not return defaults")
	}
	if _, err := store.Read(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Read() error = %v, want ErrNotExist", err)
	}
}

func TestLoadCorruptFileUsesDefaults(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte{0xff, 0x00, 0x13}, FileMode); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(store.Load(), Default()) {
		t.Error("Load() of a corrupt file did not return defaults")
	}
	if _, err := store.Read(); err == nil {
		t.Error("Read() of a corrupt file succeeded")
	}
}

func TestPartialDocumentKeepsDefaults(t *testing.T) {
	store := newTestStore(t)
	partial := map[string]any{
		"width": 640,
		"theme": map[string]any{"accent": "#00ff00"},
	}
	data, err := codec.Marshal(partial)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), data, FileMode); err != nil {
		t.Fatal(err)
	}
	settings, err := store.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if settings.Width != 640 || settings.Height != 660 {
		t.Errorf("geometry = %dx%d, want 640x660", settings.Width, settings.Height)
	}
	if settings.Theme.Accent != "#00ff00" || settings.Theme.Text != "#f2f2f2" {
		t.Errorf("theme = %+v", settings.Theme)
	}
	if len(settings.SearchEngines) != 4 {
		t.Errorf("search engines = %d, want defaults", len(settings.SearchEngines))
	}
}

func TestSaveFailureIsReturned(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing-dir", "settings.bin"), quietLogger())
	if err := store.Save(Default()); err == nil {
		t.Error("Save into a missing directory succeeded")
	}
}

func TestUpdate(t *testing.T) {
	store := newTestStore(t)
	updated, err := store.Update(func(s *Settings) error {
		s.SetExtensionValue("notes", "folder", "~/notes")
		return nil
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if value, _ := updated.ExtensionValue("notes", "folder"); value != "~/notes" {
		t.Errorf("returned settings value = %q", value)
	}
	if value, _ := store.Load().ExtensionValue("notes", "folder"); value != "~/notes" {
		t.Errorf("persisted value = %q", value)
	}

	sentinel := errors.New("abort")
	_, err = store.Update(func(s *Settings) error {
		s.SetExtensionValue("notes", "folder", "/tmp")
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("Update error = %v, want sentinel", err)
	}
	if value, _ := store.Load().ExtensionValue("notes", "folder"); value != "~/notes" {
		t.Errorf("aborted update was persisted: %q", value)
	}
}

func TestUpdateKeepsCorruptFile(t *testing.T) {
	store := newTestStore(t)
	corrupt := []byte{0xa1, 0x65, 0x77}
	if err := os.WriteFile(store.Path(), corrupt, FileMode); err != nil {
		t.Fatal(err)
	}
	called := false
	if _, err := store.Update(func(s *Settings) error {
		called = true
		return nil
	}); err == nil {
		t.Fatal("Update of a corrupt file succeeded")
	}
	if called {
		t.Error("mutate ran against defaults")
	}
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, corrupt) {
		t.Error("Update overwrote the corrupt file")
	}
}

func TestExtensionValueLookups(t *testing.T) {
	settings := Default()
	settings.SetExtensionValue("x", "flag", "true")
	settings.SetExtensionValue("x", "loud", "True")
	settings.SetExtensionValue("x", "count", "42")
	settings.SetExtensionValue("x", "negative", "-1")

	if value, err := settings.ExtensionBool("x", "flag"); err != nil || !value {
		t.Errorf("ExtensionBool(flag) = %v, %v", value, err)
	}
	if value, err := settings.ExtensionBool("x", "loud"); err != nil || value {
		t.Errorf("ExtensionBool(loud) = %v, %v; want false for \"True\"", value, err)
	}
	if value, err := settings.ExtensionUint("x", "count"); err != nil || value != 42 {
		t.Errorf("ExtensionUint(count) = %v, %v", value, err)
	}
	var parseErr *ParseError
	if _, err := settings.ExtensionUint("x", "negative"); !errors.As(err, &parseErr) {
		t.Errorf("ExtensionUint(negative) error = %v, want *ParseError", err)
	}

	var notFound *NotFoundError
	if _, err := settings.ExtensionValue("x", "ghost"); !errors.As(err, &notFound) {
		t.Fatalf("ExtensionValue(ghost) error = %v, want *NotFoundError", err)
	}
	if notFound.ExtensionID != "x" || notFound.SettingID != "ghost" {
		t.Errorf("NotFoundError = %+v", notFound)
	}
	if _, err := settings.ExtensionBool("y", "flag"); !errors.As(err, &notFound) {
		t.Errorf("ExtensionBool on unknown extension: error = %v", err)
	}
}

func TestSetExtensionValueReplaces(t *testing.T) {
	settings := Default()
	settings.SetExtensionValue("x", "s", "one")
	settings.SetExtensionValue("x", "s", "two")
	if len(settings.ExtensionValues) != 1 || settings.ExtensionValues[0].Value != "two" {
		t.Errorf("ExtensionValues = %+v", settings.ExtensionValues)
	}
	if got := settings.ExtensionValuesFor("x"); len(got) != 1 {
		t.Errorf("ExtensionValuesFor(x) = %+v", got)
	}
}

func TestEngineLookups(t *testing.T) {
	settings := Default()
	if engine, ok := settings.EngineByKeyword("gs"); !ok || engine.Name != "Google" {
		t.Errorf("EngineByKeyword(gs) = %+v, %v", engine, ok)
	}
	if _, ok := settings.EngineByKeyword("zz"); ok {
		t.Error("EngineByKeyword(zz) found an engine")
	}

	settings.DefaultSearchEngine = 3
	if engine, _ := settings.DefaultEngine(); engine.Keyword != "ss" {
		t.Errorf("DefaultEngine() = %+v, want Startpage", engine)
	}
	settings.DefaultSearchEngine = 99
	if engine, _ := settings.DefaultEngine(); engine.Keyword != "ds" {
		t.Errorf("DefaultEngine() with dangling id = %+v, want first engine", engine)
	}
	settings.SearchEngines = nil
	if _, ok := settings.DefaultEngine(); ok {
		t.Error("DefaultEngine() with no engines reported ok")
	}
}

func TestBlacklisted(t *testing.T) {
	settings := Default()
	settings.Blacklist = append(settings.Blacklist, "/apps/htop.desktop")
	if !settings.Blacklisted("/apps/htop.desktop") || settings.Blacklisted("/apps/vim.desktop") {
		t.Error("Blacklisted gave the wrong answer")
	}
}
