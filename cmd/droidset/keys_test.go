package main

import (
	"strings"
	"testing"

	"github.com/dongho-jung/droidset/internal/settings"
)

func TestListKeys(t *testing.T) {
	cat := settings.DefaultCatalog()

	all, err := listKeys(cat, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != cat.Len() {
		t.Errorf("listKeys() returned %d keys, want %d", len(all), cat.Len())
	}

	system, err := listKeys(cat, "system", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(system) == 0 {
		t.Fatal("no system keys")
	}
	for _, k := range system {
		if k.Namespace != settings.NamespaceSystem {
			t.Errorf("key %s in system listing", k.Label())
		}
	}

	found, err := listKeys(cat, "", "airplane")
	if err != nil {
		t.Fatal(err)
	}
	if len(found) == 0 || !strings.HasPrefix(found[0].Name, "AIRPLANE_MODE_") {
		t.Errorf("search airplane = %v", found)
	}

	scale, err := listKeys(cat, "system", "font_scale")
	if err != nil {
		t.Fatal(err)
	}
	if len(scale) == 0 || scale[0].Name != "FONT_SCALE" {
		t.Errorf("system search font_scale = %v", scale)
	}
	for _, k := range scale {
		if k.Namespace != settings.NamespaceSystem {
			t.Errorf("key %s in system search", k.Label())
		}
	}
	if global, _ := listKeys(cat, "global", "font_scale"); len(global) != 0 && global[0].Name == "FONT_SCALE" {
		t.Errorf("global search returned system key FONT_SCALE")
	}

	if _, err := listKeys(cat, "secure", ""); err == nil {
		t.Error("unknown namespace accepted")
	}
}

func TestResolveKey(t *testing.T) {
	cat := settings.DefaultCatalog()

	tests := []struct {
		ref     string
		wantNs  settings.Namespace
		wantSet string
		wantErr string
	}{
		{ref: "AIRPLANE_MODE_ON", wantNs: settings.NamespaceGlobal, wantSet: "airplane_mode_on"},
		{ref: "font_scale", wantNs: settings.NamespaceSystem, wantSet: "font_scale"},
		{ref: "system/my_custom_key", wantNs: settings.NamespaceSystem, wantSet: "my_custom_key"},
		{ref: "Global/wifi_on", wantNs: settings.NamespaceGlobal, wantSet: "wifi_on"},
		{ref: "NOT_A_KEY", wantErr: "unknown key"},
		{ref: "secure/x", wantErr: "namespace"},
		{ref: "global/", wantErr: "empty setting"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			k, err := resolveKey(cat, tt.ref)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("resolveKey(%q) error = %v, want %q", tt.ref, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveKey(%q) error = %v", tt.ref, err)
			}
			if k.Namespace != tt.wantNs || k.Setting != tt.wantSet {
				t.Errorf("resolveKey(%q) = %+v", tt.ref, k)
			}
		})
	}
}
