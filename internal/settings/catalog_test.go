package settings

import (
	"reflect"
	"testing"
)

func TestBuildCatalog_DeduplicatesPreferringFirstTable(t *testing.T) {
	global := Table{Namespace: NamespaceGlobal, Entries: []Entry{
		{"AIRPLANE_MODE_ON", "airplane_mode_on"},
		{"DEVICE_NAME", "device_name"},
	}}
	system := Table{Namespace: NamespaceSystem, Entries: []Entry{
		{"AIRPLANE_MODE_ON", "airplane_mode_on"},
		{"SCREEN_BRIGHTNESS", "screen_brightness"},
	}}

	cat := BuildCatalog(global, system)

	if cat.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", cat.Len())
	}
	count := 0
	for _, k := range cat.Keys() {
		if k.Name == "AIRPLANE_MODE_ON" {
			count++
			if k.Namespace != NamespaceGlobal {
				t.Errorf("AIRPLANE_MODE_ON namespace = %v, want Global", k.Namespace)
			}
		}
	}
	if count != 1 {
		t.Errorf("AIRPLANE_MODE_ON appears %d times, want 1", count)
	}
}

func TestBuildCatalog_Ordering(t *testing.T) {
	system := Table{Namespace: NamespaceSystem, Entries: []Entry{
		{"VOLUME_RING", "volume_ring"},
		{"ALARM_ALERT", "alarm_alert"},
	}}
	global := Table{Namespace: NamespaceGlobal, Entries: []Entry{
		{"WIFI_ON", "wifi_on"},
		{"BLUETOOTH_ON", "bluetooth_on"},
	}}

	// Argument order only decides precedence; output is sorted.
	cat := BuildCatalog(system, global)

	want := []string{
		"Global - BLUETOOTH_ON",
		"Global - WIFI_ON",
		"System - ALARM_ALERT",
		"System - VOLUME_RING",
	}
	if got := cat.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
}

func TestBuildCatalog_TwoKeysNoCollision(t *testing.T) {
	global := Table{Namespace: NamespaceGlobal, Entries: []Entry{
		{"DEVICE_NAME", "device_name"},
		{"AIRPLANE_MODE_ON", "airplane_mode_on"},
	}}

	cat := BuildCatalog(global, Table{Namespace: NamespaceSystem})

	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}
	if cat.At(0).Name != "AIRPLANE_MODE_ON" || cat.At(1).Name != "DEVICE_NAME" {
		t.Errorf("order = [%s %s], want [AIRPLANE_MODE_ON DEVICE_NAME]", cat.At(0).Name, cat.At(1).Name)
	}
}

func TestBuildCatalog_Empty(t *testing.T) {
	cat := BuildCatalog()
	if cat.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cat.Len())
	}
	if got := cat.Search(""); len(got) != 0 {
		t.Errorf("Search(\"\") = %v, want empty", got)
	}
}

func TestDefaultCatalog_Shape(t *testing.T) {
	first := DefaultCatalog()
	second := DefaultCatalog()

	if first.Len() == 0 {
		t.Fatal("default catalog is empty")
	}
	if !reflect.DeepEqual(first.Keys(), second.Keys()) {
		t.Error("repeated builds differ")
	}

	names := make(map[string]bool)
	keys := first.Keys()
	for i, k := range keys {
		if names[k.Name] {
			t.Errorf("duplicate name %s", k.Name)
		}
		names[k.Name] = true

		if i == 0 {
			continue
		}
		prev := keys[i-1]
		pl, kl := prev.Namespace.Label(), k.Namespace.Label()
		if pl > kl || (pl == kl && prev.Name >= k.Name) {
			t.Errorf("keys out of order at %d: %s before %s", i, prev.Label(), k.Label())
		}
	}

	// Declared in both tables; Global must win.
	for _, name := range []string{"AIRPLANE_MODE_ON", "WIFI_ON", "ADB_ENABLED"} {
		k, ok := first.Find(name)
		if !ok {
			t.Errorf("Find(%q) not found", name)
			continue
		}
		if k.Namespace != NamespaceGlobal {
			t.Errorf("%s namespace = %v, want Global", name, k.Namespace)
		}
	}
}

func TestCatalogFind(t *testing.T) {
	cat := DefaultCatalog()

	tests := []struct {
		query    string
		wantName string
		wantOK   bool
	}{
		{"SCREEN_BRIGHTNESS", "SCREEN_BRIGHTNESS", true},
		{"screen_brightness", "SCREEN_BRIGHTNESS", true},
		{"dtmf_tone", "DTMF_TONE_WHEN_DIALING", true},
		{"NOT_A_SETTING", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			k, ok := cat.Find(tt.query)
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.query, ok, tt.wantOK)
			}
			if k.Name != tt.wantName {
				t.Errorf("Find(%q) = %s, want %s", tt.query, k.Name, tt.wantName)
			}
		})
	}
}

func TestCatalogFilter(t *testing.T) {
	cat := DefaultCatalog()
	for _, k := range cat.Filter(NamespaceSystem) {
		if k.Namespace != NamespaceSystem {
			t.Errorf("Filter(System) returned %s", k.Label())
		}
		if k.Name == "AIRPLANE_MODE_ON" {
			t.Error("AIRPLANE_MODE_ON should resolve to Global, not System")
		}
	}
}

func TestCatalogSearch(t *testing.T) {
	cat := DefaultCatalog()

	all := cat.Search("")
	if len(all) != cat.Len() {
		t.Fatalf("Search(\"\") len = %d, want %d", len(all), cat.Len())
	}
	for i, idx := range all {
		if idx != i {
			t.Fatalf("Search(\"\")[%d] = %d, want %d", i, idx, i)
		}
	}

	hits := cat.Search("airplane")
	if len(hits) == 0 {
		t.Fatal("Search(\"airplane\") returned nothing")
	}
	found := false
	for _, idx := range hits {
		if cat.At(idx).Name == "AIRPLANE_MODE_ON" {
			found = true
		}
	}
	if !found {
		t.Error("Search(\"airplane\") did not include AIRPLANE_MODE_ON")
	}

	if got := cat.Search("zzzzqqqq"); len(got) != 0 {
		t.Errorf("Search(nonsense) = %v, want empty", got)
	}
}

func TestKeyLabelAndSame(t *testing.T) {
	a := Key{Namespace: NamespaceGlobal, Name: "WIFI_ON", Setting: "wifi_on"}
	b := Key{Namespace: NamespaceSystem, Name: "WIFI_ON", Setting: "wifi_on"}

	if a.Label() != "Global - WIFI_ON" {
		t.Errorf("Label() = %q", a.Label())
	}
	if !a.Same(b) {
		t.Error("keys with the same name should be the same entry")
	}
}

func TestParseNamespace(t *testing.T) {
	tests := []struct {
		input   string
		want    Namespace
		wantErr bool
	}{
		{"global", NamespaceGlobal, false},
		{"Global", NamespaceGlobal, false},
		{" SYSTEM ", NamespaceSystem, false},
		{"secure", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseNamespace(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseNamespace(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseNamespace(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	if NamespaceGlobal.Table() != "global" || NamespaceSystem.Table() != "system" {
		t.Errorf("Table() = %q/%q", NamespaceGlobal.Table(), NamespaceSystem.Table())
	}
}
