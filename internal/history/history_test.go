package history

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/dongho-jung/droidset/internal/settings"
)

var (
	wifi    = settings.Key{Namespace: settings.NamespaceGlobal, Name: "WIFI_ON", Setting: "wifi_on"}
	scale   = settings.Key{Namespace: settings.NamespaceSystem, Name: "FONT_SCALE", Setting: "font_scale"}
	sysWifi = settings.Key{Namespace: settings.NamespaceSystem, Name: "WIFI_ON", Setting: "wifi_on"}
)

// newTestService returns a service whose clock advances one second per call.
func newTestService(t *testing.T) *Service {
	t.Helper()
	s := New(t.TempDir())
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	s.now = func() time.Time {
		n++
		return base.Add(time.Duration(n) * time.Second)
	}
	return s
}

func TestRecordAndValues(t *testing.T) {
	s := newTestService(t)

	for _, v := range []string{"1", "0", "1"} {
		if err := s.Record(wifi, settings.TypeInteger, v); err != nil {
			t.Fatalf("Record(%q): %v", v, err)
		}
	}
	if err := s.Record(scale, settings.TypeFloat, "1.15"); err != nil {
		t.Fatal(err)
	}

	got, err := s.Values(wifi)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"1", "0"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values(wifi) = %v, want %v", got, want)
	}

	entries, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("Load() = %d entries, want 3", len(entries))
	}
	if entries[0].Key != "system/font_scale" || entries[0].Type != "Float" {
		t.Errorf("entries[0] = %+v", entries[0])
	}
}

func TestValuesSeparatesNamespaces(t *testing.T) {
	s := newTestService(t)
	if err := s.Record(wifi, settings.TypeInteger, "1"); err != nil {
		t.Fatal(err)
	}

	got, err := s.Values(sysWifi)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Values(system/wifi_on) = %v, want none", got)
	}
}

func TestValuesLimit(t *testing.T) {
	s := newTestService(t)
	for i := 0; i < MaxPerKey+5; i++ {
		if err := s.Record(wifi, settings.TypeInteger, string(rune('a'+i))); err != nil {
			t.Fatal(err)
		}
	}

	got, err := s.Values(wifi)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != MaxPerKey {
		t.Fatalf("len(Values) = %d, want %d", len(got), MaxPerKey)
	}
	if got[0] != string(rune('a'+MaxPerKey+4)) {
		t.Errorf("most recent = %q", got[0])
	}
}

func TestMaxEntries(t *testing.T) {
	s := newTestService(t)
	for i := 0; i < MaxEntries+10; i++ {
		key := settings.Key{Namespace: settings.NamespaceGlobal, Name: "K", Setting: "k"}
		if err := s.Record(key, settings.TypeString, time.Duration(i).String()); err != nil {
			t.Fatal(err)
		}
	}

	entries, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != MaxEntries {
		t.Errorf("len(entries) = %d, want %d", len(entries), MaxEntries)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := New(t.TempDir())
	entries, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Load() = %v, want empty", entries)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	s := newTestService(t)
	if err := os.WriteFile(s.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("Load() = %v, want empty", entries)
	}
	if _, err := os.Stat(s.Path() + ".corrupt"); err != nil {
		t.Errorf("corrupt file not moved aside: %v", err)
	}

	if err := s.Record(wifi, settings.TypeInteger, "1"); err != nil {
		t.Fatal(err)
	}
	if got, _ := s.Values(wifi); !reflect.DeepEqual(got, []string{"1"}) {
		t.Errorf("Values after recovery = %v", got)
	}
}

func TestRecordKeepsUnreadableHistory(t *testing.T) {
	s := newTestService(t)

	// A directory in place of the file makes reads fail with something
	// other than "not exist".
	s.dir = filepath.Join(t.TempDir(), "home")
	if err := os.MkdirAll(filepath.Join(s.dir, FileName), 0755); err != nil {
		t.Fatal(err)
	}
	if err := s.Record(scale, settings.TypeFloat, "1.15"); err == nil {
		t.Fatal("Record succeeded although the history could not be read")
	}
	if info, err := os.Stat(s.Path()); err != nil || !info.IsDir() {
		t.Errorf("history path replaced: %v", err)
	}
}
