package notify

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func TestWriterNotify(t *testing.T) {
	var buf bytes.Buffer
	NewWriter(&buf).Notify("Give me permission!")

	if got, want := buf.String(), "droidset: Give me permission!\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDesktopCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
	}{
		{"darwin", "osascript", []string{"-e", `display notification "hi" with title "droidset"`}},
		{"linux", "notify-send", []string{"droidset", "hi"}},
		{"windows", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			var gotName string
			var gotArgs []string
			d := &Desktop{goos: tt.goos, run: func(name string, args ...string) error {
				gotName, gotArgs = name, args
				return nil
			}}
			d.Notify("hi")

			if gotName != tt.wantName || !reflect.DeepEqual(gotArgs, tt.wantArgs) {
				t.Errorf("ran %q %q, want %q %q", gotName, gotArgs, tt.wantName, tt.wantArgs)
			}
		})
	}
}

func TestDesktopFailureIsSwallowed(t *testing.T) {
	d := &Desktop{goos: "linux", run: func(string, ...string) error {
		return errors.New("notify-send: not found")
	}}
	d.Notify("hi")
}

func TestMulti(t *testing.T) {
	var a, b bytes.Buffer
	Multi(NewWriter(&a), NewWriter(&b)).Notify("Found 3 keys")

	if a.String() != b.String() || a.String() != "droidset: Found 3 keys\n" {
		t.Errorf("outputs = %q, %q", a.String(), b.String())
	}
}
