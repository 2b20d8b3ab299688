package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/dongho-jung/droidset/internal/constants"
)

type fakeChecker struct {
	granted    bool
	checkErr   error
	requestErr error
	requests   int
}

func (c *fakeChecker) CanWrite(context.Context) (bool, error) {
	return c.granted, c.checkErr
}

func (c *fakeChecker) RequestGrant(context.Context) error {
	c.requests++
	return c.requestErr
}

func TestEnsureGranted(t *testing.T) {
	tests := []struct {
		name         string
		checker      *fakeChecker
		want         bool
		wantRequests int
		wantNotified bool
	}{
		{"granted", &fakeChecker{granted: true}, true, 0, false},
		{"not granted", &fakeChecker{}, false, 1, true},
		{"check fails", &fakeChecker{granted: true, checkErr: errors.New("no device")}, false, 1, true},
		{"request fails", &fakeChecker{requestErr: errors.New("am failed")}, false, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var messages []string
			g := New(tt.checker, NotifierFunc(func(msg string) {
				messages = append(messages, msg)
			}))

			got := g.EnsureGranted(context.Background())
			if got != tt.want {
				t.Errorf("EnsureGranted() = %v, want %v", got, tt.want)
			}
			if tt.checker.requests != tt.wantRequests {
				t.Errorf("RequestGrant calls = %d, want %d", tt.checker.requests, tt.wantRequests)
			}
			if tt.wantNotified {
				if len(messages) != 1 || messages[0] != constants.MsgGivePermission {
					t.Errorf("notifications = %v, want [%q]", messages, constants.MsgGivePermission)
				}
			} else if len(messages) != 0 {
				t.Errorf("notifications = %v, want none", messages)
			}
		})
	}
}

func TestEnsureGrantedNoRetry(t *testing.T) {
	c := &fakeChecker{}
	g := New(c, nil)

	g.EnsureGranted(context.Background())
	g.EnsureGranted(context.Background())
	if c.requests != 2 {
		t.Errorf("RequestGrant calls = %d, want one per activation (2)", c.requests)
	}

	c.granted = true
	if !g.EnsureGranted(context.Background()) {
		t.Error("EnsureGranted() = false after grant")
	}
	if c.requests != 2 {
		t.Errorf("granted activation should not request, calls = %d", c.requests)
	}
}
