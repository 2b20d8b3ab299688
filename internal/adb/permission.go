package adb

import (
	"context"
	"fmt"
	"strings"

	"github.com/dongho-jung/droidset/internal/constants"
)

// PermissionChecker checks the WRITE_SETTINGS app-op of one package on the
// device.
type PermissionChecker struct {
	client Client
	pkg    string
}

// NewPermissionChecker creates a checker for pkg.
func NewPermissionChecker(client Client, pkg string) *PermissionChecker {
	return &PermissionChecker{client: client, pkg: pkg}
}

// Mode returns the app-op mode (allow, ignore, deny, default) of the
// package's WRITE_SETTINGS op.
func (c *PermissionChecker) Mode(ctx context.Context) (string, error) {
	out, err := c.client.Shell(ctx, "appops", "get", c.pkg, constants.OpWriteSettings)
	if err != nil {
		return "", fmt.Errorf("failed to query appops for %s: %w", c.pkg, err)
	}
	return parseAppOpMode(out, constants.OpWriteSettings), nil
}

// CanWrite reports whether WRITE_SETTINGS is allowed for the package.
func (c *PermissionChecker) CanWrite(ctx context.Context) (bool, error) {
	mode, err := c.Mode(ctx)
	if err != nil {
		return false, err
	}
	return mode == "allow", nil
}

// RequestGrant opens the "Modify system settings" screen for the package.
func (c *PermissionChecker) RequestGrant(ctx context.Context) error {
	_, err := c.client.Shell(ctx, "am", "start",
		"-a", constants.ActionManageWriteSettings,
		"-d", "package:"+c.pkg)
	return err
}

// SetMode changes the app-op directly (requires a debuggable shell).
func (c *PermissionChecker) SetMode(ctx context.Context, allow bool) error {
	mode := "deny"
	if allow {
		mode = "allow"
	}
	_, err := c.client.Shell(ctx, "appops", "set", c.pkg, constants.OpWriteSettings, mode)
	return err
}

// parseAppOpMode extracts the mode from `appops get` output such as
// "WRITE_SETTINGS: allow; time=+1d2h ago". Missing ops report "default".
func parseAppOpMode(out, op string) string {
	for _, line := range strings.Split(out, "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), op+":")
		if !ok {
			continue
		}
		mode, _, _ := strings.Cut(strings.TrimSpace(rest), ";")
		return strings.TrimSpace(mode)
	}
	return "default"
}
