package adb

import (
	"context"
	"fmt"
	"strings"

	"github.com/dongho-jung/droidset/internal/constants"
)

// Device represents one line of `adb devices -l`.
type Device struct {
	Serial string
	State  string // device, offline, unauthorized, ...
	Model  string
}

// Online reports whether the device accepts commands.
func (d Device) Online() bool {
	return d.State == "device"
}

func (c *adbClient) Devices(ctx context.Context) ([]Device, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.ADBDeviceTimeout)
	defer cancel()

	// Device listing ignores -s, so bypass c.args.
	stdout, stderr, err := c.run(ctx, []string{"devices", "-l"})
	if err != nil {
		if msg := strings.TrimSpace(stderr); msg != "" {
			return nil, fmt.Errorf("%w: %s", err, msg)
		}
		return nil, err
	}
	return parseDevices(stdout), nil
}

// parseDevices parses `adb devices -l` output.
func parseDevices(out string) []Device {
	var devices []Device
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of devices") || strings.HasPrefix(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		d := Device{Serial: fields[0], State: fields[1]}
		for _, f := range fields[2:] {
			if model, ok := strings.CutPrefix(f, "model:"); ok {
				d.Model = model
			}
		}
		devices = append(devices, d)
	}
	return devices
}
