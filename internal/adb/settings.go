package adb

import (
	"context"
	"strconv"
	"strings"

	"github.com/dongho-jung/droidset/internal/constants"
	"github.com/dongho-jung/droidset/internal/settings"
)

// SettingsProvider reads and writes settings with the device's `settings`
// shell tool.
type SettingsProvider struct {
	client Client
}

// NewSettingsProvider creates a provider that runs through client.
func NewSettingsProvider(client Client) *SettingsProvider {
	return &SettingsProvider{client: client}
}

func (p *SettingsProvider) GetString(ctx context.Context, ns settings.Namespace, setting string) (string, bool, error) {
	out, err := p.client.Shell(ctx, "settings", "get", ns.Table(), setting)
	if err != nil {
		return "", false, err
	}
	if constants.IsNullValue(out) {
		return "", false, nil
	}
	return trimLineEnd(out), true, nil
}

// trimLineEnd removes the line break `settings get` prints after the value.
// Older adb shells translate it to "\r\n".
func trimLineEnd(s string) string {
	if s, ok := strings.CutSuffix(s, "\n"); ok {
		return strings.TrimSuffix(s, "\r")
	}
	return s
}

func (p *SettingsProvider) put(ctx context.Context, ns settings.Namespace, setting, value string) error {
	_, err := p.client.Shell(ctx, "settings", "put", ns.Table(), setting, value)
	return err
}

func (p *SettingsProvider) PutString(ctx context.Context, ns settings.Namespace, setting, value string) error {
	return p.put(ctx, ns, setting, value)
}

func (p *SettingsProvider) PutInt(ctx context.Context, ns settings.Namespace, setting string, value int32) error {
	return p.put(ctx, ns, setting, strconv.FormatInt(int64(value), 10))
}

func (p *SettingsProvider) PutLong(ctx context.Context, ns settings.Namespace, setting string, value int64) error {
	return p.put(ctx, ns, setting, strconv.FormatInt(value, 10))
}

func (p *SettingsProvider) PutFloat(ctx context.Context, ns settings.Namespace, setting string, value float32) error {
	return p.put(ctx, ns, setting, settings.FormatFloat(value))
}
