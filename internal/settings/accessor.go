package settings

import (
	"context"

	"github.com/dongho-jung/droidset/internal/logging"
)

// Provider persists and retrieves settings values. Implementations map
// each call to the platform accessor of the same name.
type Provider interface {
	// GetString returns the stored value and whether the key is set.
	GetString(ctx context.Context, ns Namespace, setting string) (string, bool, error)

	PutString(ctx context.Context, ns Namespace, setting, value string) error
	PutInt(ctx context.Context, ns Namespace, setting string, value int32) error
	PutLong(ctx context.Context, ns Namespace, setting string, value int64) error
	PutFloat(ctx context.Context, ns Namespace, setting string, value float32) error
}

// Accessor performs typed reads and writes of catalog keys.
type Accessor struct {
	provider Provider
}

// NewAccessor creates an accessor backed by p.
func NewAccessor(p Provider) *Accessor {
	return &Accessor{provider: p}
}

// Read returns the stored string value of key. Provider failures are
// logged and reported as no value.
func (a *Accessor) Read(ctx context.Context, key Key) (string, bool) {
	value, ok, err := a.provider.GetString(ctx, key.Namespace, key.Setting)
	if err != nil {
		logging.Debug("get operation failed for %s: %v", key.Label(), err)
		return "", false
	}
	logging.Trace("get %s -> %q (set=%v)", key.Label(), value, ok)
	return value, ok
}

// Write coerces raw to typ and stores it under key. It returns a
// *ParseError when coercion fails, in which case nothing is written, and a
// *ProviderError when the provider rejects the write.
func (a *Accessor) Write(ctx context.Context, key Key, typ ValueType, raw string) error {
	value, err := typ.Parse(raw)
	if err != nil {
		logging.Error("set operation failed for %s: %v", key.Label(), err)
		return err
	}

	ns, setting := key.Namespace, key.Setting
	timer := logging.StartTimer("put " + key.Label())
	switch value.Type() {
	case TypeInteger:
		err = a.provider.PutInt(ctx, ns, setting, value.Int())
	case TypeString:
		err = a.provider.PutString(ctx, ns, setting, value.String())
	case TypeLong:
		err = a.provider.PutLong(ctx, ns, setting, value.Long())
	case TypeFloat:
		err = a.provider.PutFloat(ctx, ns, setting, value.Float())
	}
	if err != nil {
		perr := &ProviderError{Op: "put", Key: key, Err: err}
		timer.StopWithResult(false, err.Error())
		return perr
	}

	timer.StopWithResult(true, typ.String()+" "+value.String())
	return nil
}
