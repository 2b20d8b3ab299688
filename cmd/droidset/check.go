package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dongho-jung/droidset/internal/adb"
	"github.com/dongho-jung/droidset/internal/app"
	"github.com/dongho-jung/droidset/internal/config"
	"github.com/dongho-jung/droidset/internal/constants"
	"github.com/dongho-jung/droidset/internal/settings"
)

func newCheckCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check dependencies and device access",
		Long:  "Verify that the configured provider is reachable and report the write-settings permission.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(flags, "check")
			if err != nil {
				return err
			}
			defer s.Close()
			return runCheck(cmd.Context(), cmd.OutOrStdout(), s.app.Config, s.backend)
		},
	}
}

// checkResult holds the result of a single check.
type checkResult struct {
	name     string
	ok       bool
	message  string
	required bool
}

// runCheck runs all checks for the configured provider and prints the
// results.
func runCheck(ctx context.Context, out io.Writer, cfg *config.Config, b *app.Backend) error {
	fmt.Fprintln(out, "droidset check")
	fmt.Fprintln(out, "==============")
	fmt.Fprintln(out)

	var results []checkResult
	if b.ADB != nil {
		results = append(results, checkADB(ctx, b.ADB))
		if results[0].ok {
			results = append(results, checkDevice(ctx, b.ADB))
		}
	} else {
		results = append(results, checkStore(ctx, b))
	}
	results = append(results,
		checkCatalog(),
		checkPermission(ctx, cfg.Package, b.Grants),
	)

	hasErrors := false
	for _, r := range results {
		printResult(out, r)
		if r.required && !r.ok {
			hasErrors = true
		}
	}

	fmt.Fprintln(out)
	if hasErrors {
		fmt.Fprintln(out, "❌ Some required checks failed.")
		return errors.New("required checks failed")
	}
	fmt.Fprintln(out, "✅ Ready.")
	return nil
}

// printResult prints a single check result with appropriate formatting.
func printResult(out io.Writer, r checkResult) {
	var icon string
	if r.ok {
		icon = "✅"
	} else if r.required {
		icon = "❌"
	} else {
		icon = "⚠️ "
	}

	optionalSuffix := ""
	if !r.required && !r.ok {
		optionalSuffix = " (optional)"
	}

	fmt.Fprintf(out, "%s %s: %s%s\n", icon, r.name, r.message, optionalSuffix)
}

// checkADB verifies adb is installed and returns its version.
func checkADB(ctx context.Context, client adb.Client) checkResult {
	result := checkResult{name: "adb", required: true}

	version, err := client.Version(ctx)
	if err != nil {
		result.message = "not installed - install Android platform-tools"
		if !errors.Is(err, adb.ErrNotInstalled) {
			result.message = err.Error()
		}
		return result
	}

	result.ok = true
	result.message = fmt.Sprintf("installed (%s)", version)
	return result
}

// checkDevice verifies a device is attached and online.
func checkDevice(ctx context.Context, client adb.Client) checkResult {
	result := checkResult{name: "device", required: true}

	devices, err := client.Devices(ctx)
	if err != nil {
		result.message = err.Error()
		return result
	}

	var online []string
	for _, d := range devices {
		if serial := client.Serial(); serial != "" && d.Serial != serial {
			continue
		}
		if d.Online() {
			label := d.Serial
			if d.Model != "" {
				label += " (" + d.Model + ")"
			}
			online = append(online, label)
		}
	}

	switch {
	case len(online) == 0 && client.Serial() != "":
		result.message = fmt.Sprintf("%s not attached or offline", client.Serial())
	case len(online) == 0:
		result.message = "no device attached"
	case len(online) > 1 && client.Serial() == "":
		result.message = fmt.Sprintf("%d devices attached, set --serial: %s", len(online), strings.Join(online, ", "))
	default:
		result.ok = true
		result.message = online[0]
	}
	return result
}

// checkStore verifies the local store answers queries.
func checkStore(ctx context.Context, b *app.Backend) checkResult {
	result := checkResult{name: "local store", required: true}

	versions, err := b.Local.AppliedMigrations()
	if err != nil {
		result.message = err.Error()
		return result
	}
	var stored int
	for _, ns := range settings.Namespaces() {
		names, err := b.Local.Keys(ctx, ns)
		if err != nil {
			result.message = err.Error()
			return result
		}
		stored += len(names)
	}

	latest := 0
	if n := len(versions); n > 0 {
		latest = versions[n-1]
	}
	result.ok = true
	result.message = fmt.Sprintf("%s (schema v%d, %d values)", b.Name, latest, stored)
	return result
}

func checkCatalog() checkResult {
	n := settings.DefaultCatalog().Len()
	return checkResult{
		name:     "catalog",
		ok:       n > 0,
		message:  fmt.Sprintf(constants.MsgFoundKeys, n),
		required: true,
	}
}

// checkPermission reports the write-settings mode. Reads work without it,
// so it is optional.
func checkPermission(ctx context.Context, pkg string, grants app.Grants) checkResult {
	result := checkResult{name: constants.OpWriteSettings}

	mode, err := grants.Mode(ctx)
	if err != nil {
		result.message = err.Error()
		return result
	}
	result.ok = mode == "allow"
	result.message = fmt.Sprintf("%s for %s", mode, pkg)
	if !result.ok {
		result.message += fmt.Sprintf(" - run `%s grant`", constants.AppName)
	}
	return result
}
