package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dongho-jung/droidset/internal/settings"
)

func newKeysCmd(_ *globalFlags) *cobra.Command {
	var (
		namespace   string
		search      string
		showSetting bool
	)

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the known settings keys",
		Long: `List the known settings keys as "<Namespace> - <NAME>", sorted by
namespace and name. Keys present in both namespaces are listed once,
under Global.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := listKeys(settings.DefaultCatalog(), namespace, search)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, k := range keys {
				if showSetting {
					fmt.Fprintf(out, "%s\t%s/%s\n", k.Label(), k.Namespace.Table(), k.Setting)
				} else {
					fmt.Fprintln(out, k.Label())
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "", "Only list keys of this namespace (global or system)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Fuzzy filter, best match first")
	cmd.Flags().BoolVar(&showSetting, "settings", false, "Also print the stored setting name")
	return cmd
}

// listKeys returns the catalog keys matching namespace and search. Without
// a search the keys keep catalog order; with one, best matches come first.
func listKeys(cat *settings.Catalog, namespace, search string) ([]settings.Key, error) {
	var inNs map[string]bool
	if namespace != "" {
		ns, err := settings.ParseNamespace(namespace)
		if err != nil {
			return nil, err
		}
		keys := cat.Filter(ns)
		if search == "" {
			return keys, nil
		}
		inNs = make(map[string]bool, len(keys))
		for _, k := range keys {
			inNs[k.Name] = true
		}
	}

	var result []settings.Key
	for _, idx := range cat.Search(search) {
		k := cat.At(idx)
		if inNs != nil && !inNs[k.Name] {
			continue
		}
		result = append(result, k)
	}
	return result, nil
}

// resolveKey finds a key by constant name, by stored setting name, or as a
// raw "<namespace>/<setting>" reference for keys outside the catalog.
func resolveKey(cat *settings.Catalog, ref string) (settings.Key, error) {
	if nsPart, setting, ok := strings.Cut(ref, "/"); ok {
		ns, err := settings.ParseNamespace(nsPart)
		if err != nil {
			return settings.Key{}, err
		}
		if setting == "" {
			return settings.Key{}, fmt.Errorf("empty setting name in %q", ref)
		}
		return settings.Key{Namespace: ns, Name: strings.ToUpper(setting), Setting: setting}, nil
	}

	if k, ok := cat.Find(ref); ok {
		return k, nil
	}
	return settings.Key{}, fmt.Errorf("unknown key %q (use <namespace>/<setting> for keys outside the catalog)", ref)
}
