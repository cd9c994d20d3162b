//go:build windows

package osu

import "golang.org/x/sys/windows/registry"

// defaultIconKey is registered by the osu! installer for .osz2 archives.
const defaultIconKey = `osustable.File.osz2\DefaultIcon`

func queryDefaultIcon() (string, error) {
	key, err := registry.OpenKey(registry.CLASSES_ROOT, defaultIconKey, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()

	value, _, err := key.GetStringValue("")
	return value, err
}
