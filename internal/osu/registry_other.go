//go:build !windows

package osu

func queryDefaultIcon() (string, error) {
	return "", errRegistryUnsupported
}
