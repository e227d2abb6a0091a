// Package configloader provides a typed runtime registry for configuration
// instances shared across packages (e.g. logging), without introducing
// cyclic dependencies or ad-hoc global variables.
//
// Typical usage:
//
//	type Config struct { ... }
//	func init() {
//	    configloader.RegisterConfig(&Config{...})
//	}
//	cfg := configloader.MustGetConfig[*Config]()
package configloader

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"
)

var registry sync.Map // key = reflect.Type of the config type, value = registered config instance

// RegisterConfig registers a config instance of type T for global access.
// It panics if a config of the same type is already registered.
func RegisterConfig[T any](cfg T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if _, exists := registry.Load(t); exists {
		panic(fmt.Sprintf("config already registered for type %v", t))
	}
	registry.Store(t, cfg)
}

// ReplaceConfig registers or overwrites the config instance of type T.
// Intended for reloading after the config file has been parsed; the typed
// default registered at init time stays in place until then.
func ReplaceConfig[T any](cfg T) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	registry.Store(t, cfg)
}

// MustGetConfig retrieves the registered config instance of type T.
// It panics if no config of type T has been registered.
func MustGetConfig[T any]() T {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if val, ok := registry.Load(t); ok {
		return val.(T)
	}
	panic(fmt.Sprintf("no config registered for type %v", t))
}

// TryGetConfig retrieves the registered config instance of type T.
// It returns (zero-value, false) if the config was not found.
func TryGetConfig[T any]() (T, bool) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if val, ok := registry.Load(t); ok {
		return val.(T), true
	}
	var zero T
	return zero, false
}

// ResolveConfigPath returns the best config path for a given filename.
// It checks, in order:
// 1. $K4RECO_CONFIG if set (absolute path)
// 2. ~/.k4reco/<file>
// 3. /etc/k4reco/<file>
func ResolveConfigPath(file string) (string, error) {
	if env := os.Getenv("K4RECO_CONFIG"); env != "" {
		return env, nil
	}
	if home, err := os.UserHomeDir(); err == nil {
		userPath := filepath.Join(home, ".k4reco", file)
		if _, err := os.Stat(userPath); err == nil {
			return userPath, nil
		}
	}
	systemPath := filepath.Join("/etc/k4reco", file)
	if _, err := os.Stat(systemPath); err == nil {
		return systemPath, nil
	}
	return "", fmt.Errorf("no config found for %s", file)
}
