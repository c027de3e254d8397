// Package config provides the configuration system for Helios.
//
// Configuration is resolved from layers, higher layers overriding lower:
//
//	┌─────────────────────────────┐
//	│  4. Command line flags      │  ← Highest priority
//	├─────────────────────────────┤
//	│  3. Environment (HELIOS_*)  │
//	├─────────────────────────────┤
//	│  2. Config file             │  ← TOML or YAML by extension
//	├─────────────────────────────┤
//	│  1. Built-in defaults       │  ← Lowest priority
//	└─────────────────────────────┘
//
// # Sub-packages
//
//   - loader: file (TOML, YAML) and environment sources as nested maps
//   - watcher: fsnotify based file watching for live reload
//
// # Usage
//
//	l := config.NewLoader(
//	    config.WithFile(path),
//	    config.WithOverrides(map[string]any{"logging": map[string]any{"level": "debug"}}),
//	)
//	cfg, err := l.Load()
//
// Settings use dotted snake_case paths such as "editor.tab_width" in
// files, environment variables (HELIOS_EDITOR_TAB_WIDTH) and overrides.
//
// # Live reload
//
// A Reloader watches the loader's file and delivers each successfully
// reloaded Config on its Updates channel:
//
//	r, err := config.NewReloader(l)
//	...
//	case cfg := <-r.Updates():
package config
