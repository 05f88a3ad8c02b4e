// Package config loads, normalizes, and validates the corpusdash
// configuration file.
//
// Configuration lives in a single TOML document covering the corpus
// registry, directory layout, downloader settings, preset storage, text
// tooling, and logging. Load applies defaults, expands paths, and rejects
// unusable values so the rest of the program can trust the returned Config.
package config
