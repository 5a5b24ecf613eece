// Copyright (c) 2025 Michael D Henderson. All rights reserved.

// Package config implements the JSON-backed compiler configuration.
package config
