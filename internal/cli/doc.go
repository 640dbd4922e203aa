// SPDX-License-Identifier: MPL-2.0

// Package cli contains all CLI commands for tempora.
//
// This package implements the Cobra command hierarchy for the tempora CLI:
// formatting commands (now, format), timezone queries (tz info,
// tz transitions), enumeration (zones, locales), arithmetic helpers (diff,
// rel), configuration management, and the rendered token reference.
package cli
