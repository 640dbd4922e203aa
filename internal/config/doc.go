// SPDX-License-Identifier: MPL-2.0

// Package config loads tempora's CLI configuration: the default timezone,
// locale, format pattern and clock style applied when the corresponding
// flags are not given. Configuration lives in a TOML file under the
// platform config directory and can be overridden per-field through
// TEMPORA_* environment variables. A missing config file is not an error;
// defaults apply.
package config
