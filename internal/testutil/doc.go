// SPDX-License-Identifier: MPL-2.0

// Package testutil provides test helpers shared across tempora's packages,
// chiefly a controllable clock for pinning "now" in deterministic tests.
package testutil
