// SPDX-License-Identifier: MPL-2.0

// Command tempora is the CLI entry point.
package main

import "tempora/internal/cli"

func main() {
	cli.Execute()
}
