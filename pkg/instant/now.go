// SPDX-License-Identifier: MPL-2.0

package instant

import "time"

// NowFunc is the clock used by Now. Intentionally exported so that it can be
// overridden, for example by callers that need deterministic instants.
var NowFunc = time.Now

// Now returns the current instant.
func Now() Instant {
	return FromTime(NowFunc())
}
