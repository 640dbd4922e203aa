// SPDX-License-Identifier: MPL-2.0

// Package hostcal is the host calendar/locale service behind tempora's civil
// conversions and localized rendering. It wraps the platform timezone
// database (with the embedded IANA fallback from time/tzdata) and the monday
// locale tables, and exposes exactly the capabilities the rest of the
// library consumes: civil field rendering under a named zone, localized
// month/weekday names, day-period markers, short timezone names, and
// enumeration of supported zone and locale identifiers.
//
// All functions are safe for concurrent use; the zone and locale sets are
// computed once and cached behind read locks.
package hostcal
