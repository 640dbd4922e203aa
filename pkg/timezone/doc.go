// SPDX-License-Identifier: MPL-2.0

// Package timezone reports timezone metadata for instants: the UTC offset,
// whether daylight-saving time is in effect, the short zone name, and the
// calendar boundaries where the DST flag flips within a year.
//
// No transition database is consulted. Offsets are derived by differencing
// civil renderings of the same instant, and DST is inferred by comparing the
// offset at the query instant against the offsets observed on January 1 and
// July 1 of the same year, declaring DST when the current offset equals the
// larger of the two. The heuristic assumes one DST period per year with two
// stable offsets; zones with irregular rules or historical mid-year offset
// changes may be misclassified (see the package tests for the boundaries the
// heuristic is known to honor).
//
// Every function recovers locally from unknown zones and invalid instants:
// offsets fall back to 0, the DST flag to false, abbreviations to "UTC" and
// transition windows to absent. Nothing in this package panics or returns an
// error.
package timezone
