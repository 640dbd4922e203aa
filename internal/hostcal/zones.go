// SPDX-License-Identifier: MPL-2.0

package hostcal

import (
	_ "embed"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// zoneinfoDirs are the places a system IANA database is looked for, in
// order. The first directory that yields any names wins.
var zoneinfoDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
	"/etc/zoneinfo",
}

// zonesFallback is a snapshot of the IANA zone names, used when no system
// database is available (the embedded time/tzdata still resolves these).
//
//go:embed zones.txt
var zonesFallback string

var zoneSet struct {
	once  sync.Once
	names []string
}

// SupportedZones lists the timezone identifiers the host database knows, in
// sorted order. The result is computed once and cached.
func SupportedZones() []string {
	zoneSet.once.Do(func() {
		for _, dir := range zoneinfoDirs {
			if names := scanZoneinfo(dir); len(names) > 0 {
				zoneSet.names = names
				return
			}
		}
		zoneSet.names = parseZoneList(zonesFallback)
	})
	out := make([]string, len(zoneSet.names))
	copy(out, zoneSet.names)
	return out
}

// scanZoneinfo walks a zoneinfo directory collecting zone names. Names are
// the file paths relative to the root; metadata files and the posix/right
// variants are skipped. Zone names conventionally start with an upper-case
// letter, which also filters files like "localtime" and "zone.tab".
func scanZoneinfo(root string) []string {
	var names []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil //nolint:nilerr // unreadable entries are skipped, not fatal
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}
		name := filepath.ToSlash(rel)
		if d.IsDir() {
			if name == "posix" || name == "right" {
				return filepath.SkipDir
			}
			return nil
		}
		if name[0] < 'A' || name[0] > 'Z' {
			return nil
		}
		if strings.HasSuffix(name, ".tab") || strings.HasSuffix(name, ".zi") || strings.HasSuffix(name, ".list") {
			return nil
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil
	}
	sort.Strings(names)
	return names
}

// parseZoneList splits the embedded newline-separated zone list.
func parseZoneList(data string) []string {
	lines := strings.Split(strings.TrimSpace(data), "\n")
	names := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	sort.Strings(names)
	return names
}

// setZoneinfoDirsForTest points the scanner at fixture directories and
// resets the cached zone set; the returned func restores both.
func setZoneinfoDirsForTest(dirs []string) (restore func()) {
	prev := zoneinfoDirs
	zoneinfoDirs = dirs
	zoneSet = struct {
		once  sync.Once
		names []string
	}{}
	return func() {
		zoneinfoDirs = prev
		zoneSet = struct {
			once  sync.Once
			names []string
		}{}
	}
}
