package ingest

import (
	"errors"
	"path"
	"sort"
	"strings"
)

// SessionMeta is the decomposition of a session directory name following the
// <Name>_<ID>_<Date> convention. Values are kept exactly as parsed.
type SessionMeta struct {
	PatientName string
	PatientID   string
	CaptureDate string
}

// ErrNoSessionDirectory is returned when no directory inside the archive
// follows the naming convention. The archive cannot be processed.
var ErrNoSessionDirectory = errors.New("no directory matching the Name_ID_Date convention")

// FindSessionDir searches the archive's member paths for the one directory
// whose final segment encodes patient name, identifier, and capture date.
//
// Every directory implied by the member paths is a candidate, not just the
// top-level folders: archives arrive with arbitrary wrapper directories around
// the session folder. Candidates are visited shallowest-first, ties broken
// lexically, and the first whose final segment splits into at least three
// underscore-delimited parts wins.
func FindSessionDir(members []string) (string, SessionMeta, error) {
	seen := map[string]struct{}{}
	var candidates []string

	for _, m := range members {
		isDir := strings.HasSuffix(m, "/")
		segs := splitArchivePath(m)
		if len(segs) == 0 {
			continue
		}
		// Proper prefixes only for file members; an explicit directory entry
		// is itself a candidate.
		n := len(segs) - 1
		if isDir {
			n = len(segs)
		}
		for i := 1; i <= n; i++ {
			dir := strings.Join(segs[:i], "/")
			if _, ok := seen[dir]; ok {
				continue
			}
			seen[dir] = struct{}{}
			candidates = append(candidates, dir)
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		di := strings.Count(candidates[i], "/")
		dj := strings.Count(candidates[j], "/")
		if di != dj {
			return di < dj
		}
		return candidates[i] < candidates[j]
	})

	for _, dir := range candidates {
		seg := path.Base(dir)
		parts := strings.Split(seg, "_")
		if len(parts) >= 3 {
			return dir, decomposeSegment(parts), nil
		}
	}
	return "", SessionMeta{}, ErrNoSessionDirectory
}

// decomposeSegment maps <Name parts...>_<ID>_<Date>: last part is the capture
// date, second-to-last the patient ID, everything before is the name.
func decomposeSegment(parts []string) SessionMeta {
	return SessionMeta{
		PatientName: strings.Join(parts[:len(parts)-2], " "),
		PatientID:   parts[len(parts)-2],
		CaptureDate: parts[len(parts)-1],
	}
}

func splitArchivePath(m string) []string {
	m = strings.Trim(path.Clean(strings.ReplaceAll(m, "\\", "/")), "/")
	if m == "" || m == "." {
		return nil
	}
	return strings.Split(m, "/")
}
