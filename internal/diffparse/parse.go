package diffparse

import (
	"regexp"
	"strconv"
	"strings"
)

var hunkHeaderRe = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// Parse parses unified diff text into an ordered sequence of file
// changes. Empty input yields an empty sequence, not an error.
func Parse(text string) []FileChange {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var files []FileChange
	var cur *FileChange
	var hunk *Hunk

	flush := func() {
		if hunk != nil && cur != nil {
			cur.Hunks = append(cur.Hunks, *hunk)
			hunk = nil
		}
		if cur != nil {
			files = append(files, *cur)
			cur = nil
		}
	}

	lines := strings.Split(text, "\n")
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			flush()
			old, new := parseDiffGitLine(line)
			cur = &FileChange{OldPath: old, NewPath: new, Kind: Modify}
			continue
		case cur == nil:
			// Stray line before any "diff --git" header; ignore.
			continue
		case strings.HasPrefix(line, "new file mode"):
			cur.Kind = Add
			cur.OldPath = ""
		case strings.HasPrefix(line, "deleted file mode"):
			cur.Kind = Delete
			cur.NewPath = ""
		case strings.HasPrefix(line, "rename from "):
			cur.Kind = Rename
			cur.OldPath = strings.TrimPrefix(line, "rename from ")
		case strings.HasPrefix(line, "rename to "):
			cur.NewPath = strings.TrimPrefix(line, "rename to ")
		case strings.HasPrefix(line, "copy from "):
			cur.Kind = Copy
			cur.OldPath = strings.TrimPrefix(line, "copy from ")
		case strings.HasPrefix(line, "copy to "):
			cur.NewPath = strings.TrimPrefix(line, "copy to ")
		case strings.HasPrefix(line, "Binary files ") && strings.HasSuffix(line, " differ"):
			cur.IsBinary = true
		case strings.HasPrefix(line, "--- "):
			path := strings.TrimPrefix(line, "--- ")
			if path == "/dev/null" {
				cur.OldPath = ""
				if cur.Kind == Modify {
					cur.Kind = Add
				}
			} else if cur.Kind != Rename && cur.Kind != Copy {
				cur.OldPath = stripDiffPrefix(path, "a/")
			}
		case strings.HasPrefix(line, "+++ "):
			path := strings.TrimPrefix(line, "+++ ")
			if path == "/dev/null" {
				cur.NewPath = ""
				if cur.Kind == Modify {
					cur.Kind = Delete
				}
			} else if cur.Kind != Rename && cur.Kind != Copy {
				cur.NewPath = stripDiffPrefix(path, "b/")
			}
		case strings.HasPrefix(line, "@@ "):
			if hunk != nil {
				cur.Hunks = append(cur.Hunks, *hunk)
			}
			h := parseHunkHeader(line)
			hunk = &h
		case strings.HasPrefix(line, "\\ No newline at end of file"):
			// Marker only; does not contribute a line.
		case hunk != nil:
			appendHunkLine(hunk, line)
		default:
			// Extended header line we don't otherwise care about
			// (index, similarity, mode changes without content).
		}
	}
	flush()

	return files
}

func parseDiffGitLine(line string) (oldPath, newPath string) {
	rest := strings.TrimPrefix(line, "diff --git ")
	// "a/<path> b/<path>" — paths may contain spaces, so split on " b/"
	// scanning from the a/ prefix.
	if !strings.HasPrefix(rest, "a/") {
		return "", ""
	}
	idx := strings.Index(rest, " b/")
	if idx < 0 {
		return "", ""
	}
	oldPath = strings.TrimPrefix(rest[:idx], "a/")
	newPath = rest[idx+3:]
	return oldPath, newPath
}

func stripDiffPrefix(path, prefix string) string {
	if strings.HasPrefix(path, prefix) {
		return strings.TrimPrefix(path, prefix)
	}
	return path
}

func parseHunkHeader(line string) Hunk {
	m := hunkHeaderRe.FindStringSubmatch(line)
	if m == nil {
		return Hunk{Header: line}
	}
	oldStart, _ := strconv.Atoi(m[1])
	oldLines := 1
	if m[2] != "" {
		oldLines, _ = strconv.Atoi(m[2])
	}
	newStart, _ := strconv.Atoi(m[3])
	newLines := 1
	if m[4] != "" {
		newLines, _ = strconv.Atoi(m[4])
	}
	return Hunk{
		OldStart: oldStart,
		OldLines: oldLines,
		NewStart: newStart,
		NewLines: newLines,
		Header:   line,
	}
}

func appendHunkLine(h *Hunk, line string) {
	if line == "" {
		return
	}
	switch line[0] {
	case '+':
		h.Lines = append(h.Lines, Line{Type: LineAdd, Content: line[1:]})
	case '-':
		h.Lines = append(h.Lines, Line{Type: LineDelete, Content: line[1:]})
	case ' ':
		h.Lines = append(h.Lines, Line{Type: LineContext, Content: line[1:]})
	default:
		// Tolerate lines without a leading marker (e.g. trailing blank).
	}
}
