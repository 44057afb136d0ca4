// Command gen regenerates the zones identifier list from the host zone
// database. Run from the zones package directory:
//
//	go run ./gen -output list.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

const zoneinfoDir = "/usr/share/zoneinfo"

var skipped = regexp.MustCompile(`^(posix/|right/)|\.(tab|zi|list)$|^(SECURITY|leapseconds|leap-seconds)`)

func main() {
	output := flag.String("output", "list.go", "output file")
	flag.Parse()

	names := []string{}

	err := filepath.WalkDir(zoneinfoDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		name := strings.TrimPrefix(path, zoneinfoDir+"/")

		// Zone identifiers start with an uppercase region; everything else in
		// the directory is metadata.
		if skipped.MatchString(name) || name[0] < 'A' || name[0] > 'Z' {
			return nil
		}

		names = append(names, name)

		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "walking zoneinfo:", err)
		os.Exit(1)
	}

	sort.Strings(names)

	var buf bytes.Buffer

	buf.WriteString("// Code generated by go run ./gen; DO NOT EDIT.\n\n")
	buf.WriteString("package zones\n\n")
	buf.WriteString("// allNames is the full set of IANA timezone identifiers known to this build,\n")
	buf.WriteString("// taken from the embedded tzdata zone database.\n")
	buf.WriteString("var allNames = []string{\n")

	for _, name := range names {
		fmt.Fprintf(&buf, "\t%q,\n", name)
	}

	buf.WriteString("}\n")

	if err := os.WriteFile(*output, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "writing output:", err)
		os.Exit(1)
	}
}
