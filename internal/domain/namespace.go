package domain

import (
	"bufio"
	"io"
	"strings"

	m "github.com/maxport/maxcensus/internal/model"
)

// ParseCommandLines extracts command paths from r. A line is a command when,
// after trimming surrounding whitespace, it begins with "/". Everything after
// the first whitespace run is argument payload and is discarded.
func ParseCommandLines(r io.Reader) ([]string, error) {
	var commands []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "/") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		commands = append(commands, fields[0])
	}

	return commands, scanner.Err()
}

// Aggregate builds the namespace index from command paths. Every path is
// expanded into all of its prefixes from 2 segments up to its full length;
// the full path is recorded under each. Output is a pure function of the
// input set: duplicates and ordering do not affect the result.
func Aggregate(commands []string) m.NamespaceIndex {
	ns := m.NewNamespaceIndex()

	for _, command := range commands {
		segments := strings.Split(strings.TrimPrefix(command, "/"), "/")
		for i := 2; i <= len(segments); i++ {
			prefix := "/" + strings.Join(segments[:i], "/")
			ns.Insert(prefix, command)
		}
	}

	return ns
}
