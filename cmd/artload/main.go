// Command artload loads a newline-delimited word list into an art.Tree,
// using each line as both key and value, then times a bounded run of
// point lookups against it. It is illustrative only: no invariant of
// the core tree depends on this driver, per the core's documented
// external-interface contract.
package main

import (
	"bufio"
	"flag"
	"log"
	"os"
	"time"

	"github.com/dolthub/maphash"

	"github.com/sdbrain/artmap-go/pkg/art"
	"github.com/sdbrain/artmap-go/pkg/res"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	file := flag.String("file", "/tmp/words.txt", "newline-delimited word list to load")
	limit := flag.Int("limit", 1000, "number of lines to look up after loading, 0 for all")
	flag.Parse()

	lines := res.Wrap(readLines(*file)).Expect("reading word list")

	tree := art.New()

	hasher := maphash.NewHasher[string]()
	seen := make(map[uint64]struct{}, len(lines))
	duplicates := 0

	start := time.Now()
	for _, line := range lines {
		key := []byte(line)

		if _, ok := seen[hasher.Hash(line)]; ok {
			duplicates++
		} else {
			seen[hasher.Hash(line)] = struct{}{}
		}

		tree.Insert(key, key)
	}
	log.Printf("loaded %d lines (%d duplicates) in %s, tree len=%d", len(lines), duplicates, time.Since(start), tree.Len())

	n := *limit
	if n == 0 || n > len(lines) {
		n = len(lines)
	}

	hits := 0
	start = time.Now()
	for _, line := range lines[:n] {
		if tree.Search([]byte(line)).IsSome() {
			hits++
		}
	}
	log.Printf("searched %d lines in %s, %d hits", n, time.Since(start), hits)
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
