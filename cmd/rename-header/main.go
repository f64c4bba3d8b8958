// rename-header walks a static-data tree and renames the activities header
// to type in every locations.csv it finds.
package main

import (
	"flag"
	"io/fs"
	"log"
	"path/filepath"

	"facilitymap/csvfile"
)

func main() {
	root := flag.String("root", "static_data", "Directory tree to walk")
	file := flag.String("file", "locations.csv", "File name to rewrite wherever found")
	from := flag.String("from", "activities", "Header to rename")
	to := flag.String("to", "type", "New header name")
	flag.Parse()

	renamed := 0
	err := filepath.WalkDir(*root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != *file {
			return nil
		}
		err = csvfile.RewriteInPlace(path, func(t *csvfile.Table) error {
			if !t.RenameColumn(*from, *to) {
				log.Printf("WARN %s has no %q column, left unchanged", path, *from)
			}
			return nil
		})
		if err != nil {
			return err
		}
		renamed++
		log.Printf("Renamed %q to %q in %s", *from, *to, path)
		return nil
	})
	if err != nil {
		log.Fatalf("Error walking %s: %v", *root, err)
	}
	log.Printf("Rewrote %d files under %s", renamed, *root)
}
