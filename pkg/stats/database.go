package stats

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"time"
)

// Database caches the content of every configured source so repeated runs
// do not re-read or re-download them. Sources are keyed by their source
// identifier, i.e. the path or URL the zone selectors point at.
type Database struct {
	Sources    map[string]*File
	Downloaded time.Time
}

func NewDatabase(locations ...string) *Database {
	db := &Database{Sources: make(map[string]*File, len(locations))}
	for _, l := range locations {
		db.Sources[l] = &File{URL: l, Title: l}
	}
	return db
}

// LoadIfExists reads a database saved with Save. found is false when
// dbFile does not exist.
func LoadIfExists(dbFile string) (db *Database, found bool, err error) {
	data, err := os.ReadFile(dbFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}

	db = new(Database)
	if err := json.Unmarshal(data, db); err != nil {
		return nil, false, fmt.Errorf("decode database %s: %w", dbFile, err)
	}
	if db.Sources == nil {
		db.Sources = make(map[string]*File)
	}

	return db, true, nil
}

func (db *Database) Info(w io.Writer) {
	contentSize := 0
	for _, f := range db.Sources {
		contentSize += len(f.ContentBase64)
	}

	downloaded := "never"
	if !db.Downloaded.IsZero() {
		downloaded = db.Downloaded.Format(time.RFC3339)
	}

	fmt.Fprintf(w, `
	Sources      : %d
	Content Size : %d
	Downloaded   : %s
	`, len(db.Sources), contentSize, downloaded)
	fmt.Fprintln(w, "")

	for _, l := range db.Locations() {
		fmt.Fprintf(w, "\t- %s\n", l)
	}
}

func (db *Database) Save(dbFile string) error {
	js, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(dbFile, js, 0644)
}

// Locations returns the source identifiers held by db in sorted order.
func (db *Database) Locations() []string {
	locations := make([]string, 0, len(db.Sources))
	for l := range db.Sources {
		locations = append(locations, l)
	}
	sort.Strings(locations)
	return locations
}

// DownloadSources loads the content of every source.
func (db *Database) DownloadSources() error {
	for _, l := range db.Locations() {
		if err := db.Sources[l].LoadContent(); err != nil {
			return err
		}
	}

	db.Downloaded = time.Now()
	return nil
}

func (db *Database) GetTableFile(location string) (f *File, found bool) {
	f, found = db.Sources[location]
	return f, found
}

// Load returns the rows of the source at location. Cached content is used
// when the database holds the source, otherwise the source is read directly.
func (db *Database) Load(location string) ([]Row, error) {
	f, found := db.GetTableFile(location)
	if !found {
		f = &File{URL: location, Title: location}
	}
	return ReadRows(f)
}
