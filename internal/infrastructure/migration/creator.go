package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"
)

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

var (
	upTemplate = template.Must(template.New("up").Parse(`-- Migration: {{.Name}}
-- Created: {{.Timestamp}}
-- Description: {{.Description}}

-- Write your UP migration SQL here

`))
	downTemplate = template.Must(template.New("down").Parse(`-- Migration: {{.Name}} (Rollback)
-- Created: {{.Timestamp}}
-- Description: Rollback for {{.Description}}

-- Write your DOWN migration SQL here

`))
)

// MigrationFile describes a generated up/down pair
type MigrationFile struct {
	Version     string
	Name        string
	Description string
	Timestamp   string
	UpPath      string
	DownPath    string
}

// CreateMigration writes a new timestamped up/down pair into migrationsDir
func CreateMigration(migrationsDir, name, description string) (*MigrationFile, error) {
	if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create migrations directory: %w", err)
	}

	now := time.Now().UTC()
	base := now.Format("20060102150405") + "_" + sanitizeName(name)
	mf := &MigrationFile{
		Version:     now.Format("20060102150405"),
		Name:        name,
		Description: description,
		Timestamp:   now.Format(time.RFC3339),
		UpPath:      filepath.Join(migrationsDir, base+upSuffix),
		DownPath:    filepath.Join(migrationsDir, base+downSuffix),
	}

	if err := writeTemplate(mf.UpPath, upTemplate, mf); err != nil {
		return nil, fmt.Errorf("failed to create up migration: %w", err)
	}
	if err := writeTemplate(mf.DownPath, downTemplate, mf); err != nil {
		_ = os.Remove(mf.UpPath)
		return nil, fmt.Errorf("failed to create down migration: %w", err)
	}
	return mf, nil
}

func writeTemplate(path string, tmpl *template.Template, data *MigrationFile) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer f.Close()
	return tmpl.Execute(f, data)
}

// sanitizeName lowercases name and joins its words with underscores
func sanitizeName(name string) string {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, w)
	}
	parts := words[:0]
	for _, w := range words {
		if w != "" {
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, "_")
}

// ListMigrations returns the base names of the up migrations in
// migrationsDir, in version order. A missing directory yields no migrations.
func ListMigrations(migrationsDir string) ([]string, error) {
	ups, _, err := scan(migrationsDir)
	if err != nil {
		return nil, err
	}
	return ups, nil
}

// Validate reports migrations that lack one half of their up/down pair
func Validate(migrationsDir string) error {
	ups, downs, err := scan(migrationsDir)
	if err != nil {
		return err
	}

	hasDown := make(map[string]bool, len(downs))
	for _, d := range downs {
		hasDown[d] = true
	}
	hasUp := make(map[string]bool, len(ups))
	var problems []string
	for _, u := range ups {
		hasUp[u] = true
		if !hasDown[u] {
			problems = append(problems, u+downSuffix+" is missing")
		}
	}
	for _, d := range downs {
		if !hasUp[d] {
			problems = append(problems, d+upSuffix+" is missing")
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("incomplete migrations: %s", strings.Join(problems, "; "))
	}
	return nil
}

func scan(migrationsDir string) (ups, downs []string, err error) {
	entries, err := os.ReadDir(migrationsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	ups = []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, upSuffix):
			ups = append(ups, strings.TrimSuffix(name, upSuffix))
		case strings.HasSuffix(name, downSuffix):
			downs = append(downs, strings.TrimSuffix(name, downSuffix))
		}
	}
	sort.Strings(ups)
	sort.Strings(downs)
	return ups, downs, nil
}
