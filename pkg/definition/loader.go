// Package definition loads form documents authored as YAML or JSON files, so
// forms can be versioned alongside code instead of assembled by hand in the
// editor.
package definition

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbuilder/pkg/document"
)

// LoadFS walks the provided filesystem and parses every YAML/JSON definition
// file into a document, keyed by the file name without extension. When fsys
// is nil or holds no definition files, the returned map is empty.
func LoadFS(fsys fs.FS) (map[string]document.Document, error) {
	docs := make(map[string]document.Document)
	if fsys == nil {
		return docs, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("definition: read %s: %w", path, err)
		}

		doc, err := Parse(data, path)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if _, exists := docs[name]; exists {
			return fmt.Errorf("definition: duplicate definition %q (file %s)", name, path)
		}
		docs[name] = doc
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Parse decodes a single definition payload. YAML payloads are normalised
// through JSON so field decoding follows the same tagged-union rules as
// stored snapshots. Missing step or field ids are generated; duplicated ids
// are an authoring error.
func Parse(data []byte, path string) (document.Document, error) {
	payload := data
	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return document.Document{}, fmt.Errorf("definition: parse %s: %w", path, err)
		}
		converted, err := json.Marshal(raw)
		if err != nil {
			return document.Document{}, fmt.Errorf("definition: normalise %s: %w", path, err)
		}
		payload = converted
	}

	var doc document.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return document.Document{}, fmt.Errorf("definition: decode %s: %w", path, err)
	}

	if len(doc.Steps) == 0 {
		return document.Document{}, fmt.Errorf("definition: %s defines no steps", path)
	}
	if err := fillIDs(&doc, path); err != nil {
		return document.Document{}, err
	}
	if doc.Style == (document.Style{}) {
		doc.Style = document.DefaultStyle()
	}
	if doc.CurrentStep < 0 || doc.CurrentStep >= len(doc.Steps) {
		doc.CurrentStep = 0
	}
	return doc, nil
}

func fillIDs(doc *document.Document, path string) error {
	stepIDs := make(map[string]struct{}, len(doc.Steps))
	for i := range doc.Steps {
		step := &doc.Steps[i]
		if step.ID == "" {
			step.ID = uuid.NewString()
		}
		if _, dup := stepIDs[step.ID]; dup {
			return fmt.Errorf("definition: duplicate step id %q (file %s)", step.ID, path)
		}
		stepIDs[step.ID] = struct{}{}

		fieldIDs := make(map[string]struct{}, len(step.Fields))
		for j := range step.Fields {
			f := &step.Fields[j]
			if f.ID == "" {
				f.ID = uuid.NewString()
			}
			if _, dup := fieldIDs[f.ID]; dup {
				return fmt.Errorf("definition: duplicate field id %q in step %q (file %s)", f.ID, step.ID, path)
			}
			fieldIDs[f.ID] = struct{}{}
		}
	}
	return nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
