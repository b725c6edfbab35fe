// Package fixtures seeds data objects from YAML files.
package fixtures

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"

	"github.com/looplj/objecthub/internal/log"
	"github.com/looplj/objecthub/internal/objects"
	"github.com/looplj/objecthub/internal/store"
)

// File is the fixture file layout.
//
//	objects:
//	  - id: 1
//	    class: article
//	    key: hello
//	    path: /news
//	    published: true
//	    data:
//	      title: Hello
type File struct {
	Objects []Object `yaml:"objects"`
}

type Object struct {
	ID        int            `yaml:"id"`
	Class     string         `yaml:"class"`
	Key       string         `yaml:"key"`
	Path      string         `yaml:"path"`
	Published bool           `yaml:"published"`
	Data      map[string]any `yaml:"data"`
}

// Saver persists records, biz.ObjectService implements it.
type Saver interface {
	Save(ctx context.Context, rec *store.Record) error
}

type Loader struct {
	fs       afero.Fs
	registry *objects.Registry
	saver    Saver
}

func NewLoader(fs afero.Fs, registry *objects.Registry, saver Saver) *Loader {
	return &Loader{
		fs:       fs,
		registry: registry,
		saver:    saver,
	}
}

// Parse reads and validates a fixture file without saving it.
func (l *Loader) Parse(path string) ([]*store.Record, error) {
	raw, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures %s: %w", path, err)
	}

	var (
		records []*store.Record
		errs    *multierror.Error
	)

	for i, obj := range file.Objects {
		rec, err := l.toRecord(obj)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("objects[%d]: %w", i, err))
			continue
		}

		records = append(records, rec)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return records, nil
}

// Load saves every object of the fixture file and returns how many were saved.
func (l *Loader) Load(ctx context.Context, path string) (int, error) {
	records, err := l.Parse(path)
	if err != nil {
		return 0, err
	}

	for _, rec := range records {
		if err := l.saver.Save(ctx, rec); err != nil {
			return 0, fmt.Errorf("failed to save %s %q: %w", rec.Class, rec.Key, err)
		}
	}

	log.Info(ctx, "fixtures loaded", log.String("file", path), log.Int("objects", len(records)))

	return len(records), nil
}

func (l *Loader) toRecord(obj Object) (*store.Record, error) {
	if _, ok := l.registry.TypeByName(obj.Class); !ok {
		return nil, fmt.Errorf("unknown class %q", obj.Class)
	}

	if obj.Key == "" {
		return nil, fmt.Errorf("key is required")
	}

	if obj.Class == objects.ClassProduct {
		if _, err := objects.ParseDecimal(obj.Data["price"]); err != nil {
			return nil, fmt.Errorf("invalid price: %w", err)
		}
	}

	data := []byte(`{}`)

	for _, k := range slices.Sorted(maps.Keys(obj.Data)) {
		var err error

		data, err = sjson.SetBytes(data, k, obj.Data[k])
		if err != nil {
			return nil, fmt.Errorf("invalid data field %s: %w", k, err)
		}
	}

	return &store.Record{
		ID:        obj.ID,
		Class:     obj.Class,
		Key:       obj.Key,
		Path:      obj.Path,
		Published: obj.Published,
		Data:      json.RawMessage(data),
	}, nil
}
