package biz

import (
	"encoding/json"
	"fmt"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/looplj/objecthub/internal/objects"
	"github.com/looplj/objecthub/internal/store"
)

func baseFromRecord(rec *store.Record) objects.Base {
	return objects.Base{
		ID:        rec.ID,
		Class:     rec.Class,
		Key:       rec.Key,
		Path:      rec.Path,
		Published: rec.Published,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func DecodeArticle(rec *store.Record) (*objects.Article, error) {
	data := gjson.ParseBytes(rec.Data)

	return &objects.Article{
		Base:  baseFromRecord(rec),
		Title: data.Get("title").String(),
		Body:  data.Get("body").String(),
		Tags: lo.Map(data.Get("tags").Array(), func(r gjson.Result, _ int) string {
			return r.String()
		}),
	}, nil
}

func DecodeProduct(rec *store.Record) (*objects.Product, error) {
	data := gjson.ParseBytes(rec.Data)

	price, err := objects.ParseDecimal(data.Get("price").Value())
	if err != nil {
		return nil, fmt.Errorf("invalid price of product %d: %w", rec.ID, err)
	}

	return &objects.Product{
		Base:  baseFromRecord(rec),
		Name:  data.Get("name").String(),
		SKU:   data.Get("sku").String(),
		Price: price,
	}, nil
}

func DecodeFolder(rec *store.Record) (*objects.Folder, error) {
	return &objects.Folder{
		Base:  baseFromRecord(rec),
		Title: gjson.GetBytes(rec.Data, "title").String(),
	}, nil
}

// EncodeObject builds the record stored for obj.
func EncodeObject(obj objects.DataObject) (*store.Record, error) {
	var (
		base *objects.Base
		data = []byte(`{}`)
		err  error
	)

	set := func(path string, value any) {
		if err == nil {
			data, err = sjson.SetBytes(data, path, value)
		}
	}

	switch o := obj.(type) {
	case *objects.Article:
		base = &o.Base
		base.Class = objects.ClassArticle

		set("title", o.Title)
		set("body", o.Body)

		if len(o.Tags) > 0 {
			set("tags", o.Tags)
		}
	case *objects.Product:
		base = &o.Base
		base.Class = objects.ClassProduct

		set("name", o.Name)
		set("sku", o.SKU)
		set("price", o.Price.String())
	case *objects.Folder:
		base = &o.Base
		base.Class = objects.ClassFolder

		set("title", o.Title)
	default:
		return nil, fmt.Errorf("unsupported data object type %T", obj)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to encode data object: %w", err)
	}

	return &store.Record{
		ID:        base.ID,
		Class:     base.Class,
		Key:       base.Key,
		Path:      base.Path,
		Published: base.Published,
		Data:      json.RawMessage(data),
		CreatedAt: base.CreatedAt,
		UpdatedAt: base.UpdatedAt,
	}, nil
}
