package param

import (
	"context"

	"dario.cat/mergo"
	"github.com/spf13/cast"

	"github.com/looplj/objecthub/internal/log"
	"github.com/looplj/objecthub/internal/objects"
)

// ConvertersAttribute is the attribute holding []LegacyConverter for routes
// configured before DataObjectParam existed.
const ConvertersAttribute = "_converters"

// LegacyConverter is the deprecated per route converter configuration.
// Options may carry "unpublished" to allow unpublished objects.
//
// Deprecated: declare the argument with DataObjectParam options instead.
type LegacyConverter struct {
	Class   string         `json:"class" yaml:"class"`
	Options map[string]any `json:"options" yaml:"options"`
}

// legacyOptions translates the first legacy converter in the attributes, if any.
func legacyOptions(ctx context.Context, attrs *Attributes, registry *objects.Registry) *DataObjectParam {
	raw, ok := attrs.Get(ConvertersAttribute)
	if !ok {
		return nil
	}

	converters, ok := raw.([]LegacyConverter)
	if !ok || len(converters) == 0 {
		return nil
	}

	converter := converters[0]

	log.Warn(ctx, "legacy converter configuration is deprecated",
		log.String("package", "objecthub/param"),
		log.String("since", "0.1"),
		log.String("replacement", "param.DataObjectParam"),
		log.String("class", converter.Class),
	)

	return converter.toParam(ctx, registry)
}

func (c LegacyConverter) toParam(ctx context.Context, registry *objects.Registry) *DataObjectParam {
	opts := &DataObjectParam{}

	if c.Class != "" {
		if t, ok := registry.TypeByName(c.Class); ok {
			opts.Class = t
		} else {
			opts.unknownClass = c.Class
		}
	}

	if v, ok := c.Options["unpublished"]; ok {
		opts.Unpublished = cast.ToBool(v)
	}

	if len(c.Options) > 0 {
		opts.Extra = make(map[string]any, len(c.Options))
		if err := mergo.Merge(&opts.Extra, c.Options); err != nil {
			log.Warn(ctx, "failed to merge legacy converter options", log.Cause(err))
		}
	}

	return opts
}
