package document

import (
	"context"
	"log/slog"

	"github.com/taily-khucnaykhongquantrong/monocle-optics/functional"
	"github.com/taily-khucnaykhongquantrong/monocle-optics/optics"
)

// Option configures a document lens.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger reports codec failures at debug and forwards logger to the
// underlying path lens.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) fail(codec Codec, op string, err error, attrs ...slog.Attr) {
	ctx := context.Background()
	if !c.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs = append(attrs,
		slog.String("codec", codec.Name()),
		slog.String("error", err.Error()))
	c.logger.LogAttrs(ctx, slog.LevelDebug, "document: "+op+" failed", attrs...)
}

// Lens focuses on path inside documents encoded with codec.
//
// Replace re-encodes the whole document, so the output is the codec's
// canonical form rather than the input's original formatting. Undecodable
// input is returned unchanged.
func Lens[A any](codec Codec, path optics.Path, opts ...Option) optics.Lens[[]byte, A] {
	cfg := newConfig(opts)
	inner := optics.PathLens[any, A](path, optics.WithLogger(cfg.logger))
	at := slog.String("path", path.String())
	return optics.NewOptionalLens(
		func(data []byte) functional.Option[A] {
			doc, err := codec.Decode(data)
			if err != nil {
				cfg.fail(codec, "get", err, at)
				return functional.None[A]()
			}
			return inner.Get(doc)
		},
		func(data []byte, value A) []byte {
			doc, err := codec.Decode(data)
			if err != nil {
				cfg.fail(codec, "replace", err, at)
				return data
			}
			out, err := codec.Encode(inner.Replace(doc, value))
			if err != nil {
				cfg.fail(codec, "replace", err, at)
				return data
			}
			return out
		},
	)
}

// ParseLens is Lens over the path text accepted by optics.ParsePath.
func ParseLens[A any](codec Codec, text string, opts ...Option) (optics.Lens[[]byte, A], error) {
	path, err := optics.ParsePath(text)
	if err != nil {
		return optics.Lens[[]byte, A]{}, err
	}
	return Lens[A](codec, path, opts...), nil
}

// Decoded views encoded bytes as a generic tree. Undecodable input maps to
// nil and encoding failures map to nil bytes; both are logged at debug.
func Decoded(codec Codec, opts ...Option) optics.Iso[[]byte, any] {
	cfg := newConfig(opts)
	return optics.NewIso(
		func(data []byte) any {
			doc, err := codec.Decode(data)
			if err != nil {
				cfg.fail(codec, "decode", err)
				return nil
			}
			return doc
		},
		func(doc any) []byte {
			data, err := codec.Encode(doc)
			if err != nil {
				cfg.fail(codec, "encode", err)
				return nil
			}
			return data
		},
	)
}
