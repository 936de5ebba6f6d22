package pngme

// DecodeOption configures chunk-stream decoding.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	lenientCRC bool
}

func defaultDecodeOptions() *decodeOptions {
	return &decodeOptions{}
}

func applyDecodeOptions(opts []DecodeOption) *decodeOptions {
	o := defaultDecodeOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLenientCRC accepts chunk records whose stored CRC disagrees with the
// recomputed one. The resulting chunk carries the recomputed CRC, so
// re-encoding an image decoded leniently writes corrected checksums.
func WithLenientCRC() DecodeOption {
	return func(o *decodeOptions) {
		o.lenientCRC = true
	}
}
