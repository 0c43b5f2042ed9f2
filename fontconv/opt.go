package fontconv

type ConvertOption func(*convertConfig)

type convertConfig struct {
	size      int
	bpp       int
	fontDir   string
	converter string
}

func newConvertConfig(opts []ConvertOption) *convertConfig {
	c := &convertConfig{
		size:      16,
		bpp:       1,
		fontDir:   "fonts",
		converter: "lv_font_conv",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func WithSize(size int) ConvertOption {
	return func(c *convertConfig) {
		c.size = size
	}
}

func WithBPP(bpp int) ConvertOption {
	return func(c *convertConfig) {
		c.bpp = bpp
	}
}

func WithFontDir(dir string) ConvertOption {
	return func(c *convertConfig) {
		c.fontDir = dir
	}
}

func WithConverter(name string) ConvertOption {
	return func(c *convertConfig) {
		c.converter = name
	}
}
