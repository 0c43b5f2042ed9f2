package fontconv

import (
	"strconv"

	"github.com/adafruit/circuitpython-font-generator/unirange"
)

// BuildArgs 构造 lv_font_conv 的完整参数列表（不含可执行文件名）。
// 纯函数，不触碰文件系统，便于单元测试。
func BuildArgs(language string, output string, opts ...ConvertOption) ([]string, error) {
	return buildArgs(newConvertConfig(opts), language, output)
}

func buildArgs(cfg *convertConfig, language string, output string) ([]string, error) {
	low, high, err := unirange.Resolve(language)
	if err != nil {
		return nil, err
	}

	fonts := NewFontSet(cfg.fontDir)
	base := fonts.Base
	if language == japaneseLanguage {
		base = fonts.CJK
	}

	args := []string{"--font", base, "--autohint-off", "-r", low}

	// 0x10000 及以上的区间需要第二组 --font/-r 参数指向补充字体
	if high != "" {
		args = append(args, "--font", fonts.Upper, "--autohint-off", "-r", high)
	}

	// 图标字体固定映射到私有使用区
	args = append(args, "--font", fonts.Icon, "-r", unirange.IconRange)

	args = append(args,
		"--size", strconv.Itoa(cfg.size),
		"--format", "bin",
		"--bpp", strconv.Itoa(cfg.bpp),
		"--no-compress",
		"-o", output,
	)
	return args, nil
}
