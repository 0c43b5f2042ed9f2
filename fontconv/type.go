package fontconv

import "path/filepath"

// 默认字体文件名（随仓库 fonts/ 目录分发）
const (
	baseFontName  = "unifont-16.0.02.otf"
	upperFontName = "unifont_upper-16.0.02.otf"
	cjkFontName   = "unifont_jp-16.0.02.otf"
	iconFontName  = "SymbolsNerdFontMono-Regular.ttf"
)

// 日语使用包含日文字形变体的专用字体替代基础字体
const japaneseLanguage = "ja"

// FontSet 一次转换涉及的各来源字体路径
type FontSet struct {
	Base  string // 基础覆盖字体（BMP 内区间）
	Upper string // 补充字体（0x10000 及以上区间）
	CJK   string // 日语专用字体（替代基础字体）
	Icon  string // 图标字体（私有使用区）
}

// NewFontSet 按默认文件名在指定目录下定位各来源字体
func NewFontSet(dir string) FontSet {
	return FontSet{
		Base:  filepath.Join(dir, baseFontName),
		Upper: filepath.Join(dir, upperFontName),
		CJK:   filepath.Join(dir, cjkFontName),
		Icon:  filepath.Join(dir, iconFontName),
	}
}
