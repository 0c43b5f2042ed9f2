package unirange

// 图标字体（Nerd Font）使用的私有使用区（Private Use Area）
const IconRange = "0xE000-0xF8FF"

// emoji 组是隐含默认值：无论请求哪种语言都会被合并进结果
const emojiGroup = "emoji"

// 各文字脚本对应的 Unicode 区间
var scriptRanges = map[string]string{
	"latin":          "0x20-0x7E",     // 基本拉丁字母
	"latin_extended": "0xA0-0xFF",     // 拉丁字母补充-1
	"cyrillic":       "0x0400-0x04FF", // 西里尔字母
	"greek":          "0x0370-0x03FF", // 希腊字母
	"japanese":       "0x3040-0x309F,0x30A0-0x30FF,0x4E00-0x9FFF", // 平假名、片假名和常用汉字
	"korean":         "0xAC00-0xD7AF", // 谚文音节
	"chinese":        "0x4E00-0x9FFF", // 常用汉字
	"devanagari":     "0x0900-0x097F", // 天城文（印地语）
	"emoji": "0x2190-0x21FF," + // 箭头
		"0x2300-0x23FF," + // 杂项技术符号
		"0x2500-0x257F," + // 制表符
		"0x2600-0x26FF," + // 杂项符号
		"0x1F000-0x1F02F," + // 麻将牌
		"0x1F0A0-0x1F0FF," + // 扑克牌
		"0x1F100-0x1F1FF," + // 带圈字母数字补充
		"0x1F200-0x1F2FF," + // 带圈表意文字补充
		"0x1F300-0x1F9FF," + // 杂项符号和象形文字
		"0x1FA00-0x1FA6F," + // 国际象棋符号
		"0x1FA70-0x1FAFF", // 符号和象形文字扩展-A
}

// 语言代码到所需脚本组的映射
var languageScripts = map[string][]string{
	"cs":             {"latin", "latin_extended"}, // 捷克语
	"de_DE":          {"latin", "latin_extended"}, // 德语
	"el":             {"latin", "greek"},          // 希腊语
	"en_GB":          {"latin"},                   // 英式英语
	"en_US":          {"latin"},                   // 美式英语
	"en_x_pirate":    {"latin"},                   // 海盗英语
	"es":             {"latin", "latin_extended"}, // 西班牙语
	"fil":            {"latin"},                   // 菲律宾语
	"fr":             {"latin", "latin_extended"}, // 法语
	"hi":             {"latin", "devanagari"},     // 印地语
	"ID":             {"latin"},                   // 印度尼西亚语
	"it_IT":          {"latin", "latin_extended"}, // 意大利语
	"ja":             {"latin", "japanese"},       // 日语
	"ko":             {"latin", "korean"},         // 韩语
	"nl":             {"latin", "latin_extended"}, // 荷兰语
	"pl":             {"latin", "latin_extended"}, // 波兰语
	"pt_BR":          {"latin", "latin_extended"}, // 巴西葡萄牙语
	"ru":             {"latin", "cyrillic"},       // 俄语
	"sv":             {"latin", "latin_extended"}, // 瑞典语
	"tr":             {"latin", "latin_extended"}, // 土耳其语
	"zh_Latn_pinyin": {"latin", "latin_extended"}, // 拼音
}

// Group 返回指定脚本组的区间串
func Group(label string) (string, bool) {
	group, ok := scriptRanges[label]
	return group, ok
}

// Scripts 返回指定语言所需的脚本组标签（不含隐含的 emoji 组）
func Scripts(language string) ([]string, error) {
	scripts, ok := languageScripts[language]
	if !ok {
		return nil, NewErrUnsupportedLanguage(language)
	}
	out := make([]string, len(scripts))
	copy(out, scripts)
	return out, nil
}
