package unirange

import (
	"sort"

	"golang.org/x/text/language"
)

var (
	supported []string
	matcher   language.Matcher
)

func init() {
	supported = make([]string, 0, len(languageScripts))
	for lang := range languageScripts {
		supported = append(supported, lang)
	}
	sort.Strings(supported)

	tags := make([]language.Tag, len(supported))
	for i, lang := range supported {
		tags[i] = language.Make(lang)
	}
	matcher = language.NewMatcher(tags)
}

// Languages 返回所有支持的语言代码（升序）
func Languages() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// MatchProfile 将任意 BCP-47 形式的输入归一化为受支持的语言代码，
// 如 "en-US" -> "en_US"、"de" -> "de_DE"。
// 精确命中语言表的键直接返回；匹配置信度不足时报不支持错误。
func MatchProfile(input string) (string, error) {
	if _, ok := languageScripts[input]; ok {
		return input, nil
	}

	tag, err := language.Parse(input)
	if err != nil {
		return "", NewErrUnsupportedLanguage(input)
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return "", NewErrUnsupportedLanguage(input)
	}
	return supported[idx], nil
}
