package unirange

import (
	"sort"
	"strings"
)

// Resolve 计算指定语言所需的全部 Unicode 区间，
// 按 BMP 边界拆分为 low（start < 0x10000）和 high（start >= 0x10000）两组，
// 各自按起始码点升序排序后用逗号连接，空组返回空串。
// emoji 组无论语言都会被包含。
func Resolve(language string) (low string, high string, err error) {
	scripts, ok := languageScripts[language]
	if !ok {
		return "", "", NewErrUnsupportedLanguage(language)
	}

	// 去重：语言显式依赖的组可能与隐含的 emoji 组重复
	labels := make([]string, 0, len(scripts)+1)
	seen := make(map[string]struct{}, len(scripts)+1)
	for _, label := range append([]string{emojiGroup}, scripts...) {
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	var lowIntervals, highIntervals []Interval
	for _, label := range labels {
		group, ok := scriptRanges[label]
		if !ok {
			return "", "", NewErrUnknownScript(label)
		}
		intervals, err := ParseIntervals(group)
		if err != nil {
			return "", "", err
		}
		// 静态表中没有跨 BMP 边界的区间，按起始码点划分即可
		for _, iv := range intervals {
			if iv.Start >= BMPBoundary {
				highIntervals = append(highIntervals, iv)
			} else {
				lowIntervals = append(lowIntervals, iv)
			}
		}
	}

	return joinSorted(lowIntervals), joinSorted(highIntervals), nil
}

func joinSorted(intervals []Interval) string {
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})
	tokens := make([]string, len(intervals))
	for i, iv := range intervals {
		tokens[i] = iv.raw
	}
	return strings.Join(tokens, ",")
}
