package unirange

import (
	"strconv"
	"strings"
)

// BMP 边界：起始码点低于该值的区间由基础字体提供，
// 达到或超过该值的区间必须由补充字体（unifont_upper）提供
const BMPBoundary = 0x10000

// 闭区间 [Start, End]，两端均为码点
// 保留原始文本形式（如 "0x20-0x7E"）用于输出，避免重新序列化
type Interval struct {
	Start uint32
	End   uint32
	raw   string
}

// Raw 返回区间的原始文本形式
func (iv Interval) Raw() string {
	return iv.raw
}

// ParseInterval 解析单个区间（十六进制，"0x" 前缀不区分大小写）
func ParseInterval(token string) (Interval, error) {
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return Interval{}, NewErrInvalidInterval(token)
	}

	start, err := parseCodepoint(parts[0])
	if err != nil {
		return Interval{}, NewErrInvalidInterval(token)
	}
	end, err := parseCodepoint(parts[1])
	if err != nil {
		return Interval{}, NewErrInvalidInterval(token)
	}
	if start > end {
		return Interval{}, NewErrInvalidInterval(token)
	}

	return Interval{Start: start, End: end, raw: token}, nil
}

// ParseIntervals 解析逗号连接的区间串
func ParseIntervals(group string) ([]Interval, error) {
	tokens := strings.Split(group, ",")
	intervals := make([]Interval, 0, len(tokens))
	for _, token := range tokens {
		iv, err := ParseInterval(token)
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}

func parseCodepoint(s string) (uint32, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	hex, ok := strings.CutPrefix(s, "0x")
	if !ok {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}
