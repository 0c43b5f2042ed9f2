package unirange_test

import (
	"errors"
	"testing"

	"github.com/adafruit/circuitpython-font-generator/unirange"
)

func TestMatchProfile(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "精确命中", input: "en_US", want: "en_US"},
		{name: "精确命中带变体的键", input: "zh_Latn_pinyin", want: "zh_Latn_pinyin"},
		{name: "BCP-47连字符形式", input: "en-US", want: "en_US"},
		{name: "英式英语", input: "en-GB", want: "en_GB"},
		{name: "带地区的日语", input: "ja-JP", want: "ja"},
		{name: "裸语言代码匹配到带地区的键", input: "de", want: "de_DE"},
		{name: "带地区的俄语", input: "ru-RU", want: "ru"},
		{name: "小写印尼语", input: "id", want: "ID"},
		{name: "未知语言", input: "xx_unknown", wantErr: true},
		{name: "空输入", input: "", wantErr: true},
		{name: "非法标签", input: "!!!", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := unirange.MatchProfile(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("MatchProfile(%q) 期望出错, 实际返回 %q", tc.input, got)
				}
				var unsupported *unirange.ErrUnsupportedLanguage
				if !errors.As(err, &unsupported) {
					t.Fatalf("期望 *ErrUnsupportedLanguage, 实际 %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("MatchProfile(%q) 失败: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("MatchProfile(%q) = %q, 期望 %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestLanguagesSorted(t *testing.T) {
	languages := unirange.Languages()
	if len(languages) == 0 {
		t.Fatal("支持的语言列表不应为空")
	}
	for i := 1; i < len(languages); i++ {
		if languages[i-1] >= languages[i] {
			t.Errorf("语言列表未升序排列: %q >= %q", languages[i-1], languages[i])
		}
	}
	for _, language := range languages {
		if _, _, err := unirange.Resolve(language); err != nil {
			t.Errorf("Languages 返回的 %q 无法解析: %v", language, err)
		}
	}
}
