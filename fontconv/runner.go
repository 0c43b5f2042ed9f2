package fontconv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Run 调用 lv_font_conv 为指定语言生成字体文件。
// 找不到可执行文件或进程退出码非零时返回对应错误，不做重试。
func Run(ctx context.Context, language string, output string, opts ...ConvertOption) error {
	cfg := newConvertConfig(opts)

	args, err := buildArgs(cfg, language, output)
	if err != nil {
		return err
	}

	path, err := exec.LookPath(cfg.converter)
	if err != nil {
		return NewErrConverterNotFound(cfg.converter)
	}

	fmt.Println("Running command:")
	fmt.Println(path + " " + strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return NewErrConvertFailed(cfg.converter, err)
	}
	return nil
}
