package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/adafruit/circuitpython-font-generator/fontconv"
	"github.com/adafruit/circuitpython-font-generator/unirange"
	"github.com/spf13/cobra"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorGreen  = "\033[32m"
)

var rootParams = struct {
	output  string
	size    int
	bpp     int
	fontDir string
	dryRun  bool
}{}

var rootCommand = &cobra.Command{
	Use:   "fontgen-go <language>",
	Short: "Generate bitmap font subsets using lv_font_conv",
	Long: `Generate a bitmap font restricted to the Unicode ranges a language needs.

Glyphs are merged from GNU Unifont (BMP ranges), Unifont Upper (ranges at or
above 0x10000), Unifont JP (substituted for Japanese) and Nerd Font Symbols
(private use area icons), then converted with lv_font_conv.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, args[0])
	},
}

func run(cmd *cobra.Command, input string) error {
	language, err := unirange.MatchProfile(input)
	if err != nil {
		return err
	}

	opts := []fontconv.ConvertOption{
		fontconv.WithSize(rootParams.size),
		fontconv.WithBPP(rootParams.bpp),
	}
	if rootParams.fontDir != "" {
		opts = append(opts, fontconv.WithFontDir(rootParams.fontDir))
	}

	if rootParams.dryRun {
		args, err := fontconv.BuildArgs(language, rootParams.output, opts...)
		if err != nil {
			return err
		}
		fmt.Println("lv_font_conv " + strings.Join(args, " "))
		return nil
	}

	if err := fontconv.Run(cmd.Context(), language, rootParams.output, opts...); err != nil {
		return err
	}

	fmt.Printf("%s[INFO]%s generated font for %s at %s\n", ColorGreen, ColorReset, language, rootParams.output)
	return nil
}

func logger(err error) {
	var unsupported *unirange.ErrUnsupportedLanguage
	switch {
	case errors.As(err, &unsupported):
		fmt.Printf("%s[ERROR]%s %s\n", ColorRed, ColorReset, err.Error())
		fmt.Printf("%s[INFO]%s supported languages: %s\n", ColorBlue, ColorReset, strings.Join(unirange.Languages(), ", "))
	default:
		fmt.Printf("%s[ERROR]%s %s\n", ColorRed, ColorReset, err.Error())
	}
}

func init() {
	rootCommand.Flags().StringVarP(&rootParams.output, "output", "o", "", "output font file path")
	rootCommand.Flags().IntVar(&rootParams.size, "size", 16, "font size in pixels")
	rootCommand.Flags().IntVar(&rootParams.bpp, "bpp", 1, "bits per pixel")
	rootCommand.Flags().StringVar(&rootParams.fontDir, "fontdir", "", "directory containing the source fonts")
	rootCommand.Flags().BoolVar(&rootParams.dryRun, "dry-run", false, "print the lv_font_conv command instead of running it")
	rootCommand.MarkFlagRequired("output")
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		logger(err)
		os.Exit(1)
	}
}
