package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/username/calp/internal/config"
	"github.com/username/calp/internal/holiday"
	"github.com/username/calp/internal/monthspec"
	"github.com/username/calp/internal/render"
	"github.com/username/calp/pkg/dateutil"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	monthsSpec  string
	wholeYear   bool
	lang        string
	holidayFile string
	encoding    string
	noColor     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "calp [YEAR]",
		Short: "Print a calendar with Japanese national holidays",
		Long: "Render one or more months as a text calendar, three per row.\n" +
			"Months are selected with a list like 1,3-5,12; holiday dates are\n" +
			"read from a Cabinet Office style CSV file (Shift_JIS by default).",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path")
	cmd.Flags().StringVarP(&opts.monthsSpec, "months", "m", "", "Selected months (1-12), e.g. 1,3,5 or 1,3-5,12")
	cmd.Flags().BoolVarP(&opts.wholeYear, "whole-year", "y", false, "Show the whole current year")
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "", "Language (ja or en)")
	cmd.Flags().StringVarP(&opts.holidayFile, "file", "f", "", "Japanese national holiday file")
	cmd.Flags().StringVarP(&opts.encoding, "encoding", "e", "", "Holiday file encoding (sjis or utf8)")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")

	cmd.MarkFlagsMutuallyExclusive("months", "whole-year")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger = initLogger(cfg.LogLevel)
	defer logger.Sync()

	// Flags override config file values.
	if opts.lang == "" {
		opts.lang = cfg.Lang
	}
	if opts.holidayFile == "" {
		opts.holidayFile = cfg.HolidayFile
	}
	if opts.encoding == "" {
		opts.encoding = cfg.Encoding
	}

	lang, err := render.ParseLang(opts.lang)
	if err != nil {
		return err
	}
	enc, err := holiday.ParseEncoding(opts.encoding)
	if err != nil {
		return err
	}

	today := dateutil.Today()

	year := today.Year()
	yearGiven := len(args) == 1
	if yearGiven {
		if opts.wholeYear {
			return errors.New("--whole-year cannot be combined with an explicit year")
		}
		year, err = strconv.Atoi(args[0])
		if err != nil || year < 1 || year > 9999 {
			return fmt.Errorf("year must be between 1 and 9999, got '%s'", args[0])
		}
	}

	months, err := selectMonths(opts.monthsSpec, yearGiven, opts.wholeYear, today)
	if err != nil {
		return err
	}

	idx, err := holiday.Load(opts.holidayFile, enc, logger)
	if err != nil {
		return err
	}

	var styler render.Styler = render.NewColorStyler()
	if opts.noColor {
		styler = render.PlainStyler{}
	}

	showYear := len(months) == 1
	renderOpts := render.Options{
		Lang:     lang,
		ShowYear: showYear,
		Today:    today,
		Holidays: idx,
		Styler:   styler,
	}

	blocks := make([][]string, 0, len(months))
	for _, m := range months {
		blocks = append(blocks, render.Month(year, time.Month(m), renderOpts))
	}

	out := cmd.OutOrStdout()
	for _, line := range render.ComposePage(year, blocks, showYear) {
		fmt.Fprintln(out, line)
	}
	return nil
}

// selectMonths decides which months to show: an explicit selection wins, the
// whole year is used when asked for or when only a year was given, and the
// current month is the fallback.
func selectMonths(spec string, yearGiven, wholeYear bool, today time.Time) ([]int, error) {
	if spec != "" {
		return monthspec.Parse(spec)
	}
	if wholeYear || yearGiven {
		return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, nil
	}
	return []int{int(today.Month())}, nil
}

func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.WarnLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	l, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return l
}
