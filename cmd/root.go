package cmd

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/sudacode/thumburl/clipboard"
	"github.com/sudacode/thumburl/config"
	apperrors "github.com/sudacode/thumburl/errors"
	"github.com/sudacode/thumburl/logging"
	"github.com/sudacode/thumburl/thumbor"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rootFlags struct {
	width      int
	height     int
	smart      bool
	unsafeURL  bool
	copyToClip bool
	envFile    string
	output     string
	verbose    int
}

// result is the machine-readable output for -o json.
type result struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Smart  bool   `json:"smart"`
	Unsafe bool   `json:"unsafe"`
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "thumburl [flags] IMAGE_URL",
		Short: "Generate resize URLs for a thumbor server",
		Long: `thumburl builds image-resizing URLs for a thumbor media server.

Given an image URL and the desired dimensions it emits either a signed
("safe") URL that the server verifies with its shared key, or an unsigned
"unsafe" URL for trusted setups. No request is made to the server; the
tool only constructs the URL.

Configuration is read from a dotenv-style file
($XDG_CONFIG_HOME/thumbor-url-generator/config by default) holding
THUMBOR_BASE_URL, THUMBOR_KEY and optional defaults for the flags below.
An explicitly set flag beats the file; the file beats the built-in
defaults.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.width, "width", "W", config.DefaultWidth, "width of the image")
	flags.IntVarP(&f.height, "height", "H", config.DefaultHeight, "height of the image")
	flags.BoolVarP(&f.smart, "smart", "S", config.DefaultSmart, "use smart cropping")
	flags.BoolVarP(&f.unsafeURL, "unsafe", "u", config.DefaultUnsafe, "generate an unsigned URL")
	flags.BoolVarP(&f.copyToClip, "copy", "c", config.DefaultCopy, "copy the URL to the clipboard")
	flags.StringVarP(&f.envFile, "env-file", "e", "", "path to the config file")
	flags.StringVarP(&f.output, "output", "o", "text", "output format (text or json)")
	flags.CountVarP(&f.verbose, "verbose", "v", "verbosity: -v for info, -vv for debug")

	return cmd
}

// Execute runs the root command and exits non-zero on fatal errors, with
// the exit status taken from the error kind.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(apperrors.ExitStatus(err))
	}
}

func run(cmd *cobra.Command, args []string, f *rootFlags) error {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.LevelForVerbosity(f.verbose)
	logging.Init(logCfg)
	defer func() { _ = logging.Sync() }()

	if f.output != "text" && f.output != "json" {
		return apperrors.NewConfiguration("output must be text or json").
			WithDetail("output", f.output)
	}

	settings, err := config.Load(config.Options{Path: f.envFile}, cmd.Flags())
	if err != nil {
		return err
	}

	// The config file can turn on file logging; rebuild the logger so the
	// rest of the run is captured there too.
	if settings.LogFile != "" {
		logCfg.File = settings.LogFile
		logging.Init(logCfg)
	}
	log := logging.Global()
	log.Debugf("Resolved settings: %s", settings)

	req := thumbor.Request{
		ImageURL: args[0],
		Width:    settings.Width,
		Height:   settings.Height,
		Smart:    settings.Smart,
		Unsafe:   settings.Unsafe,
		BaseURL:  settings.BaseURL,
	}

	var signer *thumbor.SigningContext
	if !settings.Unsafe {
		signer = thumbor.NewSigningContext(settings.SigningKey)
	}

	url, err := thumbor.NewBuilder(log).Build(req, signer)
	if err != nil {
		return err
	}

	if settings.Copy {
		if copyErr := clipboard.Copy(url); copyErr != nil {
			log.Warnf("Clipboard copy failed: %v", copyErr)
		} else {
			log.Debug("Copied URL to clipboard")
		}
	}

	return printResult(cmd, f, settings, url)
}

func printResult(cmd *cobra.Command, f *rootFlags, settings *config.Settings, url string) error {
	out := cmd.OutOrStdout()

	if f.output == "json" {
		data, err := json.Marshal(result{
			URL:    url,
			Width:  settings.Width,
			Height: settings.Height,
			Smart:  settings.Smart,
			Unsafe: settings.Unsafe,
		})
		if err != nil {
			return apperrors.FromError(err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "URL:", url)
	return nil
}
