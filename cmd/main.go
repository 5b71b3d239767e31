package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tweetdeleter/internal"
	"tweetdeleter/internal/archive"
	"tweetdeleter/internal/config"
	"tweetdeleter/internal/twitter"
)

const issuesURL = "https://github.com/nbroyles/tweetdeleter/issues"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// errReported marks errors already shown to the user.
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:     "tweetdeleter",
	Short:   "Keep your Twitter feed clean by removing all tweets before a specified date",
	Version: version,
	Long: `Keep your Twitter feed clean by removing all tweets before a specified date!

Run tweetdeleter in the directory holding tweets.js from your Twitter archive.
Specify a date and tweetdeleter will remove all tweets you've ever sent before
that date. Retweets are unretweeted, everything else is deleted.

API credentials are read from API_KEY, API_KEY_SECRET, ACCESS_TOKEN and
ACCESS_TOKEN_SECRET (or a .env file) and prompted for when missing.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatal("Could not create zap logger")
	}
	defer logger.Sync()

	interactive := isatty.IsTerminal(os.Stderr.Fd())
	consoleOpts := internal.ConsoleOptions{
		Out:   cmd.OutOrStdout(),
		Color: isatty.IsTerminal(os.Stdout.Fd()),
	}
	if interactive {
		consoleOpts.Spinner = os.Stderr
	}
	console := internal.NewConsole(consoleOpts)

	tweets, err := archive.Load(archive.DefaultPath)
	if err != nil {
		return abort(console, logger, err)
	}
	logger.Info("loaded archive", zap.String("path", archive.DefaultPath), zap.Int("tweets", len(tweets)))

	settings, err := config.Resolve(config.OSLookup, config.SurveyPrompter{}, time.Now())
	if err != nil {
		return abort(console, logger, err)
	}

	client := twitter.NewClient(twitter.Config{
		APIKey:       settings.Credentials.APIKey,
		APISecret:    settings.Credentials.APISecret,
		AccessToken:  settings.Credentials.AccessToken,
		AccessSecret: settings.Credentials.AccessSecret,
		BaseURL:      cfg.APIURL,
	})

	td, err := internal.NewTweetDeleter(internal.TweetDeleterOptions{
		Remover:  client,
		Reporter: console,
		Cutoff:   settings.Cutoff,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("could not create TweetDeleter", zap.Error(err))
		return err
	}

	console.Summary(td.Run(ctx, tweets))
	return nil
}

// abort reports a load or prompt failure as a single top-level message.
func abort(console *internal.Console, logger *zap.Logger, err error) error {
	logger.Debug("aborting run", zap.Error(err))

	var fileErr *archive.FileError
	if errors.As(err, &fileErr) {
		console.Error(fmt.Sprintf("Could not read %s. Copy tweets.js from the data/ directory of your "+
			"Twitter archive into the current directory and try again. %v", fileErr.Path, fileErr.Err))
		return fmt.Errorf("%w: %w", errReported, err)
	}

	console.Error(fmt.Sprintf("It is possible Twitter has updated the JSON structure of tweets.js. "+
		"Please create an issue at %s so tweetdeleter can be updated. %v", issuesURL, err))
	return fmt.Errorf("%w: %w", errReported, err)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
