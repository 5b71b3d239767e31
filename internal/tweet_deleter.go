package internal

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"tweetdeleter/internal/archive"
	"tweetdeleter/internal/twitter"
)

// Remover performs the per-tweet API calls.
type Remover interface {
	DeleteTweet(ctx context.Context, id string) error
	Unretweet(ctx context.Context, id string) error
}

// Reporter shows run progress to the user.
type Reporter interface {
	Start(msg string)
	Stop(msg string)
	Success(msg string)
	Failure(msg string)
}

// Result tallies a run.
type Result struct {
	Deleted     int
	Unretweeted int
	Skipped     int
	Failed      int
}

// Total is the number of tweets visited.
func (r Result) Total() int {
	return r.Deleted + r.Unretweeted + r.Skipped + r.Failed
}

// TweetDeleter removes every archived tweet created on or before the cutoff
type TweetDeleter struct {
	remover  Remover
	reporter Reporter
	cutoff   time.Time
	logger   *zap.Logger
}

type TweetDeleterOptions struct {
	Remover  Remover
	Reporter Reporter
	Cutoff   time.Time
	Logger   *zap.Logger
}

// NewTweetDeleter creates a new TweetDeleter object
func NewTweetDeleter(opts TweetDeleterOptions) (*TweetDeleter, error) {
	if opts.Remover == nil {
		return nil, fmt.Errorf("remover is required")
	}
	if opts.Reporter == nil {
		return nil, fmt.Errorf("reporter is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TweetDeleter{
		remover:  opts.Remover,
		reporter: opts.Reporter,
		cutoff:   opts.Cutoff,
		logger:   logger,
	}, nil
}

// Run visits every tweet once, in archive order. A failed call is reported
// and the run moves on to the next tweet.
func (t *TweetDeleter) Run(ctx context.Context, tweets []archive.Tweet) Result {
	var res Result

	t.logger.Info("commencing deleting tweets...",
		zap.Int("tweets", len(tweets)), zap.Time("cutoff", t.cutoff))

	t.reporter.Start("💥 Deleting tweets")
	for _, tweet := range tweets {
		if tweet.Created.After(t.cutoff) {
			res.Skipped++
			continue
		}

		if tweet.IsRetweet() {
			if t.unretweet(ctx, tweet) {
				res.Unretweeted++
			} else {
				res.Failed++
			}
			continue
		}

		if t.delete(ctx, tweet) {
			res.Deleted++
		} else {
			res.Failed++
		}
	}
	t.reporter.Stop("done 💥")

	t.logger.Info("finished deleting tweets",
		zap.Int("deleted", res.Deleted),
		zap.Int("unretweeted", res.Unretweeted),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))

	return res
}

func (t *TweetDeleter) unretweet(ctx context.Context, tweet archive.Tweet) bool {
	t.logger.Debug("unretweeting", zap.String("tweetID", tweet.ID))
	if err := t.remover.Unretweet(ctx, tweet.ID); err != nil {
		t.logger.Warn("unretweet failed", zap.String("tweetID", tweet.ID), zap.Error(err))
		t.reporter.Failure(fmt.Sprintf("There was an issue trying to unretweet tweet %s, %s",
			tweet.ID, twitter.Serialize(err)))
		return false
	}
	t.reporter.Success(fmt.Sprintf("Successfully unretweeted tweet %s", tweet.ID))
	return true
}

func (t *TweetDeleter) delete(ctx context.Context, tweet archive.Tweet) bool {
	t.logger.Debug("deleting", zap.String("tweetID", tweet.ID))
	if err := t.remover.DeleteTweet(ctx, tweet.ID); err != nil {
		t.logger.Warn("delete failed", zap.String("tweetID", tweet.ID), zap.Error(err))
		t.reporter.Failure(fmt.Sprintf("There was an issue trying to delete tweet %s, %s",
			tweet.ID, twitter.Serialize(err)))
		return false
	}
	t.reporter.Success(fmt.Sprintf("Successfully deleted tweet %s", tweet.ID))
	return true
}
