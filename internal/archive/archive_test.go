package archive

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleArchive = `window.YTD.tweets.part0 = [
  {
    "tweet": {
      "id": "1001",
      "id_str": "1001",
      "full_text": "hello world",
      "created_at": "Tue Dec 31 18:30:00 +0000 2019"
    }
  },
  {
    "tweet": {
      "id_str": "1002",
      "full_text": "RT @someone: a shared tweet",
      "created_at": "Wed Jan 01 09:00:00 +0000 2020"
    }
  },
  {
    "tweet": {
      "id": "1003",
      "full_text": "quoted share",
      "created_at": "Thu Jan 02 10:00:00 +0000 2020",
      "retweet_status": {"id": "42"}
    }
  }
]`

func writeArchive(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("parses prefixed export in order", func(t *testing.T) {
		tweets, err := Load(writeArchive(t, sampleArchive))
		require.NoError(t, err)
		require.Len(t, tweets, 3)

		assert.Equal(t, "1001", tweets[0].ID)
		assert.Equal(t, "1002", tweets[1].ID, "falls back to id_str")
		assert.Equal(t, "1003", tweets[2].ID)

		assert.Equal(t, time.Date(2019, 12, 31, 18, 30, 0, 0, time.UTC), tweets[0].Created.UTC())
		assert.Equal(t, "hello world", tweets[0].FullText)
	})

	t.Run("accepts content without prefix", func(t *testing.T) {
		tweets, err := Load(writeArchive(t, `[{"tweet":{"id":"1","full_text":"x","created_at":"2020-01-01T00:00:00Z"}}]`))
		require.NoError(t, err)
		require.Len(t, tweets, 1)
		assert.Equal(t, 2020, tweets[0].Created.Year())
	})

	t.Run("strips byte order mark", func(t *testing.T) {
		tweets, err := Load(writeArchive(t, "\xEF\xBB\xBF"+sampleArchive))
		require.NoError(t, err)
		assert.Len(t, tweets, 3)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.js"))
		require.Error(t, err)

		var fileErr *FileError
		require.True(t, errors.As(err, &fileErr))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := Load(writeArchive(t, `window.YTD.tweets.part0 = [{"tweet": `))
		require.Error(t, err)

		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("unexpected prefix", func(t *testing.T) {
		_, err := Load(writeArchive(t, `window.YTD.tweet.part0 = []`))
		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr))
	})

	t.Run("missing tweet object", func(t *testing.T) {
		_, err := Load(writeArchive(t, `[{"status": {}}]`))
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Contains(t, err.Error(), "missing tweet object")
	})

	t.Run("bad created_at", func(t *testing.T) {
		_, err := Load(writeArchive(t, `[{"tweet":{"id":"7","full_text":"x","created_at":"yesterday"}}]`))
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Contains(t, err.Error(), "tweet 7")
	})
}

func TestTweet_IsRetweet(t *testing.T) {
	tests := []struct {
		name  string
		tweet Tweet
		want  bool
	}{
		{"original", Tweet{FullText: "just a thought"}, false},
		{"rt prefix", Tweet{FullText: "RT @a: hi"}, true},
		{"rt prefix is case sensitive", Tweet{FullText: "rt this"}, false},
		{"rt not at start", Tweet{FullText: "please RT"}, false},
		{"retweet_status object", Tweet{FullText: "hi", RetweetStatus: []byte(`{"id":"1"}`)}, true},
		{"retweeted_status object", Tweet{FullText: "hi", RetweetedStatus: []byte(`{"id":"1"}`)}, true},
		{"retweet_status null", Tweet{FullText: "hi", RetweetStatus: []byte(`null`)}, false},
		{"retweet_status false", Tweet{FullText: "hi", RetweetStatus: []byte(`false`)}, false},
		{"both signals", Tweet{FullText: "RT x", RetweetStatus: []byte(`true`)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tweet.IsRetweet())
		})
	}
}
