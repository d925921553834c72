package github

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gitpulse-cli/internal/core/domain"
)

const commitsPageOneJSON = `[
	{"sha":"aaa111","html_url":"https://github.com/octocat/hello-world/commit/aaa111",
	 "commit":{"message":"Add widget\n\nLonger body","author":{"name":"Mona Lisa","date":"2026-08-02T10:00:00Z"}},
	 "author":{"login":"octocat","avatar_url":"https://avatars.example/octocat"}},
	{"sha":"bbb222","html_url":"https://github.com/octocat/hello-world/commit/bbb222",
	 "commit":{"message":"Fix widget","author":{"name":"Mona Lisa","date":"2026-08-03T11:30:00Z"}}}
]`

const commitsPageTwoJSON = `[
	{"sha":"ccc333","html_url":"https://github.com/octocat/hello-world/commit/ccc333",
	 "commit":{"message":"Remove widget","author":{"name":"Mona Lisa","date":"2026-08-04T09:15:00Z"}}}
]`

func TestListCommitsWindow(t *testing.T) {
	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	t.Run("drains pagination and attaches repository identity", func(t *testing.T) {
		mux := newRecordingMux()
		var srvURL string
		mux.handle("/repos/octocat/hello-world/commits", func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("page") == "2" {
				respondJSON(w, commitsPageTwoJSON)
				return
			}
			w.Header().Set("Link", fmt.Sprintf(
				`<%s/repos/octocat/hello-world/commits?page=2>; rel="next"`, srvURL))
			respondJSON(w, commitsPageOneJSON)
		})

		svc, srv := newTestService(t, mux, Options{})
		srvURL = srv.URL

		commits, err := svc.ListCommitsWindow(
			context.Background(), "octocat", "hello-world", since, until, "")

		require.NoError(t, err)
		require.Len(t, commits, 3)
		for _, c := range commits {
			assert.Equal(t, "octocat/hello-world", c.Repository)
		}
		assert.Equal(t, "aaa111", commits[0].SHA)
		assert.Equal(t, "Mona Lisa", commits[0].AuthorName)
		assert.Equal(t, "octocat", commits[0].AuthorLogin)
		assert.Equal(t, "https://avatars.example/octocat", commits[0].AuthorAvatarURL)
		assert.Equal(t, time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC), commits[0].AuthorDate.UTC())
		// bbb222 has no resolved GitHub account.
		assert.Empty(t, commits[1].AuthorLogin)
	})

	t.Run("passes window and author through to the API", func(t *testing.T) {
		mux := newRecordingMux()
		var gotQuery map[string]string
		mux.handle("/repos/octocat/hello-world/commits", func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			gotQuery = map[string]string{
				"since":  q.Get("since"),
				"until":  q.Get("until"),
				"author": q.Get("author"),
			}
			respondJSON(w, `[]`)
		})

		svc, _ := newTestService(t, mux, Options{})

		_, err := svc.ListCommitsWindow(
			context.Background(), "octocat", "hello-world", since, until, "octocat")

		require.NoError(t, err)
		assert.Equal(t, "2026-08-01T00:00:00Z", gotQuery["since"])
		assert.Equal(t, "2026-08-29T00:00:00Z", gotQuery["until"])
		assert.Equal(t, "octocat", gotQuery["author"])
	})

	t.Run("no commits is an empty list, not an error", func(t *testing.T) {
		mux := newRecordingMux()
		mux.handle("/repos/octocat/hello-world/commits", func(w http.ResponseWriter, _ *http.Request) {
			respondJSON(w, `[]`)
		})

		svc, _ := newTestService(t, mux, Options{})

		commits, err := svc.ListCommitsWindow(
			context.Background(), "octocat", "hello-world", since, until, "")

		require.NoError(t, err)
		assert.Empty(t, commits)
	})

	t.Run("failures are classified and carry the repository", func(t *testing.T) {
		mux := newRecordingMux()
		mux.handle("/repos/octocat/gone/commits", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
		})

		svc, _ := newTestService(t, mux, Options{})

		_, err := svc.ListCommitsWindow(
			context.Background(), "octocat", "gone", since, until, "")

		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		e, _ := AsError(err)
		assert.Equal(t, "octocat/gone", e.Context["repository"])
	})
}

func TestSortCommitsByDate(t *testing.T) {
	commits := []domain.Commit{
		{SHA: "old", AuthorDate: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)},
		{SHA: "new", AuthorDate: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)},
		{SHA: "mid", AuthorDate: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)},
	}

	SortCommitsByDate(commits)

	assert.Equal(t, "new", commits[0].SHA)
	assert.Equal(t, "mid", commits[1].SHA)
	assert.Equal(t, "old", commits[2].SHA)
}
