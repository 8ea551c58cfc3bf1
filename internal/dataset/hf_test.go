// internal/dataset/hf_test.go
package dataset

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHFSource_Articles(t *testing.T) {
	var gotQuery map[string]string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rows", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		_, _ = w.Write([]byte(`{"rows":[
			{"row_idx":4,"row":{"title":"a","content":"first"}},
			{"row_idx":5,"row":{"title":"b","content":"second"}}
		]}`))
	}))
	defer srv.Close()

	src := NewHFSource(HFOptions{BaseURL: srv.URL, Token: "tok"})
	got, err := src.Articles(context.Background(), 4, 2)
	require.NoError(t, err)
	assert.Equal(t, []Article{{Index: 4, Content: "first"}, {Index: 5, Content: "second"}}, got)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, map[string]string{
		"dataset": DefaultName,
		"config":  DefaultConfig,
		"split":   DefaultSplit,
		"offset":  "4",
		"length":  "2",
	}, gotQuery)
}

func TestHFSource_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not found"}`))
	}))
	defer srv.Close()

	_, err := NewHFSource(HFOptions{BaseURL: srv.URL}).Articles(context.Background(), 0, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

type staticSource []Article

func (s staticSource) Articles(_ context.Context, offset, count int) ([]Article, error) {
	var out []Article
	for _, a := range s {
		if a.Index >= offset && a.Index < offset+count {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestLoadBatch(t *testing.T) {
	src := staticSource{
		{0, "h0"}, {1, "h1"}, {2, "h2"}, {3, "t0"},
		{4, "h4"}, {5, "h5"}, {6, "h6"}, {7, "t1"},
	}
	b, err := LoadBatch(context.Background(), src, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"h4", "h5", "h6"}, b.History)
	assert.Equal(t, Article{Index: 7, Content: "t1"}, b.Test)

	b, err = LoadBatch(context.Background(), src, 2)
	require.NoError(t, err)
	assert.Empty(t, b.Test.Content)
}
