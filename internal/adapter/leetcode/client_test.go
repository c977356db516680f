package leetcode

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"problemspec/internal/domain/model"
)

func serveQuestion(t *testing.T, question any) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload struct {
			Query     string            `json:"query"`
			Variables map[string]string `json:"variables"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "two-sum", payload.Variables["titleSlug"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"question": question}})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Load(t *testing.T) {
	srv := serveQuestion(t, map[string]any{
		"questionFrontendId": "1",
		"title":              "Two Sum",
		"titleSlug":          "two-sum",
		"difficulty":         "Easy",
		"content":            "<p>Given an array of integers <code>nums</code>.</p><p>Return indices.</p>",
		"metaData":           `{"name":"twoSum","params":[{"name":"nums","type":"integer[]"},{"name":"target","type":"integer"}],"return":{"type":"integer[]","size":2}}`,
	})

	c := New("two-sum", time.Second, nil, WithEndpoint(srv.URL))
	def, err := c.Load(context.Background())
	require.NoError(t, err)

	p := def.Problem
	assert.Equal(t, "Two Sum", p.Title())
	assert.Equal(t, model.DifficultyEasy, p.Difficulty())
	assert.Equal(t, "twoSum", p.FunctionName())
	assert.Equal(t, "Given an array of integers nums.\n\nReturn indices.", p.Description())
	assert.Equal(t, []model.Parameter{
		{Name: "nums", Type: "std::vector<int>"},
		{Name: "target", Type: "int"},
	}, p.Parameters())
	assert.Equal(t, "std::vector<int>", def.ReturnType)
	assert.Equal(t, "https://leetcode.com/problems/two-sum/", def.Source)
}

func TestClient_Load_Errors(t *testing.T) {
	t.Run("question missing", func(t *testing.T) {
		srv := serveQuestion(t, nil)
		_, err := New("two-sum", time.Second, nil, WithEndpoint(srv.URL)).Load(context.Background())
		assert.ErrorContains(t, err, `problem "two-sum" not found`)
	})

	t.Run("bad metadata", func(t *testing.T) {
		srv := serveQuestion(t, map[string]any{"titleSlug": "two-sum", "metaData": "not json"})
		_, err := New("two-sum", time.Second, nil, WithEndpoint(srv.URL)).Load(context.Background())
		assert.ErrorContains(t, err, "decode metadata")
	})

	t.Run("invalid signature", func(t *testing.T) {
		srv := serveQuestion(t, map[string]any{
			"titleSlug": "two-sum",
			"metaData":  `{"name":"","params":[]}`,
		})
		_, err := New("two-sum", time.Second, nil, WithEndpoint(srv.URL)).Load(context.Background())
		assert.ErrorIs(t, err, model.ErrInvalidProblem)
	})

	t.Run("http status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "slow down", http.StatusTooManyRequests)
		}))
		t.Cleanup(srv.Close)
		_, err := New("two-sum", time.Second, nil, WithEndpoint(srv.URL)).Load(context.Background())
		assert.ErrorContains(t, err, "unexpected status 429")
	})

	t.Run("empty slug", func(t *testing.T) {
		_, err := New("", time.Second, nil).Load(context.Background())
		assert.Error(t, err)
	})
}

func TestCanonicalType(t *testing.T) {
	assert.Equal(t, "std::vector<std::string>", canonicalType("string[]"))
	assert.Equal(t, "long long", canonicalType("long"))
	assert.Equal(t, "", canonicalType("void"))
	assert.Equal(t, "TreeNode", canonicalType("TreeNode"))
}
