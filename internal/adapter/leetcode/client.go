package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"problemspec/internal/domain/model"
	"problemspec/internal/domain/ports"
)

const graphQLEndpoint = "https://leetcode.com/graphql"

const questionQuery = `query questionData($titleSlug: String!) { question(titleSlug: $titleSlug) { questionFrontendId title titleSlug difficulty content metaData } }`

// Client implements ProblemSource using the public LeetCode GraphQL endpoint.
type Client struct {
	httpClient *http.Client
	endpoint   string
	slug       string
	logger     ports.Logger
}

var _ ports.ProblemSource = (*Client)(nil)

// Option customises a Client.
type Option func(*Client)

// WithEndpoint points the client at another GraphQL endpoint.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// New creates a client that loads the problem identified by slug.
func New(slug string, timeout time.Duration, logger ports.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   graphQLEndpoint,
		slug:       slug,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type metaData struct {
	Name   string `json:"name"`
	Params []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	} `json:"params"`
	Return struct {
		Type string `json:"type"`
	} `json:"return"`
}

// Load fetches the question and converts its signature metadata into a Definition.
func (c *Client) Load(ctx context.Context) (*model.Definition, error) {
	if c.slug == "" {
		return nil, fmt.Errorf("leetcode slug is empty")
	}

	body, err := json.Marshal(map[string]any{
		"query":     questionQuery,
		"variables": map[string]string{"titleSlug": c.slug},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var gqlResp struct {
		Data struct {
			Question *struct {
				QuestionFrontendID string `json:"questionFrontendId"`
				Title              string `json:"title"`
				TitleSlug          string `json:"titleSlug"`
				Difficulty         string `json:"difficulty"`
				Content            string `json:"content"`
				MetaData           string `json:"metaData"`
			} `json:"question"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	q := gqlResp.Data.Question
	if q == nil || q.TitleSlug == "" {
		return nil, fmt.Errorf("problem %q not found", c.slug)
	}

	var meta metaData
	if err := json.Unmarshal([]byte(q.MetaData), &meta); err != nil {
		return nil, fmt.Errorf("decode metadata for %q: %w", c.slug, err)
	}

	params := make([]model.Parameter, 0, len(meta.Params))
	for _, p := range meta.Params {
		params = append(params, model.Parameter{Name: p.Name, Type: canonicalType(p.Type)})
	}

	problem, err := model.NewProblem(
		q.Title,
		strings.TrimSpace(htmlToText(q.Content)),
		model.Difficulty(strings.ToLower(q.Difficulty)),
		meta.Name,
		params,
	)
	if err != nil {
		return nil, fmt.Errorf("build problem %q: %w", c.slug, err)
	}

	if c.logger != nil {
		c.logger.Info(ctx, "leetcode problem fetched", "slug", q.TitleSlug, "id", q.QuestionFrontendID)
	}

	return &model.Definition{
		Problem:    problem,
		ReturnType: canonicalType(meta.Return.Type),
		Source:     resolveLink(q.TitleSlug),
	}, nil
}

// leetcodeTypes maps LeetCode signature types onto the C++ spelling used for boilerplate.
var leetcodeTypes = map[string]string{
	"integer":      "int",
	"integer[]":    "std::vector<int>",
	"long":         "long long",
	"double":       "double",
	"double[]":     "std::vector<double>",
	"boolean":      "bool",
	"character":    "char",
	"string":       "std::string",
	"string[]":     "std::vector<std::string>",
	"void":         "",
	"list<int>":    "std::vector<int>",
	"list<string>": "std::vector<std::string>",
}

func canonicalType(t string) string {
	if mapped, ok := leetcodeTypes[strings.ToLower(strings.TrimSpace(t))]; ok {
		return mapped
	}
	return t
}

func resolveLink(slug string) string {
	return fmt.Sprintf("https://leetcode.com/problems/%s/", slug)
}

func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "br" || node.Data == "p" || node.Data == "li" {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li") {
		builder.WriteRune('\n')
	}
}
