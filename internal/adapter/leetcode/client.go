package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"leettrack/internal/domain/model"
	"leettrack/internal/domain/ports"
)

const questionQuery = `query questionData($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionFrontendId
    title
    titleSlug
    content
    difficulty
    exampleTestcases
    topicTags { name }
    codeSnippets { lang langSlug code }
  }
}`

// Client implements ProblemProvider using LeetCode public endpoints.
type Client struct {
	httpClient    *http.Client
	logger        ports.Logger
	graphqlURL    string
	problemsetURL string
}

var _ ports.ProblemProvider = (*Client)(nil)

// New creates a new LeetCode client.
func New(graphqlURL, problemsetURL string, timeout time.Duration, logger ports.Logger) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		logger:        logger,
		graphqlURL:    graphqlURL,
		problemsetURL: problemsetURL,
	}
}

// FetchBySlug retrieves the full problem payload for a slug via one GraphQL query.
func (c *Client) FetchBySlug(ctx context.Context, slug string) (*model.Problem, error) {
	payload := map[string]any{
		"query":     questionQuery,
		"variables": map[string]string{"titleSlug": slug},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: perform request: %v", model.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status %d: %s", model.ErrTransport, resp.StatusCode, string(data))
	}

	var gqlResp struct {
		Data struct {
			Question *struct {
				QuestionFrontendID string `json:"questionFrontendId"`
				Title              string `json:"title"`
				TitleSlug          string `json:"titleSlug"`
				Content            string `json:"content"`
				Difficulty         string `json:"difficulty"`
				ExampleTestcases   string `json:"exampleTestcases"`
				TopicTags          []struct {
					Name string `json:"name"`
				} `json:"topicTags"`
				CodeSnippets []struct {
					Lang     string `json:"lang"`
					LangSlug string `json:"langSlug"`
					Code     string `json:"code"`
				} `json:"codeSnippets"`
			} `json:"question"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", model.ErrTransport, err)
	}

	if len(gqlResp.Errors) > 0 {
		c.logger.Info(ctx, "graphql reported errors", "slug", slug, "message", gqlResp.Errors[0].Message)
	}

	q := gqlResp.Data.Question
	if q == nil || q.TitleSlug == "" {
		return nil, fmt.Errorf("%w: slug %q", model.ErrNotFound, slug)
	}

	id, err := strconv.Atoi(q.QuestionFrontendID)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("%w: bad question id %q for slug %q", model.ErrTransport, q.QuestionFrontendID, slug)
	}

	difficulty := model.Difficulty(q.Difficulty)
	if q.Title == "" || !difficulty.Valid() {
		return nil, fmt.Errorf("%w: incomplete payload for slug %q", model.ErrTransport, slug)
	}

	tags := make([]string, 0, len(q.TopicTags))
	for _, tag := range q.TopicTags {
		tags = append(tags, tag.Name)
	}

	snippet := ""
	for _, s := range q.CodeSnippets {
		if s.LangSlug == "golang" {
			snippet = s.Code
			break
		}
	}

	description, examples, constraints := splitSections(htmlToText(q.Content))
	if examples == "" && q.ExampleTestcases != "" {
		examples = strings.TrimSpace(q.ExampleTestcases)
	}

	return &model.Problem{
		ID:          id,
		Slug:        q.TitleSlug,
		Title:       q.Title,
		Difficulty:  difficulty,
		Tags:        tags,
		Description: description,
		Examples:    examples,
		Constraints: constraints,
		Link:        problemLink(q.TitleSlug),
		CodeSnippet: snippet,
	}, nil
}

// Problemset retrieves the global problem listing.
func (c *Client) Problemset(ctx context.Context) ([]model.CatalogEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.problemsetURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: perform request: %v", model.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status %d: %s", model.ErrTransport, resp.StatusCode, string(data))
	}

	var payload struct {
		StatStatusPairs []struct {
			Stat struct {
				FrontendQuestionID int    `json:"frontend_question_id"`
				QuestionTitle      string `json:"question__title"`
				QuestionTitleSlug  string `json:"question__title_slug"`
			} `json:"stat"`
			Difficulty struct {
				Level int `json:"level"`
			} `json:"difficulty"`
			PaidOnly bool `json:"paid_only"`
		} `json:"stat_status_pairs"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", model.ErrTransport, err)
	}

	entries := make([]model.CatalogEntry, 0, len(payload.StatStatusPairs))
	for _, item := range payload.StatStatusPairs {
		if item.Stat.QuestionTitleSlug == "" || item.Stat.FrontendQuestionID <= 0 {
			continue
		}
		entries = append(entries, model.CatalogEntry{
			ID:         item.Stat.FrontendQuestionID,
			Slug:       item.Stat.QuestionTitleSlug,
			Title:      item.Stat.QuestionTitle,
			Difficulty: difficultyFromLevel(item.Difficulty.Level),
			PaidOnly:   item.PaidOnly,
		})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: empty problemset listing", model.ErrTransport)
	}

	return entries, nil
}

func difficultyFromLevel(level int) model.Difficulty {
	switch level {
	case 1:
		return model.DifficultyEasy
	case 2:
		return model.DifficultyMedium
	case 3:
		return model.DifficultyHard
	default:
		return ""
	}
}

func problemLink(slug string) string {
	return fmt.Sprintf("https://leetcode.com/problems/%s/", slug)
}

// splitSections carves the flattened problem text into description, examples
// and constraints at the markers LeetCode uses in its content HTML.
func splitSections(text string) (description, examples, constraints string) {
	description = text

	if i := strings.Index(description, "Constraints:"); i >= 0 {
		constraints = strings.TrimSpace(strings.TrimPrefix(description[i:], "Constraints:"))
		description = description[:i]
	}
	if i := strings.Index(description, "Example 1:"); i >= 0 {
		examples = strings.TrimSpace(description[i:])
		description = description[:i]
	} else if i := strings.Index(description, "Example:"); i >= 0 {
		examples = strings.TrimSpace(description[i:])
		description = description[:i]
	}

	return strings.TrimSpace(description), examples, constraints
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
	return collapseBlankLines(builder.String())
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "br" || node.Data == "p" || node.Data == "li" || node.Data == "pre" {
			builder.WriteRune('\n')
		}
		if node.Data == "li" {
			builder.WriteString("- ")
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li" || node.Data == "pre") {
		builder.WriteRune('\n')
	}
}

func collapseBlankLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > 1 {
				continue
			}
			line = ""
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
