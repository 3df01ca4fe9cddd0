package groq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

type GenerateRequest struct {
	JobTitle    string
	Description string
	Skills      []string
	RoundType   string
	Objective   string
	Count       int
}

type GeneratedQuestion struct {
	Question string `json:"question"`
}

const generateSystemMsg = `You are an experienced technical interviewer. Write interview questions for the role and round described by the user.

Rules:
- Output ONLY a valid JSON array. No prefix, suffix, markdown or backticks.
- Each item is an object with a single "question" string field.
- Return exactly the number of questions requested.
- Questions must be specific to the listed skills and the round objective.
- Do not number the questions.
`

func (c *Client) GenerateQuestions(ctx context.Context, req GenerateRequest) ([]GeneratedQuestion, error) {
	if req.Count <= 0 {
		return []GeneratedQuestion{}, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Role: %s\n", req.JobTitle)
	if req.RoundType != "" {
		fmt.Fprintf(&sb, "Round type: %s\n", req.RoundType)
	}
	if req.Objective != "" {
		fmt.Fprintf(&sb, "Round objective: %s\n", req.Objective)
	}
	if len(req.Skills) > 0 {
		fmt.Fprintf(&sb, "Skills: %s\n", strings.Join(req.Skills, ", "))
	}
	fmt.Fprintf(&sb, "Number of questions: %d\n", req.Count)
	if req.Description != "" {
		fmt.Fprintf(&sb, "\nJob description:\n%s\n", req.Description)
	}

	userPrompt := sb.String()
	if len(userPrompt) > 10000 {
		userPrompt = userPrompt[:10000]
	}

	respStr, err := c.Chat(ctx, ChatRequest{
		Messages: []map[string]string{
			{"role": "system", "content": generateSystemMsg},
			{"role": "user", "content": userPrompt},
		},
		MaxTokens:   2000,
		Temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}

	var generated []GeneratedQuestion
	if err := json.Unmarshal([]byte(stripFence(respStr)), &generated); err != nil {
		return nil, fmt.Errorf("failed to parse AI response as JSON array of questions: %w; raw response: %q", err, respStr)
	}

	out := make([]GeneratedQuestion, 0, len(generated))
	for _, q := range generated {
		if text := strings.TrimSpace(q.Question); text != "" {
			out = append(out, GeneratedQuestion{Question: text})
		}
		if len(out) == req.Count {
			break
		}
	}
	return out, nil
}

// stripFence removes a markdown code fence the model sometimes adds anyway.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
