package services

import (
	"context"
	"fmt"
	"strings"
)

const answerSystemPrompt = `You are AnswerBot. You read a question about favorite foods and reply ONLY with a list of exactly three dish names (world cuisines), optionally with 1 short descriptive clause for each. Avoid drinks. No commentary.`

const answerUserHint = `Examples of valid outputs:
- "Feijoada — Brazilian stew; Sushi — assorted nigiri and maki; Bibimbap — Korean rice bowl"
- "Biryani; Paella; Moussaka"
Strictly three distinct dishes, preferably from different regions.
`

const defaultQuestion = "Tell me your three favorite foods."

// AnswerService asks the LLM for three dish names separated by "; ".
type AnswerService struct {
	llm ChatClient
}

func NewAnswerService(llm ChatClient) *AnswerService {
	return &AnswerService{llm: llm}
}

// GenerateAnswer returns the raw "Dish1; Dish2; Dish3" reply. A reply without
// at least two semicolons is treated as an upstream failure; one retry, then
// the iteration is given up.
func (s *AnswerService) GenerateAnswer(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		question = defaultQuestion
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		// Temperature nudges variety across simulation iterations.
		reply, err := s.llm.Chat(ctx, answerSystemPrompt, question+"\n"+answerUserHint, 0.9)
		if err != nil {
			lastErr = err
			continue
		}
		reply = strings.TrimSpace(reply)
		if strings.Count(reply, ";") >= 2 {
			return reply, nil
		}
		lastErr = fmt.Errorf("%w: expected three semicolon-separated dishes, got %q", ErrUpstreamService, reply)
	}
	return "", lastErr
}
