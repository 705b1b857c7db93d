package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/luk14236/food-advice-agent/models"
)

const askSystemPrompt = `You are AskBot, a strict parser for favorite foods.
Input: a short free-text list of dishes.
Task:
1) If the input is not foods (e.g., places, drinks, jokes), return:
   {"error":"Invalid answer. Provide only food dishes."}
2) Otherwise, extract EXACTLY 3 foods.
3) For each, output:
   - name (string)
   - possible_ingredients (array of 4-10 strings, lowercase, generic/comma-free)
   - diet (enum: "vegetarian" | "vegan" | "normal") — classify typical version.
Return ONLY valid JSON, no commentary.
`

const askSchemaHint = `Return this shape:
{
  "favorite_foods": [
    {
      "name": "string",
      "possible_ingredients": ["string", "..."],
      "diet": "vegetarian|vegan|normal"
    },
    { ... (total 3) }
  ]
}`

// FavoriteFoodEntry is one parsed dish before it is tagged with a user id
// and persisted.
type FavoriteFoodEntry struct {
	Name                string      `json:"name"`
	PossibleIngredients []string    `json:"possible_ingredients"`
	Diet                models.Diet `json:"diet"`
}

type favoriteFoodsPayload struct {
	FavoriteFoods []FavoriteFoodEntry `json:"favorite_foods"`
	Error         string              `json:"error,omitempty"`
}

// AskService turns a "Dish1; Dish2; Dish3" string into three structured
// entries via the LLM, then validates and normalizes the result locally.
type AskService struct {
	llm ChatClient
}

func NewAskService(llm ChatClient) *AskService {
	return &AskService{llm: llm}
}

// splitDishes enforces the three-segment contract before any LLM call.
func splitDishes(answer string) ([]string, error) {
	parts := strings.Split(answer, ";")
	dishes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			dishes = append(dishes, p)
		}
	}
	if len(dishes) != 3 {
		return nil, fmt.Errorf("%w: expected exactly 3 dishes, got %d", ErrParse, len(dishes))
	}
	return dishes, nil
}

// ParseAnswer returns exactly three validated entries or fails with ErrParse.
func (s *AskService) ParseAnswer(ctx context.Context, answer string) ([]FavoriteFoodEntry, error) {
	answer = strings.TrimSpace(answer)
	if _, err := splitDishes(answer); err != nil {
		return nil, err
	}

	// Temperature 0: parsing must be as deterministic as the model allows.
	content, err := s.llm.Chat(ctx, askSystemPrompt, "Input:\n"+answer+"\n\n"+askSchemaHint, 0)
	if err != nil {
		return nil, err
	}

	var payload favoriteFoodsPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &payload); err != nil {
		return nil, fmt.Errorf("%w: parser did not produce valid JSON: %v", ErrParse, err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("%w: %s", ErrParse, payload.Error)
	}
	if len(payload.FavoriteFoods) != 3 {
		return nil, fmt.Errorf("%w: expected 3 foods, parser returned %d", ErrParse, len(payload.FavoriteFoods))
	}

	for i := range payload.FavoriteFoods {
		e := &payload.FavoriteFoods[i]
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			return nil, fmt.Errorf("%w: food %d has an empty name", ErrParse, i+1)
		}
		if len(e.PossibleIngredients) == 0 {
			return nil, fmt.Errorf("%w: food %q has no ingredients", ErrParse, e.Name)
		}
		// Anything outside the enum is coerced by the rule-based classifier
		// so the store's CHECK constraint never fires.
		e.Diet = models.Diet(strings.ToLower(strings.TrimSpace(string(e.Diet))))
		if !e.Diet.Valid() {
			e.Diet = ClassifyDiet(e.Name, e.PossibleIngredients)
		}
	}
	return payload.FavoriteFoods, nil
}
