package services

import (
	"strings"

	"github.com/luk14236/food-advice-agent/models"
)

// Keywords that make a dish "normal" (meat or fish in the typical version).
var meatKeywords = []string{
	"chicken", "beef", "pork", "lamb", "veal", "duck", "turkey", "goat",
	"bacon", "ham", "sausage", "chorizo", "pepperoni", "meat", "mince",
	"fish", "salmon", "tuna", "cod", "anchovy", "sardine", "seafood",
	"shrimp", "prawn", "crab", "lobster", "squid", "octopus", "oyster",
	"mussel", "clam", "gelatin", "lard", "broth", "stock",
}

// Animal products short of meat; these cap the dish at "vegetarian".
var animalKeywords = []string{
	"cheese", "milk", "butter", "cream", "yogurt", "yoghurt", "ghee",
	"paneer", "mozzarella", "parmesan", "feta", "ricotta", "egg",
	"mayonnaise", "honey", "custard",
}

// ClassifyDiet is the deterministic fallback for when the parser's reply
// carries a diet outside the three-value enum: meat or fish keyword means
// normal, any other animal product means vegetarian, otherwise vegan.
func ClassifyDiet(name string, ingredients []string) models.Diet {
	text := strings.ToLower(name + " " + strings.Join(ingredients, " "))
	if containsAny(text, meatKeywords) {
		return models.DietNormal
	}
	if containsAny(text, animalKeywords) {
		return models.DietVegetarian
	}
	return models.DietVegan
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
