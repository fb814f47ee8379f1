package classify

import "strings"

// CategoryOther is the fall-through product category.
const CategoryOther = "Other"

type categoryRule struct {
	Label    string
	Keywords []string
}

// categoryRules v1. Order is load-bearing: the first rule with any keyword
// substring match wins, so earlier categories shadow later ones ("tin" in
// Kitchenware shadows "tin set" in Gift Sets, "gift" in Party & Gifts
// shadows nothing before it but captures "gift bag" descriptions).
var categoryRules = []categoryRule{
	{"Home Decor", []string{"metal", "wood", "frame", "sign", "plaque", "heart", "garland", "wreath", "wall", "hanging", "cushion"}},
	{"Kitchenware", []string{"mug", "cup", "plate", "bowl", "jar", "jug", "tin", "kitchen", "baking", "cake", "teapot", "cutlery"}},
	{"Fashion Accessories", []string{"mirror", "cosmetic", "purse", "wallet", "keyring", "scarf", "jewellery"}},
	{"Crafts & Stationery", []string{"craft", "felt", "notebook", "pencil", "pen", "stamp", "colouring", "paper", "card"}},
	{"Toys & Games", []string{"toy", "doll", "jigsaw", "game", "puzzle", "child", "kids"}},
	{"Party & Gifts", []string{"party", "gift bag", "gift", "wrapping", "ribbon", "balloon", "birthday"}},
	{"Gift Sets & Storage", []string{"lunch", "box set", "tin set", "food box", "snack box", "storage box"}},
	{"Seasonal Decorations", []string{"christmas", "easter", "halloween", "advent", "festive", "snow", "santa"}},
	{"Candles & Fragrance", []string{"candle", "incense", "aroma", "scent"}},
	{"Garden", []string{"garden", "planter", "flower pot", "watering can"}},
	{"Lighting", []string{"lamp", "light", "lantern", "torch"}},
}

// Category maps a free-text product description to its category label.
// Matching is case-insensitive substring containment against the ordered
// keyword table; no match (including empty input) yields CategoryOther.
func Category(description string) string {
	d := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(d, kw) {
				return rule.Label
			}
		}
	}
	return CategoryOther
}

// Categories lists the category labels in rule order, without the catch-all.
func Categories() []string {
	out := make([]string, len(categoryRules))
	for i, rule := range categoryRules {
		out[i] = rule.Label
	}
	return out
}
