package services

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/yeremiapane/foodtruck-order-app/models"
)

// Price rule strings come straight from operator-maintained product rows, so
// parsing never fails: malformed fragments are dropped and an empty or blank
// string yields no rules.
//
// Supported forms, comma / 頓號 separated:
//
//	"1:90,2:170,3:250"          quantity tiers
//	"1颗$90、2颗$170、3颗$250"   quantity tiers with unit words
//	"6入袋裝:100,12入盒裝:200"   custom packaging labels (one sales unit each)
var (
	ruleSplitRe   = regexp.MustCompile(`[,，、]`)
	customRuleRe  = regexp.MustCompile(`^(.+?)[:：]\s*(\d+)$`)
	numericOnlyRe = regexp.MustCompile(`^\d+$`)
	qtyRuleRe     = regexp.MustCompile(`(\d+)\s*(?:[:：颗條条份个個盒袋入]\s*\$?|[:：]\s*)\s*(\d+)`)
)

// ParsePriceRules turns a free-text rule string into an ordered rule list.
// Custom-label rules sort by ascending price, quantity rules by ascending
// quantity; the two kinds keep their own sort key, matching how the rules are
// displayed.
func ParsePriceRules(ruleText string) []models.PriceRule {
	str := strings.TrimSpace(ruleText)
	if str == "" {
		return nil
	}

	var rules []models.PriceRule
	for _, part := range ruleSplitRe.Split(str, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if m := customRuleRe.FindStringSubmatch(part); m != nil {
			label := strings.TrimSpace(m[1])
			price, _ := strconv.Atoi(m[2])
			if !numericOnlyRe.MatchString(label) && price > 0 {
				rules = append(rules, models.CustomLabelRule{Text: label, Cost: price})
				continue
			}
		}

		if m := qtyRuleRe.FindStringSubmatch(part); m != nil {
			qty, _ := strconv.Atoi(m[1])
			price, _ := strconv.Atoi(m[2])
			if qty > 0 && price > 0 {
				rules = append(rules, models.QuantityRule{Qty: qty, Cost: price})
			}
		}
	}

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Custom() && rules[j].Custom() {
			return rules[i].Price() < rules[j].Price()
		}
		return rules[i].Quantity() < rules[j].Quantity()
	})

	return rules
}

// OptimalPrice computes the cheapest total for the requested quantity, mixing
// bundle rules with base-priced singles. Quantities must sum exactly, so a
// customer buying 7 units can get e.g. a 3-bundle, a 2-bundle and two singles.
// Runs in O(quantity × rules) time.
func OptimalPrice(quantity, basePrice int, rules []models.PriceRule) int {
	if quantity <= 0 {
		return 0
	}
	if len(rules) == 0 {
		return quantity * basePrice
	}

	dp := make([]int, quantity+1)
	for i := 1; i <= quantity; i++ {
		dp[i] = dp[i-1] + basePrice
		for _, rule := range rules {
			if rule.Quantity() <= i {
				if cost := dp[i-rule.Quantity()] + rule.Price(); cost < dp[i] {
					dp[i] = cost
				}
			}
		}
	}
	return dp[quantity]
}
