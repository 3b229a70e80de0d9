package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/foodtruck-order-app/models"
)

func TestParsePriceRulesQuantityTiers(t *testing.T) {
	rules := ParsePriceRules("1:90,2:170,3:250")
	require.Len(t, rules, 3)

	wantQty := []int{1, 2, 3}
	wantPrice := []int{90, 170, 250}
	for i, rule := range rules {
		assert.Equal(t, wantQty[i], rule.Quantity())
		assert.Equal(t, wantPrice[i], rule.Price())
		assert.False(t, rule.Custom())
	}
	assert.Equal(t, "2個", rules[1].Label())
}

func TestParsePriceRulesUnitWords(t *testing.T) {
	rules := ParsePriceRules("1颗$90、2颗$170、3颗$250")
	require.Len(t, rules, 3)
	assert.Equal(t, 1, rules[0].Quantity())
	assert.Equal(t, 90, rules[0].Price())
	assert.Equal(t, 3, rules[2].Quantity())
	assert.Equal(t, 250, rules[2].Price())
}

func TestParsePriceRulesCustomLabels(t *testing.T) {
	rules := ParsePriceRules("12入盒裝:200,6入袋裝:100")
	require.Len(t, rules, 2)

	// Custom labels sort by ascending price and always sell as one unit.
	assert.Equal(t, "6入袋裝", rules[0].Label())
	assert.Equal(t, 100, rules[0].Price())
	assert.Equal(t, 1, rules[0].Quantity())
	assert.True(t, rules[0].Custom())

	assert.Equal(t, "12入盒裝", rules[1].Label())
	assert.Equal(t, 200, rules[1].Price())
}

func TestParsePriceRulesEmptyAndBlank(t *testing.T) {
	assert.Empty(t, ParsePriceRules(""))
	assert.Empty(t, ParsePriceRules("   "))
}

func TestParsePriceRulesSkipsMalformedFragments(t *testing.T) {
	rules := ParsePriceRules("無效片段,2:170,,also bad")
	require.Len(t, rules, 1)
	assert.Equal(t, 2, rules[0].Quantity())
	assert.Equal(t, 170, rules[0].Price())
}

func TestParsePriceRulesDropsZeroPrices(t *testing.T) {
	assert.Empty(t, ParsePriceRules("2:0"))
	assert.Empty(t, ParsePriceRules("袋裝:0"))
}

func TestOptimalPriceZeroQuantity(t *testing.T) {
	assert.Equal(t, 0, OptimalPrice(0, 30, nil))
	assert.Equal(t, 0, OptimalPrice(-1, 30, []models.PriceRule{models.QuantityRule{Qty: 2, Cost: 50}}))
}

func TestOptimalPriceNoRules(t *testing.T) {
	assert.Equal(t, 150, OptimalPrice(5, 30, nil))
}

func TestOptimalPriceMixesBundlesAndSingles(t *testing.T) {
	rules := []models.PriceRule{models.QuantityRule{Qty: 2, Cost: 50}}
	// Two 2-bundles plus one base unit: 50+50+30.
	assert.Equal(t, 130, OptimalPrice(5, 30, rules))
}

func TestOptimalPriceComposesIrregularBundles(t *testing.T) {
	rules := ParsePriceRules("2:170,3:250")
	// 7 units: 3-bundle + 2-bundle + 2 singles at 90 = 250+170+180.
	assert.Equal(t, 600, OptimalPrice(7, 90, rules))
}

func TestOptimalPriceIgnoresOversizedRules(t *testing.T) {
	rules := []models.PriceRule{models.QuantityRule{Qty: 5, Cost: 100}}
	assert.Equal(t, 30, OptimalPrice(1, 30, rules))
}

func TestOptimalPriceCustomLabelCountsAsOneUnit(t *testing.T) {
	rules := []models.PriceRule{models.CustomLabelRule{Text: "袋裝", Cost: 40}}
	assert.Equal(t, 120, OptimalPrice(3, 50, rules))
}

func TestOptimalPriceNeverExceedsBaseTotal(t *testing.T) {
	rules := ParsePriceRules("2:170,3:250,6入袋裝:80")
	for qty := 0; qty <= 20; qty++ {
		assert.LessOrEqual(t, OptimalPrice(qty, 90, rules), qty*90, "qty=%d", qty)
	}
}
