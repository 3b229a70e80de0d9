package models

import (
	"encoding/json"
	"fmt"
)

// PriceRule is one tier of a product's bundle pricing. Two kinds exist:
// QuantityRule ("3 for 250") and CustomLabelRule ("12-pack box for 200",
// always one sales unit). Rules are re-parsed from the product's rule text on
// every read; parsed values are immutable.
type PriceRule interface {
	Quantity() int
	Price() int
	Label() string
	Custom() bool
}

type QuantityRule struct {
	Qty  int
	Cost int
}

func (r QuantityRule) Quantity() int { return r.Qty }
func (r QuantityRule) Price() int    { return r.Cost }
func (r QuantityRule) Label() string { return fmt.Sprintf("%d個", r.Qty) }
func (r QuantityRule) Custom() bool  { return false }

type CustomLabelRule struct {
	Text string
	Cost int
}

// A custom label always sells as one unit; the label only describes the
// packaging ("6入" names the contents, not the purchased quantity).
func (r CustomLabelRule) Quantity() int { return 1 }
func (r CustomLabelRule) Price() int    { return r.Cost }
func (r CustomLabelRule) Label() string { return r.Text }
func (r CustomLabelRule) Custom() bool  { return true }

type priceRuleJSON struct {
	Qty           int    `json:"qty"`
	Price         int    `json:"price"`
	Label         string `json:"label"`
	IsCustomLabel bool   `json:"isCustomLabel"`
}

func (r QuantityRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(priceRuleJSON{Qty: r.Qty, Price: r.Cost, Label: r.Label(), IsCustomLabel: false})
}

func (r CustomLabelRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(priceRuleJSON{Qty: 1, Price: r.Cost, Label: r.Text, IsCustomLabel: true})
}
