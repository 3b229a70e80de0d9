package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yeremiapane/foodtruck-order-app/models"
)

// itemsDetail wire format: one "name x qty" entry per line, with "/" accepted
// as an alternative separator for older clients.
var itemEntryRe = regexp.MustCompile(`(.+?)\s*x(\d+)`)

func ParseItems(itemsDetail string) []models.OrderLineItem {
	var items []models.OrderLineItem
	for _, part := range strings.FieldsFunc(itemsDetail, func(r rune) bool {
		return r == '\n' || r == '/'
	}) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := itemEntryRe.FindStringSubmatch(part)
		if m == nil {
			continue
		}
		qty, _ := strconv.Atoi(m[2])
		items = append(items, models.OrderLineItem{
			Name: strings.TrimSpace(m[1]),
			Qty:  qty,
		})
	}
	return items
}
