package order

import "strings"

// FilterBySearch is the admin console's order search: a case-insensitive
// substring match over order id, customer name, and hostel. An order matches
// when ANY of the three fields contains the query; an empty query keeps the
// list unchanged.
func FilterBySearch(orders []*Order, search string) []*Order {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return orders
	}

	result := make([]*Order, 0, len(orders))
	for _, order := range orders {
		if strings.Contains(strings.ToLower(order.OrderID.String()), search) ||
			strings.Contains(strings.ToLower(order.Name), search) ||
			strings.Contains(strings.ToLower(order.Hostel), search) {
			result = append(result, order)
		}
	}

	return result
}
