package support

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/Vovarama1992/techstore-chat-bridge/internal/store"
)

var (
	orderIntent   = regexp.MustCompile(`(?i)(?:order|tracking|track).*?(ORD-\d+|\w+@\w+\.\w+)`)
	productIntent = regexp.MustCompile(`(?i)(?:product|item|buy|purchase|price).*?([a-zA-Z\s]+)`)
)

// shorter product fragments match too much to be useful
const minProductFragment = 3

type extractor struct {
	store store.Store
}

// Facts returns up to two fact strings (order first, then product).
// Lookup misses and store failures yield no fact.
func (e *extractor) Facts(ctx context.Context, text string) []string {
	var facts []string

	if f := e.orderFact(ctx, text); f != "" {
		facts = append(facts, f)
	}
	if f := e.productFact(ctx, text); f != "" {
		facts = append(facts, f)
	}

	return facts
}

func (e *extractor) orderFact(ctx context.Context, text string) string {
	m := orderIntent.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	o, err := e.store.FindOrder(ctx, m[1])
	if err != nil {
		log.Printf("[svc] order lookup %q: %v", m[1], err)
		return ""
	}
	if o == nil {
		return ""
	}

	return "Use this order information: " + describeOrder(o)
}

func (e *extractor) productFact(ctx context.Context, text string) string {
	m := productIntent.FindStringSubmatch(text)
	if m == nil {
		return ""
	}

	// the capture tends to drag filler ("of the Phone Case"), so try word
	// windows left to right, longest first at each start
	words := strings.Fields(m[1])
	for i := range words {
		for j := len(words); j > i; j-- {
			fragment := strings.Join(words[i:j], " ")
			if len(fragment) < minProductFragment {
				continue
			}

			p, err := e.store.FindProduct(ctx, fragment)
			if err != nil {
				log.Printf("[svc] product lookup %q: %v", fragment, err)
				return ""
			}
			if p != nil {
				return "Use this product information: " + describeProduct(p)
			}
		}
	}

	return ""
}

func describeOrder(o *store.Order) string {
	tracking := "No tracking number yet"
	if o.TrackingNumber != nil && *o.TrackingNumber != "" {
		tracking = "Tracking: " + *o.TrackingNumber
	}

	return fmt.Sprintf(
		"Order %s: Status is %q. Items: %s. Total: $%.2f. %s. Estimated delivery: %s",
		o.ID,
		o.Status,
		strings.Join(o.Items, ", "),
		o.Total,
		tracking,
		o.EstimatedDelivery,
	)
}

func describeProduct(p *store.Product) string {
	return fmt.Sprintf(
		"Product: %s, Price: $%.2f, Category: %s, In Stock: %t, Description: %s",
		p.Name,
		p.Price,
		p.Category,
		p.InStock,
		p.Description,
	)
}
