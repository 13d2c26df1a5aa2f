// internal/app/store/properties/filter.go
package propertystore

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// Filter holds the optional search parameters for a property listing
// query. Zero values mean "no constraint": an empty Type (or the
// sentinel "all") matches every type, nil price bounds leave price
// unconstrained, and so on.
type Filter struct {
	Type     string // case-insensitive exact match; "" or "all" disables
	MinPrice *int
	MaxPrice *int
	Capacity *int   // minimum guest count, compared against the stored capacity text
	Search   string // case-insensitive match over title, description, location
}

// Query builds the Mongo filter document. Every query is scoped to
// active properties; soft-deleted documents never match.
func (f Filter) Query() bson.M {
	q := bson.M{"active": true}

	if t := strings.TrimSpace(f.Type); t != "" && !strings.EqualFold(t, "all") {
		q["type"] = bson.M{"$regex": "^" + regexp.QuoteMeta(t) + "$", "$options": "i"}
	}

	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		q["price"] = price
	}

	if f.Capacity != nil {
		q["$expr"] = capacityAtLeast(*f.Capacity)
	}

	if s := strings.TrimSpace(f.Search); s != "" {
		rx := bson.M{"$regex": s, "$options": "i"}
		q["$or"] = bson.A{
			bson.M{"title": rx},
			bson.M{"description": rx},
			bson.M{"location": rx},
		}
	}

	return q
}

// capacityAtLeast compares the leading whitespace-delimited token of
// the stored capacity text (e.g. "4 guests") numerically against min.
// A document whose capacity has no leading integer passes: a listing
// that says "many" must not vanish from search results because of
// this predicate.
func capacityAtLeast(min int) bson.M {
	lead := bson.M{"$arrayElemAt": bson.A{bson.M{"$split": bson.A{"$capacity", " "}}, 0}}
	n := bson.M{"$convert": bson.M{"input": lead, "to": "int", "onError": nil}}
	return bson.M{"$or": bson.A{
		bson.M{"$eq": bson.A{n, nil}},
		bson.M{"$gte": bson.A{n, min}},
	}}
}
