package repository

const (
	// ShopIDField scopes a listing to a single tenant.
	ShopIDField QueryField = "shop_id"
)

type QueryField string

// Query carries the filter values a repository applies when listing resources.
type Query struct {
	Values map[QueryField]string
}

func NewQuery() *Query {
	return &Query{
		Values: map[QueryField]string{},
	}
}

func (q *Query) With(field QueryField, val string) *Query {
	q.Values[field] = val
	return q
}
