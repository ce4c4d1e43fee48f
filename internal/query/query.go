// Package query translates HTTP query-string parameters into a structured
// MongoDB query: filter predicate, sort order, field projection and a
// pagination window.
package query

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	// DefaultLimit is the page size used when the client does not send one.
	DefaultLimit = 100
	// MaxLimit caps the page size a client may request.
	MaxLimit = 500
)

var (
	// ErrInvalidPage is returned for a non-numeric or non-positive page.
	ErrInvalidPage = errors.New("page must be a positive integer")
	// ErrInvalidLimit is returned for a non-numeric or non-positive limit.
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

// reserved parameter names consumed by the translator itself.
var reserved = map[string]bool{
	"page":   true,
	"sort":   true,
	"limit":  true,
	"fields": true,
}

// comparison operators accepted in the field[op]=value syntax.
var operators = map[string]string{
	"gte": "$gte",
	"gt":  "$gt",
	"lte": "$lte",
	"lt":  "$lt",
}

// Query is a fully translated query ready for execution by a repository.
// It performs no I/O itself.
type Query struct {
	Filter     bson.M
	Sort       bson.D
	Projection bson.M
	Page       int64
	Limit      int64
	Skip       int64
}

// Translate builds a Query from raw query-string values. Field names are
// passed through uninterpreted; schema validation is the persistence
// layer's job.
func Translate(values url.Values) (*Query, error) {
	q := &Query{
		Filter: bson.M{},
	}

	if err := q.translateFilter(values); err != nil {
		return nil, err
	}
	q.translateSort(values.Get("sort"))
	q.translateFields(values.Get("fields"))
	if err := q.translatePagination(values.Get("page"), values.Get("limit")); err != nil {
		return nil, err
	}

	return q, nil
}

// translateFilter turns every non-reserved key into an equality or
// comparison predicate. `duration[gte]=5` becomes {duration: {$gte: 5}}.
func (q *Query) translateFilter(values url.Values) error {
	for key, vals := range values {
		if reserved[key] || len(vals) == 0 {
			continue
		}
		value := vals[0]

		field, op, ok := splitOperator(key)
		if !ok {
			q.Filter[key] = coerceValue(value)
			continue
		}

		// Merge multiple operators on the same field, e.g.
		// duration[gte]=5&duration[lt]=10.
		cond, _ := q.Filter[field].(bson.M)
		if cond == nil {
			cond = bson.M{}
		}
		cond[op] = coerceValue(value)
		q.Filter[field] = cond
	}
	return nil
}

// translateSort parses a comma-separated sort list with '-' meaning
// descending. Absent sort defaults to newest first.
func (q *Query) translateSort(raw string) {
	if raw == "" {
		q.Sort = bson.D{{Key: "createdAt", Value: -1}}
		return
	}

	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		direction := 1
		if strings.HasPrefix(field, "-") {
			direction = -1
			field = field[1:]
		}
		q.Sort = append(q.Sort, bson.E{Key: field, Value: direction})
	}

	if len(q.Sort) == 0 {
		q.Sort = bson.D{{Key: "createdAt", Value: -1}}
	}
}

// translateFields builds an inclusion projection. Exclusion lists are never
// produced here; without a fields parameter only the internal version
// field is hidden.
func (q *Query) translateFields(raw string) {
	if raw == "" {
		q.Projection = bson.M{"__v": 0}
		return
	}

	projection := bson.M{}
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field != "" {
			projection[field] = 1
		}
	}
	if len(projection) == 0 {
		projection = bson.M{"__v": 0}
	}
	q.Projection = projection
}

// translatePagination computes the page window. Garbage page/limit values
// are rejected rather than coerced, and limit is clamped to MaxLimit.
func (q *Query) translatePagination(rawPage, rawLimit string) error {
	q.Page = 1
	q.Limit = DefaultLimit

	if rawPage != "" {
		page, err := strconv.ParseInt(rawPage, 10, 64)
		if err != nil || page < 1 {
			return ErrInvalidPage
		}
		q.Page = page
	}

	if rawLimit != "" {
		limit, err := strconv.ParseInt(rawLimit, 10, 64)
		if err != nil || limit < 1 {
			return ErrInvalidLimit
		}
		if limit > MaxLimit {
			limit = MaxLimit
		}
		q.Limit = limit
	}

	q.Skip = (q.Page - 1) * q.Limit
	return nil
}

// FindOptions renders the sort, projection and page window as driver
// options for a Find call.
func (q *Query) FindOptions() *options.FindOptions {
	return options.Find().
		SetSort(q.Sort).
		SetProjection(q.Projection).
		SetSkip(q.Skip).
		SetLimit(q.Limit)
}

// splitOperator recognizes the field[op] syntax and maps op to its Mongo
// operator. Unknown bracket contents are treated as a literal key.
func splitOperator(key string) (field, op string, ok bool) {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return "", "", false
	}
	mongoOp, known := operators[key[open+1:len(key)-1]]
	if !known {
		return "", "", false
	}
	return key[:open], mongoOp, true
}

// coerceValue best-effort types a raw string: numbers become float64,
// true/false become bool, everything else stays a string.
func coerceValue(raw string) interface{} {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	return raw
}
