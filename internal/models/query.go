package models

// QueryKind identifies which variant of a Query is active.
type QueryKind int

const (
	QueryByPlace QueryKind = iota
	QueryByCoords
)

// Query is the resolved input driving one fetch attempt: a free-text place
// name or a coordinate pair, never both. Build one with PlaceQuery or
// CoordQuery and treat it as immutable; a fresh Query is constructed for
// every attempt.
//
// Warning carries a non-fatal advisory picked up during resolution (for
// example the permission-denied fallback). The orchestrator attaches it to
// the resulting view state instead of failing the fetch.
type Query struct {
	Kind    QueryKind
	Place   string
	Lat     float64
	Lon     float64
	Warning string
}

// PlaceQuery builds a Query for a free-text place name.
func PlaceQuery(place string) Query {
	return Query{Kind: QueryByPlace, Place: place}
}

// CoordQuery builds a Query for a coordinate pair.
func CoordQuery(lat, lon float64) Query {
	return Query{Kind: QueryByCoords, Lat: lat, Lon: lon}
}

// WithWarning returns a copy of the Query carrying the advisory message.
func (q Query) WithWarning(msg string) Query {
	q.Warning = msg
	return q
}
