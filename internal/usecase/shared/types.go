package shared

// Minimal snapshots for command read operations
type ProductSnapshot struct {
	SpecID string
	Shop   string
}

type CouponSnapshot struct {
	ID   int64
	Shop string
}

type UpsertResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
}
