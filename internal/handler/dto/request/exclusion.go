package request

// ExclusionListRequest replaces a whole list; an empty list clears it.
type ExclusionListRequest struct {
	Values []string `json:"values" binding:"required"`
}
