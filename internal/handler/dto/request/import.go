package request

import (
	"seller-catalog/internal/usecase/commands"
)

type ImportRequest struct {
	Rows           []ProductRequest `json:"rows" binding:"required,dive"`
	InvalidSpecIDs []string         `json:"invalid_spec_ids"`
	EnabledSKUs    []string         `json:"enabled_skus"`
	IncludeReport  bool             `json:"include_report"`
}

func (r ImportRequest) ToCommand() commands.ImportRequest {
	return commands.ImportRequest{
		Rows:           toAttributes(r.Rows),
		InvalidSpecIDs: r.InvalidSpecIDs,
		EnabledSKUs:    r.EnabledSKUs,
		IncludeReport:  r.IncludeReport,
	}
}
