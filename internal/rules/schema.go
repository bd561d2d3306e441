package rules

import "github.com/hashicorp/hcl/v2"

// markersBlock represents the `markers` block of a rules file.
type markersBlock struct {
	Record *string `hcl:"record,optional"`
	Start  *string `hcl:"start,optional"`
	End    *string `hcl:"end,optional"`
}

// aliasesBlock holds the raw body of the `aliases` block. Each attribute maps
// a satellite group name to the root group that absorbs its count.
type aliasesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// fileRoot represents the top-level structure of a rules file. Every block
// and attribute is optional; absent values keep their defaults.
type fileRoot struct {
	Markers    *markersBlock `hcl:"markers,block"`
	Aliases    *aliasesBlock `hcl:"aliases,block"`
	Exclude    *[]string     `hcl:"exclude,optional"`
	RootMarker *string       `hcl:"root_marker,optional"`
	Order      *string       `hcl:"order,optional"`
	DateWidth  *int          `hcl:"date_width,optional"`
	Remain     hcl.Body      `hcl:",remain"`
}
