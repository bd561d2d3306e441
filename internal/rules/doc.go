// Package rules loads the optional HCL rules file that configures a run:
// report markers, the satellite-to-root alias map, the raw-totals exclusion
// set, the root display marker, the ordering policy, and the date-tag width.
//
// A complete rules file:
//
//	markers {
//	  record = "<tr>"
//	  start  = "<td>"
//	  end    = "</td>"
//	}
//
//	aliases {
//	  MBDA = "OS"
//	}
//
//	exclude     = ["CBS", "HCHB"]
//	root_marker = "*"
//	order       = "insertion"
//	date_width  = 8
//
// Everything is optional; whatever is absent keeps its default.
package rules
