// Package config loads climb queries from HCL files.
//
// A query file holds one or more query blocks:
//
//	query "summit" {
//	  from  = start
//	  goals = [end]
//	  rule  = "ascend"
//	}
//
//	query "trailhead" {
//	  from  = end
//	  goals = [start, lowest]
//	  rule  = "descend"
//	}
//
// Symbols may be written literally ("S", "a") or through the variables
// start ("S"), end ("E") and lowest ("a"). rule defaults to "ascend".
// Every validation failure wraps climb.ErrInvalidQuery.
package config
