// Package config loads pocketcalc configuration files.
//
// A configuration file is either YAML (.yaml, .yml) or CUE (.cue). Both are
// checked against the same closed CUE schema, so a misspelled field or an
// out-of-range value is rejected the same way whichever format is used:
//
//	angle_mode: "rad"      // "deg" | "rad"
//	locale: "de"           // BCP 47 tag, affects the decimal separator only
//	history_limit: 50      // 0..10000, 0 keeps everything
//	prompt: "calc> "
//
// Fields left out keep their Default values.
package config
