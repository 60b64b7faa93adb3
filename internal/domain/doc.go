// Package domain models the warehouse station check-digit dataset.
//
// # Location Codes
//
// Every pallet station in Building 3 is addressed by a four-segment
// location code:
//
//	BB-AA-SS-PP  →  building-aisle-station-position
//
// Each segment is a two-digit zero-padded decimal string. For this dataset
// the building is always "03" and the position is always "01", so the
// canonical form is "03-AA-SS-01". The building has 58 aisles and each
// aisle has 63 stations, e.g. "03-58-22-01" is aisle 58, station 22.
//
// # Check Digits
//
// A check digit is a short numeric string (one or two digits) recorded for
// exactly one location code. Operators key it in to confirm they are at the
// right station; it is a human verification value, not a checksum that can
// be derived from the code.
//
// # Shorthand Input
//
// Operators rarely type the full canonical form. [NormalizeCode] accepts the
// shorthand notations in use on the floor and maps them to canonical form:
//
//	"5822"        →  "03-58-22-01"   (compact aisle+station)
//	"58-22"       →  "03-58-22-01"   (aisle-station)
//	"3-58-22"     →  "03-58-22-01"   (building-aisle-station)
//	"3-58-22-1"   →  "03-58-22-01"   (unpadded full form)
//	"03-58-22-01" →  "03-58-22-01"   (already canonical, fixed point)
//
// Input that matches none of the accepted shapes is returned unchanged.
// The mobile app's lookup replicates this mapping byte for byte, so callers
// must treat a non-canonical result as "not found" rather than an error.
package domain
