// Package codec implements the three polyline variants behind one closed
// interface: FlexiblePolyline, Polyline5, and Polyline6.
//
// All three share the same delta-encoding core; they differ only in
// alphabet, header presence, and precision handling. Use ForAlgorithm to
// obtain a variant, or the top-level polyline package for the process-wide
// selected variant.
package codec
