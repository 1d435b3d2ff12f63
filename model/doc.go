// Package model defines the shared data types for the form digitization
// pipeline: normalized word bounding boxes, recognized words, and the
// explicitly-optional field values produced by spatial anchoring.
//
// Word coordinates use a resolution-independent integer space where both
// axes run 0..1000 with the origin at the top-left of the page. This keeps
// spatial reasoning (row grouping, left-to-right ordering) identical across
// scan resolutions.
package model
