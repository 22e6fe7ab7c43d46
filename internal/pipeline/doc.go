// Package pipeline runs every peptide against every protein and hands each
// window match to a visit callback.
//
// Proteins form the outer loop and peptides the inner loop. Nothing is cached
// or deduplicated across pairs, and the scan is strictly sequential.
package pipeline
