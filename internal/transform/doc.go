// Package transform provides stateless numeric transforms over 2-D
// recordings: min-max scaling, z-score standardization, and temporal
// downsampling. All functions return new matrices and never mutate their
// input; they have no dependency on how the data was loaded.
package transform
