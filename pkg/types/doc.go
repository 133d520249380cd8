// Package types defines the Brand entity types, font descriptors, SCSS
// bundle records, and standard errors for the brandsass translation system.
package types
