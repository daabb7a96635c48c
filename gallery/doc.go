// Package gallery formats recommendation results for display: large cover
// image URLs paired with caption strings built from title, authors, and a
// truncated description.
package gallery
