// Package morastr partitions Japanese kana strings into morae and provides
// mora-aware search, replace, and structural operations over the result.
package morastr
