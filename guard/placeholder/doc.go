// Package placeholder counts and substitutes positional "{N}" markers in guard message templates.
package placeholder
