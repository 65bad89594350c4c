// Package models provides the data structures shared by the parsing core and
// the calling layer.
package models
