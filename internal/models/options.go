package models

// ChartOptionsFile holds cosmetic chart options loaded from a JSON or YAML
// file. Every field is optional; empty values fall back to defaults.
type ChartOptionsFile struct {
	Title  string `json:"title" yaml:"title"`
	Theme  string `json:"theme" yaml:"theme"`
	Width  string `json:"width" yaml:"width"`
	Height string `json:"height" yaml:"height"`
}
