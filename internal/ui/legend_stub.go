//go:build !ebiten

package ui

import "lifemap/pkg/heatmap"

// Legend is a no-op placeholder used when the ebiten build tag is absent.
type Legend struct{}

// NewLegend constructs a stub legend.
func NewLegend(int, heatmap.Variant) *Legend { return &Legend{} }

// Toggle is a no-op in headless builds.
func (l *Legend) Toggle() {}

// Draw is a no-op placeholder.
func (l *Legend) Draw(any) {}
