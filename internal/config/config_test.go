package config

import "testing"

func TestDefaultsAreValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Editor.GridWidth != DefaultGridWidth || cfg.Editor.GridHeight != DefaultGridHeight {
		t.Errorf("default canvas = %dx%d, want %dx%d",
			cfg.Editor.GridWidth, cfg.Editor.GridHeight, DefaultGridWidth, DefaultGridHeight)
	}
	if cfg.Editor.BorderStyle != "single" {
		t.Errorf("default border = %q, want single", cfg.Editor.BorderStyle)
	}
}

func TestValidateResetsInvalidValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Editor.GridWidth = 0
	cfg.Editor.GridHeight = -3
	cfg.Editor.HistoryDepth = 0
	cfg.Editor.FreehandGlyph = ""
	cfg.Editor.EraserSize = -1
	cfg.Editor.BorderStyle = "dashed"
	cfg.Logger.LogLevel = ""

	cfg.validate()

	if cfg.Editor.GridWidth != DefaultGridWidth {
		t.Errorf("GridWidth = %d, want %d", cfg.Editor.GridWidth, DefaultGridWidth)
	}
	if cfg.Editor.GridHeight != DefaultGridHeight {
		t.Errorf("GridHeight = %d, want %d", cfg.Editor.GridHeight, DefaultGridHeight)
	}
	if cfg.Editor.HistoryDepth != DefaultHistoryDepth {
		t.Errorf("HistoryDepth = %d, want %d", cfg.Editor.HistoryDepth, DefaultHistoryDepth)
	}
	if cfg.Editor.FreehandGlyph != DefaultFreehandGlyph {
		t.Errorf("FreehandGlyph = %q, want %q", cfg.Editor.FreehandGlyph, DefaultFreehandGlyph)
	}
	if cfg.Editor.EraserSize != DefaultEraserSize {
		t.Errorf("EraserSize = %d, want %d", cfg.Editor.EraserSize, DefaultEraserSize)
	}
	if cfg.Editor.BorderStyle != "single" {
		t.Errorf("BorderStyle = %q, want single", cfg.Editor.BorderStyle)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.Logger.LogLevel)
	}
}

func TestValidateKeepsGoodValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Editor.GridWidth = 120
	cfg.Editor.BorderStyle = "double"
	cfg.validate()
	if cfg.Editor.GridWidth != 120 {
		t.Errorf("GridWidth = %d, want 120", cfg.Editor.GridWidth)
	}
	if cfg.Editor.BorderStyle != "double" {
		t.Errorf("BorderStyle = %q, want double", cfg.Editor.BorderStyle)
	}
}
