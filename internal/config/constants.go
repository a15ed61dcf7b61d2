package config

import "time"

// Base application details
const AppName = "sketch"
const ConfigDirName = "sketch"
const DefaultConfigFileName = "config.toml" // Main config file
const DefaultLogFileName = "sketch.log"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Canvas defaults
const DefaultGridWidth = 80
const DefaultGridHeight = 40
const DefaultHistoryDepth = 100
const DefaultFreehandGlyph = "*"
const DefaultEraserSize = 1
const DefaultBorderStyle = "single"
const SystemClipboard = true
