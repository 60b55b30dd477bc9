// Package corkboard carries module-level metadata shared by the CLI.
package corkboard

// Version is the corkboard release version.
const Version = "0.3.0"
