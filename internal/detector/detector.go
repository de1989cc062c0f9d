// Package detector handles ROM system detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// Detector detects the system of a ROM file from its file extension.
type Detector struct {
	logger *log.Logger
}

// New creates a new system detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect returns the system of the ROM file, an empty system is returned
// for extensions that do not identify one.
func (d *Detector) Detect(filename string) arch.System {
	system := detectFromFile(filename)
	d.logger.Debug("Detected system",
		log.Stringer("system", system),
		log.String("file", filename))
	return system
}

// IsChip8 returns whether the file can be run as Chip-8 ROM. Files with
// an unknown extension are accepted, Chip-8 ROMs are raw program data.
func (d *Detector) IsChip8(filename string) bool {
	system := d.Detect(filename)
	return system == "" || system == arch.CHIP8System
}

func detectFromFile(filename string) arch.System {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom":
		return arch.CHIP8System
	case ".nes":
		return arch.NES
	default:
		return ""
	}
}
