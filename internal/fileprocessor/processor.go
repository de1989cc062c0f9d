// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/display"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrochip8/internal/writer"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile loads the ROM of the options and either writes a disassembly
// listing of it or runs it headless and renders the final display.
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program) error {
	if !detector.New(logger).IsChip8(opts.Input) {
		logger.Warn("Input file does not look like a Chip-8 ROM", log.String("file", opts.Input))
	}

	program, err := loader.New().Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	vm := newMachine(opts)
	if err := vm.LoadProgram(program); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	PrintInfo(logger, opts, vm)

	output, err := createWriter(opts)
	if err != nil {
		return fmt.Errorf("creating writer: %w", err)
	}
	defer func() {
		if closer, ok := output.(io.Closer); ok && output != os.Stdout {
			_ = closer.Close()
		}
	}()

	if opts.Disasm {
		return writeListing(vm, output, opts)
	}
	return run(ctx, logger, vm, output, opts)
}

// PrintInfo prints information about the input file and the loaded program.
func PrintInfo(logger *log.Logger, opts options.Program, vm *chip8.Chip8) {
	if opts.Quiet {
		return
	}

	logger.Info("Processing Chip-8 ROM",
		log.String("file", opts.Input),
		log.Stringer("system", arch.CHIP8System),
		log.Int("size", vm.ProgramSize()),
	)
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", buildinfo.Version(version, commit, date)))
}

func newMachine(opts options.Program) *chip8.Chip8 {
	if opts.Seed == 0 {
		return chip8.New()
	}
	return chip8.New(chip8.WithRandomSource(rand.NewPCG(opts.Seed, opts.Seed)))
}

func writeListing(vm *chip8.Chip8, output io.Writer, opts options.Program) error {
	w := writer.New(vm, output, writer.Options{
		HexComments:    !opts.NoHexComments,
		OffsetComments: !opts.NoOffsets,
	})

	if err := w.WriteHeader(chip8.ProgramStart); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}

	end := uint16(chip8.ProgramStart + vm.ProgramSize())
	if err := w.WriteRange(chip8.ProgramStart, end); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

func run(ctx context.Context, logger *log.Logger, vm *chip8.Chip8, output io.Writer, opts options.Program) error {
	for _, key := range opts.KeyCodes {
		vm.SetKey(key, true)
	}

	r := runner.New(logger, vm, runner.Options{
		Beeper:         newBeeper(opts, os.Stderr),
		Breakpoints:    opts.BreakAddresses,
		CyclesPerFrame: opts.CyclesPerFrame,
		Paused:         opts.Paused,
		Trace:          opts.Trace,
	})

	for range opts.Step {
		r.Step()
		if err := r.Frame(ctx); err != nil {
			return fmt.Errorf("stepping: %w", err)
		}
	}
	if err := r.Run(ctx, opts.Frames); err != nil {
		return fmt.Errorf("running: %w", err)
	}

	if err := renderDisplay(logger, vm, output, opts); err != nil {
		return err
	}

	logger.Info("Execution finished",
		log.Hex("pc", vm.ProgramCounter()),
		log.Hex("index", vm.Index()),
		log.Int("cycles", r.Cycles()),
		log.Int("faults", r.Faults()),
	)
	return nil
}

// newBeeper returns the terminal bell writing to w if it is enabled.
func newBeeper(opts options.Program, w io.Writer) runner.Beeper {
	if !opts.Bell {
		return nil
	}
	return display.NewBell(w)
}

func renderDisplay(logger *log.Logger, vm *chip8.Chip8, output io.Writer, opts options.Program) error {
	renderer := display.New(!opts.ASCII)
	if file, ok := output.(*os.File); ok {
		if !opts.ASCII {
			renderer = display.NewForFile(file)
		}
		if err := renderer.CheckTerminalSize(file); err != nil {
			logger.Warn("Display output may be truncated", log.Err(err))
		}
	}

	screen := vm.Framebuffer()
	if err := renderer.Render(output, &screen); err != nil {
		return fmt.Errorf("rendering display: %w", err)
	}
	return nil
}

func createWriter(opts options.Program) (io.Writer, error) {
	if opts.Output == "" {
		return os.Stdout, nil
	}

	file, err := os.Create(opts.Output)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", opts.Output, err)
	}
	return file, nil
}
