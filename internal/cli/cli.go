// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if opts.Input == "" {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Trace {
		opts.Debug = true
	}
	if opts.Frames < 0 {
		return fmt.Errorf("invalid number of frames %d", opts.Frames)
	}
	if opts.Step < 0 {
		return fmt.Errorf("invalid number of steps %d", opts.Step)
	}
	if opts.Step > 0 {
		opts.Paused = true
	}

	keys, err := parseKeys(opts.Keys)
	if err != nil {
		return err
	}
	opts.KeyCodes = keys

	addresses, err := parseAddresses(opts.Breakpoints)
	if err != nil {
		return err
	}
	opts.BreakAddresses = addresses
	return nil
}

// parseKeys parses a comma separated list of hex key codes.
func parseKeys(s string) ([]uint8, error) {
	var keys []uint8
	for _, field := range splitList(s) {
		code, err := strconv.ParseUint(trimHexPrefix(field), 16, 8)
		if err != nil || code >= chip8.KeyCount {
			return nil, fmt.Errorf("invalid key code '%s'", field)
		}
		keys = append(keys, uint8(code))
	}
	return keys, nil
}

// parseAddresses parses a comma separated list of hex memory addresses.
func parseAddresses(s string) ([]uint16, error) {
	var addresses []uint16
	for _, field := range splitList(s) {
		address, err := strconv.ParseUint(trimHexPrefix(field), 16, 16)
		if err != nil || address > chip8.MaxAddress {
			return nil, fmt.Errorf("invalid breakpoint address '%s'", field)
		}
		addresses = append(addresses, uint16(address))
	}
	return addresses, nil
}

func splitList(s string) []string {
	var fields []string
	for _, field := range strings.Split(s, ",") {
		if field = strings.TrimSpace(field); field != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

func trimHexPrefix(s string) string {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(s, "0x")
	return strings.TrimPrefix(s, "0X")
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.Output, "o", "", "name of the output file for the display or listing, printed on console if no name given")
	flags.BoolVar(&opts.Disasm, "disasm", false, "write a disassembly listing of the ROM instead of running it")
	flags.IntVar(&opts.Frames, "frames", 60, "number of frames to run")
	flags.IntVar(&opts.CyclesPerFrame, "cpf", 10, "cycles executed per frame")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for the random number instruction, 0 selects a random seed")
	flags.StringVar(&opts.Keys, "keys", "", "comma separated hex key codes held down while running, for example 1,a")
	flags.StringVar(&opts.Breakpoints, "break", "", "comma separated hex addresses to pause at, for example 0x21a")
	flags.BoolVar(&opts.Paused, "paused", false, "start paused, frames only execute requested steps")
	flags.IntVar(&opts.Step, "step", 0, "number of single steps to execute, implies -paused")
	flags.BoolVar(&opts.Bell, "bell", false, "ring the terminal bell when the sound timer expires")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.NoHexComments, "nohexcomments", false, "do not output opcode bytes as hex values in listing comments")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output addresses in listing comments")
	flags.BoolVar(&opts.ASCII, "ascii", false, "render the display using ASCII characters only")
}
