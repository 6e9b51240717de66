package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	resumemd "github.com/alnah/go-resumemd"
)

// ErrInvalidBlock is returned for a block spec that is not height[:top:bottom].
var ErrInvalidBlock = errors.New("invalid block size")

// paginateResult is the JSON output of paginate.
type paginateResult struct {
	Capacity float64 `json:"capacity"`
	Breaks   []int   `json:"breaks"`
	Pages    [][]int `json:"pages"`
}

// runPaginate computes page breaks for block sizes given as arguments, or as
// a JSON array of blocks on standard input when the only argument is "-".
func runPaginate(_ context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePaginateFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	log := newLogger(flags.log, env.Getenv("RESUMEMD_LOG_LEVEL"), env.Getenv("RESUMEMD_LOG_FORMAT"), env)

	var blocks []resumemd.Block
	if len(positional) == 1 && positional[0] == stdinPath {
		blocks, err = decodeBlocks(env)
	} else {
		blocks, err = parseBlocks(positional)
	}
	if err != nil {
		return err
	}

	capacity := resumemd.ResolveCapacity(flags.capacity)
	breaks := resumemd.Paginate(blocks, capacity)
	log.Debug().Int("blocks", len(blocks)).Float64("capacity", capacity).Ints("breaks", breaks).Msg("paginated")

	var out []byte
	switch strings.ToLower(flags.format) {
	case formatText:
		out = []byte(formatBreaks(breaks) + "\n")
	case formatJSON:
		res := paginateResult{
			Capacity: capacity,
			Breaks:   breaks,
			Pages:    resumemd.SplitPages(len(blocks), breaks),
		}
		if res.Breaks == nil {
			res.Breaks = []int{}
		}
		if res.Pages == nil {
			res.Pages = [][]int{}
		}
		out, err = json.Marshal(res)
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		out = append(out, '\n')
	default:
		return fmt.Errorf("%w: unknown format %q (must be text or json)", ErrUsage, flags.format)
	}
	return writeOutput("", out, env)
}

// parseBlocks parses "height[:marginTop:marginBottom]" specs.
func parseBlocks(specs []string) ([]resumemd.Block, error) {
	blocks := make([]resumemd.Block, 0, len(specs))
	for _, spec := range specs {
		b, err := parseBlock(spec)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func parseBlock(spec string) (resumemd.Block, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 1 && len(parts) != 3 {
		return resumemd.Block{}, fmt.Errorf("%w: %q (want height or height:marginTop:marginBottom)", ErrInvalidBlock, spec)
	}
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return resumemd.Block{}, fmt.Errorf("%w: %q", ErrInvalidBlock, spec)
		}
		values[i] = v
	}
	b := resumemd.Block{Height: values[0]}
	if len(values) == 3 {
		b.MarginTop, b.MarginBottom = values[1], values[2]
	}
	return b, nil
}

// decodeBlocks reads a JSON array of blocks from standard input.
func decodeBlocks(env *Environment) ([]resumemd.Block, error) {
	var blocks []resumemd.Block
	if err := json.NewDecoder(env.Stdin).Decode(&blocks); err != nil {
		return nil, fmt.Errorf("%w: decoding JSON: %v", ErrInvalidBlock, err)
	}
	return blocks, nil
}

// formatBreaks joins break indices with spaces.
func formatBreaks(breaks []int) string {
	parts := make([]string, len(breaks))
	for i, b := range breaks {
		parts[i] = strconv.Itoa(b)
	}
	return strings.Join(parts, " ")
}
