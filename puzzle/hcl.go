package puzzle

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/flowgrid/grid"
	"github.com/katalvlaran/flowgrid/router"
	"github.com/katalvlaran/flowgrid/search"
)

// A puzzle file looks like:
//
//	grid {
//	  width  = 5
//	  height = 5
//	}
//	method = "astar"
//
//	pair "red" {
//	  start = [0, 0]
//	  end   = [width - 1, height - 1]
//	}
//
// The grid block and method are decoded first; pair blocks are then decoded
// with width and height available as variables.

// hclHeader is the first decoding pass.
type hclHeader struct {
	Grid   hclGrid  `hcl:"grid,block"`
	Method *string  `hcl:"method,optional"`
	Remain hcl.Body `hcl:",remain"`
}

type hclGrid struct {
	Width  int `hcl:"width"`
	Height int `hcl:"height"`
}

// hclPairs is the second decoding pass over the remaining body.
type hclPairs struct {
	Pairs []hclPair `hcl:"pair,block"`
}

type hclPair struct {
	Label string `hcl:"label,label"`
	Start []int  `hcl:"start"`
	End   []int  `hcl:"end"`
}

// Load reads and parses the puzzle file at path.
func Load(path string) (*Puzzle, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: %w", err)
	}

	return Parse(src, path)
}

// Parse decodes an HCL puzzle. filename is used in diagnostics only.
// The result is validated before it is returned.
func Parse(src []byte, filename string) (*Puzzle, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("puzzle: failed to parse %s: %w", filename, diags)
	}

	var head hclHeader
	if diags = gohcl.DecodeBody(file.Body, nil, &head); diags.HasErrors() {
		return nil, fmt.Errorf("puzzle: failed to decode %s: %w", filename, diags)
	}

	pz := &Puzzle{
		Width:  head.Grid.Width,
		Height: head.Grid.Height,
		Method: search.MethodBFS,
	}
	if head.Method != nil {
		m, err := search.ParseMethod(*head.Method)
		if err != nil {
			return nil, fmt.Errorf("puzzle: %s: %w", filename, err)
		}
		pz.Method = m
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"width":  cty.NumberIntVal(int64(pz.Width)),
			"height": cty.NumberIntVal(int64(pz.Height)),
		},
	}
	var body hclPairs
	if diags = gohcl.DecodeBody(head.Remain, ctx, &body); diags.HasErrors() {
		return nil, fmt.Errorf("puzzle: failed to decode pairs in %s: %w", filename, diags)
	}

	for _, hp := range body.Pairs {
		start, err := toPosition(hp.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: pair %q start in %s", err, hp.Label, filename)
		}
		end, err := toPosition(hp.End)
		if err != nil {
			return nil, fmt.Errorf("%w: pair %q end in %s", err, hp.Label, filename)
		}
		pz.Pairs = append(pz.Pairs, router.Pair{Start: start, End: end, Label: hp.Label})
	}

	if err := pz.Validate(); err != nil {
		return nil, err
	}

	return pz, nil
}

func toPosition(v []int) (grid.Position, error) {
	if len(v) != 2 {
		return grid.Position{}, ErrBadPosition
	}

	return grid.Pos(v[0], v[1]), nil
}
