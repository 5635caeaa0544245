package main

import (
	"encoding/binary"

	"github.com/spf13/cobra"

	"github.com/joshuapare/safealloc/registry"
)

func init() {
	rootCmd.AddCommand(newDemoCmd())
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Acquire three blocks, release them out of order, then shut down",
		Long: `The demo command acquires three 4-byte blocks (a, b, c), stores 10, 20
and 30 in them, releases a, c and b in that order, and finally releases
everything and exits with status 0.

Example:
  safealloc demo
  safealloc demo --backend heap --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

type demoResult struct {
	Addresses map[string]string `json:"addresses"`
	Values    map[string]uint32 `json:"values"`
	Released  map[string]bool   `json:"released"`
	Live      int               `json:"live"`
}

func runDemo() error {
	reg, err := newRegistry()
	if err != nil {
		return err
	}

	a := reg.Acquire(4)
	b := reg.Acquire(4)
	c := reg.Acquire(4)
	if a == nil || b == nil || c == nil {
		return errAborted
	}

	binary.LittleEndian.PutUint32(a, 10)
	binary.LittleEndian.PutUint32(b, 20)
	binary.LittleEndian.PutUint32(c, 30)

	res := demoResult{
		Addresses: map[string]string{
			"a": hexAddr(registry.AddressOf(a)),
			"b": hexAddr(registry.AddressOf(b)),
			"c": hexAddr(registry.AddressOf(c)),
		},
		Values: map[string]uint32{
			"a": binary.LittleEndian.Uint32(a),
			"b": binary.LittleEndian.Uint32(b),
			"c": binary.LittleEndian.Uint32(c),
		},
		Released: make(map[string]bool),
	}

	printInfo("a = %s\n", res.Addresses["a"])
	printInfo("values: a=%d b=%d c=%d\n", res.Values["a"], res.Values["b"], res.Values["c"])

	res.Released["a"] = reg.ReleaseBlock(a)
	res.Released["c"] = reg.ReleaseBlock(c)
	res.Released["b"] = reg.ReleaseBlock(b)
	res.Live = reg.Len()

	if jsonOut {
		if err := printJSON(res); err != nil {
			return err
		}
	} else {
		printInfo("released a=%t c=%t b=%t\n", res.Released["a"], res.Released["c"], res.Released["b"])
		printInfo("live blocks: %d\n", res.Live)
	}

	reg.ReleaseAll(0)
	return nil
}
