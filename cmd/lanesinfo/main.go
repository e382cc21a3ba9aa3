// Copyright 2025 openvec Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// lanesinfo reports the vector capability selected for this process and
// the resolved layout for each element type. Set LANES_TARGET before
// running to inspect a forced target, e.g. LANES_TARGET=scalar lanesinfo.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openvec/lanes/lanes"
)

var lanesFlag int

func main() {
	root := &cobra.Command{
		Use:   "lanesinfo",
		Short: "Report the selected vector target and lane layouts",
		Run: func(cmd *cobra.Command, args []string) {
			printTarget(cmd.OutOrStdout())
		},
	}

	describe := &cobra.Command{
		Use:   "describe",
		Short: "Print the resolved descriptor for every element type",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDescriptors(cmd.OutOrStdout(), lanesFlag)
		},
	}
	describe.Flags().IntVar(&lanesFlag, "lanes", 0,
		"explicit lane count to resolve (default: the scalable count per type)")

	root.AddCommand(describe)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func printTarget(w io.Writer) {
	fmt.Fprintf(w, "arch:    %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "target:  %s\n", lanes.CurrentName())
	fmt.Fprintf(w, "width:   %d bytes (%d bits)\n", lanes.CurrentWidth(), lanes.CurrentWidth()*8)
	fmt.Fprintf(w, "kernel:  %s\n", lanes.KernelName())
	if lanes.IsOverridden() {
		fmt.Fprintln(w, "forced:  yes (LANES_TARGET)")
	}
}

func printDescriptors(w io.Writer, count int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tLANES\tLAYOUT\tBLOCKS")

	row(tw, "float32", describeFor[float32](count))
	row(tw, "float64", describeFor[float64](count))
	row(tw, "int8", describeFor[int8](count))
	row(tw, "int16", describeFor[int16](count))
	row(tw, "int32", describeFor[int32](count))
	row(tw, "int64", describeFor[int64](count))
	row(tw, "uint8", describeFor[uint8](count))
	row(tw, "uint16", describeFor[uint16](count))
	row(tw, "uint32", describeFor[uint32](count))
	row(tw, "uint64", describeFor[uint64](count))

	return tw.Flush()
}

func row(w io.Writer, name string, d lanes.Descriptor) {
	fmt.Fprintf(w, "%s\t%d\t%s\t%dx%d\n", name, d.Lanes, d, d.Blocks, d.BlockLanes)
}

func describeFor[T lanes.Element](count int) lanes.Descriptor {
	if count > 0 {
		return lanes.DescribeLanes[T](count)
	}
	return lanes.DescribeLanes[T](lanes.MaxLanes[T]())
}
