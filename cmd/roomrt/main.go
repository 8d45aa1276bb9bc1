// Command roomrt prints the acoustic response of a box room: per-band
// reverberation times and per-wall first-order reflection delays.
//
// Usage:
//
//	roomrt [flags]
//
// Examples:
//
//	roomrt -dims 6x3x5 -material brick-bare
//	roomrt -dims 10x4x12 -material curtain-heavy -speed 340
//	roomrt -list
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spatial/room"
)

func main() {
	var (
		dims     = flag.String("dims", "6x3x5", "room dimensions in meters, WxHxD")
		material = flag.String("material", "brick-bare", "wall material for all six walls")
		speed    = flag.Float64("speed", room.DefaultSpeedOfSound, "speed of sound in m/s")
		list     = flag.Bool("list", false, "list known materials and exit")
	)
	flag.Parse()

	if *list {
		for _, name := range room.MaterialNames() {
			fmt.Println(name)
		}
		return
	}

	var w, h, d float64
	if _, err := fmt.Sscanf(strings.ToLower(*dims), "%fx%fx%f", &w, &h, &d); err != nil {
		fmt.Fprintf(os.Stderr, "roomrt: invalid -dims %q: %v\n", *dims, err)
		os.Exit(1)
	}

	r, err := room.New(
		room.WithDimensions(w, h, d),
		room.WithUniformMaterial(*material),
		room.WithSpeedOfSound(*speed),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roomrt: %v\n", err)
		os.Exit(1)
	}

	resp := r.Response()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "band [Hz]\tRT60 [s]")
	for band, rt := range resp.RT60 {
		fmt.Fprintf(tw, "%.0f\t%.3f\n", room.BandCenters[band], rt)
	}

	fmt.Fprintln(tw, "\nwall\tdelay [ms]\tgain")
	for _, tap := range resp.Early {
		fmt.Fprintf(tw, "%s\t%.2f\t%.3f\n", tap.Wall, tap.Delay*1000, tap.Gain)
	}

	tw.Flush()
}
