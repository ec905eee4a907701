package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"sway/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	verbose = flag.Bool("verbose", false, "Print raw report lines as they arrive")
)

// report mirrors one telemetry line from the board:
// sway frames=N overruns=N min_slack=N
type report struct {
	frames   uint64
	overruns uint64
	minSlack uint64
}

func parseReport(line string) (report, bool) {
	fields := strings.Fields(line)
	if len(fields) != 4 || fields[0] != "sway" {
		return report{}, false
	}

	var r report
	for _, f := range fields[1:] {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			return report{}, false
		}
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return report{}, false
		}
		switch key {
		case "frames":
			r.frames = n
		case "overruns":
			r.overruns = n
		case "min_slack":
			r.minSlack = n
		default:
			return report{}, false
		}
	}
	return r, true
}

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Monitoring %s (ctrl-c to stop)\n", *device)

	var prev report
	havePrev := false

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if *verbose && line != "" {
			fmt.Println(line)
		}

		r, ok := parseReport(line)
		if !ok {
			continue
		}

		status := "ok"
		if havePrev && r.overruns > prev.overruns {
			status = fmt.Sprintf("MISSED %d DEADLINES", r.overruns-prev.overruns)
		}
		fmt.Printf("frames=%-10d overruns=%-6d min_slack=%-8d %s\n",
			r.frames, r.overruns, r.minSlack, status)

		prev = r
		havePrev = true
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: read failed: %v\n", err)
		os.Exit(1)
	}
}
