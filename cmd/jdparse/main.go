// Command jdparse parses a single job description file and prints the
// resulting posting payload as JSON. No database required.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/campushire/placement-portal/constants"
	"github.com/campushire/placement-portal/internal/jdparser"
)

func main() {
	contentType := flag.String("content-type", "", "content type override (default: inferred from extension)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: jdparse [-content-type TYPE] FILE")
		os.Exit(2)
	}
	path := flag.Arg(0)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	ct := *contentType
	if ct == "" {
		ct = constants.MapExtToContentType(filepath.Ext(path))
		if ct == "" {
			fmt.Fprintf(os.Stderr, "jdparse: unrecognized file extension %q\n", filepath.Ext(path))
			os.Exit(2)
		}
	}

	parser := jdparser.NewParser(logger)
	res := parser.ParseFile(context.Background(), path, ct)
	if !res.Success {
		fmt.Fprintf(os.Stderr, "jdparse: %s\n", res.Error)
		os.Exit(1)
	}

	vres := jdparser.Validate(*res.Data)
	payload := jdparser.BuildPostingPayload(*res.Data, time.Now().UTC())

	out := struct {
		Payload          jdparser.JobPostingPayload `json:"payload"`
		Valid            bool                       `json:"valid"`
		ValidationErrors []string                   `json:"validationErrors,omitempty"`
	}{
		Payload:          payload,
		Valid:            vres.IsValid,
		ValidationErrors: vres.Errors,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "jdparse: %v\n", err)
		os.Exit(1)
	}
}
