package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// openInput returns the reader a command takes its text from: the file
// named by the trailing argument, or the command's stdin when the
// argument is absent or "-".
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[len(args)-1] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	name := args[len(args)-1]
	f, err := os.Open(name)
	if err != nil {
		return nil, "", fmt.Errorf("open input: %w", err)
	}
	return f, name, nil
}

// transformLines applies transform to every input line and writes the
// results to the command's stdout. It returns the number of lines
// processed.
func transformLines(cmd *cobra.Command, args []string, transform func(string) string) (int, error) {
	in, name, err := openInput(cmd, args)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out := bufio.NewWriter(cmd.OutOrStdout())
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lines := 0
	for scanner.Scan() {
		if _, err := out.WriteString(transform(scanner.Text())); err != nil {
			return lines, fmt.Errorf("write output: %w", err)
		}
		if err := out.WriteByte('\n'); err != nil {
			return lines, fmt.Errorf("write output: %w", err)
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("read %s: %w", name, err)
	}
	if err := out.Flush(); err != nil {
		return lines, fmt.Errorf("write output: %w", err)
	}
	return lines, nil
}
