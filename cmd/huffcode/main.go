// Command huffcode builds a Huffman code for the text in a file, encodes the
// text with it, and prints a report of the codes and the space saved.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chronos-tachyon/huffcode"
	"github.com/datatrails/go-datatrails-common/logger"
)

const emptyInputMessage = "Input Data Is Empty! Try Again with a File that has data inside!"

type config struct {
	inputFile    string
	wholeFile    bool
	logLevel     string
	showTree     bool
	codeBookFile string
	verify       bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.inputFile, "in", "inputData/input1.txt", "file holding the text to encode")
	flag.BoolVar(&cfg.wholeFile, "whole", false, "encode the whole file instead of only its first line")
	flag.StringVar(&cfg.logLevel, "log-level", "INFO", "log level (DEBUG, INFO, NOOP, ...)")
	flag.BoolVar(&cfg.showTree, "tree", false, "print the Huffman tree after the report")
	flag.StringVar(&cfg.codeBookFile, "codebook", "", "write the code book as CBOR to this file")
	flag.BoolVar(&cfg.verify, "verify", true, "decode the output and check that it matches the input")
	flag.Parse()

	logger.New(cfg.logLevel)
	err := run(cfg, os.Stdout)
	logger.OnExit()
	if err != nil {
		fmt.Fprintf(os.Stderr, "huffcode: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, out io.Writer) error {
	var log logger.Logger = logger.Sugar.WithServiceName("huffcode")

	text, err := loadText(cfg.inputFile, cfg.wholeFile)
	if err != nil {
		return err
	}
	logger.Sugar.Debugf("loaded %d bytes from %s", len(text), cfg.inputFile)

	res, err := huffcode.Run(text,
		huffcode.WithLogger(log),
		huffcode.WithDecodeCheck(cfg.verify))
	if errors.Is(err, huffcode.ErrEmptyInput) {
		fmt.Fprintln(out, emptyInputMessage)
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := res.Report(text).WriteTo(out); err != nil {
		return err
	}

	if cfg.showTree {
		fmt.Fprintln(out)
		if _, err := huffcode.DumpTree(out, res.Root); err != nil {
			return err
		}
	}

	if cfg.codeBookFile != "" {
		data, err := res.CodeBook.MarshalCBOR()
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.codeBookFile, data, 0o644); err != nil {
			return err
		}
		log.Infof("wrote code book (%d bytes) to %s", len(data), cfg.codeBookFile)
	}
	return nil
}

// loadText returns the contents of the named file, or only its first line
// unless wholeFile is set.  A trailing line ending is dropped.
func loadText(name string, wholeFile bool) (string, error) {
	raw, err := os.ReadFile(name)
	if err != nil {
		return "", err
	}
	text := string(raw)
	if !wholeFile {
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[:i]
		}
	}
	text = strings.TrimSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\r")
	return text, nil
}
