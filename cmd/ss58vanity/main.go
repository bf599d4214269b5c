package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Amr-9/ss58vanity/internal/ui"
	"github.com/Amr-9/ss58vanity/pkg/generator"
	"github.com/Amr-9/ss58vanity/pkg/generator/cpu"
	"github.com/Amr-9/ss58vanity/pkg/generator/polkadot"
)

const version = "0.4"

var log = logrus.WithField("process", "main")

func main() {
	v, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	initLog(v)

	fill := ui.ParseFill(v.GetString(cfgFill))

	switch {
	case v.IsSet(cfgVerify):
		os.Exit(verify(v.GetString(cfgVerify), os.Stdout))
	case v.IsSet(cfgBatch):
		os.Exit(batch(v, fill))
	case v.IsSet(cfgText):
		os.Exit(single(v.GetString(cfgText), fill, os.Stdout))
	default:
		interactive(os.Stdin, v.GetString(cfgOutput))
	}
}

// verify prints whether text is a well formed address with a valid checksum.
func verify(text string, w io.Writer) int {
	addr, err := polkadot.Verify(text)
	if err != nil {
		fmt.Fprintf(w, "invalid: %v\n", err)
		return 1
	}
	fmt.Fprintf(w, "valid: prefix %d, key %s\n", addr.Prefix(), hexutil.Encode(addr.Key()))
	return 0
}

// single prints one address for text.
func single(text string, fill rune, w io.Writer) int {
	addr, err := polkadot.WithVanity(text, fill)
	if err != nil {
		log.WithError(err).Error("cannot build address")
		return 1
	}
	fmt.Fprintln(w, addr)
	return 0
}

func batch(v *viper.Viper, fill rune) int {
	in := io.Reader(os.Stdin)
	if path := v.GetString(cfgBatch); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			log.WithError(err).Error("cannot open batch file")
			return 1
		}
		defer f.Close()
		in = f
	}

	requests, err := readRequests(in, fill)
	if err != nil {
		log.WithError(err).Error("cannot read batch")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := runBatch(ctx, cpu.NewCPUGenerator(0), requests, v.GetInt(cfgWorkers), os.Stdout)
	if err != nil {
		log.WithError(err).Error("batch failed")
		return 1
	}

	// stdout carries the results, so the summary goes to stderr
	ui.PrintBatchSummary(os.Stderr, stats)
	return 0
}

// interactive prompts for requests until the user quits or in is closed.
func interactive(in io.Reader, outputFile string) {
	ui.ClearScreen()
	ui.PrintWelcomeBanner(version)

	reader := bufio.NewReader(in)
	for {
		req, err := ui.GetInputFromUser(reader)
		if err != nil {
			fmt.Println()
			log.WithError(err).Debug("input closed")
			return
		}
		ui.PrintRequestInfo(generator.Polkadot, req,
			string(polkadot.PrefixGlyph)+polkadot.SanitizeString(req.Text),
			polkadot.InvalidBase58Chars(req.Text))

		startTime := time.Now()
		addr, err := polkadot.WithVanity(req.Text, req.Fill)
		elapsed := time.Since(startTime)
		if err != nil {
			ui.PrintError(err)
			continue
		}

		result := generator.Result{
			Network: generator.Polkadot,
			Request: req,
			Address: addr.String(),
			Key:     addr.Key(),
		}
		ui.PrintSuccess(result, elapsed, outputFile)
		saveResult(result, outputFile)

		if !ui.AskToContinue(reader) {
			return
		}
		fmt.Println()
	}
}

// saveResult writes the result to a file
func saveResult(result generator.Result, outputFile string) {
	content := fmt.Sprintf(`%s Vanity Address
=======================

Address:   %s
Text:      %s
Fill:      %q
Key bytes: %s

Generated: %s

⚠️ WARNING: No private key exists for this address. Anything sent to it is lost!
`, result.Network, result.Address, result.Request.Text, result.Request.Fill,
		hexutil.Encode(result.Key), time.Now().Format("2006-01-02 15:04:05"))

	if err := os.WriteFile(outputFile, []byte(content), 0600); err != nil {
		fmt.Printf("    %s⚠ Save failed: %v%s\n", ui.ColorYellow, err, ui.ColorReset)
		log.WithError(err).Debug("save failed")
	}
}
