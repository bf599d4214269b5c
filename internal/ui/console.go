package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/Amr-9/ss58vanity/pkg/generator"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorPurple = "\033[35m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

// ClearScreen clears the terminal
func ClearScreen() {
	fmt.Print("\033[H\033[2J")
}

// PrintWelcomeBanner shows the welcome screen
func PrintWelcomeBanner(version string) {
	fmt.Println()
	fmt.Printf("%s%s", ColorCyan, ColorBold)
	fmt.Println("  ╔══════════════════════════════════════════════════════════╗")
	fmt.Println("  ║   ███████ ███████ ███████  █████                         ║")
	fmt.Println("  ║   ██      ██      ██      ██   ██   v a n i t y          ║")
	fmt.Println("  ║   ███████ ███████ ███████  █████                         ║")
	fmt.Println("  ║        ██      ██      ██ ██   ██                        ║")
	fmt.Println("  ║   ███████ ███████ ███████  █████                         ║")
	fmt.Println("  ╠══════════════════════════════════════════════════════════╣")
	fmt.Printf("  ║%s   Keyless SS58 Vanity Address Builder %s• v%s%s              ║\n", ColorYellow, ColorDim, version, ColorCyan+ColorBold)
	fmt.Println("  ╚══════════════════════════════════════════════════════════╝")
	fmt.Print(ColorReset)
	fmt.Println()
}

// PrintRequestInfo displays what will be built, and which characters
// the address alphabet cannot show as typed.
func PrintRequestInfo(network generator.Network, req generator.Request, shown string, substituted []rune) {
	fmt.Printf("\n    %s🚀 BUILDING%s %s%s%s%s (%s, fill %q)%s\n",
		ColorGreen+ColorBold, ColorReset,
		ColorBold, ColorCyan, shown, ColorDim, network, req.Fill, ColorReset)

	if len(substituted) > 0 {
		fmt.Printf("    %s⚠ Substituted: %s%s\n", ColorYellow, string(substituted), ColorReset)
		fmt.Printf("    %s  (Not in Base58: 0, O, I, l and symbols)%s\n", ColorDim, ColorReset)
	}
}

// PrintSuccess shows the built address
func PrintSuccess(result generator.Result, elapsed time.Duration, outputFile string) {
	fmt.Printf("\n    %s%s╔══════════════════════════════════════════════════════════╗%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Printf("    %s%s║               ✨ ADDRESS BUILT! ✨                       ║%s\n", ColorGreen, ColorBold, ColorReset)
	fmt.Printf("    %s%s╚══════════════════════════════════════════════════════════╝%s\n\n", ColorGreen, ColorBold, ColorReset)

	fmt.Printf("    %s● %s ADDRESS%s\n", ColorCyan+ColorBold, result.Network, ColorReset)
	fmt.Println()
	fmt.Printf("       %s%s%s%s\n", ColorGreen, ColorBold, result.Address, ColorReset)
	fmt.Println()

	fmt.Printf("    %s🧩 KEY BYTES%s\n", ColorPurple+ColorBold, ColorReset)
	fmt.Printf("       %s%s%s\n\n", ColorYellow, hexutil.Encode(result.Key), ColorReset)

	fmt.Printf("    %s⏱   %s%s   %s│   %s💾  %s%s%s\n\n",
		ColorCyan, ColorReset+ColorBold, FormatDuration(elapsed),
		ColorDim,
		ColorYellow, ColorReset+ColorBold, outputFile,
		ColorReset)
	fmt.Printf("    %s%s⚠  NO PRIVATE KEY EXISTS - FUNDS SENT HERE ARE LOST!%s\n", ColorRed, ColorBold, ColorReset)
}

// PrintError shows a request that could not be built
func PrintError(err error) {
	fmt.Printf("\n    %s✗ %v%s\n", ColorRed, err, ColorReset)
}

// PrintBatchSummary writes the totals of a batch run to w
func PrintBatchSummary(w io.Writer, stats generator.Stats) {
	fmt.Fprintf(w, "    %s✓ %s built%s │ %s%s rejected%s │ %s │ %s\n",
		ColorGreen+ColorBold, FormatNumber(stats.Attempts-stats.Failed), ColorReset,
		ColorYellow, FormatNumber(stats.Failed), ColorReset,
		FormatHashRate(stats.HashRate),
		FormatDuration(time.Duration(stats.ElapsedSecs*float64(time.Second))))
}

// FormatHashRate formats the request rate nicely
func FormatHashRate(rate float64) string {
	if rate >= 1000000 {
		return fmt.Sprintf("%.1fM/s", rate/1000000)
	}
	if rate >= 1000 {
		return fmt.Sprintf("%.1fK/s", rate/1000)
	}
	return fmt.Sprintf("%.0f/s", rate)
}

// FormatNumber adds commas to large numbers
func FormatNumber(n uint64) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	s := fmt.Sprintf("%d", n)
	result := make([]byte, 0, len(s)+(len(s)-1)/3)
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatDuration formats duration in a human-readable way
func FormatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}
