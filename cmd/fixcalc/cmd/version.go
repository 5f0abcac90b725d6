package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/govalues/fixed"
	"github.com/spf13/cobra"
	"golang.org/x/sys/cpu"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "fixcalc v%s\n", Version)
		fmt.Fprintf(w, "  Git Commit: %s\n", GitCommit)
		fmt.Fprintf(w, "  Build Date: %s\n", BuildDate)
		fmt.Fprintf(w, "  Go Version: %s\n", runtime.Version())
		fmt.Fprintf(w, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(w, "  CPU:        %s\n", cpuFeatures())
		fmt.Fprintf(w, "  Format:     Q%d.%d\n", fixed.IntBits-1, fixed.FracBits)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// cpuFeatures lists the vector extensions of the CPU.
// Results never depend on them, they are printed for bug reports.
func cpuFeatures() string {
	var features []string
	switch runtime.GOARCH {
	case "amd64", "386":
		if cpu.X86.HasAVX2 {
			features = append(features, "avx2")
		}
		if cpu.X86.HasFMA {
			features = append(features, "fma")
		}
		if cpu.X86.HasAVX512 {
			features = append(features, "avx512")
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			features = append(features, "asimd")
		}
		if cpu.ARM64.HasSVE {
			features = append(features, "sve")
		}
	}
	if len(features) == 0 {
		return "generic"
	}
	return strings.Join(features, " ")
}
