// Command-line tool for checking and benchmarking ndimg containers.
// Provides commands to verify traversal consistency across layouts, time
// cursor and random access loops, and write or read serialized planar images.

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/janelia-flyem/ndimg/ndimg"
	"github.com/janelia-flyem/ndimg/pixel"
)

var (
	// Display usage if true.
	showHelp = flag.Bool("help", false, "")

	// Run in verbose mode if true.
	runVerbose = flag.Bool("verbose", false, "")

	// Path to TOML configuration file.  Leave unset for defaults.
	configFile = flag.String("config", "", "")

	// Profile CPU usage using standard gotest system.
	cpuprofile = flag.String("cpuprofile", "", "")

	// Number of logical CPUs to use.
	useCPU = flag.Int("numcpu", 0, "")
)

const helpMessage = `
ndimg is a command-line tool for n-dimensional image containers

Usage: ndimg [options] <command> [key=value ...]

      -config     =string   Path to TOML configuration file.
      -cpuprofile =string   Write CPU profile to this file.
      -numcpu     =number   Number of logical CPUs to use.
      -verbose    (flag)    Run in verbose mode.
  -h, -help       (flag)    Show help message

Commands:

	about
	check  [type=uint8] [layout=planar] [dims=X,Y,Z,...] [cell=64] [workers=4]
	bench  [type=uint8] [layout=planar] [dims=X,Y,Z,...] [cell=64] [iters=3]
	write  <file> [type=uint8] [dims=X,Y,Z,...] [compress=snappy] [checksum=crc32]
	read   <file> [type=uint8]

Pixel types: int8, uint8, int16, uint16, int32, uint32, int64, uint64,
float32, float64, complex64, complex128, rgba
Layouts: array, planar, cell
`

// Version of the tool.
const Version = "0.1.0"

var usage = func() {
	fmt.Print(helpMessage)
}

// config holds settings from the -config file or the defaults.
var config = ndimg.DefaultConfig()

func main() {
	flag.BoolVar(showHelp, "h", false, "Show help message")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() >= 1 && strings.ToLower(flag.Args()[0]) == "help" {
		*showHelp = true
	}
	if *showHelp || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}
	os.Exit(run(ndimg.Command(flag.Args())))
}

// run executes the command and returns the process exit code.  Deferred
// cleanup runs before the caller exits.
func run(command ndimg.Command) int {
	if *runVerbose {
		ndimg.Verbose = true
		ndimg.SetLogMode(ndimg.DebugMode)
	}

	if *configFile != "" {
		c, err := ndimg.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}
		config = *c
	}
	config.Logging.SetLogger()
	defer ndimg.Shutdown()

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "Unable to start CPU profile: %v\n", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	numCPU := runtime.NumCPU()
	if *useCPU != 0 {
		numCPU = *useCPU
	}
	runtime.GOMAXPROCS(numCPU)

	if err := DoCommand(command); err != nil {
		ndimg.Errorf("%s: %v\n", command, err)
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// DoCommand serves as a switchboard for commands.
func DoCommand(cmd ndimg.Command) error {
	if len(cmd) == 0 {
		return fmt.Errorf("blank command")
	}

	switch cmd.Name() {
	case "about":
		fmt.Printf("ndimg %s (%s, %d CPUs)\n", Version, runtime.Version(), runtime.GOMAXPROCS(0))
		return nil
	case "check", "bench", "write", "read":
		typeName := cmd.ParameterOr(ndimg.KeyType, config.Image.Type)
		return dispatchType(cmd, typeName)
	default:
		return fmt.Errorf("unknown command %q, try 'ndimg help'", cmd.Name())
	}
}

// dispatchType runs the command for the pixel type with the given name.
func dispatchType(cmd ndimg.Command, typeName string) error {
	switch typeName {
	case "int8":
		return runCommand(cmd, pixel.NewByteType(0), setInteger[*pixel.ByteType])
	case "uint8":
		return runCommand(cmd, pixel.NewUnsignedByteType(0), setInteger[*pixel.UnsignedByteType])
	case "int16":
		return runCommand(cmd, pixel.NewShortType(0), setInteger[*pixel.ShortType])
	case "uint16":
		return runCommand(cmd, pixel.NewUnsignedShortType(0), setInteger[*pixel.UnsignedShortType])
	case "int32":
		return runCommand(cmd, pixel.NewIntType(0), setInteger[*pixel.IntType])
	case "uint32":
		return runCommand(cmd, pixel.NewUnsignedIntType(0), setInteger[*pixel.UnsignedIntType])
	case "int64":
		return runCommand(cmd, pixel.NewLongType(0), setInteger[*pixel.LongType])
	case "uint64":
		return runCommand(cmd, pixel.NewUnsignedLongType(0), setInteger[*pixel.UnsignedLongType])
	case "float32":
		return runCommand(cmd, pixel.NewFloatType(0), setReal[*pixel.FloatType])
	case "float64":
		return runCommand(cmd, pixel.NewDoubleType(0), setReal[*pixel.DoubleType])
	case "complex64":
		return runCommand(cmd, pixel.NewComplexFloatType(0), setComplex[*pixel.ComplexFloatType])
	case "complex128":
		return runCommand(cmd, pixel.NewComplexDoubleType(0), setComplex[*pixel.ComplexDoubleType])
	case "rgba":
		return runCommand(cmd, pixel.NewRGBAType(0, 0, 0, 0), func(t *pixel.RGBAType, i int64) {
			t.SetPacked(uint32(i))
		})
	default:
		return fmt.Errorf("unknown pixel type %q", typeName)
	}
}

// Patterns set a pixel to a value derived from its linear index so any layout
// can be verified against the same expectation.

func setInteger[T pixel.Integer](t T, i int64) { t.SetInteger(i) }

func setReal[T pixel.Real](t T, i int64) { t.SetRealDouble(float64(i) / 4) }

func setComplex[T pixel.Complex](t T, i int64) { t.SetComplexNumber(float64(i), -float64(i)/2) }
