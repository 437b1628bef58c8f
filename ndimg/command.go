/*
	This file holds types and functions supporting command-line activity.  A Command
	bundles an operation name with positional arguments and "key=value" settings.
*/

package ndimg

import (
	"fmt"
	"strconv"
	"strings"
)

// Keys for setting various arguments within the command line via "key=value" strings.
const (
	KeyType     = "type"
	KeyLayout   = "layout"
	KeyDims     = "dims"
	KeyCellSize = "cell"
	KeyCompress = "compress"
	KeyChecksum = "checksum"
	KeyIters    = "iters"
	KeyWorkers  = "workers"
)

var setKeys = map[string]bool{
	KeyType:     true,
	KeyLayout:   true,
	KeyDims:     true,
	KeyCellSize: true,
	KeyCompress: true,
	KeyChecksum: true,
	KeyIters:    true,
	KeyWorkers:  true,
}

// Command is a parsed command line.  The first item in the string slice is the
// command, e.g. "check" or "bench".  The other arguments are positional command
// arguments or optional settings of the form "<key>=<value>".
type Command []string

// String returns a space-separated command line
func (cmd Command) String() string {
	return strings.Join([]string(cmd), " ")
}

// Name returns the first argument which is assumed to be the name of the command.
func (cmd Command) Name() string {
	if len(cmd) == 0 {
		return ""
	}
	return cmd[0]
}

// Parameter scans a command for any "key=value" argument and returns
// the value of the passed 'key'.
func (cmd Command) Parameter(key string) (value string, found bool) {
	if len(cmd) > 1 {
		for _, arg := range cmd[1:] {
			elems := strings.SplitN(arg, "=", 2)
			if len(elems) == 2 && elems[0] == key {
				value = elems[1]
				found = true
				return
			}
		}
	}
	return
}

// ParameterOr returns the value for a key or the given default if absent.
func (cmd Command) ParameterOr(key, defaultValue string) string {
	if value, found := cmd.Parameter(key); found {
		return value
	}
	return defaultValue
}

// IntParameter returns the integer value for a key or the given default if absent.
func (cmd Command) IntParameter(key string, defaultValue int) (int, error) {
	value, found := cmd.Parameter(key)
	if !found {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("bad %q setting %q: %v", key, value, err)
	}
	return i, nil
}

// Dims returns the image shape given via "dims=X,Y,Z,..." or the default.
func (cmd Command) Dims(defaultDims []int64) ([]int64, error) {
	value, found := cmd.Parameter(KeyDims)
	if !found {
		return defaultDims, nil
	}
	p, err := StringToPoint(value, ",")
	if err != nil {
		return nil, err
	}
	if _, err := CheckShape(p); err != nil {
		return nil, err
	}
	return []int64(p), nil
}

// CommandArgs sets a variadic argument set of string pointers to
// command arguments, ignoring setting arguments of the form "<key>=<value>".
// If there aren't enough arguments to set a target, the target is set to the
// empty string.  It returns an 'overflow' slice that has all arguments
// beyond those needed for targets.
func (cmd Command) CommandArgs(targets ...*string) (overflow []string) {
	overflow = make([]string, 0, len(cmd))
	for _, target := range targets {
		*target = ""
	}
	if len(cmd) > 1 {
		numTargets := len(targets)
		curTarget := 0
		for _, arg := range cmd[1:] {
			optionalSet := false
			elems := strings.SplitN(arg, "=", 2)
			if len(elems) == 2 {
				_, optionalSet = setKeys[elems[0]]
			}
			if !optionalSet {
				if curTarget >= numTargets {
					overflow = append(overflow, arg)
				} else {
					*(targets[curTarget]) = arg
				}
				curTarget++
			}
		}
	}
	return
}
