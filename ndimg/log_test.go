package ndimg

import (
	"bytes"
	"log"
	"os"
	"strings"

	. "github.com/janelia-flyem/go/gocheck"
)

func (s *CoreSuite) TestLogMode(c *C) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)
	saved, savedVerbose := LogMode(), Verbose
	defer func() {
		SetLogMode(saved)
		Verbose = savedVerbose
	}()
	Verbose = false

	SetLogMode(WarningMode)
	c.Assert(LogMode(), Equals, WarningMode)
	Debugf("debug hidden\n")
	Infof("info hidden\n")
	Warningf("warning %d\n", 1)
	Errorf("error %d\n", 2)
	Criticalf("critical %d\n", 3)
	out := buf.String()
	c.Assert(strings.Contains(out, "hidden"), Equals, false)
	c.Assert(strings.Contains(out, " WARNING warning 1"), Equals, true)
	c.Assert(strings.Contains(out, " ERROR error 2"), Equals, true)
	c.Assert(strings.Contains(out, " CRITICAL critical 3"), Equals, true)

	buf.Reset()
	SetLogMode(SilentMode)
	Criticalf("nothing\n")
	c.Assert(buf.Len(), Equals, 0)

	// Verbose forces debug output whatever the mode.
	Verbose = true
	Debugf("forced\n")
	c.Assert(strings.Contains(buf.String(), " DEBUG forced"), Equals, true)

	buf.Reset()
	Verbose = false
	SetLogMode(DebugMode)
	timed := NewTimeLog()
	c.Assert(timed.Elapsed() >= 0, Equals, true)
	timed.Warningf("slow step")
	c.Assert(strings.Contains(buf.String(), " WARNING slow step: "), Equals, true)
}
