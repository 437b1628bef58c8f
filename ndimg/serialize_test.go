package ndimg

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	. "github.com/janelia-flyem/go/gocheck"
)

func (suite *CoreSuite) TestSerializeData(c *C) {
	data := bytes.Repeat([]byte("plane data that compresses well "), 64)
	data = append(data, 0x00, 0xff, 0x7f, 0x80)

	for _, compression := range []Compression{Uncompressed, Snappy, LZ4, Zstd} {
		for _, checksum := range []Checksum{NoChecksum, CRC32} {
			s, err := SerializeData(data, compression, checksum)
			c.Assert(err, IsNil)
			if compression != Uncompressed {
				c.Assert(len(s) < len(data), Equals, true)
			}

			got, compress, err := DeserializeData(s, true)
			c.Assert(err, IsNil)
			c.Assert(compress, Equals, compression)
			c.Assert(got, DeepEquals, data)

			if checksum != NoChecksum {
				s[len(s)-1] ^= 0x04 // Flip a bit
				_, _, err = DeserializeData(s, true)
				c.Assert(err, NotNil)
			}
		}
	}

	_, err := SerializeData(data, Compression(6), NoChecksum)
	c.Assert(err, NotNil)
}

func (suite *CoreSuite) TestZstdShared(c *C) {
	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			data := bytes.Repeat([]byte{byte(i), 1, 2, 3}, 1000+i)
			s, err := SerializeData(data, Zstd, CRC32)
			if err != nil {
				return err
			}
			got, _, err := DeserializeData(s, true)
			if err != nil {
				return err
			}
			if !bytes.Equal(got, data) {
				return fmt.Errorf("worker %d read back %d bytes, expected %d", i, len(got), len(data))
			}
			return nil
		})
	}
	c.Assert(g.Wait(), IsNil)

	garbage := []byte{byte(EncodeSerializationFormat(Zstd, NoChecksum)), 0xde, 0xad, 0xbe, 0xef}
	_, _, err := DeserializeData(garbage, true)
	c.Assert(err, NotNil)
}

func (suite *CoreSuite) TestSerializationFormat(c *C) {
	for _, compression := range []Compression{Uncompressed, Snappy, LZ4, Zstd} {
		f := EncodeSerializationFormat(compression, CRC32)
		compress, checksum := DecodeSerializationFormat(f)
		c.Assert(compress, Equals, compression)
		c.Assert(checksum, Equals, CRC32)
	}
	compress, err := ParseCompression("ZSTD")
	c.Assert(err, IsNil)
	c.Assert(compress, Equals, Zstd)
	_, err = ParseCompression("gzip")
	c.Assert(err, NotNil)
	checksum, err := ParseChecksum("crc32")
	c.Assert(err, IsNil)
	c.Assert(checksum, Equals, CRC32)
}

func (suite *CoreSuite) TestConfig(c *C) {
	cfg, err := DecodeConfig(`
[image]
layout = "cell"
type = "uint16"
dims = [64, 32, 8]
cell_size = 16

[codec]
compression = "lz4"
`)
	c.Assert(err, IsNil)
	c.Assert(cfg.Image.Layout, Equals, "cell")
	c.Assert(cfg.Image.Type, Equals, "uint16")
	c.Assert(cfg.Image.Dims, DeepEquals, []int64{64, 32, 8})
	c.Assert(cfg.Image.CellSize, Equals, 16)
	c.Assert(cfg.Compression(), Equals, LZ4)
	c.Assert(cfg.Checksum(), Equals, CRC32)

	_, err = DecodeConfig("[image]\nlayout = \"hexagonal\"\n")
	c.Assert(err, NotNil)
	_, err = DecodeConfig("[image]\ndims = [3, 0]\n")
	c.Assert(err, NotNil)

	dir, err := os.MkdirTemp("", "ndimg-config")
	c.Assert(err, IsNil)
	defer os.RemoveAll(dir)
	filename := filepath.Join(dir, "ndimg.toml")
	text := "[logging]\nlogfile = \"logs/ndimg.log\"\nmax_log_size = 10\n"
	c.Assert(os.WriteFile(filename, []byte(text), 0644), IsNil)
	cfg, err = LoadConfig(filename)
	c.Assert(err, IsNil)
	c.Assert(cfg.Logging.Logfile, Equals, filepath.Join(dir, "logs", "ndimg.log"))
	c.Assert(cfg.Logging.MaxSize, Equals, 10)
	c.Assert(cfg.Image.Layout, Equals, "planar")

	_, err = LoadConfig("")
	c.Assert(err, NotNil)
}
