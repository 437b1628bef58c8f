package main

import (
	"fmt"
	"os"
	"time"

	"github.com/DmitriyVTitov/size"
	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/janelia-flyem/ndimg/img"
	"github.com/janelia-flyem/ndimg/ndimg"
	"github.com/janelia-flyem/ndimg/pixel"
)

// pattern sets a pixel to the value expected at linear index i.
type pattern[T any] func(t T, i int64)

func runCommand[T pixel.NativeType[T]](cmd ndimg.Command, proto T, set pattern[T]) error {
	dims, err := cmd.Dims(config.Image.Dims)
	if err != nil {
		return err
	}
	switch cmd.Name() {
	case "check":
		return doCheck(cmd, proto, set, dims)
	case "bench":
		return doBench(cmd, proto, dims)
	case "write":
		return doWrite(cmd, proto, set, dims)
	case "read":
		return doRead(cmd, proto, set)
	}
	return fmt.Errorf("unknown command %q", cmd.Name())
}

// newImage creates an image using the layout and cell size from the command or config.
func newImage[T pixel.NativeType[T]](cmd ndimg.Command, proto T, dims []int64) (ndimg.Img[T], error) {
	layout := cmd.ParameterOr(ndimg.KeyLayout, config.Image.Layout)
	cellSize, err := cmd.IntParameter(ndimg.KeyCellSize, config.Image.CellSize)
	if err != nil {
		return nil, err
	}
	f, err := img.NewFactory[T](layout, cellSize)
	if err != nil {
		return nil, err
	}
	return img.Create(f, dims, proto)
}

// fillPattern sets every pixel to the pattern value of its position.
func fillPattern[T pixel.NativeType[T]](im ndimg.Img[T], set pattern[T]) {
	dims := ndimg.Dimensions(im)
	pos := make([]int64, len(dims))
	c := im.LocalizingCursor()
	for c.HasNext() {
		t := c.Next()
		c.Localize(pos)
		set(t, ndimg.PositionToIndex(pos, dims))
	}
}

// verifyPattern checks every pixel against the pattern, splitting the linear
// index range among workers that each hold their own random access.
func verifyPattern[T pixel.NativeType[T]](im ndimg.Img[T], set pattern[T], workers int) error {
	if workers < 1 {
		workers = 1
	}
	dims := ndimg.Dimensions(im)
	total := im.Size()
	chunk := ndimg.CeilDiv(total, int64(workers))

	var g errgroup.Group
	for lo := int64(0); lo < total; lo += chunk {
		hi := min(lo+chunk, total)
		g.Go(func() error {
			ra := im.RandomAccess()
			want := ra.Get().CreateVariable()
			pos := make([]int64, len(dims))
			for i := lo; i < hi; i++ {
				ndimg.IndexToPosition(i, dims, pos)
				ra.SetPosition(pos)
				set(want, i)
				if !ra.Get().Equals(want) {
					return fmt.Errorf("pixel at %v is %s, expected %s", ndimg.Point(pos), ra.Get(), want)
				}
			}
			return nil
		})
	}
	return g.Wait()
}

func doCheck[T pixel.NativeType[T]](cmd ndimg.Command, proto T, set pattern[T], dims []int64) error {
	workers, err := cmd.IntParameter(ndimg.KeyWorkers, 4)
	if err != nil {
		return err
	}
	timedLog := ndimg.NewTimeLog()
	im, err := newImage(cmd, proto, dims)
	if err != nil {
		return err
	}
	fillPattern(im, set)
	if err := verifyPattern(im, set, workers); err != nil {
		return err
	}

	// Every layout must read back the same values after a copy.
	for _, layout := range []string{"array", "planar", "cell"} {
		f, err := img.NewFactory[T](layout, config.Image.CellSize)
		if err != nil {
			return err
		}
		dst, err := img.Create(f, dims, proto)
		if err != nil {
			return err
		}
		if err := img.CopyInto(dst, im); err != nil {
			return err
		}
		if err := verifyPattern(dst, set, workers); err != nil {
			return fmt.Errorf("after copy into %s image: %v", layout, err)
		}
	}
	timedLog.Infof("Checked %s %s image %v (%s in memory) with %d workers\n",
		humanize.Comma(im.Size()), proto.DataType(), dims, humanize.Bytes(uint64(size.Of(im))), workers)
	fmt.Printf("ok: %s pixels of %s %v\n", humanize.Comma(im.Size()), proto.DataType(), dims)
	return nil
}

func doBench[T pixel.NativeType[T]](cmd ndimg.Command, proto T, dims []int64) error {
	iters, err := cmd.IntParameter(ndimg.KeyIters, 3)
	if err != nil {
		return err
	}
	if iters < 1 {
		return fmt.Errorf("bad %q setting %d, must be positive", ndimg.KeyIters, iters)
	}
	im, err := newImage(cmd, proto, dims)
	if err != nil {
		return err
	}
	pos := make([]int64, len(dims))
	report := func(name string, elapsed time.Duration) {
		perSec := float64(im.Size()) * float64(iters) / elapsed.Seconds()
		fmt.Printf("%-18s %12s  %s pixels/s\n", name, elapsed/time.Duration(iters), humanize.Comma(int64(perSec)))
	}

	start := time.Now()
	for range iters {
		c := im.Cursor()
		for c.HasNext() {
			c.Next().SetZero()
		}
	}
	report("cursor", time.Since(start))

	start = time.Now()
	for range iters {
		c := im.LocalizingCursor()
		for c.HasNext() {
			c.Next()
			c.Localize(pos)
		}
	}
	report("localizing cursor", time.Since(start))

	start = time.Now()
	for range iters {
		ra := im.RandomAccess()
		for i := int64(0); i < im.Size(); i++ {
			ndimg.IndexToPosition(i, dims, pos)
			ra.SetPosition(pos)
			ra.Get().SetZero()
		}
	}
	report("random access", time.Since(start))
	return nil
}

func doWrite[T pixel.NativeType[T]](cmd ndimg.Command, proto T, set pattern[T], dims []int64) (err error) {
	var filename string
	cmd.CommandArgs(&filename)
	if filename == "" {
		return fmt.Errorf("write command must be followed by a file name")
	}
	compress, checksum := config.Compression(), config.Checksum()
	if name, found := cmd.Parameter(ndimg.KeyCompress); found {
		if compress, err = ndimg.ParseCompression(name); err != nil {
			return err
		}
	}
	if name, found := cmd.Parameter(ndimg.KeyChecksum); found {
		if checksum, err = ndimg.ParseChecksum(name); err != nil {
			return err
		}
	}
	im, err := img.NewPlanarImg(dims, proto)
	if err != nil {
		return err
	}
	fillPattern[T](im, set)
	b, err := img.EncodePlanes(nil, im, compress, checksum)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %d planes of %s %v to %s: %s\n", im.NumSlices(), proto.DataType(), dims,
		filename, humanize.Bytes(uint64(len(b))))
	return nil
}

func doRead[T pixel.NativeType[T]](cmd ndimg.Command, proto T, set pattern[T]) error {
	var filename string
	cmd.CommandArgs(&filename)
	if filename == "" {
		return fmt.Errorf("read command must be followed by a file name")
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	timedLog := ndimg.NewTimeLog()
	im, err := img.DecodePlanes(b, proto)
	if err != nil {
		return fmt.Errorf("unable to decode %s: %v", filename, err)
	}
	timedLog.Debugf("Decoded %s from %s\n", filename, humanize.Bytes(uint64(len(b))))
	if err := verifyPattern[T](im, set, 1); err != nil {
		return err
	}
	fmt.Printf("read %d planes of %s %v from %s (%s in memory)\n", im.NumSlices(), proto.DataType(),
		im.Dimensions(), filename, humanize.Bytes(uint64(size.Of(im))))
	return nil
}
