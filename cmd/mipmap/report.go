package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/mipmap1d/mipmap"
)

// report writes the requested view of mm to w:
//   - conf.Level set: the values of that level, one per line;
//   - conf.MaxPoints set: a header with the selected level, then its values;
//   - otherwise: one summary line per level.
func report(w io.Writer, mm *mipmap.MipMap[float64], conf Configuration) error {
	switch {
	case conf.Level != nil:
		lvl, ok := mm.Level(*conf.Level)
		if !ok {
			return fmt.Errorf("level %d not present (pyramid has %d levels)", *conf.Level, mm.NumLevels())
		}

		return writeValues(w, lvl)

	case conf.MaxPoints != nil:
		idx, lvl, ok := mm.LevelFor(*conf.MaxPoints)
		if !ok {
			return fmt.Errorf("max-points must be >= 1, got %d", *conf.MaxPoints)
		}
		if _, err := fmt.Fprintf(w, "# level=%d len=%d\n", idx, lvl.Len()); err != nil {
			return err
		}

		return writeValues(w, lvl)
	}

	for i, lvl := range mm.Levels() {
		if err := writeSummary(w, i, lvl); err != nil {
			return err
		}
	}

	return nil
}

func writeValues(w io.Writer, lvl mipmap.Level[float64]) error {
	buf := make([]byte, 0, 32)
	for _, v := range lvl.All() {
		buf = strconv.AppendFloat(buf[:0], v, 'g', -1, 64)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

func writeSummary(w io.Writer, index int, lvl mipmap.Level[float64]) error {
	if lvl.Len() == 0 {
		_, err := fmt.Fprintf(w, "level=%d len=0\n", index)

		return err
	}

	lo, _ := lvl.At(0)
	hi := lo
	for _, v := range lvl.All() {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	_, err := fmt.Fprintf(w, "level=%d len=%d min=%g max=%g\n", index, lvl.Len(), lo, hi)

	return err
}
