package scan

import (
	"bytes"

	"github.com/charmbracelet/log"
	"github.com/rstms/flashfat"
)

// Segment is a contiguous flash range [Start, End) holding one log.
type Segment struct {
	Start int64 `yaml:"start"`
	End   int64 `yaml:"end"`
}

func (s Segment) Size() int64 {
	return s.End - s.Start
}

// Scanner discovers log segments by probing each stride-aligned offset of
// used flash for the segment marker.
type Scanner struct {
	flash  flashfat.Flash
	stride int64
	marker []byte
	logger *log.Logger
}

type Option func(*Scanner)

func WithLogger(logger *log.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

func New(flash flashfat.Flash, stride int64, marker []byte, opts ...Option) (*Scanner, error) {
	if stride <= 0 {
		return nil, Fatalf("invalid stride: %d", stride)
	}
	if len(marker) == 0 {
		return nil, Fatalf("empty segment marker")
	}
	s := &Scanner{
		flash:  flash,
		stride: stride,
		marker: append([]byte(nil), marker...),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Boundary returns the end of used flash. It is independent of any cap
// applied to Segments.
func (s *Scanner) Boundary() int64 {
	return s.flash.FreeSpaceStart()
}

// Segments returns at most max segments in flash address order. Together
// they cover [0, Boundary()) unless the cap was reached. Flash without any
// marker yields no segments.
func (s *Scanner) Segments(max int) []Segment {
	segments := []Segment{}
	if max <= 0 {
		return segments
	}
	limit := s.Boundary()
	buf := make([]byte, len(s.marker))
	found := false
	var last int64
	for offset := int64(0); offset < limit; offset += s.stride {
		if !s.markerAt(offset, buf) {
			continue
		}
		found = true
		if offset != last {
			segments = s.add(segments, last, offset)
			if len(segments) == max {
				s.logger.Debug("segment discovery truncated", "max", max, "offset", offset, "limit", limit)
				return segments
			}
		}
		last = offset
	}
	if found && last < limit {
		segments = s.add(segments, last, limit)
	}
	return segments
}

func (s *Scanner) add(segments []Segment, start, end int64) []Segment {
	s.logger.Debug("log segment", "number", len(segments)+1, "start", start, "end", end)
	return append(segments, Segment{Start: start, End: end})
}

// markerAt reports whether the marker is present at offset. A short or
// failed read counts as no marker.
func (s *Scanner) markerAt(offset int64, buf []byte) bool {
	n, _ := s.flash.ReadAt(buf, offset)
	if n < len(buf) {
		return false
	}
	return bytes.Equal(buf, s.marker)
}
