package table

import (
	"github.com/charmbracelet/log"
	"github.com/rstms/flashfat"
	"github.com/rstms/flashfat/scan"
)

// Builder assembles the file table from the current flash contents.
type Builder struct {
	config Config
	flash  flashfat.Flash
	logger *log.Logger
}

type Option func(*Builder)

func WithLogger(logger *log.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

func NewBuilder(config Config, flash flashfat.Flash, opts ...Option) (*Builder, error) {
	err := config.Validate()
	if err != nil {
		return nil, Fatal(err)
	}
	b := &Builder{
		config: config,
		flash:  flash,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Capacity returns the largest number of entries a table can hold.
func (b *Builder) Capacity() int {
	return b.config.predefinedCount() + b.config.MaxLogs + AppendedEntryCount
}

// Build scans flash and returns a new table. Each call rescans from scratch.
func (b *Builder) Build() (Table, error) {
	cfg := b.config
	t, err := cfg.Time()
	if err != nil {
		return Table{}, Fatal(err)
	}
	times := flashfat.CMA(t)

	scanner, err := scan.New(b.flash, cfg.Stride, []byte(cfg.Marker), scan.WithLogger(b.logger))
	if err != nil {
		return Table{}, Fatal(err)
	}

	// size accounting uses the full used region, even when discovery is capped
	used := scanner.Boundary()
	if used > cfg.DiskSize/2 {
		return Table{}, Fatalf("used flash (%d bytes) exceeds half of the %d byte disk", used, cfg.DiskSize)
	}

	entries := make([]flashfat.Entry, 0, b.Capacity())
	entries = append(entries, cfg.predefinedEntries(times)...)
	predefined := len(entries)

	segments := scanner.Segments(cfg.MaxLogs)
	for i, segment := range segments {
		entries = append(entries, flashfat.NewFlashEntry(cfg.LogName(i+1), b.flash, segment.Start, segment.Size(), times))
	}
	if len(segments) == cfg.MaxLogs && cfg.MaxLogs > 0 {
		b.logger.Warn("log table full, later logs may be omitted", "max_logs", cfg.MaxLogs)
	}

	if len(segments) > 0 {
		entries = append(entries, flashfat.NewFlashEntry(cfg.AllLogsName(), b.flash, 0, used, times))
	}

	var declared int64
	for _, entry := range entries {
		declared += entry.Size
	}
	if declared > cfg.DiskSize {
		return Table{}, Fatalf("declared file sizes (%d bytes) exceed the %d byte disk", declared, cfg.DiskSize)
	}
	padding := cfg.DiskSize - declared
	entries = append(entries, flashfat.Entry{
		Name:    PaddingName,
		Attr:    flashfat.AttrHidden,
		Level:   1,
		Size:    padding,
		MaxSize: padding,
		Times:   times,
	})

	b.logger.Debug("file table built", "entries", len(entries), "logs", len(segments), "used", used, "padding", padding)

	return Table{
		Label:      cfg.Label,
		DiskSize:   cfg.DiskSize,
		Used:       used,
		Segments:   segments,
		Entries:    entries,
		predefined: predefined,
	}, nil
}

func (c Config) predefinedCount() int {
	count := 1
	for _, enabled := range []bool{c.Autorun, c.Icon, c.Readme} {
		if enabled {
			count++
		}
	}
	return count
}
