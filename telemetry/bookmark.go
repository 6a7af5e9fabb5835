package telemetry

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/shoal/config"
	"github.com/pthm-cable/shoal/species"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkFeedingFrenzy BookmarkType = "feeding_frenzy"
	BookmarkSpeciesCrash  BookmarkType = "species_crash"
	BookmarkInkStorm      BookmarkType = "ink_storm"
	BookmarkBalancedReef  BookmarkType = "balanced_reef"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int64        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector flags notable windows: capture spikes, species crashes,
// heavy ink use and sustained diversity.
type BookmarkDetector struct {
	cfg config.BookmarksConfig

	history     []WindowStats
	historyIdx  int
	historyFull bool

	speciesPeak  species.Counts
	diverseCount int
}

// NewBookmarkDetector creates a detector with the given history size and
// thresholds.
func NewBookmarkDetector(historySize int, cfg config.BookmarksConfig) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{cfg: cfg, history: make([]WindowStats, historySize)}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	cfg := bd.cfg
	var bookmarks []Bookmark

	if b := bd.checkFeedingFrenzy(stats, cfg.FeedingFrenzy); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	bookmarks = append(bookmarks, bd.checkSpeciesCrash(stats, cfg.SpeciesCrash)...)
	if b := bd.checkInkStorm(stats, cfg.InkStorm); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkBalancedReef(stats, cfg.BalancedReef); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % len(bd.history)
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
	return bookmarks
}

func (bd *BookmarkDetector) recent() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkFeedingFrenzy(stats WindowStats, cfg config.FeedingFrenzyConfig) *Bookmark {
	history := bd.recent()
	if len(history) < 3 {
		return nil
	}
	total := 0
	for _, h := range history {
		total += h.Captures
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 || stats.Captures < cfg.MinCaptures {
		return nil
	}
	if float64(stats.Captures) > avg*cfg.Multiplier {
		return &Bookmark{
			Type:        BookmarkFeedingFrenzy,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d captures is %.1fx average (%.1f)", stats.Captures, float64(stats.Captures)/avg, avg),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkSpeciesCrash(stats WindowStats, cfg config.SpeciesCrashConfig) []Bookmark {
	var out []Bookmark
	current := stats.Census()
	for _, s := range species.All {
		n, peak := current[s], bd.speciesPeak[s]
		if n > peak {
			bd.speciesPeak[s] = n
			continue
		}
		if peak == 0 {
			continue
		}
		drop := 1 - float64(n)/float64(peak)
		if drop >= cfg.DropPercent && peak-n >= cfg.MinDrop {
			out = append(out, Bookmark{
				Type:        BookmarkSpeciesCrash,
				Tick:        stats.WindowEndTick,
				Description: fmt.Sprintf("%s crashed %.0f%% from peak %d to %d", s, drop*100, peak, n),
			})
			bd.speciesPeak[s] = n
		}
	}
	return out
}

func (bd *BookmarkDetector) checkInkStorm(stats WindowStats, cfg config.InkStormConfig) *Bookmark {
	if stats.Confusions < cfg.MinConfusions {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkInkStorm,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("%d ink clouds confused the predator %d times", stats.InkReleases, stats.Confusions),
	}
}

func (bd *BookmarkDetector) checkBalancedReef(stats WindowStats, cfg config.BalancedReefConfig) *Bookmark {
	if stats.SpeciesEntropy < cfg.MinEntropy {
		bd.diverseCount = 0
		return nil
	}
	bd.diverseCount++
	// Fires once per diverse stretch.
	if bd.diverseCount == cfg.Windows {
		return &Bookmark{
			Type:        BookmarkBalancedReef,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Species entropy %.2f held for %d windows", stats.SpeciesEntropy, cfg.Windows),
		}
	}
	return nil
}
