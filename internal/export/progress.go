package export

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// NewProgress returns a terminal progress bar, or line-by-line output when
// running under CI
func NewProgress() Progress {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &LineProgress{w: os.Stderr}
	}
	return &BarProgress{}
}

// BarProgress displays a progress bar in the terminal
type BarProgress struct {
	bar *progressbar.ProgressBar
}

func (p *BarProgress) Start(total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Exporting site"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *BarProgress) Done(path string) {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *BarProgress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

// LineProgress prints one line per written file
type LineProgress struct {
	w     io.Writer
	mu    sync.Mutex
	total int
	done  int
}

func (p *LineProgress) Start(total int) {
	p.total = total
	fmt.Fprintf(p.w, "Exporting %d files\n", total)
}

func (p *LineProgress) Done(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	fmt.Fprintf(p.w, "[%d/%d] %s\n", p.done, p.total, path)
}

func (p *LineProgress) Finish() {
	fmt.Fprintln(p.w, "Export complete")
}
