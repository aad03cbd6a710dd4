package command

import (
	"sync"

	"github.com/pkg/browser"
	"go.uber.org/zap"

	"github.com/lixenwraith/cchooks/core"
)

// PlatformOpener opens directories with the desktop's default file manager
// Each Open runs on its own goroutine; the result is logged and otherwise dropped
type PlatformOpener struct {
	log  *zap.Logger
	open func(path string) error
	wg   sync.WaitGroup
}

// NewPlatformOpener creates an opener backed by the OS file association
func NewPlatformOpener(log *zap.Logger) *PlatformOpener {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlatformOpener{log: log, open: browser.OpenFile}
}

// Open implements Opener
func (o *PlatformOpener) Open(path string) {
	o.wg.Add(1)
	core.Go(o.log, func() {
		defer o.wg.Done()
		if err := o.open(path); err != nil {
			o.log.Warn("failed to open computer folder", zap.String("path", path), zap.Error(err))
		}
	})
}

// Wait blocks until every started Open has returned
// For short-lived hosts (CLI) that would otherwise exit before the viewer launches
func (o *PlatformOpener) Wait() {
	o.wg.Wait()
}
