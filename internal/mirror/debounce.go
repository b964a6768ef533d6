package mirror

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"mobipos/backend/internal/domain"
)

// Debouncer coalesces mirror writes per account: each local change arms (or
// re-arms) a timer and only the last snapshot within the window is sent.
// The write is fire-and-forget; errors are logged and swallowed, never
// retried and never surfaced to the operator.
type Debouncer struct {
	mu      sync.Mutex
	mirror  Mirror
	delay   time.Duration
	log     *logrus.Logger
	pending map[string]*pendingWrite
	wg      sync.WaitGroup
}

type pendingWrite struct {
	timer *time.Timer
	data  *domain.AppData
}

func NewDebouncer(m Mirror, delay time.Duration, log *logrus.Logger) *Debouncer {
	if delay <= 0 {
		delay = 2 * time.Second
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Debouncer{
		mirror:  m,
		delay:   delay,
		log:     log,
		pending: make(map[string]*pendingWrite),
	}
}

// Schedule queues the snapshot for the account, replacing any snapshot that
// was already queued but not yet flushed.
func (d *Debouncer) Schedule(accountID string, data *domain.AppData) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pending[accountID]; ok {
		p.data = data
		p.timer.Reset(d.delay)
		return
	}

	p := &pendingWrite{data: data}
	p.timer = time.AfterFunc(d.delay, func() {
		d.flush(accountID)
	})
	d.pending[accountID] = p
}

func (d *Debouncer) flush(accountID string) {
	d.mu.Lock()
	p, ok := d.pending[accountID]
	if !ok {
		d.mu.Unlock()
		return
	}
	delete(d.pending, accountID)
	data := p.data
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := d.mirror.Save(ctx, accountID, data); err != nil {
			d.log.WithFields(logrus.Fields{
				"account": accountID,
			}).WithError(err).Warn("remote mirror write failed")
		}
	}()
}

// Flush forces every queued write out immediately and waits for the sends to
// finish. Used on shutdown.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	ids := make([]string, 0, len(d.pending))
	for id, p := range d.pending {
		p.timer.Stop()
		ids = append(ids, id)
	}
	d.mu.Unlock()

	for _, id := range ids {
		d.flush(id)
	}
	d.wg.Wait()
}
