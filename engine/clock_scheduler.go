package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/floorplan/logging"
)

var engineLog zerolog.Logger = logging.Module("engine")

// Clock drives a Loop on a fixed tick from its own goroutine
// Host work (input delivery, drawing) goes through RunSafe so frame callbacks and
// host callbacks never run concurrently
type Clock struct {
	loop *Loop

	// Serializes ticks with RunSafe
	mu sync.Mutex

	// Tick configuration
	tickInterval     time.Duration
	nextTickDeadline time.Time // Next tick deadline for drift correction

	tickCount atomic.Uint64
	afterTick func()

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewClock creates a clock for loop, non-positive interval falls back to 16ms
func NewClock(loop *Loop, tickInterval time.Duration) *Clock {
	if tickInterval <= 0 {
		tickInterval = 16 * time.Millisecond
	}
	return &Clock{
		loop:         loop,
		tickInterval: tickInterval,
		stopChan:     make(chan struct{}),
	}
}

// OnTick registers fn to run after every tick, under the clock lock
// Must be called before Start()
func (c *Clock) OnTick(fn func()) {
	c.afterTick = fn
}

// Start begins the tick loop
func (c *Clock) Start() {
	if c.running.CompareAndSwap(false, true) {
		c.wg.Add(1)
		go c.tickLoop()
	}
}

// Stop halts the tick loop and waits for the goroutine to exit
func (c *Clock) Stop() {
	c.stopOnce.Do(func() {
		if c.running.CompareAndSwap(true, false) {
			close(c.stopChan)
			c.wg.Wait()
		}
	})
}

// RunSafe executes fn while no tick is in progress
func (c *Clock) RunSafe(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}

// Ticks returns the number of completed ticks
func (c *Clock) Ticks() uint64 {
	return c.tickCount.Load()
}

// Running reports whether the tick goroutine is active
func (c *Clock) Running() bool {
	return c.running.Load()
}

func (c *Clock) tickLoop() {
	defer c.wg.Done()

	engineLog.Debug().Dur("interval", c.tickInterval).Msg("frame clock started")
	c.nextTickDeadline = time.Now().Add(c.tickInterval)

	timer := time.NewTimer(c.tickInterval)
	defer timer.Stop()

	for {
		select {
		case <-c.stopChan:
			engineLog.Debug().Uint64("ticks", c.tickCount.Load()).Msg("frame clock stopped")
			return
		case <-timer.C:
		}

		c.processTick()

		now := time.Now()
		c.nextTickDeadline = c.nextTickDeadline.Add(c.tickInterval)

		// Fell too far behind (suspended process, slow host): resync instead of bursting
		maxBehind := c.tickInterval * 2
		if now.Sub(c.nextTickDeadline) > maxBehind {
			c.nextTickDeadline = now.Add(c.tickInterval)
		}

		sleep := c.nextTickDeadline.Sub(now)
		if sleep < 0 {
			sleep = 0
		}
		timer.Reset(sleep)
	}
}

// processTick runs one frame of the loop under the clock lock
func (c *Clock) processTick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loop.Tick()
	if c.afterTick != nil {
		c.afterTick()
	}
	c.tickCount.Add(1)
}
