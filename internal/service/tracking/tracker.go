// Package tracking опрашивает местоположение отправления, пока открыт экран отслеживания.
package tracking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"portal/internal/entities"
	"portal/internal/pkg/demo"
	"portal/pkg/background"
	"portal/pkg/logger"
)

type State string

const (
	StateIdle    State = "idle"
	StatePolling State = "polling"
	StateStopped State = "stopped"
)

const DefaultPeriod = 30 * time.Second

// Snapshot - состояние экрана отслеживания на момент последнего применённого ответа.
type Snapshot struct {
	OrderID    string
	Order      *entities.Order
	Shipment   *entities.Shipment
	State      State
	Demo       bool
	LastError  error
	UpdatedAt  time.Time
	Generation uint64
}

type Tracker struct {
	source   Source
	log      trackerLogger
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	snapshot Snapshot
	issued   uint64
	inFlight int

	// отмена предыдущего запроса при новом обновлении
	cancelInFlight context.CancelFunc

	lifetime context.Context
	cancel   context.CancelFunc
	handle   *background.Handle
}

func NewTracker(source Source, log trackerLogger, interval time.Duration) (*Tracker, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	return &Tracker{
		source:   source,
		log:      log,
		interval: interval,
		now:      time.Now,
		snapshot: Snapshot{State: StateIdle},
	}, nil
}

// WithClock подменяет источник времени.
func (t *Tracker) WithClock(now func() time.Time) *Tracker {
	t.now = now
	return t
}

// Start загружает заказ и отправление и запускает опрос.
// ctx ограничивает только первую загрузку, цикл живет до Stop.
func (t *Tracker) Start(ctx context.Context, orderID string) error {
	if strings.TrimSpace(orderID) == "" {
		return ErrMissingOrderID
	}

	t.mu.Lock()
	if err := t.idleLocked(); err != nil {
		t.mu.Unlock()
		return err
	}
	t.snapshot.OrderID = orderID
	t.mu.Unlock()

	order, orderDemo, err := t.source.GetTrackingOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("load tracking order %s: %w", orderID, err)
	}

	// Stop мог прийти, пока заказ загружался
	t.mu.Lock()
	if err := t.idleLocked(); err != nil {
		t.mu.Unlock()
		return err
	}
	t.snapshot.Order = order
	t.snapshot.Demo = orderDemo
	t.snapshot.State = StatePolling
	t.lifetime, t.cancel = context.WithCancel(context.WithoutCancel(ctx))
	t.mu.Unlock()

	if err := t.Refresh(ctx); err != nil {
		t.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		).Warn("initial shipment load failed")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.snapshot.State == StatePolling {
		t.handle = background.Every(t.lifetime, t.log, pollTask{tracker: t})
	}
	return nil
}

// idleLocked проверяет, что трекер еще не запускался. Вызывается под mu.
func (t *Tracker) idleLocked() error {
	switch t.snapshot.State {
	case StateIdle:
		return nil
	case StateStopped:
		return ErrStopped
	default:
		return ErrAlreadyStarted
	}
}

// Stop отменяет текущий запрос и дожидается завершения цикла.
// После возврата снимок больше не меняется.
func (t *Tracker) Stop() {
	t.mu.Lock()
	if t.snapshot.State == StateStopped {
		t.mu.Unlock()
		return
	}
	t.snapshot.State = StateStopped
	if t.cancelInFlight != nil {
		t.cancelInFlight()
	}
	if t.cancel != nil {
		t.cancel()
	}
	handle := t.handle
	t.mu.Unlock()

	if handle != nil {
		handle.Stop()
	}
}

// Refresh обновляет местоположение вручную. Новый запрос отменяет предыдущий.
func (t *Tracker) Refresh(ctx context.Context) error {
	reqCtx, gen, err := t.begin(ctx)
	if err != nil {
		return err
	}
	defer t.finish()

	return t.fetch(reqCtx, gen)
}

// Snapshot возвращает копию текущего состояния.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := t.snapshot
	if snap.Shipment != nil {
		shipment := *snap.Shipment
		if shipment.Location != nil {
			location := *shipment.Location
			shipment.Location = &location
		}
		snap.Shipment = &shipment
	}
	return snap
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshot.State
}

func (t *Tracker) tick(ctx context.Context) error {
	t.mu.Lock()
	busy := t.inFlight > 0
	t.mu.Unlock()
	if busy {
		t.log.Info("previous shipment request in flight, skipping tick")
		return nil
	}

	reqCtx, gen, err := t.begin(ctx)
	if err != nil {
		return nil
	}
	defer t.finish()

	if err := t.fetch(reqCtx, gen); err != nil && reqCtx.Err() == nil {
		return err
	}
	return nil
}

func (t *Tracker) begin(ctx context.Context) (context.Context, uint64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.snapshot.State != StatePolling {
		return nil, 0, ErrStopped
	}

	if t.cancelInFlight != nil {
		t.cancelInFlight()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(t.lifetime, cancel)
	t.cancelInFlight = func() {
		stop()
		cancel()
	}

	t.issued++
	t.inFlight++
	return reqCtx, t.issued, nil
}

func (t *Tracker) finish() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inFlight--
}

func (t *Tracker) fetch(ctx context.Context, gen uint64) error {
	orderID := t.snapshot.OrderID

	shipment, isDemo, err := t.source.GetShipment(ctx, orderID)

	t.mu.Lock()
	defer t.mu.Unlock()

	// запрос вытеснен новым, устарел либо экран уже закрыт
	if ctx.Err() != nil || t.snapshot.State != StatePolling || gen <= t.snapshot.Generation {
		return nil
	}

	now := t.now()
	if err != nil {
		t.snapshot.LastError = err
		t.snapshot.Generation = gen
		return fmt.Errorf("refresh shipment %s: %w", orderID, err)
	}

	if isDemo && t.snapshot.Shipment != nil {
		moved := demo.Move(*t.snapshot.Shipment, now)
		shipment = &moved
	}

	t.snapshot.Shipment = shipment
	t.snapshot.Demo = t.snapshot.Demo || isDemo
	t.snapshot.LastError = nil
	t.snapshot.UpdatedAt = now
	t.snapshot.Generation = gen
	return nil
}

type pollTask struct {
	tracker *Tracker
}

func (p pollTask) TTL() time.Duration {
	return p.tracker.interval
}

func (p pollTask) Do(ctx context.Context) error {
	return p.tracker.tick(ctx)
}

func (p pollTask) Info() string {
	return "shipment tracking " + p.tracker.snapshot.OrderID
}
