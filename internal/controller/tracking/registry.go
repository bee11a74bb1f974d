// Package tracking держит открытые экраны отслеживания: по одному трекеру на пару (сессия, заказ).
package tracking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"portal/internal/controller"
	"portal/internal/entities"
	"portal/internal/pkg/metrics"
	trackingservice "portal/internal/service/tracking"
	"portal/pkg/logger"
)

const (
	noticeLoadFailed = "Error al cargar el pedido"
	noticeMapFailed  = "Error al cargar el mapa"
)

var shipmentColors = map[string]string{
	entities.ShipmentInTransit: "accent",
	entities.ShipmentShipped:   "warn",
	entities.ShipmentDelivered: "primary",
	entities.ShipmentDelayed:   "warn",
}

func ShipmentColor(status string) string {
	return shipmentColors[status]
}

type View struct {
	Snapshot         trackingservice.Snapshot
	Destination      *entities.LatLng
	MapAvailable     bool
	EstimatedArrival string
	ShipmentColor    string
	Notice           *entities.Notice
}

type key struct {
	sessionID string
	orderID   string
}

// MaxScreensPerSession ограничивает число одновременно открытых экранов
// отслеживания одной сессии.
const MaxScreensPerSession = 8

type Registry struct {
	source   OrderSource
	maps     MapProvider
	log      controllerLogger
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	trackers map[key]*trackingservice.Tracker
	closed   bool
}

func NewRegistry(source OrderSource, maps MapProvider, log controllerLogger, interval time.Duration) *Registry {
	return &Registry{
		source:   source,
		maps:     maps,
		log:      log,
		interval: interval,
		now:      time.Now,
		trackers: make(map[key]*trackingservice.Tracker),
	}
}

// WithClock подменяет время для расчета прибытия и демо-данных.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}

// Mount открывает экран отслеживания. Повторный вызов возвращает уже открытый экран.
func (r *Registry) Mount(ctx context.Context, sess entities.Session, orderID string) (*View, error) {
	if !sess.IsAuthenticated() {
		return nil, controller.ErrUnauthenticated
	}
	k := key{sessionID: sess.ID, orderID: orderID}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRegistryClosed
	}
	if tr, ok := r.trackers[k]; ok {
		r.mu.Unlock()
		return r.view(tr.Snapshot()), nil
	}
	if r.sessionScreens(sess.ID) >= MaxScreensPerSession {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: session %s", ErrTooManyScreens, sess.ID)
	}

	tr, err := trackingservice.NewTracker(r.source, r.log, r.interval)
	if err != nil {
		r.mu.Unlock()
		return nil, fmt.Errorf("create tracker: %w", err)
	}
	tr.WithClock(r.now)
	r.trackers[k] = tr
	r.reportMounted()
	r.mu.Unlock()

	if err := tr.Start(ctx, orderID); err != nil {
		r.remove(k, tr)
		tr.Stop()

		r.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		).Error("mount tracking view")
		return &View{
			Notice: entities.ErrorNotice(noticeLoadFailed, entities.NoticeShort),
		}, fmt.Errorf("start tracking %s: %w", orderID, err)
	}

	r.log.With(
		logger.NewField("session", sess.ID),
		logger.NewField("order_id", orderID),
	).Info("tracking view mounted")

	return r.view(tr.Snapshot()), nil
}

// Refresh вручную обновляет местоположение открытого экрана.
func (r *Registry) Refresh(ctx context.Context, sess entities.Session, orderID string) (*View, error) {
	tr, err := r.lookup(sess, orderID)
	if err != nil {
		return nil, err
	}

	if err := tr.Refresh(ctx); err != nil {
		r.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("error", err),
		).Warn("refresh shipment location")
	}
	return r.view(tr.Snapshot()), nil
}

func (r *Registry) Snapshot(sess entities.Session, orderID string) (*View, error) {
	tr, err := r.lookup(sess, orderID)
	if err != nil {
		return nil, err
	}
	return r.view(tr.Snapshot()), nil
}

// Unmount закрывает экран и останавливает опрос.
func (r *Registry) Unmount(sess entities.Session, orderID string) error {
	tr, err := r.lookup(sess, orderID)
	if err != nil {
		return err
	}

	k := key{sessionID: sess.ID, orderID: orderID}
	r.remove(k, tr)
	tr.Stop()
	return nil
}

// UnmountSession закрывает все экраны сессии, возвращает их количество.
func (r *Registry) UnmountSession(sessionID string) int {
	r.mu.Lock()
	var stopping []*trackingservice.Tracker
	for k, tr := range r.trackers {
		if k.sessionID == sessionID {
			stopping = append(stopping, tr)
			delete(r.trackers, k)
		}
	}
	r.reportMounted()
	r.mu.Unlock()

	for _, tr := range stopping {
		tr.Stop()
	}
	return len(stopping)
}

func (r *Registry) Mounted() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.trackers)
}

// Close останавливает все трекеры. После Close новые экраны не открываются.
func (r *Registry) Close() {
	r.mu.Lock()
	r.closed = true
	trackers := r.trackers
	r.trackers = make(map[key]*trackingservice.Tracker)
	r.reportMounted()
	r.mu.Unlock()

	for _, tr := range trackers {
		tr.Stop()
	}
}

func (r *Registry) lookup(sess entities.Session, orderID string) (*trackingservice.Tracker, error) {
	if !sess.IsAuthenticated() {
		return nil, controller.ErrUnauthenticated
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tr, ok := r.trackers[key{sessionID: sess.ID, orderID: orderID}]
	if !ok {
		return nil, ErrNotMounted
	}
	return tr, nil
}

// sessionScreens считает экраны сессии. Вызывается под mu.
func (r *Registry) sessionScreens(sessionID string) int {
	n := 0
	for k := range r.trackers {
		if k.sessionID == sessionID {
			n++
		}
	}
	return n
}

// remove удаляет трекер, только если под ключом все еще он.
func (r *Registry) remove(k key, tr *trackingservice.Tracker) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current, ok := r.trackers[k]; ok && current == tr {
		delete(r.trackers, k)
		r.reportMounted()
	}
}

// reportMounted вызывается под r.mu.
func (r *Registry) reportMounted() {
	metrics.TrackingScreensMounted.Set(float64(len(r.trackers)))
}

func (r *Registry) view(snap trackingservice.Snapshot) *View {
	v := &View{
		Snapshot:     snap,
		MapAvailable: r.maps.Available(),
	}

	if snap.Order != nil {
		v.EstimatedArrival = trackingservice.EstimatedArrival(snap.Order.DeliveryDate, r.now())
		if v.MapAvailable {
			destination := r.maps.Destination(snap.Order.DeliveryAddress)
			v.Destination = &destination
		}
	}
	if snap.Shipment != nil {
		v.ShipmentColor = ShipmentColor(snap.Shipment.Status)
	}
	if !v.MapAvailable {
		v.Notice = entities.ErrorNotice(noticeMapFailed, entities.NoticeShort)
	}
	return v
}
